package directory_service_api

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/Domenick1991/workershub/internal/domain"
	"github.com/Domenick1991/workershub/internal/logger"
	"github.com/Domenick1991/workershub/internal/service/stats"
	"github.com/Domenick1991/workershub/internal/service/workers"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Server implements DirectoryServiceServer on top of the worker and stats services.
type Server struct {
	workers      workers.WorkerUseCase
	stats        stats.StatsUseCase
	mediaBaseURL string
}

type workerMessage struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	PassportNumber    string    `json:"passport_number"`
	Nationality       string    `json:"nationality"`
	Religion          *string   `json:"religion"`
	Profession        string    `json:"profession"`
	MaritalStatus     *string   `json:"marital_status"`
	Age               int       `json:"age"`
	Status            string    `json:"status"`
	Image             *string   `json:"image"`
	ImageURL          *string   `json:"image_url"`
	CreatedAt         time.Time `json:"created_at"`
	ExperienceYears   int       `json:"experience_years"`
	LanguagesSpoken   string    `json:"languages_spoken"`
	Skills            string    `json:"skills"`
	SalaryExpectation *float64  `json:"salary_expectation"`
}

// NewServer resolves relative image paths against mediaBaseURL, or against /media/ when it is empty.
func NewServer(workers workers.WorkerUseCase, stats stats.StatsUseCase, mediaBaseURL string) *Server {
	return &Server{workers: workers, stats: stats, mediaBaseURL: mediaBaseURL}
}

func (s *Server) GetWorker(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.Struct, error) {
	if req.GetValue() <= 0 {
		return nil, status.Error(codes.InvalidArgument, "worker id must be positive")
	}
	w, err := s.workers.GetWorker(ctx, req.GetValue())
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	msg := workerMessage{
		ID:                w.ID,
		Name:              w.Name,
		PassportNumber:    w.PassportNumber,
		Nationality:       string(w.Nationality),
		Profession:        string(w.Profession),
		Age:               w.Age,
		Status:            string(w.Status),
		Image:             w.Image,
		ImageURL:          s.imageURL(w.Image),
		CreatedAt:         w.CreatedAt,
		ExperienceYears:   w.ExperienceYears,
		LanguagesSpoken:   w.LanguagesSpoken,
		Skills:            w.Skills,
		SalaryExpectation: w.SalaryExpectation,
	}
	if w.Religion != nil {
		r := string(*w.Religion)
		msg.Religion = &r
	}
	if w.MaritalStatus != nil {
		m := string(*w.MaritalStatus)
		msg.MaritalStatus = &m
	}
	return toStruct(ctx, msg)
}

func (s *Server) imageURL(image *string) *string {
	if image == nil || *image == "" {
		return nil
	}
	if strings.HasPrefix(*image, "http://") || strings.HasPrefix(*image, "https://") {
		return image
	}
	base := s.mediaBaseURL
	if base == "" {
		base = "/media/"
	}
	u := strings.TrimRight(base, "/") + "/" + strings.TrimLeft(*image, "/")
	return &u
}

func (s *Server) WorkerStats(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	result, err := s.stats.WorkerStats(ctx)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return toStruct(ctx, result)
}

func (s *Server) BookingStats(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	result, err := s.stats.BookingStats(ctx)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return toStruct(ctx, result)
}

func (s *Server) FilterChoices(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	return toStruct(ctx, s.stats.Choices())
}

// toStruct reuses the JSON field names of the HTTP API.
func toStruct(ctx context.Context, v interface{}) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(raw, out); err != nil {
		return nil, toStatus(ctx, err)
	}
	return out, nil
}

func toStatus(ctx context.Context, err error) error {
	if verr, ok := domain.AsValidation(err); ok {
		return status.Error(codes.InvalidArgument, verr.Error())
	}
	if errors.Is(err, domain.ErrNotFound) {
		return status.Error(codes.NotFound, "Not found.")
	}
	logger.ErrorLog(ctx, err, "directory rpc failed")
	return status.Error(codes.Internal, "internal server error")
}

var _ DirectoryServiceServer = (*Server)(nil)
