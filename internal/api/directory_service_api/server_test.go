package directory_service_api

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/Domenick1991/workershub/internal/domain"
	"github.com/Domenick1991/workershub/internal/service/workers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type mockWorkers struct {
	mock.Mock
	workers.WorkerUseCase
}

func (m *mockWorkers) GetWorker(ctx context.Context, id int64) (*domain.Worker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Worker), args.Error(1)
}

type mockStats struct {
	mock.Mock
}

func (m *mockStats) WorkerStats(ctx context.Context) (*domain.WorkerStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkerStats), args.Error(1)
}

func (m *mockStats) BookingStats(ctx context.Context) (*domain.BookingStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingStats), args.Error(1)
}

func (m *mockStats) Choices() domain.FilterChoices {
	return domain.AllChoices()
}

func startServer(t *testing.T, srv DirectoryServiceServer) *DirectoryClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	grpcServer := grpc.NewServer()
	RegisterDirectoryServiceServer(grpcServer, srv)
	go func() { _ = grpcServer.Serve(lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		conn.Close()
		grpcServer.Stop()
	})
	return NewDirectoryClient(conn)
}

func TestDirectoryService_GetWorker(t *testing.T) {
	workersSvc := &mockWorkers{}
	client := startServer(t, NewServer(workersSvc, &mockStats{}, ""))

	religion := domain.ReligionChristianity
	workersSvc.On("GetWorker", mock.Anything, int64(1)).Return(&domain.Worker{
		ID: 1, Name: "Maria Santos", Nationality: domain.NationalityFilipino, Religion: &religion, Age: 30,
	}, nil)
	workersSvc.On("GetWorker", mock.Anything, int64(2)).Return(nil, domain.ErrNotFound)

	out, err := client.GetWorker(context.Background(), 1)
	require.NoError(t, err)
	fields := out.AsMap()
	assert.Equal(t, "Maria Santos", fields["name"])
	assert.Equal(t, "Christianity", fields["religion"])
	assert.EqualValues(t, 30, fields["age"])
	assert.Nil(t, fields["marital_status"])

	_, err = client.GetWorker(context.Background(), 2)
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = client.GetWorker(context.Background(), 0)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestDirectoryService_Stats(t *testing.T) {
	statsSvc := &mockStats{}
	client := startServer(t, NewServer(&mockWorkers{}, statsSvc, ""))

	statsSvc.On("WorkerStats", mock.Anything).Return(&domain.WorkerStats{
		TotalWorkers:     2,
		ProfessionStats:  map[string]int64{"Cook": 0},
		NationalityStats: map[string]int64{},
	}, nil)
	statsSvc.On("BookingStats", mock.Anything).Return(nil, errors.New("db down"))

	ws, err := client.WorkerStats(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, ws.AsMap()["total_workers"])
	assert.Contains(t, ws.GetFields()["profession_stats"].GetStructValue().AsMap(), "Cook")

	_, err = client.BookingStats(context.Background())
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestDirectoryService_FilterChoices(t *testing.T) {
	client := startServer(t, NewServer(&mockWorkers{}, &mockStats{}, ""))

	out, err := client.FilterChoices(context.Background())
	require.NoError(t, err)
	professions := out.GetFields()["professions"].GetListValue().GetValues()
	assert.Len(t, professions, 7)
	assert.Equal(t, "Housemaid", professions[0].GetStructValue().AsMap()["value"])
}

func TestDirectoryService_GetWorker_PassportAndImageURL(t *testing.T) {
	workersSvc := &mockWorkers{}
	client := startServer(t, NewServer(workersSvc, &mockStats{}, "https://cdn.example.com/media/"))

	image := "worker_images/maria.jpg"
	workersSvc.On("GetWorker", mock.Anything, int64(1)).Return(&domain.Worker{
		ID: 1, Name: "Maria Santos", PassportNumber: "A1234567", Image: &image,
	}, nil)
	workersSvc.On("GetWorker", mock.Anything, int64(2)).Return(&domain.Worker{
		ID: 2, Name: "Grace Wanjiru", PassportNumber: "K7654321",
	}, nil)

	out, err := client.GetWorker(context.Background(), 1)
	require.NoError(t, err)
	fields := out.AsMap()
	assert.Equal(t, "A1234567", fields["passport_number"])
	assert.Equal(t, "worker_images/maria.jpg", fields["image"])
	assert.Equal(t, "https://cdn.example.com/media/worker_images/maria.jpg", fields["image_url"])

	out, err = client.GetWorker(context.Background(), 2)
	require.NoError(t, err)
	fields = out.AsMap()
	assert.Equal(t, "K7654321", fields["passport_number"])
	assert.Contains(t, fields, "image_url")
	assert.Nil(t, fields["image_url"])
}

func TestServer_ImageURLWithoutBase(t *testing.T) {
	srv := NewServer(&mockWorkers{}, &mockStats{}, "")

	image := "/worker_images/maria.jpg"
	assert.Equal(t, "/media/worker_images/maria.jpg", *srv.imageURL(&image))

	absolute := "https://img.example.com/a.jpg"
	assert.Equal(t, absolute, *srv.imageURL(&absolute))
	assert.Nil(t, srv.imageURL(nil))
}
