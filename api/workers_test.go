package api

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/Domenick1991/workershub/internal/domain"
	"github.com/Domenick1991/workershub/internal/export"
	"github.com/Domenick1991/workershub/internal/service/workers"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestParseWorkerFilter(t *testing.T) {
	testCases := []struct {
		name  string
		query string
		want  domain.WorkerFilter
	}{
		{
			name:  "Exact filters",
			query: "profession=Housemaid&nationality=Filipino&status=On+Leave&religion=Islam&marital_status=Single",
			want: domain.WorkerFilter{
				Profession:    domain.ProfessionHousemaid,
				Nationality:   domain.NationalityFilipino,
				Status:        domain.WorkerStatusOnLeave,
				Religion:      domain.ReligionIslam,
				MaritalStatus: domain.MaritalStatusSingle,
			},
		},
		{
			name:  "Unknown enumeration values are ignored",
			query: "profession=Astronaut&nationality=Martian",
			want:  domain.WorkerFilter{},
		},
		{
			name:  "Numeric ranges",
			query: "min_age=25&max_age=40&min_experience=3",
			want:  domain.WorkerFilter{MinAge: intPtr(25), MaxAge: intPtr(40), MinExperience: intPtr(3)},
		},
		{
			name:  "Range aliases",
			query: "age_min=20&age_max=30&experience_min=1",
			want:  domain.WorkerFilter{MinAge: intPtr(20), MaxAge: intPtr(30), MinExperience: intPtr(1)},
		},
		{
			name:  "Malformed numbers are ignored",
			query: "min_age=abc&max_age=&limit=-3&offset=x",
			want:  domain.WorkerFilter{},
		},
		{
			name:  "Search ordering and paging",
			query: "search=+maria+&ordering=-age&limit=10&offset=20",
			want:  domain.WorkerFilter{Search: "maria", Ordering: "-age", Limit: 10, Offset: 20},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := url.ParseQuery(tc.query)
			require.NoError(t, err)
			assert.Equal(t, tc.want, parseWorkerFilter(q))
		})
	}
}

func TestWorkerHandler_list(t *testing.T) {
	mockService := &MockWorkerUseCase{}
	handler := NewWorkerHandler(mockService, "")

	c, w := newJSONContext("GET", "/api/workers?profession=Housemaid", nil)
	c.Request.Host = "example.com"

	image := "workers/maria.jpg"
	mockService.On("ListWorkers", c.Request.Context(), domain.WorkerFilter{Profession: domain.ProfessionHousemaid}).
		Return([]domain.Worker{
			{ID: 1, Name: "Maria Santos", Profession: domain.ProfessionHousemaid, Image: &image},
			{ID: 2, Name: "Ana", Profession: domain.ProfessionHousemaid},
		}, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var response []workerSummaryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 2)
	require.NotNil(t, response[0].ImageURL)
	assert.Equal(t, "http://example.com/media/workers/maria.jpg", *response[0].ImageURL)
	assert.Nil(t, response[1].ImageURL)
}

func TestWorkerHandler_list_EmptyIsArray(t *testing.T) {
	mockService := &MockWorkerUseCase{}
	handler := NewWorkerHandler(mockService, "")

	c, w := newJSONContext("GET", "/api/workers", nil)
	mockService.On("ListWorkers", c.Request.Context(), domain.WorkerFilter{}).Return([]domain.Worker{}, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestWorkerHandler_get(t *testing.T) {
	mockService := &MockWorkerUseCase{}
	handler := NewWorkerHandler(mockService, "https://cdn.example.com/media/")

	c, w := newJSONContext("GET", "/api/workers/1", nil)
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	image := "/workers/maria.jpg"
	religion := domain.ReligionChristianity
	mockService.On("GetWorker", c.Request.Context(), int64(1)).Return(&domain.Worker{
		ID: 1, Name: "Maria Santos", PassportNumber: "P1234567", Religion: &religion, Image: &image,
	}, nil)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var response workerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "P1234567", response.PassportNumber)
	require.NotNil(t, response.Religion)
	assert.Equal(t, "Christianity", *response.Religion)
	assert.Nil(t, response.MaritalStatus)
	require.NotNil(t, response.ImageURL)
	assert.Equal(t, "https://cdn.example.com/media/workers/maria.jpg", *response.ImageURL)
}

func TestWorkerHandler_get_NotFound(t *testing.T) {
	mockService := &MockWorkerUseCase{}
	handler := NewWorkerHandler(mockService, "")

	c, w := newJSONContext("GET", "/api/workers/99", nil)
	c.Params = gin.Params{{Key: "id", Value: "99"}}
	mockService.On("GetWorker", c.Request.Context(), int64(99)).Return(nil, domain.ErrNotFound)

	handler.get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Not found."}`, w.Body.String())
}

func TestWorkerHandler_create(t *testing.T) {
	mockService := &MockWorkerUseCase{}
	handler := NewWorkerHandler(mockService, "")

	c, w := newJSONContext("POST", "/api/workers", map[string]interface{}{
		"name":            "Maria Santos",
		"passport_number": "P1234567",
		"nationality":     "Filipino",
		"profession":      "Housemaid",
		"age":             30,
	})
	mockService.On("CreateWorker", c.Request.Context(), workers.CreateWorkerInput{
		Name: "Maria Santos", PassportNumber: "P1234567", Nationality: "Filipino", Profession: "Housemaid", Age: 30,
	}).Return(&domain.Worker{ID: 1, Name: "Maria Santos", Status: domain.WorkerStatusAvailable}, nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}

func TestWorkerHandler_create_Invalid(t *testing.T) {
	mockService := &MockWorkerUseCase{}
	handler := NewWorkerHandler(mockService, "")

	c, w := newJSONContext("POST", "/api/workers", map[string]interface{}{"name": "Maria Santos", "age": "thirty"})

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var response map[string][]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response, "age")
	mockService.AssertNotCalled(t, "CreateWorker", mock.Anything, mock.Anything)
}

func TestWorkerHandler_create_DuplicatePassport(t *testing.T) {
	mockService := &MockWorkerUseCase{}
	handler := NewWorkerHandler(mockService, "")

	c, w := newJSONContext("POST", "/api/workers", map[string]interface{}{
		"name": "Maria Santos", "passport_number": "P1234567", "nationality": "Filipino", "profession": "Housemaid", "age": 30,
	})
	mockService.On("CreateWorker", c.Request.Context(), mock.Anything).
		Return(nil, domain.NewConflictError("passport_number", "worker with this passport number already exists."))

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"passport_number":["worker with this passport number already exists."]}`, w.Body.String())
}

func TestWorkerHandler_updateStatusAndDelete(t *testing.T) {
	mockService := &MockWorkerUseCase{}
	handler := NewWorkerHandler(mockService, "")

	c, w := newJSONContext("PATCH", "/api/workers/3/status", map[string]string{"status": "Booked"})
	c.Params = gin.Params{{Key: "id", Value: "3"}}
	mockService.On("UpdateStatus", c.Request.Context(), int64(3), domain.WorkerStatusBooked).
		Return(&domain.Worker{ID: 3, Status: domain.WorkerStatusBooked}, nil)

	handler.updateStatus(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, _ = newJSONContext("DELETE", "/api/workers/3", nil)
	c.Params = gin.Params{{Key: "id", Value: "3"}}
	mockService.On("DeleteWorker", c.Request.Context(), int64(3)).Return(nil)

	handler.delete(c)
	assert.Equal(t, http.StatusNoContent, c.Writer.Status())

	mockService.AssertExpectations(t)
}

func TestWorkerHandler_export(t *testing.T) {
	mockService := &MockWorkerUseCase{}
	handler := NewWorkerHandler(mockService, "")

	c, w := newJSONContext("GET", "/api/workers/export", nil)
	mockService.On("ListWorkers", c.Request.Context(), domain.WorkerFilter{}).
		Return([]domain.Worker{{ID: 1, Name: "Maria Santos"}}, nil)

	handler.export(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, export.ContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "workers.xlsx")
	assert.NotZero(t, w.Body.Len())
}
