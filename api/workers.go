package api

import (
	"bytes"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Domenick1991/workershub/internal/domain"
	"github.com/Domenick1991/workershub/internal/export"
	"github.com/Domenick1991/workershub/internal/service/workers"
	"github.com/gin-gonic/gin"
)

type WorkerHandler struct {
	service      workers.WorkerUseCase
	mediaBaseURL string
}

type workerSummaryResponse struct {
	ID                int64    `json:"id"`
	Name              string   `json:"name"`
	Nationality       string   `json:"nationality"`
	Profession        string   `json:"profession"`
	Age               int      `json:"age"`
	Status            string   `json:"status"`
	ImageURL          *string  `json:"image_url"`
	ExperienceYears   int      `json:"experience_years"`
	SalaryExpectation *float64 `json:"salary_expectation"`
}

type workerResponse struct {
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

type createWorkerRequest struct {
	Name              string   `json:"name" binding:"required,max=100"`
	PassportNumber    string   `json:"passport_number" binding:"required"`
	Nationality       string   `json:"nationality" binding:"required"`
	Religion          string   `json:"religion"`
	Profession        string   `json:"profession" binding:"required"`
	MaritalStatus     string   `json:"marital_status"`
	Age               int      `json:"age" binding:"required"`
	Status            string   `json:"status"`
	Image             string   `json:"image"`
	ExperienceYears   int      `json:"experience_years" binding:"gte=0"`
	LanguagesSpoken   string   `json:"languages_spoken"`
	Skills            string   `json:"skills"`
	SalaryExpectation *float64 `json:"salary_expectation" binding:"omitempty,gte=0"`
}

type workerStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// NewWorkerHandler builds image URLs from mediaBaseURL, or from the request host when it is empty.
func NewWorkerHandler(service workers.WorkerUseCase, mediaBaseURL string) *WorkerHandler {
	return &WorkerHandler{service: service, mediaBaseURL: mediaBaseURL}
}

func (h *WorkerHandler) Register(public, admin *gin.RouterGroup) {
	public.GET("/workers", h.list)
	public.GET("/workers/:id", h.get)

	admin.GET("/workers/export", h.export)
	admin.POST("/workers", h.create)
	admin.PATCH("/workers/:id/status", h.updateStatus)
	admin.DELETE("/workers/:id", h.delete)
}

// list godoc
// @Summary List workers
// @Tags workers
// @Produce json
// @Param profession query string false "Profession"
// @Param nationality query string false "Nationality"
// @Param status query string false "Worker status"
// @Param religion query string false "Religion"
// @Param marital_status query string false "Marital status"
// @Param search query string false "Search in name, skills and languages"
// @Param min_age query int false "Minimum age"
// @Param max_age query int false "Maximum age"
// @Param min_experience query int false "Minimum years of experience"
// @Param ordering query string false "Sort field, prefix with - for descending"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} workerSummaryResponse
// @Router /workers [get]
func (h *WorkerHandler) list(c *gin.Context) {
	list, err := h.service.ListWorkers(c.Request.Context(), parseWorkerFilter(c.Request.URL.Query()))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]workerSummaryResponse, 0, len(list))
	for i := range list {
		w := &list[i]
		resp = append(resp, workerSummaryResponse{
			ID:                w.ID,
			Name:              w.Name,
			Nationality:       string(w.Nationality),
			Profession:        string(w.Profession),
			Age:               w.Age,
			Status:            string(w.Status),
			ImageURL:          h.imageURL(c, w.Image),
			ExperienceYears:   w.ExperienceYears,
			SalaryExpectation: w.SalaryExpectation,
		})
	}
	c.JSON(http.StatusOK, resp)
}

// get godoc
// @Summary Get worker
// @Tags workers
// @Produce json
// @Param id path int true "Worker ID"
// @Success 200 {object} workerResponse
// @Failure 404 {object} errorResponse
// @Router /workers/{id} [get]
func (h *WorkerHandler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	w, err := h.service.GetWorker(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toWorkerResponse(c, w))
}

// create godoc
// @Summary Create worker
// @Tags workers
// @Accept json
// @Produce json
// @Param worker body createWorkerRequest true "Worker"
// @Success 201 {object} workerResponse
// @Failure 400 {object} map[string][]string "Field-keyed validation errors"
// @Router /workers [post]
func (h *WorkerHandler) create(c *gin.Context) {
	var req createWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err))
		return
	}

	w, err := h.service.CreateWorker(c.Request.Context(), workers.CreateWorkerInput{
		Name:              req.Name,
		PassportNumber:    req.PassportNumber,
		Nationality:       req.Nationality,
		Religion:          req.Religion,
		Profession:        req.Profession,
		MaritalStatus:     req.MaritalStatus,
		Age:               req.Age,
		Status:            req.Status,
		Image:             req.Image,
		ExperienceYears:   req.ExperienceYears,
		LanguagesSpoken:   req.LanguagesSpoken,
		Skills:            req.Skills,
		SalaryExpectation: req.SalaryExpectation,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.toWorkerResponse(c, w))
}

// updateStatus godoc
// @Summary Set worker status
// @Tags workers
// @Accept json
// @Produce json
// @Param id path int true "Worker ID"
// @Param status body workerStatusRequest true "New status"
// @Success 200 {object} workerResponse
// @Failure 400 {object} map[string][]string "Field-keyed validation errors"
// @Failure 404 {object} errorResponse
// @Router /workers/{id}/status [patch]
func (h *WorkerHandler) updateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req workerStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err))
		return
	}

	w, err := h.service.UpdateStatus(c.Request.Context(), id, domain.WorkerStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toWorkerResponse(c, w))
}

// delete godoc
// @Summary Delete worker and its bookings
// @Tags workers
// @Param id path int true "Worker ID"
// @Success 204
// @Failure 404 {object} errorResponse
// @Router /workers/{id} [delete]
func (h *WorkerHandler) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteWorker(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// export godoc
// @Summary Export workers as XLSX
// @Tags workers
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Router /workers/export [get]
func (h *WorkerHandler) export(c *gin.Context) {
	list, err := h.service.ListWorkers(c.Request.Context(), parseWorkerFilter(c.Request.URL.Query()))
	if err != nil {
		respondError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteWorkers(&buf, list); err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="workers.xlsx"`)
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}

func (h *WorkerHandler) toWorkerResponse(c *gin.Context, w *domain.Worker) workerResponse {
	return workerResponse{
		ID:                w.ID,
		Name:              w.Name,
		PassportNumber:    w.PassportNumber,
		Nationality:       string(w.Nationality),
		Religion:          optionalString(w.Religion),
		Profession:        string(w.Profession),
		MaritalStatus:     optionalString(w.MaritalStatus),
		Age:               w.Age,
		Status:            string(w.Status),
		Image:             w.Image,
		ImageURL:          h.imageURL(c, w.Image),
		CreatedAt:         w.CreatedAt,
		ExperienceYears:   w.ExperienceYears,
		LanguagesSpoken:   w.LanguagesSpoken,
		Skills:            w.Skills,
		SalaryExpectation: w.SalaryExpectation,
	}
}

// imageURL resolves a stored image path into an absolute URL.
func (h *WorkerHandler) imageURL(c *gin.Context, image *string) *string {
	if image == nil || *image == "" {
		return nil
	}
	if strings.HasPrefix(*image, "http://") || strings.HasPrefix(*image, "https://") {
		return image
	}

	base := h.mediaBaseURL
	if base == "" {
		scheme := "http"
		if c.Request.TLS != nil {
			scheme = "https"
		}
		if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
			scheme = proto
		}
		base = scheme + "://" + c.Request.Host + "/media/"
	}
	u := strings.TrimRight(base, "/") + "/" + strings.TrimLeft(*image, "/")
	return &u
}

// parseWorkerFilter ignores malformed values rather than rejecting the request.
func parseWorkerFilter(q url.Values) domain.WorkerFilter {
	f := domain.WorkerFilter{
		Search:   strings.TrimSpace(q.Get("search")),
		Ordering: q.Get("ordering"),
	}
	if v := domain.Profession(q.Get("profession")); v.Valid() {
		f.Profession = v
	}
	if v := domain.Nationality(q.Get("nationality")); v.Valid() {
		f.Nationality = v
	}
	if v := domain.WorkerStatus(q.Get("status")); v.Valid() {
		f.Status = v
	}
	if v := domain.Religion(q.Get("religion")); v.Valid() {
		f.Religion = v
	}
	if v := domain.MaritalStatus(q.Get("marital_status")); v.Valid() {
		f.MaritalStatus = v
	}
	f.MinAge = queryInt(q, "min_age", "age_min")
	f.MaxAge = queryInt(q, "max_age", "age_max")
	f.MinExperience = queryInt(q, "min_experience", "experience_min")
	f.Limit, f.Offset = pagination(q)
	return f
}

// queryInt returns the first well-formed integer among keys.
func queryInt(q url.Values, keys ...string) *int {
	for _, key := range keys {
		raw := strings.TrimSpace(q.Get(key))
		if raw == "" {
			continue
		}
		if n, err := strconv.Atoi(raw); err == nil {
			return &n
		}
	}
	return nil
}

func pagination(q url.Values) (limit, offset int) {
	if n := queryInt(q, "limit"); n != nil && *n > 0 {
		limit = *n
	}
	if n := queryInt(q, "offset"); n != nil && *n > 0 {
		offset = *n
	}
	return limit, offset
}

func optionalString[T ~string](v *T) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}
