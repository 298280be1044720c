package api

import (
	"bytes"
	"net/http"
	"net/url"
	"time"

	"github.com/Domenick1991/workershub/internal/domain"
	"github.com/Domenick1991/workershub/internal/export"
	"github.com/Domenick1991/workershub/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	Worker             int64  `json:"worker" binding:"required"`
	FullName           string `json:"full_name" binding:"required,max=100"`
	PhoneNumber        string `json:"phone_number" binding:"required,phone"`
	Email              string `json:"email" binding:"omitempty,email"`
	Address            string `json:"address"`
	Notes              string `json:"notes"`
	PreferredStartDate string `json:"preferred_start_date"`
	ContractDuration   string `json:"contract_duration" binding:"max=100"`
}

type updateBookingRequest struct {
	Status string `json:"status"`
}

type bookingResponse struct {
	ID                 int64     `json:"id"`
	Worker             int64     `json:"worker"`
	WorkerName         string    `json:"worker_name"`
	WorkerProfession   string    `json:"worker_profession"`
	WorkerNationality  string    `json:"worker_nationality"`
	FullName           string    `json:"full_name"`
	PhoneNumber        string    `json:"phone_number"`
	Email              string    `json:"email"`
	Address            string    `json:"address"`
	Notes              string    `json:"notes"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
	PreferredStartDate *string   `json:"preferred_start_date"`
	ContractDuration   string    `json:"contract_duration"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(public, admin *gin.RouterGroup) {
	public.POST("/bookings", h.create)
	public.POST("/bookings/create", h.create)

	admin.GET("/bookings", h.list)
	admin.GET("/bookings/export", h.export)
	admin.GET("/bookings/:id", h.get)
	admin.PATCH("/bookings/:id", h.updateStatus)
}

// create godoc
// @Summary Create booking request
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body createBookingRequest true "Booking request"
// @Success 201 {object} bookingResponse
// @Failure 400 {object} map[string][]string "Field-keyed validation errors"
// @Router /bookings [post]
func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err))
		return
	}

	created, err := h.service.CreateBooking(c.Request.Context(), booking.CreateBookingInput{
		WorkerID:           req.Worker,
		FullName:           req.FullName,
		PhoneNumber:        req.PhoneNumber,
		Email:              req.Email,
		Address:            req.Address,
		Notes:              req.Notes,
		PreferredStartDate: req.PreferredStartDate,
		ContractDuration:   req.ContractDuration,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toBookingResponse(created))
}

// list godoc
// @Summary List booking requests
// @Tags bookings
// @Produce json
// @Param status query string false "Booking status"
// @Param worker_profession query string false "Worker profession"
// @Param worker_nationality query string false "Worker nationality"
// @Param ordering query string false "Sort field, prefix with - for descending"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} bookingResponse
// @Router /bookings [get]
func (h *BookingHandler) list(c *gin.Context) {
	list, err := h.service.ListBookings(c.Request.Context(), parseBookingFilter(c.Request.URL.Query()))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]bookingResponse, 0, len(list))
	for i := range list {
		resp = append(resp, toBookingResponse(&list[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// get godoc
// @Summary Get booking request
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} bookingResponse
// @Failure 404 {object} errorResponse
// @Router /bookings/{id} [get]
func (h *BookingHandler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	b, err := h.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(b))
}

// updateStatus godoc
// @Summary Update booking status
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param status body updateBookingRequest true "New status"
// @Success 200 {object} bookingResponse
// @Failure 400 {object} map[string][]string "Field-keyed validation errors"
// @Failure 404 {object} errorResponse
// @Router /bookings/{id} [patch]
func (h *BookingHandler) updateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "Status field is required"})
		return
	}

	updated, err := h.service.UpdateStatus(c.Request.Context(), id, domain.BookingStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(updated))
}

// export godoc
// @Summary Export booking requests as XLSX
// @Tags bookings
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Router /bookings/export [get]
func (h *BookingHandler) export(c *gin.Context) {
	list, err := h.service.ListBookings(c.Request.Context(), parseBookingFilter(c.Request.URL.Query()))
	if err != nil {
		respondError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteBookings(&buf, list); err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="bookings.xlsx"`)
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	var start *string
	if b.PreferredStartDate != nil {
		s := b.PreferredStartDate.Format("2006-01-02")
		start = &s
	}
	return bookingResponse{
		ID:                 b.ID,
		Worker:             b.WorkerID,
		WorkerName:         b.WorkerName,
		WorkerProfession:   string(b.WorkerProfession),
		WorkerNationality:  string(b.WorkerNationality),
		FullName:           b.FullName,
		PhoneNumber:        b.PhoneNumber,
		Email:              b.Email,
		Address:            b.Address,
		Notes:              b.Notes,
		Status:             string(b.Status),
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
		PreferredStartDate: start,
		ContractDuration:   b.ContractDuration,
	}
}

func parseBookingFilter(q url.Values) domain.BookingFilter {
	f := domain.BookingFilter{Ordering: q.Get("ordering")}
	if v := domain.BookingStatus(q.Get("status")); v.Valid() {
		f.Status = v
	}
	if v := domain.Profession(firstValue(q, "worker_profession", "worker__profession")); v.Valid() {
		f.WorkerProfession = v
	}
	if v := domain.Nationality(firstValue(q, "worker_nationality", "worker__nationality")); v.Valid() {
		f.WorkerNationality = v
	}
	f.Limit, f.Offset = pagination(q)
	return f
}

func firstValue(q url.Values, keys ...string) string {
	for _, key := range keys {
		if v := q.Get(key); v != "" {
			return v
		}
	}
	return ""
}
