package api

import (
	"net/http"

	"github.com/Domenick1991/workershub/internal/service/stats"
	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	service stats.StatsUseCase
}

func NewStatsHandler(service stats.StatsUseCase) *StatsHandler {
	return &StatsHandler{service: service}
}

func (h *StatsHandler) Register(router *gin.RouterGroup) {
	router.GET("/stats/workers", h.workerStats)
	router.GET("/stats/bookings", h.bookingStats)
	router.GET("/choices", h.choices)
}

// workerStats godoc
// @Summary Worker statistics
// @Tags stats
// @Produce json
// @Success 200 {object} domain.WorkerStats
// @Router /stats/workers [get]
func (h *StatsHandler) workerStats(c *gin.Context) {
	result, err := h.service.WorkerStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// bookingStats godoc
// @Summary Booking statistics
// @Tags stats
// @Produce json
// @Success 200 {object} domain.BookingStats
// @Router /stats/bookings [get]
func (h *StatsHandler) bookingStats(c *gin.Context) {
	result, err := h.service.BookingStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// choices godoc
// @Summary Filter choices
// @Tags stats
// @Produce json
// @Success 200 {object} domain.FilterChoices
// @Router /choices [get]
func (h *StatsHandler) choices(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Choices())
}
