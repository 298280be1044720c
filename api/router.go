package api

import (
	"context"
	"net/http"
	"slices"
	"time"

	"github.com/Domenick1991/workershub/config"
	_ "github.com/Domenick1991/workershub/internal/docs"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handlers struct {
	Workers  *WorkerHandler
	Bookings *BookingHandler
	Stats    *StatsHandler
}

func NewRouter(cfg *config.Config, db Pinger, h Handlers) *gin.Engine {
	RegisterValidators()

	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(), cors.New(corsConfig(cfg.HTTP.AllowedOrigins)))

	router.GET("/health", health(db))

	public := router.Group("/api")
	// Administrative routes. Authentication is expected to be attached here.
	admin := router.Group("/api")

	h.Workers.Register(public, admin)
	h.Bookings.Register(public, admin)
	h.Stats.Register(public)

	if cfg.HTTP.SwaggerEnabled {
		router.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json"))))
	}
	if cfg.Media.Dir != "" {
		router.Static("/media", cfg.Media.Dir)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, errorResponse{Error: notFoundMessage})
	})
	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions}
	cfg.AllowHeaders = append(cfg.AllowHeaders, requestIDHeader)
	cfg.ExposeHeaders = []string{requestIDHeader, "Content-Disposition"}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

func health(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
