package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/deskhive/seatdesk/internal/lib/logger/sl"
	"github.com/deskhive/seatdesk/internal/metrics"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter assembles the gin engine: API routes under /api, health and
// metrics alongside.
func NewRouter(
	handler *Handler,
	health *HealthChecker,
	mtr *metrics.Metrics,
	reg *prometheus.Registry,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(MetricsMiddleware(mtr))
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	api := router.Group("/api")
	{
		api.GET("/seats", handler.GetSeats)
		api.POST("/book", handler.BookSeat)
		api.GET("/admin/bookings", handler.AdminBookings)
	}

	router.GET("/healthz", gin.WrapH(health))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	return router
}

// Run serves the router until the context is cancelled, then shuts down
// gracefully.
func Run(ctx context.Context, log *slog.Logger, router *gin.Engine, port string) {
	shutdownTimeout := 10 * time.Second

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	log.InfoContext(ctx, "HTTP server listening", "port", port)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.ErrorContext(ctx, "HTTP server shutdown failed", sl.Err(err))
			return
		}
		log.InfoContext(ctx, "HTTP server stopped gracefully")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.ErrorContext(ctx, "HTTP server failed", sl.Err(err))
		}
	}
}
