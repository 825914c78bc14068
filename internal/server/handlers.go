package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/deskhive/seatdesk/internal/lib/logger/sl"
	"github.com/deskhive/seatdesk/internal/models"
	"github.com/deskhive/seatdesk/internal/services/booking"
	"github.com/deskhive/seatdesk/internal/services/reports"
	"github.com/gin-gonic/gin"
)

// BookingService is the seat reservation surface consumed by the HTTP layer.
type BookingService interface {
	BookedSeats(ctx context.Context, dateStr, timeSlot string) ([]int, error)
	Reserve(ctx context.Context, employeeID, seatNumber int, dateStr, timeSlot string) error
}

// ReportsService is the admin reporting surface consumed by the HTTP layer.
type ReportsService interface {
	Bookings(ctx context.Context, rng reports.Range) ([]models.BookingDetails, models.Stats, error)
}

type Handler struct {
	log      *slog.Logger
	bookings BookingService
	reports  ReportsService
}

func NewHandler(log *slog.Logger, bookings BookingService, reports ReportsService) *Handler {
	return &Handler{log: log, bookings: bookings, reports: reports}
}

// bookRequest is the typed shape of the POST /api/book body. Field names match
// what the frontend sends.
type bookRequest struct {
	EmployeeID  int    `json:"employeeId"`
	SeatNumber  int    `json:"seatNumber"`
	BookingDate string `json:"booking_date"`
	Time        string `json:"time"`
}

// GetSeats handles GET /api/seats?booking_date=YYYY-MM-DD&time=<slot>.
func (h *Handler) GetSeats(c *gin.Context) {
	seats, err := h.bookings.BookedSeats(
		c.Request.Context(), c.Query("booking_date"), c.Query("time"))
	if err != nil {
		if errors.Is(err, booking.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or missing booking_date"})
			return
		}
		h.log.ErrorContext(c.Request.Context(), "failed to fetch booked seats", sl.Err(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookedSeats": seats})
}

// BookSeat handles POST /api/book.
func (h *Handler) BookSeat(c *gin.Context) {
	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	err := h.bookings.Reserve(
		c.Request.Context(), req.EmployeeID, req.SeatNumber, req.BookingDate, req.Time)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "Booking successful"})
	case errors.Is(err, booking.ErrInvalidDate):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or missing booking_date"})
	case errors.Is(err, booking.ErrUnknownEmployee):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid Employee ID"})
	case errors.Is(err, booking.ErrSeatTaken):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Seat already booked"})
	default:
		h.log.ErrorContext(c.Request.Context(), "failed to book seat", sl.Err(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error", "error": err.Error()})
	}
}

// AdminBookings handles GET /api/admin/bookings?range=<range>.
func (h *Handler) AdminBookings(c *gin.Context) {
	rng := reports.ParseRange(c.Query("range"))

	rows, stats, err := h.reports.Bookings(c.Request.Context(), rng)
	if err != nil {
		h.log.ErrorContext(c.Request.Context(), "failed to build admin report", sl.Err(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":    len(rows),
		"bookings": rows,
		"stats":    stats,
	})
}
