package repository

import (
	"context"
	"errors"
	"time"

	"github.com/deskhive/seatdesk/internal/metrics"
	"github.com/deskhive/seatdesk/internal/models"
)

// ErrEmployeeNotFound is returned when no employee exists for the given id.
var ErrEmployeeNotFound = errors.New("employee not found")

// ErrDuplicateBooking is returned when an insert collides with an existing
// booking on (booking_date, time_slot, seat_number).
var ErrDuplicateBooking = errors.New("booking already exists")

type Repository struct {
	db      Database
	metrics *metrics.Metrics
}

// EmployeeRepoIface represents the interface for interacting with employee data in the repository.
type EmployeeRepoIface interface {
	SaveEmployee(ctx context.Context, identifier int, name, designation, department string) error
	GetEmployeeByID(ctx context.Context, identifier int) (models.Employee, error)
}

func NewEmployeeRepository(db Database, mtr *metrics.Metrics) EmployeeRepoIface {
	return &Repository{db: db, metrics: mtr}
}

// BookingRepoIface represents the interface for creating and reading bookings.
type BookingRepoIface interface {
	BookedSeats(ctx context.Context, date time.Time, timeSlot string) ([]int, error)
	CreateBooking(ctx context.Context, booking models.Booking) error
}

func NewBookingRepository(db Database, mtr *metrics.Metrics) BookingRepoIface {
	return &Repository{db: db, metrics: mtr}
}

// ReportsRepoIface represents the interface for the admin reporting queries.
type ReportsRepoIface interface {
	ListAllBookings(ctx context.Context) ([]models.BookingDetails, error)
	ListBookingsOn(ctx context.Context, date time.Time) ([]models.BookingDetails, error)
	ListBookingsSince(ctx context.Context, lower time.Time) ([]models.BookingDetails, error)
	CountAllBookings(ctx context.Context) (int, error)
	CountBookingsOn(ctx context.Context, date time.Time) (int, error)
	CountBookingsSince(ctx context.Context, lower time.Time) (int, error)
}

func NewReportsRepository(db Database, mtr *metrics.Metrics) ReportsRepoIface {
	return &Repository{db: db, metrics: mtr}
}

// observe records the duration of a single query under the given label.
func (r *Repository) observe(queryType string, start time.Time) {
	if r.metrics == nil {
		return
	}
	r.metrics.DBQueryDuration.WithLabelValues(queryType).Observe(time.Since(start).Seconds())
}
