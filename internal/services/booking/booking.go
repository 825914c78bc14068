package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/deskhive/seatdesk/internal/lib/logger/sl"
	"github.com/deskhive/seatdesk/internal/metrics"
	"github.com/deskhive/seatdesk/internal/models"
	"github.com/deskhive/seatdesk/internal/repository"
)

// ErrInvalidDate is returned when the booking date is missing or not YYYY-MM-DD.
var ErrInvalidDate = errors.New("invalid or missing booking_date")

// ErrUnknownEmployee is returned when the submitted employee id has no roster entry.
var ErrUnknownEmployee = errors.New("invalid employee id")

// ErrSeatTaken is returned when the seat is already booked for that date and slot.
var ErrSeatTaken = errors.New("seat already booked")

const dateLayout = "2006-01-02"

// Service implements the seat reservation operations.
type Service struct {
	log       *slog.Logger
	employees repository.EmployeeRepoIface
	bookings  repository.BookingRepoIface
	metrics   *metrics.Metrics
	timeout   time.Duration
}

func NewService(
	log *slog.Logger,
	employees repository.EmployeeRepoIface,
	bookings repository.BookingRepoIface,
	mtr *metrics.Metrics,
	timeout time.Duration,
) *Service {
	return &Service{log: log, employees: employees, bookings: bookings, metrics: mtr, timeout: timeout}
}

func (s *Service) initLogger(opn string) *slog.Logger {
	return s.log.With(
		slog.String("op", opn),
		slog.String("division", "booking"),
	)
}

// ParseDate validates that the value is an exact YYYY-MM-DD calendar date.
func ParseDate(value string) (time.Time, error) {
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return date, nil
}

// WeekStart returns the Sunday on or before the given date. Sunday maps to itself.
func WeekStart(date time.Time) time.Time {
	return date.AddDate(0, 0, -int(date.Weekday()))
}

// BookedSeats returns the seat numbers already reserved for the given date and time slot.
// The result is empty, never nil, when nothing is booked.
func (s *Service) BookedSeats(pctx context.Context, dateStr, timeSlot string) ([]int, error) {
	const opn = "Booking.BookedSeats"
	log := s.initLogger(opn)

	date, err := ParseDate(dateStr)
	if err != nil {
		return nil, err
	}
	if timeSlot == "" {
		return nil, ErrInvalidDate
	}

	ctx, cancel := context.WithTimeout(pctx, s.timeout)
	defer cancel()

	seats, err := s.bookings.BookedSeats(ctx, date, timeSlot)
	if err != nil {
		log.ErrorContext(ctx, "failed to fetch booked seats", sl.Err(err))
		return nil, fmt.Errorf("failed to fetch booked seats: %w", err)
	}

	return seats, nil
}

// Reserve books a seat for the employee on the given date and time slot.
//
// The date must be an exact YYYY-MM-DD string; the weekday name and the
// Sunday-anchored week start are derived from the booking date itself, never
// from the server clock. The employee must exist. The insert is a single
// conditional statement, so a losing concurrent writer gets ErrSeatTaken
// rather than a raw constraint error.
func (s *Service) Reserve(pctx context.Context, employeeID, seatNumber int, dateStr, timeSlot string) error {
	const opn = "Booking.Reserve"
	log := s.initLogger(opn)

	date, err := ParseDate(dateStr)
	if err != nil {
		return err
	}
	if timeSlot == "" {
		return ErrInvalidDate
	}

	ctx, cancel := context.WithTimeout(pctx, s.timeout)
	defer cancel()

	if _, err = s.employees.GetEmployeeByID(ctx, employeeID); err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			log.InfoContext(ctx, "booking rejected: unknown employee", "employee_id", employeeID)
			return ErrUnknownEmployee
		}
		log.ErrorContext(ctx, "failed to look up employee", sl.Err(err))
		return fmt.Errorf("failed to look up employee: %w", err)
	}

	booking := models.Booking{
		EmployeeID:  employeeID,
		SeatNumber:  seatNumber,
		Day:         date.Weekday().String(),
		TimeSlot:    timeSlot,
		WeekStart:   WeekStart(date),
		BookingDate: date,
	}

	if err = s.bookings.CreateBooking(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrDuplicateBooking) {
			if s.metrics != nil {
				s.metrics.BookingConflicts.Inc()
			}
			log.InfoContext(ctx, "booking rejected: seat taken",
				"seat", seatNumber, "date", dateStr, "slot", timeSlot)
			return ErrSeatTaken
		}
		log.ErrorContext(ctx, "failed to create booking", sl.Err(err))
		return fmt.Errorf("failed to create booking: %w", err)
	}

	if s.metrics != nil {
		s.metrics.BookingsCreated.Inc()
	}
	log.InfoContext(ctx, "booking created",
		"employee_id", employeeID, "seat", seatNumber, "date", dateStr, "slot", timeSlot)

	return nil
}
