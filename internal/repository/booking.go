package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/deskhive/seatdesk/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

const bookingColumns = `b.id, b.seat_number, b.booking_date, b.day, b.time_slot,
		       e.id AS employee_id, e.name, e.designation, e.department`

// BookedSeats returns the seat numbers already taken for the exact date and time slot.
// A date/slot with no bookings yields an empty slice, not an error.
func (r *Repository) BookedSeats(ctx context.Context, date time.Time, timeSlot string) ([]int, error) {
	defer r.observe("booked_seats", time.Now())
	query := `SELECT seat_number FROM bookings WHERE booking_date = $1 AND time_slot = $2`

	rows, err := r.db.Query(ctx, query, date, timeSlot)
	if err != nil {
		return nil, fmt.Errorf("failed to query booked seats: %w", err)
	}
	defer rows.Close()

	seats := make([]int, 0)
	for rows.Next() {
		var seat int
		if err = rows.Scan(&seat); err != nil {
			return nil, fmt.Errorf("failed to scan seat number: %w", err)
		}
		seats = append(seats, seat)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read booked seats: %w", err)
	}

	return seats, nil
}

// CreateBooking inserts the booking in a single conditional statement. The database
// unique constraint on (booking_date, time_slot, seat_number) is the only arbiter of
// conflicts, so two concurrent writers for the same seat cannot both succeed.
// A collision is reported as ErrDuplicateBooking.
func (r *Repository) CreateBooking(ctx context.Context, booking models.Booking) error {
	defer r.observe("create_booking", time.Now())
	query := `
		INSERT INTO bookings (employee_id, seat_number, day, time_slot, week_start, booking_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (booking_date, time_slot, seat_number) DO NOTHING;
	`

	tag, err := r.db.Exec(ctx, query,
		booking.EmployeeID, booking.SeatNumber, booking.Day,
		booking.TimeSlot, booking.WeekStart, booking.BookingDate)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return ErrDuplicateBooking
		}
		return fmt.Errorf("failed to create booking: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrDuplicateBooking
	}

	return nil
}

// ListAllBookings returns every booking joined with its owner, newest booking date first.
func (r *Repository) ListAllBookings(ctx context.Context) ([]models.BookingDetails, error) {
	defer r.observe("list_all_bookings", time.Now())
	query := fmt.Sprintf(`
		SELECT %s
		FROM bookings b
		JOIN employees e ON b.employee_id = e.id
		ORDER BY b.booking_date DESC, b.time_slot, b.seat_number`, bookingColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}

	return scanBookingDetails(rows)
}

// ListBookingsOn returns the bookings whose booking date equals the given day.
func (r *Repository) ListBookingsOn(ctx context.Context, date time.Time) ([]models.BookingDetails, error) {
	defer r.observe("list_bookings_on", time.Now())
	query := fmt.Sprintf(`
		SELECT %s
		FROM bookings b
		JOIN employees e ON b.employee_id = e.id
		WHERE b.booking_date = $1
		ORDER BY b.booking_date DESC, b.time_slot, b.seat_number`, bookingColumns)

	rows, err := r.db.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}

	return scanBookingDetails(rows)
}

// ListBookingsSince returns the bookings on or after the given lower bound.
func (r *Repository) ListBookingsSince(ctx context.Context, lower time.Time) ([]models.BookingDetails, error) {
	defer r.observe("list_bookings_since", time.Now())
	query := fmt.Sprintf(`
		SELECT %s
		FROM bookings b
		JOIN employees e ON b.employee_id = e.id
		WHERE b.booking_date >= $1
		ORDER BY b.booking_date DESC, b.time_slot, b.seat_number`, bookingColumns)

	rows, err := r.db.Query(ctx, query, lower)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}

	return scanBookingDetails(rows)
}

// CountAllBookings returns the total number of bookings ever made.
func (r *Repository) CountAllBookings(ctx context.Context) (int, error) {
	defer r.observe("count_all_bookings", time.Now())

	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	return count, nil
}

// CountBookingsOn returns the number of bookings whose booking date equals the given day.
func (r *Repository) CountBookingsOn(ctx context.Context, date time.Time) (int, error) {
	defer r.observe("count_bookings_on", time.Now())

	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE booking_date = $1`, date).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	return count, nil
}

// CountBookingsSince returns the number of bookings on or after the given lower bound.
func (r *Repository) CountBookingsSince(ctx context.Context, lower time.Time) (int, error) {
	defer r.observe("count_bookings_since", time.Now())

	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE booking_date >= $1`, lower).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	return count, nil
}

// scanBookingDetails drains the joined rows, formatting dates as YYYY-MM-DD.
func scanBookingDetails(rows pgx.Rows) ([]models.BookingDetails, error) {
	defer rows.Close()

	details := make([]models.BookingDetails, 0)
	for rows.Next() {
		var row models.BookingDetails
		var bookingDate time.Time
		err := rows.Scan(
			&row.ID, &row.SeatNumber, &bookingDate, &row.Day, &row.TimeSlot,
			&row.EmployeeID, &row.Name, &row.Designation, &row.Department)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking row: %w", err)
		}
		row.BookingDate = bookingDate.Format("2006-01-02")
		details = append(details, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read booking rows: %w", err)
	}

	return details, nil
}
