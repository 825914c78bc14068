package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/deskhive/seatdesk/internal/models"
	"github.com/deskhive/seatdesk/internal/repository"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bookedSeatsQuery = `SELECT seat_number FROM bookings WHERE booking_date = $1 AND time_slot = $2`

const createBookingQuery = `
		INSERT INTO bookings (employee_id, seat_number, day, time_slot, week_start, booking_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (booking_date, time_slot, seat_number) DO NOTHING;
	`

func testBooking() models.Booking {
	return models.Booking{
		EmployeeID:  7,
		SeatNumber:  12,
		Day:         "Wednesday",
		TimeSlot:    "10:00 AM",
		WeekStart:   time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC),
		BookingDate: time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC),
	}
}

func TestBookedSeats_Success(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	date := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(bookedSeatsQuery)).
		WithArgs(date, "10:00 AM").
		WillReturnRows(pgxmock.NewRows([]string{"seat_number"}).AddRow(3).AddRow(12))

	repo := repository.NewBookingRepository(mock, nil)
	seats, err := repo.BookedSeats(context.Background(), date, "10:00 AM")

	require.NoError(t, err)
	assert.Equal(t, []int{3, 12}, seats)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookedSeats_Empty(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	date := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(bookedSeatsQuery)).
		WithArgs(date, "2:00 PM").
		WillReturnRows(pgxmock.NewRows([]string{"seat_number"}))

	repo := repository.NewBookingRepository(mock, nil)
	seats, err := repo.BookedSeats(context.Background(), date, "2:00 PM")

	require.NoError(t, err)
	assert.NotNil(t, seats)
	assert.Empty(t, seats)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookedSeats_QueryError(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	date := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(bookedSeatsQuery)).
		WithArgs(date, "10:00 AM").
		WillReturnError(assert.AnError)

	repo := repository.NewBookingRepository(mock, nil)
	_, err = repo.BookedSeats(context.Background(), date, "10:00 AM")

	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBooking_Success(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	booking := testBooking()

	mock.ExpectExec(regexp.QuoteMeta(createBookingQuery)).
		WithArgs(booking.EmployeeID, booking.SeatNumber, booking.Day,
			booking.TimeSlot, booking.WeekStart, booking.BookingDate).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	repo := repository.NewBookingRepository(mock, nil)
	err = repo.CreateBooking(context.Background(), booking)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBooking_Conflict(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	booking := testBooking()

	// ON CONFLICT DO NOTHING swallows the collision and reports zero rows.
	mock.ExpectExec(regexp.QuoteMeta(createBookingQuery)).
		WithArgs(booking.EmployeeID, booking.SeatNumber, booking.Day,
			booking.TimeSlot, booking.WeekStart, booking.BookingDate).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	repo := repository.NewBookingRepository(mock, nil)
	err = repo.CreateBooking(context.Background(), booking)

	require.ErrorIs(t, err, repository.ErrDuplicateBooking)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBooking_UniqueViolation(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	booking := testBooking()

	mock.ExpectExec(regexp.QuoteMeta(createBookingQuery)).
		WithArgs(booking.EmployeeID, booking.SeatNumber, booking.Day,
			booking.TimeSlot, booking.WeekStart, booking.BookingDate).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	repo := repository.NewBookingRepository(mock, nil)
	err = repo.CreateBooking(context.Background(), booking)

	require.ErrorIs(t, err, repository.ErrDuplicateBooking)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBooking_QueryError(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	booking := testBooking()

	mock.ExpectExec(regexp.QuoteMeta(createBookingQuery)).
		WithArgs(booking.EmployeeID, booking.SeatNumber, booking.Day,
			booking.TimeSlot, booking.WeekStart, booking.BookingDate).
		WillReturnError(assert.AnError)

	repo := repository.NewBookingRepository(mock, nil)
	err = repo.CreateBooking(context.Background(), booking)

	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrDuplicateBooking)
	require.NoError(t, mock.ExpectationsWereMet())
}

func bookingDetailRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "seat_number", "booking_date", "day", "time_slot",
		"employee_id", "name", "designation", "department",
	}).AddRow(
		int64(1), 12, time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC), "Wednesday", "10:00 AM",
		7, "Test User", "QA Engineer", "Quality",
	)
}

func TestListAllBookings_Success(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`(?s)SELECT .+ FROM bookings b\s+JOIN employees e ON b\.employee_id = e\.id\s+ORDER BY`).
		WillReturnRows(bookingDetailRows())

	repo := repository.NewReportsRepository(mock, nil)
	rows, err := repo.ListAllBookings(context.Background())

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "2024-06-12", rows[0].BookingDate)
	assert.Equal(t, "Wednesday", rows[0].Day)
	assert.Equal(t, "Test User", rows[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListBookingsOn_Success(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	date := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`WHERE b\.booking_date = \$1`).
		WithArgs(date).
		WillReturnRows(bookingDetailRows())

	repo := repository.NewReportsRepository(mock, nil)
	rows, err := repo.ListBookingsOn(context.Background(), date)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListBookingsSince_QueryError(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	lower := time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`WHERE b\.booking_date >= \$1`).
		WithArgs(lower).
		WillReturnError(assert.AnError)

	repo := repository.NewReportsRepository(mock, nil)
	_, err = repo.ListBookingsSince(context.Background(), lower)

	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountBookings(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	date := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM bookings WHERE booking_date = $1`)).
		WithArgs(date).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM bookings WHERE booking_date >= $1`)).
		WithArgs(date).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(5))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM bookings`)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(9))

	repo := repository.NewReportsRepository(mock, nil)

	onCount, err := repo.CountBookingsOn(context.Background(), date)
	require.NoError(t, err)
	assert.Equal(t, 3, onCount)

	sinceCount, err := repo.CountBookingsSince(context.Background(), date)
	require.NoError(t, err)
	assert.Equal(t, 5, sinceCount)

	allCount, err := repo.CountAllBookings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 9, allCount)

	require.NoError(t, mock.ExpectationsWereMet())
}
