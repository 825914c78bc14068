package reports

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/deskhive/seatdesk/internal/lib/logger/sl"
	"github.com/deskhive/seatdesk/internal/models"
	"github.com/deskhive/seatdesk/internal/repository"
)

// Range selects the reporting window for the returned rows.
type Range string

const (
	RangeToday       Range = "today"
	RangeWeek        Range = "week"
	RangeMonth       Range = "month"
	RangeThreeMonths Range = "3months"
	RangeSixMonths   Range = "6months"
	RangeYear        Range = "year"
	RangeAll         Range = "all"
)

// ParseRange maps the query value to a Range. An empty value defaults to week,
// anything unrecognized behaves as all.
func ParseRange(value string) Range {
	switch Range(value) {
	case RangeToday, RangeWeek, RangeMonth, RangeThreeMonths, RangeSixMonths, RangeYear, RangeAll:
		return Range(value)
	}
	if value == "" {
		return RangeWeek
	}
	return RangeAll
}

// Service implements the admin reporting operation.
type Service struct {
	log     *slog.Logger
	repo    repository.ReportsRepoIface
	nowFn   func() time.Time
	timeout time.Duration
}

// NewService builds the reporting service. nowFn supplies "today" so tests can
// pin the clock; production passes time.Now.
func NewService(
	log *slog.Logger,
	repo repository.ReportsRepoIface,
	nowFn func() time.Time,
	timeout time.Duration,
) *Service {
	return &Service{log: log, repo: repo, nowFn: nowFn, timeout: timeout}
}

// Bookings returns the rows matching the requested range together with the
// totals for every window. The stats never depend on the selected range: the
// admin UI switches windows without re-fetching counts.
func (s *Service) Bookings(pctx context.Context, rng Range) ([]models.BookingDetails, models.Stats, error) {
	const opn = "Reports.Bookings"
	log := s.log.With(slog.String("op", opn), slog.String("division", "reports"))

	today := truncateToDay(s.nowFn())

	ctx, cancel := context.WithTimeout(pctx, s.timeout)
	defer cancel()

	rows, err := s.listRows(ctx, rng, today)
	if err != nil {
		log.ErrorContext(ctx, "failed to list bookings", sl.Err(err), "range", string(rng))
		return nil, models.Stats{}, fmt.Errorf("failed to list bookings: %w", err)
	}

	stats, err := s.collectStats(ctx, today)
	if err != nil {
		log.ErrorContext(ctx, "failed to collect booking stats", sl.Err(err))
		return nil, models.Stats{}, fmt.Errorf("failed to collect booking stats: %w", err)
	}

	return rows, stats, nil
}

func (s *Service) listRows(ctx context.Context, rng Range, today time.Time) ([]models.BookingDetails, error) {
	switch rng {
	case RangeToday:
		return s.repo.ListBookingsOn(ctx, today)
	case RangeWeek:
		return s.repo.ListBookingsSince(ctx, weekLower(today))
	case RangeMonth:
		return s.repo.ListBookingsSince(ctx, monthLower(today, 0))
	case RangeThreeMonths:
		return s.repo.ListBookingsSince(ctx, monthLower(today, 3))
	case RangeSixMonths:
		return s.repo.ListBookingsSince(ctx, monthLower(today, 6))
	case RangeYear:
		return s.repo.ListBookingsSince(ctx, yearLower(today))
	case RangeAll:
		return s.repo.ListAllBookings(ctx)
	}
	return s.repo.ListAllBookings(ctx)
}

func (s *Service) collectStats(ctx context.Context, today time.Time) (models.Stats, error) {
	var stats models.Stats
	var err error

	if stats.Today, err = s.repo.CountBookingsOn(ctx, today); err != nil {
		return models.Stats{}, err
	}
	if stats.Week, err = s.repo.CountBookingsSince(ctx, weekLower(today)); err != nil {
		return models.Stats{}, err
	}
	if stats.Month, err = s.repo.CountBookingsSince(ctx, monthLower(today, 0)); err != nil {
		return models.Stats{}, err
	}
	if stats.ThreeMonths, err = s.repo.CountBookingsSince(ctx, monthLower(today, 3)); err != nil {
		return models.Stats{}, err
	}
	if stats.SixMonths, err = s.repo.CountBookingsSince(ctx, monthLower(today, 6)); err != nil {
		return models.Stats{}, err
	}
	if stats.Year, err = s.repo.CountBookingsSince(ctx, yearLower(today)); err != nil {
		return models.Stats{}, err
	}
	if stats.AllTime, err = s.repo.CountAllBookings(ctx); err != nil {
		return models.Stats{}, err
	}

	return stats, nil
}

// truncateToDay drops the time-of-day component, keeping the calendar date.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// weekLower is the most recent Sunday on or before today.
func weekLower(today time.Time) time.Time {
	return today.AddDate(0, 0, -int(today.Weekday()))
}

// monthLower is the first day of the month monthsBack months before today.
// time.Date normalizes across year boundaries (January - 3 -> October).
func monthLower(today time.Time, monthsBack int) time.Time {
	return time.Date(today.Year(), today.Month()-time.Month(monthsBack), 1, 0, 0, 0, 0, time.UTC)
}

// yearLower is January 1 of the current year.
func yearLower(today time.Time) time.Time {
	return time.Date(today.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
}
