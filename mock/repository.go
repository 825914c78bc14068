// Package mocks provides testify mocks for the repository interfaces.
package mocks

import (
	"context"
	"time"

	"github.com/deskhive/seatdesk/internal/models"
	"github.com/stretchr/testify/mock"
)

// EmployeeRepoIface is a mock of repository.EmployeeRepoIface.
type EmployeeRepoIface struct {
	mock.Mock
}

func (m *EmployeeRepoIface) SaveEmployee(
	ctx context.Context,
	identifier int,
	name, designation, department string,
) error {
	args := m.Called(ctx, identifier, name, designation, department)
	return args.Error(0)
}

func (m *EmployeeRepoIface) GetEmployeeByID(ctx context.Context, identifier int) (models.Employee, error) {
	args := m.Called(ctx, identifier)
	return args.Get(0).(models.Employee), args.Error(1)
}

// BookingRepoIface is a mock of repository.BookingRepoIface.
type BookingRepoIface struct {
	mock.Mock
}

func (m *BookingRepoIface) BookedSeats(ctx context.Context, date time.Time, timeSlot string) ([]int, error) {
	args := m.Called(ctx, date, timeSlot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *BookingRepoIface) CreateBooking(ctx context.Context, booking models.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

// ReportsRepoIface is a mock of repository.ReportsRepoIface.
type ReportsRepoIface struct {
	mock.Mock
}

func (m *ReportsRepoIface) ListAllBookings(ctx context.Context) ([]models.BookingDetails, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BookingDetails), args.Error(1)
}

func (m *ReportsRepoIface) ListBookingsOn(ctx context.Context, date time.Time) ([]models.BookingDetails, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BookingDetails), args.Error(1)
}

func (m *ReportsRepoIface) ListBookingsSince(ctx context.Context, lower time.Time) ([]models.BookingDetails, error) {
	args := m.Called(ctx, lower)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BookingDetails), args.Error(1)
}

func (m *ReportsRepoIface) CountAllBookings(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *ReportsRepoIface) CountBookingsOn(ctx context.Context, date time.Time) (int, error) {
	args := m.Called(ctx, date)
	return args.Int(0), args.Error(1)
}

func (m *ReportsRepoIface) CountBookingsSince(ctx context.Context, lower time.Time) (int, error) {
	args := m.Called(ctx, lower)
	return args.Int(0), args.Error(1)
}
