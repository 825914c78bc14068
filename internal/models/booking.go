package models

import "time"

// Booking represents a single seat reservation as stored in the bookings table.
// Day and WeekStart are derived from BookingDate on insert and kept for reporting.
type Booking struct {
	ID          int64     `json:"id"`
	EmployeeID  int       `json:"employee_id"`
	Day         string    `json:"day"`
	TimeSlot    string    `json:"time_slot"`
	SeatNumber  int       `json:"seat_number"`
	WeekStart   time.Time `json:"week_start"`
	BookingDate time.Time `json:"booking_date"`
}

// BookingDetails is a booking row joined with its owner, shaped for the admin API.
// Dates are pre-formatted as YYYY-MM-DD strings.
type BookingDetails struct {
	ID          int64  `json:"id"`
	SeatNumber  int    `json:"seat_number"`
	BookingDate string `json:"booking_date"`
	Day         string `json:"day"`
	TimeSlot    string `json:"time_slot"`
	EmployeeID  int    `json:"employee_id"`
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Department  string `json:"department"`
}

// Stats holds booking totals for every reporting window. All seven counts are
// always present regardless of which window the caller asked rows for.
type Stats struct {
	Today       int `json:"today"`
	Week        int `json:"week"`
	Month       int `json:"month"`
	ThreeMonths int `json:"three_months"`
	SixMonths   int `json:"six_months"`
	Year        int `json:"year"`
	AllTime     int `json:"all_time"`
}
