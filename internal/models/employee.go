package models

// Employee represents a roster entry. The roster is external seed data:
// the booking flow only ever reads it to validate a submitted employee id.
type Employee struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Department  string `json:"department"`
}
