package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/deskhive/seatdesk/internal/models"
	"github.com/jackc/pgx/v5"
)

// SaveEmployee saves an employee to the database. It inserts a new record with the provided details
// unless an employee with the same identifier already exists.
func (r *Repository) SaveEmployee(
	ctx context.Context,
	identifier int,
	name, designation, department string,
) error {
	defer r.observe("save_employee", time.Now())
	query := `
		INSERT INTO employees (id, name, designation, department)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING;
	`

	_, err := r.db.Exec(ctx, query, identifier, name, designation, department)
	if err != nil {
		return fmt.Errorf("failed to save employee: %w", err)
	}

	return nil
}

// GetEmployeeByID retrieves an employee from the database by their ID.
// ErrEmployeeNotFound is returned when no row matches.
func (r *Repository) GetEmployeeByID(ctx context.Context, identifier int) (models.Employee, error) {
	var result models.Employee

	defer r.observe("get_employee_by_id", time.Now())
	query := `SELECT id, name, designation, department FROM employees WHERE id=$1`

	err := r.db.QueryRow(ctx, query, identifier).Scan(
		&result.ID, &result.Name, &result.Designation, &result.Department)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Employee{}, ErrEmployeeNotFound
		}
		return models.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return result, nil
}
