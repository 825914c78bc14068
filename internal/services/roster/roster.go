package roster

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/deskhive/seatdesk/internal/lib/logger/sl"
	"github.com/deskhive/seatdesk/internal/metrics"
	"github.com/deskhive/seatdesk/internal/repository"
)

// ErrMissingColumns is returned when the roster file header lacks a required column.
var ErrMissingColumns = errors.New("roster file is missing required columns")

var requiredColumns = []string{"id", "name", "designation", "department"}

// Service imports the employee roster from a CSV file. The import is
// idempotent: rows whose id already exists are left untouched.
type Service struct {
	log     *slog.Logger
	repo    repository.EmployeeRepoIface
	metrics *metrics.Metrics
}

func NewService(log *slog.Logger, repo repository.EmployeeRepoIface, mtr *metrics.Metrics) *Service {
	return &Service{log: log, repo: repo, metrics: mtr}
}

// ImportFile reads the CSV roster at path and saves every well-formed row.
// Malformed rows are skipped with a warning. Returns the number of rows saved.
func (s *Service) ImportFile(ctx context.Context, path string) (int, error) {
	const opn = "Roster.ImportFile"
	log := s.log.With(slog.String("op", opn), slog.String("division", "roster"))

	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open roster file: %w", err)
	}
	defer file.Close()

	count, err := s.importRecords(ctx, log, csv.NewReader(file))
	if err != nil {
		return count, err
	}

	log.InfoContext(ctx, "roster import finished", "imported", count, "path", path)

	return count, nil
}

func (s *Service) importRecords(ctx context.Context, log *slog.Logger, reader *csv.Reader) (int, error) {
	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read roster header: %w", err)
	}

	columns, err := columnIndexes(header)
	if err != nil {
		return 0, err
	}

	var count int
	for {
		record, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			log.WarnContext(ctx, "skipping unreadable roster row", sl.Err(readErr))
			continue
		}

		id, convErr := strconv.Atoi(strings.TrimSpace(record[columns["id"]]))
		if convErr != nil {
			log.WarnContext(ctx, "skipping roster row with non-numeric id",
				"value", record[columns["id"]])
			continue
		}

		name := strings.TrimSpace(record[columns["name"]])
		if name == "" {
			log.WarnContext(ctx, "skipping roster row with empty name", "id", id)
			continue
		}

		saveErr := s.repo.SaveEmployee(ctx, id, name,
			strings.TrimSpace(record[columns["designation"]]),
			strings.TrimSpace(record[columns["department"]]))
		if saveErr != nil {
			return count, fmt.Errorf("failed to save employee %d: %w", id, saveErr)
		}

		if s.metrics != nil {
			s.metrics.RosterImported.Inc()
		}
		count++
	}

	return count, nil
}

// columnIndexes maps the required column names to their positions in the header.
func columnIndexes(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(requiredColumns))
	for idx, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = idx
	}

	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumns, name)
		}
	}

	return columns, nil
}
