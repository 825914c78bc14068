package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/deskhive/seatdesk/internal/config"
	"github.com/deskhive/seatdesk/internal/repository"
	"github.com/deskhive/seatdesk/internal/services/roster"
)

func main() {
	path := flag.String("file", "Employee_data.csv", "path to the employee roster CSV")
	flag.Parse()

	cfg := config.MustLoad()

	dbpool, dbErr := repository.NewDatabase(
		cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Dbname)
	if dbErr != nil {
		log.Fatalf("Failed to connect to DB: %v", dbErr)
	}
	defer dbpool.Close()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	employeeRepo := repository.NewEmployeeRepository(dbpool, nil)
	service := roster.NewService(logger, employeeRepo, nil)

	count, err := service.ImportFile(context.Background(), *path)
	if err != nil {
		log.Fatalf("Roster import failed: %v", err)
	}

	log.Printf("✅ Roster import completed, %d employees saved", count)
}
