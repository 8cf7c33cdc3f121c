package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/wfhtracker/wfh-backend-go/internal/config"
	"github.com/wfhtracker/wfh-backend-go/internal/fixtures"
	"github.com/wfhtracker/wfh-backend-go/internal/pkg/database"
	"github.com/wfhtracker/wfh-backend-go/internal/repository/postgresql"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		os.Exit(1)
	}
	defer db.Close()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "wfh-tracker-seed"),
	)

	seeder := fixtures.NewSeeder(
		db,
		postgresql.NewStaffRepository(db),
		postgresql.NewReasonRepository(db),
		postgresql.NewEntryRepository(db),
		logger,
	)

	if err := seeder.Run(context.Background()); err != nil {
		logger.Error("seeding failed", "error", err)
		os.Exit(1)
	}

	logger.Info("seeding complete")
}
