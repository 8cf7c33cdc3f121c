package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/wfhtracker/wfh-backend-go/internal/config"
	appHTTP "github.com/wfhtracker/wfh-backend-go/internal/handler/http"
	"github.com/wfhtracker/wfh-backend-go/internal/pkg/database"
	"github.com/wfhtracker/wfh-backend-go/internal/pkg/jwt"
	"github.com/wfhtracker/wfh-backend-go/internal/repository/postgresql"
	analyticsService "github.com/wfhtracker/wfh-backend-go/internal/service/analytics"
	serviceAuth "github.com/wfhtracker/wfh-backend-go/internal/service/auth"
	entryService "github.com/wfhtracker/wfh-backend-go/internal/service/entry"
	reasonService "github.com/wfhtracker/wfh-backend-go/internal/service/reason"
	staffService "github.com/wfhtracker/wfh-backend-go/internal/service/staff"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	staffRepo := postgresql.NewStaffRepository(db)
	reasonRepo := postgresql.NewReasonRepository(db)
	entryRepo := postgresql.NewEntryRepository(db)
	analyticsRepo := postgresql.NewAnalyticsRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := serviceAuth.NewAuthService(staffRepo, jwtService)
	staffSvc := staffService.NewStaffService(staffRepo)
	reasonSvc := reasonService.NewReasonService(reasonRepo)
	entrySvc := entryService.NewEntryService(entryRepo)
	analyticsSvc := analyticsService.NewAnalyticsService(analyticsRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	staffHandler := appHTTP.NewStaffHandler(staffSvc)
	reasonHandler := appHTTP.NewReasonHandler(reasonSvc)
	entryHandler := appHTTP.NewEntryHandler(entrySvc)
	reportHandler := appHTTP.NewReportHandler(analyticsSvc)

	router := appHTTP.NewRouter(
		cfg.App.FrontendURL,
		jwtService,
		authHandler,
		staffHandler,
		reasonHandler,
		entryHandler,
		reportHandler,
	)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Println("Server error:", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Println("Shutdown error:", err)
	}
}
