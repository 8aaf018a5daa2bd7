package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/newark-medical/hospital-api/internal/config"
	"github.com/newark-medical/hospital-api/internal/domain/assignment"
	"github.com/newark-medical/hospital-api/internal/domain/clinical"
	"github.com/newark-medical/hospital-api/internal/domain/occupancy"
	"github.com/newark-medical/hospital-api/internal/domain/patient"
	"github.com/newark-medical/hospital-api/internal/domain/scheduling"
	"github.com/newark-medical/hospital-api/internal/domain/staff"
	"github.com/newark-medical/hospital-api/internal/domain/surgery"
	"github.com/newark-medical/hospital-api/internal/platform/db"
	"github.com/newark-medical/hospital-api/internal/platform/middleware"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hospital-server",
		Short: "Hospital administration API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(schemaCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func schemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "apply",
		Short: "Create missing tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			schema := db.NewSchema(pool)
			if err := schema.Apply(ctx); err != nil {
				return fmt.Errorf("schema apply failed: %w", err)
			}
			fmt.Printf("Schema applied, %d table(s) ensured.\n", schema.TableCount())
			return nil
		},
	})

	return cmd
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	// Database
	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	logger.Info().Msg("connected to database")

	// Tables are created on boot so a fresh database serves requests
	// without a separate provisioning step.
	if err := db.NewSchema(pool).Apply(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to apply schema")
	}
	logger.Info().Msg("schema ready")

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.ErrorHandler(logger)

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{"Content-Type", "X-Request-ID"},
	}))

	api := e.Group("/api")

	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	api.Use(middleware.RateLimit(rateLimitCfg))

	// Repositories
	patientRepo := patient.NewRepoPG(pool)
	staffRepo := staff.NewRepoPG(pool)
	shiftRepo := staff.NewShiftRepoPG(pool)
	appointmentRepo := scheduling.NewRepoPG(pool)
	diagnosisRepo := clinical.NewRepoPG(pool)
	doctorAssignRepo := assignment.NewDoctorRepoPG(pool)
	nurseAssignRepo := assignment.NewNurseRepoPG(pool)
	roomRepo := occupancy.NewRoomRepoPG(pool)
	stayRepo := occupancy.NewStayRepoPG(pool)
	roomAssignRepo := occupancy.NewAssignmentRepoPG(pool)
	surgeryRepo := surgery.NewRepoPG(pool)

	inTx := func(ctx context.Context, fn func(context.Context) error) error {
		return db.RunInTx(ctx, pool, fn)
	}

	// Services
	patientSvc := patient.NewService(patientRepo)
	staffSvc := staff.NewService(staffRepo, shiftRepo)
	appointmentSvc := scheduling.NewService(appointmentRepo, patientSvc)
	diagnosisSvc := clinical.NewService(diagnosisRepo, patientSvc)
	assignmentSvc := assignment.NewService(doctorAssignRepo, nurseAssignRepo, patientSvc, staffSvc)
	occupancySvc := occupancy.NewService(roomRepo, stayRepo, roomAssignRepo, patientSvc, inTx)
	surgerySvc := surgery.NewService(surgeryRepo, patientSvc, staffSvc)

	// Routes
	patient.NewHandler(patientSvc).RegisterRoutes(api)
	staff.NewHandler(staffSvc).RegisterRoutes(api)
	scheduling.NewHandler(appointmentSvc).RegisterRoutes(api)
	clinical.NewHandler(diagnosisSvc).RegisterRoutes(api)
	assignment.NewHandler(assignmentSvc).RegisterRoutes(api)
	occupancy.NewHandler(occupancySvc).RegisterRoutes(api)
	surgery.NewHandler(surgerySvc).RegisterRoutes(api)

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"message": cfg.ServiceName + " API is running",
		})
	})
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status": "healthy",
		})
	})
	e.GET("/health/db", db.HealthHandler(pool))

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
