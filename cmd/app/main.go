package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tracking/cmd"
	httpadapter "tracking/internal/adapters/in/http"
	"tracking/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.SlogLevel()}))
	slog.SetDefault(logger)

	db, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	if err = postgres.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	app, err := cmd.NewCompositionRoot(configs, db, registry, logger)
	if err != nil {
		log.Fatalf("failed to build application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, registry, logger, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	loadDotEnv()

	config := cmd.Config{
		HTTPPort:    os.Getenv("HTTP_PORT"),
		DBHost:      os.Getenv("DB_HOST"),
		DBPort:      os.Getenv("DB_PORT"),
		DBUser:      os.Getenv("DB_USER"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      os.Getenv("DB_NAME"),
		DBSslMode:   os.Getenv("DB_SSLMODE"),
		Timezone:    os.Getenv("APP_TIMEZONE"),
		MetricsCron: os.Getenv("METRICS_CRON"),
		LogLevel:    os.Getenv("LOG_LEVEL"),
	}
	return config.WithDefaults()
}

// loadDotEnv reads .env when present; real environment variables win.
func loadDotEnv() {
	err := godotenv.Load(".env")
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}
}

func startWebServer(app cmd.CompositionRoot, registry *prometheus.Registry, logger *slog.Logger, port string) {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())
	e.Use(httpadapter.RequestLogger(logger))
	e.Use(middleware.Recover())

	httpadapter.RegisterRoutes(e, app.CreateServer(), promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Fatal(err)
	}
}
