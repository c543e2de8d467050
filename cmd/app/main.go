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

	"deliverytime/cmd"
	httpadapter "deliverytime/internal/adapters/in/http"
	"deliverytime/internal/adapters/out/postgres/orderrepo"
	"deliverytime/internal/adapters/out/postgres/rulerepo"
	_ "deliverytime/internal/generated/docs"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	level, err := configs.SlogLevel()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	location, err := configs.Location()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	gormDB := openDatabase(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, location, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seedRules(ctx, &app, configs.RulesSeedPath, logger)

	if configs.OrderSchedulingEnable {
		jobManager := app.CreateJobManager()
		if err = jobManager.StartAll(); err != nil {
			log.Fatalf("Failed to start jobs: %v", err)
		}
		defer jobManager.StopAll()
	}

	startWebServer(ctx, &app, configs, logger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		slog.Info("No .env file loaded, using process environment", "error", err)
	}

	config, err := cmd.NewConfig()
	if err != nil {
		log.Fatalf("Error reading configuration: %v", err)
	}
	return config
}

func openDatabase(configs cmd.Config) *gorm.DB {
	gormDB, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&rulerepo.RuleDTO{}, &orderrepo.OrderDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	return gormDB
}

func seedRules(ctx context.Context, app *cmd.CompositionRoot, path string, logger *slog.Logger) {
	if path == "" {
		return
	}

	result, err := app.CreateRuleSeeder().SeedFile(ctx, path)
	if err != nil {
		log.Fatalf("Failed to seed rules from %s: %v", path, err)
	}
	logger.InfoContext(ctx, "Rule seed applied", "path", path, "created", result.Created, "skipped", result.Skipped)
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	e, err := httpadapter.NewRouter(app.CreateHTTPServer(), httpadapter.RouterConfig{
		AdminAPIKey: configs.AdminAPIKey,
	}, logger)
	if err != nil {
		log.Fatalf("Failed to build HTTP router: %v", err)
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if shutdownErr := e.Shutdown(shutdownCtx); shutdownErr != nil {
			logger.Error("HTTP server shutdown failed", "error", shutdownErr)
		}
	}()

	logger.Info("HTTP server listening", "port", configs.HTTPPort)
	if err = e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("HTTP server failed: %v", err)
	}
}
