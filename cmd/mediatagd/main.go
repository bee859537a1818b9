package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vido/mediatag/internal/apiserver"
	"github.com/vido/mediatag/internal/catalogstore"
	"github.com/vido/mediatag/internal/catalogstore/migrations"
	"github.com/vido/mediatag/internal/config"
	"github.com/vido/mediatag/internal/keyword"

	// Import migrations to register them via init()
	_ "github.com/vido/mediatag/internal/catalogstore/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	cfg.LogConfigSources()

	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	slog.Info("initializing catalog store", "path", cfg.CatalogStore.Path)
	db, err := catalogstore.Initialize(cfg.CatalogStore)
	if err != nil {
		log.Fatalf("Failed to initialize catalog store: %v", err)
	}
	defer db.Close()

	slog.Info("running catalog store migrations")
	migrationRunner, err := migrations.NewRunner(db.Conn())
	if err != nil {
		log.Fatalf("Failed to create migration runner: %v", err)
	}
	if err := migrationRunner.RegisterAll(migrations.GetAll()); err != nil {
		log.Fatalf("Failed to register migrations: %v", err)
	}

	ctx := context.Background()
	if err := migrationRunner.Up(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Register the overlay keyword provider before the keyword catalog is
	// first built, so release groups learned by cmd/mediatag-groups show up
	// in the keyword sweep.
	keyword.SetOverlayProvider(func() map[string]keyword.Entry {
		entries, err := db.LoadOverlayKeywords(context.Background())
		if err != nil {
			slog.Error("failed to load overlay keywords, starting with base table only", "error", err.Error())
			return nil
		}
		return entries
	})

	router := apiserver.NewRouter(db, cfg.CORSOrigins)

	addr := cfg.GetAddress()
	slog.Info("starting mediatagd", "addr", addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := router.Run(addr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-quit
	slog.Info("shutting down mediatagd")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Close(); err != nil {
		slog.Error("error closing catalog store", "error", err.Error())
	}

	<-shutdownCtx.Done()
	slog.Info("mediatagd stopped gracefully")
}
