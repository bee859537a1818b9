package main

import (
	"context"
	"log"
	"log/slog"
	"time"

	"github.com/vido/mediatag/internal/catalogstore"
	"github.com/vido/mediatag/internal/catalogstore/migrations"
	"github.com/vido/mediatag/internal/config"
	"github.com/vido/mediatag/internal/groupsync"
	"github.com/vido/mediatag/internal/secretbox"

	_ "github.com/vido/mediatag/internal/catalogstore/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.GroupSyncURL == "" {
		log.Fatal("MEDIATAG_GROUPSYNC_URL must be set")
	}

	db, err := catalogstore.Initialize(cfg.CatalogStore)
	if err != nil {
		log.Fatalf("Failed to initialize catalog store: %v", err)
	}
	defer db.Close()

	runner, err := migrations.NewRunner(db.Conn())
	if err != nil {
		log.Fatalf("Failed to create migration runner: %v", err)
	}
	if err := runner.RegisterAll(migrations.GetAll()); err != nil {
		log.Fatalf("Failed to register migrations: %v", err)
	}
	ctx := context.Background()
	if err := runner.Up(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	username, password := cfg.GroupSyncUsername, cfg.GroupSyncPassword
	if username != "" {
		key, source, err := secretbox.DeriveKey()
		if err != nil {
			log.Fatalf("Failed to derive encryption key: %v", err)
		}
		slog.Info("derived groupsync encryption key", "source", source)

		encrypted, err := secretbox.Encrypt([]byte(password), key)
		if err != nil {
			log.Fatalf("Failed to encrypt groupsync credentials: %v", err)
		}
		decrypted, err := secretbox.Decrypt(encrypted, key)
		if err != nil {
			log.Fatalf("Failed to decrypt groupsync credentials: %v", err)
		}
		password = string(decrypted)
	}

	client := groupsync.NewClient(time.Duration(cfg.GroupSyncIntervalSeconds)*time.Second, username, password)
	scraper, err := groupsync.NewScraper()
	if err != nil {
		log.Fatalf("Failed to build scraper: %v", err)
	}

	result, err := groupsync.Sync(ctx, client, scraper, db, cfg.GroupSyncURL, cfg.GroupSyncMaxEditDistance)
	if err != nil {
		log.Fatalf("Release-group sync failed: %v", err)
	}

	slog.Info("mediatag-groups run complete",
		"scraped", result.Scraped,
		"accepted", len(result.Accepted),
		"skipped_near_duplicate", result.SkippedNear,
		"already_known", result.AlreadyKnown,
	)
}
