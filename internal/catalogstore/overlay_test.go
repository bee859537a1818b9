package catalogstore

import (
	"context"
	"testing"
	"time"

	"github.com/vido/mediatag/internal/catalogstore/migrations"
	"github.com/vido/mediatag/internal/config"
	"github.com/vido/mediatag/internal/keyword"
)

func newTestDBWithOverlayTable(t *testing.T) *DB {
	t.Helper()

	cfg := &config.DatabaseConfig{
		Path:            ":memory:",
		WALEnabled:      false,
		MaxOpenConns:    5,
		MaxIdleConns:    2,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 1 * time.Minute,
		BusyTimeout:     5 * time.Second,
		CacheSize:       -64000,
	}

	db, err := New(cfg)
	if err != nil {
		t.Fatalf("Failed to create database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	runner, err := migrations.NewRunner(db.Conn())
	if err != nil {
		t.Fatalf("Failed to create migration runner: %v", err)
	}
	if err := runner.RegisterAll(migrations.GetAll()); err != nil {
		t.Fatalf("Failed to register migrations: %v", err)
	}
	if err := runner.Up(context.Background()); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

func TestAddAndLoadOverlayKeywords(t *testing.T) {
	db := newTestDBWithOverlayTable(t)
	ctx := context.Background()

	if err := db.AddOverlayKeyword(ctx, "customgroup", keyword.ReleaseGroup, false); err != nil {
		t.Fatalf("AddOverlayKeyword failed: %v", err)
	}

	entries, err := db.LoadOverlayKeywords(ctx)
	if err != nil {
		t.Fatalf("LoadOverlayKeywords failed: %v", err)
	}

	entry, ok := entries["customgroup"]
	if !ok {
		t.Fatal("expected customgroup entry to be present")
	}
	if entry.Kind != keyword.ReleaseGroup {
		t.Errorf("expected kind ReleaseGroup, got %v", entry.Kind)
	}
}

func TestAddOverlayKeyword_UpsertsOnConflict(t *testing.T) {
	db := newTestDBWithOverlayTable(t)
	ctx := context.Background()

	if err := db.AddOverlayKeyword(ctx, "dual", keyword.AudioLanguage, true); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}
	if err := db.AddOverlayKeyword(ctx, "dual", keyword.ReleaseGroup, false); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	entries, err := db.LoadOverlayKeywords(ctx)
	if err != nil {
		t.Fatalf("LoadOverlayKeywords failed: %v", err)
	}
	if entries["dual"].Kind != keyword.ReleaseGroup {
		t.Errorf("expected upsert to overwrite kind, got %v", entries["dual"].Kind)
	}
	if entries["dual"].Ambiguous {
		t.Errorf("expected upsert to overwrite ambiguous flag to false")
	}
}
