package groupsync

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vido/mediatag/internal/keyword"
)

// KeywordStore is the subset of catalogstore.DB groupsync needs, kept as an
// interface so Sync can be tested without a real database.
type KeywordStore interface {
	LoadOverlayKeywords(ctx context.Context) (map[string]keyword.Entry, error)
	AddOverlayKeyword(ctx context.Context, value string, kind keyword.Kind, ambiguous bool) error
}

// Result summarizes one Sync run.
type Result struct {
	Scraped      int
	Accepted     []string
	SkippedNear  int
	AlreadyKnown int
}

// Sync fetches url, scrapes its release-group listing, filters out entries
// already in the overlay table or within maxEditDistance of one, and
// persists the rest as new ReleaseGroup overlay keywords.
func Sync(ctx context.Context, client *Client, scraper *Scraper, store KeywordStore, url string, maxEditDistance int) (Result, error) {
	html, err := client.FetchListing(ctx, url)
	if err != nil {
		return Result{}, fmt.Errorf("failed to fetch listing: %w", err)
	}

	names, err := scraper.ParseGroupNames(html)
	if err != nil {
		return Result{}, fmt.Errorf("failed to parse listing: %w", err)
	}

	existingEntries, err := store.LoadOverlayKeywords(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("failed to load existing overlay keywords: %w", err)
	}
	existing := make([]string, 0, len(existingEntries))
	for name := range existingEntries {
		existing = append(existing, name)
	}

	result := Result{Scraped: len(names)}
	var toAdd []string
	for _, name := range names {
		if _, known := existingEntries[name]; known {
			result.AlreadyKnown++
			continue
		}
		toAdd = append(toAdd, name)
	}

	accepted := FilterNearDuplicates(toAdd, existing, maxEditDistance)
	result.SkippedNear = len(toAdd) - len(accepted)

	for _, name := range accepted {
		if err := store.AddOverlayKeyword(ctx, name, keyword.ReleaseGroup, false); err != nil {
			return result, fmt.Errorf("failed to persist release group %q: %w", name, err)
		}
		result.Accepted = append(result.Accepted, name)
	}

	slog.Info("release-group sync completed",
		"scraped", result.Scraped,
		"accepted", len(result.Accepted),
		"skipped_near_duplicate", result.SkippedNear,
		"already_known", result.AlreadyKnown,
	)

	return result, nil
}
