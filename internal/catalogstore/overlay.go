package catalogstore

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vido/mediatag/internal/keyword"
)

// LoadOverlayKeywords reads every row of overlay_keywords into the
// value->keyword.Entry map the keyword package merges on top of its
// built-in table. Rows with a kind this build doesn't recognize are
// skipped with a warning rather than failing the whole load.
func (db *DB) LoadOverlayKeywords(ctx context.Context) (map[string]keyword.Entry, error) {
	rows, err := db.conn.QueryContext(ctx, `SELECT value, kind, ambiguous FROM overlay_keywords`)
	if err != nil {
		return nil, fmt.Errorf("failed to query overlay keywords: %w", err)
	}
	defer rows.Close()

	entries := make(map[string]keyword.Entry)
	for rows.Next() {
		var value, kindName string
		var ambiguous bool
		if err := rows.Scan(&value, &kindName, &ambiguous); err != nil {
			return nil, fmt.Errorf("failed to scan overlay keyword row: %w", err)
		}

		kind, err := keyword.ParseKind(kindName)
		if err != nil {
			slog.Warn("skipping overlay keyword with unrecognized kind", "value", value, "kind", kindName)
			continue
		}
		entries[value] = keyword.Entry{Kind: kind, Ambiguous: ambiguous}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating overlay keyword rows: %w", err)
	}

	return entries, nil
}

// AddOverlayKeyword persists a single learned keyword so future process
// restarts pick it up through LoadOverlayKeywords.
func (db *DB) AddOverlayKeyword(ctx context.Context, value string, kind keyword.Kind, ambiguous bool) error {
	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO overlay_keywords (value, kind, ambiguous)
		VALUES (?, ?, ?)
		ON CONFLICT(value) DO UPDATE SET kind = excluded.kind, ambiguous = excluded.ambiguous
	`, value, kind.String(), ambiguous)
	if err != nil {
		return fmt.Errorf("failed to upsert overlay keyword %q: %w", value, err)
	}
	return nil
}
