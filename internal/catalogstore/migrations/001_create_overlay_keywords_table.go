package migrations

import "database/sql"

func init() {
	if err := Register(newOverlayKeywordsMigration()); err != nil {
		panic(err)
	}
}

type overlayKeywordsMigration struct {
	migrationBase
}

func newOverlayKeywordsMigration() *overlayKeywordsMigration {
	base := NewMigrationBase(1, "create_overlay_keywords_table")
	return &overlayKeywordsMigration{migrationBase: base}
}

func (m *overlayKeywordsMigration) Up(tx *sql.Tx) error {
	_, err := tx.Exec(`
		CREATE TABLE IF NOT EXISTS overlay_keywords (
			value      TEXT NOT NULL PRIMARY KEY,
			kind       TEXT NOT NULL,
			ambiguous  INTEGER NOT NULL DEFAULT 0,
			added_at   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`CREATE INDEX IF NOT EXISTS idx_overlay_keywords_kind ON overlay_keywords(kind)`)
	return err
}

func (m *overlayKeywordsMigration) Down(tx *sql.Tx) error {
	_, err := tx.Exec(`DROP TABLE IF EXISTS overlay_keywords`)
	return err
}
