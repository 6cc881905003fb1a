// Package journal records applied renames in a per-folder SQLite database
// so batches can be undone and already-processed files recognized.
package journal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Dir is the per-folder dot directory refile keeps its state in.
const Dir = ".refile"

// DBFile is the journal database filename inside Dir.
const DBFile = "journal.db"

// Journal wraps the SQLite connection for one folder.
type Journal struct {
	db *sql.DB
}

// Entry is one applied rename.
type Entry struct {
	ID        string    `json:"id"`
	BatchID   string    `json:"batch_id"`
	OldName   string    `json:"old_name"`
	NewName   string    `json:"new_name"`
	RenamedAt time.Time `json:"renamed_at"`
}

// Path returns the journal database path for a folder.
func Path(dir string) string {
	return filepath.Join(dir, Dir, DBFile)
}

// Open opens (creating if needed) the journal for the given folder.
func Open(dir string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Join(dir, Dir), 0755); err != nil {
		return nil, fmt.Errorf("creating %s directory: %w", Dir, err)
	}

	db, err := sql.Open("sqlite", Path(dir))
	if err != nil {
		return nil, fmt.Errorf("opening journal: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Journal{db: db}, nil
}

// Close closes the journal database.
func (j *Journal) Close() error {
	return j.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS renames (
			id TEXT PRIMARY KEY,
			batch_id TEXT NOT NULL,
			old_name TEXT NOT NULL,
			new_name TEXT NOT NULL,
			renamed_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_renames_batch ON renames(batch_id);
		CREATE INDEX IF NOT EXISTS idx_renames_new ON renames(new_name);
	`
	_, err := db.Exec(schema)
	return err
}

// RecordBatch stores one applied batch of renames and returns its batch id.
// An empty batch records nothing.
func (j *Journal) RecordBatch(renames map[string]string) (string, error) {
	if len(renames) == 0 {
		return "", nil
	}

	batchID := uuid.NewString()
	now := time.Now().UTC()

	tx, err := j.db.Begin()
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO renames (id, batch_id, old_name, new_name, renamed_at)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for oldName, newName := range renames {
		_, err := stmt.Exec(uuid.NewString(), batchID, oldName, newName, now.Format(time.RFC3339))
		if err != nil {
			return "", fmt.Errorf("inserting rename %s: %w", oldName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing batch: %w", err)
	}
	return batchID, nil
}

// LastBatch returns the entries of the most recently recorded batch, or nil
// when the journal is empty.
func (j *Journal) LastBatch() ([]Entry, error) {
	var batchID string
	err := j.db.QueryRow(`
		SELECT batch_id FROM renames
		ORDER BY renamed_at DESC, rowid DESC LIMIT 1`).Scan(&batchID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding last batch: %w", err)
	}

	rows, err := j.db.Query(`
		SELECT id, batch_id, old_name, new_name, renamed_at
		FROM renames WHERE batch_id = ? ORDER BY old_name`, batchID)
	if err != nil {
		return nil, fmt.Errorf("reading batch %s: %w", batchID, err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// DeleteBatch removes a batch's entries, typically after an undo.
func (j *Journal) DeleteBatch(batchID string) error {
	if _, err := j.db.Exec(`DELETE FROM renames WHERE batch_id = ?`, batchID); err != nil {
		return fmt.Errorf("deleting batch %s: %w", batchID, err)
	}
	return nil
}

// WasRenamed reports whether a filename is the product of an earlier
// recorded rename, letting a scan skip files already processed.
func (j *Journal) WasRenamed(name string) (bool, error) {
	var n int
	err := j.db.QueryRow(`SELECT COUNT(*) FROM renames WHERE new_name = ?`, name).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("querying journal: %w", err)
	}
	return n > 0, nil
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var e Entry
		var ts string
		if err := rows.Scan(&e.ID, &e.BatchID, &e.OldName, &e.NewName, &ts); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		t, err := time.Parse(time.RFC3339, ts)
		if err != nil {
			return nil, fmt.Errorf("parsing timestamp %q: %w", ts, err)
		}
		e.RenamedAt = t
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
