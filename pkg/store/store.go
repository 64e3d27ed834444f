// Package store keeps a local snapshot of metadata records in SQLite so
// searches keep working without network access. Records are indexed with
// FTS5 over their title, abstract and keywords.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/geoapis/go-isogeo/pkg/models"
)

type Store struct {
	db *sql.DB
}

// Record is one snapshot row, the raw record plus the fields the local
// index needs.
type Record struct {
	ID       string
	Title    string
	Abstract string
	Type     string
	Owner    string
	Modified string
	Raw      models.Metadata
}

// Open opens (or creates) a snapshot database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 30000",
		"PRAGMA cache_size = -64000", // 64MB cache
		"PRAGMA temp_store = memory",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return nil, fmt.Errorf("applying pragma %q: %w", pragma, err)
		}
	}

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) initSchema() error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS records (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			abstract TEXT,
			keywords TEXT,
			type TEXT,
			owner TEXT,
			modified TEXT,
			raw TEXT NOT NULL,
			synced_at TIMESTAMP NOT NULL
		)`,
		`CREATE VIRTUAL TABLE IF NOT EXISTS records_fts USING fts5(
			title,
			abstract,
			keywords,
			content='records',
			content_rowid='rowid',
			tokenize='porter'
		)`,
		`CREATE TABLE IF NOT EXISTS sync_metadata (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
	}
	for _, stmt := range schema {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRecords upserts a batch of records in one transaction.
func (s *Store) SaveRecords(records []models.Metadata) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO records (id, title, abstract, keywords, type, owner, modified, raw, synced_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	ftsStmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO records_fts (rowid, title, abstract, keywords)
		VALUES ((SELECT rowid FROM records WHERE id = ?), ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing FTS statement: %w", err)
	}
	defer func() { _ = ftsStmt.Close() }()

	now := time.Now()
	for _, md := range records {
		raw, err := json.Marshal(md)
		if err != nil {
			return fmt.Errorf("marshaling record %s: %w", md.ID, err)
		}

		keywords := keywordText(md)
		owner := ""
		if md.Creator != nil {
			owner = md.Creator.ID
		}

		if _, err := stmt.Exec(md.ID, md.Title, md.Abstract, keywords, md.Type, owner, md.Modified, string(raw), now); err != nil {
			return fmt.Errorf("inserting record %s: %w", md.ID, err)
		}
		if _, err := ftsStmt.Exec(md.ID, md.Title, md.Abstract, keywords); err != nil {
			return fmt.Errorf("indexing record %s: %w", md.ID, err)
		}
	}

	err = tx.Commit()
	if err == nil {
		committed = true
	}
	return err
}

func keywordText(md models.Metadata) string {
	if len(md.Keywords) == 0 {
		return ""
	}
	texts := make([]string, 0, len(md.Keywords))
	for _, kw := range md.Keywords {
		texts = append(texts, kw.Text)
	}
	return strings.Join(texts, " ")
}

// Search returns the records matching an FTS5 query, best matches first.
// An empty query returns the most recently modified records.
func (s *Store) Search(query string, limit int) ([]Record, error) {
	var sqlQuery string
	var args []any

	if query != "" {
		sqlQuery = `
			SELECT r.id, r.title, r.abstract, r.type, r.owner, r.modified, r.raw
			FROM records r
			JOIN records_fts fts ON r.rowid = fts.rowid
			WHERE records_fts MATCH ?
			ORDER BY bm25(records_fts), r.modified DESC
			LIMIT ?`
		args = []any{query, limit}
	} else {
		sqlQuery = `
			SELECT id, title, abstract, type, owner, modified, raw
			FROM records
			ORDER BY modified DESC
			LIMIT ?`
		args = []any{limit}
	}

	rows, err := s.db.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanRecords(rows)
}

// Get returns one record by UUID, or sql.ErrNoRows.
func (s *Store) Get(id string) (*Record, error) {
	row := s.db.QueryRow(`
		SELECT id, title, abstract, type, owner, modified, raw
		FROM records WHERE id = ?`, id)

	rec, err := scanRecord(row.Scan)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Delete removes one record from the snapshot.
func (s *Store) Delete(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.Exec(`
		DELETE FROM records_fts
		WHERE rowid = (SELECT rowid FROM records WHERE id = ?)`, id); err != nil {
		return fmt.Errorf("removing record %s from index: %w", id, err)
	}
	if _, err := tx.Exec(`DELETE FROM records WHERE id = ?`, id); err != nil {
		return fmt.Errorf("removing record %s: %w", id, err)
	}

	err = tx.Commit()
	if err == nil {
		committed = true
	}
	return err
}

// Count returns the number of records in the snapshot.
func (s *Store) Count() (int, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM records").Scan(&count); err != nil {
		return 0, fmt.Errorf("counting records: %w", err)
	}
	return count, nil
}

// Each streams every record of the snapshot through fn, stopping at the
// first error.
func (s *Store) Each(fn func(Record) error) error {
	rows, err := s.db.Query(`
		SELECT id, title, abstract, type, owner, modified, raw
		FROM records
		ORDER BY id`)
	if err != nil {
		return fmt.Errorf("querying records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		rec, err := scanRecord(rows.Scan)
		if err != nil {
			return err
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
	return rows.Err()
}

// SetLastSync records when the snapshot was last refreshed.
func (s *Store) SetLastSync(t time.Time) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO sync_metadata (key, value, updated_at)
		VALUES ('last_sync', ?, ?)
	`, t.Format(time.RFC3339), time.Now())
	return err
}

// LastSync returns when the snapshot was last refreshed, zero if never.
func (s *Store) LastSync() (time.Time, error) {
	var value string
	err := s.db.QueryRow(`
		SELECT value FROM sync_metadata WHERE key = 'last_sync'
	`).Scan(&value)
	if err == sql.ErrNoRows {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339, value)
}

// Optimize runs the SQLite maintenance pragmas.
func (s *Store) Optimize() error {
	if _, err := s.db.Exec("PRAGMA optimize"); err != nil {
		return err
	}
	_, err := s.db.Exec("PRAGMA wal_checkpoint(TRUNCATE)")
	return err
}

func scanRecords(rows *sql.Rows) ([]Record, error) {
	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func scanRecord(scan func(...any) error) (Record, error) {
	var rec Record
	var abstract, mdType, owner, modified sql.NullString
	var raw string

	if err := scan(&rec.ID, &rec.Title, &abstract, &mdType, &owner, &modified, &raw); err != nil {
		return Record{}, fmt.Errorf("scanning row: %w", err)
	}

	rec.Abstract = abstract.String
	rec.Type = mdType.String
	rec.Owner = owner.String
	rec.Modified = modified.String

	if err := json.Unmarshal([]byte(raw), &rec.Raw); err != nil {
		return Record{}, fmt.Errorf("unmarshaling record %s: %w", rec.ID, err)
	}
	return rec, nil
}
