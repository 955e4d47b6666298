package store

import (
	"database/sql"
	"log"
	"time"

	_ "modernc.org/sqlite"

	"github.com/askmeteo/weather-chat/internal/chat"
)

// SQLiteStore implements chat.Store on a local sqlite database
// (pure Go driver modernc.org/sqlite).
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the database at path and applies the schema.
func NewSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// WAL for better concurrency on small writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		log.Println("warning: could not set WAL mode:", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS messages (
        seq INTEGER PRIMARY KEY AUTOINCREMENT,
        id TEXT NOT NULL,
        role TEXT NOT NULL,
        content TEXT NOT NULL,
        timestamp INTEGER NOT NULL
    );
    CREATE TABLE IF NOT EXISTS searches (
        location TEXT PRIMARY KEY COLLATE NOCASE,
        searched_at TEXT NOT NULL
    );`

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Load() ([]chat.Message, error) {
	rows, err := s.db.Query(`SELECT id, role, content, timestamp FROM messages ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []chat.Message
	for rows.Next() {
		var m chat.Message
		var role string
		if err := rows.Scan(&m.ID, &role, &m.Content, &m.Timestamp); err != nil {
			return nil, err
		}
		m.Role = chat.Role(role)
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Append(msg chat.Message) error {
	_, err := s.db.Exec(`INSERT INTO messages(id, role, content, timestamp) VALUES(?,?,?,?)`,
		msg.ID, string(msg.Role), msg.Content, msg.Timestamp)
	return err
}

func (s *SQLiteStore) Replace(msgs []chat.Message) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM messages`); err != nil {
		tx.Rollback()
		return err
	}

	stmt, err := tx.Prepare(`INSERT INTO messages(id, role, content, timestamp) VALUES(?,?,?,?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, m := range msgs {
		if _, err := stmt.Exec(m.ID, string(m.Role), m.Content, m.Timestamp); err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) RecordSearch(location string, at time.Time) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO searches(location, searched_at) VALUES(?,?)`,
		location, at.UTC().Format(time.RFC3339))
	return err
}

func (s *SQLiteStore) RecentSearches(limit int) ([]string, error) {
	rows, err := s.db.Query(`SELECT location FROM searches ORDER BY searched_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0, limit)
	for rows.Next() {
		var loc string
		if err := rows.Scan(&loc); err != nil {
			return nil, err
		}
		out = append(out, loc)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) PruneSearches(maxAge time.Duration, keep int) (int, error) {
	if maxAge <= 0 {
		return 0, nil
	}

	cutoff := time.Now().Add(-maxAge).UTC().Format(time.RFC3339)
	res, err := s.db.Exec(`DELETE FROM searches
        WHERE searched_at < ?
          AND location NOT IN (SELECT location FROM searches ORDER BY searched_at DESC LIMIT ?)`,
		cutoff, keep)
	if err != nil {
		return 0, err
	}

	n, err := res.RowsAffected()
	return int(n), err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
