package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/PixelDavon/SmartReminder/internal/model"
)

const sqliteTimeLayout = time.RFC3339Nano

// SQLiteStore keeps the snapshot as a single JSON blob in a key-value table.
type SQLiteStore struct {
	db  *sql.DB
	log *zap.Logger
}

func NewSQLiteStore(db *sql.DB, log *zap.Logger) (*SQLiteStore, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if log == nil {
		log = zap.NewNop()
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return &SQLiteStore{db: db, log: log}, nil
}

// OpenSQLite opens (creating if needed) the snapshot database at path and
// applies pending migrations.
func OpenSQLite(path string, log *zap.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store, err := NewSQLiteStore(db, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Load(ctx context.Context) (model.Snapshot, error) {
	var payload []byte
	row := s.db.QueryRowContext(ctx, `SELECT payload FROM snapshots WHERE key = ?`, SnapshotKey)
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Snapshot{}, ErrNoSnapshot
		}
		return model.Snapshot{}, fmt.Errorf("load snapshot: %w", err)
	}

	var snap model.Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		// Corrupt stored JSON degrades to an empty start rather than an error.
		s.log.Warn("snapshot payload is malformed, starting empty", zap.Error(err))
		return model.Snapshot{}, ErrNoSnapshot
	}
	snap.Normalize()
	return snap, nil
}

func (s *SQLiteStore) Save(ctx context.Context, snap model.Snapshot) error {
	snap.Normalize()
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO snapshots (key, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		SnapshotKey, payload, time.Now().UTC().Format(sqliteTimeLayout),
	)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}
