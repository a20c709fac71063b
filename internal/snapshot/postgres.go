package snapshot

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps each snapshot as one row of the snapshots table.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore constructs a PostgresStore. The table is created by
// database.EnsureSchema.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// Put upserts the snapshot row in a single statement.
func (s *PostgresStore) Put(ctx context.Context, key string, data []byte) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO snapshots (name, data, saved_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, saved_at = EXCLUDED.saved_at`,
		key, data,
	)
	if err != nil {
		return fmt.Errorf("upsert snapshot: %w", err)
	}
	return nil
}

// Get returns the snapshot stored under key.
func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow(ctx, `SELECT data FROM snapshots WHERE name = $1`, key).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("snapshot %q: %w", key, fs.ErrNotExist)
		}
		return nil, fmt.Errorf("select snapshot: %w", err)
	}
	return data, nil
}
