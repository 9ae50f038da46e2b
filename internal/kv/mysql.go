package kv

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/vibe-gaming/waitlist/internal/db"
)

const createTableQuery = `
CREATE TABLE IF NOT EXISTS kv_store (
	k VARCHAR(255) NOT NULL PRIMARY KEY,
	v MEDIUMTEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
) DEFAULT CHARSET = utf8mb4 COLLATE = utf8mb4_bin;
`

var likeReplacer = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// MySQLStore keeps the waiting list in a single two-column table. The binary
// collation keeps key comparison and ordering byte-wise like the other
// backends.
type MySQLStore struct {
	db *sqlx.DB
}

func NewMySQLStore(ctx context.Context, conn *sqlx.DB) (*MySQLStore, error) {
	if _, err := conn.ExecContext(ctx, createTableQuery); err != nil {
		return nil, errors.Wrap(err, "create kv_store table")
	}
	return &MySQLStore{db: conn}, nil
}

func (s *MySQLStore) Get(ctx context.Context, key string) (string, error) {
	const query = `SELECT v FROM kv_store WHERE k = ?;`

	var v string
	if err := s.db.GetContext(ctx, &v, query, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", errors.Wrapf(err, "select kv %q", key)
	}
	return v, nil
}

func (s *MySQLStore) Put(ctx context.Context, key, value string) error {
	const query = `
	INSERT INTO kv_store (k, v) VALUES (?, ?)
	ON DUPLICATE KEY UPDATE v = VALUES(v);
	`
	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return errors.Wrapf(err, "upsert kv %q", key)
	}
	return nil
}

func (s *MySQLStore) PutIfAbsent(ctx context.Context, key, value string) error {
	const query = `INSERT INTO kv_store (k, v) VALUES (?, ?);`

	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		if db.IsDuplicateEntry(err) {
			return ErrKeyExists
		}
		return errors.Wrapf(err, "insert kv %q", key)
	}
	return nil
}

func (s *MySQLStore) Delete(ctx context.Context, key string) error {
	const query = `DELETE FROM kv_store WHERE k = ?;`

	if _, err := s.db.ExecContext(ctx, query, key); err != nil {
		return errors.Wrapf(err, "delete kv %q", key)
	}
	return nil
}

func (s *MySQLStore) List(ctx context.Context, prefix string) ([]string, error) {
	const query = `SELECT k FROM kv_store WHERE k LIKE ? ORDER BY k ASC;`

	keys := []string{}
	if err := s.db.SelectContext(ctx, &keys, query, likeReplacer.Replace(prefix)+"%"); err != nil {
		return nil, errors.Wrapf(err, "list kv %q", prefix)
	}
	return keys, nil
}

func (s *MySQLStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
