package kv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore is the network-backed Store driver, for deployments where the
// record set should live off the host running the service.
type PostgresStore struct {
	pool *pgxpool.Pool
	sb   squirrel.StatementBuilderType
}

// NewPostgresStore connects to Postgres and initializes the records table
func NewPostgresStore(connString string) (*PostgresStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	poolConfig, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgxpool config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to establish database connection: %w", err)
	}

	if _, err := pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS records (
		key   TEXT PRIMARY KEY,
		value BYTEA NOT NULL
	)`); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to initialize store schema: %w", err)
	}

	return &PostgresStore{
		pool: pool,
		sb:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}, nil
}

// Get returns the value stored under key, or ErrKeyNotFound
func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	sql, args, err := s.sb.Select("value").
		From("records").
		Where(squirrel.Eq{"key": key}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get query: %w", err)
	}

	var value []byte
	if err := s.pool.QueryRow(ctx, sql, args...).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("error reading key %q: %w", key, err)
	}
	return value, nil
}

// Put stores value under key, replacing any previous value
func (s *PostgresStore) Put(ctx context.Context, key string, value []byte) error {
	sql, args, err := s.sb.Insert("records").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build put query: %w", err)
	}

	if _, err := s.pool.Exec(ctx, sql, args...); err != nil {
		if isDiskFullError(err) {
			return ErrStoreFull
		}
		return fmt.Errorf("error writing key %q: %w", key, err)
	}
	return nil
}

// Delete removes the value under key
func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	sql, args, err := s.sb.Delete("records").
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	if _, err := s.pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error deleting key %q: %w", key, err)
	}
	return nil
}

// Close closes the connection pool
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

// isDiskFullError reports whether err is PostgreSQL disk_full (53100)
func isDiskFullError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "53100"
}
