package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS director (
	id   serial PRIMARY KEY,
	name text NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS genre (
	id   serial PRIMARY KEY,
	name text NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS movie (
	id          serial PRIMARY KEY,
	title       text NOT NULL DEFAULT '',
	description text NOT NULL DEFAULT '',
	trailer     text NOT NULL DEFAULT '',
	year        integer NOT NULL DEFAULT 0,
	rating      double precision NOT NULL DEFAULT 0,
	genre_id    integer REFERENCES genre (id) ON DELETE SET NULL,
	director_id integer REFERENCES director (id) ON DELETE SET NULL
);
`

// Connect opens a pooled connection to the database and verifies it with a
// ping. The pool is shared by all repositories; each query acquires and
// releases a connection.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// Migrate applies the catalog schema. The DDL is idempotent, so running it
// on every startup is safe.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schema)
	return err
}
