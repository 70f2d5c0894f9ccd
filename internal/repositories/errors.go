package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned when a lookup by id matches no row, or a
	// write affects no rows.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidReference is returned when a movie names a genre_id or
	// director_id that does not exist.
	ErrInvalidReference = errors.New("referenced record does not exist")
)

// writeError maps a foreign key violation (SQLSTATE 23503) to
// ErrInvalidReference and passes everything else through.
func writeError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return ErrInvalidReference
	}
	return err
}
