package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"MovieCatalogAPI/internal/models"
)

const movieColumns = "id, title, description, trailer, year, rating, genre_id, director_id"

// MovieFilter narrows a listing to movies matching the set fields. Both
// filters compose with AND.
type MovieFilter struct {
	DirectorID *int
	GenreID    *int
}

type MovieRepository struct {
	DB *pgxpool.Pool
}

func NewMovieRepository(db *pgxpool.Pool) *MovieRepository {
	return &MovieRepository{DB: db}
}

func (r *MovieRepository) List(ctx context.Context, filter MovieFilter) ([]models.Movie, error) {
	query := "SELECT " + movieColumns + " FROM movie"
	var (
		where []string
		args  []any
	)
	if filter.DirectorID != nil {
		args = append(args, *filter.DirectorID)
		where = append(where, fmt.Sprintf("director_id=$%d", len(args)))
	}
	if filter.GenreID != nil {
		args = append(args, *filter.GenreID)
		where = append(where, fmt.Sprintf("genre_id=$%d", len(args)))
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := []models.Movie{}
	for rows.Next() {
		var m models.Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.Description, &m.Trailer, &m.Year, &m.Rating, &m.GenreID, &m.DirectorID); err != nil {
			return nil, err
		}
		movies = append(movies, m)
	}
	return movies, rows.Err()
}

func (r *MovieRepository) GetByID(ctx context.Context, id int) (models.Movie, error) {
	var m models.Movie
	err := r.DB.QueryRow(ctx, "SELECT "+movieColumns+" FROM movie WHERE id=$1", id).
		Scan(&m.ID, &m.Title, &m.Description, &m.Trailer, &m.Year, &m.Rating, &m.GenreID, &m.DirectorID)
	if errors.Is(err, pgx.ErrNoRows) {
		return m, fmt.Errorf("movie %d: %w", id, ErrNotFound)
	}
	return m, err
}

func (r *MovieRepository) Create(ctx context.Context, in models.MovieInput) (int, error) {
	var id int
	err := r.DB.QueryRow(ctx,
		"INSERT INTO movie (title, description, trailer, year, rating, genre_id, director_id) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id",
		in.Title, in.Description, in.Trailer, in.Year, in.Rating, in.GenreID, in.DirectorID).Scan(&id)
	if err != nil {
		return 0, writeError(err)
	}
	return id, nil
}

// Replace writes every column from in, so fields the caller left at their
// zero value overwrite whatever the row held.
func (r *MovieRepository) Replace(ctx context.Context, id int, in models.MovieInput) error {
	tag, err := r.DB.Exec(ctx,
		"UPDATE movie SET title=$1, description=$2, trailer=$3, year=$4, rating=$5, genre_id=$6, director_id=$7 WHERE id=$8",
		in.Title, in.Description, in.Trailer, in.Year, in.Rating, in.GenreID, in.DirectorID, id)
	if err != nil {
		return writeError(err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("movie %d: %w", id, ErrNotFound)
	}
	return nil
}

func (r *MovieRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, "DELETE FROM movie WHERE id=$1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("movie %d: %w", id, ErrNotFound)
	}
	return nil
}
