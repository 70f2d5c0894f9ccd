package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"MovieCatalogAPI/internal/models"
)

type GenreRepository struct {
	DB *pgxpool.Pool
}

func NewGenreRepository(db *pgxpool.Pool) *GenreRepository {
	return &GenreRepository{DB: db}
}

func (r *GenreRepository) List(ctx context.Context) ([]models.Genre, error) {
	rows, err := r.DB.Query(ctx, "SELECT id, name FROM genre")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	genres := []models.Genre{}
	for rows.Next() {
		var g models.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		genres = append(genres, g)
	}
	return genres, rows.Err()
}

func (r *GenreRepository) GetByID(ctx context.Context, id int) (models.Genre, error) {
	var g models.Genre
	err := r.DB.QueryRow(ctx, "SELECT id, name FROM genre WHERE id=$1", id).Scan(&g.ID, &g.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return g, fmt.Errorf("genre %d: %w", id, ErrNotFound)
	}
	return g, err
}

func (r *GenreRepository) Create(ctx context.Context, in models.GenreInput) (int, error) {
	var id int
	err := r.DB.QueryRow(ctx, "INSERT INTO genre (name) VALUES ($1) RETURNING id", in.Name).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *GenreRepository) Update(ctx context.Context, id int, in models.GenreInput) error {
	tag, err := r.DB.Exec(ctx, "UPDATE genre SET name=$1 WHERE id=$2", in.Name, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("genre %d: %w", id, ErrNotFound)
	}
	return nil
}

// Delete removes the genre. Movies referencing it keep their rows; the
// schema sets their genre_id to NULL.
func (r *GenreRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, "DELETE FROM genre WHERE id=$1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("genre %d: %w", id, ErrNotFound)
	}
	return nil
}
