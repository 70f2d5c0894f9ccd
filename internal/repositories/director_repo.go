package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"MovieCatalogAPI/internal/models"
)

type DirectorRepository struct {
	DB *pgxpool.Pool
}

func NewDirectorRepository(db *pgxpool.Pool) *DirectorRepository {
	return &DirectorRepository{DB: db}
}

func (r *DirectorRepository) List(ctx context.Context) ([]models.Director, error) {
	rows, err := r.DB.Query(ctx, "SELECT id, name FROM director")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	directors := []models.Director{}
	for rows.Next() {
		var d models.Director
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, err
		}
		directors = append(directors, d)
	}
	return directors, rows.Err()
}

func (r *DirectorRepository) GetByID(ctx context.Context, id int) (models.Director, error) {
	var d models.Director
	err := r.DB.QueryRow(ctx, "SELECT id, name FROM director WHERE id=$1", id).Scan(&d.ID, &d.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return d, fmt.Errorf("director %d: %w", id, ErrNotFound)
	}
	return d, err
}

func (r *DirectorRepository) Create(ctx context.Context, in models.DirectorInput) (int, error) {
	var id int
	err := r.DB.QueryRow(ctx, "INSERT INTO director (name) VALUES ($1) RETURNING id", in.Name).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *DirectorRepository) Update(ctx context.Context, id int, in models.DirectorInput) error {
	tag, err := r.DB.Exec(ctx, "UPDATE director SET name=$1 WHERE id=$2", in.Name, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("director %d: %w", id, ErrNotFound)
	}
	return nil
}

// Delete removes the director. Movies referencing it keep their rows; the
// schema sets their director_id to NULL.
func (r *DirectorRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, "DELETE FROM director WHERE id=$1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("director %d: %w", id, ErrNotFound)
	}
	return nil
}
