package services

import (
	"context"

	"MovieCatalogAPI/internal/models"
	"MovieCatalogAPI/internal/repositories"
)

// MovieStore is the persistence surface the movie service needs.
type MovieStore interface {
	List(ctx context.Context, filter repositories.MovieFilter) ([]models.Movie, error)
	GetByID(ctx context.Context, id int) (models.Movie, error)
	Create(ctx context.Context, in models.MovieInput) (int, error)
	Replace(ctx context.Context, id int, in models.MovieInput) error
	Delete(ctx context.Context, id int) error
}

type MovieService struct {
	Movies MovieStore
}

func NewMovieService(store MovieStore) *MovieService {
	return &MovieService{Movies: store}
}

func (s *MovieService) GetAllMovies(ctx context.Context, filter repositories.MovieFilter) ([]models.Movie, error) {
	return s.Movies.List(ctx, filter)
}

func (s *MovieService) GetMovieByID(ctx context.Context, id int) (models.Movie, error) {
	return s.Movies.GetByID(ctx, id)
}

func (s *MovieService) CreateMovie(ctx context.Context, in models.MovieInput) (int, error) {
	return s.Movies.Create(ctx, in)
}

// ReplaceMovie overwrites every field of the movie from in.
func (s *MovieService) ReplaceMovie(ctx context.Context, id int, in models.MovieInput) error {
	return s.Movies.Replace(ctx, id, in)
}

// PatchMovie reads the current row, applies the fields present in the
// patch, and writes the result back.
func (s *MovieService) PatchMovie(ctx context.Context, id int, patch models.MoviePatch) error {
	movie, err := s.Movies.GetByID(ctx, id)
	if err != nil {
		return err
	}
	in := movie.Input()
	patch.Apply(&in)
	return s.Movies.Replace(ctx, id, in)
}

func (s *MovieService) DeleteMovie(ctx context.Context, id int) error {
	return s.Movies.Delete(ctx, id)
}
