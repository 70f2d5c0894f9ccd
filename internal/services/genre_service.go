package services

import (
	"context"

	"MovieCatalogAPI/internal/models"
)

type GenreStore interface {
	List(ctx context.Context) ([]models.Genre, error)
	GetByID(ctx context.Context, id int) (models.Genre, error)
	Create(ctx context.Context, in models.GenreInput) (int, error)
	Update(ctx context.Context, id int, in models.GenreInput) error
	Delete(ctx context.Context, id int) error
}

type GenreService struct {
	Genres GenreStore
}

func NewGenreService(store GenreStore) *GenreService {
	return &GenreService{Genres: store}
}

func (s *GenreService) GetAllGenres(ctx context.Context) ([]models.Genre, error) {
	return s.Genres.List(ctx)
}

func (s *GenreService) GetGenreByID(ctx context.Context, id int) (models.Genre, error) {
	return s.Genres.GetByID(ctx, id)
}

func (s *GenreService) CreateGenre(ctx context.Context, in models.GenreInput) (int, error) {
	return s.Genres.Create(ctx, in)
}

func (s *GenreService) UpdateGenre(ctx context.Context, id int, in models.GenreInput) error {
	return s.Genres.Update(ctx, id, in)
}

func (s *GenreService) DeleteGenre(ctx context.Context, id int) error {
	return s.Genres.Delete(ctx, id)
}
