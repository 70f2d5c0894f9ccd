package services

import (
	"context"

	"MovieCatalogAPI/internal/models"
)

type DirectorStore interface {
	List(ctx context.Context) ([]models.Director, error)
	GetByID(ctx context.Context, id int) (models.Director, error)
	Create(ctx context.Context, in models.DirectorInput) (int, error)
	Update(ctx context.Context, id int, in models.DirectorInput) error
	Delete(ctx context.Context, id int) error
}

type DirectorService struct {
	Directors DirectorStore
}

func NewDirectorService(store DirectorStore) *DirectorService {
	return &DirectorService{Directors: store}
}

func (s *DirectorService) GetAllDirectors(ctx context.Context) ([]models.Director, error) {
	return s.Directors.List(ctx)
}

func (s *DirectorService) GetDirectorByID(ctx context.Context, id int) (models.Director, error) {
	return s.Directors.GetByID(ctx, id)
}

func (s *DirectorService) CreateDirector(ctx context.Context, in models.DirectorInput) (int, error) {
	return s.Directors.Create(ctx, in)
}

func (s *DirectorService) UpdateDirector(ctx context.Context, id int, in models.DirectorInput) error {
	return s.Directors.Update(ctx, id, in)
}

func (s *DirectorService) DeleteDirector(ctx context.Context, id int) error {
	return s.Directors.Delete(ctx, id)
}
