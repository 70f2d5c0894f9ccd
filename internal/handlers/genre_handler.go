package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"MovieCatalogAPI/internal/models"
)

type GenreService interface {
	GetAllGenres(ctx context.Context) ([]models.Genre, error)
	GetGenreByID(ctx context.Context, id int) (models.Genre, error)
	CreateGenre(ctx context.Context, in models.GenreInput) (int, error)
	UpdateGenre(ctx context.Context, id int, in models.GenreInput) error
	DeleteGenre(ctx context.Context, id int) error
}

type GenreHandler struct {
	GenreService GenreService
}

func NewGenreHandler(service GenreService) *GenreHandler {
	return &GenreHandler{GenreService: service}
}

func (h *GenreHandler) GetGenres(ctx *gin.Context) {
	genres, err := h.GenreService.GetAllGenres(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	if genres == nil {
		genres = []models.Genre{}
	}
	ctx.JSON(http.StatusOK, genres)
}

func (h *GenreHandler) GetGenreByID(ctx *gin.Context) {
	id, ok := itemID(ctx)
	if !ok {
		return
	}
	genre, err := h.GenreService.GetGenreByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, genre)
}

func (h *GenreHandler) CreateGenre(ctx *gin.Context) {
	var in models.GenreInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if _, err := h.GenreService.CreateGenre(ctx.Request.Context(), in); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusCreated)
}

func (h *GenreHandler) UpdateGenre(ctx *gin.Context) {
	id, ok := itemID(ctx)
	if !ok {
		return
	}
	var in models.GenreInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if err := h.GenreService.UpdateGenre(ctx.Request.Context(), id, in); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (h *GenreHandler) DeleteGenre(ctx *gin.Context) {
	id, ok := itemID(ctx)
	if !ok {
		return
	}
	if err := h.GenreService.DeleteGenre(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
