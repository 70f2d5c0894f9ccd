package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"MovieCatalogAPI/internal/models"
	"MovieCatalogAPI/internal/repositories"
)

// MovieService is the business surface the movie handlers need.
type MovieService interface {
	GetAllMovies(ctx context.Context, filter repositories.MovieFilter) ([]models.Movie, error)
	GetMovieByID(ctx context.Context, id int) (models.Movie, error)
	CreateMovie(ctx context.Context, in models.MovieInput) (int, error)
	ReplaceMovie(ctx context.Context, id int, in models.MovieInput) error
	PatchMovie(ctx context.Context, id int, patch models.MoviePatch) error
	DeleteMovie(ctx context.Context, id int) error
}

type MovieHandler struct {
	MovieService MovieService
}

func NewMovieHandler(service MovieService) *MovieHandler {
	return &MovieHandler{MovieService: service}
}

// GetMovies lists all movies, optionally filtered by director_id and/or
// genre_id query parameters.
func (h *MovieHandler) GetMovies(ctx *gin.Context) {
	filter, err := movieFilter(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	movies, err := h.MovieService.GetAllMovies(ctx.Request.Context(), filter)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if movies == nil {
		movies = []models.Movie{}
	}
	ctx.JSON(http.StatusOK, movies)
}

func (h *MovieHandler) GetMovieByID(ctx *gin.Context) {
	id, ok := itemID(ctx)
	if !ok {
		return
	}
	movie, err := h.MovieService.GetMovieByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, movie)
}

// CreateMovie inserts a new movie. The assigned id is not echoed back;
// clients list or filter the collection to discover it.
func (h *MovieHandler) CreateMovie(ctx *gin.Context) {
	var in models.MovieInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if _, err := h.MovieService.CreateMovie(ctx.Request.Context(), in); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusCreated)
}

// ReplaceMovie is a full replace: every field is written from the body,
// and fields absent from the body reset to their zero or null value.
func (h *MovieHandler) ReplaceMovie(ctx *gin.Context) {
	id, ok := itemID(ctx)
	if !ok {
		return
	}
	var in models.MovieInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if err := h.MovieService.ReplaceMovie(ctx.Request.Context(), id, in); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// PatchMovie updates only the fields present in the body.
func (h *MovieHandler) PatchMovie(ctx *gin.Context) {
	id, ok := itemID(ctx)
	if !ok {
		return
	}
	var patch models.MoviePatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if err := h.MovieService.PatchMovie(ctx.Request.Context(), id, patch); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (h *MovieHandler) DeleteMovie(ctx *gin.Context) {
	id, ok := itemID(ctx)
	if !ok {
		return
	}
	if err := h.MovieService.DeleteMovie(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func movieFilter(ctx *gin.Context) (repositories.MovieFilter, error) {
	var filter repositories.MovieFilter
	if raw := ctx.Query("director_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return filter, errInvalidFilter("director_id", raw)
		}
		filter.DirectorID = &id
	}
	if raw := ctx.Query("genre_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return filter, errInvalidFilter("genre_id", raw)
		}
		filter.GenreID = &id
	}
	return filter, nil
}
