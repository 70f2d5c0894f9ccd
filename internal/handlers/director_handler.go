package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"MovieCatalogAPI/internal/models"
)

type DirectorService interface {
	GetAllDirectors(ctx context.Context) ([]models.Director, error)
	GetDirectorByID(ctx context.Context, id int) (models.Director, error)
	CreateDirector(ctx context.Context, in models.DirectorInput) (int, error)
	UpdateDirector(ctx context.Context, id int, in models.DirectorInput) error
	DeleteDirector(ctx context.Context, id int) error
}

type DirectorHandler struct {
	DirectorService DirectorService
}

func NewDirectorHandler(service DirectorService) *DirectorHandler {
	return &DirectorHandler{DirectorService: service}
}

func (h *DirectorHandler) GetDirectors(ctx *gin.Context) {
	directors, err := h.DirectorService.GetAllDirectors(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	if directors == nil {
		directors = []models.Director{}
	}
	ctx.JSON(http.StatusOK, directors)
}

func (h *DirectorHandler) GetDirectorByID(ctx *gin.Context) {
	id, ok := itemID(ctx)
	if !ok {
		return
	}
	director, err := h.DirectorService.GetDirectorByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, director)
}

func (h *DirectorHandler) CreateDirector(ctx *gin.Context) {
	var in models.DirectorInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if _, err := h.DirectorService.CreateDirector(ctx.Request.Context(), in); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusCreated)
}

func (h *DirectorHandler) UpdateDirector(ctx *gin.Context) {
	id, ok := itemID(ctx)
	if !ok {
		return
	}
	var in models.DirectorInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if err := h.DirectorService.UpdateDirector(ctx.Request.Context(), id, in); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (h *DirectorHandler) DeleteDirector(ctx *gin.Context) {
	id, ok := itemID(ctx)
	if !ok {
		return
	}
	if err := h.DirectorService.DeleteDirector(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
