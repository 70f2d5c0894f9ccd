package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"MovieCatalogAPI/internal/repositories"
)

// respondError maps repository errors to HTTP status codes. Not-found
// responses carry the error string as a diagnostic body.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, repositories.ErrInvalidReference):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func errInvalidFilter(param, raw string) error {
	return fmt.Errorf("%s must be an integer, got %q", param, raw)
}

// itemID parses the :id path parameter. A non-numeric id matches no row,
// so the caller should treat an error as not found.
func itemID(ctx *gin.Context) (int, bool) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "invalid id: " + ctx.Param("id")})
		return 0, false
	}
	return id, true
}
