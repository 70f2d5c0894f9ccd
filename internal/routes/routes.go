package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"MovieCatalogAPI/config"
	"MovieCatalogAPI/internal/handlers"
	"MovieCatalogAPI/internal/middleware"
)

// SetupRouter wires the middleware chain and the three resource groups.
// gin's trailing-slash redirect makes /movies/ and /movies equivalent.
func SetupRouter(
	logger *zap.Logger,
	cfg config.Config,
	movieHandler *handlers.MovieHandler,
	directorHandler *handlers.DirectorHandler,
	genreHandler *handlers.GenreHandler,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogger(logger))
	if cfg.Limiter.Enabled {
		r.Use(middleware.RateLimit(cfg.Limiter.RPS, cfg.Limiter.Burst))
	}

	r.GET("/healthcheck", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":      "available",
			"environment": cfg.Env,
		})
	})

	r.GET("/movies", movieHandler.GetMovies)
	r.POST("/movies", movieHandler.CreateMovie)
	r.GET("/movies/:id", movieHandler.GetMovieByID)
	r.PUT("/movies/:id", movieHandler.ReplaceMovie)
	r.PATCH("/movies/:id", movieHandler.PatchMovie)
	r.DELETE("/movies/:id", movieHandler.DeleteMovie)

	r.GET("/directors", directorHandler.GetDirectors)
	r.POST("/directors", directorHandler.CreateDirector)
	r.GET("/directors/:id", directorHandler.GetDirectorByID)
	r.PUT("/directors/:id", directorHandler.UpdateDirector)
	r.DELETE("/directors/:id", directorHandler.DeleteDirector)

	r.GET("/genres", genreHandler.GetGenres)
	r.POST("/genres", genreHandler.CreateGenre)
	r.GET("/genres/:id", genreHandler.GetGenreByID)
	r.PUT("/genres/:id", genreHandler.UpdateGenre)
	r.DELETE("/genres/:id", genreHandler.DeleteGenre)

	return r
}
