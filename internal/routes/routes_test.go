package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"MovieCatalogAPI/config"
	"MovieCatalogAPI/internal/handlers"
	"MovieCatalogAPI/internal/models"
	"MovieCatalogAPI/internal/repositories"
)

type stubMovies struct{}

func (stubMovies) GetAllMovies(context.Context, repositories.MovieFilter) ([]models.Movie, error) {
	return nil, nil
}
func (stubMovies) GetMovieByID(context.Context, int) (models.Movie, error) {
	return models.Movie{}, nil
}
func (stubMovies) CreateMovie(context.Context, models.MovieInput) (int, error) { return 0, nil }
func (stubMovies) ReplaceMovie(context.Context, int, models.MovieInput) error  { return nil }
func (stubMovies) PatchMovie(context.Context, int, models.MoviePatch) error    { return nil }
func (stubMovies) DeleteMovie(context.Context, int) error                      { return nil }

type stubDirectors struct{}

func (stubDirectors) GetAllDirectors(context.Context) ([]models.Director, error) { return nil, nil }
func (stubDirectors) GetDirectorByID(context.Context, int) (models.Director, error) {
	return models.Director{}, nil
}
func (stubDirectors) CreateDirector(context.Context, models.DirectorInput) (int, error) {
	return 0, nil
}
func (stubDirectors) UpdateDirector(context.Context, int, models.DirectorInput) error { return nil }
func (stubDirectors) DeleteDirector(context.Context, int) error                       { return nil }

type stubGenres struct{}

func (stubGenres) GetAllGenres(context.Context) ([]models.Genre, error) { return nil, nil }
func (stubGenres) GetGenreByID(context.Context, int) (models.Genre, error) {
	return models.Genre{}, nil
}
func (stubGenres) CreateGenre(context.Context, models.GenreInput) (int, error) { return 0, nil }
func (stubGenres) UpdateGenre(context.Context, int, models.GenreInput) error   { return nil }
func (stubGenres) DeleteGenre(context.Context, int) error                      { return nil }

func newTestRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return SetupRouter(
		zap.NewNop(),
		cfg,
		handlers.NewMovieHandler(stubMovies{}),
		handlers.NewDirectorHandler(stubDirectors{}),
		handlers.NewGenreHandler(stubGenres{}),
	)
}

func TestHealthcheck(t *testing.T) {
	r := newTestRouter(config.Config{Env: "development"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "available")
	assert.Contains(t, w.Body.String(), "development")
}

func TestTrailingSlashRedirect(t *testing.T) {
	r := newTestRouter(config.Config{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/movies/", nil))

	require.Equal(t, http.StatusMovedPermanently, w.Code)
	assert.Equal(t, "/movies", w.Header().Get("Location"))
}

func TestAllResourceRoutesRegistered(t *testing.T) {
	r := newTestRouter(config.Config{})

	tests := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/movies"},
		{http.MethodGet, "/movies/1"},
		{http.MethodDelete, "/movies/1"},
		{http.MethodGet, "/directors"},
		{http.MethodGet, "/directors/1"},
		{http.MethodGet, "/genres"},
		{http.MethodGet, "/genres/1"},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.target, nil))
		assert.NotEqual(t, http.StatusNotFound, w.Code, "%s %s should be routed", tt.method, tt.target)
	}
}

func TestRateLimiterWiredWhenEnabled(t *testing.T) {
	cfg := config.Config{Limiter: config.LimiterConfig{Enabled: true, RPS: 1, Burst: 1}}
	r := newTestRouter(cfg)

	req := httptest.NewRequest(http.MethodGet, "/movies", nil)
	req.RemoteAddr = "10.0.0.1:9999"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/movies", nil)
	req.RemoteAddr = "10.0.0.1:9999"
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
