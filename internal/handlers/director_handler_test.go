package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MovieCatalogAPI/internal/models"
	"MovieCatalogAPI/internal/repositories"
)

type fakeDirectorService struct {
	directors []models.Director
	director  models.Director
	err       error

	lastInput models.DirectorInput
	lastID    int
}

func (f *fakeDirectorService) GetAllDirectors(context.Context) ([]models.Director, error) {
	return f.directors, f.err
}

func (f *fakeDirectorService) GetDirectorByID(_ context.Context, id int) (models.Director, error) {
	f.lastID = id
	return f.director, f.err
}

func (f *fakeDirectorService) CreateDirector(_ context.Context, in models.DirectorInput) (int, error) {
	f.lastInput = in
	return 1, f.err
}

func (f *fakeDirectorService) UpdateDirector(_ context.Context, id int, in models.DirectorInput) error {
	f.lastID, f.lastInput = id, in
	return f.err
}

func (f *fakeDirectorService) DeleteDirector(_ context.Context, id int) error {
	f.lastID = id
	return f.err
}

func newDirectorRouter(svc DirectorService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewDirectorHandler(svc)

	r := gin.New()
	r.GET("/directors", h.GetDirectors)
	r.POST("/directors", h.CreateDirector)
	r.GET("/directors/:id", h.GetDirectorByID)
	r.PUT("/directors/:id", h.UpdateDirector)
	r.DELETE("/directors/:id", h.DeleteDirector)
	return r
}

func TestGetDirectors(t *testing.T) {
	svc := &fakeDirectorService{
		directors: []models.Director{{ID: 1, Name: "Nolan"}, {ID: 2, Name: "Villeneuve"}},
	}
	r := newDirectorRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/directors", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var got []models.Director
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, svc.directors, got)
}

func TestGetDirectorsEmptyCollection(t *testing.T) {
	r := newDirectorRouter(&fakeDirectorService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/directors", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestCreateDirector(t *testing.T) {
	svc := &fakeDirectorService{}
	r := newDirectorRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/directors", strings.NewReader(`{"name":"Nolan"}`)))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Zero(t, w.Body.Len())
	assert.Equal(t, "Nolan", svc.lastInput.Name)
}

func TestGetDirectorByIDNotFound(t *testing.T) {
	r := newDirectorRouter(&fakeDirectorService{
		err: fmt.Errorf("director 999999: %w", repositories.ErrNotFound),
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/directors/999999", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NotEmpty(t, w.Body.String())
}

func TestUpdateDirector(t *testing.T) {
	svc := &fakeDirectorService{}
	r := newDirectorRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/directors/1", strings.NewReader(`{"name":"Nolan"}`)))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 1, svc.lastID)
	assert.Equal(t, "Nolan", svc.lastInput.Name)
}

func TestUpdateDirectorNotFound(t *testing.T) {
	r := newDirectorRouter(&fakeDirectorService{
		err: fmt.Errorf("director 1: %w", repositories.ErrNotFound),
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/directors/1", strings.NewReader(`{"name":"Nolan"}`)))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteDirectorNotFound(t *testing.T) {
	r := newDirectorRouter(&fakeDirectorService{
		err: fmt.Errorf("director 1: %w", repositories.ErrNotFound),
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/directors/1", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
