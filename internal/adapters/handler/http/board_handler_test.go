package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterHTTP "github.com/comitanigiacomo/kanso-habit-dashboard/internal/adapters/handler/http"
	"github.com/comitanigiacomo/kanso-habit-dashboard/internal/adapters/repository"
	"github.com/comitanigiacomo/kanso-habit-dashboard/internal/core/domain"
	"github.com/comitanigiacomo/kanso-habit-dashboard/internal/core/services"
)

// failingRepo returns err from every call.
type failingRepo struct {
	err error
}

func (r failingRepo) Create(ctx context.Context, b *domain.Board) error { return r.err }
func (r failingRepo) GetByID(ctx context.Context, id string) (*domain.Board, error) {
	return nil, r.err
}
func (r failingRepo) List(ctx context.Context) ([]*domain.Board, error)   { return nil, r.err }
func (r failingRepo) Update(ctx context.Context, b *domain.Board) error   { return r.err }
func (r failingRepo) Delete(ctx context.Context, id string) error         { return r.err }
func (r failingRepo) GetChanges(ctx context.Context, since time.Time) ([]*domain.Board, error) {
	return nil, r.err
}

func setupRouter(repo domain.BoardRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	boardSvc := services.NewBoardService(repo, nil, services.DefaultBoardDefaults())
	statsSvc := services.NewStatsService(repo, nil)

	r := gin.New()
	api := r.Group("/api/v1")
	adapterHTTP.NewBoardHandler(boardSvc).RegisterRoutes(api)
	adapterHTTP.NewStatsHandler(statsSvc).RegisterRoutes(api)
	return r
}

func request(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createBoard(t *testing.T, r *gin.Engine, body string) map[string]any {
	t.Helper()
	w := request(r, http.MethodPost, "/api/v1/boards", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestCreateBoard(t *testing.T) {
	t.Run("Success: 201 Created with labels", func(t *testing.T) {
		r := setupRouter(repository.NewInMemoryBoardRepository())

		resp := createBoard(t, r, `{"title": "November", "period_length": 30, "day_name_offset": 0}`)

		assert.NotEmpty(t, resp["id"])
		assert.EqualValues(t, 1, resp["version"])
		assert.Len(t, resp["habits"], 10)
		assert.Len(t, resp["days"], 30)

		weeks := resp["weeks"].([]any)
		require.Len(t, weeks, 5)
		assert.Equal(t, "Week 5", weeks[4])

		first := resp["days"].([]any)[0].(map[string]any)
		assert.Equal(t, "Su", first["name"])
	})

	t.Run("Fail: 400 Missing Title", func(t *testing.T) {
		r := setupRouter(repository.NewInMemoryBoardRepository())

		w := request(r, http.MethodPost, "/api/v1/boards", `{"period_length": 30}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Fail: 400 Domain Validation", func(t *testing.T) {
		r := setupRouter(repository.NewInMemoryBoardRepository())

		w := request(r, http.MethodPost, "/api/v1/boards", `{"title": "x", "capacity": 99}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "capacity")
	})

	t.Run("Fail: 500 Storage Error is not leaked", func(t *testing.T) {
		r := setupRouter(failingRepo{err: errors.New("pq: connection refused")})

		w := request(r, http.MethodPost, "/api/v1/boards", `{"title": "x"}`)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}

func TestUpdateHabit(t *testing.T) {
	r := setupRouter(repository.NewInMemoryBoardRepository())
	board := createBoard(t, r, `{"title": "T", "capacity": 3}`)
	base := "/api/v1/boards/" + board["id"].(string)

	t.Run("Success: Rename", func(t *testing.T) {
		w := request(r, http.MethodPut, base+"/habits/1", `{"name": "Stretch", "version": 1}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Stretch")
		assert.Contains(t, w.Body.String(), `"version":2`)
	})

	t.Run("Fail: 409 Conflict", func(t *testing.T) {
		w := request(r, http.MethodPut, base+"/habits/1", `{"name": "Late", "version": 1}`)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "Please sync")
	})

	t.Run("Fail: 404 Unknown Habit", func(t *testing.T) {
		w := request(r, http.MethodPut, base+"/habits/4", `{"name": "Ghost"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "habit not found")
	})

	t.Run("Fail: 400 Name Too Long", func(t *testing.T) {
		long := bytes.Repeat([]byte("x"), domain.MaxNameLen+1)
		w := request(r, http.MethodPut, base+"/habits/2", `{"name": "`+string(long)+`"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Fail: 404 Unknown Board", func(t *testing.T) {
		w := request(r, http.MethodPut, "/api/v1/boards/missing/habits/1", `{"name": "x"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "board not found")
	})
}

func TestToggleDay(t *testing.T) {
	r := setupRouter(repository.NewInMemoryBoardRepository())
	board := createBoard(t, r, `{"title": "T", "period_length": 7, "capacity": 2}`)
	base := "/api/v1/boards/" + board["id"].(string)

	require.Equal(t, http.StatusOK, request(r, http.MethodPut, base+"/habits/1", `{"name": "Walk"}`).Code)

	t.Run("Success: Toggle without body", func(t *testing.T) {
		w := request(r, http.MethodPost, base+"/habits/1/days/7/toggle", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Matrix map[string]map[string]bool `json:"matrix"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Matrix["1"]["7"])
	})

	t.Run("Fail: 409 Stale Version in body", func(t *testing.T) {
		w := request(r, http.MethodPost, base+"/habits/1/days/1/toggle", `{"version": 1}`)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Fail: 422 Inactive Habit", func(t *testing.T) {
		w := request(r, http.MethodPost, base+"/habits/2/days/1/toggle", "")
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Fail: 422 Day Out Of Range", func(t *testing.T) {
		w := request(r, http.MethodPost, base+"/habits/1/days/8/toggle", "")
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Fail: 400 Non-numeric Day", func(t *testing.T) {
		w := request(r, http.MethodPost, base+"/habits/1/days/first/toggle", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSyncAndDelete(t *testing.T) {
	r := setupRouter(repository.NewInMemoryBoardRepository())

	w := request(r, http.MethodGet, "/api/v1/boards/sync", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"changes":[]`)

	board := createBoard(t, r, `{"title": "T"}`)
	id := board["id"].(string)

	w = request(r, http.MethodGet, "/api/v1/boards/sync", "")
	assert.Contains(t, w.Body.String(), id)

	assert.Equal(t, http.StatusNoContent, request(r, http.MethodDelete, "/api/v1/boards/"+id, "").Code)
	assert.Equal(t, http.StatusNotFound, request(r, http.MethodDelete, "/api/v1/boards/"+id, "").Code)
}
