package labyrinthapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	dmn "github.com/beka-birhanu/labyrinth/domain"
	"github.com/beka-birhanu/labyrinth/service"
	"github.com/beka-birhanu/labyrinth/solver"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	record    *dmn.SolveRecord
	solveErr  error
	recordErr error
	ranked    []dmn.RankedMaze
	rankErr   error
	lastLimit int64
}

func (s *stubService) SolveText(context.Context, string) (*dmn.SolveRecord, error) {
	return s.record, s.solveErr
}

func (s *stubService) Record(context.Context, uuid.UUID) (*dmn.SolveRecord, error) {
	return s.record, s.recordErr
}

func (s *stubService) Hardest(_ context.Context, limit int64) ([]dmn.RankedMaze, error) {
	s.lastLimit = limit
	return s.ranked, s.rankErr
}

func newEngine(t *testing.T, svc *stubService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, err := NewLabyrinthController(svc, 0)
	require.NoError(t, err)

	engine := gin.New()
	c.RegisterProtected(engine.Group("/"))
	return engine
}

func do(engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestSolveEndpoint(t *testing.T) {
	record := &dmn.SolveRecord{ID: uuid.New(), Digest: "abc", Width: 4, Height: 3, Found: true, Turns: 2}

	t.Run("Solved maze", func(t *testing.T) {
		engine := newEngine(t, &stubService{record: record})

		rec := do(engine, http.MethodPost, "/labyrinth/solve", SolveRequest{Maze: "3,4\n0000\n1111\n0000"})
		require.Equal(t, http.StatusOK, rec.Code)

		var response SolveResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, record.ID.String(), response.ID)
		assert.Equal(t, 2, response.Turns)
		assert.True(t, response.Found)
	})

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"Malformed maze", fmt.Errorf("%w: bad header", service.ErrInvalidMaze), http.StatusBadRequest},
		{"Search limit", solver.ErrSearchLimit, http.StatusUnprocessableEntity},
		{"Timeout", context.DeadlineExceeded, http.StatusUnprocessableEntity},
		{"Unexpected", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			engine := newEngine(t, &stubService{solveErr: tc.err})
			rec := do(engine, http.MethodPost, "/labyrinth/solve", SolveRequest{Maze: "x"})
			assert.Equal(t, tc.want, rec.Code)
		})
	}

	t.Run("Missing maze field", func(t *testing.T) {
		engine := newEngine(t, &stubService{record: record})
		rec := do(engine, http.MethodPost, "/labyrinth/solve", map[string]string{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRecordEndpoint(t *testing.T) {
	record := &dmn.SolveRecord{ID: uuid.New(), Digest: "abc"}

	t.Run("Found", func(t *testing.T) {
		engine := newEngine(t, &stubService{record: record})
		rec := do(engine, http.MethodGet, "/labyrinth/solve/"+record.ID.String(), nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Invalid id", func(t *testing.T) {
		engine := newEngine(t, &stubService{record: record})
		rec := do(engine, http.MethodGet, "/labyrinth/solve/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Unknown id", func(t *testing.T) {
		engine := newEngine(t, &stubService{recordErr: errors.New("solve record not found")})
		rec := do(engine, http.MethodGet, "/labyrinth/solve/"+uuid.NewString(), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("No repository", func(t *testing.T) {
		engine := newEngine(t, &stubService{recordErr: service.ErrRepoNotEnabled})
		rec := do(engine, http.MethodGet, "/labyrinth/solve/"+uuid.NewString(), nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestRankingEndpoint(t *testing.T) {
	t.Run("Default limit", func(t *testing.T) {
		svc := &stubService{ranked: []dmn.RankedMaze{{Digest: "a", Turns: 7}, {Digest: "b", Turns: 3}}}
		engine := newEngine(t, svc)

		rec := do(engine, http.MethodGet, "/labyrinth/ranking", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(defaultRankingLimit), svc.lastLimit)

		var response RankingResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, []RankedMaze{{Digest: "a", Turns: 7}, {Digest: "b", Turns: 3}}, response.Mazes)
	})

	t.Run("Custom limit", func(t *testing.T) {
		svc := &stubService{}
		engine := newEngine(t, svc)

		rec := do(engine, http.MethodGet, "/labyrinth/ranking?limit=3", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(3), svc.lastLimit)
	})

	t.Run("Invalid limit", func(t *testing.T) {
		engine := newEngine(t, &stubService{})
		for _, raw := range []string{"0", "-1", "abc", "1000"} {
			rec := do(engine, http.MethodGet, "/labyrinth/ranking?limit="+raw, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code, raw)
		}
	})

	t.Run("No cache", func(t *testing.T) {
		engine := newEngine(t, &stubService{rankErr: service.ErrCacheNotEnabled})
		rec := do(engine, http.MethodGet, "/labyrinth/ranking", nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
