package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"

	httpctrl "github.com/flophouse/rangeday/pkg/controller/http"
	"github.com/flophouse/rangeday/pkg/domain/model"
	"github.com/flophouse/rangeday/pkg/repository/memory"
	"github.com/flophouse/rangeday/pkg/service/library"
	"github.com/flophouse/rangeday/pkg/usecase"
)

func newTestServer(t *testing.T, puzzles []*model.Puzzle) *httpctrl.Server {
	t.Helper()

	cache := library.NewCache()
	cache.Update(puzzles)

	uc := usecase.New(memory.New(), cache)
	srv, err := httpctrl.New(uc)
	gt.NoError(t, err).Required()
	return srv
}

func TestDailyPuzzleEndpoint(t *testing.T) {
	t.Run("serves the daily puzzle payload", func(t *testing.T) {
		srv := newTestServer(t, []*model.Puzzle{
			{ID: "p1", Payload: json.RawMessage(`{"id":"p1","board":"AsKdQh2c7s"}`)},
		})

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/daily-puzzle", nil))

		gt.Number(t, rec.Code).Equal(http.StatusOK)
		gt.Value(t, rec.Header().Get("Content-Type")).Equal("application/json")

		var body map[string]any
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body)).Required()
		gt.Value(t, body["id"]).Equal("p1")
	})

	t.Run("repeated requests return the same puzzle", func(t *testing.T) {
		srv := newTestServer(t, []*model.Puzzle{
			{ID: "p1", Payload: json.RawMessage(`{"id":"p1"}`)},
			{ID: "p2", Payload: json.RawMessage(`{"id":"p2"}`)},
			{ID: "p3", Payload: json.RawMessage(`{"id":"p3"}`)},
		})

		first := httptest.NewRecorder()
		srv.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/daily-puzzle", nil))
		gt.Number(t, first.Code).Equal(http.StatusOK)

		second := httptest.NewRecorder()
		srv.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/daily-puzzle", nil))
		gt.Number(t, second.Code).Equal(http.StatusOK)

		gt.Value(t, second.Body.String()).Equal(first.Body.String())
	})

	t.Run("empty library is service unavailable", func(t *testing.T) {
		srv := newTestServer(t, []*model.Puzzle{})

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/daily-puzzle", nil))

		gt.Number(t, rec.Code).Equal(http.StatusServiceUnavailable)
	})
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	gt.Number(t, rec.Code).Equal(http.StatusOK)
	gt.String(t, rec.Body.String()).Contains("ok")
}

func TestSPAFallback(t *testing.T) {
	srv := newTestServer(t, nil)

	t.Run("root serves index", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		gt.Number(t, rec.Code).Equal(http.StatusOK)
		gt.String(t, rec.Body.String()).Contains("RangeDay")
	})

	t.Run("unknown path falls back to index", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/some/client/route", nil))

		gt.Number(t, rec.Code).Equal(http.StatusOK)
		gt.String(t, rec.Body.String()).Contains("RangeDay")
	})
}
