package httpadapter

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/mushikui/internal/domain"
	"svw.info/mushikui/internal/generator"
	"svw.info/mushikui/internal/hint"
	"svw.info/mushikui/internal/infrastructure/storage"
	"svw.info/mushikui/internal/solver"
	"svw.info/mushikui/internal/usecase"
	"svw.info/mushikui/internal/validator"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()
	s := solver.NewBacktrackingSolver()
	uc := usecase.NewService(
		s,
		generator.NewUniqueGenerator(s),
		validator.New(),
		hint.NewForced(s),
		storage.NewFS(t.TempDir()),
	)
	mux := http.NewServeMux()
	New(uc).Register(mux)
	return mux
}

func postJSON(t *testing.T, mux *http.ServeMux, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

const trailingNine = " 27\n  *\n---\n**9\n---\n**9\n"

func TestSolveEndpoint(t *testing.T) {
	mux := newTestMux(t)
	rec := postJSON(t, mux, "/api/solve", solveReq{Puzzle: trailingNine})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp solveResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	require.Len(t, resp.Solutions, 1)
	assert.Equal(t, domain.Fixed(7), resp.Solutions[0].Grid.Multiplier[0])
	assert.Contains(t, resp.Solutions[0].Text, "189")
}

func TestSolveEndpointBadPuzzle(t *testing.T) {
	mux := newTestMux(t)
	rec := postJSON(t, mux, "/api/solve", solveReq{Puzzle: "09\n 3\n27\n27\n"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp solveResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Error)
}

func TestSolveEndpointMethodNotAllowed(t *testing.T) {
	mux := newTestMux(t)
	req := httptest.NewRequest(http.MethodGet, "/api/solve", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestValidateEndpoint(t *testing.T) {
	mux := newTestMux(t)

	rec := postJSON(t, mux, "/api/validate", validateReq{Puzzle: trailingNine})
	require.Equal(t, http.StatusOK, rec.Code)
	var resp validateResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.OK)

	rec = postJSON(t, mux, "/api/validate", validateReq{Puzzle: "09\n 3\n27\n27\n"})
	require.Equal(t, http.StatusOK, rec.Code)
	resp = validateResp{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.OK)
	assert.NotEmpty(t, resp.Issues)
}

func TestGenerateEndpoint(t *testing.T) {
	mux := newTestMux(t)
	rec := postJSON(t, mux, "/api/generate", generateReq{Difficulty: "easy", Seed: 99})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp generateResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.EqualValues(t, 99, resp.Seed)
	assert.NotEmpty(t, resp.Puzzle)
	assert.Len(t, resp.Grid.Multiplicand, 2)
}

func TestHintEndpoint(t *testing.T) {
	mux := newTestMux(t)
	rec := postJSON(t, mux, "/api/hint", hintReq{Puzzle: trailingNine})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp hintResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Found)
	assert.EqualValues(t, 7, resp.Hint.Value)
}

func TestSaveLoadListEndpoints(t *testing.T) {
	mux := newTestMux(t)

	p := domain.Puzzle{
		Name: "roundtrip",
		Grid: domain.Grid{
			Multiplicand: domain.Row{domain.Fixed(9)},
			Multiplier:   domain.Row{domain.Wildcard},
			Partials:     []domain.Row{{domain.Fixed(2), domain.Fixed(7)}},
			Product:      domain.Row{domain.Fixed(2), domain.Fixed(7)},
		},
	}
	rec := postJSON(t, mux, "/api/save", p)
	require.Equal(t, http.StatusOK, rec.Code)
	var saved saveResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
	require.NotEmpty(t, saved.ID)

	rec = postJSON(t, mux, "/api/load", loadReq{ID: saved.ID})
	require.Equal(t, http.StatusOK, rec.Code)
	var loaded loadResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loaded))
	require.NotNil(t, loaded.Puzzle)
	assert.Equal(t, "roundtrip", loaded.Puzzle.Name)
	assert.Equal(t, p.Grid, loaded.Puzzle.Grid)
	assert.NotEmpty(t, loaded.Text)

	req := httptest.NewRequest(http.MethodGet, "/api/list", nil)
	lrec := httptest.NewRecorder()
	mux.ServeHTTP(lrec, req)
	require.Equal(t, http.StatusOK, lrec.Code)
	var list listResp
	require.NoError(t, json.Unmarshal(lrec.Body.Bytes(), &list))
	require.Len(t, list.Puzzles, 1)
	assert.Equal(t, saved.ID, list.Puzzles[0].ID)
}

func TestLoadMissingPuzzle(t *testing.T) {
	mux := newTestMux(t)
	rec := postJSON(t, mux, "/api/load", loadReq{ID: "missing"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
