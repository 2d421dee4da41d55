package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"match-service/internal/config"
	"match-service/internal/match/engine"
	"match-service/internal/match/model"
)

func newTestEngine(t *testing.T) *engine.Engine {
	t.Helper()
	e := engine.New(engine.Options{})
	e.ReplaceCorpus([]model.Candidate{
		{ID: "1", Name: "Пеноплэкс Комфорт 50мм", Attrs: map[string]string{"category": "утеплители"}},
		{ID: "2", Name: "Кран шаровой DN32"},
	})
	return e
}

func TestSearchHandler(t *testing.T) {
	h := Search(newTestEngine(t), zerolog.Nop())

	body, _ := json.Marshal(searchRequest{Query: "пеноплэкс"})
	req := httptest.NewRequest(http.MethodPost, "/search", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp searchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, model.ShapeSimple, resp.Shape)
	require.NotEmpty(t, resp.Suggestions)
	assert.Equal(t, "1", resp.Suggestions[0].ID)
	assert.Greater(t, resp.Suggestions[0].Confidence, 0.5)
	assert.Empty(t, resp.DidYouMean)
}

func TestSearchHandlerDidYouMean(t *testing.T) {
	h := Search(newTestEngine(t), zerolog.Nop())

	// опечатка: выдача пустая, но ближайшее имя подсказывается
	body, _ := json.Marshal(searchRequest{Query: "пиноплекс"})
	req := httptest.NewRequest(http.MethodPost, "/search", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp searchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Suggestions)
	assert.Equal(t, "Пеноплэкс Комфорт 50мм", resp.DidYouMean)
}

func TestSearchHandlerEmptyQuery(t *testing.T) {
	h := Search(newTestEngine(t), zerolog.Nop())

	body, _ := json.Marshal(searchRequest{Query: "   "})
	req := httptest.NewRequest(http.MethodPost, "/search", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp searchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Suggestions)
}

func TestSearchHandlerBadJSON(t *testing.T) {
	h := Search(newTestEngine(t), zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader("{не json"))
	rec := httptest.NewRecorder()
	h(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReplaceCorpusHandler(t *testing.T) {
	eng := engine.New(engine.Options{})
	h := ReplaceCorpus(eng, zerolog.Nop())

	body, _ := json.Marshal(corpusRequest{Candidates: []model.Candidate{
		{ID: "10", Name: "Гипсокартон Кнауф 12,5мм"},
		{ID: "10", Name: "дубль"},
		{ID: "11", Name: "Профиль направляющий"},
	}})
	req := httptest.NewRequest(http.MethodPost, "/corpus", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp corpusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Received)
	assert.Equal(t, 2, resp.Indexed)

	res := eng.Search("гипсокартон", nil, 10)
	require.NotEmpty(t, res.Suggestions)
	assert.Equal(t, "10", res.Suggestions[0].ID)
}

func TestUploadCorpusHandler(t *testing.T) {
	eng := engine.New(engine.Options{})
	cfg := config.Config{MaxUploadMB: 16}
	h := UploadCorpus(cfg, eng, zerolog.Nop())

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "price.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte("id,name,category\n10,Penoplex Comfort 50,insulation\n11,Ball valve DN32,valves\n"))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("id", "id"))
	require.NoError(t, mw.WriteField("name", "name"))
	require.NoError(t, mw.WriteField("category", "category"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/corpus/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp corpusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Indexed)

	res := eng.Search("penoplex", map[string]string{"category": "insulation"}, 10)
	require.NotEmpty(t, res.Suggestions)
	assert.Equal(t, "10", res.Suggestions[0].ID)
}

func TestStatsAndHealth(t *testing.T) {
	h := Stats(newTestEngine(t), zerolog.Nop())
	req := httptest.NewRequest(http.MethodGet, "/corpus/stats", nil)
	rec := httptest.NewRecorder()
	h(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp statsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Candidates)

	rec = httptest.NewRecorder()
	Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
