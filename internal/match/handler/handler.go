package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"match-service/internal/config"
	"match-service/internal/fileio"
	"match-service/internal/match/engine"
	"match-service/internal/match/model"
)

// порог для подсказки «возможно, вы имели в виду» при пустой выдаче
const didYouMeanMin = 0.6

type searchRequest struct {
	Query   string            `json:"query"`
	Context map[string]string `json:"context,omitempty"`
	TopN    int               `json:"topN,omitempty"`
}

type searchResponse struct {
	Query       string             `json:"query"`
	Shape       model.QueryShape   `json:"shape"`
	Suggestions []model.Suggestion `json:"suggestions"`
	DidYouMean  string             `json:"didYouMean,omitempty"`
	ElapsedMs   int64              `json:"elapsedMs"`
}

// Search — POST /search: запрос → ранжированные подсказки.
// Пустой запрос и пустой корпус — не ошибка, выдача просто пустая.
func Search(eng *engine.Engine, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := reqLogger(logger, r)

		var req searchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpError(w, http.StatusBadRequest, "bad json: "+err.Error())
			return
		}

		res := eng.Search(req.Query, req.Context, req.TopN)

		resp := searchResponse{
			Query:       req.Query,
			Shape:       res.Shape,
			Suggestions: res.Suggestions,
			ElapsedMs:   time.Since(start).Milliseconds(),
		}
		if len(res.Suggestions) == 0 {
			if name, sim := eng.ClosestName(req.Query); sim >= didYouMeanMin {
				resp.DidYouMean = name
			}
		}

		writeJSON(w, log, resp)

		topConf := 0.0
		if len(res.Suggestions) > 0 {
			topConf = res.Suggestions[0].Confidence
		}
		log.Info().
			Str("shape", string(res.Shape)).
			Int("suggestions", len(res.Suggestions)).
			Float64("top_confidence", topConf).
			Dur("elapsed", time.Since(start)).
			Msg("search done")
	}
}

type corpusRequest struct {
	Candidates []model.Candidate `json:"candidates"`
}

type corpusResponse struct {
	Received int `json:"received"`
	Indexed  int `json:"indexed"`
}

// ReplaceCorpus — POST /corpus: атомарная замена корпуса JSON-списком.
func ReplaceCorpus(eng *engine.Engine, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := reqLogger(logger, r)

		var req corpusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpError(w, http.StatusBadRequest, "bad json: "+err.Error())
			return
		}

		indexed := eng.ReplaceCorpus(req.Candidates)
		writeJSON(w, log, corpusResponse{Received: len(req.Candidates), Indexed: indexed})
		log.Info().Int("received", len(req.Candidates)).Int("indexed", indexed).Msg("corpus replaced")
	}
}

// UploadCorpus — POST /corpus/upload: multipart-загрузка прайс-листа
// (.xlsx/.xls/.csv) с маппингом колонок формой, как в обычных выгрузках 1С.
func UploadCorpus(cfg config.Config, eng *engine.Engine, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := reqLogger(logger, r)

		if err := r.ParseMultipartForm(int64(cfg.MaxUploadMB) << 20); err != nil {
			httpError(w, http.StatusBadRequest, "bad multipart form: "+err.Error())
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			httpError(w, http.StatusBadRequest, "missing file: "+err.Error())
			return
		}
		defer file.Close()

		headerRow := atoi(r.FormValue("header_row"), 1)
		rows, err := fileio.ReadTable(file, header.Filename, headerRow)
		if err != nil {
			httpError(w, http.StatusBadRequest, "failed to read table: "+err.Error())
			return
		}

		m := CorpusMapping{
			IDKey:       r.FormValue("id"),
			NameKey:     r.FormValue("name"),
			CategoryKey: r.FormValue("category"),
			PriceKey:    r.FormValue("price"),
			HeaderRow:   headerRow,
		}
		if m.NameKey == "" {
			m.NameKey = "Наименование|Номенклатура|Название"
		}

		cands := rowsToCandidates(rows, m)
		indexed := eng.ReplaceCorpus(cands)

		writeJSON(w, log, corpusResponse{Received: len(rows), Indexed: indexed})
		log.Info().
			Str("file", header.Filename).
			Int("rows", len(rows)).
			Int("indexed", indexed).
			Dur("elapsed", time.Since(start)).
			Msg("corpus uploaded")
	}
}

type statsResponse struct {
	Candidates int `json:"candidates"`
	Trigrams   int `json:"trigrams"`
}

// Stats — GET /corpus/stats: размер опубликованного индекса.
func Stats(eng *engine.Engine, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cands, grams := eng.Stats()
		writeJSON(w, reqLogger(logger, r), statsResponse{Candidates: cands, Trigrams: grams})
	}
}

// Health — GET /health.
func Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func reqLogger(logger zerolog.Logger, r *http.Request) zerolog.Logger {
	if rid := r.Header.Get("X-Request-ID"); rid != "" {
		return logger.With().Str("req_id", rid).Logger()
	}
	return logger
}

func writeJSON(w http.ResponseWriter, log zerolog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write json")
	}
}

func httpError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
