package engine

import (
	"strings"
	"sync/atomic"

	"match-service/internal/match/model"
)

// Options — настройки движка. Нулевые значения заменяются дефолтами.
type Options struct {
	TopN        int     // размер выдачи по умолчанию
	SaturationK float64 // константа нормализации уверенности
}

// Engine — адаптивный гибридный поиск по корпусу наименований.
// Search не держит разделяемого изменяемого состояния: конкурентные вызовы
// безопасны без блокировок, корпус обновляется атомарной заменой снапшота.
type Engine struct {
	snap atomic.Pointer[snapshot]
	opts Options
}

func New(opts Options) *Engine {
	if opts.TopN <= 0 {
		opts.TopN = DefaultTopN
	}
	if opts.SaturationK <= 0 {
		opts.SaturationK = DefaultSaturationK
	}
	e := &Engine{opts: opts}
	e.snap.Store(buildSnapshot(nil))
	return e
}

// ReplaceCorpus — строит новый индекс и публикует его целиком.
func (e *Engine) ReplaceCorpus(cands []model.Candidate) int {
	snap := buildSnapshot(cands)
	e.snap.Store(snap)
	return len(snap.cands)
}

// Search — единственная операция ядра: запрос → ранжированные подсказки.
// Пустой запрос и пустой корпус — штатные случаи с пустой выдачей,
// ошибок наружу не бывает.
func (e *Engine) Search(queryText string, ctx map[string]string, topN int) model.SearchResult {
	res := model.SearchResult{Shape: model.ShapeSimple, Suggestions: []model.Suggestion{}}

	raw := strings.TrimSpace(queryText)
	if raw == "" {
		return res
	}
	snap := e.snap.Load()
	if len(snap.cands) == 0 {
		res.Shape = Classify(raw)
		return res
	}

	res.Shape = Classify(raw)
	queryNorm := Normalize(raw)
	querySegs := Segment(raw)
	strat := SelectStrategy(res.Shape)

	if topN <= 0 {
		topN = e.opts.TopN
	}
	positions := snap.candidatePositions(queryNorm, ctx)
	res.Suggestions = rank(queryNorm, querySegs, snap, positions, strat, e.opts.SaturationK, topN)
	return res
}

// ClosestName — подсказка по ближайшему наименованию текущего корпуса.
func (e *Engine) ClosestName(queryText string) (string, float64) {
	norm := Normalize(queryText)
	if norm == "" {
		return "", 0
	}
	return e.snap.Load().ClosestName(norm)
}

// Stats — размер опубликованного снапшота.
func (e *Engine) Stats() (candidates, trigrams int) {
	snap := e.snap.Load()
	return len(snap.cands), len(snap.inv)
}
