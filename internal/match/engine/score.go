package engine

import (
	"math"
	"strings"

	"match-service/internal/match/model"
)

// Бонусы унаследованы от прежних трёх алгоритмов подбора; см. strategy.go
// про веса их комбинирования.
const (
	exactPhraseBonus = 10.0 // вся нормализованная фраза найдена целиком
	exactWordBonus   = 3.0  // слово запроса как подстрока кандидата

	overlapContains = 0.3
	overlapPrefix   = 0.2
	overlapSuffix   = 0.1

	keywordBaseWeight  = 3.0 // опорная фраза важнее свободных слов
	keywordTypedWeight = 2.0 // артикул/размер/бренд
	keywordFreeWeight  = 1.0

	segmentScale = 10.0
)

// ExactScore — точные совпадения: фраза целиком и отдельные слова.
func ExactScore(queryNorm, candNorm string) float64 {
	if queryNorm == "" || candNorm == "" {
		return 0
	}
	s := 0.0
	if strings.Contains(candNorm, queryNorm) {
		s += exactPhraseBonus
	}
	for _, w := range strings.Fields(queryNorm) {
		if strings.Contains(candNorm, w) {
			s += exactWordBonus
		}
	}
	return s
}

// OverlapScore — «векторная» эвристика: вхождение, префикс, суффикс
// по каждому слову запроса.
func OverlapScore(queryNorm, candNorm string) float64 {
	if queryNorm == "" || candNorm == "" {
		return 0
	}
	s := 0.0
	for _, w := range strings.Fields(queryNorm) {
		if strings.Contains(candNorm, w) {
			s += overlapContains
		}
		if strings.HasPrefix(candNorm, w) {
			s += overlapPrefix
		}
		if strings.HasSuffix(candNorm, w) {
			s += overlapSuffix
		}
	}
	return s
}

// KeywordScore — взвешенные ключевые слова: вклад сегмента запроса зависит
// от его типа, совпадение ищется как подстрока нормализованного кандидата.
func KeywordScore(querySegs []model.Segment, candNorm string) float64 {
	if candNorm == "" {
		return 0
	}
	s := 0.0
	for _, seg := range querySegs {
		if seg.Norm == "" || !strings.Contains(candNorm, seg.Norm) {
			continue
		}
		switch seg.Kind {
		case model.SegBase:
			s += keywordBaseWeight
		case model.SegArticle, model.SegDimension, model.SegBrand:
			s += keywordTypedWeight
		default:
			s += keywordFreeWeight
		}
	}
	return s
}

// SegmentScore — доля сегментов запроса, закрытых кандидатом сегментом
// ТОГО ЖЕ типа (точно или подстрокой), умноженная на segmentScale.
// Именно этот метод закрывает сложные наименования с артикулами и размерами.
func SegmentScore(querySegs, candSegs []model.Segment) float64 {
	if len(querySegs) == 0 || len(candSegs) == 0 {
		return 0
	}
	satisfied := 0
	for _, q := range querySegs {
		if segmentSatisfied(q, candSegs) {
			satisfied++
		}
	}
	return segmentScale * float64(satisfied) / float64(len(querySegs))
}

func segmentSatisfied(q model.Segment, candSegs []model.Segment) bool {
	for _, c := range candSegs {
		if c.Kind != q.Kind || c.Norm == "" || q.Norm == "" {
			continue
		}
		if c.Norm == q.Norm || strings.Contains(c.Norm, q.Norm) || strings.Contains(q.Norm, c.Norm) {
			return true
		}
	}
	return false
}

// MatchedSegments — какие сегменты запроса внесли вклад: подстрока в
// нормализованном кандидате либо сегментное совпадение по типу.
// Порядок — как в запросе, без дублей.
func MatchedSegments(querySegs []model.Segment, candNorm string, candSegs []model.Segment) []string {
	var out []string
	seen := make(map[string]bool, len(querySegs))
	for _, q := range querySegs {
		if q.Norm == "" || seen[q.Text] {
			continue
		}
		if strings.Contains(candNorm, q.Norm) || segmentSatisfied(q, candSegs) {
			out = append(out, q.Text)
			seen[q.Text] = true
		}
	}
	return out
}

// sanitize — инвариант «скореры не роняют поиск»: не-конечное значение
// заменяется нулём, отрицательное обрезается.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
