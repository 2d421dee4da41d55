package engine

import (
	"sort"
	"strings"

	"match-service/internal/match/model"
)

// Корпус свыше этого размера скорится не целиком, а по триграммному префильтру.
const prefilterMin = 512

// indexedCandidate — кандидат с предвычисленной нормализацией и сегментами.
// После публикации снапшота не мутируется.
type indexedCandidate struct {
	model.Candidate
	Norm     string
	Segments []model.Segment
}

// snapshot — неизменяемый слепок корпуса. Обновление корпуса строит новый
// снапшот и публикует его атомарно, поиски в полёте видят согласованный срез.
type snapshot struct {
	cands    []indexedCandidate
	inv      map[string][]int // trigram -> позиции кандидатов
	attrKeys map[string]bool  // какие ключи контекста вообще известны корпусу
}

func buildSnapshot(cands []model.Candidate) *snapshot {
	snap := &snapshot{
		inv:      make(map[string][]int),
		attrKeys: make(map[string]bool),
	}

	seen := make(map[string]bool, len(cands))
	for _, c := range cands {
		if c.ID == "" || seen[c.ID] {
			continue // дубль id: первый побеждает
		}
		seen[c.ID] = true

		ic := indexedCandidate{
			Candidate: c,
			Norm:      Normalize(c.Name),
			Segments:  Segment(c.Name),
		}
		pos := len(snap.cands)
		snap.cands = append(snap.cands, ic)

		for g := range trigramSet(ic.Norm) {
			snap.inv[g] = append(snap.inv[g], pos)
		}
		for k := range c.Attrs {
			snap.attrKeys[k] = true
		}
	}
	return snap
}

func trigramSet(s string) map[string]struct{} {
	m := make(map[string]struct{})
	if s == "" {
		return m
	}
	p := " " + s + " "
	r := []rune(p)
	if len(r) < 3 {
		m[p] = struct{}{}
		return m
	}
	for i := 0; i <= len(r)-3; i++ {
		m[string(r[i:i+3])] = struct{}{}
	}
	return m
}

// candidatePositions — жёсткий фильтр по контексту + триграммный префильтр
// на больших корпусах. Неизвестные ключи контекста игнорируются: недобор
// хуже лёгкой неточности для подсказок. Порядок позиций детерминирован.
func (s *snapshot) candidatePositions(queryNorm string, ctx map[string]string) []int {
	var out []int

	if len(s.cands) > prefilterMin && queryNorm != "" {
		hit := make(map[int]struct{})
		for g := range trigramSet(queryNorm) {
			for _, p := range s.inv[g] {
				hit[p] = struct{}{}
			}
		}
		out = make([]int, 0, len(hit))
		for p := range hit {
			out = append(out, p)
		}
		sort.Ints(out)
	} else {
		out = make([]int, len(s.cands))
		for i := range s.cands {
			out[i] = i
		}
	}

	if len(ctx) == 0 {
		return out
	}
	filtered := out[:0]
	for _, p := range out {
		if s.matchesContext(p, ctx) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func (s *snapshot) matchesContext(pos int, ctx map[string]string) bool {
	c := s.cands[pos]
	for k, want := range ctx {
		if !s.attrKeys[k] {
			continue // ключ неизвестен корпусу — не ограничение
		}
		if c.Attrs[k] != want {
			return false
		}
	}
	return true
}

// ClosestName — ближайшее по Дамерау-Левенштейну наименование корпуса,
// подсказка «возможно, вы имели в виду» для пустой выдачи. Короткий запрос
// сравнивается и с целым наименованием, и с его отдельными словами.
func (s *snapshot) ClosestName(queryNorm string) (string, float64) {
	bestName, best := "", 0.0
	for i := range s.cands {
		sim := BestSimilarity(queryNorm, s.cands[i].Norm)
		for _, w := range strings.Fields(s.cands[i].Norm) {
			if ws := Similarity(queryNorm, w); ws > sim {
				sim = ws
			}
		}
		if sim > best {
			best = sim
			bestName = s.cands[i].Name
		}
	}
	return bestName, best
}
