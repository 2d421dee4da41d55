package engine

import (
	"sort"

	"match-service/internal/match/model"
)

// DefaultTopN — размер выдачи, если вызывающий не попросил иначе.
const DefaultTopN = 10

// DefaultSaturationK — константа насыщающей нормализации
// confidence = raw/(raw+K): одиночное точное совпадение (raw≈10 при весе 1)
// уже даёт уверенность выше 0.5.
const DefaultSaturationK = 10.0

type rankedCandidate struct {
	pos        int
	confidence float64
}

// rank — считает четыре метода по каждому кандидату, сворачивает во
// взвешенную сумму, нормализует, режет по порогу и сортирует.
func rank(queryNorm string, querySegs []model.Segment, snap *snapshot, positions []int, strat Strategy, k float64, topN int) []model.Suggestion {
	ranked := make([]rankedCandidate, 0, len(positions))
	for _, p := range positions {
		c := &snap.cands[p]

		sv := model.ScoreVector{
			Exact:   sanitize(ExactScore(queryNorm, c.Norm)),
			Overlap: sanitize(OverlapScore(queryNorm, c.Norm)),
			Keyword: sanitize(KeywordScore(querySegs, c.Norm)),
			Segment: sanitize(SegmentScore(querySegs, c.Segments)),
		}
		raw := strat.WExact*sv.Exact + strat.WOverlap*sv.Overlap +
			strat.WKeyword*sv.Keyword + strat.WSegment*sv.Segment

		conf := sanitize(raw / (raw + k))
		if conf > 1 {
			conf = 1
		}
		if conf <= strat.Threshold {
			continue
		}
		ranked = append(ranked, rankedCandidate{pos: p, confidence: conf})
	}

	// убывание уверенности, при равенстве — возрастание id (детерминизм)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].confidence != ranked[j].confidence {
			return ranked[i].confidence > ranked[j].confidence
		}
		return snap.cands[ranked[i].pos].ID < snap.cands[ranked[j].pos].ID
	})

	if topN <= 0 {
		topN = DefaultTopN
	}
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	out := make([]model.Suggestion, 0, len(ranked))
	seen := make(map[string]bool, len(ranked))
	for _, rc := range ranked {
		c := &snap.cands[rc.pos]
		if seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		out = append(out, model.Suggestion{
			ID:              c.ID,
			Name:            c.Name,
			Confidence:      rc.confidence,
			MatchedSegments: MatchedSegments(querySegs, c.Norm, c.Segments),
		})
	}
	return out
}
