package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"match-service/internal/match/model"
)

func TestExactScore(t *testing.T) {
	cand := Normalize("Пеноплэкс Комфорт 50мм")

	// фраза целиком (+10) и слово как подстрока (+3)
	assert.InDelta(t, 13.0, ExactScore("пеноплэкс", cand), 1e-9)
	// только слова, фраза целиком не входит
	assert.InDelta(t, 6.0, ExactScore("пеноплэкс 50мм", cand), 1e-9)
	assert.Zero(t, ExactScore("кирпич", cand))
	assert.Zero(t, ExactScore("", cand))
	assert.Zero(t, ExactScore("пеноплэкс", ""))
}

func TestOverlapScore(t *testing.T) {
	cases := []struct {
		name  string
		query string
		cand  string
		want  float64
	}{
		{"contains+prefix", "пеноплэкс", "пеноплэкс комфорт", 0.5},
		{"contains+suffix", "ввг", "кабель ввг", 0.4},
		{"contains only", "комфорт", "пеноплэкс комфорт 50мм", 0.3},
		{"no match", "кирпич", "пеноплэкс", 0},
		{"full equality", "ввг", "ввг", 0.6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, OverlapScore(tc.query, tc.cand), 1e-9)
		})
	}
}

func TestKeywordScore(t *testing.T) {
	segs := Segment("Кабель ВВГ 3х1,5")
	cand := Normalize("Кабель силовой ВВГ 3х1,5")

	// base ×3, brand ×2, dimension ×2
	assert.InDelta(t, 7.0, KeywordScore(segs, cand), 1e-9)
	assert.Zero(t, KeywordScore(segs, ""))
	assert.Zero(t, KeywordScore(nil, cand))
}

func TestSegmentScore(t *testing.T) {
	query := Segment("Кабель ВВГ 3х1,5")
	full := Segment("Кабель силовой ВВГ 3х1,5")
	partial := Segment("Кабель силовой АВВГ 2х6")
	empty := []model.Segment{}

	// все три сегмента закрыты сегментами того же типа
	assert.InDelta(t, 10.0, SegmentScore(query, full), 1e-9)
	// base закрыт, бренд закрыт подстрокой (ввг ⊂ аввг), размер — нет
	assert.InDelta(t, 10.0*2.0/3.0, SegmentScore(query, partial), 1e-9)
	assert.Zero(t, SegmentScore(query, empty))
	assert.Zero(t, SegmentScore(nil, full))
}

func TestMatchedSegments(t *testing.T) {
	query := Segment("Кран шаровой DN32 Ридан")
	candNorm := Normalize("Кран шаровой резьбовой DN32 Ридан")
	candSegs := Segment("Кран шаровой резьбовой DN32 Ридан")

	got := MatchedSegments(query, candNorm, candSegs)
	assert.Equal(t, []string{"Кран", "шаровой", "DN32", "Ридан"}, got)

	assert.Empty(t, MatchedSegments(query, Normalize("Гайка М10"), Segment("Гайка М10")))
}

func TestSanitize(t *testing.T) {
	assert.Zero(t, sanitize(math.NaN()))
	assert.Zero(t, sanitize(math.Inf(1)))
	assert.Zero(t, sanitize(-3))
	assert.Equal(t, 2.5, sanitize(2.5))
}
