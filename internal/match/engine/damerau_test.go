package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDamerauLevenshtein(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"кран", "", 4},
		{"кран", "кран", 0},
		{"кран", "крна", 1}, // транспозиция соседей
		{"пеноплэкс", "пеноплекс", 1},
		{"кот", "кит", 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, damerauLevenshtein(tc.a, tc.b), "%q vs %q", tc.a, tc.b)
	}
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("", ""))
	assert.Equal(t, 0.0, Similarity("кран", ""))
	assert.Equal(t, 1.0, Similarity("кран", "кран"))
	assert.InDelta(t, 1.0-1.0/9.0, Similarity("пеноплэкс", "пеноплекс"), 1e-9)
}

func TestBestSimilarityTokenOrder(t *testing.T) {
	// перестановка слов не должна ронять близость
	assert.Equal(t, 1.0, BestSimilarity("нож туристический", "туристический нож"))
}
