package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"match-service/internal/match/model"
)

func kinds(segs []model.Segment) []model.SegmentKind {
	out := make([]model.SegmentKind, len(segs))
	for i, s := range segs {
		out[i] = s.Kind
	}
	return out
}

func TestSegment(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []model.SegmentKind
	}{
		{
			"empty", "", []model.SegmentKind{},
		},
		{
			"simple material",
			"пеноплэкс",
			[]model.SegmentKind{model.SegBase},
		},
		{
			"base prefix then dimension",
			"Пеноплэкс Комфорт 50мм",
			[]model.SegmentKind{model.SegBase, model.SegBase, model.SegDimension},
		},
		{
			"brand and glued dimension",
			"Кабель ВВГ 3х1,5",
			[]model.SegmentKind{model.SegBase, model.SegBrand, model.SegDimension},
		},
		{
			"technical with articles",
			"Кран шаровой резьбовой BVR-R DN32 065B8310R Ридан",
			[]model.SegmentKind{
				model.SegBase, model.SegBase, model.SegBase,
				model.SegArticle, model.SegDimension, model.SegArticle, model.SegBrand,
			},
		},
		{
			"quoted brand, trailing word is free",
			`Смесь "Кнауф" универсальная`,
			[]model.SegmentKind{model.SegBase, model.SegBrand, model.SegFree},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, kinds(Segment(tc.in)))
		})
	}
}

func TestSegmentNormalizedText(t *testing.T) {
	segs := Segment("Кабель ВВГ 3х1,5")
	require.Len(t, segs, 3)
	assert.Equal(t, "кабель", segs[0].Norm)
	assert.Equal(t, "ввг", segs[1].Norm)
	assert.Equal(t, "3х1.5", segs[2].Norm)
	// исходный текст сохраняется для выдачи
	assert.Equal(t, "ВВГ", segs[1].Text)
}

func TestSegmentQueryAndCandidateAgree(t *testing.T) {
	// одна и та же строка сегментируется одинаково независимо от роли
	q := Segment("Кран шаровой DN32")
	c := Segment("Кран шаровой DN32")
	assert.Equal(t, q, c)
}
