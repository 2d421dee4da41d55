package engine

import "match-service/internal/match/model"

// Strategy — веса четырёх методов и порог отсечения для типа запроса.
// Порог применяется к нормализованной итоговой уверенности, не к сырым очкам.
type Strategy struct {
	WExact   float64 `json:"wExact"`
	WOverlap float64 `json:"wOverlap"`
	WKeyword float64 `json:"wKeyword"`
	WSegment float64 `json:"wSegment"`

	Threshold float64 `json:"threshold"`
}

// Таблица стратегий: простой запрос — упор на точные совпадения и низкий
// порог; технический — упор на сегментный поиск и высокий порог.
var strategyTable = map[model.QueryShape]Strategy{
	model.ShapeSimple:    {WExact: 3, WOverlap: 2, WKeyword: 1, WSegment: 0, Threshold: 0.2},
	model.ShapeTechnical: {WExact: 1, WOverlap: 2, WKeyword: 2, WSegment: 3, Threshold: 0.5},
	model.ShapeMixed:     {WExact: 2, WOverlap: 2, WKeyword: 2, WSegment: 2, Threshold: 0.35},
}

// SelectStrategy — отображение тип запроса → стратегия. Неизвестный тип
// получает стратегию mixed.
func SelectStrategy(shape model.QueryShape) Strategy {
	if s, ok := strategyTable[shape]; ok {
		return s
	}
	return strategyTable[model.ShapeMixed]
}
