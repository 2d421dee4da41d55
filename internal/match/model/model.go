package model

// Candidate — одна запись корпуса (наименование поставщика или номенклатуры).
type Candidate struct {
	ID    string            `json:"id"`
	Name  string            `json:"name"`
	Attrs map[string]string `json:"attrs,omitempty"` // категория, артикул, цена и т.п.
}

// QueryShape — тип запроса, определяет стратегию поиска.
type QueryShape string

const (
	ShapeSimple    QueryShape = "simple"    // 1-2 слова, без цифр и артикулов
	ShapeTechnical QueryShape = "technical" // артикулы, размеры, бренды
	ShapeMixed     QueryShape = "mixed"
)

// SegmentKind — смысловой тип токена внутри наименования.
type SegmentKind string

const (
	SegBase      SegmentKind = "base"      // опорная фраза материала ("кран шаровой")
	SegArticle   SegmentKind = "article"   // артикул (BVR-R, 065B8310R)
	SegDimension SegmentKind = "dimension" // размер (DN32, 50x100, 48мм, 3,2)
	SegBrand     SegmentKind = "brand"     // бренд (ВВГ, Ридан, "Кнауф")
	SegFree      SegmentKind = "free"
)

// Segment — типизированный токен. Text — исходный вид, Norm — нормализованный
// (для сравнений; не сериализуется).
type Segment struct {
	Text string      `json:"text"`
	Kind SegmentKind `json:"kind"`
	Norm string      `json:"-"`
}

// ScoreVector — сырые оценки четырёх методов по одному кандидату.
type ScoreVector struct {
	Exact   float64 `json:"exact"`
	Overlap float64 `json:"overlap"`
	Keyword float64 `json:"keyword"`
	Segment float64 `json:"segment"`
}

// Suggestion — одна позиция ранжированной выдачи.
type Suggestion struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Confidence      float64  `json:"confidence"` // [0,1]
	MatchedSegments []string `json:"matchedSegments"`
}

// SearchResult — итог одного вызова Search.
type SearchResult struct {
	Shape       QueryShape   `json:"shape"`
	Suggestions []Suggestion `json:"suggestions"`
}
