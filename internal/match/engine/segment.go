package engine

import (
	"regexp"
	"strings"
	"unicode"

	"match-service/internal/match/model"
)

// Размер как отдельный токен: 50х100, 48мм, 3,2, DN32/Ду32
var reDimToken = regexp.MustCompile(`(?i)^(?:\d+(?:[.,]\d+)?[xх×*]\d+(?:[.,]\d+)?|\d+(?:[.,]\d+)?(?:мм|см|мл|мг|кг|г|м|л)|\d+,\d+|(?:dn|ду)\d+)$`)

// Segment — разбивает строку на типизированные токены. Применяется одинаково
// к запросу и к наименованию кандидата при построении индекса.
//
// Порядок правил на токен: dimension → article → brand → base/free.
// base — жадный префикс из обычных словесных токенов; после первого
// не-base токена словесные токены уже не считаются опорной фразой.
func Segment(raw string) []model.Segment {
	words := strings.Fields(raw)
	if len(words) == 0 {
		return nil
	}

	segs := make([]model.Segment, 0, len(words))
	inBase := true
	for _, w := range words {
		kind := classifyToken(w, inBase)
		if kind != model.SegBase {
			inBase = false
		}
		norm := Normalize(w)
		if norm == "" {
			continue // токен из одной пунктуации
		}
		segs = append(segs, model.Segment{Text: w, Kind: kind, Norm: norm})
	}
	return segs
}

func classifyToken(w string, inBase bool) model.SegmentKind {
	trimmed := strings.Trim(w, `"«»'()`)
	quoted := trimmed != w && trimmed != ""
	if trimmed == "" {
		trimmed = w
	}

	if reDimToken.MatchString(trimmed) {
		return model.SegDimension
	}
	if isArticle(trimmed) {
		return model.SegArticle
	}
	if quoted || isUpperWord(trimmed) {
		return model.SegBrand
	}
	if isPlainWord(trimmed) {
		if inBase {
			return model.SegBase
		}
		// капитализированное слово в середине строки — почти всегда бренд
		if isCapitalized(trimmed) {
			return model.SegBrand
		}
		return model.SegFree
	}
	return model.SegFree
}

// артикул: смешанный буквенно-цифровой кластер (065B8310R) либо
// заглавный кластер с дефисом (BVR-R)
func isArticle(w string) bool {
	hasLetter, hasDigit, hasHyphen := false, false, false
	for _, r := range w {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		case r == '-':
			hasHyphen = true
		default:
			return false
		}
	}
	if hasLetter && hasDigit {
		return true
	}
	return hasLetter && hasHyphen && isUpperWord(strings.ReplaceAll(w, "-", ""))
}

// все буквы заглавные, длина ≥ 2 (ВВГ, BVR)
func isUpperWord(w string) bool {
	n := 0
	for _, r := range w {
		if !unicode.IsUpper(r) {
			return false
		}
		n++
	}
	return n >= 2
}

// только буквы, без цифр и спецсимволов
func isPlainWord(w string) bool {
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return w != ""
}

// Первая буква заглавная, остальные строчные (Ридан)
func isCapitalized(w string) bool {
	rs := []rune(w)
	if len(rs) < 2 || !unicode.IsUpper(rs[0]) {
		return false
	}
	for _, r := range rs[1:] {
		if !unicode.IsLower(r) {
			return false
		}
	}
	return true
}
