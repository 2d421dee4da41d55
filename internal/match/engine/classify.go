package engine

import (
	"regexp"
	"strings"

	"match-service/internal/match/model"
)

// Паттерны считаются по ИСХОДНОМУ тексту: регистр важен для брендов и артикулов.
var (
	reDigit    = regexp.MustCompile(`\d`)
	reUpperRun = regexp.MustCompile(`\p{Lu}{2,}`)
	// цифра вплотную к букве: DN32, 065B8310R
	reDigitLetter = regexp.MustCompile(`\p{L}-?\d|\d-?\p{L}`)
	// размеры: 50х100, 48 мм, 3,2. После единицы — не буква и не цифра:
	// \b в RE2 видит только ASCII и после кириллицы не срабатывает.
	reDimAnywhere = regexp.MustCompile(`(?i)\d\s*[xх×*]\s*\d|\d\s*(?:мм|см|мл|кг)(?:[^\p{L}\p{N}]|$)|\d,\d`)
)

// Classify — определяет тип запроса. Первое сработавшее правило побеждает;
// пустая строка — simple (нулевой запрос отсекается выше по стеку).
func Classify(raw string) model.QueryShape {
	words := strings.Fields(raw)
	hasDigit := reDigit.MatchString(raw)
	hasUpperRun := reUpperRun.MatchString(raw)

	if len(words) <= 2 && !hasDigit && !hasUpperRun {
		return model.ShapeSimple
	}
	if reDigitLetter.MatchString(raw) || hasUpperRun || reDimAnywhere.MatchString(raw) {
		return model.ShapeTechnical
	}
	return model.ShapeMixed
}
