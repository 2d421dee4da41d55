package engine

import (
	"regexp"
	"strings"
)

// Латиница→кириллица (визуальные двойники)
var lookalikes = map[rune]rune{
	'A': 'А', 'B': 'В', 'C': 'С', 'E': 'Е', 'H': 'Н', 'K': 'К', 'M': 'М', 'O': 'О', 'P': 'Р', 'T': 'Т', 'X': 'Х', 'Y': 'У',
	'a': 'а', 'c': 'с', 'e': 'е', 'o': 'о', 'p': 'р', 'x': 'х',
}

// 0,5 → 0.5
var decComma = regexp.MustCompile(`(\d),(\d)`)

// Разрешаем буквы/цифры/пробелы + дефис, точку и % — они значимы в артикулах и размерах
var punct = regexp.MustCompile(`[^\p{L}\p{N}\s.\-%]+`)

// Normalize — канонизация строки для сравнения: двойники, регистр,
// десятичные запятые, пунктуация, пробелы. Чистая тотальная функция.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	out := unifyLookalikes(s)
	out = strings.ToLower(out)
	out = decComma.ReplaceAllString(out, "$1.$2")
	out = punct.ReplaceAllString(out, " ")
	return collapseSpaces(out)
}

// Ё→Е, лат↔кир по lookalikes, знаки умножения → х
func unifyLookalikes(s string) string {
	b := make([]rune, 0, len(s))
	for _, r := range s {
		switch r {
		case 'ё':
			r = 'е'
		case 'Ё':
			r = 'Е'
		case '×', '*', '·':
			r = 'х'
		default:
			if rr, ok := lookalikes[r]; ok {
				r = rr
			}
		}
		b = append(b, r)
	}
	return string(b)
}

// Схлопывание пробелов
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
