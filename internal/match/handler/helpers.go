package handler

import (
	"regexp"
	"strconv"
	"strings"

	"match-service/internal/match/model"
	"match-service/internal/utils"
)

// CorpusMapping — какие колонки прайс-листа куда идут.
// Ключи поддерживают альтернативы через "|" ("Наименование|Номенклатура").
type CorpusMapping struct {
	IDKey       string
	NameKey     string
	CategoryKey string
	PriceKey    string
	HeaderRow   int // 1-based
}

var rxHeaderKey = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// normHeaderKey — имя колонки к сравнимому виду: регистр, NBSP, ё→е,
// служебные символы, множественные пробелы.
func normHeaderKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("\u00A0", " ", "\u202F", " ", "ё", "е").Replace(s)
	s = rxHeaderKey.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// resolveKey — ищет реальный ключ записи по желаемому имени колонки.
// Сначала точно, потом по нормализованному равенству, потом contains в обе
// стороны (составные заголовки вроде «Номенклатура, наименование полное»).
func resolveKey(rec map[string]string, want string) string {
	want = strings.TrimSpace(want)
	if want == "" {
		return ""
	}
	alts := strings.Split(want, "|")
	for i := range alts {
		alts[i] = strings.TrimSpace(alts[i])
	}

	for _, a := range alts {
		if _, ok := rec[a]; ok {
			return a
		}
	}

	nWantAll := make([]string, 0, len(alts))
	for _, a := range alts {
		nWantAll = append(nWantAll, normHeaderKey(a))
	}

	bestKey := ""
	bestScore := 0
	for k := range rec {
		nk := normHeaderKey(k)
		for _, n := range nWantAll {
			if nk == n {
				return k
			}
		}
		score := 0
		for _, n := range nWantAll {
			if n == "" || nk == "" {
				continue
			}
			if strings.Contains(nk, n) || strings.Contains(n, nk) {
				if len(n) > score {
					score = len(n)
				}
			}
			// доменные эвристики заголовков
			for _, stem := range []string{"наимен", "номенклатур", "категор", "артикул", "цена"} {
				if strings.Contains(n, stem) && strings.Contains(nk, stem) {
					score += 100
				}
			}
		}
		if score > bestScore {
			bestScore, bestKey = score, k
		}
	}
	return bestKey
}

// looksLikeHeaderMap — строка-«шапка», затесавшаяся в данные.
func looksLikeHeaderMap(m map[string]string) bool {
	cnt := 0
	for _, v := range m {
		s := strings.ToLower(strings.TrimSpace(v))
		if strings.Contains(s, "наимен") || strings.Contains(s, "артикул") ||
			strings.Contains(s, "категор") || strings.Contains(s, "цена") {
			cnt++
		}
	}
	return cnt >= 2
}

// rowsToCandidates — записи прайс-листа в кандидатов корпуса.
// Строки без наименования пропускаются; без колонки id кандидат получает
// порядковый номер.
func rowsToCandidates(rows []map[string]string, m CorpusMapping) []model.Candidate {
	cands := make([]model.Candidate, 0, len(rows))
	for i, rec := range rows {
		if looksLikeHeaderMap(rec) {
			continue
		}

		nameKey := resolveKey(rec, m.NameKey)
		name := strings.TrimSpace(rec[nameKey])
		if name == "" {
			continue
		}

		id := strings.TrimSpace(rec[resolveKey(rec, m.IDKey)])
		if id == "" {
			id = strconv.Itoa(i + 1)
		}

		attrs := map[string]string{}
		if cat := strings.TrimSpace(rec[resolveKey(rec, m.CategoryKey)]); cat != "" {
			attrs["category"] = cat
		}
		if raw := rec[resolveKey(rec, m.PriceKey)]; raw != "" {
			if price, ok := utils.ParseFloatRU(raw); ok {
				attrs["price"] = strconv.FormatFloat(price, 'f', -1, 64)
			}
		}
		if len(attrs) == 0 {
			attrs = nil
		}

		cands = append(cands, model.Candidate{ID: id, Name: name, Attrs: attrs})
	}
	return cands
}

func atoi(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
