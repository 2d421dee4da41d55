package fileio

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ReadTable — выбирает парсер по расширению и возвращает строки прайс-листа
// как срез map[заголовок]значение. headerRow — номер строки заголовков (1-based).
func ReadTable(r io.Reader, filename string, headerRow int) ([]map[string]string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".xlsx":
		return readXLSX(r, headerRow)
	case ".xls":
		return readXLS(r, headerRow)
	case ".csv":
		return readCSV(r, headerRow)
	default:
		return nil, fmt.Errorf("unsupported file: %s", filename)
	}
}

// pickHeader — строка заголовков; пустым колонкам даём имя Column N.
func pickHeader(rows [][]string, headerRow int) []string {
	idx := headerRow - 1
	if idx < 0 || idx >= len(rows) {
		idx = 0
	}
	h := rows[idx]
	out := make([]string, len(h))
	for i, v := range h {
		v = strings.TrimSpace(v)
		if v == "" {
			v = fmt.Sprintf("Column %d", i+1)
		}
		out[i] = v
	}
	return out
}

// rowsToMaps — строки после заголовка в []map, полностью пустые пропускаем.
func rowsToMaps(rows [][]string, headers []string, headerRow int) []map[string]string {
	var out []map[string]string
	for r := headerRow; r < len(rows); r++ {
		rec := rows[r]
		m := make(map[string]string, len(headers))
		empty := true
		for c := 0; c < len(headers); c++ {
			var v string
			if c < len(rec) {
				v = rec[c]
			}
			m[headers[c]] = v
			if empty && strings.TrimSpace(v) != "" {
				empty = false
			}
		}
		if !empty {
			out = append(out, m)
		}
	}
	return out
}

// normalizeCell — уборка ячейки: NBSP/узкие пробелы → обычный, обрезка краёв.
func normalizeCell(s string) string {
	s = strings.NewReplacer("\u00A0", " ", "\u2009", " ", "\u202F", " ").Replace(s)
	return strings.TrimSpace(s)
}
