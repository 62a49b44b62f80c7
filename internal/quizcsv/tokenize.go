package quizcsv

import "strings"

// SplitFields splits one logical record into cell values on commas that
// sit outside quoted spans. Each cell is trimmed; if the whole cell was
// enclosed in double quotes, one layer is stripped; doubled quotes are
// unescaped to a literal quote.
//
// Short rows are not an error: callers treat a missing cell as empty.
// A cell that contains a comma must have been quoted by the producing
// tool to survive as a single cell.
func SplitFields(record string) []string {
	var raw []string
	var b strings.Builder
	inQuotes := false

	for i := 0; i < len(record); i++ {
		c := record[i]
		switch c {
		case '"':
			if inQuotes && i+1 < len(record) && record[i+1] == '"' {
				b.WriteString(`""`)
				i++
				continue
			}
			inQuotes = !inQuotes
			b.WriteByte(c)
		case ',':
			if inQuotes {
				b.WriteByte(c)
			} else {
				raw = append(raw, b.String())
				b.Reset()
			}
		default:
			b.WriteByte(c)
		}
	}
	raw = append(raw, b.String())

	cells := make([]string, len(raw))
	for i, cell := range raw {
		cells[i] = cleanCell(cell)
	}
	return cells
}

// cleanCell trims a raw cell, strips one layer of enclosing quotes, and
// unescapes doubled quotes.
func cleanCell(cell string) string {
	cell = strings.TrimSpace(cell)
	if len(cell) >= 2 && cell[0] == '"' && cell[len(cell)-1] == '"' {
		cell = cell[1 : len(cell)-1]
	}
	return strings.ReplaceAll(cell, `""`, `"`)
}
