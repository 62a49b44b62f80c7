package quizcsv

import "strings"

// SplitRecords splits a raw quiz file buffer into logical records. A
// record boundary is a line feed seen while not inside a quoted span, so
// a quoted field may carry embedded newlines without ending the record.
// Quote state toggles on each double quote; a doubled quote ("") inside
// a quoted span is the escape for a literal quote and does not toggle.
//
// Each record is trimmed of surrounding whitespace (which also drops a
// trailing carriage return), and empty records are discarded.
//
// A quote left open at EOF consumes the rest of the buffer as one
// record. That matches the exporting tool's observed behavior and is a
// documented limitation, not an error.
func SplitRecords(text string) []string {
	var records []string
	var b strings.Builder
	inQuotes := false

	flush := func() {
		rec := strings.TrimSpace(b.String())
		if rec != "" {
			records = append(records, rec)
		}
		b.Reset()
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch c {
		case '"':
			if inQuotes && i+1 < len(text) && text[i+1] == '"' {
				b.WriteString(`""`)
				i++
				continue
			}
			inQuotes = !inQuotes
			b.WriteByte(c)
		case '\n':
			if inQuotes {
				b.WriteByte(c)
			} else {
				flush()
			}
		default:
			b.WriteByte(c)
		}
	}
	flush()

	return records
}
