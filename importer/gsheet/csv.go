package gsheet

import (
	"io"
	"strings"
)

// ParseCSV parses user-edited delimited text into rows of trimmed cells.
// The tabs are not schema-validated, so the parser is deliberately tolerant
// where encoding/csv would error out:
//
//   - a quote opens a quoted section only at the start of a cell; interior
//     quotes are literal, so `Jane "JJ" Doe` survives unquoted
//   - inside quotes, commas and newlines are cell content and "" is a
//     literal quote
//   - CR, LF and CRLF all terminate rows, but only outside quotes
//   - rows whose cells are all empty are dropped; ragged rows are kept
//   - a final row without a trailing newline is still emitted
func ParseCSV(r io.Reader) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var (
		rows     [][]string
		row      []string
		cell     strings.Builder
		inQuotes bool
		quoted   bool // current cell opened with a quote
	)

	endCell := func() {
		row = append(row, strings.TrimSpace(cell.String()))
		cell.Reset()
		quoted = false
	}

	endRow := func() {
		endCell()

		for _, c := range row {
			if c != "" {
				rows = append(rows, row)
				break
			}
		}

		row = nil
	}

	for i := 0; i < len(data); i++ {
		ch := data[i]

		if inQuotes {
			switch {
			case ch == '"' && i+1 < len(data) && data[i+1] == '"':
				cell.WriteByte('"')
				i++
			case ch == '"':
				inQuotes = false
			default:
				cell.WriteByte(ch)
			}

			continue
		}

		switch ch {
		case '"':
			if cell.Len() == 0 && !quoted {
				inQuotes = true
				quoted = true
			} else {
				cell.WriteByte('"')
			}
		case ',':
			endCell()
		case '\r':
			endRow()

			if i+1 < len(data) && data[i+1] == '\n' {
				i++
			}
		case '\n':
			endRow()
		default:
			cell.WriteByte(ch)
		}
	}

	// No trailing newline: flush whatever accumulated. An unterminated
	// quote at EOF flushes the same way.
	endRow()

	return rows, nil
}
