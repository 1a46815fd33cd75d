// Package encoding decodes fetched spreadsheet exports to UTF-8. The tabs
// are user-edited and occasionally re-saved through desktop tools, so the
// body can arrive as UTF-8 with or without a BOM, UTF-16, or a legacy
// single-byte charset.
package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var bomUTF8 = []byte{0xEF, 0xBB, 0xBF}

// charmaps maps chardet charset names to their single-byte decoders. Anything
// not listed here falls back to Windows-1252, the usual culprit for bank
// exports.
var charmaps = map[string]*charmap.Charmap{
	"ISO-8859-1":   charmap.Windows1252,
	"windows-1252": charmap.Windows1252,
	"ISO-8859-9":   charmap.ISO8859_9,
}

// NewUTF8Reader wraps r with whatever decoding the content needs:
// a UTF-8 BOM is stripped, UTF-16 BOMs select the matching decoder, valid
// UTF-8 passes through, and everything else goes through chardet with a
// Windows-1252 fallback.
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	// Peek enough for BOM detection and charset heuristics.
	buf, err := br.Peek(4096)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("peek: %w", err)
	}

	if bytes.HasPrefix(buf, bomUTF8) {
		_, _ = br.Discard(len(bomUTF8))
		return br, nil
	}

	if len(buf) >= 2 {
		switch {
		case buf[0] == 0xFF && buf[1] == 0xFE:
			return transform.NewReader(br, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()), nil
		case buf[0] == 0xFE && buf[1] == 0xFF:
			return transform.NewReader(br, unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()), nil
		}
	}

	if utf8.Valid(buf) {
		return br, nil
	}

	if result, err := chardet.NewTextDetector().DetectBest(buf); err == nil {
		if result.Charset == "UTF-8" {
			return br, nil
		}

		if cm, ok := charmaps[result.Charset]; ok {
			return transform.NewReader(br, cm.NewDecoder()), nil
		}
	}

	return transform.NewReader(br, charmap.Windows1252.NewDecoder()), nil
}
