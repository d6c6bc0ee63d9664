package extractor

import (
	"encoding/hex"
	"regexp"
	"strings"
	"unicode/utf16"
)

// unicodeTable maps hex-encoded character codes to Unicode text, built from
// the ToUnicode CMap streams of the slip's embedded fonts.
type unicodeTable struct {
	codes map[string]string
}

var (
	bfCharBlock  = regexp.MustCompile(`(?s)beginbfchar\s*(.*?)\s*endbfchar`)
	bfRangeBlock = regexp.MustCompile(`(?s)beginbfrange\s*(.*?)\s*endbfrange`)
	hexToken     = regexp.MustCompile(`<([0-9A-Fa-f]+)>`)
)

// findUnicodeTable collects every ToUnicode CMap in the file into one merged
// table. Nil when the file has none.
func findUnicodeTable(data []byte) *unicodeTable {
	merged := &unicodeTable{codes: make(map[string]string)}
	for _, stream := range contentStreams(data) {
		content := string(inflate(stream))
		if !strings.Contains(content, "beginbfchar") && !strings.Contains(content, "beginbfrange") {
			continue
		}
		parseCMap(content, merged)
	}
	if len(merged.codes) == 0 {
		return nil
	}
	return merged
}

// parseCMap reads the bfchar and bfrange sections of one CMap stream into
// the table.
func parseCMap(content string, t *unicodeTable) {
	// bfchar: <srcCode> <unicodeValue> pairs
	for _, block := range bfCharBlock.FindAllStringSubmatch(content, -1) {
		tokens := hexToken.FindAllStringSubmatch(block[1], -1)
		for i := 0; i+1 < len(tokens); i += 2 {
			if uni := hexUnicode(tokens[i+1][1]); uni != "" {
				t.codes[strings.ToUpper(tokens[i][1])] = uni
			}
		}
	}

	// bfrange: <start> <end> <startUnicode>, or <start> <end> [<u1> <u2> ...]
	for _, block := range bfRangeBlock.FindAllStringSubmatch(content, -1) {
		for _, line := range strings.Split(block[1], "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if strings.Contains(line, "[") {
				parseRangeArray(line, t)
				continue
			}

			tokens := hexToken.FindAllStringSubmatch(line, -1)
			if len(tokens) < 3 {
				continue
			}
			startCode := hexInt(tokens[0][1])
			endCode := hexInt(tokens[1][1])
			dstCode := hexInt(tokens[2][1])
			if startCode < 0 || endCode < 0 || dstCode < 0 {
				continue
			}

			width := len(tokens[0][1])
			for code := startCode; code <= endCode; code++ {
				key := paddedHex(code, width)
				if uni := hexUnicode(paddedHex(dstCode+(code-startCode), len(tokens[2][1]))); uni != "" {
					t.codes[key] = uni
				}
			}
		}
	}
}

// parseRangeArray handles the per-code form: <start> <end> [<u1> <u2> ...].
func parseRangeArray(line string, t *unicodeTable) {
	bracket := strings.Index(line, "[")
	if bracket < 0 {
		return
	}
	heads := hexToken.FindAllStringSubmatch(line[:bracket], -1)
	if len(heads) < 2 {
		return
	}
	startCode := hexInt(heads[0][1])
	width := len(heads[0][1])

	for i, tok := range hexToken.FindAllStringSubmatch(line[bracket:], -1) {
		if uni := hexUnicode(tok[1]); uni != "" {
			t.codes[paddedHex(startCode+i, width)] = uni
		}
	}
}

// decode translates raw string bytes through the table. Code width comes
// from the table's own keys (one or two bytes); unmapped multi-byte codes
// fall back to a single-byte retry so mixed-width fonts still decode.
func (t *unicodeTable) decode(raw []byte) string {
	if len(t.codes) == 0 {
		return ""
	}

	codeLen := 1
	for k := range t.codes {
		codeLen = len(k) / 2
		break
	}
	if codeLen < 1 {
		codeLen = 1
	}

	var b strings.Builder
	for i := 0; i <= len(raw)-codeLen; i += codeLen {
		chunk := raw[i : i+codeLen]
		key := strings.ToUpper(hex.EncodeToString(chunk))
		if uni, ok := t.codes[key]; ok {
			b.WriteString(uni)
			continue
		}
		if codeLen > 1 {
			if uni, ok := t.codes[strings.ToUpper(hex.EncodeToString(chunk[:1]))]; ok {
				b.WriteString(uni)
				i -= codeLen - 1
				continue
			}
		}
		if codeLen == 1 && chunk[0] >= 32 && chunk[0] < 127 {
			b.WriteByte(chunk[0])
		}
	}
	return b.String()
}

func hexInt(h string) int {
	val := 0
	for _, c := range strings.ToUpper(h) {
		val <<= 4
		switch {
		case c >= '0' && c <= '9':
			val += int(c - '0')
		case c >= 'A' && c <= 'F':
			val += int(c-'A') + 10
		default:
			return -1
		}
	}
	return val
}

func paddedHex(val, width int) string {
	h := strings.ToUpper(hex.EncodeToString([]byte{byte(val >> 8), byte(val)}))
	if len(h) > width {
		h = h[len(h)-width:]
	}
	for len(h) < width {
		h = "0" + h
	}
	return h
}

// hexUnicode converts a hex-encoded UTF-16BE value, surrogate pairs
// included, to a string.
func hexUnicode(h string) string {
	if len(h)%2 != 0 {
		h = "0" + h
	}
	data, err := hex.DecodeString(h)
	if err != nil {
		return ""
	}

	switch len(data) {
	case 2:
		return string(rune(uint16(data[0])<<8 | uint16(data[1])))
	case 4:
		hi := uint16(data[0])<<8 | uint16(data[1])
		lo := uint16(data[2])<<8 | uint16(data[3])
		if hi >= 0xD800 && hi <= 0xDBFF && lo >= 0xDC00 && lo <= 0xDFFF {
			return string(utf16.DecodeRune(rune(hi), rune(lo)))
		}
		return string(rune(hi)) + string(rune(lo))
	}

	var b strings.Builder
	for i := 0; i+1 < len(data); i += 2 {
		b.WriteRune(rune(uint16(data[i])<<8 | uint16(data[i+1])))
	}
	return b.String()
}
