package extractor

import (
	"bytes"
	"compress/zlib"
	"encoding/hex"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode"
)

// extractFromStreams pulls text straight out of the PDF byte stream without
// the structured library. The slip generators emit CIDFont/Type0 encodings
// that defeat library decoding; this path finds the ToUnicode CMap streams,
// builds the code-to-rune table, and applies it to the text operators (Tj,
// TJ, ') found in the content streams.
//
// Page boundaries are not recoverable from raw streams, so everything comes
// back as one page.
func extractFromStreams(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	streams := contentStreams(data)
	if len(streams) == 0 {
		return nil, nil
	}

	table := findUnicodeTable(data)

	var texts []string
	for _, stream := range streams {
		if text := streamText(inflate(stream), table); text != "" {
			texts = append(texts, text)
		}
	}
	if len(texts) == 0 {
		return nil, nil
	}

	var page strings.Builder
	for _, t := range texts {
		if page.Len() > 0 {
			page.WriteString("\n")
		}
		page.WriteString(t)
	}
	return []string{cleanPageText(page.String())}, nil
}

// contentStreams returns every stream...endstream block in the file.
func contentStreams(data []byte) [][]byte {
	var streams [][]byte
	startMarker := []byte("stream")
	endMarker := []byte("endstream")

	offset := 0
	for offset < len(data) {
		idx := bytes.Index(data[offset:], startMarker)
		if idx < 0 {
			break
		}
		start := offset + idx + len(startMarker)
		if start < len(data) && data[start] == '\r' {
			start++
		}
		if start < len(data) && data[start] == '\n' {
			start++
		}

		endIdx := bytes.Index(data[start:], endMarker)
		if endIdx < 0 {
			break
		}
		if body := data[start : start+endIdx]; len(body) > 0 {
			streams = append(streams, body)
		}
		offset = start + endIdx + len(endMarker)
	}
	return streams
}

// inflate zlib-decompresses a stream body, passing it through untouched when
// it is not compressed.
func inflate(data []byte) []byte {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return data
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return data
	}
	return out
}

var (
	hexShowPattern   = regexp.MustCompile(`<([0-9A-Fa-f]+)>\s*Tj`)
	litShowPattern   = regexp.MustCompile(`\(([^)]*)\)\s*Tj`)
	arrayShowPattern = regexp.MustCompile(`\[([^\]]*)\]\s*TJ`)
	hexInArray       = regexp.MustCompile(`<([0-9A-Fa-f]+)>`)
	litInArray       = regexp.MustCompile(`\(([^)]*)\)`)
	nextLineShow     = regexp.MustCompile(`\(([^)]*)\)\s*'`)
	movePattern      = regexp.MustCompile(`([\d.\-]+)\s+([\d.\-]+)\s+T[dD]`)
)

// streamText extracts the visible text of one content stream, breaking lines
// on the text-positioning operators.
func streamText(data []byte, table *unicodeTable) string {
	content := string(data)
	if !strings.Contains(content, "Tj") && !strings.Contains(content, "TJ") &&
		!strings.Contains(content, "BT") {
		return ""
	}

	var lines []string
	for _, block := range textBlocks(content) {
		lines = append(lines, blockLines(block, table)...)
	}

	// Streams without BT/ET structure still carry show operators.
	if len(lines) == 0 {
		var parts []string
		for _, m := range hexShowPattern.FindAllStringSubmatch(content, -1) {
			if t := decodeHex(m[1], table); t != "" {
				parts = append(parts, t)
			}
		}
		for _, m := range litShowPattern.FindAllStringSubmatch(content, -1) {
			if t := decodeLiteral(m[1], table); t != "" {
				parts = append(parts, t)
			}
		}
		for _, m := range arrayShowPattern.FindAllStringSubmatch(content, -1) {
			if t := decodeArray(m[1], table); t != "" {
				parts = append(parts, t)
			}
		}
		if joined := strings.Join(parts, " "); joined != "" {
			lines = append(lines, joined)
		}
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// textBlocks cuts the content into BT...ET spans.
func textBlocks(content string) []string {
	var blocks []string
	remaining := content
	for {
		bt := strings.Index(remaining, "BT")
		if bt < 0 {
			break
		}
		et := strings.Index(remaining[bt:], "ET")
		if et < 0 {
			break
		}
		blocks = append(blocks, remaining[bt:bt+et+2])
		remaining = remaining[bt+et+2:]
	}
	return blocks
}

// blockLines walks one BT...ET block operator by operator. Td/TD and T*
// start a new line; Tj, TJ and ' append decoded text to the current one.
func blockLines(block string, table *unicodeTable) []string {
	var lines []string
	var current strings.Builder

	flush := func() {
		if line := strings.TrimSpace(current.String()); line != "" {
			lines = append(lines, line)
		}
		current.Reset()
	}

	for _, op := range strings.Split(block, "\n") {
		op = strings.TrimSpace(op)

		if movePattern.MatchString(op) || op == "T*" {
			flush()
		}

		for _, m := range hexShowPattern.FindAllStringSubmatch(op, -1) {
			current.WriteString(decodeHex(m[1], table))
		}
		for _, m := range litShowPattern.FindAllStringSubmatch(op, -1) {
			current.WriteString(decodeLiteral(m[1], table))
		}
		for _, m := range arrayShowPattern.FindAllStringSubmatch(op, -1) {
			current.WriteString(decodeArray(m[1], table))
		}
		for _, m := range nextLineShow.FindAllStringSubmatch(op, -1) {
			flush()
			current.WriteString(decodeLiteral(m[1], table))
		}
	}
	flush()

	return lines
}

// decodeHex decodes one hex-string operand, preferring the CMap table.
func decodeHex(hexStr string, table *unicodeTable) string {
	raw, err := hex.DecodeString(hexStr)
	if err != nil {
		return ""
	}

	if table != nil {
		if text := table.decode(raw); text != "" {
			return text
		}
	}

	// Unmapped two-byte codes are usually UTF-16BE already.
	if len(raw)%2 == 0 && len(raw) >= 2 {
		var b strings.Builder
		for i := 0; i+1 < len(raw); i += 2 {
			cp := rune(raw[i])<<8 | rune(raw[i+1])
			if keepRune(cp) || cp == ' ' {
				b.WriteRune(cp)
			}
		}
		if b.Len() > 0 {
			return b.String()
		}
	}

	return dropUnprintable(string(raw))
}

// decodeLiteral decodes one (...)-string operand.
func decodeLiteral(s string, table *unicodeTable) string {
	decoded := unescapePDF(s)

	if table != nil {
		if text := table.decode([]byte(decoded)); text != "" && mostlyPrintable(text) {
			return text
		}
	}
	return dropUnprintable(decoded)
}

// decodeArray decodes a TJ operand: strings interleaved with kerning
// numbers, in stream order.
func decodeArray(arrayContent string, table *unicodeTable) string {
	type piece struct {
		pos   int
		isHex bool
		body  string
	}
	var all []piece

	for _, idx := range hexInArray.FindAllStringSubmatchIndex(arrayContent, -1) {
		all = append(all, piece{pos: idx[0], isHex: true, body: arrayContent[idx[2]:idx[3]]})
	}
	for _, idx := range litInArray.FindAllStringSubmatchIndex(arrayContent, -1) {
		all = append(all, piece{pos: idx[0], body: arrayContent[idx[2]:idx[3]]})
	}
	for i := 1; i < len(all); i++ {
		for j := i; j > 0 && all[j].pos < all[j-1].pos; j-- {
			all[j], all[j-1] = all[j-1], all[j]
		}
	}

	var parts []string
	for _, p := range all {
		var text string
		if p.isHex {
			text = decodeHex(p.body, table)
		} else {
			text = decodeLiteral(p.body, table)
		}
		if text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "")
}

// unescapePDF resolves the escape sequences of a literal PDF string,
// including octal codes.
func unescapePDF(s string) string {
	var buf strings.Builder
	i := 0
	for i < len(s) {
		if s[i] == '\\' && i+1 < len(s) {
			i++
			switch s[i] {
			case 'n':
				buf.WriteByte('\n')
			case 'r':
				buf.WriteByte('\r')
			case 't':
				buf.WriteByte('\t')
			case 'b':
				buf.WriteByte('\b')
			case 'f':
				buf.WriteByte('\f')
			case '(', ')', '\\':
				buf.WriteByte(s[i])
			default:
				if s[i] >= '0' && s[i] <= '7' {
					val := int(s[i] - '0')
					for j := 1; j < 3 && i+j < len(s) && s[i+j] >= '0' && s[i+j] <= '7'; j++ {
						val = val*8 + int(s[i+j]-'0')
						i++
					}
					if val >= 0 && val < 256 {
						buf.WriteByte(byte(val))
					}
				} else {
					buf.WriteByte(s[i])
				}
			}
		} else {
			buf.WriteByte(s[i])
		}
		i++
	}
	return buf.String()
}

// keepRune decides which runes survive decoding. Printable text stays, and
// so do the separator glyphs: U+F35D is private-use and would be dropped by
// a plain IsPrint check, losing the leg boundaries.
func keepRune(r rune) bool {
	return unicode.IsPrint(r) || strings.ContainsRune(separatorGlyphs, r)
}

func dropUnprintable(s string) string {
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if keepRune(r) || r == '\n' || r == '\r' || r == '\t' {
			return r
		}
		return -1
	}, s))
}

func mostlyPrintable(s string) bool {
	if len(s) == 0 {
		return false
	}
	printable := 0
	runes := []rune(s)
	for _, r := range runes {
		if keepRune(r) || r == '\n' || r == '\r' || r == '\t' || r == ' ' {
			printable++
		}
	}
	return float64(printable)/float64(len(runes)) > 0.5
}
