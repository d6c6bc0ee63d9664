// Package extractor pulls per-page text out of surebet slip PDFs. The slip
// generators produce structurally odd files (custom encodings, private-use
// glyphs as row separators), so extraction walks a chain of methods from the
// structured library down to raw stream parsing and an external pdftotext
// fallback, keeping the first result that reads like slip text.
package extractor

import (
	"fmt"
	"io"
	"math"
	"os/exec"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
)

// separatorGlyphs are the row markers the generators print inside bet lines.
// They must survive extraction intact: the parser keys leg boundaries off
// them. U+F35D is private-use and fails unicode.IsPrint, so cleanup and
// quality scoring special-case the set.
const separatorGlyphs = "●○〉\uf35d"

// ExtractPages reads a slip PDF and returns the text of up to maxPages pages
// (0 means all pages).
// Methods are tried in order of layout fidelity; a method's output is only
// accepted when it passes the readability gate, so garbage from an
// identity-encoded font never reaches the parser.
func ExtractPages(path string, maxPages int) ([]string, error) {
	if maxPages < 1 {
		maxPages = math.MaxInt
	}

	pages, libErr := extractWithLibrary(path, maxPages)
	if libErr == nil && isReadableSlipText(pages) {
		return pages, nil
	}

	rawPages, rawErr := extractFromStreams(path)
	if rawErr == nil && isReadableSlipText(rawPages) {
		return capPages(rawPages, maxPages), nil
	}

	popplerPages, popplerErr := extractWithPdftotext(path, maxPages)
	if popplerErr == nil && isReadableSlipText(popplerPages) {
		return popplerPages, nil
	}

	if libErr != nil {
		return nil, fmt.Errorf("slip text extraction failed: %v; the PDF may be image-based or use font encodings that cannot be decoded", libErr)
	}
	return nil, fmt.Errorf("no readable slip text could be extracted; the file may be image-based or use custom font encodings")
}

// slipWords is the vocabulary the generators always print somewhere on a
// slip. Extraction output containing none of these is treated as garbage
// even when the character mix looks fine.
var slipWords = []string{
	"aposta", "evento", "chance", "lucro", "roi",
	"usd", "brl", "surebet", "bet",
}

// isReadableSlipText gates each extraction method's output: enough text,
// a high share of characters a slip can legitimately contain, and at least
// one word from the slip vocabulary.
func isReadableSlipText(pages []string) bool {
	if totalTextLen(pages) <= 50 {
		return false
	}
	if slipTextQuality(pages) <= 0.6 {
		return false
	}
	combined := strings.ToLower(strings.Join(pages, " "))
	for _, w := range slipWords {
		if strings.Contains(combined, w) {
			return true
		}
	}
	return false
}

// slipTextQuality returns the share of characters that belong in slip text:
// ASCII letters, digits and punctuation, the Latin-1 accents of pt-BR, the
// en dash the generators put between team names, and the separator glyphs.
// Broad unicode.IsLetter would also accept the garbage produced by
// identity-encoded fonts, so the accepted set is enumerated.
func slipTextQuality(pages []string) float64 {
	total, readable := 0, 0
	for _, page := range pages {
		for _, r := range page {
			total++
			if isSlipRune(r) {
				readable++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(readable) / float64(total)
}

func isSlipRune(r rune) bool {
	switch {
	case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'):
		return true
	case unicode.IsSpace(r):
		return true
	case strings.ContainsRune(".,-/:;()'\"%$&@#!?+=*≥≤º", r):
		return true
	case strings.ContainsRune("áàâãéêíóôõúüçÁÀÂÃÉÊÍÓÔÕÚÜÇ", r):
		return true
	case r == '–':
		return true
	case strings.ContainsRune(separatorGlyphs, r):
		return true
	}
	return false
}

// cleanPageText strips control characters while keeping everything the
// parser needs, including the private-use separator glyph. Only C0/C1
// controls go; newlines and tabs stay.
func cleanPageText(s string) string {
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if r < 0x20 || (r >= 0x7f && r < 0xa0) {
			return -1
		}
		return r
	}, s))
}

// extractWithLibrary runs the ledongthuc/pdf extraction methods in order of
// layout fidelity. The library panics on some generator output, so the whole
// chain runs under a recover.
func extractWithLibrary(path string, maxPages int) (pages []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf library crashed: %v", r)
		}
	}()

	f, r, openErr := pdf.Open(path)
	if openErr != nil {
		return nil, openErr
	}
	defer f.Close()

	numPages := r.NumPage()
	if numPages == 0 {
		return nil, fmt.Errorf("pdf has no pages")
	}
	if numPages > maxPages {
		numPages = maxPages
	}

	pages = extractByRow(r, numPages)
	if isReadableSlipText(pages) {
		return pages, nil
	}

	pages = extractByContent(r, numPages)
	if isReadableSlipText(pages) {
		return pages, nil
	}

	pages = extractByPagePlainText(r, numPages)
	if isReadableSlipText(pages) {
		return pages, nil
	}

	if text := extractByReaderPlainText(r); isReadableSlipText([]string{text}) {
		return []string{text}, nil
	}

	return pages, nil
}

// extractByRow uses GetTextByRow, the method that best preserves the
// generator's row layout.
func extractByRow(r *pdf.Reader, numPages int) []string {
	var pages []string
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		var lines []string
		for _, row := range rows {
			var parts []string
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			if line := strings.TrimSpace(strings.Join(parts, " ")); line != "" {
				lines = append(lines, line)
			}
		}
		pages = append(pages, cleanPageText(strings.Join(lines, "\n")))
	}
	return pages
}

// extractByContent regroups raw text objects into rows by Y coordinate and
// orders them by X. Needed when the generator emits each word as its own
// positioned object and GetTextByRow loses the ordering.
func extractByContent(r *pdf.Reader, numPages int) []string {
	var pages []string
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		content := page.Content()
		if len(content.Text) == 0 {
			continue
		}

		type textItem struct {
			x float64
			s string
		}
		rowMap := make(map[int][]textItem)
		for _, t := range content.Text {
			if strings.TrimSpace(t.S) == "" {
				continue
			}
			yKey := int(math.Round(t.Y))
			rowMap[yKey] = append(rowMap[yKey], textItem{x: t.X, s: t.S})
		}

		yKeys := make([]int, 0, len(rowMap))
		for y := range rowMap {
			yKeys = append(yKeys, y)
		}
		// PDF Y grows bottom-to-top
		sort.Sort(sort.Reverse(sort.IntSlice(yKeys)))

		var lines []string
		for _, y := range yKeys {
			items := rowMap[y]
			sort.Slice(items, func(a, b int) bool {
				return items[a].x < items[b].x
			})

			var parts []string
			var prevX float64
			for j, item := range items {
				if j > 0 && item.x-prevX > 15 {
					parts = append(parts, "  ")
				}
				parts = append(parts, item.s)
				prevX = item.x
			}
			if line := strings.TrimSpace(strings.Join(parts, "")); line != "" {
				lines = append(lines, line)
			}
		}
		pages = append(pages, cleanPageText(strings.Join(lines, "\n")))
	}
	return pages
}

// extractByPagePlainText decodes per page through the page's own font maps.
func extractByPagePlainText(r *pdf.Reader, numPages int) []string {
	var pages []string
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		fonts := make(map[string]*pdf.Font)
		for _, name := range page.Fonts() {
			f := page.Font(name)
			fonts[name] = &f
		}

		text, err := page.GetPlainText(fonts)
		if err != nil {
			continue
		}
		if text = cleanPageText(text); text != "" {
			pages = append(pages, text)
		}
	}
	return pages
}

// extractByReaderPlainText is the whole-document path; page boundaries are
// lost, so the result comes back as a single page.
func extractByReaderPlainText(r *pdf.Reader) string {
	reader, err := r.GetPlainText()
	if err != nil {
		return ""
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return ""
	}
	return cleanPageText(string(data))
}

// extractWithPdftotext shells out to poppler-utils, page-ranged so the
// result keeps page boundaries.
func extractWithPdftotext(path string, maxPages int) ([]string, error) {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return nil, fmt.Errorf("pdftotext not available: %v", err)
	}

	// Without a page count from pdfinfo the per-page loop has no upper
	// bound, so probe the whole document at once instead.
	numPages := 0
	if out, err := exec.Command("pdfinfo", path).Output(); err == nil {
		for _, line := range strings.Split(string(out), "\n") {
			if strings.HasPrefix(line, "Pages:") {
				if n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "Pages:"))); err == nil && n > 0 {
					numPages = n
				}
			}
		}
	}
	if numPages > maxPages {
		numPages = maxPages
	}

	var pages []string
	for i := 1; i <= numPages; i++ {
		pageStr := strconv.Itoa(i)
		out, err := exec.Command("pdftotext", "-layout", "-f", pageStr, "-l", pageStr, path, "-").Output()
		if err != nil {
			continue
		}
		if text := cleanPageText(string(out)); text != "" {
			pages = append(pages, text)
		}
	}

	if len(pages) == 0 {
		out, err := exec.Command("pdftotext", "-layout", path, "-").Output()
		if err != nil {
			return nil, fmt.Errorf("pdftotext failed: %v", err)
		}
		if text := cleanPageText(string(out)); text != "" {
			return []string{text}, nil
		}
		return nil, fmt.Errorf("pdftotext produced no output")
	}

	return pages, nil
}

func capPages(pages []string, maxPages int) []string {
	if len(pages) > maxPages {
		return pages[:maxPages]
	}
	return pages
}

func totalTextLen(pages []string) int {
	n := 0
	for _, p := range pages {
		n += len(strings.TrimSpace(p))
	}
	return n
}
