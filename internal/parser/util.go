package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Patterns shared across the pipeline. The slip generators emit pt-BR text
// with decimal-dot numbers, USD/BRL currency markers and a small set of
// record-separator glyphs (the circles plus the private-use U+F35D).
var (
	decimalPattern      = regexp.MustCompile(`\d+\.\d+`)
	numericTokenPattern = regexp.MustCompile(`^-?\d+\.?\d*$`)
	stakePattern        = regexp.MustCompile(`(\d+\.?\d*)\s+(USD|BRL)`)
	currencyPattern     = regexp.MustCompile(`(USD|BRL)`)
	separatorPattern    = regexp.MustCompile(`[●○\x{F35D}]`)
	countryCodePattern  = regexp.MustCompile(`\([A-Z]{2}\)`)
	houseSuffixPattern  = regexp.MustCompile(`\s*\([A-Z]{2}\)\s*`)
	bareCountryPattern  = regexp.MustCompile(`^\([A-Z]{2}\)$`)
	trailingDashPattern = regexp.MustCompile(`[-–]\s*$`)
	multiSpacePattern   = regexp.MustCompile(`\s+`)
)

// separatorLines are glyph-only (or noise) lines the generators print
// between slip rows.
var separatorLines = []string{"〉", "○", "●", "\uf35d", "new"}

func isSeparatorLine(line string) bool {
	for _, s := range separatorLines {
		if line == s {
			return true
		}
	}
	return false
}

// containsAny reports whether any needle occurs in text, case-sensitively.
func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}

// containsAnyFold lowercases the text first; needles must already be
// lowercase.
func containsAnyFold(text string, needles []string) bool {
	lower := strings.ToLower(text)
	for _, n := range needles {
		if strings.Contains(lower, n) {
			return true
		}
	}
	return false
}

func hasDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

func firstWord(s string) string {
	if fields := strings.Fields(s); len(fields) > 0 {
		return fields[0]
	}
	return ""
}

func firstRuneUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

// approxEqual compares extracted monetary and odds values. The generators
// print two decimals, so anything inside a cent is the same number.
func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.01
}

func parseDecimal(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
