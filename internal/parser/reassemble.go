package parser

import (
	"regexp"
	"strings"
)

// The slip generators wrap long rows mid-field, so a house name or bet-type
// phrase often continues on the next physical line with no marker. The
// reassembler joins those pairs back into logical lines before any detection
// runs.

// countrySuffixes are the two-letter parentheticals the generators print on a
// line of their own when the house name wraps ("CloudBet" / "(BR)").
var countrySuffixes = []string{
	"(BR)", "(CO)", "(PT)", "(RO)", "(BE)", "(MX)", "(UK)", "(ZA)", "(SE)",
}

// significantOddsPattern marks a line as the start of a new bet row: a
// decimal number, or an integer right before the currency token. Ordinals
// like "1º" do not qualify.
var significantOddsPattern = regexp.MustCompile(`\d+\.\d+|\d+\s+USD`)

// sectionKeywords end the bet area of a slip. Continuation joining must not
// swallow them. Lowercase, matched by containment.
var sectionKeywords = []string{
	"aposta total", "mostrar", "use sua", "arredondar", "evento", "chance",
}

// reassembleLines splits one page's raw text and merges wrapped pairs into
// logical lines. The output has no blank lines; the slice index of each line
// is its position in the reassembled sequence. Single forward pass with one
// line of lookahead.
func reassembleLines(text string) []string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	for i := 0; i < len(lines); i++ {
		current := strings.TrimSpace(lines[i])
		if current == "" {
			continue
		}

		// A bare country suffix on the next line always belongs to this one.
		if i+1 < len(lines) {
			next := strings.TrimSpace(lines[i+1])
			if isCountrySuffix(next) {
				out = append(out, current+" "+next)
				i++
				continue
			}
		}

		// A line that already carries bet data (currency plus digits) may
		// have its trailing type text wrapped onto the next line. The
		// continuation signal is the absence of everything that would mark a
		// new row: odds, separator glyphs, section keywords.
		if strings.Contains(current, "USD") && hasDigit(current) && i+1 < len(lines) {
			next := strings.TrimSpace(lines[i+1])
			if next != "" &&
				!significantOddsPattern.MatchString(next) &&
				next != "〉" && next != "○" && next != "●" &&
				!containsAnyFold(next, sectionKeywords) &&
				len(next) > 2 {
				out = append(out, current+" "+next)
				i++
				continue
			}
		}

		out = append(out, current)
	}

	return out
}

func isCountrySuffix(s string) bool {
	for _, c := range countrySuffixes {
		if s == c {
			return true
		}
	}
	return false
}
