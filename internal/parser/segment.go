package parser

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/bielsr01/BetTrackerPro/internal/gazetteer"
)

// betCandidate is one segmented leg: the reconstructed house name and the
// accumulated text the field extractor will work on. Candidates whose field
// extraction later fails still count toward the assembler's termination
// policy.
type betCandidate struct {
	house string
	text  string
}

// legState tracks where the segmenter is inside one candidate leg.
type legState int

const (
	seekingHouse legState = iota
	completingHouseName
	accumulatingBody
	legDone
)

const (
	houseWindow = 3 // lines past the start that may still complete the name
	legWindow   = 8 // absolute line budget per leg
)

// houseFragmentStoppers are bet-type words that never belong to a house
// name. A multi-word line starting with one of these is body text, not a
// name fragment.
var houseFragmentStoppers = regexp.MustCompile(`\b(gol|time|cantos?|escanteios?|acima|abaixo)\b`)

// typeContinuation marks short lines that carry bet-type vocabulary and so
// extend the current leg's text.
var typeContinuation = regexp.MustCompile(`\b(gol|time|cantos?|escanteios?|resultado|final|tempo|minuto|chute|corner|primeiro|segundo|1º|2º|over|under|acima|abaixo|casa|fora|empate|handicap)\b`)

// sectionEndKeywords terminate body accumulation. Case-sensitive, matching
// the generator's literal headings.
var sectionEndKeywords = []string{"Aposta total", "Mostrar", "Use sua", "Arredondar"}

// segmenter walks a page's logical lines and cuts them into bet candidates.
type segmenter struct {
	gaz *gazetteer.Gazetteer
	log *zap.Logger
}

// segment returns the ordered bet candidates found on one page. Each leg is
// a small state machine: a house match opens the leg, up to three following
// lines may complete a wrapped house name, then body lines accumulate until
// a stop signal. The cursor always advances past everything a leg consumed.
func (s *segmenter) segment(lines []string) []betCandidate {
	var found []betCandidate

	i := 0
	for i < len(lines) {
		m := s.gaz.Resolve(lines[i])
		if m == nil {
			i++
			continue
		}

		leg, next := s.collectLeg(lines, i, m)
		found = append(found, leg)
		i = next
	}

	return found
}

// collectLeg consumes one leg starting at lines[start], which resolved to
// match m. Returns the candidate and the index of the first unconsumed line.
func (s *segmenter) collectLeg(lines []string, start int, m *gazetteer.Match) (betCandidate, int) {
	house := m.Name
	text := lines[start]
	state := completingHouseName

	var fragments []string
	var remainders []string // unconsumed tails of partially-used name lines

	j := start + 1
	for state == completingHouseName && j < len(lines) && j <= start+houseWindow {
		next := strings.TrimSpace(lines[j])

		// Separator-only lines are noise inside the completion window.
		if next == "" || isSeparatorLine(next) {
			j++
			continue
		}

		// Financial data means the name is complete and the body started.
		if hasFinancialData(next) {
			state = accumulatingBody
			break
		}

		if utf8.RuneCountInString(next) >= 30 {
			state = accumulatingBody
			break
		}

		// A full house resolution here belongs to the next leg, not to this
		// name. Fragment-kind hits stay absorbable: "Sports" resolves as a
		// fragment of SportsBet but is really the tail of "Marjo Sports".
		if nm := s.gaz.Resolve(next); nm != nil && nm.Kind != gazetteer.MatchFragment &&
			!strings.EqualFold(nm.BaseToken(), firstWord(house)) {
			state = accumulatingBody
			break
		}

		words := strings.Fields(next)
		switch {
		case bareCountryPattern.MatchString(next):
			fragments = append(fragments, next)
			j++
		case len(words) == 1 && firstRuneUpper(next):
			fragments = append(fragments, next)
			j++
		case firstRuneUpper(next) && len(words) > 1 &&
			firstRuneUpper(words[0]) && !houseFragmentStoppers.MatchString(strings.ToLower(words[0])):
			// Only the first word joins the name; the rest is bet text and
			// is re-emitted once the body starts.
			fragments = append(fragments, words[0])
			if rest := strings.Join(words[1:], " "); rest != "" {
				remainders = append(remainders, rest)
			}
			j++
		default:
			state = accumulatingBody
		}
	}

	if len(fragments) > 0 {
		house = house + " " + strings.Join(fragments, " ")
	}
	for _, rest := range remainders {
		text += " " + rest
	}

	base := firstWord(house)
	state = accumulatingBody
	for state == accumulatingBody && j < len(lines) && j < start+legWindow {
		next := lines[j]

		if s.startsNewHouse(next, base) {
			state = legDone
			break
		}
		if nm := s.gaz.Resolve(next); nm != nil && !strings.EqualFold(nm.BaseToken(), base) {
			state = legDone
			break
		}
		if containsAny(next, sectionEndKeywords) {
			state = legDone
			break
		}

		if hasBodyFinancialData(next) {
			text += " " + next
			j++
			continue
		}
		if len(strings.Fields(next)) <= 6 && typeContinuation.MatchString(strings.ToLower(next)) {
			text += " " + next
			j++
			continue
		}
		state = legDone
	}

	return betCandidate{house: house, text: text}, j
}

// startsNewHouse reports whether the line's leading word alone resolves to a
// house other than the current leg's. Catches the wrapped first line of the
// next leg before whole-line detection can ("KTO" on a line of its own).
func (s *segmenter) startsNewHouse(line, currentBase string) bool {
	word := firstWord(strings.TrimSpace(line))
	if word == "" {
		return false
	}
	if n := utf8.RuneCountInString(word); n < 3 || n > 15 {
		return false
	}
	if !firstRuneUpper(word) || decimalPattern.MatchString(line) {
		return false
	}
	if s.gaz.Resolve(word) == nil {
		return false
	}
	if strings.EqualFold(currentBase, word) {
		return false
	}
	s.log.Debug("new house interrupts leg",
		zap.String("current", currentBase),
		zap.String("detected", word),
		zap.String("line", truncate(line, 50)))
	return true
}

// hasFinancialData is the name-completion stopper: currency tokens, any
// separator glyph, or a decimal number.
func hasFinancialData(line string) bool {
	return strings.Contains(line, "USD") || strings.Contains(line, "BRL") ||
		separatorPattern.MatchString(line) || decimalPattern.MatchString(line)
}

// hasBodyFinancialData is the body-accumulation variant. The generators only
// print ● and ○ inside bet rows, so the private-use glyph is not a signal
// here.
func hasBodyFinancialData(line string) bool {
	return strings.Contains(line, "USD") || strings.Contains(line, "BRL") ||
		strings.Contains(line, "●") || strings.Contains(line, "○") ||
		decimalPattern.MatchString(line)
}
