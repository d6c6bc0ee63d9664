// Package gazetteer holds the reference table of known betting-house names
// and resolves logical lines of slip text against it.
package gazetteer

import (
	"regexp"
	"sort"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

// unknownHousePattern recognizes "<Capitalized name> <token> <decimal odds>"
// at the start of a line: a house the table does not know, immediately
// followed by odds.
var unknownHousePattern = regexp.MustCompile(`^([A-Z][A-Za-z\s()]{2,30})\s+[A-Za-z0-9()+\-≥≤.]+\s+\d+\.\d+`)

// MatchKind says how a line resolved to a house.
type MatchKind int

const (
	// MatchKnown is a gazetteer hit; Name is the entry's display name.
	MatchKnown MatchKind = iota
	// MatchPattern is the unknown-house fallback (capitalized run followed
	// by a token and decimal odds).
	MatchPattern
	// MatchFragment is a tentative first-word hit that prefixes some entry's
	// base name. The segmenter reconciles fragments with following lines.
	MatchFragment
)

// Match is the outcome of resolving one logical line.
type Match struct {
	Name string
	Kind MatchKind
}

// BaseToken returns the first word of the matched name, the unit compared
// when deciding whether a line belongs to the current leg or starts a new
// one.
func (m *Match) BaseToken() string {
	if fields := strings.Fields(m.Name); len(fields) > 0 {
		return fields[0]
	}
	return m.Name
}

// entry is one house name prepared for matching. Exactly one of the three
// match strategies applies: parenthetical (base words + suffix), plain
// containment, or the bare boundary-delimited pattern.
type entry struct {
	display   string
	baseWords []*regexp.Regexp // whole-word patterns, parenthetical entries only
	suffix    string           // lowercased "(xx)" tail, parenthetical entries only
	plain     string           // lowercased display, entries with "(" but no " (" separator
	bare      *regexp.Regexp   // suffix-less entries, flexible internal spaces
}

func (e *entry) matches(lower string) bool {
	switch {
	case e.bare != nil:
		return e.bare.MatchString(lower)
	case e.suffix != "":
		// Base words must appear as whole words so "SuperBet (BR)" is not
		// claimed by "Super Bet (BR)". They may be interleaved with other
		// tokens on a reassembled line, but the name must read forward:
		// first base word before the suffix.
		for _, w := range e.baseWords {
			if !w.MatchString(lower) {
				return false
			}
		}
		suffixAt := strings.Index(lower, e.suffix)
		if suffixAt < 0 {
			return false
		}
		first := e.baseWords[0].FindStringIndex(lower)
		return first != nil && first[0] < suffixAt
	default:
		return strings.Contains(lower, e.plain)
	}
}

// Gazetteer is an immutable, pre-sorted lookup table of known house names.
// Build it once with New (or use Default); it is then safe for concurrent
// readers.
type Gazetteer struct {
	entries []entry
	bases   []string // lowercased suffix-stripped names, for fragment prefixing
}

// New builds the lookup table from houseNames. Entries are sorted longest
// display name first so the most specific candidate wins; at equal length,
// parenthetical variants sort before bare names so "X (BR)" is preferred
// over a generic "X" prefix.
func New() *Gazetteer {
	names := make([]string, len(houseNames))
	copy(names, houseNames)
	sort.SliceStable(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return strings.Contains(names[i], "(") && !strings.Contains(names[j], "(")
	})

	g := &Gazetteer{
		entries: make([]entry, 0, len(names)),
		bases:   make([]string, 0, len(names)),
	}
	for _, name := range names {
		lower := strings.ToLower(name)
		e := entry{display: name}
		switch {
		case strings.Contains(name, " ("):
			parts := strings.SplitN(lower, " (", 2)
			for _, w := range strings.Fields(parts[0]) {
				e.baseWords = append(e.baseWords, wholeWordPattern(w))
			}
			e.suffix = "(" + parts[1]
		case strings.Contains(name, "("):
			e.plain = lower
		default:
			e.bare = bareNamePattern(lower)
		}
		g.entries = append(g.entries, e)
		g.bases = append(g.bases, strings.ToLower(baseName(name)))
	}
	return g
}

var (
	defaultOnce sync.Once
	defaultGaz  *Gazetteer
)

// Default returns the shared table, built on first use.
func Default() *Gazetteer {
	defaultOnce.Do(func() { defaultGaz = New() })
	return defaultGaz
}

// Resolve reports the best house interpretation of one logical line: a
// gazetteer entry (most specific first), an unknown house followed by odds,
// or a tentative fragment. Nil when the line suggests no house at all.
func (g *Gazetteer) Resolve(line string) *Match {
	trimmed := strings.TrimSpace(line)
	if utf8.RuneCountInString(trimmed) < 3 {
		return nil
	}
	lower := strings.ToLower(trimmed)

	for i := range g.entries {
		if g.entries[i].matches(lower) {
			return &Match{Name: g.entries[i].display, Kind: MatchKnown}
		}
	}

	if m := unknownHousePattern.FindStringSubmatch(trimmed); m != nil {
		if cand := strings.TrimSpace(m[1]); utf8.RuneCountInString(cand) >= 3 {
			return &Match{Name: cand, Kind: MatchPattern}
		}
	}

	if frag := g.fragmentOf(trimmed); frag != "" {
		return &Match{Name: frag, Kind: MatchFragment}
	}
	return nil
}

// fragmentOf returns the line's first word when it looks like the start of a
// multi-line house name: 3-15 runes, capitalized, and a prefix of some
// entry's base name.
func (g *Gazetteer) fragmentOf(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	word := fields[0]
	if n := utf8.RuneCountInString(word); n < 3 || n > 15 {
		return ""
	}
	if first, _ := utf8.DecodeRuneInString(word); !unicode.IsUpper(first) {
		return ""
	}
	prefix := strings.ToLower(word)
	for _, base := range g.bases {
		if strings.HasPrefix(base, prefix) {
			return word
		}
	}
	return ""
}

// bareNamePattern builds the boundary-delimited pattern for a suffix-less
// name. Internal spaces are flexible: extraction sometimes drops or doubles
// the space inside compound names ("Marathon Bet" vs "MarathonBet").
func bareNamePattern(lower string) *regexp.Regexp {
	quoted := strings.ReplaceAll(regexp.QuoteMeta(lower), " ", `\s*`)
	return regexp.MustCompile(edgeBoundary(lower, true) + quoted + edgeBoundary(lower, false))
}

// wholeWordPattern matches one lowercased word on its own boundaries.
func wholeWordPattern(word string) *regexp.Regexp {
	return regexp.MustCompile(edgeBoundary(word, true) + regexp.QuoteMeta(word) + edgeBoundary(word, false))
}

// edgeBoundary returns `\b` when the name's edge rune is a word character.
// Names ending in symbols ("Miseojeu+") have no word boundary there, and a
// bare `\b` would make the pattern unmatchable.
func edgeBoundary(s string, leading bool) string {
	var r rune
	if leading {
		r, _ = utf8.DecodeRuneInString(s)
	} else {
		r, _ = utf8.DecodeLastRuneInString(s)
	}
	if r == '_' || (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
		return `\b`
	}
	return ""
}

// baseName strips the parenthetical qualifier: "CloudBet (BR)" -> "CloudBet".
func baseName(display string) string {
	if i := strings.Index(display, "("); i >= 0 {
		return strings.TrimSpace(display[:i])
	}
	return display
}
