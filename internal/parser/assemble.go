package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/bielsr01/BetTrackerPro/internal/models"
)

// Scalar field extraction for one page: event date, team names, profit
// percentage, sport and league. Each heuristic scans the logical lines once
// and leaves the field unset when nothing matches.

var (
	eventDatePattern  = regexp.MustCompile(`\((\d{4}-\d{2}-\d{2}\s+\d{2}:\d{2})`)
	profitPctPattern  = regexp.MustCompile(`(\d+\.\d+)%\s*$`)
	multiDigitPattern = regexp.MustCompile(`\d{2,}`)
	oddsLikePattern   = regexp.MustCompile(`\d+\.\d{2,}`)
)

// sportKeywords is the multi-language sport vocabulary seen across the
// generator family's locales.
var sportKeywords = []string{
	"futebol", "football", "soccer",
	"basquete", "basketball", "basquetebol",
	"tênis", "tennis",
	"hóquei", "hockey", "hoquei",
	"beisebol", "beisebal", "baseball",
	"voleibol", "volleyball", "vôlei", "volei",
	"handball", "handebol",
	"rugby",
	"cricket",
	"futsal",
}

// extractDate finds the event timestamp: the first line carrying the event
// heading and an opening parenthesis. Scanning stops at that line whether or
// not the timestamp parses.
func extractDate(lines []string, rec *models.SurebetRecord) {
	for _, line := range lines {
		if !strings.Contains(line, "Evento") || !strings.Contains(line, "(") {
			continue
		}
		if m := eventDatePattern.FindStringSubmatch(line); m != nil {
			if dt, err := time.Parse("2006-01-02 15:04", strings.TrimSpace(m[1])); err == nil {
				formatted := dt.Format("2006-01-02T15:04")
				rec.Date = &formatted
			}
		}
		return
	}
}

// extractTeams takes the first line with an en-dash and a percent sign that
// is not an ROI or event heading. A trailing "<n.n>%" is the surebet profit
// percentage; the remainder splits on the en-dash into the two team names.
func extractTeams(lines []string, rec *models.SurebetRecord) {
	for _, line := range lines {
		if !strings.Contains(line, "–") || !strings.Contains(line, "%") {
			continue
		}
		if strings.Contains(line, "ROI") || strings.Contains(line, "Evento") {
			continue
		}

		teamsPart := line
		if m := profitPctPattern.FindStringSubmatchIndex(line); m != nil {
			pct := parseDecimal(line[m[2]:m[3]])
			rec.ProfitPercentage = &pct
			teamsPart = strings.TrimSpace(line[:m[0]])
		}

		if parts := strings.Split(teamsPart, "–"); len(parts) >= 2 {
			a := strings.TrimSpace(parts[0])
			b := strings.TrimSpace(parts[1])
			rec.TeamA = &a
			rec.TeamB = &b
		}
		return
	}
}

// extractSportLeague resolves the "Sport / League" line. The keyword pass
// accepts any " / " line near the team line that names a known sport. The
// fallback pass, used only when teams were found, accepts an anonymous
// " / " line just below the teams as long as nothing marks it as a header,
// odds row or team line, and the sport segment stays short and number-free.
func extractSportLeague(lines []string, rec *models.SurebetRecord) {
	teamIdx := teamLineIndex(lines, rec)

	for i, line := range lines {
		if teamIdx >= 0 && abs(i-teamIdx) > 5 {
			continue
		}
		if !strings.Contains(line, " / ") || !containsAnyFold(line, sportKeywords) {
			continue
		}
		parts := strings.Split(line, " / ")
		if len(parts) >= 2 {
			sport := strings.TrimSpace(parts[0])
			league := strings.TrimSpace(strings.Join(parts[1:], " / "))
			rec.Sport = &sport
			rec.League = &league
		}
		return
	}

	if rec.Sport != nil || rec.TeamA == nil || teamIdx < 0 {
		return
	}
	for i := teamIdx + 1; i < len(lines) && i < teamIdx+4; i++ {
		line := lines[i]
		if !strings.Contains(line, " / ") ||
			strings.Contains(line, "Evento") ||
			strings.Contains(line, "ROI") ||
			strings.Contains(line, "–") ||
			strings.Contains(line, "%") ||
			strings.Contains(line, "USD") ||
			strings.Contains(line, "BRL") ||
			strings.Contains(line, "Chance") ||
			strings.Contains(line, "Aposta") ||
			oddsLikePattern.MatchString(line) {
			continue
		}

		parts := strings.Split(line, " / ")
		if len(parts) < 2 {
			continue
		}
		sport := strings.TrimSpace(parts[0])
		league := strings.TrimSpace(strings.Join(parts[1:], " / "))
		if sport != "" && len(sport) < 30 && !multiDigitPattern.MatchString(sport) {
			rec.Sport = &sport
			rec.League = &league
			return
		}
	}
}

// teamLineIndex locates the line carrying both team names, the anchor for
// the sport/league search.
func teamLineIndex(lines []string, rec *models.SurebetRecord) int {
	if rec.TeamA == nil || rec.TeamB == nil {
		return -1
	}
	for i, line := range lines {
		if strings.Contains(line, *rec.TeamA) && strings.Contains(line, *rec.TeamB) {
			return i
		}
	}
	return -1
}

// mergeLegs places accepted candidates into the record's empty leg slots in
// detection order. A candidate that duplicates an already stored leg (same
// house, odd inside a cent) is skipped, so re-scanning a page never fills a
// slot twice.
func mergeLegs(rec *models.SurebetRecord, legs []models.BetLeg) {
	for _, leg := range legs {
		if isDuplicateLeg(rec, leg) {
			continue
		}
		for n := 1; n <= 3; n++ {
			slot := rec.Leg(n)
			if slot.House == nil && slot.Odd == nil {
				*slot = leg
				break
			}
		}
	}
}

func isDuplicateLeg(rec *models.SurebetRecord, leg models.BetLeg) bool {
	for n := 1; n <= 3; n++ {
		stored := rec.Leg(n)
		if stored.House == nil || leg.House == nil {
			continue
		}
		if *stored.House != *leg.House {
			continue
		}
		if stored.Odd == nil || leg.Odd == nil || approxEqual(*stored.Odd, *leg.Odd) {
			return true
		}
	}
	return false
}
