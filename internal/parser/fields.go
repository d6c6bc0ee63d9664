package parser

import (
	"regexp"
	"strings"

	"github.com/bielsr01/BetTrackerPro/internal/models"
)

// keepNumberKeywords are tokens after which a number belongs to the bet type
// itself ("Acima 2.5", "1º tempo 0.5") and must survive the numeric filter.
// Compared by containment against the lowercased preceding token with ≥/≤
// stripped.
var keepNumberKeywords = []string{
	"acima", "abaixo", "total", "over", "under", "mais", "menos",
	"primeiro", "segundo", "tempo", "extra", "1º", "2º",
}

// houseFamily lists the constituent words of one betting brand. When a leg's
// house matches a family, those words are stripped from the bet-type text.
// Only one family ever applies, so generic words like "Bet" in unrelated
// types are left alone.
type houseFamily struct {
	key   string
	words []string
}

var houseFamilies = []houseFamily{
	{"estrela", []string{"EstrelaBet", "Estrela"}},
	{"pinnacle", []string{"Pinnacle"}},
	{"marjo", []string{"MarjoSports", "Marjo", "Sports"}},
	{"super", []string{"SuperBet", "Super"}},
	{"stake", []string{"Stake"}},
	{"kto", []string{"KTO"}},
	{"blaze", []string{"Blaze"}},
	{"multibet", []string{"MultiBet", "Multi"}},
	{"bravo", []string{"BravoBet", "Bravo"}},
	{"betfast", []string{"Betfast"}},
	{"betano", []string{"Betano"}},
}

// extractLegFields derives odd, stake, profit and the residual bet-type text
// from one leg's accumulated text. Fields the heuristics cannot resolve stay
// nil; this never fails.
func extractLegFields(text, house string) models.BetLeg {
	leg := models.BetLeg{}
	if house != "" {
		leg.House = &house
	}

	descriptive := descriptivePart(text)
	leg.Odd = extractOdd(descriptive)
	leg.Stake, leg.Profit = extractStakeProfit(text, leg.Odd)

	if t := extractBetType(text, house, leg.Odd, leg.Stake, leg.Profit); t != "" {
		leg.Type = &t
	}
	return leg
}

// descriptivePart returns the text before the first separator glyph, or
// before the first currency token when no glyph survived extraction. The
// descriptive part carries the bet type and the odd; everything after is
// financial.
func descriptivePart(text string) string {
	if loc := separatorPattern.FindStringIndex(text); loc != nil {
		return strings.TrimSpace(text[:loc[0]])
	}
	if loc := currencyPattern.FindStringIndex(text); loc != nil {
		return strings.TrimSpace(text[:loc[0]])
	}
	return text
}

// extractOdd picks the odd from the descriptive part: scanning the decimal
// numbers from the end, the first one inside [1.0, 50.0]. Numbers embedded
// in the type ("Acima 1.5") sit earlier in the text, so the reverse scan
// skips them. Falls back to the last decimal when nothing is in range.
func extractOdd(descriptive string) *float64 {
	nums := decimalPattern.FindAllString(descriptive, -1)
	if len(nums) == 0 {
		return nil
	}
	for i := len(nums) - 1; i >= 0; i-- {
		v := parseDecimal(nums[i])
		if v >= 1.0 && v <= 50.0 {
			return &v
		}
	}
	v := parseDecimal(nums[len(nums)-1])
	return &v
}

// extractStakeProfit finds the stake as the first "<number> <currency>"
// occurrence, then the profit as the last decimal after the stake. When no
// number follows the stake, the fallback scans all decimals from the end for
// the first value below 1000 that is neither the stake nor the odd.
func extractStakeProfit(text string, odd *float64) (stake, profit *float64) {
	if m := stakePattern.FindStringSubmatchIndex(text); m != nil {
		v := parseDecimal(text[m[2]:m[3]])
		stake = &v

		after := text[m[3]:]
		if nums := decimalPattern.FindAllString(after, -1); len(nums) > 0 {
			p := parseDecimal(nums[len(nums)-1])
			profit = &p
		}
	}

	if profit == nil {
		nums := decimalPattern.FindAllString(text, -1)
		for i := len(nums) - 1; i >= 0; i-- {
			v := parseDecimal(nums[i])
			if stake != nil && approxEqual(v, *stake) {
				continue
			}
			if odd != nil && approxEqual(v, *odd) {
				continue
			}
			if v < 1000 {
				profit = &v
				break
			}
		}
	}
	return stake, profit
}

// extractBetType strips the house name, currency tokens and the already
// claimed numbers out of the leg text; what remains is the free-text bet
// description.
func extractBetType(text, house string, odd, stake, profit *float64) string {
	t := strings.Replace(text, house, "", 1)
	t = countryCodePattern.ReplaceAllString(t, "")

	words := strings.Fields(t)
	kept := make([]string, 0, len(words))
	for i, word := range words {
		if word == "USD" || word == "BRL" {
			continue
		}

		if numericTokenPattern.MatchString(word) {
			prevIsKeyword := false
			if i > 0 {
				prev := strings.ToLower(words[i-1])
				prev = strings.NewReplacer("≥", "", "≤", "").Replace(prev)
				prevIsKeyword = containsAny(prev, keepNumberKeywords)
			}
			if !prevIsKeyword {
				v := parseDecimal(word)
				if odd != nil && approxEqual(v, *odd) {
					continue
				}
				if stake != nil && approxEqual(v, *stake) {
					continue
				}
				if profit != nil && approxEqual(v, *profit) {
					continue
				}
				if v < 0 {
					continue
				}
			}
		}
		kept = append(kept, word)
	}

	t = strings.Join(kept, " ")
	t = separatorPattern.ReplaceAllString(t, "")
	t = strings.ReplaceAll(t, "〉", "")
	t = multiSpacePattern.ReplaceAllString(t, " ")
	t = strings.TrimSpace(t)
	t = strings.TrimSpace(trailingDashPattern.ReplaceAllString(t, ""))

	t = stripHouseWords(t, house)
	return strings.TrimSpace(multiSpacePattern.ReplaceAllString(t, " "))
}

// stripHouseWords removes the house name from the type text: first the whole
// suffix-stripped name as a phrase, then the constituent words of at most one
// matching brand family.
func stripHouseWords(t, house string) string {
	plain := strings.TrimSpace(houseSuffixPattern.ReplaceAllString(house, " "))
	if plain != "" {
		t = wordPhrasePattern(plain).ReplaceAllString(t, "")
	}

	lower := strings.ToLower(plain)
	for _, fam := range houseFamilies {
		if !strings.Contains(lower, fam.key) {
			continue
		}
		for _, w := range fam.words {
			t = wordPhrasePattern(w).ReplaceAllString(t, "")
		}
		break
	}
	return t
}

// wordPhrasePattern matches the phrase case-insensitively on word
// boundaries.
func wordPhrasePattern(phrase string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(phrase) + `\b`)
}
