package parser

import (
	"strings"
	"testing"
)

func TestSlipParserSinglePage(t *testing.T) {
	p := New(nil)

	pages := []string{strings.Join([]string{
		"Evento (2024-05-12 16:00)",
		"Palmeiras – Flamengo 4.25%",
		"Futebol / Brasil Serie A",
		"KTO (BR) Vitória 1.85 ● 100.00 USD 18.50",
		"Stake (BR) Empate 3.40 ● 100.00 USD 25.00",
	}, "\n")}

	rec := p.Parse(pages)

	if sval(rec.Date) != "2024-05-12T16:00" {
		t.Errorf("date: got %q, want %q", sval(rec.Date), "2024-05-12T16:00")
	}
	if sval(rec.TeamA) != "Palmeiras" || sval(rec.TeamB) != "Flamengo" {
		t.Errorf("teams: got %q / %q", sval(rec.TeamA), sval(rec.TeamB))
	}
	if fval(rec.ProfitPercentage) != 4.25 {
		t.Errorf("profit%%: got %v, want 4.25", fval(rec.ProfitPercentage))
	}
	if sval(rec.Sport) != "Futebol" {
		t.Errorf("sport: got %q, want %q", sval(rec.Sport), "Futebol")
	}
	if sval(rec.League) != "Brasil Serie A" {
		t.Errorf("league: got %q, want %q", sval(rec.League), "Brasil Serie A")
	}

	if sval(rec.Bet1.House) != "KTO (BR)" || fval(rec.Bet1.Odd) != 1.85 {
		t.Errorf("bet1: got %q %v", sval(rec.Bet1.House), fval(rec.Bet1.Odd))
	}
	if sval(rec.Bet1.Type) != "Vitória" {
		t.Errorf("bet1 type: got %q, want %q", sval(rec.Bet1.Type), "Vitória")
	}
	if fval(rec.Bet1.Stake) != 100.00 || fval(rec.Bet1.Profit) != 18.50 {
		t.Errorf("bet1 stake/profit: got %v / %v", fval(rec.Bet1.Stake), fval(rec.Bet1.Profit))
	}

	if sval(rec.Bet2.House) != "Stake (BR)" || fval(rec.Bet2.Odd) != 3.40 {
		t.Errorf("bet2: got %q %v", sval(rec.Bet2.House), fval(rec.Bet2.Odd))
	}
	if rec.Bet3.House != nil {
		t.Errorf("bet3 must stay empty, got %q", sval(rec.Bet3.House))
	}
	if rec.FilledLegs() != 2 {
		t.Errorf("filled legs: got %d, want 2", rec.FilledLegs())
	}
}

// Page 1 carries the event data and leg 1; leg 2 only arrives on page 2. The
// record stays incomplete after page 1, so page 2 is scanned and its leg
// lands in the first empty slot.
func TestSlipParserTwoPageCombine(t *testing.T) {
	p := New(nil)

	pages := []string{
		strings.Join([]string{
			"Evento (2024-05-12 16:00)",
			"Palmeiras – Flamengo 4.25%",
			"Futebol / Brasil Serie A",
			"KTO (BR) Vitória 1.85 ● 100.00 USD 18.50",
		}, "\n"),
		"Stake (BR) Empate 3.40 ● 100.00 USD 25.00",
	}

	rec := p.Parse(pages)

	if sval(rec.TeamA) != "Palmeiras" {
		t.Errorf("teamA: got %q", sval(rec.TeamA))
	}
	if sval(rec.Bet1.House) != "KTO (BR)" {
		t.Errorf("bet1 house: got %q, want %q", sval(rec.Bet1.House), "KTO (BR)")
	}
	if sval(rec.Bet2.House) != "Stake (BR)" || fval(rec.Bet2.Odd) != 3.40 {
		t.Errorf("bet2: got %q %v", sval(rec.Bet2.House), fval(rec.Bet2.Odd))
	}
	if rec.Bet3.House != nil {
		t.Errorf("bet3 must stay empty, got %q", sval(rec.Bet3.House))
	}
}

// Scanning the same content twice must not double-fill the legs: a candidate
// matching a stored leg's house and odd is a duplicate.
func TestSlipParserRescanDoesNotDuplicate(t *testing.T) {
	p := New(nil)

	page := strings.Join([]string{
		"Palmeiras – Flamengo 4.25%",
		"KTO (BR) Vitória 1.85 ● 100.00 USD 18.50",
	}, "\n")

	rec := p.Parse([]string{page, page})

	if sval(rec.Bet1.House) != "KTO (BR)" {
		t.Errorf("bet1 house: got %q", sval(rec.Bet1.House))
	}
	if rec.Bet2.House != nil {
		t.Errorf("bet2 must stay empty after rescan, got %q", sval(rec.Bet2.House))
	}
}

// A two-leg record complete after page 1 terminates the scan; page 2's leg
// must never appear in the record.
func TestSlipParserEarlyTermination(t *testing.T) {
	p := New(nil)

	pages := []string{
		strings.Join([]string{
			"Palmeiras – Flamengo 4.25%",
			"KTO (BR) Vitória 1.85 ● 100.00 USD 18.50",
			"Stake (BR) Empate 3.40 ● 100.00 USD 25.00",
		}, "\n"),
		"Blaze (BR) Fora 2.50 ● 80.00 USD 10.00",
	}

	rec := p.Parse(pages)

	if rec.Bet3.House != nil {
		t.Errorf("page 2 scanned despite complete record: bet3 = %q", sval(rec.Bet3.House))
	}
}

// Three detected candidates with a failed third extraction keep the scan
// alive: the "Aposta total" heading resolves as a tentative house but yields
// no odd, so the record is only complete once a real leg 3 arrives.
func TestSlipParserThirdCandidateKeepsScanning(t *testing.T) {
	p := New(nil)

	pages := []string{
		strings.Join([]string{
			"Palmeiras – Flamengo 4.25%",
			"KTO (BR) Vitória 1.85 ● 100.00 USD 18.50",
			"Stake (BR) Empate 3.40 ● 100.00 USD 25.00",
			"Aposta total: 200 USD",
		}, "\n"),
		"Blaze (BR) Fora 2.50 ● 80.00 USD 10.00",
	}

	rec := p.Parse(pages)

	if sval(rec.Bet3.House) != "Blaze (BR)" {
		t.Errorf("bet3 house: got %q, want %q", sval(rec.Bet3.House), "Blaze (BR)")
	}
	if fval(rec.Bet3.Odd) != 2.50 {
		t.Errorf("bet3 odd: got %v, want 2.50", fval(rec.Bet3.Odd))
	}
}

func TestSlipParserScalarsKeepFirstValue(t *testing.T) {
	p := New(nil)

	pages := []string{
		"Palmeiras – Flamengo 4.25%\nKTO (BR) Vitória 1.85 ● 100.00 USD 18.50",
		"Santos – Grêmio 9.99%\nStake (BR) Empate 3.40 ● 100.00 USD 25.00",
	}

	rec := p.Parse(pages)

	if sval(rec.TeamA) != "Palmeiras" || sval(rec.TeamB) != "Flamengo" {
		t.Errorf("teams overwritten by page 2: %q / %q", sval(rec.TeamA), sval(rec.TeamB))
	}
	if fval(rec.ProfitPercentage) != 4.25 {
		t.Errorf("profit%% overwritten by page 2: %v", fval(rec.ProfitPercentage))
	}
}

func TestSlipParserEmptyInput(t *testing.T) {
	p := New(nil)

	rec := p.Parse(nil)
	if rec == nil {
		t.Fatal("record must never be nil")
	}
	if rec.Date != nil || rec.TeamA != nil || rec.Bet1.House != nil {
		t.Errorf("expected non-nil empty record, got %+v", rec)
	}

	rec = p.Parse([]string{"", "   \n  \n"})
	if rec.Bet1.House != nil {
		t.Errorf("blank pages must leave legs empty, got %q", sval(rec.Bet1.House))
	}
}
