package parser

import (
	"testing"

	"go.uber.org/zap"

	"github.com/bielsr01/BetTrackerPro/internal/gazetteer"
)

func newTestSegmenter() *segmenter {
	return &segmenter{gaz: gazetteer.Default(), log: zap.NewNop()}
}

func TestSegmentSingleLeg(t *testing.T) {
	lines := []string{
		"KTO (BR) Vitória 1.85 ● 100.00 USD 18.50",
	}

	got := newTestSegmenter().segment(lines)
	if len(got) != 1 {
		t.Fatalf("candidates: got %d, want 1", len(got))
	}
	if got[0].house != "KTO (BR)" {
		t.Errorf("house: got %q, want %q", got[0].house, "KTO (BR)")
	}
	if got[0].text != lines[0] {
		t.Errorf("text: got %q, want %q", got[0].text, lines[0])
	}
}

// A house name wrapped over three lines is reassembled in the completion
// phase; the tail of a partially consumed line is re-emitted into the bet
// text before the body lines.
func TestSegmentFragmentedHouseName(t *testing.T) {
	lines := []string{
		"Marjo",
		"Sports escanteios",
		"(BR)",
		"2.05 ● 60.00 USD 7.40",
	}

	got := newTestSegmenter().segment(lines)
	if len(got) != 1 {
		t.Fatalf("candidates: got %d, want 1", len(got))
	}
	if got[0].house != "Marjo Sports (BR)" {
		t.Errorf("house: got %q, want %q", got[0].house, "Marjo Sports (BR)")
	}
	want := "Marjo escanteios 2.05 ● 60.00 USD 7.40"
	if got[0].text != want {
		t.Errorf("text: got %q, want %q", got[0].text, want)
	}
}

func TestSegmentSeparatorNoiseInsideWindow(t *testing.T) {
	lines := []string{
		"CloudBet",
		"●",
		"(BR)",
		"Empate 3.10 ● 80.00 USD 11.00",
	}

	got := newTestSegmenter().segment(lines)
	if len(got) != 1 {
		t.Fatalf("candidates: got %d, want 1", len(got))
	}
	if got[0].house != "CloudBet (BR)" {
		t.Errorf("house: got %q, want %q", got[0].house, "CloudBet (BR)")
	}
}

func TestSegmentStopsOnNextHouse(t *testing.T) {
	lines := []string{
		"Stake (BR) Empate 3.40 ● 100.00 USD 25.00",
		"KTO (BR) Vitória 1.85 ● 120.00 USD 20.00",
	}

	got := newTestSegmenter().segment(lines)
	if len(got) != 2 {
		t.Fatalf("candidates: got %d, want 2", len(got))
	}
	if got[0].house != "Stake (BR)" || got[1].house != "KTO (BR)" {
		t.Errorf("houses: got %q, %q", got[0].house, got[1].house)
	}
	if got[0].text != lines[0] {
		t.Errorf("leg 1 text absorbed the next leg: %q", got[0].text)
	}
}

// A bare leading word that opens the next leg must interrupt accumulation
// even before the next leg's financial line arrives.
func TestSegmentStopsOnNextHouseFragment(t *testing.T) {
	lines := []string{
		"Stake (BR) Empate 3.40 ● 100.00 USD 25.00",
		"acima 2.5 gols",
		"Blaze",
		"Vitória 1.95 ● 90.00 USD 14.00",
	}

	got := newTestSegmenter().segment(lines)
	if len(got) != 2 {
		t.Fatalf("candidates: got %d, want 2", len(got))
	}
	if got[0].house != "Stake (BR)" {
		t.Errorf("leg 1 house: got %q", got[0].house)
	}
	want := "Stake (BR) Empate 3.40 ● 100.00 USD 25.00 acima 2.5 gols"
	if got[0].text != want {
		t.Errorf("leg 1 text: got %q, want %q", got[0].text, want)
	}
	if got[1].house != "Blaze" {
		t.Errorf("leg 2 house: got %q, want %q", got[1].house, "Blaze")
	}
	if want := "Blaze Vitória 1.95 ● 90.00 USD 14.00"; got[1].text != want {
		t.Errorf("leg 2 text: got %q, want %q", got[1].text, want)
	}
}

func TestSegmentStopsOnSectionKeyword(t *testing.T) {
	lines := []string{
		"Blaze (BR) Casa 2.10",
		"● 50.00 USD 5.00",
		"Arredondar valores",
		"Mostrar mais",
	}

	got := newTestSegmenter().segment(lines)
	if len(got) != 1 {
		t.Fatalf("candidates: got %d, want 1", len(got))
	}
	if want := "Blaze (BR) Casa 2.10 ● 50.00 USD 5.00"; got[0].text != want {
		t.Errorf("text: got %q, want %q", got[0].text, want)
	}
}

func TestSegmentUnresolvableCandidateStillCounts(t *testing.T) {
	lines := []string{
		"KTO",
	}

	got := newTestSegmenter().segment(lines)
	if len(got) != 1 {
		t.Fatalf("candidates: got %d, want 1", len(got))
	}
	if got[0].house != "KTO" {
		t.Errorf("house: got %q, want %q", got[0].house, "KTO")
	}
}
