// Package parser turns the extracted text of a surebet slip into a
// structured record: event metadata plus up to three bet legs. The pipeline
// is line reassembly, house detection, bet segmentation and field
// extraction, run once per page.
package parser

import (
	"go.uber.org/zap"

	"github.com/bielsr01/BetTrackerPro/internal/gazetteer"
	"github.com/bielsr01/BetTrackerPro/internal/models"
)

// MaxPages is the default extraction depth. The generator family puts
// everything on the first page and occasionally wraps leg rows onto the
// second.
const MaxPages = 2

// SlipParser extracts a SurebetRecord from slip page text. Safe for
// concurrent use; each Parse call works on its own record.
type SlipParser struct {
	gaz *gazetteer.Gazetteer
	log *zap.Logger
}

// New returns a parser backed by the shared house gazetteer. A nil logger
// disables diagnostics.
func New(log *zap.Logger) *SlipParser {
	if log == nil {
		log = zap.NewNop()
	}
	return &SlipParser{gaz: gazetteer.Default(), log: log}
}

// Parse runs the extraction pipeline over the given pages in order and
// returns the assembled record. Extraction is best effort: fields the
// heuristics cannot resolve stay null, and a malformed page never aborts the
// others. Callers cap the page count at extraction time; MaxPages is the
// default depth.
func (p *SlipParser) Parse(pages []string) *models.SurebetRecord {
	rec := &models.SurebetRecord{}

	maxDetected := 0
	for n, page := range pages {
		detected := p.parsePage(n+1, page, rec)
		if detected > maxDetected {
			maxDetected = detected
		}

		if p.complete(rec, maxDetected) {
			break
		}
	}

	return rec
}

// parsePage processes one page into the record and reports how many bet
// candidates the segmenter saw, accepted or not. A panic inside the
// heuristics is contained to the page.
func (p *SlipParser) parsePage(pageNum int, text string, rec *models.SurebetRecord) (detected int) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Error("page processing failed",
				zap.Int("page", pageNum), zap.Any("panic", r))
		}
	}()

	lines := reassembleLines(text)
	if len(lines) == 0 {
		return 0
	}

	if rec.Date == nil {
		extractDate(lines, rec)
	}
	if rec.TeamA == nil {
		extractTeams(lines, rec)
	}
	if rec.Sport == nil {
		extractSportLeague(lines, rec)
	}

	seg := &segmenter{gaz: p.gaz, log: p.log}
	candidates := seg.segment(lines)

	var accepted []models.BetLeg
	for _, c := range candidates {
		leg := extractLegFields(c.text, c.house)
		if leg.Resolved() {
			accepted = append(accepted, leg)
		} else {
			p.log.Debug("discarding unresolved leg candidate",
				zap.Int("page", pageNum), zap.String("house", c.house))
		}
	}
	mergeLegs(rec, accepted)

	p.log.Debug("page processed",
		zap.Int("page", pageNum),
		zap.Int("lines", len(lines)),
		zap.Int("candidates", len(candidates)),
		zap.Int("accepted", len(accepted)))

	return len(candidates)
}

// complete is the early-termination check: both teams named, legs 1 and 2
// housed, and either the slip never showed a third candidate or leg 3 is
// housed too. A detected third leg whose extraction failed keeps the scan
// alive.
func (p *SlipParser) complete(rec *models.SurebetRecord, detected int) bool {
	if rec.TeamA == nil || rec.TeamB == nil {
		return false
	}
	if rec.Bet1.House == nil || rec.Bet2.House == nil {
		return false
	}
	return detected < 3 || rec.Bet3.House != nil
}
