package models

// BetLeg is one individual bet placed at one betting house as part of a
// surebet. Every field is best-effort: a heuristic that finds nothing leaves
// the pointer nil, which serializes as JSON null.
type BetLeg struct {
	House  *string  `json:"house"`
	Odd    *float64 `json:"odd"` // decimal multiplier, expected range [1.0, 50.0]
	Type   *string  `json:"type"`
	Stake  *float64 `json:"stake"`
	Profit *float64 `json:"profit"`
}

// Resolved reports whether the leg carries the minimum usable data. Legs
// without both a house and an odd are discarded by the assembler.
func (l *BetLeg) Resolved() bool {
	return l.House != nil && l.Odd != nil
}

// SurebetRecord is the structured result of one slip document. Field order
// matches the serialized shape consumed downstream: date, sport, league,
// teamA, teamB, bet1..bet3, profitPercentage. Legs are positionally
// significant (first detected = bet1).
type SurebetRecord struct {
	Date             *string  `json:"date"` // local timestamp, YYYY-MM-DDTHH:MM
	Sport            *string  `json:"sport"`
	League           *string  `json:"league"`
	TeamA            *string  `json:"teamA"`
	TeamB            *string  `json:"teamB"`
	Bet1             BetLeg   `json:"bet1"`
	Bet2             BetLeg   `json:"bet2"`
	Bet3             BetLeg   `json:"bet3"`
	ProfitPercentage *float64 `json:"profitPercentage"`
}

// Leg returns leg n (1-based) for in-place mutation, or nil when n is out of
// range.
func (r *SurebetRecord) Leg(n int) *BetLeg {
	switch n {
	case 1:
		return &r.Bet1
	case 2:
		return &r.Bet2
	case 3:
		return &r.Bet3
	}
	return nil
}

// FilledLegs counts legs that resolved at least a house, scanning in leg
// order. The early-termination policy keys off houses, not full legs.
func (r *SurebetRecord) FilledLegs() int {
	n := 0
	for i := 1; i <= 3; i++ {
		if r.Leg(i).House != nil {
			n++
		}
	}
	return n
}

// FailureRecord is the reduced shape emitted when extraction fails outright:
// the same keys as SurebetRecord with bet3 omitted and every field null.
type FailureRecord struct {
	Date             *string  `json:"date"`
	Sport            *string  `json:"sport"`
	League           *string  `json:"league"`
	TeamA            *string  `json:"teamA"`
	TeamB            *string  `json:"teamB"`
	Bet1             BetLeg   `json:"bet1"`
	Bet2             BetLeg   `json:"bet2"`
	ProfitPercentage *float64 `json:"profitPercentage"`
}
