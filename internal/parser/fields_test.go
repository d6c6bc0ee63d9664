package parser

import (
	"testing"
)

func fval(p *float64) float64 {
	if p == nil {
		return -1
	}
	return *p
}

func sval(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func TestExtractOdd(t *testing.T) {
	tests := []struct {
		name        string
		descriptive string
		want        float64
	}{
		{"in-range decimal nearest the end wins", "Acima 2.5 1.85", 1.85},
		{"last in-range value even when all qualify", "Handicap 1.75 Casa 1.65", 1.65},
		{"out-of-range values are skipped", "Total 78.5 gols 2.10", 2.10},
		{"fallback to last decimal when none in range", "Acima 120.5 200.0", 200.0},
		{"no decimals", "Vitória simples", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractOdd(tt.descriptive)
			if fval(got) != tt.want {
				t.Errorf("got %v, want %v", fval(got), tt.want)
			}
		})
	}
}

func TestExtractStakeProfit(t *testing.T) {
	leg := extractLegFields("KTO (BR) Vitória ● 100.00 USD 18.50", "KTO (BR)")

	if fval(leg.Stake) != 100.00 {
		t.Errorf("stake: got %v, want 100.00", fval(leg.Stake))
	}
	if fval(leg.Profit) != 18.50 {
		t.Errorf("profit: got %v, want 18.50", fval(leg.Profit))
	}
}

func TestExtractStakeProfitFallback(t *testing.T) {
	// No decimal after the stake: the profit falls back to the last
	// unclaimed decimal below 1000, scanning from the end.
	leg := extractLegFields("Stake (BR) Empate anula 12.75 3.40 ● 100.00 USD", "Stake (BR)")

	if fval(leg.Stake) != 100.00 {
		t.Errorf("stake: got %v, want 100.00", fval(leg.Stake))
	}
	if fval(leg.Odd) != 3.40 {
		t.Errorf("odd: got %v, want 3.40", fval(leg.Odd))
	}
	if fval(leg.Profit) != 12.75 {
		t.Errorf("profit: got %v, want 12.75", fval(leg.Profit))
	}
}

func TestExtractBetType(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		house string
		want  string
	}{
		{
			name:  "house, currency and claimed numbers are stripped",
			text:  "Pinnacle Mais de 2.5 gols 1.85 ● 50.00 USD 9.25",
			house: "Pinnacle",
			want:  "Mais de 2.5 gols",
		},
		{
			name:  "keyword keeps the following number even when it equals the odd",
			text:  "KTO (BR) Acima 2.5 ● 100.00 USD 18.50",
			house: "KTO (BR)",
			want:  "Acima 2.5",
		},
		{
			name:  "country parenthetical is removed",
			text:  "BravoBet (BR) Empate anula aposta 3.10 ● 80.00 USD 11.00",
			house: "BravoBet (BR)",
			want:  "Empate anula aposta",
		},
		{
			name:  "brand family words are stripped from the type",
			text:  "Marjo Sports (BR) Sports escanteios acima 9.5 2.05 ● 60.00 USD 7.40",
			house: "Marjo Sports (BR)",
			want:  "escanteios acima 9.5",
		},
		{
			name:  "negative numbers are dropped",
			text:  "Betano (BR) Handicap -14.5 1.90 ● 90.00 USD 8.20",
			house: "Betano (BR)",
			want:  "Handicap",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leg := extractLegFields(tt.text, tt.house)
			if sval(leg.Type) != tt.want {
				t.Errorf("type: got %q, want %q", sval(leg.Type), tt.want)
			}
		})
	}
}

func TestExtractLegFieldsUnresolvable(t *testing.T) {
	leg := extractLegFields("linha sem dados de aposta", "")
	if leg.House != nil || leg.Odd != nil || leg.Stake != nil || leg.Profit != nil {
		t.Errorf("expected all numeric fields nil, got %+v", leg)
	}
	if leg.Resolved() {
		t.Error("leg without house and odd must not resolve")
	}
}
