package writer

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bielsr01/BetTrackerPro/internal/models"
)

func sptr(s string) *string   { return &s }
func fptr(f float64) *float64 { return &f }

func sampleRecord() *models.SurebetRecord {
	return &models.SurebetRecord{
		Date:   sptr("2024-05-12T16:00"),
		Sport:  sptr("Futebol"),
		League: sptr("Brasil Serie A"),
		TeamA:  sptr("Palmeiras"),
		TeamB:  sptr("Flamengo"),
		Bet1: models.BetLeg{
			House:  sptr("KTO (BR)"),
			Odd:    fptr(1.85),
			Type:   sptr("Vitória"),
			Stake:  fptr(100.00),
			Profit: fptr(18.50),
		},
		Bet2: models.BetLeg{
			House: sptr("Stake (BR)"),
			Odd:   fptr(3.40),
		},
		ProfitPercentage: fptr(4.25),
	}
}

func TestWriteSingleLine(t *testing.T) {
	var buf bytes.Buffer
	w := &RecordWriter{}
	if err := w.Write(&buf, sampleRecord()); err != nil {
		t.Fatalf("Write: %v", err)
	}

	out := buf.String()
	if strings.Count(out, "\n") != 1 || !strings.HasSuffix(out, "\n") {
		t.Errorf("output must be one newline-terminated line, got %q", out)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["date"] != "2024-05-12T16:00" {
		t.Errorf("date: got %v", decoded["date"])
	}
	if decoded["sport"] != "Futebol" {
		t.Errorf("sport: got %v", decoded["sport"])
	}
}

func TestWriteKeyOrder(t *testing.T) {
	var buf bytes.Buffer
	w := &RecordWriter{}
	if err := w.Write(&buf, sampleRecord()); err != nil {
		t.Fatalf("Write: %v", err)
	}

	out := buf.String()
	keys := []string{`"date"`, `"sport"`, `"league"`, `"teamA"`, `"teamB"`, `"bet1"`, `"bet2"`, `"bet3"`, `"profitPercentage"`}
	prev := -1
	for _, k := range keys {
		idx := strings.Index(out, k)
		if idx < 0 {
			t.Fatalf("missing key %s in %q", k, out)
		}
		if idx < prev {
			t.Errorf("key %s out of order", k)
		}
		prev = idx
	}
}

func TestWriteNullsForUnresolvedFields(t *testing.T) {
	var buf bytes.Buffer
	w := &RecordWriter{}
	if err := w.Write(&buf, &models.SurebetRecord{}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded["date"] != nil {
		t.Errorf("date must be null, got %v", decoded["date"])
	}
	bet3, ok := decoded["bet3"].(map[string]any)
	if !ok {
		t.Fatalf("bet3 must be an object, got %v", decoded["bet3"])
	}
	if bet3["house"] != nil || bet3["odd"] != nil {
		t.Errorf("empty leg fields must be null, got %v", bet3)
	}
}

func TestWritePretty(t *testing.T) {
	var buf bytes.Buffer
	w := &RecordWriter{Pretty: true}
	if err := w.Write(&buf, sampleRecord()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if strings.Count(buf.String(), "\n") < 2 {
		t.Errorf("pretty output must be multi-line, got %q", buf.String())
	}
}

func TestWriteToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "record.json")
	w := &RecordWriter{}
	if err := w.WriteToFile(path, sampleRecord()); err != nil {
		t.Fatalf("WriteToFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("file is not valid JSON: %v", err)
	}
	if decoded["teamA"] != "Palmeiras" {
		t.Errorf("teamA: got %v", decoded["teamA"])
	}
}

func TestWriteFailureOmitsBet3(t *testing.T) {
	var buf bytes.Buffer
	w := &RecordWriter{}
	if err := w.WriteFailure(&buf); err != nil {
		t.Fatalf("WriteFailure: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if _, present := decoded["bet3"]; present {
		t.Error("failure output must not carry a bet3 key")
	}
	for _, k := range []string{"date", "sport", "league", "teamA", "teamB", "bet1", "bet2", "profitPercentage"} {
		if _, present := decoded[k]; !present {
			t.Errorf("failure output missing key %q", k)
		}
	}
	if decoded["date"] != nil {
		t.Errorf("failure fields must be null, got date=%v", decoded["date"])
	}
}
