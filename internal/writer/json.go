// Package writer serializes parsed slip records to the downstream JSON
// shape.
package writer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/bielsr01/BetTrackerPro/internal/models"
)

// RecordWriter writes SurebetRecords as JSON. The default output is a single
// line in the record's canonical key order (date, sport, league, teamA,
// teamB, bet1..bet3, profitPercentage) with null for every unresolved field.
type RecordWriter struct {
	// Pretty switches to indented output for human reading.
	Pretty bool
}

// Write serializes one record to out, newline-terminated.
func (w *RecordWriter) Write(out io.Writer, rec *models.SurebetRecord) error {
	enc := json.NewEncoder(out)
	if w.Pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(rec); err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	return nil
}

// WriteToFile writes one record to the file at path, creating or truncating
// it.
func (w *RecordWriter) WriteToFile(path string, rec *models.SurebetRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, rec)
}

// WriteFailure emits the reduced failure shape: the record keys minus bet3,
// every field null. Consumers distinguish failure output by the missing key.
func (w *RecordWriter) WriteFailure(out io.Writer) error {
	enc := json.NewEncoder(out)
	if w.Pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(&models.FailureRecord{}); err != nil {
		return fmt.Errorf("failed to encode failure record: %w", err)
	}
	return nil
}
