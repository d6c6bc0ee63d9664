package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/bielsr01/BetTrackerPro/internal/writer"
)

func TestRunRejectsBadInput(t *testing.T) {
	dir := t.TempDir()
	txtPath := filepath.Join(dir, "slip.txt")
	if err := os.WriteFile(txtPath, []byte("not a pdf"), 0o644); err != nil {
		t.Fatal(err)
	}
	pdfPath := filepath.Join(dir, "slip.pdf")
	if err := os.WriteFile(pdfPath, []byte("%PDF-1.4\n%%EOF"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		pages   int
		wantErr string
	}{
		{"missing file", filepath.Join(dir, "nope.pdf"), 2, "not found"},
		{"wrong extension", txtPath, 2, "expected .pdf"},
		{"pages too low", pdfPath, 0, "pages must be"},
		{"pages too high", pdfPath, 11, "pages must be"},
		{"unextractable document", pdfPath, 2, "extraction failed"},
	}

	w := &writer.RecordWriter{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(tt.path, tt.pages, w, zap.NewNop())
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}
