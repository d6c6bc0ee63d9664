package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func setupTestApp() (*fiber.App, *Handler) {
	app := fiber.New()
	h := &Handler{MaxPages: 2}
	h.Register(app)
	return app, h
}

func TestHealthEndpoint(t *testing.T) {
	app, _ := setupTestApp()

	req := httptest.NewRequest("GET", "/api/health", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var result map[string]string
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if result["status"] != "ok" {
		t.Errorf("expected status=ok, got %q", result["status"])
	}
	if result["engine"] != "fiber" {
		t.Errorf("expected engine=fiber, got %q", result["engine"])
	}
	if result["service"] != ServiceName {
		t.Errorf("expected service=%s, got %q", ServiceName, result["service"])
	}
}

func TestConvertRequiresFile(t *testing.T) {
	app, _ := setupTestApp()

	req := httptest.NewRequest("POST", "/api/convert", nil)
	req.Header.Set("Content-Type", "multipart/form-data; boundary=----test")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("expected 400 for missing file, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var result ConvertResponse
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.Success {
		t.Error("expected success=false")
	}
	if result.Error == "" {
		t.Error("expected an error message")
	}
}

func multipartBody(t *testing.T, filename string, content []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatal(err)
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatal(err)
		}
	}
	mw.Close()
	return &buf, mw.FormDataContentType()
}

func TestConvertRejectsNonPDF(t *testing.T) {
	app, _ := setupTestApp()

	buf, contentType := multipartBody(t, "slip.txt", []byte("not a pdf"), nil)
	req := httptest.NewRequest("POST", "/api/convert", buf)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("expected 400 for non-PDF, got %d", resp.StatusCode)
	}
}

func TestConvertRejectsInvalidPagesField(t *testing.T) {
	app, _ := setupTestApp()

	for _, pages := range []string{"0", "11", "abc"} {
		buf, contentType := multipartBody(t, "slip.pdf", []byte("%PDF-1.4"), map[string]string{"pages": pages})
		req := httptest.NewRequest("POST", "/api/convert", buf)
		req.Header.Set("Content-Type", contentType)

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Errorf("pages=%q: expected 400, got %d", pages, resp.StatusCode)
		}
	}
}

func TestConvertUnextractableFileIs422(t *testing.T) {
	app, _ := setupTestApp()

	// A bare PDF shell: no readable slip text can come out of it.
	buf, contentType := multipartBody(t, "slip.pdf", []byte("%PDF-1.4\n%%EOF"), nil)
	req := httptest.NewRequest("POST", "/api/convert", buf)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Errorf("expected 422 for unextractable file, got %d", resp.StatusCode)
	}
}

func TestConvertOutcomeCallback(t *testing.T) {
	app, h := setupTestApp()

	var outcomes []string
	h.OnProcessed = func(outcome string) { outcomes = append(outcomes, outcome) }

	req := httptest.NewRequest("POST", "/api/convert", nil)
	req.Header.Set("Content-Type", "multipart/form-data; boundary=----test")
	if _, err := app.Test(req); err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if len(outcomes) != 1 || outcomes[0] != "failure" {
		t.Errorf("expected one failure outcome, got %v", outcomes)
	}
}
