// Package api exposes the slip conversion pipeline over HTTP.
package api

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/bielsr01/BetTrackerPro/internal/extractor"
	"github.com/bielsr01/BetTrackerPro/internal/models"
	"github.com/bielsr01/BetTrackerPro/internal/parser"
)

// Version is reported by /api/health and the CLI's -version flag.
const Version = "1.0.0"

// ServiceName identifies the API server in health responses and log fields.
const ServiceName = "surebet-api"

// Handler carries the conversion endpoints. The metrics callbacks are
// optional; main wires them to the Prometheus counters.
type Handler struct {
	Log      *zap.Logger
	MaxPages int

	// OnProcessed fires once per conversion attempt with "success" or
	// "failure".
	OnProcessed func(outcome string)
	// OnLegs fires after a successful conversion with the number of legs
	// that resolved a house.
	OnLegs func(n int)
}

// Register mounts the API routes on the app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/api/health", h.Health)
	app.Post("/api/convert", h.Convert)
}

// ConvertResponse is the JSON response of POST /api/convert.
type ConvertResponse struct {
	Success      bool                  `json:"success"`
	Error        string                `json:"error,omitempty"`
	Record       *models.SurebetRecord `json:"record,omitempty"`
	PagesScanned int                   `json:"pagesScanned"`
	LegsFound    int                   `json:"legsFound"`
}

// Health reports liveness and identifies the serving stack.
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": ServiceName,
		"version": Version,
		"engine":  "fiber",
	})
}

// Convert accepts a slip PDF as multipart field "file", runs extraction and
// parsing, and returns the structured record. The optional "pages" form
// field (1-10) overrides how deep extraction scans.
func (h *Handler) Convert(c *fiber.Ctx) error {
	header, err := c.FormFile("file")
	if err != nil {
		return h.fail(c, fiber.StatusBadRequest, "no file uploaded; use form field 'file'")
	}
	if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		return h.fail(c, fiber.StatusBadRequest, "only PDF files are supported")
	}

	maxPages := h.MaxPages
	if maxPages < 1 {
		maxPages = parser.MaxPages
	}
	if v := c.FormValue("pages"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 10 {
			return h.fail(c, fiber.StatusBadRequest, "'pages' must be an integer between 1 and 10")
		}
		maxPages = n
	}

	tmp, err := os.CreateTemp("", "slip-*.pdf")
	if err != nil {
		return h.fail(c, fiber.StatusInternalServerError, "failed to create temp file")
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := c.SaveFile(header, tmpPath); err != nil {
		return h.fail(c, fiber.StatusInternalServerError, "failed to save uploaded file")
	}

	pages, err := extractor.ExtractPages(tmpPath, maxPages)
	if err != nil {
		h.log().Warn("extraction failed",
			zap.String("file", header.Filename), zap.Error(err))
		return h.fail(c, fiber.StatusUnprocessableEntity, fmt.Sprintf("extraction failed: %v", err))
	}

	rec := parser.New(h.log()).Parse(pages)
	legs := rec.FilledLegs()

	if h.OnProcessed != nil {
		h.OnProcessed("success")
	}
	if h.OnLegs != nil {
		h.OnLegs(legs)
	}
	h.log().Info("slip converted",
		zap.String("file", header.Filename),
		zap.Int("pages", len(pages)),
		zap.Int("legs", legs))

	return c.JSON(ConvertResponse{
		Success:      true,
		Record:       rec,
		PagesScanned: len(pages),
		LegsFound:    legs,
	})
}

func (h *Handler) fail(c *fiber.Ctx, status int, msg string) error {
	if h.OnProcessed != nil {
		h.OnProcessed("failure")
	}
	return c.Status(status).JSON(ConvertResponse{
		Success: false,
		Error:   msg,
	})
}

func (h *Handler) log() *zap.Logger {
	if h.Log == nil {
		return zap.NewNop()
	}
	return h.Log
}
