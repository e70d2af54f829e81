// Package handlers provides HTTP request handlers
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/findosh/finchat/internal/config"
	"github.com/findosh/finchat/internal/middleware"
	"github.com/findosh/finchat/internal/models"
	"github.com/findosh/finchat/internal/services/assistant"
	"github.com/findosh/finchat/internal/services/marketdata"
	"github.com/findosh/finchat/internal/services/suggest"
	"github.com/findosh/finchat/internal/services/transcript"
)

const defaultMaxBodyBytes = 64 << 10

// Handler contains all HTTP handlers and dependencies
type Handler struct {
	assistant    *assistant.Service
	answer       func(message string) *models.ResponseEnvelope
	prices       *marketdata.Snapshot
	transcripts  *transcript.Index
	catalog      *suggest.Catalog
	logger       *slog.Logger
	maxBodyBytes int64
	now          func() time.Time
}

// New creates a new handler with all dependencies. transcripts and
// catalog may be nil; their routes then answer with empty results.
func New(
	cfg *config.Config,
	assistantService *assistant.Service,
	transcripts *transcript.Index,
	catalog *suggest.Catalog,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	maxBody := int64(defaultMaxBodyBytes)
	if cfg != nil && cfg.MaxBodyBytes > 0 {
		maxBody = cfg.MaxBodyBytes
	}

	return &Handler{
		assistant:    assistantService,
		answer:       assistantService.Answer,
		prices:       assistantService.Prices(),
		transcripts:  transcripts,
		catalog:      catalog,
		logger:       logger,
		maxBodyBytes: maxBody,
		now:          time.Now,
	}
}

// Routes registers every endpoint on a new mux
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/chat", h.Chat)
	mux.HandleFunc("/.netlify/functions/chat", h.Chat)
	mux.HandleFunc("/api/health", h.Health)
	mux.HandleFunc("/api/stats", h.Stats)
	mux.HandleFunc("/api/stock-price/stats", h.PriceStats)
	mux.HandleFunc("/api/stock-price/compare", h.PriceCompare)
	mux.HandleFunc("/api/transcript/search", h.TranscriptSearch)
	mux.HandleFunc("/api/suggestions", h.Suggestions)

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		h.jsonError(w, http.StatusNotFound, "Not Found", "No route for "+r.URL.Path)
	})

	return mux
}

// Health reports liveness
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !h.allowGet(w, r) {
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{
		"status":    "OK",
		"timestamp": h.now().UTC().Format(models.TimestampLayout),
	})
}

// Stats returns the answer counters
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	if !h.allowGet(w, r) {
		return
	}
	h.writeJSON(w, http.StatusOK, h.assistant.Stats().GetStats())
}

func (h *Handler) allowGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}
	w.Header().Set("Allow", "GET, OPTIONS")
	h.jsonError(w, http.StatusMethodNotAllowed, "Method Not Allowed", "Only GET requests are allowed")
	return false
}

// writeJSON writes v as a JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("failed to encode response", "error", err)
	}
}

// jsonError writes a JSON error response
func (h *Handler) jsonError(w http.ResponseWriter, status int, errText, message string) {
	middleware.WriteError(w, status, errText, message)
}

// queryLimit reads a positive limit parameter, capped at max
func queryLimit(r *http.Request, def, max int) int {
	n, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || n <= 0 {
		return def
	}
	if n > max {
		return max
	}
	return n
}
