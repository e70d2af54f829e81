package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/findosh/finchat/internal/middleware"
	"github.com/findosh/finchat/internal/render"
)

type chatRequest struct {
	Message json.RawMessage `json:"message"`
	Format  string          `json:"format,omitempty"`
}

// Chat answers one message: POST {message, format?} -> ResponseEnvelope
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			h.logger.Error("chat request failed",
				"error", rec,
				"request_id", middleware.GetRequestID(r),
			)
			h.jsonError(w, http.StatusInternalServerError, "Internal Server Error", "Failed to process chat request")
		}
	}()

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST, OPTIONS")
		h.jsonError(w, http.StatusMethodNotAllowed, "Method Not Allowed", "Only POST requests are allowed")
		return
	}

	message, format, ok := h.decodeChat(w, r)
	if !ok {
		h.jsonError(w, http.StatusBadRequest, "Invalid request", "Message field is required and must be a string")
		return
	}

	env := h.answer(message)

	if strings.EqualFold(format, "html") {
		html, err := render.HTML(env.Response)
		if err != nil {
			h.logger.Warn("failed to render answer", "error", err)
		} else {
			env.HTML = html
		}
	}

	h.writeJSON(w, http.StatusOK, env)
}

// decodeChat extracts a non-empty string message from the body
func (h *Handler) decodeChat(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return "", "", false
	}
	if len(req.Message) == 0 {
		return "", "", false
	}

	var message string
	if err := json.Unmarshal(req.Message, &message); err != nil {
		return "", "", false
	}
	if strings.TrimSpace(message) == "" {
		return "", "", false
	}
	return message, req.Format, true
}
