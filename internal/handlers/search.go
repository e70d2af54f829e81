package handlers

import (
	"net/http"
	"strings"

	"github.com/findosh/finchat/internal/services/suggest"
	"github.com/findosh/finchat/internal/services/transcript"
)

// TranscriptSearch returns transcript paragraphs for ?q=&limit=
func (h *Handler) TranscriptSearch(w http.ResponseWriter, r *http.Request) {
	if !h.allowGet(w, r) {
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		h.jsonError(w, http.StatusBadRequest, "Invalid request", "Query parameter q is required")
		return
	}

	sections := []transcript.Result{}
	if h.transcripts != nil {
		if found := h.transcripts.Search(query, queryLimit(r, 5, 20)); found != nil {
			sections = found
		}
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"query":    query,
		"sections": sections,
	})
}

// Suggestions returns sample questions matching ?q=
func (h *Handler) Suggestions(w http.ResponseWriter, r *http.Request) {
	if !h.allowGet(w, r) {
		return
	}

	questions := []suggest.Question{}
	if h.catalog != nil {
		if found := h.catalog.Find(r.URL.Query().Get("q"), queryLimit(r, 6, 50)); found != nil {
			questions = found
		}
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"questions": questions,
	})
}
