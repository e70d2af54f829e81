package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/findosh/finchat/internal/services/marketdata"
)

// PriceStats returns statistics for ?startDate=&endDate= (YYYY-MM-DD)
func (h *Handler) PriceStats(w http.ResponseWriter, r *http.Request) {
	if !h.allowGet(w, r) {
		return
	}

	q := r.URL.Query()
	if q.Get("startDate") == "" || q.Get("endDate") == "" {
		h.jsonError(w, http.StatusBadRequest, "Invalid request", "Start date and end date are required")
		return
	}

	dates, err := parseDates(q.Get("startDate"), q.Get("endDate"))
	if err != nil {
		h.jsonError(w, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	stats, err := h.prices.Stats(dates[0], dates[1])
	if err != nil {
		h.priceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}

// PriceCompare compares two periods given as period1Start, period1End,
// period2Start and period2End
func (h *Handler) PriceCompare(w http.ResponseWriter, r *http.Request) {
	if !h.allowGet(w, r) {
		return
	}

	q := r.URL.Query()
	params := []string{q.Get("period1Start"), q.Get("period1End"), q.Get("period2Start"), q.Get("period2End")}
	for _, p := range params {
		if p == "" {
			h.jsonError(w, http.StatusBadRequest, "Invalid request", "All four date parameters are required")
			return
		}
	}

	dates, err := parseDates(params...)
	if err != nil {
		h.jsonError(w, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	cmp, err := h.prices.Compare(dates[0], dates[1], dates[2], dates[3])
	if err != nil {
		h.priceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, cmp)
}

func (h *Handler) priceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, marketdata.ErrNoData):
		h.jsonError(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, marketdata.ErrInvalidRange):
		h.jsonError(w, http.StatusBadRequest, "Invalid request", err.Error())
	default:
		h.logger.Error("price query failed", "error", err)
		h.jsonError(w, http.StatusInternalServerError, "Internal Server Error", "Failed to compute price statistics")
	}
}

func parseDates(values ...string) ([]time.Time, error) {
	out := make([]time.Time, len(values))
	for i, v := range values {
		t, err := marketdata.ParseDate(v)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}
