package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/de-tools/cost-notifier/pkg/models/api"
	"github.com/de-tools/cost-notifier/pkg/models/domain"
	"github.com/de-tools/cost-notifier/pkg/services/report"
	"github.com/rs/zerolog"
)

type Handler struct {
	client   report.CostAndUsageAPI
	notifier report.Notifier
	timezone string
}

func NewHandler(client report.CostAndUsageAPI, notifier report.Notifier, timezone string) *Handler {
	return &Handler{
		client:   client,
		notifier: notifier,
		timezone: timezone,
	}
}

// PreviewReport assembles the report for the requested date (today in the
// reporting timezone when the `date` query param is absent) without
// sending it anywhere.
func (h *Handler) PreviewReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	date, err := h.resolveDate(r.URL.Query().Get("date"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	msg, err := report.Assemble(ctx, h.client, date)
	if err != nil {
		logger.Error().Err(err).Msg("failed to assemble cost report")
		http.Error(w, "failed to assemble cost report", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(api.ReportMessage{Header: msg.Header, Body: msg.Body})
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to encode cost report")
	}
}

// SendReport runs a full reporting cycle and posts the result to the
// configured webhook.
func (h *Handler) SendReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	date, err := h.resolveDate(r.URL.Query().Get("date"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := report.Run(ctx, h.client, h.notifier, date); err != nil {
		logger.Error().Err(err).Msg("cost report run failed")
		http.Error(w, "cost report run failed", http.StatusBadGateway)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) resolveDate(raw string) (time.Time, error) {
	if raw == "" {
		return report.DateInTimezone(time.Now(), h.timezone)
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not YYYY-MM-DD", domain.ErrInvalidDate, raw)
	}
	return t, nil
}
