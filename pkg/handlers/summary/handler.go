package summary

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/de-tools/hiring-pulse/pkg/adapters"
	"github.com/de-tools/hiring-pulse/pkg/models/api"
	"github.com/de-tools/hiring-pulse/pkg/services/analytics"
	"github.com/de-tools/hiring-pulse/pkg/services/config"
	"github.com/de-tools/hiring-pulse/pkg/services/report"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type Handler struct {
	svc report.Service
}

func NewHandler(svc report.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) ListSources(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	sources, err := h.svc.ListSources(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list sources")
		writeError(w, r, http.StatusInternalServerError, err)
		return
	}

	response := make([]api.Source, 0, len(sources))
	for _, src := range sources {
		response = append(response, adapters.MapDomainSourceToAPI(src))
	}
	writeJSON(w, r, http.StatusOK, response)
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	source := chi.URLParam(r, "source")

	summary, err := h.svc.Summarize(ctx, source)
	if err != nil {
		status := statusFor(err)
		logger.Error().
			Err(err).
			Str("source", source).
			Int("status", status).
			Msg("failed to build summary")
		writeError(w, r, status, err)
		return
	}

	writeJSON(w, r, http.StatusOK, adapters.MapDomainSummaryToAPI(source, summary))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, config.ErrUnknownSource):
		return http.StatusNotFound
	case errors.Is(err, analytics.ErrMissingObservation), errors.Is(err, analytics.ErrInsufficientData):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	writeJSON(w, r, status, api.Error{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}
