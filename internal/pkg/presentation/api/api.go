package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/diwise/alert-analysis/internal/pkg/application/alertanalysis"
	"github.com/diwise/alert-analysis/internal/pkg/infrastructure/logging"
	"github.com/diwise/alert-analysis/internal/pkg/infrastructure/repositories/alerts"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("alert-analysis/api")

func RegisterHandlers(ctx context.Context, router *chi.Mux, svc alertanalysis.AlertService) (*chi.Mux, error) {

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	log := logging.GetFromContext(ctx)

	router.Route("/api/v0", func(r chi.Router) {
		r.Get("/alerts", getAlertGroupsHandler(log, svc))
		r.Get("/alerts/{alertID}", getAlertDetailsHandler(log, svc))
	})

	return router, nil
}

func getAlertGroupsHandler(log zerolog.Logger, svc alertanalysis.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "get-alert-groups")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		timeFilter := r.URL.Query().Get("timeFilter")
		if timeFilter == "" {
			timeFilter = string(alertanalysis.WindowAll)
		}

		window, err := alertanalysis.ParseWindow(timeFilter)
		if err != nil {
			log.Warn().Err(err).Msg("bad time filter in request")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		groups, err := svc.Groups(ctx, window)
		if err != nil {
			malformed := &alertanalysis.MalformedTimestampError{}
			if errors.As(err, &malformed) {
				log.Error().Err(err).Str("alert_id", malformed.AlertID).Msg("alert dataset violates the timestamp format contract")
			} else {
				log.Error().Err(err).Msg("unable to group alerts")
			}
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		b, err := json.Marshal(groups)
		if err != nil {
			log.Error().Err(err).Msg("unable to marshal alert groups to json")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func getAlertDetailsHandler(log zerolog.Logger, svc alertanalysis.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "get-alert-details")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		alertID := chi.URLParam(r, "alertID")
		requestLogger := log.With().Str("alert_id", alertID).Logger()

		details, err := svc.Details(ctx, alertID)
		if errors.Is(err, alerts.ErrAlertNotFound) {
			requestLogger.Debug().Msg("alert not found")
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error().Err(err).Msg("could not fetch alert details")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		b, err := json.Marshal(details)
		if err != nil {
			requestLogger.Error().Err(err).Msg("unable to marshal alert details to json")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}
