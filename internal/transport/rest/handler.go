// Package rest provides the HTTP boundary for the product operation dispatcher.
package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/shopfabrik/product-api/internal/auth"
	"github.com/shopfabrik/product-api/internal/dispatch"
	perrors "github.com/shopfabrik/product-api/internal/errors"
	"github.com/shopfabrik/product-api/pkg/web"
)

type Handler struct {
	dispatcher *dispatch.Dispatcher
	logger     *slog.Logger
}

// NewHandler creates a new instance of the dispatch API handler.
func NewHandler(dispatcher *dispatch.Dispatcher, logger *slog.Logger) *Handler {
	return &Handler{
		dispatcher: dispatcher,
		logger:     logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the HTTP routes for the dispatch endpoint.
func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1", func(r chi.Router) {
		r.With(CallerIdentity).Post("/dispatch", h.Dispatch)
	})

	r.Get("/healthz", h.HealthCheck)
}

// Dispatch accepts an operation event and returns the operation's result under
// "data". Unknown operations and swallowed store failures both surface as a
// null result; only authorization and malformed-event failures map to error
// statuses.
func (h *Handler) Dispatch(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)

	var event dispatch.Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}

	caller := auth.FromContext(r.Context())
	mLogger.DebugContext(r.Context(), "Received operation event",
		"operation", event.OperationName, "anonymous", caller == nil)

	result, err := h.dispatcher.Dispatch(r.Context(), event, caller)
	if err != nil {
		switch {
		case errors.Is(err, perrors.ErrUnauthorized):
			mLogger.WarnContext(r.Context(), "Operation not authorized", "operation", event.OperationName)
			web.RespondError(w, mLogger, http.StatusUnauthorized, "Unauthorized")
		case errors.Is(err, perrors.ErrBadRequest):
			mLogger.WarnContext(r.Context(), "Malformed operation event", "operation", event.OperationName, "error", err)
			web.RespondError(w, mLogger, http.StatusBadRequest, err.Error())
		default:
			mLogger.ErrorContext(r.Context(), "Dispatch failed", "operation", event.OperationName, "error", err)
			web.RespondError(w, mLogger, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	web.RespondJSON(w, mLogger, http.StatusOK, map[string]any{"data": result})
}

// HealthCheck is a simple health check endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// loggerWithReqID creates a logger with the request ID from the context.
func (h *Handler) loggerWithReqID(r *http.Request) *slog.Logger {
	reqID := middleware.GetReqID(r.Context())
	return h.logger.With("request_id", reqID)
}
