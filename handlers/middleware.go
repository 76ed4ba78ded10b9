package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"mime"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"choicedge/services"
)

type contextKey string

const EstimateKey contextKey = "estimate"

// GetEstimate extracts the estimate document stored by EstimateMiddleware.
func GetEstimate(r *http.Request) (services.EstimateDocument, bool) {
	doc, ok := r.Context().Value(EstimateKey).(services.EstimateDocument)
	return doc, ok
}

// EstimateMiddleware resolves the estimate for the request and stores it in
// the request context. A previously computed document posted in the
// "estimate" form field is reused as long as its amounts reconcile; otherwise
// the wizard state (JSON body or "input" form field) is priced afresh.
// Requests without either are redirected to the entry point.
func EstimateMiddleware(est *services.Estimator) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		doc, err := resolveEstimate(e.Request, est)
		switch {
		case errors.Is(err, services.ErrNoInput):
			log.Printf("estimate: no wizard state on %s %s, redirecting", e.Request.Method, e.Request.URL.Path)
			return e.Redirect(http.StatusFound, "/")
		case err != nil:
			log.Printf("estimate: %v", err)
			return e.String(http.StatusBadRequest, "Invalid estimate input")
		}

		ctx := context.WithValue(e.Request.Context(), EstimateKey, doc)
		e.Request = e.Request.WithContext(ctx)

		return e.Next()
	}
}

func resolveEstimate(r *http.Request, est *services.Estimator) (services.EstimateDocument, error) {
	if isJSONRequest(r) {
		state, err := services.DecodeWizardState(r.Body)
		if err != nil {
			return services.EstimateDocument{}, err
		}
		return est.Estimate(state.ProjectInput()), nil
	}

	if raw := r.FormValue("estimate"); raw != "" {
		var doc services.EstimateDocument
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			return services.EstimateDocument{}, fmt.Errorf("decode posted estimate: %w", err)
		}
		if err := doc.Validate(); err != nil {
			return services.EstimateDocument{}, fmt.Errorf("posted estimate rejected: %w", err)
		}
		return doc, nil
	}

	state, err := services.ParseWizardState([]byte(r.FormValue("input")))
	if err != nil {
		return services.EstimateDocument{}, err
	}
	return est.Estimate(state.ProjectInput()), nil
}

func isJSONRequest(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}
