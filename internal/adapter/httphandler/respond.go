package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/niksmo/storefront/internal/core/domain"
)

const ownerHeader = "X-Owner-ID"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response body", "err", err)
	}
}

func owner(w http.ResponseWriter, r *http.Request) (string, bool) {
	o := r.Header.Get(ownerHeader)
	if o == "" {
		http.Error(w, "missing "+ownerHeader+" header", http.StatusBadRequest)
		return "", false
	}
	return o, true
}

func bearerToken(r *http.Request) string {
	return strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
}

// respondErr maps domain failures onto the HTTP surface. Unknown
// errors stay opaque to the client.
func respondErr(w http.ResponseWriter, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrNoCheckout):
		http.Error(w, "not found", http.StatusNotFound)

	case errors.Is(err, domain.ErrQuantityRange),
		errors.Is(err, domain.ErrProductUnavailable),
		errors.Is(err, domain.ErrEmptyCart):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)

	case errors.Is(err, domain.ErrStepIncomplete),
		errors.Is(err, domain.ErrSubmitInFlight):
		http.Error(w, err.Error(), http.StatusConflict)

	case errors.Is(err, domain.ErrSubmission):
		http.Error(w, "failed to place order", http.StatusBadGateway)

	case errors.Is(err, domain.ErrUnauthorized):
		http.Error(w, "unauthorized", http.StatusUnauthorized)

	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
		log.Error("unexpected failure", "err", err)
		return
	}
	log.Warn("request refused", "err", err)
}
