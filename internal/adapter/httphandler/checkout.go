package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

// POST   /v1/checkout        begin a flow at the first step
// GET    /v1/checkout        current view
// PUT    /v1/checkout/form   JSON {"shipping": {...}} or {"payment": {...}}
// POST   /v1/checkout/next   advance, or submit at the last step
// POST   /v1/checkout/back   one step back
// DELETE /v1/checkout        abandon the flow

type checkoutService interface {
	port.CheckoutStarter
	port.CheckoutViewer
	port.CheckoutNavigator
	port.CheckoutFormSetter
	port.CheckoutAbandoner
}

type CheckoutHandler struct {
	svc checkoutService
}

func RegisterCheckout(mux *http.ServeMux, svc checkoutService) {
	h := CheckoutHandler{svc}
	mux.HandleFunc("POST /v1/checkout", h.Start)
	mux.HandleFunc("GET /v1/checkout", h.View)
	mux.HandleFunc("PUT /v1/checkout/form", h.PutForm)
	mux.HandleFunc("POST /v1/checkout/next", h.Next)
	mux.HandleFunc("POST /v1/checkout/back", h.Back)
	mux.HandleFunc("DELETE /v1/checkout", h.Abandon)
}

func (h CheckoutHandler) Start(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.Start"
	log := slog.With("op", op)

	o, ok := owner(w, r)
	if !ok {
		return
	}

	v, err := h.svc.StartCheckout(r.Context(), o)
	if err != nil {
		respondErr(w, log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCheckoutView(v))
	log.Info("checkout started")
}

func (h CheckoutHandler) View(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.View"
	log := slog.With("op", op)

	o, ok := owner(w, r)
	if !ok {
		return
	}

	v, err := h.svc.Checkout(r.Context(), o)
	if err != nil {
		respondErr(w, log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCheckoutView(v))
}

func (h CheckoutHandler) PutForm(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.PutForm"
	log := slog.With("op", op)

	o, ok := owner(w, r)
	if !ok {
		return
	}

	var req StepFormReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	var (
		v   domain.CheckoutView
		err error
	)
	switch {
	case req.Shipping != nil:
		v, err = h.svc.SetShippingForm(
			r.Context(), o, domain.ShippingForm(*req.Shipping),
		)
	case req.Payment != nil:
		v, err = h.svc.SetPaymentForm(
			r.Context(), o, domain.PaymentForm(*req.Payment),
		)
	default:
		http.Error(w, "shipping or payment form required", http.StatusBadRequest)
		return
	}
	if err != nil {
		respondErr(w, log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCheckoutView(v))
}

func (h CheckoutHandler) Next(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.Next"
	log := slog.With("op", op)

	o, ok := owner(w, r)
	if !ok {
		return
	}

	v, err := h.svc.NextStep(r.Context(), o)
	if err != nil {
		respondErr(w, log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCheckoutView(v))
	if v.Submitted {
		log.Info("order submitted", "orderID", v.OrderID)
	}
}

func (h CheckoutHandler) Back(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.Back"
	log := slog.With("op", op)

	o, ok := owner(w, r)
	if !ok {
		return
	}

	v, err := h.svc.PrevStep(r.Context(), o)
	if err != nil {
		respondErr(w, log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCheckoutView(v))
}

func (h CheckoutHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.Abandon"
	log := slog.With("op", op)

	o, ok := owner(w, r)
	if !ok {
		return
	}

	if err := h.svc.AbandonCheckout(r.Context(), o); err != nil {
		respondErr(w, log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
