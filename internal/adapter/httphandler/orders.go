package httphandler

import (
	"log/slog"
	"net/http"

	"github.com/niksmo/storefront/internal/core/port"
)

// GET /v1/orders               Authorization: Bearer (200 OK, 401)
// GET /v1/analytics/dashboard  Authorization: Bearer (200 OK, 401)

type OrdersHandler struct {
	orders port.OrderHistoryProvider
}

func RegisterOrders(mux *http.ServeMux, orders port.OrderHistoryProvider) {
	h := OrdersHandler{orders}
	mux.HandleFunc("GET /v1/orders", h.GetOrders)
}

func (h OrdersHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	const op = "OrdersHandler.GetOrders"
	log := slog.With("op", op)

	os, err := h.orders.Orders(r.Context(), bearerToken(r))
	if err != nil {
		respondErr(w, log, err)
		return
	}

	resp := make([]Order, 0, len(os))
	for _, o := range os {
		resp = append(resp, toOrder(o))
	}
	writeJSON(w, http.StatusOK, resp)
}

// The dashboard is admin-only, the caller's token is verified first.
type AnalyticsHandler struct {
	dashboard port.DashboardProvider
	auth      port.Authenticator
}

func RegisterAnalytics(
	mux *http.ServeMux, dashboard port.DashboardProvider, auth port.Authenticator,
) {
	h := AnalyticsHandler{dashboard, auth}
	mux.HandleFunc("GET /v1/analytics/dashboard", h.GetDashboard)
}

func (h AnalyticsHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	const op = "AnalyticsHandler.GetDashboard"
	log := slog.With("op", op)

	token := bearerToken(r)

	u, err := h.auth.Verify(r.Context(), token)
	if err != nil {
		respondErr(w, log, err)
		return
	}
	if !u.IsAdmin() {
		http.Error(w, "forbidden", http.StatusForbidden)
		log.Warn("request refused", "user", u.Email, "role", u.Role)
		return
	}

	d, err := h.dashboard.Dashboard(r.Context(), token)
	if err != nil {
		respondErr(w, log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDashboard(d))
}
