package httphandler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/niksmo/storefront/internal/adapter/httphandler"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCheckout records which form setter was hit and serves one view.
type stubCheckout struct {
	view        domain.CheckoutView
	err         error
	shippingSet *bool
	paymentSet  *bool
}

func (s stubCheckout) StartCheckout(
	context.Context, string,
) (domain.CheckoutView, error) {
	return s.view, s.err
}

func (s stubCheckout) Checkout(
	context.Context, string,
) (domain.CheckoutView, error) {
	return s.view, s.err
}

func (s stubCheckout) NextStep(
	context.Context, string,
) (domain.CheckoutView, error) {
	return s.view, s.err
}

func (s stubCheckout) PrevStep(
	context.Context, string,
) (domain.CheckoutView, error) {
	return s.view, s.err
}

func (s stubCheckout) SetShippingForm(
	_ context.Context, _ string, _ domain.ShippingForm,
) (domain.CheckoutView, error) {
	if s.shippingSet != nil {
		*s.shippingSet = true
	}
	return s.view, s.err
}

func (s stubCheckout) SetPaymentForm(
	_ context.Context, _ string, _ domain.PaymentForm,
) (domain.CheckoutView, error) {
	if s.paymentSet != nil {
		*s.paymentSet = true
	}
	return s.view, s.err
}

func (s stubCheckout) AbandonCheckout(context.Context, string) error {
	return s.err
}

func checkoutMux(s stubCheckout) *http.ServeMux {
	mux := http.NewServeMux()
	httphandler.RegisterCheckout(mux, s)
	return mux
}

func shippingView() domain.CheckoutView {
	return domain.CheckoutView{
		CheckoutID: "7b5ec119-6b07-4d5c-9e52-7e2f2e12a001",
		StepTitles: []string{"Shipping", "Payment", "Review"},
		StepIndex:  0,
		StepTitle:  "Shipping",
		Total:      decimal.RequireFromString("59.98"),
	}
}

func doCheckout(
	mux *http.ServeMux, method, path, body string,
) *httptest.ResponseRecorder {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	r.Header.Set("X-Owner-ID", "owner-1")
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, r)
	return rr
}

func TestCheckoutHandler(t *testing.T) {
	t.Run("Start", func(t *testing.T) {
		mux := checkoutMux(stubCheckout{view: shippingView()})

		rr := doCheckout(mux, http.MethodPost, "/v1/checkout", "")
		require.Equal(t, http.StatusCreated, rr.Code)

		var out struct {
			CheckoutID string   `json:"checkout_id"`
			Steps      []string `json:"steps"`
			StepIndex  int      `json:"step_index"`
			StepTitle  string   `json:"step_title"`
		}
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&out))
		assert.NotEmpty(t, out.CheckoutID)
		assert.Equal(t, []string{"Shipping", "Payment", "Review"}, out.Steps)
		assert.Equal(t, 0, out.StepIndex)
		assert.Equal(t, "Shipping", out.StepTitle)
	})

	t.Run("StartEmptyCart", func(t *testing.T) {
		mux := checkoutMux(stubCheckout{err: domain.ErrEmptyCart})

		rr := doCheckout(mux, http.MethodPost, "/v1/checkout", "")
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})

	t.Run("ViewWithoutFlow", func(t *testing.T) {
		mux := checkoutMux(stubCheckout{err: domain.ErrNoCheckout})

		rr := doCheckout(mux, http.MethodGet, "/v1/checkout", "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("PutShippingForm", func(t *testing.T) {
		var shippingSet, paymentSet bool
		mux := checkoutMux(stubCheckout{
			view:        shippingView(),
			shippingSet: &shippingSet,
			paymentSet:  &paymentSet,
		})

		rr := doCheckout(mux, http.MethodPut, "/v1/checkout/form",
			`{"shipping":{"full_name":"Jane Roe","address":"1 Main St",
			"city":"Springfield","postal_code":"12345"}}`)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, shippingSet)
		assert.False(t, paymentSet)
	})

	t.Run("PutPaymentForm", func(t *testing.T) {
		var paymentSet bool
		mux := checkoutMux(stubCheckout{
			view:       shippingView(),
			paymentSet: &paymentSet,
		})

		rr := doCheckout(mux, http.MethodPut, "/v1/checkout/form",
			`{"payment":{"card_number":"4242","expiry":"12/30","cvv":"123"}}`)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, paymentSet)
	})

	t.Run("PutEmptyForm", func(t *testing.T) {
		mux := checkoutMux(stubCheckout{view: shippingView()})

		rr := doCheckout(mux, http.MethodPut, "/v1/checkout/form", `{}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("NextIncompleteStep", func(t *testing.T) {
		mux := checkoutMux(stubCheckout{err: domain.ErrStepIncomplete})

		rr := doCheckout(mux, http.MethodPost, "/v1/checkout/next", "")
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("NextSubmits", func(t *testing.T) {
		view := shippingView()
		view.StepIndex = 2
		view.StepTitle = "Review"
		view.Submitted = true
		view.OrderID = "ORD-1001"
		mux := checkoutMux(stubCheckout{view: view})

		rr := doCheckout(mux, http.MethodPost, "/v1/checkout/next", "")
		require.Equal(t, http.StatusOK, rr.Code)

		var out struct {
			Submitted bool   `json:"submitted"`
			OrderID   string `json:"order_id"`
		}
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&out))
		assert.True(t, out.Submitted)
		assert.Equal(t, "ORD-1001", out.OrderID)
	})

	t.Run("SubmissionFailure", func(t *testing.T) {
		mux := checkoutMux(stubCheckout{err: domain.ErrSubmission})

		rr := doCheckout(mux, http.MethodPost, "/v1/checkout/next", "")
		assert.Equal(t, http.StatusBadGateway, rr.Code)
	})

	t.Run("Abandon", func(t *testing.T) {
		mux := checkoutMux(stubCheckout{})

		rr := doCheckout(mux, http.MethodDelete, "/v1/checkout", "")
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}
