package domain

import "errors"

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrProductUnavailable = errors.New("product is unavailable")
	ErrQuantityRange      = errors.New("quantity is out of range")

	ErrNoCheckout     = errors.New("no checkout session")
	ErrStepIncomplete = errors.New("current step form is incomplete")
	ErrSubmitInFlight = errors.New("order submission already in flight")
	ErrEmptyCart      = errors.New("cart is empty")

	ErrSubmission   = errors.New("order submission failed")
	ErrUnauthorized = errors.New("unauthorized")
)
