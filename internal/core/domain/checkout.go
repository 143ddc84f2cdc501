package domain

import "github.com/shopspring/decimal"

type CheckoutStep int

const (
	StepShipping CheckoutStep = iota
	StepPayment
	StepReview
)

func (s CheckoutStep) Title() string {
	switch s {
	case StepShipping:
		return "Shipping"
	case StepPayment:
		return "Payment"
	case StepReview:
		return "Review"
	}
	return "Unknown"
}

type (
	ShippingForm struct {
		FullName   string
		Address    string
		City       string
		PostalCode string
	}

	// PaymentForm is decorative: the fields are collected and checked
	// for presence, no gateway call or tokenization exists.
	PaymentForm struct {
		CardNumber string
		Expiry     string
		CVV        string
	}

	CheckoutForms struct {
		Shipping ShippingForm
		Payment  PaymentForm
	}
)

func (f ShippingForm) Complete() bool {
	return f.FullName != "" && f.Address != "" &&
		f.City != "" && f.PostalCode != ""
}

func (f ShippingForm) FullAddress() string {
	return f.FullName + ", " + f.Address + ", " + f.City + " " + f.PostalCode
}

func (f PaymentForm) Complete() bool {
	return f.CardNumber != "" && f.Expiry != "" && f.CVV != ""
}

// CheckoutView is the read model handed to presentation code.
type CheckoutView struct {
	CheckoutID string
	StepTitles []string
	StepIndex  int
	StepTitle  string
	CanGoBack  bool
	Total      decimal.Decimal
	Submitted  bool
	OrderID    string
}
