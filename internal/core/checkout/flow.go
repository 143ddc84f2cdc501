package checkout

import (
	"github.com/google/uuid"
	"github.com/niksmo/storefront/internal/core/domain"
)

// Flow is the strictly linear checkout step machine:
// Shipping -> Payment -> Review, plus a terminal submission performed
// by the orchestrating service once the last step is reached.
//
// Flow is not safe for concurrent use, the owning service serializes
// access.
type Flow struct {
	id    uuid.UUID
	steps []domain.CheckoutStep
	idx   int

	forms       domain.CheckoutForms
	shippingSet bool
	paymentSet  bool

	submitting bool
}

func NewFlow() *Flow {
	return &Flow{
		id: uuid.New(),
		steps: []domain.CheckoutStep{
			domain.StepShipping,
			domain.StepPayment,
			domain.StepReview,
		},
	}
}

// ID identifies the session for the flow's lifetime: created when
// checkout begins, gone on submission or abandon.
func (f *Flow) ID() uuid.UUID {
	return f.id
}

func (f *Flow) Step() domain.CheckoutStep {
	return f.steps[f.idx]
}

func (f *Flow) StepIndex() int {
	return f.idx
}

func (f *Flow) StepTitles() []string {
	titles := make([]string, len(f.steps))
	for i, s := range f.steps {
		titles[i] = s.Title()
	}
	return titles
}

func (f *Flow) AtFinal() bool {
	return f.idx == len(f.steps)-1
}

// StepComplete reports whether the current step's form allows
// advancing. The review step has no form and is always complete.
func (f *Flow) StepComplete() bool {
	switch f.Step() {
	case domain.StepShipping:
		return f.shippingSet && f.forms.Shipping.Complete()
	case domain.StepPayment:
		return f.paymentSet && f.forms.Payment.Complete()
	}
	return true
}

// Advance moves to the next step. It refuses to advance past the last
// step and gates on the current step's form.
func (f *Flow) Advance() error {
	if f.AtFinal() {
		return nil
	}
	if !f.StepComplete() {
		return domain.ErrStepIncomplete
	}
	f.idx++
	return nil
}

// Back moves one step back, no-op at the first step.
func (f *Flow) Back() {
	if f.idx > 0 {
		f.idx--
	}
}

func (f *Flow) SetShipping(form domain.ShippingForm) {
	f.forms.Shipping = form
	f.shippingSet = true
}

func (f *Flow) SetPayment(form domain.PaymentForm) {
	f.forms.Payment = form
	f.paymentSet = true
}

func (f *Flow) ShippingAddress() string {
	return f.forms.Shipping.FullAddress()
}

// BeginSubmit marks a submission in flight. A second submission is
// refused until EndSubmit.
func (f *Flow) BeginSubmit() error {
	if f.submitting {
		return domain.ErrSubmitInFlight
	}
	if !f.StepComplete() {
		return domain.ErrStepIncomplete
	}
	f.submitting = true
	return nil
}

func (f *Flow) EndSubmit() {
	f.submitting = false
}
