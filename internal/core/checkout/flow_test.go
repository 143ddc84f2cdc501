package checkout_test

import (
	"testing"

	"github.com/niksmo/storefront/internal/core/checkout"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shippingForm() domain.ShippingForm {
	return domain.ShippingForm{
		FullName:   "John Doe",
		Address:    "1 Main Street",
		City:       "Springfield",
		PostalCode: "12345",
	}
}

func paymentForm() domain.PaymentForm {
	return domain.PaymentForm{
		CardNumber: "4242424242424242",
		Expiry:     "12/30",
		CVV:        "123",
	}
}

func completedFlow(t *testing.T) *checkout.Flow {
	t.Helper()
	f := checkout.NewFlow()
	f.SetShipping(shippingForm())
	require.NoError(t, f.Advance())
	f.SetPayment(paymentForm())
	require.NoError(t, f.Advance())
	return f
}

func TestFlow(t *testing.T) {
	t.Run("StartsAtFirstStep", func(t *testing.T) {
		f := checkout.NewFlow()

		assert.Equal(t, 0, f.StepIndex())
		assert.Equal(t, domain.StepShipping, f.Step())
		assert.Equal(t, []string{"Shipping", "Payment", "Review"}, f.StepTitles())
	})

	t.Run("BackAtFirstStepIsNoop", func(t *testing.T) {
		f := checkout.NewFlow()
		f.Back()
		assert.Equal(t, 0, f.StepIndex())
	})

	t.Run("AdvanceGatesOnShippingForm", func(t *testing.T) {
		f := checkout.NewFlow()

		err := f.Advance()
		require.ErrorIs(t, err, domain.ErrStepIncomplete)
		assert.Equal(t, 0, f.StepIndex())

		f.SetShipping(domain.ShippingForm{FullName: "John Doe"})
		err = f.Advance()
		require.ErrorIs(t, err, domain.ErrStepIncomplete)

		f.SetShipping(shippingForm())
		require.NoError(t, f.Advance())
		assert.Equal(t, 1, f.StepIndex())
	})

	t.Run("AdvanceGatesOnPaymentForm", func(t *testing.T) {
		f := checkout.NewFlow()
		f.SetShipping(shippingForm())
		require.NoError(t, f.Advance())

		err := f.Advance()
		require.ErrorIs(t, err, domain.ErrStepIncomplete)

		f.SetPayment(paymentForm())
		require.NoError(t, f.Advance())
		assert.Equal(t, 2, f.StepIndex())
		assert.True(t, f.AtFinal())
	})

	t.Run("AdvanceNeverPassesLastStep", func(t *testing.T) {
		f := completedFlow(t)

		require.NoError(t, f.Advance())
		assert.Equal(t, 2, f.StepIndex())
	})

	t.Run("BackWalksToFirstStep", func(t *testing.T) {
		f := completedFlow(t)

		f.Back()
		assert.Equal(t, 1, f.StepIndex())
		f.Back()
		assert.Equal(t, 0, f.StepIndex())
		f.Back()
		assert.Equal(t, 0, f.StepIndex())
	})

	t.Run("SubmitRefusesReentry", func(t *testing.T) {
		f := completedFlow(t)

		require.NoError(t, f.BeginSubmit())
		err := f.BeginSubmit()
		require.ErrorIs(t, err, domain.ErrSubmitInFlight)

		f.EndSubmit()
		require.NoError(t, f.BeginSubmit())
	})

	t.Run("ShippingAddressComesFromForm", func(t *testing.T) {
		f := checkout.NewFlow()
		f.SetShipping(shippingForm())

		assert.Equal(
			t, "John Doe, 1 Main Street, Springfield 12345",
			f.ShippingAddress(),
		)
	})

	t.Run("FlowsHaveDistinctIDs", func(t *testing.T) {
		assert.NotEqual(t, checkout.NewFlow().ID(), checkout.NewFlow().ID())
	})
}
