package domain

import "github.com/shopspring/decimal"

// Money is an exact decimal amount with an ISO 4217 currency code.
type Money struct {
	Amount   decimal.Decimal
	Currency string
}

func NewMoney(amount string, currency string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, err
	}
	return Money{Amount: d, Currency: currency}, nil
}

func (m Money) MulInt(n int) Money {
	return Money{
		Amount:   m.Amount.Mul(decimal.NewFromInt(int64(n))),
		Currency: m.Currency,
	}
}

func (m Money) Equal(o Money) bool {
	return m.Currency == o.Currency && m.Amount.Equal(o.Amount)
}
