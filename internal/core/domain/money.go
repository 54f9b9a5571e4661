package domain

import (
	"fmt"
	"strings"
)

// Money represents a currency amount as an integer count of minor units
// (e.g. cents) plus an ISO 4217 currency code. All arithmetic and
// aggregation happens on minor units; floating point appears only in
// display formatting at the presentation boundary.
type Money struct {
	Cents    int64
	Currency string
}

// NewMoney constructs a Money value from minor units.
func NewMoney(cents int64, currency string) Money {
	return Money{Cents: cents, Currency: strings.ToUpper(currency)}
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool { return m.Cents > 0 }

// SameCurrency reports whether both amounts share a currency code.
func (m Money) SameCurrency(o Money) bool { return m.Currency == o.Currency }

// Add returns the sum of two amounts. Mixing currencies is a programming
// error surfaced as ErrInvalidAmount.
func (m Money) Add(o Money) (Money, error) {
	if !m.SameCurrency(o) {
		return Money{}, fmt.Errorf("%w: cannot add %s to %s", ErrInvalidAmount, o.Currency, m.Currency)
	}
	return Money{Cents: m.Cents + o.Cents, Currency: m.Currency}, nil
}

// Sub returns m minus o. A negative result is rejected with ErrUnderflow
// since ledger balances never go below zero.
func (m Money) Sub(o Money) (Money, error) {
	if !m.SameCurrency(o) {
		return Money{}, fmt.Errorf("%w: cannot subtract %s from %s", ErrInvalidAmount, o.Currency, m.Currency)
	}
	if o.Cents > m.Cents {
		return Money{}, fmt.Errorf("%w: %d - %d", ErrUnderflow, m.Cents, o.Cents)
	}
	return Money{Cents: m.Cents - o.Cents, Currency: m.Currency}, nil
}

// MulScalar scales the amount by an integer factor, used for fee
// calculations. Negative factors are rejected.
func (m Money) MulScalar(n int64) (Money, error) {
	if n < 0 {
		return Money{}, fmt.Errorf("%w: negative factor %d", ErrInvalidAmount, n)
	}
	return Money{Cents: m.Cents * n, Currency: m.Currency}, nil
}

// GTE reports whether m is greater than or equal to o. Comparing across
// currencies always returns false.
func (m Money) GTE(o Money) bool {
	return m.SameCurrency(o) && m.Cents >= o.Cents
}

// String renders the amount in major units for display, e.g. "ZAR 150.00".
func (m Money) String() string {
	sign := ""
	cents := m.Cents
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s %s%d.%02d", m.Currency, sign, cents/100, cents%100)
}

// ParseMajor converts a decimal string in major units ("150", "150.5",
// "150.50") into minor units. More than two fractional digits or any
// non-numeric input fails with ErrInvalidAmount. Negative amounts are
// rejected; transactions are strictly positive and balances non-negative.
func ParseMajor(s, currency string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, fmt.Errorf("%w: empty amount", ErrInvalidAmount)
	}
	if strings.HasPrefix(s, "-") {
		return Money{}, fmt.Errorf("%w: negative amount %q", ErrInvalidAmount, s)
	}
	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if whole == "" && frac == "" {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if len(frac) > 2 {
		return Money{}, fmt.Errorf("%w: more than 2 fractional digits in %q", ErrInvalidAmount, s)
	}
	// 15 whole digits keep cents comfortably inside int64; anything
	// longer would wrap silently in the digit loop.
	if len(whole) > 15 {
		return Money{}, fmt.Errorf("%w: amount %q out of range", ErrInvalidAmount, s)
	}
	var cents int64
	for _, r := range whole {
		if r < '0' || r > '9' {
			return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
		}
		cents = cents*10 + int64(r-'0')
	}
	cents *= 100
	mult := int64(10)
	for _, r := range frac {
		if r < '0' || r > '9' {
			return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
		}
		cents += int64(r-'0') * mult
		mult /= 10
	}
	return NewMoney(cents, currency), nil
}
