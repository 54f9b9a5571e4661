package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMajor(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    int64
		wantErr bool
	}{
		{name: "whole units", in: "150", want: 15000},
		{name: "one fractional digit", in: "150.5", want: 15050},
		{name: "two fractional digits", in: "150.50", want: 15050},
		{name: "zero", in: "0", want: 0},
		{name: "leading dot", in: ".75", want: 75},
		{name: "whitespace trimmed", in: " 12.00 ", want: 1200},
		{name: "three fractional digits", in: "1.005", wantErr: true},
		{name: "negative", in: "-5", wantErr: true},
		{name: "letters", in: "12a", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "bare dot", in: ".", wantErr: true},
		{name: "15 digits ok", in: "999999999999999", want: 99999999999999900},
		{name: "16 digits overflow", in: "9999999999999999", wantErr: true},
		{name: "wrapping digit string", in: "99999999999999999999999999", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := ParseMajor(tc.in, "zar")
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, m.Cents)
			assert.Equal(t, "ZAR", m.Currency)
		})
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a := NewMoney(900, "ZAR")
	b := NewMoney(150, "ZAR")

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, int64(1050), sum.Cents)

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, int64(750), diff.Cents)

	_, err = b.Sub(a)
	assert.ErrorIs(t, err, ErrUnderflow)

	_, err = a.Add(NewMoney(100, "USD"))
	assert.ErrorIs(t, err, ErrInvalidAmount)

	fee, err := b.MulScalar(3)
	require.NoError(t, err)
	assert.Equal(t, int64(450), fee.Cents)

	_, err = b.MulScalar(-1)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestMoneyCompare(t *testing.T) {
	goal := NewMoney(100000, "ZAR")
	assert.True(t, NewMoney(100000, "ZAR").GTE(goal))
	assert.True(t, NewMoney(100001, "ZAR").GTE(goal))
	assert.False(t, NewMoney(99999, "ZAR").GTE(goal))
	// cross-currency comparison never holds
	assert.False(t, NewMoney(100000, "USD").GTE(goal))
}

func TestMoneyString(t *testing.T) {
	assert.Equal(t, "ZAR 150.00", NewMoney(15000, "ZAR").String())
	assert.Equal(t, "ZAR 0.05", NewMoney(5, "ZAR").String())
	assert.Equal(t, "ZAR -1.50", NewMoney(-150, "ZAR").String())
}
