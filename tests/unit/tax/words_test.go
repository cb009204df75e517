package tax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"billforge/internal/tax"
)

func TestAmountInWords_INR(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "Zero Only"},
		{1, "One Rupees Only"},
		{19, "Nineteen Rupees Only"},
		{20, "Twenty Rupees Only"},
		{47, "Forty Seven Rupees Only"},
		{100, "One Hundred Rupees Only"},
		{567, "Five Hundred Sixty Seven Rupees Only"},
		{1000, "One Thousand Rupees Only"},
		{47040, "Forty Seven Thousand Forty Rupees Only"},
		{100000, "One Lakh Rupees Only"},
		{1234567, "Twelve Lakh Thirty Four Thousand Five Hundred Sixty Seven Rupees Only"},
		{10000000, "One Crore Rupees Only"},
		{12345678, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight Rupees Only"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, tax.AmountInWords(c.amount, tax.CurrencyINR), "amount %v", c.amount)
	}
}

func TestAmountInWords_Paise(t *testing.T) {
	assert.Equal(t, "One Hundred Rupees and Fifty Paise Only", tax.AmountInWords(100.50, tax.CurrencyINR))
	assert.Equal(t, "Twenty Five Paise Only", tax.AmountInWords(0.25, tax.CurrencyINR))
}

func TestAmountInWords_USD(t *testing.T) {
	assert.Equal(t, "One Lakh Dollars Only", tax.AmountInWords(100000, tax.CurrencyUSD))
	assert.Equal(t, "Ten Dollars and Five Cents Only", tax.AmountInWords(10.05, tax.CurrencyUSD))
}
