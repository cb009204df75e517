package tax

import (
	"math"
	"strings"
)

// Currency selects the unit names for AmountInWords.
type Currency string

const (
	CurrencyINR Currency = "INR"
	CurrencyUSD Currency = "USD"
)

var onesWords = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tensWords = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// AmountInWords converts an amount to words using the Indian numbering
// system (lakh/crore grouping, not million/billion). The integer part is
// converted first, paise are appended as "and N Paise" when non-zero, and
// the result always ends in "Only". Zero converts to "Zero Only".
func AmountInWords(amount float64, currency Currency) string {
	if amount == 0 {
		return "Zero Only"
	}

	rupees := int64(math.Floor(amount))
	paise := int64(math.Round((amount - float64(rupees)) * 100))

	var b strings.Builder
	if rupees > 0 {
		b.WriteString(strings.TrimSpace(bandedWords(rupees)))
		if currency == CurrencyUSD {
			b.WriteString(" Dollars")
		} else {
			b.WriteString(" Rupees")
		}
	}
	if paise > 0 {
		if rupees > 0 {
			b.WriteString(" and ")
		}
		b.WriteString(strings.TrimSpace(bandedWords(paise)))
		if currency == CurrencyUSD {
			b.WriteString(" Cents")
		} else {
			b.WriteString(" Paise")
		}
	}
	b.WriteString(" Only")
	return strings.TrimSpace(b.String())
}

// bandedWords recurses through the Indian magnitude bands.
func bandedWords(n int64) string {
	if n == 0 {
		return ""
	}
	switch {
	case n >= 10000000:
		return bandedWords(n/10000000) + " Crore " + bandedWords(n%10000000)
	case n >= 100000:
		return bandedWords(n/100000) + " Lakh " + bandedWords(n%100000)
	case n >= 1000:
		return belowThousand(n/1000) + " Thousand " + bandedWords(n%1000)
	default:
		return belowThousand(n)
	}
}

func belowThousand(n int64) string {
	if n == 0 {
		return ""
	}
	if n < 20 {
		return onesWords[n]
	}
	if n < 100 {
		s := tensWords[n/10]
		if n%10 != 0 {
			s += " " + onesWords[n%10]
		}
		return s
	}
	s := onesWords[n/100] + " Hundred"
	if n%100 != 0 {
		s += " " + belowThousand(n%100)
	}
	return s
}
