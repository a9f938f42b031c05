package model

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidPrice is returned when a price cannot be read as a non-negative amount.
var ErrInvalidPrice = errors.New("invalid price")

// ParsePrice reads a pt-BR amount such as "1.234,5" or "R$ 30". Dots are thousands separators.
func ParsePrice(input string) (decimal.Decimal, error) {
	s := strings.TrimSpace(input)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidPrice
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.Replace(s, ",", ".", 1)

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidPrice
	}
	if d.IsNegative() {
		return decimal.Zero, ErrInvalidPrice
	}
	return d, nil
}

// FormatPrice renders d with two decimals in pt-BR notation, e.g. 1234.5 -> "1.234,50".
func FormatPrice(d decimal.Decimal) string {
	fixed := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return sign + b.String() + "," + frac
}

// NormalizePrice parses input and re-renders it in the format sent to the backend.
func NormalizePrice(input string) (string, error) {
	d, err := ParsePrice(input)
	if err != nil {
		return "", err
	}
	return FormatPrice(d), nil
}
