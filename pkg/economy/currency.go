package economy

import (
	"strings"

	"github.com/shopspring/decimal"
)

// NoRounding is returned by FractionalDigits when a currency keeps every
// digit of an amount.
const NoRounding = -1

// Currency describes how a currency is named and displayed. The descriptor
// does not change stored precision.
type Currency struct {
	Name             string `json:"name" yaml:"name" mapstructure:"name"`
	NameSingular     string `json:"name_singular" yaml:"singular" mapstructure:"singular"`
	NamePlural       string `json:"name_plural" yaml:"plural" mapstructure:"plural"`
	Symbol           string `json:"symbol,omitempty" yaml:"symbol" mapstructure:"symbol"`
	FractionalDigits int    `json:"fractional_digits" yaml:"fractional_digits" mapstructure:"fractional_digits"`
	SymbolAfter      bool   `json:"symbol_after,omitempty" yaml:"symbol_after" mapstructure:"symbol_after"`
}

// Format renders amount with the currency's symbol or name, thousands
// grouping and decimal digits.
func (c Currency) Format(amount decimal.Decimal) string {
	digits := c.FractionalDigits
	number := formatNumber(amount, digits)

	if c.Symbol != "" {
		if c.SymbolAfter {
			return number + c.Symbol
		}
		if strings.HasPrefix(number, "-") {
			return "-" + c.Symbol + number[1:]
		}
		return c.Symbol + number
	}

	name := c.NamePlural
	if amount.Abs().Equal(decimal.NewFromInt(1)) {
		name = c.NameSingular
	}
	if name == "" {
		return number
	}
	return number + " " + name
}

// FormatPlain renders an amount without any currency knowledge.
func FormatPlain(amount decimal.Decimal) string {
	return formatNumber(amount, NoRounding)
}

func formatNumber(amount decimal.Decimal, digits int) string {
	var s string
	if digits >= 0 {
		s = amount.Round(int32(digits)).StringFixed(int32(digits))
	} else {
		s = amount.String()
	}

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(intPart) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(intPart[:lead])
	for i := lead; i < len(intPart); i += 3 {
		b.WriteByte(',')
		b.WriteString(intPart[i : i+3])
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}
