// Package currency renders price labels for the catalog and booking views.
//
// Formatting is deliberately literal: a configurable symbol prefix and the
// amount with no thousands separators and no locale awareness. "R250" is
// what the receipt printer gets.
package currency

import (
	"fmt"

	"github.com/veldworks/boeka-cli/internal/core/domain"
)

// Formatter renders amounts in cents as price labels.
type Formatter struct {
	symbol string
}

// NewFormatter creates a formatter with the given symbol prefix.
// An empty symbol falls back to the default.
func NewFormatter(symbol string) *Formatter {
	if symbol == "" {
		symbol = domain.DefaultCurrencySymbol
	}
	return &Formatter{symbol: symbol}
}

// Symbol returns the configured symbol prefix.
func (f *Formatter) Symbol() string {
	return f.symbol
}

// Format renders an amount in cents as a price label.
// Whole amounts drop the cents suffix: 25000 -> "R250", 25050 -> "R250.50".
func (f *Formatter) Format(cents int64) string {
	negative := cents < 0
	if negative {
		cents = -cents
	}

	sign := ""
	if negative {
		sign = "-"
	}

	if cents%100 == 0 {
		return fmt.Sprintf("%s%s%d", sign, f.symbol, cents/100)
	}
	return fmt.Sprintf("%s%s%d.%02d", sign, f.symbol, cents/100, cents%100)
}
