// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

package metric

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// DefaultCurrencySymbol prefixes currency values when no symbol is configured.
const DefaultCurrencySymbol = "Rp"

// FormatValue renders v in the conventional notation for unit.
//
//	percent   92%, 83.5%
//	currency  Rp 20,000,000
//	count     1,153
//	score     4.0
//	ratio     1.88
func FormatValue(v float64, unit Unit, currencySymbol string) string {
	switch unit {
	case UnitPercent:
		return humanize.Ftoa(round(v, 1)) + "%"
	case UnitCurrency:
		if currencySymbol == "" {
			currencySymbol = DefaultCurrencySymbol
		}
		return currencySymbol + " " + humanize.Commaf(math.Round(v))
	case UnitCount:
		return humanize.Comma(int64(math.Round(v)))
	case UnitScore:
		return fmt.Sprintf("%.1f", v)
	case UnitRatio:
		return fmt.Sprintf("%.2f", v)
	default:
		return humanize.Ftoa(v)
	}
}

// FormatChange renders a signed change percentage such as "+12%" or "-3.5%".
func FormatChange(pct float64) string {
	r := round(pct, 1)
	if r == 0 {
		// Collapses -0 from small negative changes.
		r = 0
	}
	s := humanize.Ftoa(r) + "%"
	if r > 0 {
		return "+" + s
	}
	return s
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
