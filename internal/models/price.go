package models

import (
	"strconv"
	"strings"
)

// PriceKind distinguishes a fixed offering price from a low-high band.
type PriceKind int

const (
	PriceSingle PriceKind = iota
	PriceRange
)

// Price is an offering price, either a single value or a range.
// For a single price Low == High.
type Price struct {
	Kind PriceKind
	Low  float64
	High float64
}

// ForValuation returns the price used when estimating offering size:
// the high end of a range, or the single price itself.
func (p Price) ForValuation() float64 {
	return p.High
}

// ParsePrice parses a raw provider price string such as "25",
// "$18.00-20.00" or "18-20". It reports ok=false for empty, dash-only
// or otherwise unparsable input; callers are expected to drop the
// record rather than fail the run.
func ParsePrice(raw string) (Price, bool) {
	s := strings.TrimSpace(strings.ReplaceAll(raw, "$", ""))
	if s == "" || s == "-" {
		return Price{}, false
	}

	if strings.Contains(s, "-") {
		var parts []string
		for _, p := range strings.Split(s, "-") {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		if len(parts) >= 2 {
			low, err1 := strconv.ParseFloat(parts[0], 64)
			high, err2 := strconv.ParseFloat(parts[1], 64)
			if err1 != nil || err2 != nil {
				return Price{}, false
			}
			return Price{Kind: PriceRange, Low: low, High: high}, true
		}
		if len(parts) == 1 {
			v, err := strconv.ParseFloat(parts[0], 64)
			if err != nil {
				return Price{}, false
			}
			return Price{Kind: PriceSingle, Low: v, High: v}, true
		}
		return Price{}, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Price{}, false
	}
	return Price{Kind: PriceSingle, Low: v, High: v}, true
}
