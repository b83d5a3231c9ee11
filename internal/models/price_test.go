package models

import "testing"

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Price
		ok   bool
	}{
		{name: "single price", raw: "25", want: Price{Kind: PriceSingle, Low: 25, High: 25}, ok: true},
		{name: "single price with dollar sign", raw: "$25.50", want: Price{Kind: PriceSingle, Low: 25.5, High: 25.5}, ok: true},
		{name: "range", raw: "18.00-20.00", want: Price{Kind: PriceRange, Low: 18, High: 20}, ok: true},
		{name: "range with dollar signs", raw: "$18-$20", want: Price{Kind: PriceRange, Low: 18, High: 20}, ok: true},
		{name: "range with spaces", raw: " 18 - 20 ", want: Price{Kind: PriceRange, Low: 18, High: 20}, ok: true},
		{name: "trailing dash degenerates to single", raw: "20-", want: Price{Kind: PriceSingle, Low: 20, High: 20}, ok: true},
		{name: "empty", raw: "", ok: false},
		{name: "dash only", raw: "-", ok: false},
		{name: "whitespace", raw: "   ", ok: false},
		{name: "garbage", raw: "TBD", ok: false},
		{name: "garbage range", raw: "low-high", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParsePrice(tt.raw)
			if ok != tt.ok {
				t.Fatalf("ParsePrice(%q) ok = %v, want %v", tt.raw, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParsePrice(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestPriceForValuation(t *testing.T) {
	single, _ := ParsePrice("25")
	if got := single.ForValuation(); got != 25 {
		t.Errorf("single price ForValuation() = %v, want 25", got)
	}

	ranged, _ := ParsePrice("18-20")
	if got := ranged.ForValuation(); got != 20 {
		t.Errorf("range price ForValuation() = %v, want high end 20", got)
	}
}
