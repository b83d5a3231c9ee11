// Package models provides domain models for the IPO alerting pipeline.
package models

// Exchange names recognized by the screening stage. Providers report
// venue strings like "NASDAQ Global Select", so matching is by
// containment, not equality.
const (
	ExchangeNYSE   = "NYSE"
	ExchangeNASDAQ = "NASDAQ"
)

// IPO statuses considered actionable.
const (
	StatusExpected = "expected"
	StatusPriced   = "priced"
)

// IPORecord is a single entry from the provider's IPO calendar.
// Field tags match the Finnhub ipoCalendar payload. Shares and
// TotalSharesValue are pointers because the provider sends null for
// offerings that have not disclosed them yet.
type IPORecord struct {
	Symbol           string   `json:"symbol"`
	Name             string   `json:"name"`
	Date             string   `json:"date"`
	Exchange         string   `json:"exchange"`
	Status           string   `json:"status"`
	Price            string   `json:"price"`
	Shares           *float64 `json:"numberOfShares"`
	TotalSharesValue *float64 `json:"totalSharesValue"`
}

// EvaluatedIPO is an IPORecord together with its estimated offering
// size in dollars. EstimatedOffering is always non-negative.
type EvaluatedIPO struct {
	IPORecord
	EstimatedOffering float64 `json:"estimated_offering"`
}
