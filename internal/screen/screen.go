// Package screen implements the pure filtering and valuation stages of
// the IPO pipeline. Both stages are deterministic, order-preserving
// and free of side effects; malformed records are dropped, never
// errored, so one bad upstream entry cannot abort a run.
package screen

import (
	"sort"
	"strings"

	"ipowatch/internal/models"
)

// Filter keeps records dated exactly date whose status is one of
// {expected, priced} and whose exchange names NYSE or NASDAQ. All
// comparisons are case-insensitive; the exchange check is by
// containment because providers report full venue names such as
// "NASDAQ Global Select". Records missing status or exchange are
// dropped.
func Filter(records []models.IPORecord, date string) []models.IPORecord {
	kept := make([]models.IPORecord, 0, len(records))
	for _, rec := range records {
		if rec.Date != date {
			continue
		}
		if !allowedStatus(rec.Status) {
			continue
		}
		if !allowedExchange(rec.Exchange) {
			continue
		}
		kept = append(kept, rec)
	}
	return kept
}

func allowedStatus(status string) bool {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case models.StatusExpected, models.StatusPriced:
		return true
	}
	return false
}

func allowedExchange(exchange string) bool {
	e := strings.ToUpper(exchange)
	return strings.Contains(e, models.ExchangeNYSE) || strings.Contains(e, models.ExchangeNASDAQ)
}

// Valuate computes the estimated offering size for each record:
// price-for-valuation (the high end of a range, or the single price)
// times the share count. Records with a missing symbol or an absent
// or unparsable price or share count are excluded; the second return
// value counts them for diagnostics.
func Valuate(records []models.IPORecord) ([]models.EvaluatedIPO, int) {
	evaluated := make([]models.EvaluatedIPO, 0, len(records))
	excluded := 0
	for _, rec := range records {
		if rec.Symbol == "" {
			excluded++
			continue
		}
		price, ok := models.ParsePrice(rec.Price)
		if !ok || rec.Shares == nil || *rec.Shares <= 0 {
			excluded++
			continue
		}
		evaluated = append(evaluated, models.EvaluatedIPO{
			IPORecord:         rec,
			EstimatedOffering: price.ForValuation() * *rec.Shares,
		})
	}
	return evaluated, excluded
}

// AboveThreshold returns the entries whose estimated offering strictly
// exceeds threshold, sorted descending by estimated offering. The
// input slice is not modified.
func AboveThreshold(evaluated []models.EvaluatedIPO, threshold float64) []models.EvaluatedIPO {
	hits := make([]models.EvaluatedIPO, 0, len(evaluated))
	for _, e := range evaluated {
		if e.EstimatedOffering > threshold {
			hits = append(hits, e)
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].EstimatedOffering > hits[j].EstimatedOffering
	})
	return hits
}
