package notify

import (
	"fmt"
	"strings"

	"ipowatch/internal/models"
)

const entrySeparator = "\n---------------------------------------\n"

// ComposeAlert builds the single alert message for a run. Entries are
// listed in the order given; the pipeline hands them over sorted
// descending by estimated offering.
func ComposeAlert(date string, threshold float64, hits []models.EvaluatedIPO) Message {
	subject := fmt.Sprintf("IPO Report [%s]: %d tickers > %s", date, len(hits), formatCompactUSD(threshold))

	entries := make([]string, 0, len(hits))
	for _, hit := range hits {
		entries = append(entries, formatEntry(hit))
	}

	body := fmt.Sprintf("Same-day US IPOs exceeding %s:\n\n%s",
		formatCompactUSD(threshold), strings.Join(entries, entrySeparator))

	return Message{Subject: subject, Body: body}
}

func formatEntry(hit models.EvaluatedIPO) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%s)\n", hit.Symbol, orNA(hit.Name))
	fmt.Fprintf(&sb, "  Exchange: %s\n", hit.Exchange)
	fmt.Fprintf(&sb, "  Status: %s\n", hit.Status)
	if hit.Shares != nil {
		fmt.Fprintf(&sb, "  Price: %s | Shares: %s\n", hit.Price, formatGrouped(*hit.Shares))
	} else {
		fmt.Fprintf(&sb, "  Price: %s\n", hit.Price)
	}
	fmt.Fprintf(&sb, "  Est. Offer: %s", formatUSD(hit.EstimatedOffering))
	if hit.TotalSharesValue != nil {
		fmt.Fprintf(&sb, "\n  Provider total: %s", formatUSD(*hit.TotalSharesValue))
	}
	return sb.String()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// formatUSD renders a dollar amount with thousands separators and no
// cents, e.g. $250,000,000.
func formatUSD(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}
	result := "$" + formatGrouped(amount)
	if negative {
		result = "-" + result
	}
	return result
}

// formatCompactUSD renders round amounts in the short form used in
// subject lines, e.g. $200M or $1.5B.
func formatCompactUSD(amount float64) string {
	switch {
	case amount >= 1e9:
		return trimZero(fmt.Sprintf("$%.1fB", amount/1e9))
	case amount >= 1e6:
		return trimZero(fmt.Sprintf("$%.1fM", amount/1e6))
	case amount >= 1e3:
		return trimZero(fmt.Sprintf("$%.1fK", amount/1e3))
	default:
		return fmt.Sprintf("$%.0f", amount)
	}
}

func trimZero(s string) string {
	return strings.Replace(s, ".0", "", 1)
}

// formatGrouped renders a non-negative value with comma-separated
// groups of three digits, dropping the fraction.
func formatGrouped(v float64) string {
	s := fmt.Sprintf("%.0f", v)
	n := len(s)
	if n <= 3 {
		return s
	}
	var sb strings.Builder
	rem := n % 3
	if rem > 0 {
		sb.WriteString(s[:rem])
	}
	for i := rem; i < n; i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(s[i : i+3])
	}
	return sb.String()
}
