// Package runner executes the daily IPO alert pipeline: fetch the
// provider's calendar for today, filter by exchange and status,
// estimate offering sizes, and email entries above the alert
// threshold. Control flows strictly forward; the first fatal error
// aborts the run with no retry.
package runner

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"ipowatch/internal/config"
	"ipowatch/internal/logging"
	"ipowatch/internal/market"
	"ipowatch/internal/models"
	"ipowatch/internal/notify"
	"ipowatch/internal/screen"
)

// MarketData fetches raw IPO calendar entries for a date range.
type MarketData interface {
	IPOCalendar(ctx context.Context, from, to string) ([]models.IPORecord, error)
}

// Runner wires the pipeline stages together for one run.
type Runner struct {
	cfg     *config.Config
	logger  zerolog.Logger
	market  MarketData
	channel notify.Channel
}

// New creates a Runner.
func New(cfg *config.Config, logger zerolog.Logger, md MarketData, ch notify.Channel) *Runner {
	return &Runner{cfg: cfg, logger: logger, market: md, channel: ch}
}

// Run executes one pass of the pipeline and returns the qualifying
// entries, sorted descending by estimated offering. An empty result
// with a nil error is the expected common case: nothing qualified and
// no email was sent. On success the slice is never nil, so JSON
// consumers always see an array.
func (r *Runner) Run(ctx context.Context) ([]models.EvaluatedIPO, error) {
	today := market.Today(r.cfg.Location())

	fetchLog := logging.WithStage(r.logger, "fetch")
	fetchLog.Info().Str("date", today).Msg("fetching same-day IPO calendar")

	records, err := r.market.IPOCalendar(ctx, today, today)
	if err != nil {
		return nil, fmt.Errorf("fetching IPO calendar: %w", err)
	}
	fetchLog.Info().Int("records", len(records)).Msg("calendar fetched")

	kept := screen.Filter(records, today)
	filterLog := logging.WithStage(r.logger, "filter")
	filterLog.Debug().
		Int("kept", len(kept)).
		Int("dropped", len(records)-len(kept)).
		Msg("exchange and status filter applied")

	evaluated, excluded := screen.Valuate(kept)
	valuateLog := logging.WithStage(r.logger, "valuate")
	if excluded > 0 {
		valuateLog.Debug().Int("excluded", excluded).Msg("records without usable price or share count excluded")
	}
	for _, e := range evaluated {
		valuateLog.Debug().
			Str("symbol", e.Symbol).
			Str("exchange", e.Exchange).
			Str("status", e.Status).
			Str("price", e.Price).
			Float64("estimated_offering", e.EstimatedOffering).
			Msg("record valuated")
	}

	hits := screen.AboveThreshold(evaluated, r.cfg.Alert.ThresholdUSD)
	notifyLog := logging.WithStage(r.logger, "notify")
	if len(hits) == 0 {
		notifyLog.Info().
			Float64("threshold_usd", r.cfg.Alert.ThresholdUSD).
			Msg("no qualifying IPOs, nothing to send")
		return hits, nil
	}

	msg := notify.ComposeAlert(today, r.cfg.Alert.ThresholdUSD, hits)
	if err := r.channel.Send(ctx, msg); err != nil {
		return nil, fmt.Errorf("sending alert: %w", err)
	}
	notifyLog.Info().
		Int("qualifying", len(hits)).
		Str("channel", r.channel.Name()).
		Msg("alert sent")

	return hits, nil
}
