package cli

import (
	"errors"
	"fmt"
	"testing"

	"ipowatch/internal/config"
	"ipowatch/internal/market"
	"ipowatch/internal/notify"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "success", err: nil, want: 0},
		{
			name: "missing credential",
			err:  &config.MissingVarError{Var: "EMAIL_PASS"},
			want: 2,
		},
		{
			name: "wrapped missing credential",
			err:  fmt.Errorf("validating config: %w", &config.MissingVarError{Var: "FINNHUB_KEY"}),
			want: 2,
		},
		{
			name: "wrapped fetch failure",
			err:  fmt.Errorf("fetching IPO calendar: %w", &market.FetchError{StatusCode: 500}),
			want: 3,
		},
		{
			name: "wrapped delivery failure",
			err:  fmt.Errorf("sending alert: %w", &notify.DeliveryError{Channel: "email", Err: errors.New("auth failed")}),
			want: 4,
		},
		{
			name: "generic error",
			err:  errors.New("something else"),
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
