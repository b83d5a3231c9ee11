// Package notify delivers the alert email for qualifying IPOs.
package notify

import (
	"context"
	"fmt"
)

// Message is a composed notification ready for delivery.
type Message struct {
	Subject string
	Body    string
}

// Channel is a delivery mechanism for alert messages.
type Channel interface {
	Name() string
	IsEnabled() bool
	Send(ctx context.Context, msg Message) error
}

// DeliveryError reports a failed send: authentication, connection or
// submission failure. It is fatal for the run; there is no retry and
// no alternate channel.
type DeliveryError struct {
	Channel string
	Err     error
}

// Error implements the error interface.
func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivering alert via %s: %v", e.Channel, e.Err)
}

// Unwrap returns the underlying error.
func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// NoOpChannel discards messages. Used for dry runs and tests.
type NoOpChannel struct{}

// NewNoOpChannel creates a NoOpChannel.
func NewNoOpChannel() *NoOpChannel {
	return &NoOpChannel{}
}

// Name returns the channel name.
func (n *NoOpChannel) Name() string { return "noop" }

// IsEnabled always reports true.
func (n *NoOpChannel) IsEnabled() bool { return true }

// Send does nothing.
func (n *NoOpChannel) Send(ctx context.Context, msg Message) error { return nil }
