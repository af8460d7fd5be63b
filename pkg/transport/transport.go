// Package transport delivers action payloads to the connected device.
package transport

import (
	"context"
	"errors"
)

var (
	// ErrNotConnected indicates no device link is open
	ErrNotConnected = errors.New("device not connected")

	// ErrTimeout indicates a write did not complete in time
	ErrTimeout = errors.New("write timed out")
)

// Sender accepts the byte sequence built for an action and writes it to the
// device. Implementations serialize concurrent writes internally.
type Sender interface {
	// Send writes data to the device
	Send(ctx context.Context, data []byte) error

	// IsConnected returns true if the link is open
	IsConnected() bool

	// Close shuts the link down
	Close() error
}
