package transport

import "context"

// NullSender is a no-op sender used when the serial port is unavailable.
// It allows the API to run in limited mode without a device attached.
type NullSender struct{}

// NewNullSender creates a new NullSender.
func NewNullSender() *NullSender {
	return &NullSender{}
}

func (s *NullSender) Send(ctx context.Context, data []byte) error {
	return ErrNotConnected
}

func (s *NullSender) IsConnected() bool {
	return false
}

func (s *NullSender) Close() error {
	return nil
}
