package transport

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"go.bug.st/serial"
)

// SerialSender writes action payloads to a serial port.
type SerialSender struct {
	port serial.Port
	path string

	mu     sync.Mutex
	closed bool
}

// OpenSerial opens the serial port at the given baud rate, 8N1.
func OpenSerial(portPath string, baudRate int) (*SerialSender, error) {
	mode := &serial.Mode{
		BaudRate: baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(portPath, mode)
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", portPath, err)
	}

	log.Info().Str("port", portPath).Int("baud", baudRate).Msg("Serial port opened")

	return &SerialSender{port: port, path: portPath}, nil
}

// Send writes data to the port. Writes are serialized; a canceled context
// fails the call before the write starts.
func (s *SerialSender) Send(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrNotConnected
	}

	n, err := s.port.Write(data)
	if err != nil {
		return fmt.Errorf("write to %s: %w", s.path, err)
	}
	if n < len(data) {
		return fmt.Errorf("short write to %s: %d of %d bytes", s.path, n, len(data))
	}

	return nil
}

// IsConnected returns true while the port is open.
func (s *SerialSender) IsConnected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.closed
}

// Path returns the serial device path.
func (s *SerialSender) Path() string {
	return s.path
}

// Close closes the serial port.
func (s *SerialSender) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.port.Close()
}

// ListPorts enumerates the serial ports available on this machine.
func ListPorts() ([]string, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("list serial ports: %w", err)
	}
	return ports, nil
}
