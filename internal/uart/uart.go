// Package uart owns the serial link as a line-delimited, timeout-bounded
// channel.
//
// Ownership boundary:
// - port acquisition and release
// - one-message-per-line framing
// - bounded reads with an explicit timed-out signal
package uart

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.bug.st/serial"
)

var (
	ErrTimedOut        = errors.New("uart: read timed out")
	ErrEmbeddedNewline = errors.New("uart: line contains newline")
)

// Config holds the serial port parameters for one half-duplex link.
type Config struct {
	Port     string
	BaudRate int
}

// DefaultConfig returns the reference-deployment port settings.
func DefaultConfig() Config {
	return Config{Port: "/dev/serial0", BaudRate: 9600}
}

// Port is the device surface the channel needs. go.bug.st/serial ports
// satisfy it directly; tests substitute in-memory fakes.
type Port interface {
	io.ReadWriteCloser
	SetReadTimeout(t time.Duration) error
	Drain() error
}

// Channel is a line-delimited view over a half-duplex serial port. It is
// owned by exactly one goroutine; the link carries one message per line.
type Channel struct {
	port   Port
	buf    []byte // bytes read past the last returned line
	closed bool
}

// Open acquires the serial port described by cfg. The caller owns the
// returned channel and must Close it on every exit path.
func Open(cfg Config) (*Channel, error) {
	port, err := serial.Open(cfg.Port, &serial.Mode{BaudRate: cfg.BaudRate})
	if err != nil {
		return nil, fmt.Errorf("uart: open %s: %w", cfg.Port, err)
	}
	return NewChannel(port), nil
}

// NewChannel wraps an already-open port.
func NewChannel(port Port) *Channel {
	return &Channel{port: port}
}

// WriteLine writes s plus the frame delimiter and drains the port so the
// peer observes the bytes without additional buffering delay.
func (c *Channel) WriteLine(s string) error {
	if strings.ContainsAny(s, "\r\n") {
		return ErrEmbeddedNewline
	}
	if _, err := c.port.Write(append([]byte(s), '\n')); err != nil {
		return fmt.Errorf("uart: write: %w", err)
	}
	if err := c.port.Drain(); err != nil {
		return fmt.Errorf("uart: drain: %w", err)
	}
	return nil
}

// ReadLine blocks until a full newline-terminated line arrives or timeout
// elapses, in which case it returns ErrTimedOut. Bytes of a partial line
// received before a timeout are kept for the next call.
func (c *Channel) ReadLine(timeout time.Duration) (string, error) {
	deadline := time.Now().Add(timeout)
	for {
		if i := bytes.IndexByte(c.buf, '\n'); i >= 0 {
			line := strings.TrimRight(string(c.buf[:i]), "\r")
			c.buf = c.buf[i+1:]
			return line, nil
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			return "", ErrTimedOut
		}
		if err := c.port.SetReadTimeout(remaining); err != nil {
			return "", fmt.Errorf("uart: set read timeout: %w", err)
		}

		chunk := make([]byte, 256)
		n, err := c.port.Read(chunk)
		if n > 0 {
			c.buf = append(c.buf, chunk[:n]...)
			continue
		}
		if err != nil {
			return "", fmt.Errorf("uart: read: %w", err)
		}
		// Zero bytes with a nil error is the port-level timeout signal;
		// the deadline check at the top of the loop decides whether to
		// keep waiting.
	}
}

// Close releases the port. Safe to call more than once.
func (c *Channel) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.port.Close()
}
