package slave

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/rangelab/rangectl/internal/protocol"
	"github.com/rangelab/rangectl/internal/uart"
	"github.com/rs/zerolog"
)

// DistanceSource supplies the locally measured distance when the master
// asks for it. In production this prompts the operator.
type DistanceSource interface {
	Distance() (float64, error)
}

// DistanceSourceFunc adapts a plain function to DistanceSource.
type DistanceSourceFunc func() (float64, error)

func (f DistanceSourceFunc) Distance() (float64, error) { return f() }

// LineChannel is the transport surface the responder loop needs.
type LineChannel interface {
	WriteLine(string) error
	ReadLine(timeout time.Duration) (string, error)
}

// ServiceConfig configures the responder runtime.
type ServiceConfig struct {
	UART        uart.Config
	ReadTimeout time.Duration
}

// DefaultServiceConfig returns the reference-deployment slave defaults.
func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{
		UART:        uart.DefaultConfig(),
		ReadTimeout: 30 * time.Second,
	}
}

// Service runs the responder lifecycle as a standalone process.
type Service struct {
	cfg    ServiceConfig
	source DistanceSource
	log    zerolog.Logger
}

func NewService(cfg ServiceConfig, source DistanceSource, log zerolog.Logger) *Service {
	return &Service{cfg: cfg, source: source, log: log}
}

// Run opens the serial port and serves requests until SIGINT/SIGTERM. The
// port is released on every exit path.
func (s *Service) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s.log.Info().Str("port", s.cfg.UART.Port).Int("baud", s.cfg.UART.BaudRate).Msg("opening uart")
	ch, err := uart.Open(s.cfg.UART)
	if err != nil {
		return err
	}
	defer ch.Close()

	return s.Serve(ctx, ch)
}

// Serve reacts to one request at a time until ctx is cancelled. Routine
// read timeouts and undecodable lines keep the loop alive; only transport
// failure ends it early. Cancellation takes effect at the next timeout
// tick at the latest.
func (s *Service) Serve(ctx context.Context, ch LineChannel) error {
	s.log.Info().Dur("read_timeout", s.cfg.ReadTimeout).Msg("waiting for master request")
	for {
		if ctx.Err() != nil {
			s.log.Info().Msg("shutting down")
			return nil
		}

		raw, err := ch.ReadLine(s.cfg.ReadTimeout)
		if err != nil {
			if errors.Is(err, uart.ErrTimedOut) {
				s.log.Debug().Msg("no request yet, still waiting")
				continue
			}
			return err
		}

		msg, err := protocol.Decode(raw)
		if err != nil {
			// Garbage gets no response; the next well-formed request
			// still has a clean channel.
			s.log.Warn().Err(err).Str("raw", raw).Msg("discarding undecodable line")
			continue
		}

		if err := s.handle(ch, msg); err != nil {
			return err
		}
	}
}

func (s *Service) handle(ch LineChannel, msg protocol.Message) error {
	if msg.Kind == protocol.KindRequest && msg.Command == protocol.CommandGetDistance {
		d, err := s.source.Distance()
		if err != nil {
			return fmt.Errorf("slave: obtain distance: %w", err)
		}
		line, err := protocol.Encode(protocol.NewDistance(d))
		if err != nil {
			return err
		}
		if err := ch.WriteLine(line); err != nil {
			return err
		}
		s.log.Info().Float64("dxb", d).Msg("sent distance to master")
		return nil
	}

	s.log.Warn().Stringer("kind", msg.Kind).Str("command", msg.Command).Msg("unknown command")
	line, err := protocol.Encode(protocol.NewError("unknown command"))
	if err != nil {
		return err
	}
	return ch.WriteLine(line)
}
