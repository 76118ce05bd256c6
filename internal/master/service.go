package master

import (
	"io"
	"time"

	"github.com/rangelab/rangectl/internal/geometry"
	"github.com/rangelab/rangectl/internal/operator"
	"github.com/rangelab/rangectl/internal/report"
	"github.com/rangelab/rangectl/internal/uart"
	"github.com/rs/zerolog"
)

// Config configures one master run.
type Config struct {
	UART            uart.Config
	ResponseTimeout time.Duration
}

// DefaultConfig returns the reference-deployment master defaults.
func DefaultConfig() Config {
	return Config{
		UART:            uart.DefaultConfig(),
		ResponseTimeout: 60 * time.Second,
	}
}

// Service drives one full master run: collect the two local distances,
// fetch the remote one over the serial link, solve, and report.
type Service struct {
	cfg    Config
	prompt *operator.Prompter
	out    io.Writer
	log    zerolog.Logger
}

func NewService(cfg Config, prompt *operator.Prompter, out io.Writer, log zerolog.Logger) *Service {
	return &Service{cfg: cfg, prompt: prompt, out: out, log: log}
}

// Run performs one measurement end to end. The serial port is released on
// every exit path. Errors are fatal to the run and surfaced to the caller.
func (s *Service) Run() error {
	dxa, err := s.prompt.Distance("dXA  [node A → detected device]")
	if err != nil {
		return err
	}
	dab, err := s.prompt.Distance("dAB  [node A → node B baseline]")
	if err != nil {
		return err
	}

	s.log.Info().Str("port", s.cfg.UART.Port).Int("baud", s.cfg.UART.BaudRate).Msg("opening uart")
	ch, err := uart.Open(s.cfg.UART)
	if err != nil {
		return err
	}
	defer ch.Close()

	dxb, err := FetchDistance(ch, s.cfg.ResponseTimeout, s.log)
	if err != nil {
		return err
	}

	s.report(geometry.Solve(dxa, dxb, dab))
	return nil
}

func (s *Service) report(m geometry.Measurement) {
	if !m.Angle.Defined {
		s.log.Warn().
			Float64("dxa", m.DXA).Float64("dxb", m.DXB).Float64("dab", m.DAB).
			Msg("distances do not form a valid triangle")
		report.WriteTriangleWarning(s.out)
	}
	report.WriteResults(s.out, m)
}
