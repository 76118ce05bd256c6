package master

import (
	"errors"
	"fmt"
	"time"

	"github.com/rangelab/rangectl/internal/protocol"
	"github.com/rangelab/rangectl/internal/uart"
	"github.com/rs/zerolog"
)

var (
	ErrNoResponse        = errors.New("master: no response from slave")
	ErrMalformedResponse = errors.New("master: malformed response from slave")
	ErrPeerError         = errors.New("master: slave reported error")
)

// LineChannel is the transport surface the exchange needs.
type LineChannel interface {
	WriteLine(string) error
	ReadLine(timeout time.Duration) (string, error)
}

// FetchDistance performs exactly one GET_DISTANCE exchange: encode the
// request, write it, wait up to timeout for the single response line,
// decode, and map the outcome. A timeout is fatal to the exchange; retry,
// if wanted, belongs to the caller.
func FetchDistance(ch LineChannel, timeout time.Duration, log zerolog.Logger) (float64, error) {
	line, err := protocol.Encode(protocol.NewRequest())
	if err != nil {
		return 0, err
	}
	log.Info().Msg("sending GET_DISTANCE request to slave")
	if err := ch.WriteLine(line); err != nil {
		return 0, err
	}

	log.Info().Dur("timeout", timeout).Msg("waiting for slave response")
	raw, err := ch.ReadLine(timeout)
	if err != nil {
		if errors.Is(err, uart.ErrTimedOut) {
			return 0, fmt.Errorf("%w within %s: check wiring and that slavectl is running", ErrNoResponse, timeout)
		}
		return 0, err
	}

	msg, err := protocol.Decode(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %v (raw %q)", ErrMalformedResponse, err, raw)
	}
	switch msg.Kind {
	case protocol.KindDistance:
		log.Info().Float64("dxb", msg.Distance).Msg("received distance from slave")
		return msg.Distance, nil
	case protocol.KindError:
		return 0, fmt.Errorf("%w: %s", ErrPeerError, msg.Reason)
	default:
		return 0, fmt.Errorf("%w: unexpected %s message (raw %q)", ErrMalformedResponse, msg.Kind, raw)
	}
}
