package protocol

import (
	"encoding/json"
	"fmt"
	"strings"
)

type requestWire struct {
	Cmd string `json:"cmd"`
}

type distanceWire struct {
	Dxb float64 `json:"dxb"`
}

type errorWire struct {
	Error string `json:"error"`
}

// Encode renders msg as one compact JSON line, without the trailing
// newline. Distance values keep full float64 precision; rounding is a
// display concern.
func Encode(msg Message) (string, error) {
	var wire any
	switch msg.Kind {
	case KindRequest:
		wire = requestWire{Cmd: msg.Command}
	case KindDistance:
		wire = distanceWire{Dxb: msg.Distance}
	case KindError:
		if strings.ContainsAny(msg.Reason, "\r\n") {
			return "", ErrEmbeddedNewline
		}
		wire = errorWire{Error: msg.Reason}
	default:
		return "", fmt.Errorf("%w: %d", ErrUnknownKind, msg.Kind)
	}

	buf, err := json.Marshal(wire)
	if err != nil {
		return "", fmt.Errorf("protocol: marshal %s: %w", msg.Kind, err)
	}
	return string(buf), nil
}
