package protocol

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Decode parses one wire line into a Message. Every failure is a sentinel
// error from this package; garbage input never faults the process.
//
// Shape precedence when multiple fields are present: error response, then
// distance response, then request.
func Decode(line string) (Message, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Message{}, ErrEmptyMessage
	}

	var wire struct {
		Cmd   *string         `json:"cmd"`
		Dxb   json.RawMessage `json:"dxb"`
		Error *string         `json:"error"`
	}
	if err := json.Unmarshal([]byte(trimmed), &wire); err != nil {
		return Message{}, fmt.Errorf("%w: %v", ErrBadSyntax, err)
	}

	switch {
	case wire.Error != nil:
		return Message{Kind: KindError, Reason: *wire.Error}, nil
	case len(wire.Dxb) > 0:
		d, err := strconv.ParseFloat(string(wire.Dxb), 64)
		if err != nil {
			return Message{}, fmt.Errorf("%w: %s", ErrBadDistance, wire.Dxb)
		}
		return Message{Kind: KindDistance, Distance: d}, nil
	case wire.Cmd != nil:
		return Message{Kind: KindRequest, Command: *wire.Cmd}, nil
	default:
		return Message{}, ErrUnknownShape
	}
}
