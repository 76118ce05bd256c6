package protocol

import "errors"

var (
	ErrEmptyMessage    = errors.New("protocol: empty message")
	ErrBadSyntax       = errors.New("protocol: malformed message")
	ErrUnknownShape    = errors.New("protocol: no known message shape")
	ErrBadDistance     = errors.New("protocol: distance is not numeric")
	ErrUnknownKind     = errors.New("protocol: unknown message kind")
	ErrEmbeddedNewline = errors.New("protocol: embedded newline")
)
