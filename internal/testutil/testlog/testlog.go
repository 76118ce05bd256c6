// Package testlog wires zerolog output into the owning test.
package testlog

import (
	"testing"

	"github.com/rs/zerolog"
)

// New returns a logger that routes through t.Log so output stays attached
// to the test that produced it.
func New(t *testing.T) zerolog.Logger {
	t.Helper()
	return zerolog.New(zerolog.NewTestWriter(t)).With().Str("test", t.Name()).Logger()
}
