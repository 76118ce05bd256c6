package protocol

import (
	"errors"
	"strings"
	"testing"
)

func TestRoundTripRequest(t *testing.T) {
	msg := NewRequest()
	line, err := Encode(msg)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if line != `{"cmd":"GET_DISTANCE"}` {
		t.Fatalf("unexpected wire form: %s", line)
	}
	decoded, err := Decode(line)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded != msg {
		t.Fatalf("round-trip mismatch: %+v != %+v", decoded, msg)
	}
}

func TestRoundTripDistanceFullPrecision(t *testing.T) {
	msg := NewDistance(3.141592653589793)
	line, err := Encode(msg)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := Decode(line)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded != msg {
		t.Fatalf("precision lost on the wire: %+v != %+v", decoded, msg)
	}
}

func TestRoundTripError(t *testing.T) {
	msg := NewError("unknown command")
	line, err := Encode(msg)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := Decode(line)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded != msg {
		t.Fatalf("round-trip mismatch: %+v != %+v", decoded, msg)
	}
}

func TestEncodeSingleLine(t *testing.T) {
	for _, msg := range []Message{NewRequest(), NewDistance(4.25), NewError("boom")} {
		line, err := Encode(msg)
		if err != nil {
			t.Fatalf("encode %s: %v", msg.Kind, err)
		}
		if strings.ContainsAny(line, "\r\n") {
			t.Fatalf("encoded %s message contains newline: %q", msg.Kind, line)
		}
	}
}

func TestEncodeRejectsNewlineInReason(t *testing.T) {
	if _, err := Encode(NewError("line1\nline2")); !errors.Is(err, ErrEmbeddedNewline) {
		t.Fatalf("expected ErrEmbeddedNewline, got %v", err)
	}
}

func TestEncodeRejectsUnknownKind(t *testing.T) {
	if _, err := Encode(Message{Kind: Kind(42)}); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestDecodeEmpty(t *testing.T) {
	for _, line := range []string{"", "   ", "\r\n"} {
		if _, err := Decode(line); !errors.Is(err, ErrEmptyMessage) {
			t.Fatalf("Decode(%q): expected ErrEmptyMessage, got %v", line, err)
		}
	}
}

func TestDecodeGarbage(t *testing.T) {
	for _, line := range []string{"not json at all", `{"cmd":`, "\x00\x01\x02"} {
		if _, err := Decode(line); !errors.Is(err, ErrBadSyntax) {
			t.Fatalf("Decode(%q): expected ErrBadSyntax, got %v", line, err)
		}
	}
}

func TestDecodeMissingRequiredFields(t *testing.T) {
	for _, line := range []string{`{}`, `{"foo":1}`, `{"cmd":null}`} {
		if _, err := Decode(line); !errors.Is(err, ErrUnknownShape) {
			t.Fatalf("Decode(%q): expected ErrUnknownShape, got %v", line, err)
		}
	}
}

func TestDecodeNonNumericDistance(t *testing.T) {
	for _, line := range []string{`{"dxb":"abc"}`, `{"dxb":null}`, `{"dxb":[1]}`} {
		if _, err := Decode(line); !errors.Is(err, ErrBadDistance) {
			t.Fatalf("Decode(%q): expected ErrBadDistance, got %v", line, err)
		}
	}
}

func TestDecodeToleratesFraming(t *testing.T) {
	decoded, err := Decode("  {\"dxb\": 2.5}\r\n")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Kind != KindDistance || decoded.Distance != 2.5 {
		t.Fatalf("unexpected message: %+v", decoded)
	}
}

func TestDecodeErrorShapeWins(t *testing.T) {
	decoded, err := Decode(`{"error":"boom","dxb":5,"cmd":"GET_DISTANCE"}`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Kind != KindError || decoded.Reason != "boom" {
		t.Fatalf("expected error shape to win, got %+v", decoded)
	}
}
