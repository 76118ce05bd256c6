package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rangelab/rangectl/internal/geometry"
)

func TestWriteResultsWithAngle(t *testing.T) {
	var buf bytes.Buffer
	WriteResults(&buf, geometry.Solve(3, 4, 5))

	out := buf.String()
	for _, want := range []string{"3.000 m", "4.000 m", "5.000 m", "90.00°", "Localisation Results"} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}

func TestWriteResultsUndefinedAngle(t *testing.T) {
	var buf bytes.Buffer
	WriteResults(&buf, geometry.Solve(1, 1, 3))

	out := buf.String()
	if !strings.Contains(out, "N/A") {
		t.Fatalf("expected N/A marker for undefined angle:\n%s", out)
	}
	if strings.Contains(out, "θAB (angle at device X) =") {
		t.Fatalf("undefined angle must not print a value:\n%s", out)
	}
}

func TestWriteTriangleWarning(t *testing.T) {
	var buf bytes.Buffer
	WriteTriangleWarning(&buf)
	if !strings.Contains(buf.String(), "valid triangle") {
		t.Fatalf("unexpected warning text: %q", buf.String())
	}
}
