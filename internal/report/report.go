// Package report formats measurement results for the operator. All display
// rounding happens here; wire and solver values stay full precision.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/rangelab/rangectl/internal/geometry"
)

const innerWidth = 46

// WriteResults renders the summary table and a not-to-scale triangle
// diagram for one completed measurement.
func WriteResults(w io.Writer, m geometry.Measurement) {
	sep := strings.Repeat("═", innerWidth)

	fmt.Fprintf(w, "\n  ╔%s╗\n", sep)
	fmt.Fprintf(w, "  ║%s║\n", center("Localisation Results", innerWidth))
	fmt.Fprintf(w, "  ╠%s╣\n", sep)
	row(w, "dXA  (node A → device)", fmt.Sprintf("%.3f m", m.DXA))
	row(w, "dXB  (node B → device)", fmt.Sprintf("%.3f m", m.DXB))
	row(w, "dAB  (node A → node B)", fmt.Sprintf("%.3f m", m.DAB))
	fmt.Fprintf(w, "  ╠%s╣\n", sep)
	if m.Angle.Defined {
		row(w, "θAB  (angle at device X)", fmt.Sprintf("%.2f°", m.Angle.Degrees))
	} else {
		row(w, "θAB  (angle at device X)", "N/A")
	}
	fmt.Fprintf(w, "  ╚%s╝\n", sep)

	fmt.Fprintf(w, "\n  Triangle layout (not to scale):\n\n")
	fmt.Fprintf(w, "        node A\n")
	fmt.Fprintf(w, "         |\\\n")
	fmt.Fprintf(w, "   dXA=%.2fm |  \\ dAB=%.2fm\n", m.DXA, m.DAB)
	fmt.Fprintf(w, "         |    \\\n")
	fmt.Fprintf(w, "    device X----node B\n")
	fmt.Fprintf(w, "        dXB=%.2fm\n", m.DXB)
	if m.Angle.Defined {
		fmt.Fprintf(w, "\n  θAB (angle at device X) = %.2f°\n", m.Angle.Degrees)
	}
	fmt.Fprintln(w)
}

// WriteTriangleWarning explains why no angle accompanies the measurements.
func WriteTriangleWarning(w io.Writer) {
	fmt.Fprintf(w, "\n  WARNING: distances do not form a valid triangle.\n")
	fmt.Fprintf(w, "  θAB cannot be computed. Check your measurements.\n")
}

func row(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  ║  %-33s %9s  ║\n", label, value)
}

func center(s string, width int) string {
	pad := width - len([]rune(s))
	if pad < 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
