// Package geometry owns triangle validation and the Law of Cosines solver.
package geometry

import "math"

// AngleResult is either a computed angle in degrees or an explicit
// undefined marker for degenerate geometry. The zero value is undefined.
type AngleResult struct {
	Degrees float64
	Defined bool
}

// Measurement bundles the three measured sides with the solved angle for
// the display layer. Sides are in metres, the angle in degrees.
type Measurement struct {
	DXA   float64
	DXB   float64
	DAB   float64
	Angle AngleResult
}

// ValidateTriangle reports whether all three strict triangle inequalities
// hold for the given side lengths. This is the gate callers apply before
// computing an angle.
func ValidateTriangle(dxa, dxb, dab float64) bool {
	return dxa+dxb > dab && dxa+dab > dxb && dxb+dab > dxa
}

// ComputeAngle solves the Law of Cosines for the angle at vertex X, the
// detected device, given the two rays to the measuring nodes and the
// baseline between them:
//
//	cos(θAB) = (dXA² + dXB² − dAB²) / (2·dXA·dXB)
//
// The cosine is clamped to [-1, 1] before arccos so floating-point
// overshoot near collinear layouts never produces NaN. The result is
// undefined when either ray degenerates to a point.
//
// ComputeAngle is a pure numeric transform; it does not enforce the
// triangle inequality. Callers apply ValidateTriangle first as policy.
func ComputeAngle(dxa, dxb, dab float64) AngleResult {
	if dxa == 0 || dxb == 0 {
		return AngleResult{}
	}
	cos := (dxa*dxa + dxb*dxb - dab*dab) / (2 * dxa * dxb)
	cos = math.Max(-1, math.Min(1, cos))
	return AngleResult{Degrees: math.Acos(cos) * 180 / math.Pi, Defined: true}
}

// Solve applies the validate-then-compute policy: sides that do not form a
// valid triangle yield an undefined angle regardless of what the raw
// clamped math would return.
func Solve(dxa, dxb, dab float64) Measurement {
	m := Measurement{DXA: dxa, DXB: dxb, DAB: dab}
	if ValidateTriangle(dxa, dxb, dab) {
		m.Angle = ComputeAngle(dxa, dxb, dab)
	}
	return m
}
