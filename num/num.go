// Copyright 2026 The MoonGeo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package num provides the numeric utilities shared by all formula packages:
// angle conversion, approximate equality, and safe wrappers around the
// transcendental functions with their domain restrictions made explicit.
package num

import (
	"math"
)

// DegToRad converts an angle from degrees to radians
func DegToRad(angle float64) float64 {
	return angle * math.Pi / 180.0
}

// RadToDeg converts an angle from radians to degrees
func RadToDeg(angle float64) float64 {
	return angle * 180.0 / math.Pi
}

// ApproxEqual returns true iff |a-b| ≤ tolerance
func ApproxEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

// Tan computes the tangent of an angle given in degrees. The angle must stay
// within (-90°, 90°); e.g. after the 45±φ/2 transform used by the earth
// pressure and bearing capacity formulas. Fails with ErrDomain otherwise.
func Tan(angle float64) (float64, error) {
	if angle <= -90.0 || angle >= 90.0 {
		return 0, DomainErr("tangent undefined: angle %g° outside (-90°, 90°)", angle)
	}
	return math.Tan(DegToRad(angle)), nil
}

// Sqrt computes the square root of x. Fails with ErrDomain for x < 0.
func Sqrt(x float64) (float64, error) {
	if x < 0 {
		return 0, DomainErr("square root undefined for x=%g < 0", x)
	}
	return math.Sqrt(x), nil
}

// Log computes the natural logarithm of x. Fails with ErrDomain for x ≤ 0.
func Log(x float64) (float64, error) {
	if x <= 0 {
		return 0, DomainErr("logarithm undefined for x=%g ≤ 0", x)
	}
	return math.Log(x), nil
}

// Exp computes the exponential of x. Total over the reals.
func Exp(x float64) float64 {
	return math.Exp(x)
}
