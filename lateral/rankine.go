// Copyright 2026 The MoonGeo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lateral implements closed-form lateral earth pressure solutions:
// Rankine and Coulomb limit states and the at-rest condition. Angles are
// given in degrees, unit weights in kN/m³, depths and heights in metres;
// pressures come out in kPa and resultant forces in kN per metre of wall.
package lateral

import (
	"math"

	"github.com/SupremeHuaji/MoonGeo/num"
)

// RankineKa computes Rankine's active earth pressure coefficient
//
//	Ka = tan²(45° - φ/2)
//
// φ is the effective friction angle in degrees, 0 ≤ φ < 90
func RankineKa(φ float64) (float64, error) {
	if φ < 0 || φ >= 90 {
		return 0, num.InputErr("lateral: friction angle φ=%g° outside [0°, 90°)", φ)
	}
	t, err := num.Tan(45.0 - φ/2.0)
	if err != nil {
		return 0, err
	}
	return t * t, nil
}

// RankineKp computes Rankine's passive earth pressure coefficient
//
//	Kp = tan²(45° + φ/2)
//
// φ is the effective friction angle in degrees, 0 ≤ φ < 90
func RankineKp(φ float64) (float64, error) {
	if φ < 0 || φ >= 90 {
		return 0, num.InputErr("lateral: friction angle φ=%g° outside [0°, 90°)", φ)
	}
	t, err := num.Tan(45.0 + φ/2.0)
	if err != nil {
		return 0, err
	}
	return t * t, nil
}

// JakyK0 computes the at-rest coefficient for normally consolidated soil
// after Jaky
//
//	K0 = 1 - sin(φ)
func JakyK0(φ float64) (float64, error) {
	if φ < 0 || φ >= 90 {
		return 0, num.InputErr("lateral: friction angle φ=%g° outside [0°, 90°)", φ)
	}
	return 1.0 - math.Sin(num.DegToRad(φ)), nil
}

// K0OC extends Jaky's coefficient to overconsolidated deposits
//
//	K0,oc = (1 - sin(φ))・OCR^sin(φ)
//
// OCR is the overconsolidation ratio, OCR ≥ 1
func K0OC(φ, OCR float64) (float64, error) {
	if OCR < 1 {
		return 0, num.InputErr("lateral: overconsolidation ratio OCR=%g must be ≥ 1", OCR)
	}
	k0, err := JakyK0(φ)
	if err != nil {
		return 0, err
	}
	return k0 * math.Pow(OCR, math.Sin(num.DegToRad(φ))), nil
}

// Pressure computes the lateral pressure at depth z for a coefficient K
//
//	σh = K・γ・z   [kPa]
//
// valid for active, passive and at-rest coefficients alike
func Pressure(K, γ, z float64) (float64, error) {
	if K <= 0 {
		return 0, num.InputErr("lateral: pressure coefficient K=%g must be positive", K)
	}
	if γ <= 0 {
		return 0, num.InputErr("lateral: unit weight γ=%g kN/m³ must be positive", γ)
	}
	if z < 0 {
		return 0, num.InputErr("lateral: depth z=%g m must be non-negative", z)
	}
	return K * γ * z, nil
}

// Force computes the resultant of the linear pressure distribution over a
// wall of height H
//
//	P = ½・K・γ・H²   [kN/m]
//
// acting at H/3 above the wall base
func Force(K, γ, H float64) (float64, error) {
	if K <= 0 {
		return 0, num.InputErr("lateral: pressure coefficient K=%g must be positive", K)
	}
	if γ <= 0 {
		return 0, num.InputErr("lateral: unit weight γ=%g kN/m³ must be positive", γ)
	}
	if H < 0 {
		return 0, num.InputErr("lateral: wall height H=%g m must be non-negative", H)
	}
	return 0.5 * K * γ * H * H, nil
}
