// Copyright 2026 The MoonGeo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bearing implements Terzaghi's bearing capacity theory for shallow
// foundations: the Nc, Nq and Nγ factors, the ultimate capacity of strip,
// square and circular footings, the local shear variant, and the allowable
// capacity under a factor of safety. Stresses in kPa, lengths in metres,
// unit weights in kN/m³, friction angles in degrees.
package bearing

import (
	"math"

	"github.com/SupremeHuaji/MoonGeo/num"
)

// factor validity range; Terzaghi's theory is not fitted beyond φ=50°
const φmax = 50.0

// Nq computes Terzaghi's surcharge factor
//
//	Nq = a² / (2・cos²(45° + φ/2))   with   a = exp((3π/4 - φ/2)・tanφ)
//
// valid for 0 ≤ φ < 50°; Nq(0°) = 1
func Nq(φ float64) (float64, error) {
	if φ < 0 || φ >= φmax {
		return 0, num.InputErr("bearing: friction angle φ=%g° outside [0°, %g°)", φ, φmax)
	}
	φr := num.DegToRad(φ)
	a := num.Exp((0.75*math.Pi - φr/2.0) * math.Tan(φr))
	c := math.Cos(num.DegToRad(45.0 + φ/2.0))
	return a * a / (2.0 * c * c), nil
}

// Nc computes Terzaghi's cohesion factor
//
//	Nc = (Nq - 1)・cot(φ)
//
// with the classical value Nc(0°) = 5.7 at the frictionless limit
func Nc(φ float64) (float64, error) {
	if φ == 0 {
		return 5.7, nil
	}
	nq, err := Nq(φ)
	if err != nil {
		return 0, err
	}
	t, err := num.Tan(φ)
	if err != nil {
		return 0, err
	}
	return (nq - 1.0) / t, nil
}

// Ngamma computes the self-weight factor using Meyerhof's fit
//
//	Nγ = (Nq - 1)・tan(1.4・φ)
//
// Nγ(0°) = 0 and the factor increases strictly with φ
func Ngamma(φ float64) (float64, error) {
	nq, err := Nq(φ)
	if err != nil {
		return 0, err
	}
	t, err := num.Tan(1.4 * φ)
	if err != nil {
		return 0, err
	}
	return (nq - 1.0) * t, nil
}

// Factors computes the three bearing capacity factors at once
func Factors(φ float64) (nc, nq, nγ float64, err error) {
	nc, err = Nc(φ)
	if err != nil {
		return
	}
	nq, err = Nq(φ)
	if err != nil {
		return
	}
	nγ, err = Ngamma(φ)
	return
}

// checkFooting validates the footing inputs shared by the capacity formulas
func checkFooting(c, q, γ, B float64) error {
	if c < 0 {
		return num.InputErr("bearing: cohesion c=%g kPa must be non-negative", c)
	}
	if q < 0 {
		return num.InputErr("bearing: surcharge q=%g kPa must be non-negative", q)
	}
	if γ <= 0 {
		return num.InputErr("bearing: unit weight γ=%g kN/m³ must be positive", γ)
	}
	if B <= 0 {
		return num.InputErr("bearing: footing width B=%g m must be positive", B)
	}
	return nil
}

// Capacity computes the ultimate bearing capacity of a strip footing
//
//	qu = c・Nc + q・Nq + ½・γ・B・Nγ   [kPa]
//
// c is the cohesion [kPa], q the surcharge at foundation level [kPa],
// γ the unit weight below the base [kN/m³] and B the footing width [m]
func Capacity(c, q, γ, B, φ float64) (float64, error) {
	if err := checkFooting(c, q, γ, B); err != nil {
		return 0, err
	}
	nc, nq, nγ, err := Factors(φ)
	if err != nil {
		return 0, err
	}
	return c*nc + q*nq + 0.5*γ*B*nγ, nil
}

// CapacitySquare computes the ultimate capacity of a square footing with
// Terzaghi's shape coefficients
//
//	qu = 1.3・c・Nc + q・Nq + 0.4・γ・B・Nγ   [kPa]
func CapacitySquare(c, q, γ, B, φ float64) (float64, error) {
	if err := checkFooting(c, q, γ, B); err != nil {
		return 0, err
	}
	nc, nq, nγ, err := Factors(φ)
	if err != nil {
		return 0, err
	}
	return 1.3*c*nc + q*nq + 0.4*γ*B*nγ, nil
}

// CapacityCircular computes the ultimate capacity of a circular footing of
// diameter B with Terzaghi's shape coefficients
//
//	qu = 1.3・c・Nc + q・Nq + 0.3・γ・B・Nγ   [kPa]
func CapacityCircular(c, q, γ, B, φ float64) (float64, error) {
	if err := checkFooting(c, q, γ, B); err != nil {
		return 0, err
	}
	nc, nq, nγ, err := Factors(φ)
	if err != nil {
		return 0, err
	}
	return 1.3*c*nc + q*nq + 0.3*γ*B*nγ, nil
}

// CapacityLocal computes the strip footing capacity under Terzaghi's local
// shear hypothesis for loose or soft soils: the strength parameters are
// reduced to c* = ⅔c and tanφ* = ⅔tanφ before entering the factors
func CapacityLocal(c, q, γ, B, φ float64) (float64, error) {
	if φ < 0 || φ >= φmax {
		return 0, num.InputErr("bearing: friction angle φ=%g° outside [0°, %g°)", φ, φmax)
	}
	φred := num.RadToDeg(math.Atan(2.0 / 3.0 * math.Tan(num.DegToRad(φ))))
	return Capacity(2.0/3.0*c, q, γ, B, φred)
}

// Allowable computes the allowable (design) bearing capacity
//
//	qa = qu / Fs
//
// the safety factor Fs must be positive
func Allowable(qu, Fs float64) (float64, error) {
	if qu < 0 {
		return 0, num.InputErr("bearing: ultimate capacity qu=%g kPa must be non-negative", qu)
	}
	if Fs <= 0 {
		return 0, num.InputErr("bearing: safety factor Fs=%g must be positive", Fs)
	}
	return qu / Fs, nil
}
