// Copyright 2026 The MoonGeo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package phase implements the algebraic identities between the soil phase
// quantities: void ratio, porosity, saturation, water content and the
// derived unit weights and densities. Saturation and water content are
// expressed in percent [0,100]; void ratio and porosity are fractions.
package phase

import (
	"github.com/SupremeHuaji/MoonGeo/num"
)

// VoidRatio converts porosity to void ratio
//
//	e = n / (1 - n)   for 0 ≤ n < 1
func VoidRatio(n float64) (float64, error) {
	if n < 0 || n >= 1 {
		return 0, num.InputErr("phase: porosity n=%g outside [0, 1)", n)
	}
	return n / (1.0 - n), nil
}

// Porosity converts void ratio to porosity
//
//	n = e / (1 + e)   for e ≥ 0
func Porosity(e float64) (float64, error) {
	if e < 0 {
		return 0, num.InputErr("phase: void ratio e=%g must be non-negative", e)
	}
	return e / (1.0 + e), nil
}

// DegreeOfSaturation computes Sr in percent from the water and void volumes
//
//	Sr = 100・Vw/Vv   with   Vv > 0,  0 ≤ Vw ≤ Vv
func DegreeOfSaturation(Vw, Vv float64) (float64, error) {
	if Vv <= 0 {
		return 0, num.InputErr("phase: void volume Vv=%g must be positive", Vv)
	}
	if Vw < 0 || Vw > Vv {
		return 0, num.InputErr("phase: water volume Vw=%g outside [0, Vv=%g]", Vw, Vv)
	}
	return Vw / Vv * 100.0, nil
}

// DryDensity computes the dry density from the bulk density and the water
// content w given in percent
//
//	ρd = ρ / (1 + w/100)
func DryDensity(ρ, w float64) (float64, error) {
	if ρ <= 0 {
		return 0, num.InputErr("phase: bulk density ρ=%g must be positive", ρ)
	}
	if w < 0 {
		return 0, num.InputErr("phase: water content w=%g%% must be non-negative", w)
	}
	return ρ / (1.0 + w/100.0), nil
}

// SaturatedUnitWeight computes the unit weight of fully saturated soil
//
//	γsat = γw・(Gs + e) / (1 + e)   [kN/m³]
func SaturatedUnitWeight(Gs, e, γw float64) (float64, error) {
	if Gs <= 0 {
		return 0, num.InputErr("phase: specific gravity Gs=%g must be positive", Gs)
	}
	if e <= -1 {
		return 0, num.InputErr("phase: void ratio e=%g must exceed -1", e)
	}
	if γw <= 0 {
		return 0, num.InputErr("phase: water unit weight γw=%g kN/m³ must be positive", γw)
	}
	return γw * (Gs + e) / (1.0 + e), nil
}

// BuoyantUnitWeight computes the submerged (effective) unit weight
//
//	γ' = γsat - γw   [kN/m³]
func BuoyantUnitWeight(γsat, γw float64) (float64, error) {
	if γw <= 0 {
		return 0, num.InputErr("phase: water unit weight γw=%g kN/m³ must be positive", γw)
	}
	if γsat < γw {
		return 0, num.InputErr("phase: saturated unit weight γsat=%g kN/m³ below γw=%g", γsat, γw)
	}
	return γsat - γw, nil
}
