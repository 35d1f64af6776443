// Copyright 2026 The MoonGeo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package consol implements one-dimensional settlement and consolidation
// formulas: layer settlements from the compressibility coefficient or the
// compression modulus, Terzaghi's time factor, the degree of consolidation,
// and the final consolidation settlement. Stresses in kPa, lengths in
// metres, time in seconds; compressibilities av and mv are per MPa.
package consol

import (
	"math"

	"github.com/SupremeHuaji/MoonGeo/num"
)

// crossover between the square-root and the series branch of Terzaghi's
// uniform-pressure solution; the branches agree to about 1e-3 here
const tvSwitch = 0.2

// SettlementLayer computes the settlement of a single layer from the
// coefficient of compressibility
//
//	s = av・(σz/1000)・Hi / (1 + e0)   [m]
//
// av is per MPa while the stress increment σz is in kPa; the /1000
// conversion is part of the contract. e0 is the initial void ratio and Hi
// the layer thickness [m].
func SettlementLayer(av, e0, σz, Hi float64) (float64, error) {
	if av < 0 {
		return 0, num.InputErr("consol: compressibility av=%g MPa⁻¹ must be non-negative", av)
	}
	if e0 <= -1 {
		return 0, num.InputErr("consol: void ratio e0=%g must exceed -1", e0)
	}
	if σz < 0 {
		return 0, num.InputErr("consol: stress increment σz=%g kPa must be non-negative", σz)
	}
	if Hi < 0 {
		return 0, num.InputErr("consol: layer thickness Hi=%g m must be non-negative", Hi)
	}
	return av * (σz / 1000.0) * Hi / (1.0 + e0), nil
}

// SettlementLayerEs computes the settlement of a single layer from the
// compression modulus
//
//	s = (σz/Es)・Hi   [m]
//
// σz and Es must share the same stress unit
func SettlementLayerEs(Es, σz, Hi float64) (float64, error) {
	if Es <= 0 {
		return 0, num.InputErr("consol: compression modulus Es=%g must be positive", Es)
	}
	if σz < 0 {
		return 0, num.InputErr("consol: stress increment σz=%g must be non-negative", σz)
	}
	if Hi < 0 {
		return 0, num.InputErr("consol: layer thickness Hi=%g m must be non-negative", Hi)
	}
	return σz / Es * Hi, nil
}

// TimeFactor computes Terzaghi's dimensionless time factor
//
//	Tv = Cv・t / H²
//
// H is the drainage path length itself: the full layer thickness for single
// drainage, half of it for double drainage. Cv in m²/s, t in s, H in m.
func TimeFactor(Cv, t, H float64) (float64, error) {
	if Cv <= 0 {
		return 0, num.InputErr("consol: coefficient of consolidation Cv=%g m²/s must be positive", Cv)
	}
	if t < 0 {
		return 0, num.InputErr("consol: time t=%g s must be non-negative", t)
	}
	if H <= 0 {
		return 0, num.InputErr("consol: drainage path H=%g m must be positive", H)
	}
	return Cv * t / (H * H), nil
}

// DegreeOfConsolidation computes the average degree of consolidation U(Tv)
// for Terzaghi's uniform initial excess pressure, as a fraction in [0,1]
//
//	Tv < 0.2:  U = 2・√(Tv/π)                 (parabolic isochrone limit)
//	Tv ≥ 0.2:  U = 1 - (8/π²)・exp(-π²Tv/4)   (first term of the series)
//
// the approximation is monotone non-decreasing with U(0) = 0 and U → 1
func DegreeOfConsolidation(Tv float64) (float64, error) {
	if Tv < 0 {
		return 0, num.InputErr("consol: time factor Tv=%g must be non-negative", Tv)
	}
	if Tv < tvSwitch {
		return 2.0 * math.Sqrt(Tv/math.Pi), nil
	}
	return 1.0 - 8.0/(math.Pi*math.Pi)*num.Exp(-math.Pi*math.Pi*Tv/4.0), nil
}

// SettlementFinal computes the final consolidation settlement
//
//	s∞ = mv・(σz/1000)・H   [m]
//
// mv is the volume compressibility per MPa and σz the stress increment in
// kPa; the /1000 conversion is part of the contract. H is the layer
// thickness [m].
func SettlementFinal(mv, σz, H float64) (float64, error) {
	if mv <= 0 {
		return 0, num.InputErr("consol: volume compressibility mv=%g MPa⁻¹ must be positive", mv)
	}
	if σz < 0 {
		return 0, num.InputErr("consol: stress increment σz=%g kPa must be non-negative", σz)
	}
	if H < 0 {
		return 0, num.InputErr("consol: layer thickness H=%g m must be non-negative", H)
	}
	return mv * (σz / 1000.0) * H, nil
}
