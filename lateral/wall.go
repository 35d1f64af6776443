// Copyright 2026 The MoonGeo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lateral

import (
	"strings"

	"github.com/SupremeHuaji/MoonGeo/num"
)

// P holds a named scalar wall parameter
type P struct {
	N string  // name
	V float64 // value
}

// Params holds a set of wall parameters
type Params []*P

// Wall bundles the geometry and backfill parameters of a retaining wall and
// precomputes the Coulomb coefficients once, so pressure profiles along the
// height can be sampled without revalidating the angle set at every depth
type Wall struct {

	// parameters
	φ float64 // friction angle of the backfill [°]
	δ float64 // wall interface friction angle [°]
	θ float64 // wall batter from vertical [°]
	β float64 // backfill slope [°]
	γ float64 // unit weight of the backfill [kN/m³]

	// derived
	ka float64 // active coefficient
	kp float64 // passive coefficient
}

// Init initialises the wall from parameters; unknown names are an error
func (o *Wall) Init(prms Params) (err error) {
	o.γ = 18.0
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "phi":
			o.φ = p.V
		case "delta":
			o.δ = p.V
		case "theta":
			o.θ = p.V
		case "beta":
			o.β = p.V
		case "gamma":
			o.γ = p.V
		default:
			return num.InputErr("lateral: wall parameter named %q is incorrect", p.N)
		}
	}
	if o.γ <= 0 {
		return num.InputErr("lateral: unit weight γ=%g kN/m³ must be positive", o.γ)
	}
	o.ka, err = CoulombKa(o.φ, o.δ, o.θ, o.β)
	if err != nil {
		return
	}
	o.kp, err = CoulombKp(o.φ, o.δ, o.θ, o.β)
	return
}

// GetPrms gets (an example) of parameters
func (o Wall) GetPrms(example bool) Params {
	return Params{
		&P{N: "phi", V: 30},
		&P{N: "delta", V: 10},
		&P{N: "theta", V: 0},
		&P{N: "beta", V: 0},
		&P{N: "gamma", V: 18},
	}
}

// Ka returns the active coefficient
func (o Wall) Ka() float64 {
	return o.ka
}

// Kp returns the passive coefficient
func (o Wall) Kp() float64 {
	return o.kp
}

// MaxPressure returns the active pressure at the wall base [kPa]
func (o Wall) MaxPressure(H float64) (float64, error) {
	return Pressure(o.ka, o.γ, H)
}

// Thrust returns the resultant active force on the wall [kN/m]
func (o Wall) Thrust(H float64) (float64, error) {
	return Force(o.ka, o.γ, H)
}
