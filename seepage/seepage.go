// Copyright 2026 The MoonGeo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package seepage implements Darcy flow through porous media, hydraulic
// gradients, the critical gradient, and the piping safety check.
// Permeability k in m/s, lengths in metres, areas in m², discharges in m³/s.
package seepage

import (
	"github.com/SupremeHuaji/MoonGeo/num"
)

// DarcyVelocity computes the discharge velocity
//
//	v = k・i   [m/s]
func DarcyVelocity(k, i float64) (float64, error) {
	if k < 0 {
		return 0, num.InputErr("seepage: permeability k=%g m/s must be non-negative", k)
	}
	if i < 0 {
		return 0, num.InputErr("seepage: hydraulic gradient i=%g must be non-negative", i)
	}
	return k * i, nil
}

// FlowRate computes the discharge through a cross section of area A
//
//	Q = k・i・A   [m³/s]
func FlowRate(k, i, A float64) (float64, error) {
	v, err := DarcyVelocity(k, i)
	if err != nil {
		return 0, err
	}
	if A < 0 {
		return 0, num.InputErr("seepage: cross section area A=%g m² must be non-negative", A)
	}
	return v * A, nil
}

// HydraulicGradient computes the gradient over a flow path of length L
//
//	i = Δh / L
func HydraulicGradient(Δh, L float64) (float64, error) {
	if L <= 0 {
		return 0, num.InputErr("seepage: flow path length L=%g m must be positive", L)
	}
	return Δh / L, nil
}

// CriticalGradient computes the critical hydraulic gradient at which upward
// seepage lifts the soil skeleton
//
//	icr = (Gs - 1) / (1 + e)
//
// Gs is the specific gravity of the solids (> 1) and e the void ratio
func CriticalGradient(Gs, e float64) (float64, error) {
	if Gs <= 1 {
		return 0, num.InputErr("seepage: specific gravity Gs=%g must exceed 1", Gs)
	}
	if e <= -1 {
		return 0, num.InputErr("seepage: void ratio e=%g must exceed -1", e)
	}
	return (Gs - 1.0) / (1.0 + e), nil
}

// IsPiping reports whether the acting gradient reaches the critical one.
// This is an exact threshold decision: i == icr already counts as piping,
// and no approximate-equality tolerance is involved.
func IsPiping(i, icr float64) bool {
	return i >= icr
}

// PipingSafety computes the factor of safety against piping
//
//	Fs = icr / i
//
// the acting gradient i must be positive
func PipingSafety(i, icr float64) (float64, error) {
	if i <= 0 {
		return 0, num.InputErr("seepage: acting gradient i=%g must be positive", i)
	}
	if icr <= 0 {
		return 0, num.InputErr("seepage: critical gradient icr=%g must be positive", icr)
	}
	return icr / i, nil
}

// FlowNetDischarge estimates the discharge per unit width from a flow net
// with nf flow channels and nd equipotential drops
//
//	q = k・h・nf/nd   [m³/s per m]
func FlowNetDischarge(k, h float64, nf, nd int) (float64, error) {
	if k < 0 {
		return 0, num.InputErr("seepage: permeability k=%g m/s must be non-negative", k)
	}
	if h < 0 {
		return 0, num.InputErr("seepage: head loss h=%g m must be non-negative", h)
	}
	if nf < 1 || nd < 1 {
		return 0, num.InputErr("seepage: flow net needs nf=%d ≥ 1 and nd=%d ≥ 1", nf, nd)
	}
	return k * h * float64(nf) / float64(nd), nil
}
