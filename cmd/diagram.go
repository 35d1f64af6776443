// Copyright 2026 The MoonGeo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/cpmech/gosl/utl"
	"github.com/guptarohit/asciigraph"

	"github.com/SupremeHuaji/MoonGeo/consol"
	"github.com/SupremeHuaji/MoonGeo/lateral"
)

// pressureDiagram renders the linear lateral pressure distribution σh(z)
// over a wall of height H as a terminal graph
func pressureDiagram(K, γ, H float64) (string, error) {
	Z := utl.LinSpace(0, H, 41)
	σ := make([]float64, len(Z))
	for j, z := range Z {
		p, err := lateral.Pressure(K, γ, z)
		if err != nil {
			return "", err
		}
		σ[j] = p
	}
	return asciigraph.Plot(σ,
		asciigraph.Height(12),
		asciigraph.Caption("lateral pressure [kPa] from wall top (left) to base (right)"),
	), nil
}

// consolidationDiagram renders the U(Tv) consolidation curve up to tvMax
func consolidationDiagram(tvMax float64) (string, error) {
	return consol.PlotU(tvMax, 81, 12)
}
