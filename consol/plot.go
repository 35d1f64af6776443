// Copyright 2026 The MoonGeo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package consol

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/guptarohit/asciigraph"
)

// SampleU samples the consolidation curve U(Tv) at npts points over
// [0, tvMax]; used by the plotter and by the CLI diagram
func SampleU(tvMax float64, npts int) (Tv, U []float64, err error) {
	Tv = utl.LinSpace(0, tvMax, npts)
	U = make([]float64, npts)
	for i, tv := range Tv {
		U[i], err = DegreeOfConsolidation(tv)
		if err != nil {
			return
		}
	}
	return
}

// PlotU renders the degree of consolidation curve U(Tv) as a terminal graph
func PlotU(tvMax float64, npts, height int) (string, error) {
	_, U, err := SampleU(tvMax, npts)
	if err != nil {
		return "", err
	}
	return asciigraph.Plot(U,
		asciigraph.Height(height),
		asciigraph.Caption(io.Sf("degree of consolidation U over Tv ∈ [0, %g]", tvMax)),
	), nil
}
