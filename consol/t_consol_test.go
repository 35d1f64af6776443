// Copyright 2026 The MoonGeo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package consol

import (
	"errors"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/SupremeHuaji/MoonGeo/num"
)

func Test_settle01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("settle01. layer settlement forms")

	s, err := SettlementLayer(0.5, 0.8, 100.0, 2.0)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	io.Pf("s = %g m\n", s)
	chk.Float64(tst, "s (av form)", 0.001, s, 0.0556)

	s, err = SettlementLayerEs(5000.0, 100.0, 2.0)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "s (Es form)", 1e-15, s, 0.04)

	sf, err := SettlementFinal(0.3, 100.0, 4.0)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "s∞", 1e-15, sf, 0.12)
}

func Test_settle02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("settle02. input violations")

	if _, err := SettlementLayer(0.5, -1.0, 100, 2); !errors.Is(err, num.ErrInput) {
		tst.Errorf("e0=-1 must fail with ErrInput\n")
		return
	}
	if _, err := SettlementLayerEs(0, 100, 2); !errors.Is(err, num.ErrInput) {
		tst.Errorf("Es=0 must fail with ErrInput\n")
		return
	}
	if _, err := SettlementFinal(-0.3, 100, 4); !errors.Is(err, num.ErrInput) {
		tst.Errorf("mv<0 must fail with ErrInput\n")
		return
	}
	if _, err := SettlementLayer(0.5, 0.8, 100, -2); !errors.Is(err, num.ErrInput) {
		tst.Errorf("Hi<0 must fail with ErrInput\n")
		return
	}
}

func Test_consol01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("consol01. time factor and degree of consolidation")

	tv, err := TimeFactor(1.0e-8, 3.15e7, 5.0)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	io.Pf("Tv = %g\n", tv)
	chk.Float64(tst, "Tv (1 year, H=5m)", 0.001, tv, 0.0126)

	u, err := DegreeOfConsolidation(0.1)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "U(0.1)", 0.05, u, 0.357)

	u, err = DegreeOfConsolidation(0)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "U(0)", 1e-15, u, 0)

	u, err = DegreeOfConsolidation(10)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "U(10)", 1e-10, u, 1.0)

	if _, err := TimeFactor(0, 3.15e7, 5); !errors.Is(err, num.ErrInput) {
		tst.Errorf("Cv=0 must fail with ErrInput\n")
		return
	}
	if _, err := TimeFactor(1e-8, 3.15e7, 0); !errors.Is(err, num.ErrInput) {
		tst.Errorf("H=0 must fail with ErrInput\n")
		return
	}
	if _, err := DegreeOfConsolidation(-0.1); !errors.Is(err, num.ErrInput) {
		tst.Errorf("Tv<0 must fail with ErrInput\n")
		return
	}
}

func Test_consol02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("consol02. U(Tv) monotone, bounded, continuous at crossover")

	Tv, U, err := SampleU(2.0, 401)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	for i := 1; i < len(U); i++ {
		if U[i] < U[i-1] {
			tst.Errorf("U must be non-decreasing: U(%g)=%g < U(%g)=%g\n", Tv[i], U[i], Tv[i-1], U[i-1])
			return
		}
		if U[i] < 0 || U[i] > 1 {
			tst.Errorf("U(%g)=%g outside [0,1]\n", Tv[i], U[i])
			return
		}
	}

	// the two branches agree to ~1e-3 at Tv=0.2
	ua, _ := DegreeOfConsolidation(tvSwitch - 1e-12)
	ub, _ := DegreeOfConsolidation(tvSwitch)
	io.Pf("U(0.2⁻) = %g   U(0.2) = %g\n", ua, ub)
	chk.Float64(tst, "branch mismatch at crossover", 2e-3, ua, ub)

	dia, err := PlotU(1.2, 81, 12)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if !strings.Contains(dia, "degree of consolidation") {
		tst.Errorf("U(Tv) plot must carry its caption\n")
		return
	}
	if chk.Verbose {
		io.Pf("%s\n", dia)
	}
}
