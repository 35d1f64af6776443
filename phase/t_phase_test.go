// Copyright 2026 The MoonGeo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phase

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/SupremeHuaji/MoonGeo/num"
)

func Test_phase01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("phase01. void ratio and porosity round trip")

	e, err := VoidRatio(0.4)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "e(n=0.4)", 1e-14, e, 2.0/3.0)

	for _, n := range utl.LinSpace(0.05, 0.95, 19) {
		e, err := VoidRatio(n)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		back, err := Porosity(e)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		if !num.ApproxEqual(back, n, 1e-12) {
			tst.Errorf("round trip failed: n=%g → e=%g → n=%g\n", n, e, back)
			return
		}
	}

	if _, err := VoidRatio(1.0); !errors.Is(err, num.ErrInput) {
		tst.Errorf("n=1 must fail with ErrInput\n")
		return
	}
	if _, err := Porosity(-0.1); !errors.Is(err, num.ErrInput) {
		tst.Errorf("e<0 must fail with ErrInput\n")
		return
	}
}

func Test_phase02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("phase02. saturation and densities")

	sr, err := DegreeOfSaturation(0.3, 0.5)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Sr", 1e-13, sr, 60.0)

	ρd, err := DryDensity(2.0, 25.0)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "ρd", 1e-15, ρd, 1.6)

	if _, err := DegreeOfSaturation(0.6, 0.5); !errors.Is(err, num.ErrInput) {
		tst.Errorf("Vw>Vv must fail with ErrInput\n")
		return
	}
	if _, err := DegreeOfSaturation(0.3, 0); !errors.Is(err, num.ErrInput) {
		tst.Errorf("Vv=0 must fail with ErrInput\n")
		return
	}
	if _, err := DryDensity(0, 25); !errors.Is(err, num.ErrInput) {
		tst.Errorf("ρ=0 must fail with ErrInput\n")
		return
	}
}

func Test_phase03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("phase03. unit weights")

	γsat, err := SaturatedUnitWeight(2.65, 0.8, 9.81)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	io.Pf("γsat = %g kN/m³\n", γsat)
	chk.Float64(tst, "γsat", 0.01, γsat, 18.8)

	γb, err := BuoyantUnitWeight(γsat, 9.81)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "γ'", 1e-13, γb, γsat-9.81)

	if _, err := BuoyantUnitWeight(5.0, 9.81); !errors.Is(err, num.ErrInput) {
		tst.Errorf("γsat < γw must fail with ErrInput\n")
		return
	}
}
