// Copyright 2026 The MoonGeo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lateral

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/SupremeHuaji/MoonGeo/num"
)

func Test_rankine01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rankine01. coefficients at φ=30°")

	ka, err := RankineKa(30)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	kp, err := RankineKp(30)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	io.Pf("Ka(30°) = %g\n", ka)
	io.Pf("Kp(30°) = %g\n", kp)
	chk.Float64(tst, "Ka(30°)", 0.01, ka, 1.0/3.0)
	chk.Float64(tst, "Kp(30°)", 0.1, kp, 3.0)
	chk.Float64(tst, "Ka・Kp", 1e-14, ka*kp, 1.0)
}

func Test_rankine02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rankine02. monotonicity and active/passive ordering")

	Φ := utl.LinSpace(0, 89, 90)
	kaPrev, _ := RankineKa(Φ[0])
	kpPrev, _ := RankineKp(Φ[0])
	for _, φ := range Φ[1:] {
		ka, err := RankineKa(φ)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		kp, err := RankineKp(φ)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		if ka >= kaPrev {
			tst.Errorf("Ka must decrease strictly: Ka(%g°)=%g ≥ %g\n", φ, ka, kaPrev)
			return
		}
		if kp <= kpPrev {
			tst.Errorf("Kp must increase strictly: Kp(%g°)=%g ≤ %g\n", φ, kp, kpPrev)
			return
		}
		if φ < 45 && kp <= ka {
			tst.Errorf("Kp(%g°)=%g must exceed Ka=%g\n", φ, kp, ka)
			return
		}
		kaPrev, kpPrev = ka, kp
	}
}

func Test_rankine03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rankine03. pressures and forces")

	σh, err := Pressure(1.0/3.0, 18.0, 3.0)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "σh(z=3m)", 0.5, σh, 18.0)

	P, err := Force(1.0/3.0, 18.0, 5.0)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "P(H=5m)", 1.0, P, 75.0)

	P, err = Force(0.333, 18.0, 0)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "P(H=0)", 1e-15, P, 0)
}

func Test_rankine04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rankine04. input violations")

	if _, err := RankineKa(-1); !errors.Is(err, num.ErrInput) {
		tst.Errorf("RankineKa(-1°) must fail with ErrInput\n")
		return
	}
	if _, err := RankineKp(90); !errors.Is(err, num.ErrInput) {
		tst.Errorf("RankineKp(90°) must fail with ErrInput\n")
		return
	}
	if _, err := Pressure(0.333, 0, 3); !errors.Is(err, num.ErrInput) {
		tst.Errorf("Pressure with γ=0 must fail with ErrInput\n")
		return
	}
	if _, err := Pressure(0.333, 18, -0.1); !errors.Is(err, num.ErrInput) {
		tst.Errorf("Pressure with z<0 must fail with ErrInput\n")
		return
	}
	if _, err := Force(0.333, 18, -1); !errors.Is(err, num.ErrInput) {
		tst.Errorf("Force with H<0 must fail with ErrInput\n")
		return
	}
}

func Test_atrest01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("atrest01. Jaky coefficient")

	k0, err := JakyK0(30)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "K0(30°)", 1e-14, k0, 0.5)

	koc, err := K0OC(30, 4)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "K0,oc(30°, OCR=4)", 1e-13, koc, 1.0)

	if _, err := K0OC(30, 0.5); !errors.Is(err, num.ErrInput) {
		tst.Errorf("K0OC with OCR<1 must fail with ErrInput\n")
		return
	}
}

func Test_coulomb01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("coulomb01. degeneration to Rankine")

	for _, φ := range []float64{0, 10, 20, 30, 40} {
		ka, err := CoulombKa(φ, 0, 0, 0)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		kaR, _ := RankineKa(φ)
		chk.Float64(tst, io.Sf("Ka(φ=%g°)", φ), 1e-12, ka, kaR)

		kp, err := CoulombKp(φ, 0, 0, 0)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		kpR, _ := RankineKp(φ)
		chk.Float64(tst, io.Sf("Kp(φ=%g°)", φ), 1e-12, kp, kpR)
	}
}

func Test_coulomb02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("coulomb02. wall friction and angle bounds")

	// reference value: φ=30°, δ=20°, vertical wall, level backfill
	ka, err := CoulombKa(30, 20, 0, 0)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	io.Pf("Ka(30°, δ=20°) = %g\n", ka)
	chk.Float64(tst, "Ka(30°, δ=20°)", 0.005, ka, 0.297)

	// wall friction reduces the active push
	ka0, _ := CoulombKa(30, 0, 0, 0)
	if ka >= ka0 {
		tst.Errorf("wall friction must reduce Ka: %g ≥ %g\n", ka, ka0)
		return
	}

	if _, err := CoulombKa(30, 35, 0, 0); !errors.Is(err, num.ErrInput) {
		tst.Errorf("δ > φ must fail with ErrInput\n")
		return
	}
	if _, err := CoulombKa(30, -5, 0, 0); !errors.Is(err, num.ErrInput) {
		tst.Errorf("δ < 0 must fail with ErrInput\n")
		return
	}
	if _, err := CoulombKa(30, 10, 0, 35); !errors.Is(err, num.ErrInput) {
		tst.Errorf("β > φ must fail with ErrInput\n")
		return
	}
	if _, err := CoulombKa(89, 89, 80, 0); !errors.Is(err, num.ErrDomain) {
		tst.Errorf("δ+θ beyond 90° must fail with ErrDomain\n")
		return
	}
}

func Test_wall01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("wall01. wall model")

	var wall Wall
	err := wall.Init(wall.GetPrms(true))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	io.Pf("Ka = %g\n", wall.Ka())
	io.Pf("Kp = %g\n", wall.Kp())
	if wall.Kp() <= wall.Ka() {
		tst.Errorf("Kp=%g must exceed Ka=%g\n", wall.Kp(), wall.Ka())
		return
	}

	σmax, err := wall.MaxPressure(5)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	thrust, err := wall.Thrust(5)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "thrust vs base pressure", 1e-12, thrust, 0.5*σmax*5)

	err = wall.Init(Params{&P{N: "bogus", V: 1}})
	if !errors.Is(err, num.ErrInput) {
		tst.Errorf("unknown parameter name must fail with ErrInput\n")
		return
	}
}
