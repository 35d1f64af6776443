// Copyright 2026 The MoonGeo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lateral

import (
	"math"

	"github.com/SupremeHuaji/MoonGeo/num"
)

// checkWedge validates the angle set shared by Coulomb's active and passive
// wedge solutions. All angles in degrees:
//
//	φ -- soil friction angle         0 ≤ φ < 90
//	δ -- wall interface friction     0 ≤ δ ≤ φ
//	θ -- wall batter from vertical   |θ| < 90
//	β -- backfill slope              |β| ≤ φ
func checkWedge(φ, δ, θ, β float64) error {
	if φ < 0 || φ >= 90 {
		return num.InputErr("lateral: friction angle φ=%g° outside [0°, 90°)", φ)
	}
	if δ < 0 || δ > φ {
		return num.InputErr("lateral: wall friction δ=%g° outside [0°, φ=%g°]", δ, φ)
	}
	if θ <= -90 || θ >= 90 {
		return num.InputErr("lateral: wall batter θ=%g° outside (-90°, 90°)", θ)
	}
	if math.Abs(β) > φ {
		return num.InputErr("lateral: backfill slope β=%g° exceeds friction angle φ=%g°", β, φ)
	}
	return nil
}

// CoulombKa computes Coulomb's active earth pressure coefficient for a wall
// with interface friction δ, batter θ (from vertical, positive leaning away
// from the backfill) and backfill slope β
//
//	             cos²(φ-θ)
//	Ka = ─────────────────────────────────────────────────────────────
//	     cos²θ・cos(δ+θ)・[1 + √(sin(φ+δ)sin(φ-β)/(cos(δ+θ)cos(β-θ)))]²
//
// degenerates to Rankine's Ka for δ = θ = β = 0. Angle combinations that push
// an intermediate term outside its trigonometric domain fail with ErrDomain.
func CoulombKa(φ, δ, θ, β float64) (float64, error) {
	if err := checkWedge(φ, δ, θ, β); err != nil {
		return 0, err
	}
	cosδθ := math.Cos(num.DegToRad(δ + θ))
	cosβθ := math.Cos(num.DegToRad(β - θ))
	if cosδθ <= 0 {
		return 0, num.DomainErr("lateral: δ+θ=%g° reaches the trigonometric limit", δ+θ)
	}
	if cosβθ <= 0 {
		return 0, num.DomainErr("lateral: β-θ=%g° reaches the trigonometric limit", β-θ)
	}
	s, err := num.Sqrt(math.Sin(num.DegToRad(φ+δ)) * math.Sin(num.DegToRad(φ-β)) / (cosδθ * cosβθ))
	if err != nil {
		return 0, err
	}
	cosφθ := math.Cos(num.DegToRad(φ - θ))
	cosθ := math.Cos(num.DegToRad(θ))
	den := cosθ * cosθ * cosδθ * (1.0 + s) * (1.0 + s)
	return cosφθ * cosφθ / den, nil
}

// CoulombKp computes Coulomb's passive earth pressure coefficient with the
// same angle conventions as CoulombKa
//
//	             cos²(φ+θ)
//	Kp = ─────────────────────────────────────────────────────────────
//	     cos²θ・cos(δ-θ)・[1 - √(sin(φ+δ)sin(φ+β)/(cos(δ-θ)cos(β-θ)))]²
//
// the wedge degenerates (planar failure surface vanishes) when the square
// root term reaches 1; this fails with ErrDomain rather than diverging.
func CoulombKp(φ, δ, θ, β float64) (float64, error) {
	if err := checkWedge(φ, δ, θ, β); err != nil {
		return 0, err
	}
	cosδθ := math.Cos(num.DegToRad(δ - θ))
	cosβθ := math.Cos(num.DegToRad(β - θ))
	if cosδθ <= 0 {
		return 0, num.DomainErr("lateral: δ-θ=%g° reaches the trigonometric limit", δ-θ)
	}
	if cosβθ <= 0 {
		return 0, num.DomainErr("lateral: β-θ=%g° reaches the trigonometric limit", β-θ)
	}
	s, err := num.Sqrt(math.Sin(num.DegToRad(φ+δ)) * math.Sin(num.DegToRad(φ+β)) / (cosδθ * cosβθ))
	if err != nil {
		return 0, err
	}
	if s >= 1 {
		return 0, num.DomainErr("lateral: passive wedge degenerates for φ=%g° δ=%g° θ=%g° β=%g°", φ, δ, θ, β)
	}
	cosφθ := math.Cos(num.DegToRad(φ + θ))
	cosθ := math.Cos(num.DegToRad(θ))
	den := cosθ * cosθ * cosδθ * (1.0 - s) * (1.0 - s)
	return cosφθ * cosφθ / den, nil
}
