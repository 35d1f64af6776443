// Copyright 2026 The MoonGeo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"log/slog"

	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"

	"github.com/SupremeHuaji/MoonGeo/lateral"
)

var (
	coulombPhi    float64
	coulombDelta  float64
	coulombTheta  float64
	coulombBeta   float64
	coulombGamma  float64
	coulombHeight float64
)

var coulombCmd = &cobra.Command{
	Use:   "coulomb",
	Short: "Coulomb lateral earth pressure with wall friction",
	Long: `Compute Coulomb's active and passive coefficients for a wall with
interface friction, batter and sloping backfill, and the resulting base
pressure and thrust.

Example:
  moongeo coulomb --phi 30 --delta 20 --gamma 18 --height 5`,
	RunE: runCoulomb,
}

func init() {
	rootCmd.AddCommand(coulombCmd)
	coulombCmd.Flags().Float64Var(&coulombPhi, "phi", 0, "Friction angle φ (degrees) [required]")
	coulombCmd.Flags().Float64Var(&coulombDelta, "delta", 0, "Wall interface friction δ (degrees)")
	coulombCmd.Flags().Float64Var(&coulombTheta, "theta", 0, "Wall batter from vertical θ (degrees)")
	coulombCmd.Flags().Float64Var(&coulombBeta, "beta", 0, "Backfill slope β (degrees)")
	coulombCmd.Flags().Float64Var(&coulombGamma, "gamma", 18, "Unit weight γ (kN/m³)")
	coulombCmd.Flags().Float64Var(&coulombHeight, "height", 0, "Wall height H (m) [required]")
	coulombCmd.MarkFlagRequired("phi")
	coulombCmd.MarkFlagRequired("height")
}

func runCoulomb(cmd *cobra.Command, args []string) error {
	slog.Debug("coulomb inputs", "phi", coulombPhi, "delta", coulombDelta,
		"theta", coulombTheta, "beta", coulombBeta)

	var wall lateral.Wall
	err := wall.Init(lateral.Params{
		&lateral.P{N: "phi", V: coulombPhi},
		&lateral.P{N: "delta", V: coulombDelta},
		&lateral.P{N: "theta", V: coulombTheta},
		&lateral.P{N: "beta", V: coulombBeta},
		&lateral.P{N: "gamma", V: coulombGamma},
	})
	if err != nil {
		return fail(err)
	}
	σmax, err := wall.MaxPressure(coulombHeight)
	if err != nil {
		return fail(err)
	}
	P, err := wall.Thrust(coulombHeight)
	if err != nil {
		return fail(err)
	}

	io.Pf("\n%v\n", io.ArgsTable("COULOMB EARTH PRESSURE",
		"friction angle", "phi", coulombPhi,
		"wall friction", "delta", coulombDelta,
		"wall batter", "theta", coulombTheta,
		"backfill slope", "beta", coulombBeta,
		"unit weight", "gamma", coulombGamma,
		"wall height", "height", coulombHeight,
	))
	io.Pf("active coefficient    Ka   = %8.4f\n", wall.Ka())
	io.Pf("passive coefficient   Kp   = %8.4f\n", wall.Kp())
	io.Pf("base active pressure  σmax = %8.2f kPa\n", σmax)
	io.Pf("active thrust         Pa   = %8.2f kN/m\n", P)
	return nil
}
