// Copyright 2026 The MoonGeo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"

	"github.com/SupremeHuaji/MoonGeo/lateral"
)

var (
	rankinePhi     float64
	rankineGamma   float64
	rankineHeight  float64
	rankineDiagram bool
)

var rankineCmd = &cobra.Command{
	Use:   "rankine",
	Short: "Rankine and at-rest lateral earth pressure",
	Long: `Compute Rankine's active and passive coefficients, Jaky's at-rest
coefficient, the pressure at the wall base and the resultant thrust.

Examples:
  # 5 m wall, φ=30°, γ=18 kN/m³
  moongeo rankine --phi 30 --gamma 18 --height 5

  # with the pressure distribution diagram
  moongeo rankine --phi 30 --gamma 18 --height 5 --diagram`,
	RunE: runRankine,
}

func init() {
	rootCmd.AddCommand(rankineCmd)
	rankineCmd.Flags().Float64Var(&rankinePhi, "phi", 0, "Friction angle φ (degrees) [required]")
	rankineCmd.Flags().Float64Var(&rankineGamma, "gamma", 18, "Unit weight γ (kN/m³)")
	rankineCmd.Flags().Float64Var(&rankineHeight, "height", 0, "Wall height H (m) [required]")
	rankineCmd.Flags().BoolVar(&rankineDiagram, "diagram", false, "Draw the pressure distribution")
	rankineCmd.MarkFlagRequired("phi")
	rankineCmd.MarkFlagRequired("height")
}

func runRankine(cmd *cobra.Command, args []string) error {
	slog.Debug("rankine inputs", "phi", rankinePhi, "gamma", rankineGamma, "height", rankineHeight)

	ka, err := lateral.RankineKa(rankinePhi)
	if err != nil {
		return fail(err)
	}
	kp, err := lateral.RankineKp(rankinePhi)
	if err != nil {
		return fail(err)
	}
	k0, err := lateral.JakyK0(rankinePhi)
	if err != nil {
		return fail(err)
	}
	σmax, err := lateral.Pressure(ka, rankineGamma, rankineHeight)
	if err != nil {
		return fail(err)
	}
	P, err := lateral.Force(ka, rankineGamma, rankineHeight)
	if err != nil {
		return fail(err)
	}

	io.Pf("\n%v\n", io.ArgsTable("RANKINE EARTH PRESSURE",
		"friction angle", "phi", rankinePhi,
		"unit weight", "gamma", rankineGamma,
		"wall height", "height", rankineHeight,
	))
	io.Pf("active coefficient     Ka   = %8.4f\n", ka)
	io.Pf("passive coefficient    Kp   = %8.4f\n", kp)
	io.Pf("at-rest coefficient    K0   = %8.4f\n", k0)
	io.Pf("base active pressure   σmax = %8.2f kPa\n", σmax)
	io.Pf("active thrust          Pa   = %8.2f kN/m (at H/3 above base)\n", P)

	if rankineDiagram {
		dia, err := pressureDiagram(ka, rankineGamma, rankineHeight)
		if err != nil {
			return fail(err)
		}
		fmt.Println()
		fmt.Println(dia)
	}
	return nil
}

// fail reports a formula error on stderr and propagates it so Execute exits
// non-zero; cobra's own usage message is suppressed for clean failures
func fail(err error) error {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	return err
}
