// Copyright 2026 The MoonGeo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"log/slog"

	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"

	"github.com/SupremeHuaji/MoonGeo/consol"
)

var (
	settleAv      float64
	settleE0      float64
	settleSigma   float64
	settleH       float64
	settleCv      float64
	settleTime    float64
	settleDrain   float64
	settleDiagram bool
)

var settleCmd = &cobra.Command{
	Use:   "settle",
	Short: "Layer settlement and consolidation progress",
	Long: `Compute the settlement of a compressible layer from the
coefficient of compressibility, and the consolidation progress (time
factor and degree of consolidation) when Cv and an elapsed time are given.

Examples:
  # final settlement only
  moongeo settle --av 0.5 --e0 0.8 --dsigma 100 --thickness 2

  # with consolidation progress after one year, drainage path 5 m
  moongeo settle --av 0.5 --e0 0.8 --dsigma 100 --thickness 2 \
      --cv 1e-8 --time 3.15e7 --drainage 5`,
	RunE: runSettle,
}

func init() {
	rootCmd.AddCommand(settleCmd)
	settleCmd.Flags().Float64Var(&settleAv, "av", 0, "Coefficient of compressibility av (MPa⁻¹) [required]")
	settleCmd.Flags().Float64Var(&settleE0, "e0", 0, "Initial void ratio e0")
	settleCmd.Flags().Float64Var(&settleSigma, "dsigma", 0, "Stress increment Δσz (kPa) [required]")
	settleCmd.Flags().Float64Var(&settleH, "thickness", 0, "Layer thickness Hi (m) [required]")
	settleCmd.Flags().Float64Var(&settleCv, "cv", 0, "Coefficient of consolidation Cv (m²/s)")
	settleCmd.Flags().Float64Var(&settleTime, "time", 0, "Elapsed time t (s)")
	settleCmd.Flags().Float64Var(&settleDrain, "drainage", 0, "Drainage path length H (m)")
	settleCmd.Flags().BoolVar(&settleDiagram, "diagram", false, "Draw the U(Tv) curve")
	settleCmd.MarkFlagRequired("av")
	settleCmd.MarkFlagRequired("dsigma")
	settleCmd.MarkFlagRequired("thickness")
}

func runSettle(cmd *cobra.Command, args []string) error {
	slog.Debug("settle inputs", "av", settleAv, "e0", settleE0,
		"dsigma", settleSigma, "thickness", settleH)

	s, err := consol.SettlementLayer(settleAv, settleE0, settleSigma, settleH)
	if err != nil {
		return fail(err)
	}

	io.Pf("\n%v\n", io.ArgsTable("SETTLEMENT & CONSOLIDATION",
		"compressibility", "av", settleAv,
		"initial void ratio", "e0", settleE0,
		"stress increment", "dsigma", settleSigma,
		"layer thickness", "thickness", settleH,
	))
	io.Pf("final settlement   s = %8.4f m\n", s)

	if settleCv > 0 {
		tv, err := consol.TimeFactor(settleCv, settleTime, settleDrain)
		if err != nil {
			return fail(err)
		}
		u, err := consol.DegreeOfConsolidation(tv)
		if err != nil {
			return fail(err)
		}
		io.Pf("time factor        Tv = %8.4f\n", tv)
		io.Pf("consolidation      U  = %8.1f %%\n", u*100)
		io.Pf("settlement so far  st = %8.4f m\n", u*s)
	}

	if settleDiagram {
		dia, err := consolidationDiagram(1.2)
		if err != nil {
			return fail(err)
		}
		fmt.Println()
		fmt.Println(dia)
	}
	return nil
}
