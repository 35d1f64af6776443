// Copyright 2026 The MoonGeo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"log/slog"

	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"

	"github.com/SupremeHuaji/MoonGeo/phase"
)

var (
	phaseN   float64
	phaseVw  float64
	phaseVv  float64
	phaseRho float64
	phaseW   float64
	phaseGs  float64
)

var phaseCmd = &cobra.Command{
	Use:   "phase",
	Short: "Soil phase relationships",
	Long: `Compute the phase quantities of a soil sample: void ratio from
porosity, degree of saturation from the water and void volumes, dry
density from the bulk density and water content, and the unit weights.

Example:
  moongeo phase --n 0.4 --vw 0.3 --vv 0.5 --rho 2.0 --w 25 --gs 2.65`,
	RunE: runPhase,
}

func init() {
	rootCmd.AddCommand(phaseCmd)
	phaseCmd.Flags().Float64Var(&phaseN, "n", 0, "Porosity n [required]")
	phaseCmd.Flags().Float64Var(&phaseVw, "vw", 0, "Water volume Vw (m³)")
	phaseCmd.Flags().Float64Var(&phaseVv, "vv", 0, "Void volume Vv (m³)")
	phaseCmd.Flags().Float64Var(&phaseRho, "rho", 0, "Bulk density ρ (Mg/m³)")
	phaseCmd.Flags().Float64Var(&phaseW, "w", 0, "Water content w (%)")
	phaseCmd.Flags().Float64Var(&phaseGs, "gs", 2.65, "Specific gravity of solids Gs")
	phaseCmd.MarkFlagRequired("n")
}

func runPhase(cmd *cobra.Command, args []string) error {
	slog.Debug("phase inputs", "n", phaseN, "vw", phaseVw, "vv", phaseVv,
		"rho", phaseRho, "w", phaseW)

	e, err := phase.VoidRatio(phaseN)
	if err != nil {
		return fail(err)
	}

	io.Pf("\n%v\n", io.ArgsTable("SOIL PHASE RELATIONSHIPS",
		"porosity", "n", phaseN,
		"specific gravity", "gs", phaseGs,
	))
	io.Pf("void ratio        e    = %8.4f\n", e)

	γsat, err := phase.SaturatedUnitWeight(phaseGs, e, 9.81)
	if err != nil {
		return fail(err)
	}
	γb, err := phase.BuoyantUnitWeight(γsat, 9.81)
	if err != nil {
		return fail(err)
	}
	io.Pf("saturated weight  γsat = %8.2f kN/m³\n", γsat)
	io.Pf("buoyant weight    γ'   = %8.2f kN/m³\n", γb)

	if phaseVv > 0 {
		sr, err := phase.DegreeOfSaturation(phaseVw, phaseVv)
		if err != nil {
			return fail(err)
		}
		io.Pf("saturation        Sr   = %8.1f %%\n", sr)
	}
	if phaseRho > 0 {
		ρd, err := phase.DryDensity(phaseRho, phaseW)
		if err != nil {
			return fail(err)
		}
		io.Pf("dry density       ρd   = %8.3f Mg/m³\n", ρd)
	}
	return nil
}
