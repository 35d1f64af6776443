// Copyright 2026 The MoonGeo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"log/slog"

	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"

	"github.com/SupremeHuaji/MoonGeo/seepage"
)

var (
	seepageK    float64
	seepageDh   float64
	seepageL    float64
	seepageArea float64
	seepageGs   float64
	seepageE    float64
)

var seepageCmd = &cobra.Command{
	Use:   "seepage",
	Short: "Darcy flow, critical gradient and piping check",
	Long: `Compute the hydraulic gradient, Darcy velocity and flow rate, the
critical gradient of the soil, and whether the acting gradient reaches the
piping threshold.

Example:
  moongeo seepage --k 1e-4 --dh 2 --length 10 --area 10 --gs 2.65 --e 0.8`,
	RunE: runSeepage,
}

func init() {
	rootCmd.AddCommand(seepageCmd)
	seepageCmd.Flags().Float64Var(&seepageK, "k", 0, "Permeability k (m/s) [required]")
	seepageCmd.Flags().Float64Var(&seepageDh, "dh", 0, "Head loss Δh (m) [required]")
	seepageCmd.Flags().Float64Var(&seepageL, "length", 0, "Flow path length L (m) [required]")
	seepageCmd.Flags().Float64Var(&seepageArea, "area", 1, "Cross section area A (m²)")
	seepageCmd.Flags().Float64Var(&seepageGs, "gs", 2.65, "Specific gravity of solids Gs")
	seepageCmd.Flags().Float64Var(&seepageE, "e", 0.8, "Void ratio e")
	seepageCmd.MarkFlagRequired("k")
	seepageCmd.MarkFlagRequired("dh")
	seepageCmd.MarkFlagRequired("length")
}

func runSeepage(cmd *cobra.Command, args []string) error {
	slog.Debug("seepage inputs", "k", seepageK, "dh", seepageDh, "length", seepageL,
		"area", seepageArea, "gs", seepageGs, "e", seepageE)

	i, err := seepage.HydraulicGradient(seepageDh, seepageL)
	if err != nil {
		return fail(err)
	}
	v, err := seepage.DarcyVelocity(seepageK, i)
	if err != nil {
		return fail(err)
	}
	Q, err := seepage.FlowRate(seepageK, i, seepageArea)
	if err != nil {
		return fail(err)
	}
	icr, err := seepage.CriticalGradient(seepageGs, seepageE)
	if err != nil {
		return fail(err)
	}

	io.Pf("\n%v\n", io.ArgsTable("DARCY SEEPAGE & PIPING",
		"permeability", "k", seepageK,
		"head loss", "dh", seepageDh,
		"flow path length", "length", seepageL,
		"cross section area", "area", seepageArea,
		"specific gravity", "gs", seepageGs,
		"void ratio", "e", seepageE,
	))
	io.Pf("hydraulic gradient   i   = %10.4f\n", i)
	io.Pf("Darcy velocity       v   = %10.4g m/s\n", v)
	io.Pf("flow rate            Q   = %10.4g m³/s\n", Q)
	io.Pf("critical gradient    icr = %10.4f\n", icr)
	if seepage.IsPiping(i, icr) {
		io.PfRed("PIPING: acting gradient reaches the critical gradient\n")
	} else {
		Fs, err := seepage.PipingSafety(i, icr)
		if err == nil {
			io.Pf("safety factor        Fs  = %10.2f\n", Fs)
		}
		io.PfGreen("no piping: acting gradient below critical\n")
	}
	return nil
}
