// Copyright 2026 The MoonGeo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"log/slog"

	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"

	"github.com/SupremeHuaji/MoonGeo/bearing"
	"github.com/SupremeHuaji/MoonGeo/num"
)

var (
	bearingC     float64
	bearingQ     float64
	bearingGamma float64
	bearingB     float64
	bearingPhi   float64
	bearingFs    float64
	bearingShape string
)

var bearingCmd = &cobra.Command{
	Use:   "bearing",
	Short: "Terzaghi bearing capacity of shallow foundations",
	Long: `Compute Terzaghi's bearing capacity factors, the ultimate capacity
for a strip, square or circular footing (or the local shear variant), and
the allowable capacity under a factor of safety.

Examples:
  # 2 m strip footing on c-φ soil, Fs = 3
  moongeo bearing --c 20 --q 18 --gamma 18 --width 2 --phi 20 --fs 3

  # square footing
  moongeo bearing --c 20 --q 18 --gamma 18 --width 2 --phi 20 --shape square`,
	RunE: runBearing,
}

func init() {
	rootCmd.AddCommand(bearingCmd)
	bearingCmd.Flags().Float64Var(&bearingC, "c", 0, "Cohesion c (kPa)")
	bearingCmd.Flags().Float64Var(&bearingQ, "q", 0, "Surcharge at foundation level q (kPa)")
	bearingCmd.Flags().Float64Var(&bearingGamma, "gamma", 18, "Unit weight γ (kN/m³)")
	bearingCmd.Flags().Float64VarP(&bearingB, "width", "b", 0, "Footing width B (m) [required]")
	bearingCmd.Flags().Float64Var(&bearingPhi, "phi", 0, "Friction angle φ (degrees)")
	bearingCmd.Flags().Float64Var(&bearingFs, "fs", 3, "Safety factor Fs")
	bearingCmd.Flags().StringVar(&bearingShape, "shape", "strip", "Footing shape: strip, square, circular or local")
	bearingCmd.MarkFlagRequired("width")
}

func runBearing(cmd *cobra.Command, args []string) error {
	slog.Debug("bearing inputs", "c", bearingC, "q", bearingQ, "gamma", bearingGamma,
		"width", bearingB, "phi", bearingPhi, "shape", bearingShape)

	nc, nq, nγ, err := bearing.Factors(bearingPhi)
	if err != nil {
		return fail(err)
	}

	var qu float64
	switch bearingShape {
	case "strip":
		qu, err = bearing.Capacity(bearingC, bearingQ, bearingGamma, bearingB, bearingPhi)
	case "square":
		qu, err = bearing.CapacitySquare(bearingC, bearingQ, bearingGamma, bearingB, bearingPhi)
	case "circular":
		qu, err = bearing.CapacityCircular(bearingC, bearingQ, bearingGamma, bearingB, bearingPhi)
	case "local":
		qu, err = bearing.CapacityLocal(bearingC, bearingQ, bearingGamma, bearingB, bearingPhi)
	default:
		err = num.InputErr("unknown footing shape %q", bearingShape)
	}
	if err != nil {
		return fail(err)
	}
	qa, err := bearing.Allowable(qu, bearingFs)
	if err != nil {
		return fail(err)
	}

	io.Pf("\n%v\n", io.ArgsTable("TERZAGHI BEARING CAPACITY",
		"cohesion", "c", bearingC,
		"surcharge", "q", bearingQ,
		"unit weight", "gamma", bearingGamma,
		"footing width", "width", bearingB,
		"friction angle", "phi", bearingPhi,
		"footing shape", "shape", bearingShape,
		"safety factor", "fs", bearingFs,
	))
	io.Pf("factors              Nc = %7.2f   Nq = %7.2f   Nγ = %7.2f\n", nc, nq, nγ)
	io.Pf("ultimate capacity    qu = %9.2f kPa\n", qu)
	io.Pf("allowable capacity   qa = %9.2f kPa\n", qa)
	return nil
}
