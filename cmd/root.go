// Copyright 2026 The MoonGeo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the moongeo command line interface: one subcommand
// per formula group, scalar inputs as flags, results printed as tables and
// optional terminal diagrams.
package cmd

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "moongeo",
	Short: "Closed-form geotechnical engineering calculations",
	Long: `moongeo - closed-form geotechnical engineering calculations

Lateral earth pressure (Rankine, Coulomb, at-rest), Terzaghi bearing
capacity, settlement and consolidation, Darcy seepage and piping checks,
and soil phase relationships.

Each subcommand evaluates one formula group from fully specified scalar
inputs in SI units (kPa, kN/m³, metres, seconds, degrees) and prints the
results; sequencing calculations into a design is left to the caller.

Use 'moongeo --help' to see available commands.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(
			tint.NewHandler(os.Stderr, &tint.Options{
				Level:      level,
				TimeFormat: "15:04:05",
			}),
		))
	},
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log inputs and derived values")
}
