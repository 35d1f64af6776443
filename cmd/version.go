// Copyright 2026 The MoonGeo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const Version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of moongeo",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("moongeo v%s\n", Version)
		fmt.Println("Closed-form geotechnical engineering calculations")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
