// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	spglib "github.com/crystalkit/go-spglib"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print tool and engine versions",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "spgcell %s\n", cliVersion)
		fmt.Fprintf(cmd.OutOrStdout(), "spglib  %s\n", spglib.Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
