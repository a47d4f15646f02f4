// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/crystalkit/go-spglib/cellio"
)

var reduceCmd = &cobra.Command{
	Use:   "reduce FILE",
	Short: "Reduce a cell's basis (Niggli or Delaunay)",
	Long: `Reads one structure file, replaces the basis with its reduced form and
writes the result as YAML to stdout, or to --output in the format its
extension names. Fractional positions are carried over unchanged, not
re-expressed against the reduced basis.`,
	Args: cobra.ExactArgs(1),
	RunE: runReduce,
}

func init() {
	rootCmd.AddCommand(reduceCmd)
	reduceCmd.Flags().String("method", "niggli", "reduction method: niggli or delaunay")
	reduceCmd.Flags().Float64("symprec", 1e-5, "reduction tolerance")
	reduceCmd.Flags().String("block", "", "CIF data block to read")
	reduceCmd.Flags().StringP("output", "o", "", "write to this file instead of stdout")
}

func runReduce(cmd *cobra.Command, args []string) error {
	cell, err := cellio.ReadFile(args[0], blockOptions(cmd)...)
	if err != nil {
		return err
	}

	method, _ := cmd.Flags().GetString("method")
	switch method {
	case "niggli":
		err = cell.NiggliReduce(symprecFor(cmd))
	case "delaunay":
		err = cell.DelaunayReduce(symprecFor(cmd))
	default:
		return fmt.Errorf("unknown reduction method %q, want niggli or delaunay", method)
	}
	if err != nil {
		return err
	}
	slog.Debug("reduced basis", "path", args[0], "method", method)

	return writeResult(cmd, cell)
}
