// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	spglib "github.com/crystalkit/go-spglib"
)

var spacegroupCmd = &cobra.Command{
	Use:   "spacegroup HALL...",
	Short: "Print space-group database records by hall number",
	Long: `Looks up each hall number (1..530) in the engine's space-group database
and prints the record: International, Schoenflies and Hall symbols,
setting choice, pointgroup and arithmetic crystal class.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSpacegroup,
}

func init() {
	rootCmd.AddCommand(spacegroupCmd)
}

func runSpacegroup(cmd *cobra.Command, args []string) error {
	for i, arg := range args {
		hall, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("hall number %q is not an integer", arg)
		}
		sg, err := spglib.NewSpacegroup(hall)
		if err != nil {
			return fmt.Errorf("hall %d: %w", hall, err)
		}
		if i > 0 {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		renderSpacegroup(cmd.OutOrStdout(), hall, sg)
	}
	return nil
}

// renderSpacegroup prints one database record. Pure function of its inputs.
func renderSpacegroup(w io.Writer, hall int, sg *spglib.Spacegroup) {
	fmt.Fprintf(w, "hall %d:\n", hall)
	fmt.Fprintf(w, "  number                 %d\n", sg.Number)
	fmt.Fprintf(w, "  international (short)  %s\n", sg.InternationalShort)
	fmt.Fprintf(w, "  international (full)   %s\n", sg.InternationalFull)
	fmt.Fprintf(w, "  schoenflies            %s\n", sg.Schoenflies)
	fmt.Fprintf(w, "  hall symbol            %s\n", sg.HallSymbol)
	if sg.Choice != "" {
		fmt.Fprintf(w, "  choice                 %s\n", sg.Choice)
	}
	fmt.Fprintf(w, "  pointgroup             %s (%s)\n", sg.PointgroupInternational, sg.PointgroupSchoenflies)
	fmt.Fprintf(w, "  arithmetic class       %d (%s)\n", sg.ArithmeticCrystalClassNumber, sg.ArithmeticCrystalClassSymbol)
}
