package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mushikui",
	Short: "Solve, generate, and format worm-eaten multiplication puzzles",
	Long: `mushikui works with long-multiplication puzzles where hidden digits
are written as '*'. Puzzles are plain text: multiplicand, multiplier, the
partial products, and the product, one per line, right-aligned, with
optional "---" rules between the groups.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
