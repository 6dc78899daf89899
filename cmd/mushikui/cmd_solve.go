package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"svw.info/mushikui/internal/parser"
	"svw.info/mushikui/internal/render"
	"svw.info/mushikui/internal/solver"
)

var solveStats bool

var solveCmd = &cobra.Command{
	Use:   "solve [file]",
	Short: "Solve a puzzle from a file or stdin and print every solution",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args)
		if err != nil {
			return err
		}
		g, err := parser.Parse(text)
		if err != nil {
			return err
		}
		s := solver.NewBacktrackingSolver()
		sols, st, err := s.SolveAll(context.Background(), g)
		if err != nil {
			return err
		}
		for i, sol := range sols {
			if i > 0 {
				fmt.Println()
			}
			fmt.Println(render.Text(sol))
		}
		if len(sols) == 0 {
			fmt.Println("no solution")
		}
		if solveStats {
			fmt.Fprintf(os.Stderr, "solutions=%d nodes=%d dur=%v\n", len(sols), st.Nodes, st.Duration)
		}
		return nil
	},
}

func readInput(args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func init() {
	solveCmd.Flags().BoolVar(&solveStats, "stats", false, "print node count and duration to stderr")
	rootCmd.AddCommand(solveCmd)
}
