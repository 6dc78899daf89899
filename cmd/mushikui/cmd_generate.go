package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"svw.info/mushikui/internal/domain"
	"svw.info/mushikui/internal/generator"
	"svw.info/mushikui/internal/render"
	"svw.info/mushikui/internal/solver"
)

var (
	genSeed       int64
	genDifficulty string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a puzzle with a unique solution",
	RunE: func(cmd *cobra.Command, args []string) error {
		seed := genSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		var diff domain.Difficulty
		switch strings.ToLower(genDifficulty) {
		case "easy":
			diff = domain.Easy
		case "hard":
			diff = domain.Hard
		case "expert":
			diff = domain.Expert
		default:
			diff = domain.Medium
		}
		g := generator.NewUniqueGenerator(solver.NewBacktrackingSolver())
		p, _, err := g.Generate(context.Background(), seed, diff)
		if err != nil {
			return err
		}
		fmt.Println(render.Text(&p.Grid))
		fmt.Printf("# seed=%d difficulty=%s\n", seed, genDifficulty)
		return nil
	},
}

func init() {
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "random seed (0 picks one)")
	generateCmd.Flags().StringVar(&genDifficulty, "difficulty", "medium", "easy|medium|hard|expert")
	rootCmd.AddCommand(generateCmd)
}
