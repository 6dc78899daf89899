package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/mushikui/internal/parser"
	"svw.info/mushikui/internal/render"
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Parse a puzzle and print it re-aligned",
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
		fmt.Println(render.Text(g))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
}
