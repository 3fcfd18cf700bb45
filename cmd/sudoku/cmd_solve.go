package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/gridio"
)

var solveLine bool

var commandSolve = &cobra.Command{
	Use:   "solve [grid-file]",
	Short: "Solve a grid",
	Long: `Solve a grid read from a file or stdin ("-"). The input is either a
JSON 9x9 array or the 81-character line form with . or 0 for empty cells.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	commandSolve.Flags().BoolVar(&solveLine, "line", false, "print the solved grid in the 81-character line form")
	mainCommand.AddCommand(commandSolve)
}

func runSolve(cmd *cobra.Command, args []string) error {
	path := "-"
	if len(args) == 1 {
		path = args[0]
	}
	grid, err := gridio.ReadGrid(path)
	if err != nil {
		return err
	}
	svc := newService(0)
	if err := svc.Solve(&grid); err != nil {
		return err
	}
	if solveLine {
		fmt.Fprintln(os.Stdout, grid.Line())
		return nil
	}
	return gridio.WriteJSON(os.Stdout, struct {
		Board domain.Grid `json:"board"`
	}{grid})
}
