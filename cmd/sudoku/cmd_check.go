package main

import (
	"os"

	"github.com/spf13/cobra"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/gridio"
)

var (
	checkPuzzlePath   string
	checkInputPath    string
	checkSolutionPath string
)

var commandCheck = &cobra.Command{
	Use:   "check",
	Short: "Grade an attempt against a puzzle",
	Long: `Grade an attempt cell by cell. Given cells report P, correct entries C,
wrong entries W, and blanks N. Without --solution the puzzle is re-solved
to obtain the reference grid.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	commandCheck.Flags().StringVar(&checkPuzzlePath, "puzzle", "", "puzzle grid file")
	commandCheck.Flags().StringVar(&checkInputPath, "input", "", "attempt grid file")
	commandCheck.Flags().StringVar(&checkSolutionPath, "solution", "", "solution grid file (derived from the puzzle when omitted)")
	_ = commandCheck.MarkFlagRequired("puzzle")
	_ = commandCheck.MarkFlagRequired("input")
	mainCommand.AddCommand(commandCheck)
}

func runCheck(cmd *cobra.Command, args []string) error {
	puzzle, err := gridio.ReadGrid(checkPuzzlePath)
	if err != nil {
		return err
	}
	input, err := gridio.ReadGrid(checkInputPath)
	if err != nil {
		return err
	}
	svc := newService(0)
	var solution domain.Grid
	if checkSolutionPath != "" {
		if solution, err = gridio.ReadGrid(checkSolutionPath); err != nil {
			return err
		}
	} else {
		solution = puzzle.Clone()
		if err := svc.Solve(&solution); err != nil {
			return err
		}
	}
	report, err := svc.Checker.Evaluate(&puzzle, &solution, &input)
	if err != nil {
		return err
	}
	return gridio.WriteJSON(os.Stdout, report)
}
