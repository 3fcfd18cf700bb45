package main

import (
	"os"

	"github.com/spf13/cobra"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/gridio"
)

var validateUnique bool

var commandValidate = &cobra.Command{
	Use:   "validate [grid-file]",
	Short: "Check a grid for completeness and conflicts",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runValidate,
}

func init() {
	commandValidate.Flags().BoolVar(&validateUnique, "unique", false, "also count solutions (capped at 2) to judge uniqueness")
	mainCommand.AddCommand(commandValidate)
}

type validateOutput struct {
	Complete  bool               `json:"complete"`
	Conflicts []domain.CellCoord `json:"conflicts"`
	Solutions *int               `json:"solutions,omitempty"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := "-"
	if len(args) == 1 {
		path = args[0]
	}
	grid, err := gridio.ReadGrid(path)
	if err != nil {
		return err
	}
	svc := newService(0)
	complete, conflicts, err := svc.Validate(&grid)
	if err != nil {
		return err
	}
	out := validateOutput{
		Complete:  complete,
		Conflicts: conflicts,
	}
	if validateUnique {
		n, err := svc.Solutions(&grid, 2)
		if err != nil {
			return err
		}
		out.Solutions = &n
	}
	return gridio.WriteJSON(os.Stdout, out)
}
