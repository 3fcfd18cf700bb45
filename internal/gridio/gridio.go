// Package gridio decodes and encodes grids for the command line:
// either a JSON 9x9 array or the 81-character line form, read from
// files or stdin.
package gridio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"svw.info/sudoku-engine/internal/domain"
)

// ReadGrid loads a grid from path; "-" reads stdin.
func ReadGrid(path string) (domain.Grid, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return domain.Grid{}, err
	}
	return DecodeGrid(data)
}

// DecodeGrid parses either accepted grid form. JSON input goes through
// the validating row constructor, so dimension and range errors
// surface before the grid is used.
func DecodeGrid(data []byte) (domain.Grid, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var rows [][]int
		if err := json.Unmarshal(trimmed, &rows); err != nil {
			return domain.Grid{}, fmt.Errorf("parse grid json: %w", err)
		}
		return domain.FromRows(rows)
	}
	return domain.ParseLine(string(trimmed))
}

// WriteJSON writes v to w as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
