package domain

// CellStatus grades a single cell of a checked attempt.
type CellStatus string

const (
	StatusCorrect CellStatus = "C" // editable cell matching the solution
	StatusWrong   CellStatus = "W" // editable cell contradicting the solution
	StatusMissing CellStatus = "N" // editable cell left empty
	StatusGiven   CellStatus = "P" // prefilled given from the puzzle
)

// CellStats aggregates grading counts over the 81 cells.
type CellStats struct {
	Correct   int `json:"correct"`
	Wrong     int `json:"wrong"`
	Empty     int `json:"empty"`
	Prefilled int `json:"prefilled"`
}

// Report is the outcome of grading an attempt against a stored
// puzzle/solution pair. Input is the normalized attempt: givens carry
// the puzzle's values regardless of what the attempt held there.
type Report struct {
	Statuses    [9][9]CellStatus `json:"statuses"`
	Input       Grid             `json:"input"`
	Solved      bool             `json:"solved"`
	Complete    bool             `json:"complete"`
	Alternative bool             `json:"alternative,omitempty"`
	ErrorRows   []int            `json:"errorRows,omitempty"`
	ErrorCols   []int            `json:"errorCols,omitempty"`
	ErrorBoxes  []int            `json:"errorBoxes,omitempty"`
	Stats       CellStats        `json:"stats"`
}
