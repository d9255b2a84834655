package domain

// Board holds current values and which cells are fixed givens.
type Board struct {
	Values [9][9]uint8 `json:"board"`
	Fixed  [9][9]bool  `json:"fixed,omitempty"`
}

// Clone returns an independent copy. Arrays copy by value, so this is a
// plain dereference; the method exists to make branch isolation explicit
// at call sites.
func (b *Board) Clone() *Board {
	cp := *b
	return &cp
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hint describes a strategy suggestion for the UI.
type Hint struct {
	Message  string       `json:"message,omitempty"`
	Cells    []CellCoord  `json:"cells,omitempty"`
	Digit    uint8        `json:"digit,omitempty"`
	Strategy StrategyTier `json:"strategy,omitempty"`
}

// SearchParams configures the stochastic local search. Zero values select
// the defaults applied by Normalized.
type SearchParams struct {
	InitialTemperature float64 `json:"initialTemperature,omitempty" yaml:"initial_temperature"`
	CoolingRate        float64 `json:"coolingRate,omitempty" yaml:"cooling_rate"`
	MaxIterations      int     `json:"maxIterations,omitempty" yaml:"max_iterations"`
	Seed               int64   `json:"seed,omitempty" yaml:"seed"`
}

const (
	// DefaultTemperature is the starting annealing temperature.
	DefaultTemperature = 1.15
	// DefaultCoolingRate is the per-iteration geometric decay factor.
	DefaultCoolingRate = 0.99
	// DefaultAnnealIterations caps a simulated annealing run.
	DefaultAnnealIterations = 500
	// DefaultClimbIterations caps a plain hill climbing run.
	DefaultClimbIterations = 150
)

// Normalized fills unset cooling rate and iteration cap with defaults.
// Annealing selects the 500-iteration cap, hill climbing the 150 one.
// The temperature is left as given: zero is a meaningful value (the
// annealer exits at its temperature-zero check), so the 1.15 default is
// applied by the callers that know whether the field was set at all.
func (p SearchParams) Normalized(annealing bool) SearchParams {
	if p.CoolingRate == 0 {
		p.CoolingRate = DefaultCoolingRate
	}
	if p.MaxIterations == 0 {
		if annealing {
			p.MaxIterations = DefaultAnnealIterations
		} else {
			p.MaxIterations = DefaultClimbIterations
		}
	}
	return p
}

// Puzzle is a persisted Sudoku with metadata.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Board      Board      `json:"board"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	CreatedAt  int64      `json:"createdAt"`
}
