// Package topology holds the static structure of a 9x9 grid: cells, the
// 27 units (rows, columns, boxes) and the peer relation. Tables are built
// once at init and never mutated afterwards.
package topology

const (
	// Cells is the number of cells on the grid.
	Cells = 81
	// UnitCount is rows + columns + boxes.
	UnitCount = 27
	// UnitsPerCell is how many units contain any given cell.
	UnitsPerCell = 3
	// PeersPerCell is 8 row-mates + 8 column-mates + 4 extra box-mates.
	PeersPerCell = 20
)

var (
	// Units lists the cell indices of every unit: rows 0-8, columns 9-17,
	// boxes 18-26.
	Units [UnitCount][9]int

	// UnitsOf gives the three units containing each cell (row, column, box).
	UnitsOf [Cells][UnitsPerCell]int

	// PeersOf gives the 20 distinct cells sharing a unit with each cell.
	PeersOf [Cells][PeersPerCell]int

	// Names labels cells Norvig-style: rows A-I, columns 1-9 ("A1".."I9").
	Names [Cells]string
)

// Index maps (row, col) in 0..8 to a cell index.
func Index(r, c int) int { return r*9 + c }

// Coord is the inverse of Index.
func Coord(i int) (r, c int) { return i / 9, i % 9 }

// BoxAt returns the box number (0..8) of a cell position.
func BoxAt(r, c int) int { return (r/3)*3 + c/3 }

// Box returns the 9 cell indices of box n in row-major order.
func Box(n int) [9]int { return Units[18+n] }

// Cross returns the cartesian product of two label strings, pairing every
// character of a with every character of b.
func Cross(a, b string) []string {
	out := make([]string, 0, len(a)*len(b))
	for i := 0; i < len(a); i++ {
		for j := 0; j < len(b); j++ {
			out = append(out, string(a[i])+string(b[j]))
		}
	}
	return out
}

func init() {
	for i, name := range Cross("ABCDEFGHI", "123456789") {
		Names[i] = name
	}
	// rows, then columns
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			Units[r][c] = Index(r, c)
			Units[9+c][r] = Index(r, c)
		}
	}
	// boxes
	for n := 0; n < 9; n++ {
		br, bc := (n/3)*3, (n%3)*3
		k := 0
		for dr := 0; dr < 3; dr++ {
			for dc := 0; dc < 3; dc++ {
				Units[18+n][k] = Index(br+dr, bc+dc)
				k++
			}
		}
	}
	for i := 0; i < Cells; i++ {
		r, c := Coord(i)
		UnitsOf[i] = [UnitsPerCell]int{r, 9 + c, 18 + BoxAt(r, c)}

		seen := [Cells]bool{}
		k := 0
		for _, u := range UnitsOf[i] {
			for _, cell := range Units[u] {
				if cell == i || seen[cell] {
					continue
				}
				seen[cell] = true
				PeersOf[i][k] = cell
				k++
			}
		}
	}
}
