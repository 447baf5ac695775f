package lattice

import (
	"fmt"
	"math/rand"
)

// New validates and deep-copies the three grids into an Instance.
// field must be L×L, row (L-1)×L and col L×(L-1); every value must be +1 or -1.
// For L=1 there are no couplings: row and col may be nil, empty, or
// (for col) a single empty row.
// Returns an error wrapping ErrInvalidInstance on any violation.
// Complexity: O(L²) time and memory.
func New(size int, field, row, col [][]int) (*Instance, error) {
	if size < 1 {
		return nil, fmt.Errorf("size %d < 1: %w", size, ErrInvalidInstance)
	}
	f, err := copyGrid("field", field, size, size)
	if err != nil {
		return nil, err
	}
	r, err := copyGrid("row", row, size-1, size)
	if err != nil {
		return nil, err
	}
	c, err := copyGrid("col", col, size, size-1)
	if err != nil {
		return nil, err
	}

	return &Instance{size: size, field: f, row: r, col: c}, nil
}

// Uniform returns an instance of the given size where every field and
// coupling equals v (Up or Down).
func Uniform(size int, v int) (*Instance, error) {
	return New(size, fill(size, size, v), fill(size-1, size, v), fill(size, size-1, v))
}

// Random returns an instance whose entries are independent fair ±1 draws.
// A nil rng falls back to a fixed seed so the result stays reproducible.
// Draw order is field, then row, then col, each row-major.
func Random(size int, rng *rand.Rand) (*Instance, error) {
	if size < 1 {
		return nil, fmt.Errorf("size %d < 1: %w", size, ErrInvalidInstance)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	draw := func(rows, cols int) [][]int {
		g := fill(rows, cols, Up)
		for i := range g {
			for j := range g[i] {
				if rng.Intn(2) == 1 {
					g[i][j] = Down
				}
			}
		}
		return g
	}
	f := draw(size, size)
	r := draw(size-1, size)
	c := draw(size, size-1)

	return New(size, f, r, c)
}

// Size returns L.
func (in *Instance) Size() int { return in.size }

// Qubits returns L², the number of sites.
func (in *Instance) Qubits() int { return in.size * in.size }

// Qubit maps (row, col) to its row-major qubit index row*L+col.
func (in *Instance) Qubit(row, col int) int { return row*in.size + col }

// SiteOf converts a qubit index back to its (row, col) site.
func (in *Instance) SiteOf(q int) Site {
	return Site{Row: q / in.size, Col: q % in.size}
}

// InBounds reports whether (row, col) lies on the lattice.
func (in *Instance) InBounds(row, col int) bool {
	return row >= 0 && row < in.size && col >= 0 && col < in.size
}

// Field returns the field sign at (i,j).
func (in *Instance) Field(i, j int) int { return in.field[i][j] }

// RowCoupling returns the coupling between (i,j) and (i+1,j).
func (in *Instance) RowCoupling(i, j int) int { return in.row[i][j] }

// ColCoupling returns the coupling between (i,j) and (i,j+1).
func (in *Instance) ColCoupling(i, j int) int { return in.col[i][j] }

// Bonds lists every coupled pair: vertical bonds first (row-major over
// (i,j) with i < L-1), then horizontal bonds (row-major with j < L-1).
func (in *Instance) Bonds() []Bond {
	n := in.size
	out := make([]Bond, 0, 2*n*(n-1))
	for i := 0; i < n-1; i++ {
		for j := 0; j < n; j++ {
			out = append(out, Bond{A: Site{i, j}, B: Site{i + 1, j}, Coupling: in.row[i][j]})
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n-1; j++ {
			out = append(out, Bond{A: Site{i, j}, B: Site{i, j + 1}, Coupling: in.col[i][j]})
		}
	}

	return out
}

// Terms is the number of ±1 terms in the energy: L² field terms plus
// 2·L·(L-1) coupling terms.
func (in *Instance) Terms() int {
	return in.size*in.size + 2*in.size*(in.size-1)
}

// FieldGrid returns a copy of the field grid.
func (in *Instance) FieldGrid() [][]int { return clone(in.field) }

// RowGrid returns a copy of the vertical coupling grid.
func (in *Instance) RowGrid() [][]int { return clone(in.row) }

// ColGrid returns a copy of the horizontal coupling grid.
func (in *Instance) ColGrid() [][]int { return clone(in.col) }

// String renders the size and the three grids on one line.
func (in *Instance) String() string {
	return fmt.Sprintf("L=%d field=%v row=%v col=%v", in.size, in.field, in.row, in.col)
}

// copyGrid checks a rows×cols grid of ±1 values and returns a deep copy.
// A grid with zero columns may be given as nil.
func copyGrid(name string, g [][]int, rows, cols int) ([][]int, error) {
	if cols == 0 && len(g) == 0 {
		g = make([][]int, rows)
	}
	if len(g) != rows {
		return nil, fmt.Errorf("%s has %d rows, want %d: %w", name, len(g), rows, ErrInvalidInstance)
	}
	out := make([][]int, rows)
	for i, line := range g {
		if len(line) != cols {
			return nil, fmt.Errorf("%s row %d has %d entries, want %d: %w", name, i, len(line), cols, ErrInvalidInstance)
		}
		out[i] = make([]int, cols)
		for j, v := range line {
			if v != Up && v != Down {
				return nil, fmt.Errorf("%s[%d][%d] = %d not in {+1,-1}: %w", name, i, j, v, ErrInvalidInstance)
			}
			out[i][j] = v
		}
	}

	return out, nil
}

func fill(rows, cols, v int) [][]int {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	g := make([][]int, rows)
	for i := range g {
		g[i] = make([]int, cols)
		for j := range g[i] {
			g[i][j] = v
		}
	}

	return g
}

func clone(g [][]int) [][]int {
	out := make([][]int, len(g))
	for i := range g {
		out[i] = append([]int(nil), g[i]...)
	}

	return out
}
