package shortest

import (
	"math"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/mat"
)

// FullMatrix is the dense n×n matrix of pairwise shortest-path
// distances. The diagonal is zero; off-diagonal entries of a connected
// graph are finite and positive; unreachable pairs are +Inf.
type FullMatrix struct {
	n int
	d *mat.Dense
}

// AllPairs runs a single-source search from every node and assembles
// the full distance matrix. O(n·m log n), or O(n·(n+m)) unweighted.
func AllPairs(g graph.Graph, ix *Index, length Length) (*FullMatrix, error) {
	n := ix.Len()
	if n == 0 {
		return &FullMatrix{n: 0}, nil
	}
	d := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		row, err := Row(g, ix, length, i)
		if err != nil {
			return nil, err
		}
		d.SetRow(i, row)
	}

	return &FullMatrix{n: n, d: d}, nil
}

// Shape returns the matrix dimensions (n, n).
func (m *FullMatrix) Shape() (int, int) { return m.n, m.n }

// At returns the distance between positions i and j.
func (m *FullMatrix) At(i, j int) float64 {
	if i == j {
		return 0
	}

	return m.d.At(i, j)
}

// HasFinite reports whether the entry (i, j) is finite.
func (m *FullMatrix) HasFinite(i, j int) bool {
	return !math.IsInf(m.At(i, j), 1)
}

// SubMatrix is an h×n matrix of distances from h selected source nodes
// (rows) to all n nodes (columns). Rows are appended one source at a
// time, which is how pivot selection grows it incrementally.
type SubMatrix struct {
	sources []int
	rows    [][]float64
	n       int
}

// NewSubMatrix returns an empty sub-matrix over n columns.
func NewSubMatrix(n int) *SubMatrix {
	return &SubMatrix{n: n}
}

// MultiSource computes one shortest-path row per listed source.
func MultiSource(g graph.Graph, ix *Index, length Length, sources []int) (*SubMatrix, error) {
	m := NewSubMatrix(ix.Len())
	for _, s := range sources {
		row, err := Row(g, ix, length, s)
		if err != nil {
			return nil, err
		}
		m.push(s, row)
	}

	return m, nil
}

func (m *SubMatrix) push(source int, row []float64) {
	m.sources = append(m.sources, source)
	m.rows = append(m.rows, row)
}

// Shape returns the matrix dimensions (h, n).
func (m *SubMatrix) Shape() (int, int) { return len(m.rows), m.n }

// Sources returns the source position of every row, in row order.
func (m *SubMatrix) Sources() []int { return m.sources }

// At returns the distance from row k's source to column j.
func (m *SubMatrix) At(k, j int) float64 { return m.rows[k][j] }

// Nearest returns the row index whose source is closest to column j,
// together with that distance. Ties go to the lowest row index. With no
// rows it returns (-1, +Inf).
func (m *SubMatrix) Nearest(j int) (int, float64) {
	best, bestD := -1, math.Inf(1)
	for k := range m.rows {
		if d := m.rows[k][j]; d < bestD {
			best, bestD = k, d
		}
	}

	return best, bestD
}
