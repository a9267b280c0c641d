/*Package bins implements a uniform spatial index over a square domain.

The domain [0, size] x [0, size] is overlaid with square bins whose width is
the interaction cutoff, so every particle within the cutoff of a point lies in
that point's bin or one of the 8 bins around it. Bins store particle indices
only. The particle data stays with the caller.
*/
package bins

import (
	"sort"

	"github.com/phil-mansfield/shortrange/geom"
)

// Positions is a read-only view of particle positions. The index of a
// particle in the view is its identity.
type Positions interface {
	Len() int
	Pos(i int) (x, y float64)
}

// Index maps bin keys to the sorted indices of the particles inside them.
type Index struct {
	grid    geom.Grid
	binSize float64

	bins  [][]int
	owner []int
}

// New returns an empty Index for a domain with the given side length. The
// index has Cells(size, binSize) bins on a side.
func New(size, binSize float64) *Index {
	idx := &Index{}
	idx.Init(size, binSize)
	return idx
}

// Init (re)initializes an Index, dropping any previous contents.
func (idx *Index) Init(size, binSize float64) {
	lda := geom.Cells(size, binSize)
	idx.grid.Init([2]int{0, 0}, [2]int{lda, lda})
	idx.binSize = binSize

	if cap(idx.bins) >= idx.grid.Area {
		idx.bins = idx.bins[:idx.grid.Area]
	} else {
		idx.bins = make([][]int, idx.grid.Area)
	}
	idx.Clear()
}

// Lda returns the number of bins along one side of the grid.
func (idx *Index) Lda() int { return idx.grid.Length }

// Len returns the total number of bins.
func (idx *Index) Len() int { return idx.grid.Area }

// BinSize returns the width of a bin.
func (idx *Index) BinSize() float64 { return idx.binSize }

// Key linearizes a bin coordinate to column + row*Lda.
func (idx *Index) Key(col, row int) int { return idx.grid.Idx(col, row) }

// Coords returns the bin coordinate of a key.
func (idx *Index) Coords(key int) (col, row int) { return idx.grid.Coords(key) }

// BinOf returns the bin containing the position (x, y). Positions must lie in
// [0, size]; anything else is out of contract and is clamped onto the grid
// only so that the result is a valid bin.
func (idx *Index) BinOf(x, y float64) (col, row int) {
	if idx.grid.Length == 1 {
		return 0, 0
	}
	return idx.grid.Clamp(
		geom.BinCoord(x, idx.binSize), geom.BinCoord(y, idx.binSize),
	)
}

// Clear empties every bin.
func (idx *Index) Clear() {
	for i := range idx.bins {
		idx.bins[i] = idx.bins[i][:0]
	}
	idx.owner = idx.owner[:0]
}

// Build clears the index and inserts every particle into the bin containing
// its current position.
func (idx *Index) Build(ps Positions) {
	idx.Clear()

	n := ps.Len()
	if cap(idx.owner) >= n {
		idx.owner = idx.owner[:n]
	} else {
		idx.owner = make([]int, n)
	}

	for i := 0; i < n; i++ {
		col, row := idx.BinOf(ps.Pos(i))
		key := idx.Key(col, row)
		idx.bins[key] = append(idx.bins[key], i)
		idx.owner[i] = key
	}
}

// Update moves every particle whose position has left its bin into the new
// bin. Afterwards the index is identical to one produced by Build. Update
// falls back to Build if the particle count has changed since the last call.
func (idx *Index) Update(ps Positions) {
	if ps.Len() != len(idx.owner) {
		idx.Build(ps)
		return
	}

	for i := range idx.owner {
		col, row := idx.BinOf(ps.Pos(i))
		key := idx.Key(col, row)
		if key == idx.owner[i] {
			continue
		}
		idx.bins[idx.owner[i]] = remove(idx.bins[idx.owner[i]], i)
		idx.bins[key] = insert(idx.bins[key], i)
		idx.owner[i] = key
	}
}

// Bin returns the particles in the bin with the given key. Keys which have
// never been populated return an empty slice. The slice belongs to the Index
// and is only valid until the next Build or Update.
func (idx *Index) Bin(key int) []int {
	if key < 0 || key >= len(idx.bins) {
		return nil
	}
	return idx.bins[key]
}

// Count returns the number of particles in the index.
func (idx *Index) Count() int { return len(idx.owner) }

// Owner returns the key of the bin which holds particle i.
func (idx *Index) Owner(i int) int { return idx.owner[i] }

// Neighbors returns the keys of the 3x3 block of bins centered on
// (col, row). Bins outside the grid are skipped: the boundary is open, not
// periodic.
func (idx *Index) Neighbors(col, row int) []int {
	return idx.AppendNeighbors(make([]int, 0, 9), col, row)
}

// AppendNeighbors is Neighbors, but appends to keys.
func (idx *Index) AppendNeighbors(keys []int, col, row int) []int {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if key, ok := idx.grid.IdxCheck(col+dx, row+dy); ok {
				keys = append(keys, key)
			}
		}
	}
	return keys
}

func insert(xs []int, x int) []int {
	i := sort.SearchInts(xs, x)
	xs = append(xs, 0)
	copy(xs[i+1:], xs[i:])
	xs[i] = x
	return xs
}

func remove(xs []int, x int) []int {
	i := sort.SearchInts(xs, x)
	if i == len(xs) || xs[i] != x {
		return xs
	}
	copy(xs[i:], xs[i+1:])
	return xs[:len(xs)-1]
}
