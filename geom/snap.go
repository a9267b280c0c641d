package geom

import (
	"math"
)

// SnapEps is the distance above a cell boundary within which a coordinate is
// still assigned to the lower cell.
const SnapEps = 0.001

// BinCoord returns the index of the cell along one axis which contains x.
//
// Cell k covers [(k-1)*width + SnapEps, k*width + SnapEps), so a coordinate
// sitting exactly on a grid line goes to the lower-indexed cell, and anything
// more than SnapEps past a line rounds up to the next index. Every cell is
// exactly width wide, which means two coordinates no more than width apart
// always land in the same or adjacent cells.
func BinCoord(x, width float64) int {
	k := int(math.Floor(x / width))
	if x-float64(k)*width < SnapEps {
		return k
	}
	return k + 1
}

// Cells returns the number of cells along one side of a domain of the given
// size, including the guard cell needed by BinCoord's upward rounding.
// Degenerate domains collapse to a single cell.
func Cells(size, width float64) int {
	if size <= 0 || width <= 0 || width >= size {
		return 1
	}
	return int(math.Ceil(size/width)) + 1
}
