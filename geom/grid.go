package geom

import (
	"iter"

	"deedles.dev/xiter"
)

// CeilDiv returns a / b rounded up. b must be positive.
func CeilDiv[T Integer](a, b T) T {
	return (a + b - 1) / b
}

// GridSize returns the number of columns and rows of cells of the
// given size that are needed to completely cover r. Partial cells
// along the right and bottom edges are counted.
func GridSize[T Integer](r Rect[T], cell Point[T]) Point[T] {
	if r.Empty() {
		return Point[T]{}
	}
	return Pt(CeilDiv(r.Dx(), cell.X), CeilDiv(r.Dy(), cell.Y))
}

// TileGrid fills tiles with the cells of a grid covering r, in the
// same order as [TiledGrid]. If tiles is shorter than the grid, the
// remaining cells are dropped.
//
//	tiles := make([]geom.Rect[int], 4)
//	TileGrid(tiles, geom.Rt(0, 0, 6, 6), geom.Pt(4, 4))
//
// will produce
//
//	---------
//	|    |  |
//	|    |  |
//	---------
//	|    |  |
//	---------
func TileGrid[T Integer](tiles []Rect[T], r Rect[T], cell Point[T]) {
	insertTilesFromSeq(tiles, TiledGrid(r, cell))
}

// TiledGrid yields the cells of a grid of the given cell size laid
// over r, left to right and then top to bottom. Cells that overhang
// the right or bottom edge of r are clipped to it, so the union of
// the yielded rectangles is exactly r.
func TiledGrid[T Integer](r Rect[T], cell Point[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if r.Empty() || (cell.X <= 0) || (cell.Y <= 0) {
			return
		}

		for y := r.Min.Y; y < r.Max.Y; y += cell.Y {
			for x := r.Min.X; x < r.Max.X; x += cell.X {
				c := Rt(x, y, x+cell.X, y+cell.Y).Intersect(r)
				if !yield(c) {
					return
				}
			}
		}
	}
}

func insertTilesFromSeq[T Scalar](tiles []Rect[T], s iter.Seq[Rect[T]]) {
	for i, t := range xiter.Enumerate(s) {
		if i >= len(tiles) {
			return
		}
		tiles[i] = t
	}
}
