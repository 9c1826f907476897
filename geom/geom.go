// Package geom provides utilities for manipulating rectangular geometry.
//
// It is patterned heavily after image.Rectangle and image.Point, but
// is generic over the numeric type so that the same code can describe
// texel grids in whatever unit a container format stores them in.
package geom

import "golang.org/x/exp/constraints"

// Scalar is a constraint for the types that geom types and functions
// can handle.
type Scalar interface {
	constraints.Float | Integer
}

// Integer is a constraint for any integer type.
type Integer interface {
	constraints.Integer
}

// Point is an X, Y coordinate pair.
type Point[T Scalar] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{X: x, Y: y}.
func Pt[T Scalar](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Rect is a rectangle with Min inclusive and Max exclusive.
type Rect[T Scalar] struct {
	Min, Max Point[T]
}

// Rt is shorthand for Rect[T]{Min: Pt(x0, y0), Max: Pt(x1, y1)}.
func Rt[T Scalar](x0, y0, x1, y1 T) Rect[T] {
	return Rect[T]{Min: Pt(x0, y0), Max: Pt(x1, y1)}
}

func (r Rect[T]) Dx() T { return r.Max.X - r.Min.X }

func (r Rect[T]) Dy() T { return r.Max.Y - r.Min.Y }

// Empty reports whether r contains no points.
func (r Rect[T]) Empty() bool {
	return (r.Min.X >= r.Max.X) || (r.Min.Y >= r.Max.Y)
}

// Intersect returns the largest rectangle contained by both r and s.
// If they do not overlap, the zero Rect is returned.
func (r Rect[T]) Intersect(s Rect[T]) Rect[T] {
	r.Min.X = max(r.Min.X, s.Min.X)
	r.Min.Y = max(r.Min.Y, s.Min.Y)
	r.Max.X = min(r.Max.X, s.Max.X)
	r.Max.Y = min(r.Max.Y, s.Max.Y)
	if r.Empty() {
		return Rect[T]{}
	}
	return r
}
