/*
Copyright © 2024 the MeanOpac authors.
This file is part of MeanOpac.

MeanOpac is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

MeanOpac is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with MeanOpac.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package databox holds dense, multi-dimensional tables of float64 values
// that can be interpolated along any subset of their dimensions.
//
// Axes are numbered starting from the fastest-varying dimension: for a
// table created with Resize(nRho, nT), axis 0 is the temperature dimension
// and axis 1 is the density dimension. Coordinates passed to Interp, Get,
// and Set are given in the order the dimensions were declared.
package databox

import (
	"fmt"
	"math"

	"github.com/ctessum/sparse"
	"gonum.org/v1/gonum/floats"
)

// MaxRank is the maximum number of dimensions a DataBox can have.
const MaxRank = 4

// snapTol is the distance, in fractions of a grid spacing, within which an
// interpolation coordinate is treated as lying exactly on a grid node.
const snapTol = 1e-10

// Range is a uniform grid along one axis of a DataBox.
type Range struct {
	Min, Max float64
	N        int
}

// Dx returns the grid spacing.
func (r Range) Dx() float64 {
	if r.N < 2 {
		return 0
	}
	return (r.Max - r.Min) / float64(r.N-1)
}

// X returns the grid value at index i.
func (r Range) X(i int) float64 {
	return r.Min + float64(i)*r.Dx()
}

// Nodes returns all of the grid values.
func (r Range) Nodes() []float64 {
	if r.N < 2 {
		return []float64{r.Min}
	}
	return floats.Span(make([]float64, r.N), r.Min, r.Max)
}

// DataBox is a dense table with up to MaxRank dimensions. Each axis is
// either indexed, where coordinates are integer indices, or interpolated,
// where coordinates are continuous values on a uniform Range.
// The zero value is an empty table; use Resize to allocate it.
type DataBox struct {
	data *sparse.DenseArray

	// ranges holds the grid of each interpolated axis, indexed by axis
	// number. Indexed axes hold nil.
	ranges []*Range

	onDevice bool
}

// New returns a zeroed DataBox with the given dimensions.
func New(dims ...int) *DataBox {
	b := new(DataBox)
	b.Resize(dims...)
	return b
}

// Resize allocates zeroed storage with the given dimensions, slowest-varying
// first. All axes become indexed; any previous contents are discarded.
func (b *DataBox) Resize(dims ...int) {
	if len(dims) == 0 || len(dims) > MaxRank {
		panic(fmt.Errorf("databox: invalid rank %d", len(dims)))
	}
	for _, d := range dims {
		if d < 1 {
			panic(fmt.Errorf("databox: invalid dimensions %v", dims))
		}
	}
	shape := make([]int, len(dims))
	copy(shape, dims)
	b.data = sparse.ZerosDense(shape...)
	b.ranges = make([]*Range, len(dims))
	b.onDevice = false
}

// Rank returns the number of dimensions in b.
func (b *DataBox) Rank() int {
	if b == nil || b.data == nil {
		return 0
	}
	return len(b.data.Shape)
}

// Shape returns a copy of the dimensions of b, slowest-varying first.
func (b *DataBox) Shape() []int {
	if b == nil || b.data == nil {
		return nil
	}
	s := make([]int, len(b.data.Shape))
	copy(s, b.data.Shape)
	return s
}

// Len returns the length of axis.
func (b *DataBox) Len(axis int) int {
	b.checkAxis(axis)
	return b.data.Shape[b.Rank()-1-axis]
}

func (b *DataBox) checkAxis(axis int) {
	if axis < 0 || axis >= b.Rank() {
		panic(fmt.Errorf("databox: axis %d out of bounds for rank %d", axis, b.Rank()))
	}
}

// SetRange makes axis interpolated on a uniform grid of n points between
// min and max. n must equal the length of the axis.
func (b *DataBox) SetRange(axis int, min, max float64, n int) {
	b.checkAxis(axis)
	if n != b.Len(axis) {
		panic(fmt.Errorf("databox: range of %d points set on axis %d of length %d", n, axis, b.Len(axis)))
	}
	b.ranges[axis] = &Range{Min: min, Max: max, N: n}
}

// Range returns the grid of axis and whether the axis is interpolated.
func (b *DataBox) Range(axis int) (Range, bool) {
	b.checkAxis(axis)
	if r := b.ranges[axis]; r != nil {
		return *r, true
	}
	return Range{}, false
}

// IsInterpolated reports whether axis has a continuous grid.
func (b *DataBox) IsInterpolated(axis int) bool {
	_, ok := b.Range(axis)
	return ok
}

// CopyMetadata gives b the same dimensions and axis grids as src,
// with freshly zeroed storage.
func (b *DataBox) CopyMetadata(src *DataBox) {
	b.Resize(src.Shape()...)
	for i, r := range src.ranges {
		if r != nil {
			rr := *r
			b.ranges[i] = &rr
		}
	}
}

// Get returns the value at the given index.
func (b *DataBox) Get(index ...int) float64 {
	return b.data.Get(index...)
}

// Set sets the value at the given index.
func (b *DataBox) Set(val float64, index ...int) {
	b.data.Set(val, index...)
}

// Elements returns the underlying storage in row-major order.
// It is shared with b.
func (b *DataBox) Elements() []float64 {
	if b.IsEmpty() {
		return nil
	}
	return b.data.Elements
}

// Interp returns the value of b at the given coordinates, one per
// dimension in declaration order. Interpolated axes are interpolated
// linearly, and coordinates beyond the edge of an axis's Range take the
// value at the nearest edge. Coordinates on indexed axes are rounded to the
// nearest index, which must be within bounds.
func (b *DataBox) Interp(coords ...float64) float64 {
	rank := b.Rank()
	if len(coords) != rank {
		panic(fmt.Errorf("databox: %d coordinates for rank %d table", len(coords), rank))
	}
	var lo [MaxRank]int
	var frac [MaxRank]float64
	for d, x := range coords {
		axis := rank - 1 - d
		n := b.data.Shape[d]
		r := b.ranges[axis]
		if r == nil {
			i := int(math.Round(x))
			if i < 0 || i >= n {
				panic(fmt.Errorf("databox: index %d out of bounds on axis %d of length %d", i, axis, n))
			}
			lo[d] = i
			continue
		}
		lo[d], frac[d] = r.locate(x)
	}

	var v float64
	var idx [MaxRank]int
	for corner := 0; corner < 1<<uint(rank); corner++ {
		w := 1.
		for d := 0; d < rank; d++ {
			if corner&(1<<uint(d)) == 0 {
				idx[d] = lo[d]
				w *= 1 - frac[d]
			} else {
				if frac[d] == 0 {
					w = 0
					break
				}
				idx[d] = lo[d] + 1
				w *= frac[d]
			}
		}
		if w == 0 {
			continue
		}
		v += w * b.data.Get(idx[:rank]...)
	}
	return v
}

// locate returns the index of the grid node at or below x and the
// fractional distance from that node to the next one. x is clamped to the
// grid.
func (r *Range) locate(x float64) (int, float64) {
	if r.N < 2 {
		return 0, 0
	}
	t := (x - r.Min) / r.Dx()
	if math.IsNaN(t) {
		panic(fmt.Errorf("databox: cannot interpolate at %g", x))
	}
	last := float64(r.N - 1)
	if t <= 0 {
		return 0, 0
	}
	if t >= last {
		return r.N - 1, 0
	}
	if rt := math.Round(t); math.Abs(t-rt) < snapTol {
		return int(rt), 0
	}
	i := math.Floor(t)
	return int(i), t - i
}

// OnDevice returns an independent copy of b marked as resident on the
// execution target used for queries. Changes to either copy do not affect
// the other.
func (b *DataBox) OnDevice() *DataBox {
	o := new(DataBox)
	if b.IsEmpty() {
		o.onDevice = true
		return o
	}
	o.CopyMetadata(b)
	copy(o.data.Elements, b.data.Elements)
	o.onDevice = true
	return o
}

// IsOnDevice reports whether b was created by OnDevice.
func (b *DataBox) IsOnDevice() bool { return b.onDevice }

// Finalize releases the storage held by b. It is safe to call more than
// once, and on a nil DataBox.
func (b *DataBox) Finalize() {
	if b == nil {
		return
	}
	b.data = nil
	b.ranges = nil
}

// IsEmpty reports whether b holds no storage.
func (b *DataBox) IsEmpty() bool { return b == nil || b.data == nil }
