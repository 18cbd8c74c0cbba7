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

package databox

import (
	"fmt"
	"os"
	"sort"

	"github.com/ctessum/cdf"
)

// Variable is a DataBox to be stored under Name in a NetCDF file.
type Variable struct {
	Name string
	Box  *DataBox
}

// Write writes vars to NetCDF file w. All of the variables must have
// the same dimensions, which are given the names in dims (slowest-varying
// first). attrs are written as global attributes and must have values of
// type string, []float64, or []int32. Axis grids are stored as the
// per-variable attributes range_min, range_max, and interpolated, indexed
// by axis number.
func Write(w *os.File, dims []string, attrs map[string]interface{}, vars ...Variable) error {
	if len(vars) == 0 {
		return fmt.Errorf("databox: no variables to write")
	}
	shape := vars[0].Box.Shape()
	if len(shape) != len(dims) {
		return fmt.Errorf("databox: %d dimension names for rank %d tables", len(dims), len(shape))
	}
	for _, v := range vars[1:] {
		if !sameShape(shape, v.Box.Shape()) {
			return fmt.Errorf("databox: variable %s has shape %v; want %v", v.Name, v.Box.Shape(), shape)
		}
	}

	h := cdf.NewHeader(dims, shape)

	// Sort the attribute names so they write in the same order every time.
	names := make([]string, 0, len(attrs))
	for n := range attrs {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		switch attrs[n].(type) {
		case string, []float64, []int32:
			h.AddAttribute("", n, attrs[n])
		default:
			return fmt.Errorf("databox: invalid type %T for attribute %s", attrs[n], n)
		}
	}

	for _, v := range vars {
		h.AddVariable(v.Name, dims, []float64{0})
		rank := v.Box.Rank()
		rmin, rmax := make([]float64, rank), make([]float64, rank)
		interp := make([]int32, rank)
		for axis := 0; axis < rank; axis++ {
			if r, ok := v.Box.Range(axis); ok {
				rmin[axis], rmax[axis] = r.Min, r.Max
				interp[axis] = 1
			}
		}
		h.AddAttribute(v.Name, "range_min", rmin)
		h.AddAttribute(v.Name, "range_max", rmax)
		h.AddAttribute(v.Name, "interpolated", interp)
	}
	h.Define()

	f, err := cdf.Create(w, h) // writes the header to w
	if err != nil {
		return err
	}
	for _, v := range vars {
		if err = writeNCF(f, v.Name, v.Box); err != nil {
			return fmt.Errorf("databox: writing variable %s to netcdf file: %v", v.Name, err)
		}
	}
	return cdf.UpdateNumRecs(w)
}

func writeNCF(f *cdf.File, name string, b *DataBox) error {
	data := b.Elements()
	n := 1
	for _, v := range b.Shape() {
		n *= v
	}
	if len(data) != n {
		return fmt.Errorf("dims are %d but array length is %d", n, len(data))
	}
	end := f.Header.Lengths(name)
	start := make([]int, len(end))
	w := f.Writer(name, start, end)
	_, err := w.Write(data)
	return err
}

// Read reads the named variables from the NetCDF file in rw, returning
// them in the same order along with the file's global attributes.
func Read(rw cdf.ReaderWriterAt, names ...string) ([]*DataBox, map[string]interface{}, error) {
	f, err := cdf.Open(rw)
	if err != nil {
		return nil, nil, fmt.Errorf("databox: %v", err)
	}
	attrs := make(map[string]interface{})
	for _, a := range f.Header.Attributes("") {
		attrs[a] = f.Header.GetAttribute("", a)
	}

	boxes := make([]*DataBox, len(names))
	for i, name := range names {
		dims := f.Header.Lengths(name)
		if len(dims) == 0 {
			return nil, nil, fmt.Errorf("databox: variable %s not in file", name)
		}
		if len(dims) > MaxRank {
			return nil, nil, fmt.Errorf("databox: variable %s has rank %d; the maximum is %d", name, len(dims), MaxRank)
		}
		for _, d := range dims {
			if d < 1 {
				return nil, nil, fmt.Errorf("databox: variable %s has invalid dimensions %v", name, dims)
			}
		}
		b := New(dims...)
		r := f.Reader(name, nil, nil)
		if _, err = r.Read(b.Elements()); err != nil {
			return nil, nil, fmt.Errorf("databox: reading variable %s: %v", name, err)
		}

		rmin, ok1 := f.Header.GetAttribute(name, "range_min").([]float64)
		rmax, ok2 := f.Header.GetAttribute(name, "range_max").([]float64)
		interp, ok3 := f.Header.GetAttribute(name, "interpolated").([]int32)
		if !ok1 || !ok2 || !ok3 || len(rmin) != len(dims) || len(rmax) != len(dims) || len(interp) != len(dims) {
			return nil, nil, fmt.Errorf("databox: variable %s has missing or invalid range attributes", name)
		}
		for axis, isInterp := range interp {
			if isInterp != 0 {
				b.SetRange(axis, rmin[axis], rmax[axis], b.Len(axis))
			}
		}
		boxes[i] = b
	}
	return boxes, attrs, nil
}

func sameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
