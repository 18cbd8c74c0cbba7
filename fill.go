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

package meanopac

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/meanopac/databox"
	"golang.org/x/sync/errgroup"
)

// CellFunc returns the Planck and Rosseland mean opacities, per unit mass,
// of the table cell at index idx. idx must not be modified or retained.
type CellFunc func(idx []int) (planck, rosseland float64)

// FillMeanTables sets every cell of the planck and rosseland tables, which
// must have the same shape, to the base-10 logarithm of the values
// returned by cell. Cells are computed concurrently, so cell must be safe
// for concurrent use. If any stored value is NaN, FillMeanTables fails
// with a ConstructionError naming the table.
func FillMeanTables(name string, planck, rosseland *databox.DataBox, cell CellFunc) error {
	shape := planck.Shape()
	if !sameShape(shape, rosseland.Shape()) {
		return Fail(ContractError, "%s: Planck table shape %v does not match Rosseland table shape %v",
			name, shape, rosseland.Shape())
	}
	ncells := 1
	for _, n := range shape {
		ncells *= n
	}
	start := time.Now()

	nprocs := runtime.GOMAXPROCS(0) // number of processors
	g, ctx := errgroup.WithContext(context.Background())
	for pp := 0; pp < nprocs; pp++ {
		pp := pp
		g.Go(func() error {
			idx := make([]int, len(shape))
			for ii := pp; ii < ncells; ii += nprocs {
				if ctx.Err() != nil {
					return nil
				}
				unravel(ii, shape, idx)
				kp, kr := cell(idx)
				lp, lr := ToLog(kp), ToLog(kr)
				planck.Set(lp, idx...)
				rosseland.Set(lr, idx...)
				if math.IsNaN(lp) || math.IsNaN(lr) {
					return fmt.Errorf("NaN in opacity evaluations at index %v", idx)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Fail(ConstructionError, "%s: %w", name, err)
	}
	Log.WithFields(logrus.Fields{
		"table":    name,
		"cells":    ncells,
		"duration": time.Since(start),
	}).Debug("filled mean opacity tables")
	return nil
}

// unravel sets idx to the row-major multi-index of flat index i.
func unravel(i int, shape, idx []int) {
	for d := len(shape) - 1; d >= 0; d-- {
		idx[d] = i % shape[d]
		i /= shape[d]
	}
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
