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
	"math"
	"testing"

	"github.com/spatialmodel/meanopac/databox"
)

func TestFillMeanTables(t *testing.T) {
	planck := databox.New(3, 4, 2)
	rosseland := new(databox.DataBox)
	rosseland.CopyMetadata(planck)

	err := FillMeanTables("test", planck, rosseland, func(idx []int) (float64, float64) {
		v := float64(100*idx[0] + 10*idx[1] + idx[2] + 1)
		return v, 1 / v
	})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 2; k++ {
				v := float64(100*i + 10*j + k + 1)
				if have, want := planck.Get(i, j, k), ToLog(v); have != want {
					t.Errorf("planck (%d, %d, %d) = %g, want %g", i, j, k, have, want)
				}
				if have, want := rosseland.Get(i, j, k), ToLog(1/v); have != want {
					t.Errorf("rosseland (%d, %d, %d) = %g, want %g", i, j, k, have, want)
				}
			}
		}
	}
}

func TestFillMeanTablesNaN(t *testing.T) {
	planck := databox.New(5, 5)
	rosseland := databox.New(5, 5)
	err := FillMeanTables("nan", planck, rosseland, func(idx []int) (float64, float64) {
		if idx[0] == 3 && idx[1] == 1 {
			return 1, math.NaN()
		}
		return 1, 1
	})
	if !IsKind(err, ConstructionError) {
		t.Errorf("want construction error, have %v", err)
	}
}

func TestFillMeanTablesShape(t *testing.T) {
	err := FillMeanTables("shape", databox.New(2, 3), databox.New(3, 2), func([]int) (float64, float64) { return 1, 1 })
	if !IsKind(err, ContractError) {
		t.Errorf("want contract error, have %v", err)
	}
}
