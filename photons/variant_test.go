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

package photons

import (
	"reflect"
	"testing"

	"github.com/spatialmodel/meanopac"
)

func TestMeanNonCGSUnitsS(t *testing.T) {
	b := TableBounds{LRhoMin: -12, LRhoMax: -6, NRho: 4, LTMin: 3, LTMax: 7, NT: 5}
	m, err := NewMeanSOpacityCGS(NewThomsonS(0), b, nil)
	if err != nil {
		t.Fatal(err)
	}
	const rho, temp = 3e-9, 2e5
	same := NewMeanNonCGSUnitsS(m, meanopac.CGSUnits)
	if p, want := same.PlanckMeanTotalScatteringCoefficient(rho, temp), m.PlanckMeanTotalScatteringCoefficient(rho, temp); p != want {
		t.Errorf("Planck %g, want %g", p, want)
	}

	// Code units of length 1e5 cm and temperature 1e3 K.
	units := meanopac.UnitSystem{Time: 1, Mass: 1, Length: 1e5, Temperature: 1e3}
	n := NewMeanNonCGSUnitsS(m, units)
	r := n.RosselandMeanTotalScatteringCoefficient(rho*1e15, temp/1e3)
	if want := m.RosselandMeanTotalScatteringCoefficient(rho, temp) * 1e5; different(r, want, 1e-9) {
		t.Errorf("Rosseland %g, want %g", r, want)
	}
	if n.Units() != units || n.NLambda() != 0 {
		t.Error("accessors")
	}
}

// meanSAlternatives reports Is for every MeanSVariant alternative, in
// declaration order.
func meanSAlternatives(v MeanSVariant) []bool {
	return []bool{
		Is[MeanSOpacityScaleFree](v),
		Is[MeanSOpacityCGS](v),
		Is[MeanNonCGSUnitsS](v),
	}
}

func TestMeanSVariant(t *testing.T) {
	b := TableBounds{LRhoMin: -2, LRhoMax: 2, NRho: 3, LTMin: 0, LTMax: 2, NT: 3}
	cgs, err := NewMeanSOpacityCGS(lambdaS{}, b, []float64{1, 1})
	if err != nil {
		t.Fatal(err)
	}
	scaleFree, err := NewMeanSOpacityScaleFree(NewGrayS(4), b, nil)
	if err != nil {
		t.Fatal(err)
	}
	nonCGS := NewMeanNonCGSUnitsS(cgs, meanopac.UnitSystem{Time: 1, Mass: 1, Length: 10, Temperature: 1})
	if nonCGS.Mean().NLambda() != cgs.NLambda() {
		t.Error("wrapped tables")
	}

	for _, test := range []struct {
		name   string
		v      MeanSVariant
		want   meanSModel
		active int
	}{
		{"scale free", NewMeanSVariant(scaleFree), scaleFree, 0},
		{"cgs", NewMeanSVariant(cgs), cgs, 1},
		{"non-cgs", NewMeanSVariant(nonCGS), nonCGS, 2},
	} {
		t.Run(test.name, func(t *testing.T) {
			wantIs := make([]bool, 3)
			wantIs[test.active] = true
			v := test.v
			if have := meanSAlternatives(v); !reflect.DeepEqual(have, wantIs) {
				t.Errorf("Is = %v, want %v", have, wantIs)
			}
			if v.NLambda() != test.want.NLambda() {
				t.Errorf("nlambda %d, want %d", v.NLambda(), test.want.NLambda())
			}
			d := v.GetOnDevice()
			if have := meanSAlternatives(d); !reflect.DeepEqual(have, wantIs) {
				t.Errorf("device Is = %v, want %v", have, wantIs)
			}
			for _, pt := range [][2]float64{{0.5, 3}, {20, 40}, {1e-3, 1}} {
				p := v.PlanckMeanTotalScatteringCoefficient(pt[0], pt[1])
				if want := test.want.PlanckMeanTotalScatteringCoefficient(pt[0], pt[1]); p != want {
					t.Errorf("%v: Planck %g, want %g", pt, p, want)
				}
				if dp := d.PlanckMeanTotalScatteringCoefficient(pt[0], pt[1]); dp != p {
					t.Errorf("%v: device Planck %g, host %g", pt, dp, p)
				}
				r := v.RosselandMeanTotalScatteringCoefficient(pt[0], pt[1])
				if want := test.want.RosselandMeanTotalScatteringCoefficient(pt[0], pt[1]); r != want {
					t.Errorf("%v: Rosseland %g, want %g", pt, r, want)
				}
				if dr := d.RosselandMeanTotalScatteringCoefficient(pt[0], pt[1]); dr != r {
					t.Errorf("%v: device Rosseland %g, host %g", pt, dr, r)
				}
			}
			d.Finalize()
		})
	}

	var zero MeanSVariant
	if have, want := meanSAlternatives(zero), []bool{true, false, false}; !reflect.DeepEqual(have, want) {
		t.Errorf("zero value Is = %v, want %v", have, want)
	}
	if zero.NLambda() != 0 {
		t.Errorf("zero value nlambda %d", zero.NLambda())
	}
	if c, ok := Get[MeanSOpacityCGS](NewMeanSVariant(cgs)); !ok || c.NLambda() != 2 {
		t.Error("Get")
	}
	if _, ok := Get[MeanNonCGSUnitsS](NewMeanSVariant(cgs)); ok {
		t.Error("Get of inactive alternative should fail")
	}
	// Finalizing a device copy leaves the host tables usable.
	if p := cgs.PlanckMeanTotalScatteringCoefficient(1, 10); different(p, 2, 1e-12) {
		t.Errorf("host Planck after device finalize %g", p)
	}
	zero.Finalize()
	zero.PrintParams()
}
