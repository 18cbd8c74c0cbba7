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

package neutrinos

import (
	"math"
	"reflect"
	"testing"

	"github.com/spatialmodel/meanopac"
)

// alternatives reports Is for every Variant alternative, in declaration
// order.
func alternatives(v Variant) []bool {
	return []bool{
		Is[Gray](v),
		Is[Tophat](v),
		Is[NonCGSUnits[Gray]](v),
		Is[NonCGSUnits[Tophat]](v),
		Is[UserOpacity](v),
	}
}

// sameValue is exact equality that treats two NaNs as equal.
func sameValue(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

// checkForwarding compares every query made through v with the same query
// made directly on want.
func checkForwarding(t *testing.T, v Variant, want model) {
	t.Helper()
	const (
		rho  = 5.
		temp = 1e10
		ye   = 0.4
	)
	lambda := []float64{2, 3}
	nuBins := []float64{1e18, 1e19, 1e20, 1e21}
	for _, typ := range []meanopac.RadiationType{meanopac.NuElectron, meanopac.NuElectronAnti, meanopac.NuHeavy} {
		for _, nu := range nuBins {
			for _, c := range []struct {
				name       string
				have, want float64
			}{
				{"AbsorptionCoefficient", v.AbsorptionCoefficient(rho, temp, ye, typ, nu, lambda), want.AbsorptionCoefficient(rho, temp, ye, typ, nu, lambda)},
				{"EmissivityPerNuOmega", v.EmissivityPerNuOmega(rho, temp, ye, typ, nu, lambda), want.EmissivityPerNuOmega(rho, temp, ye, typ, nu, lambda)},
				{"EmissivityPerNu", v.EmissivityPerNu(rho, temp, ye, typ, nu, lambda), want.EmissivityPerNu(rho, temp, ye, typ, nu, lambda)},
				{"ThermalDistributionOfTNu", v.ThermalDistributionOfTNu(temp, typ, nu), want.ThermalDistributionOfTNu(temp, typ, nu)},
				{"DThermalDistributionOfTNuDT", v.DThermalDistributionOfTNuDT(temp, typ, nu), want.DThermalDistributionOfTNuDT(temp, typ, nu)},
			} {
				if !sameValue(c.have, c.want) {
					t.Errorf("%s(%v, %g) = %g, want %g", c.name, typ, nu, c.have, c.want)
				}
			}
		}
		for _, c := range []struct {
			name       string
			have, want float64
		}{
			{"Emissivity", v.Emissivity(rho, temp, ye, typ, lambda), want.Emissivity(rho, temp, ye, typ, lambda)},
			{"NumberEmissivity", v.NumberEmissivity(rho, temp, ye, typ, lambda), want.NumberEmissivity(rho, temp, ye, typ, lambda)},
		} {
			if !sameValue(c.have, c.want) {
				t.Errorf("%s(%v) = %g, want %g", c.name, typ, c.have, c.want)
			}
		}

		for _, c := range []struct {
			name       string
			have, want func(rho, temp, ye float64, typ meanopac.RadiationType, nuBins, coeffs, lambda []float64)
		}{
			{"AbsorptionCoefficientBins", v.AbsorptionCoefficientBins, want.AbsorptionCoefficientBins},
			{"EmissivityPerNuOmegaBins", v.EmissivityPerNuOmegaBins, want.EmissivityPerNuOmegaBins},
			{"EmissivityPerNuBins", v.EmissivityPerNuBins, want.EmissivityPerNuBins},
		} {
			have, w := make([]float64, len(nuBins)), make([]float64, len(nuBins))
			c.have(rho, temp, ye, typ, nuBins, have, lambda)
			c.want(rho, temp, ye, typ, nuBins, w, lambda)
			for i := range have {
				if !sameValue(have[i], w[i]) {
					t.Errorf("%s(%v)[%d] = %g, want %g", c.name, typ, i, have[i], w[i])
				}
			}
		}
	}
	if v.NLambda() != want.NLambda() {
		t.Errorf("nlambda %d, want %d", v.NLambda(), want.NLambda())
	}
}

func TestVariant(t *testing.T) {
	user, err := NewUserOpacity("rho * lambda0 * lambda1 * pow(nu / pow(10, 20), 2)", 2)
	if err != nil {
		t.Fatal(err)
	}
	units := meanopac.UnitSystem{Time: 1e-3, Mass: 1, Length: 1e5, Temperature: 1e3}
	gray := NewGray(1.5)
	tophat := NewTophat(1, 1e18, 1e22)

	for _, test := range []struct {
		name   string
		v      Variant
		want   model
		active int
	}{
		{name: "zero", v: Variant{}, want: Gray{}, active: 0},
		{name: "gray", v: NewVariant(gray), want: gray, active: 0},
		{name: "tophat", v: NewVariant(tophat), want: tophat, active: 1},
		{name: "noncgs gray", v: NewVariant(NewNonCGSUnits(gray, units)), want: NewNonCGSUnits(gray, units), active: 2},
		{name: "noncgs tophat", v: NewVariant(NewNonCGSUnits(tophat, units)), want: NewNonCGSUnits(tophat, units), active: 3},
		{name: "user", v: NewVariant(user), want: user, active: 4},
	} {
		t.Run(test.name, func(t *testing.T) {
			wantIs := make([]bool, 5)
			wantIs[test.active] = true
			if have := alternatives(test.v); !reflect.DeepEqual(have, wantIs) {
				t.Errorf("Is = %v, want %v", have, wantIs)
			}
			checkForwarding(t, test.v, test.want)

			d := test.v.GetOnDevice()
			if have := alternatives(d); !reflect.DeepEqual(have, wantIs) {
				t.Errorf("device Is = %v, want %v", have, wantIs)
			}
			checkForwarding(t, d, test.want)
		})
	}
}

func TestVariantGet(t *testing.T) {
	gray := NewGray(1.5)
	v := NewVariant(gray)
	if g, ok := Get[Gray](v); !ok || g != gray {
		t.Errorf("Get = %v, %v", g, ok)
	}
	if _, ok := Get[Tophat](v); ok {
		t.Error("Get of inactive alternative should fail")
	}
	if g, ok := Get[Gray](Variant{}); !ok || g != (Gray{}) {
		t.Errorf("zero Variant Get = %v, %v", g, ok)
	}

	user, err := NewUserOpacity("rho * lambda0 * lambda1", 2)
	if err != nil {
		t.Fatal(err)
	}
	if u, _ := Get[UserOpacity](NewVariant(user)); u.Expression() != "rho * lambda0 * lambda1" {
		t.Errorf("expression %q", u.Expression())
	}
}
