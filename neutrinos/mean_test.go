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
	"path/filepath"
	"reflect"
	"testing"

	"github.com/spatialmodel/meanopac"
	"github.com/spatialmodel/meanopac/databox"
)

var testBounds = TableBounds{
	LRhoMin: 8, LRhoMax: 12, NRho: 3,
	LTMin: 10, LTMax: 11, NT: 3,
	YeMin: 0.1, YeMax: 0.5, NYe: 2,
}

func TestMeanOpacityGray(t *testing.T) {
	const kappa = 1.5
	m, err := NewMeanOpacity(NewGray(kappa), testBounds, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer m.Finalize()
	for _, test := range []struct{ rho, temp, ye float64 }{
		{1e8, 1e10, 0.1},
		{3e9, 4e10, 0.33},
		{1e12, 1e11, 0.5},
		{1e15, 1e12, 0.9}, // beyond the table edges
	} {
		for typ := meanopac.NuElectron; typ <= meanopac.NuHeavy; typ++ {
			want := test.rho * kappa
			if p := m.PlanckMeanAbsorptionCoefficient(test.rho, test.temp, test.ye, typ); different(p, want, 1e-10) {
				t.Errorf("%v %s: Planck %g, want %g", test, typ, p, want)
			}
			if r := m.RosselandMeanAbsorptionCoefficient(test.rho, test.temp, test.ye, typ); different(r, want, 1e-10) {
				t.Errorf("%v %s: Rosseland %g, want %g", test, typ, r, want)
			}
		}
	}
}

func TestMeanOpacityNodes(t *testing.T) {
	// An opacity that depends on every coordinate.
	u, err := NewUserOpacity("rho * (1 + Ye) * (type + lambda0) * pow(T / pow(10, 10), 0.5) * pow(nu / pow(10, 20), 2)", 1)
	if err != nil {
		t.Fatal(err)
	}
	m, err := NewMeanOpacity(u, testBounds, []float64{0.5})
	if err != nil {
		t.Fatal(err)
	}
	if m.NLambda() != 1 {
		t.Errorf("nlambda %d", m.NLambda())
	}
	rRho, _ := m.lkappaPlanck.Range(3)
	rT, _ := m.lkappaPlanck.Range(2)
	rYe, _ := m.lkappaPlanck.Range(1)
	for i := 0; i < testBounds.NRho; i++ {
		for j := 0; j < testBounds.NT; j++ {
			for k := 0; k < testBounds.NYe; k++ {
				for s := 0; s < meanopac.NeutrinoNTypes; s++ {
					rho := meanopac.FromLog(rRho.X(i))
					temp := meanopac.FromLog(rT.X(j))
					typ := meanopac.Idx2RadType(s)
					p := m.PlanckMeanAbsorptionCoefficient(rho, temp, rYe.X(k), typ)
					if want := rho * meanopac.FromLog(m.lkappaPlanck.Get(i, j, k, s)); different(p, want, 1e-12) {
						t.Errorf("(%d, %d, %d, %d): Planck %g, want %g", i, j, k, s, p, want)
					}
					r := m.RosselandMeanAbsorptionCoefficient(rho, temp, rYe.X(k), typ)
					if want := rho * meanopac.FromLog(m.lkappaRosseland.Get(i, j, k, s)); different(r, want, 1e-12) {
						t.Errorf("(%d, %d, %d, %d): Rosseland %g, want %g", i, j, k, s, r, want)
					}
				}
			}
		}
	}
	// Heavier species have larger opacities in this model.
	if m.PlanckMeanAbsorptionCoefficient(1e10, 1e10, 0.3, meanopac.NuHeavy) <=
		m.PlanckMeanAbsorptionCoefficient(1e10, 1e10, 0.3, meanopac.NuElectron) {
		t.Error("species axis is not ordered")
	}
}

func TestMeanOpacitySaveLoad(t *testing.T) {
	m, err := NewMeanOpacity(NewTophat(0.3, 1e9, 1e31), testBounds, nil)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "neutrinos.nc")
	if err = m.Save(path); err != nil {
		t.Fatal(err)
	}
	m2, err := LoadMeanOpacity(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, pair := range [][2]*databox.DataBox{
		{m.lkappaPlanck, m2.lkappaPlanck},
		{m.lkappaRosseland, m2.lkappaRosseland},
	} {
		if !reflect.DeepEqual(pair[0].Elements(), pair[1].Elements()) {
			t.Error("loaded table values differ")
		}
		for axis := 0; axis < 4; axis++ {
			r0, ok0 := pair[0].Range(axis)
			r1, ok1 := pair[1].Range(axis)
			if r0 != r1 || ok0 != ok1 {
				t.Errorf("axis %d: range %v, want %v", axis, r1, r0)
			}
		}
	}
	if m2.NLambda() != 0 {
		t.Errorf("nlambda %d", m2.NLambda())
	}
	const rho, temp, ye = 2e9, 3e10, 0.27
	if p, p2 := m.PlanckMeanAbsorptionCoefficient(rho, temp, ye, meanopac.NuElectronAnti),
		m2.PlanckMeanAbsorptionCoefficient(rho, temp, ye, meanopac.NuElectronAnti); p != p2 {
		t.Errorf("loaded query %g, want %g", p2, p)
	}

	_, err = LoadMeanOpacity(filepath.Join(t.TempDir(), "missing.nc"))
	if !meanopac.IsKind(err, meanopac.StorageError) {
		t.Errorf("expected StorageError, got %v", err)
	}
}

func TestMeanOpacityDevice(t *testing.T) {
	m, err := NewMeanOpacity(NewTophat(0.3, 1e9, 1e31), testBounds, nil)
	if err != nil {
		t.Fatal(err)
	}
	d := m.GetOnDevice()
	if !d.lkappaPlanck.IsOnDevice() || !d.lkappaRosseland.IsOnDevice() {
		t.Error("device tables not flagged")
	}
	for _, typ := range []meanopac.RadiationType{meanopac.NuElectron, meanopac.NuElectronAnti, meanopac.NuHeavy} {
		h := m.RosselandMeanAbsorptionCoefficient(4e10, 5e10, 0.2, typ)
		if g := d.RosselandMeanAbsorptionCoefficient(4e10, 5e10, 0.2, typ); g != h {
			t.Errorf("%s: device %g, host %g", typ, g, h)
		}
	}
	d.Finalize()
	if !d.lkappaPlanck.IsEmpty() || m.lkappaPlanck.IsEmpty() {
		t.Error("finalizing the device copy should leave the host tables alone")
	}
}

func TestMeanOpacityErrors(t *testing.T) {
	nan, err := NewUserOpacity("sqrt(0 - rho)", 0)
	if err != nil {
		t.Fatal(err)
	}
	if _, err = NewMeanOpacity(nan, testBounds, nil); !meanopac.IsKind(err, meanopac.ConstructionError) {
		t.Errorf("expected ConstructionError, got %v", err)
	}

	// A band that does not cover the ends of the frequency grid leaves the
	// Rosseland integrand undefined there.
	narrow := NewTophat(0.3, 1e19, 1e22)
	kHz := meanopac.UnitSystem{Time: 1e-3, Mass: 1, Length: 1, Temperature: 1}
	for _, opac := range []Opacity{
		narrow,
		NewVariant(narrow),
		NewNonCGSUnits(narrow, meanopac.CGSUnits),
		NewVariant(NewNonCGSUnits(narrow, meanopac.CGSUnits)),
		// In kHz code units the grid spans 1e13 to 1e33 Hz.
		NewNonCGSUnits(NewTophat(0.3, 1e9, 1e31), kHz),
	} {
		if _, err = NewMeanOpacity(opac, testBounds, nil); !meanopac.IsKind(err, meanopac.ContractError) {
			t.Errorf("%T: expected ContractError, got %v", opac, err)
		}
	}
	if err = checkBand(NewVariant(NewNonCGSUnits(NewTophat(0.3, 1e12, 1e34), kHz))); err != nil {
		t.Errorf("wide band in code units: %v", err)
	}

	bad := testBounds
	bad.NT = 0
	if _, err = NewMeanOpacity(NewGray(1), bad, nil); !meanopac.IsKind(err, meanopac.ContractError) {
		t.Errorf("expected ContractError, got %v", err)
	}
	bad = testBounds
	bad.YeMax = bad.YeMin
	if _, err = NewMeanOpacity(NewGray(1), bad, nil); !meanopac.IsKind(err, meanopac.ContractError) {
		t.Errorf("expected ContractError, got %v", err)
	}
}
