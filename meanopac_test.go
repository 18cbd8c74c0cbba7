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
	"fmt"
	"math"
	"testing"
)

func TestRadiationType(t *testing.T) {
	for idx := 0; idx < NeutrinoNTypes; idx++ {
		typ := Idx2RadType(idx)
		if !typ.IsNeutrino() {
			t.Errorf("%v should be a neutrino", typ)
		}
		if i := RadType2Idx(typ); i != idx {
			t.Errorf("%v: index %d, want %d", typ, i, idx)
		}
		p, err := ParseRadiationType(typ.String())
		if err != nil {
			t.Fatal(err)
		}
		if p != typ {
			t.Errorf("parsed %v, want %v", p, typ)
		}
	}
	if Photon.IsNeutrino() || Tracer.IsNeutrino() {
		t.Error("photons and tracers are not neutrinos")
	}
	if Idx2RadType(0) != NuElectron || Idx2RadType(2) != NuHeavy {
		t.Error("species ordering")
	}
	if _, err := ParseRadiationType("graviton"); err == nil {
		t.Error("expected error")
	}
}

func TestToLog(t *testing.T) {
	for _, test := range []struct {
		x, want float64
	}{
		{x: 2, want: math.Log10(2)},
		{x: -100, want: 2},
		{x: 1e-300, want: -300},
		{x: 0, want: math.Log10(Small)},
	} {
		t.Run(fmt.Sprint(test.x), func(t *testing.T) {
			have := ToLog(test.x)
			if math.Abs(have-test.want) > 1e-14*math.Abs(test.want) {
				t.Errorf("%g = %g, want %g", test.x, have, test.want)
			}
			if math.IsInf(have, 0) || math.IsNaN(have) {
				t.Errorf("%g is not finite", have)
			}
		})
	}
	if v := FromLog(ToLog(1000)); math.Abs(v-1000) > 1e-10 {
		t.Errorf("round trip: %g", v)
	}
}

func TestRatio(t *testing.T) {
	if r := Ratio(1, 0); math.IsInf(r, 0) || r <= 0 {
		t.Errorf("ratio(1, 0) = %g, want large finite positive", r)
	}
	if r := Ratio(0, 0); r != 0 {
		t.Errorf("ratio(0, 0) = %g, want 0", r)
	}
	if r := Ratio(3, -1.5); r != -2 {
		t.Errorf("ratio(3, -1.5) = %g, want -2", r)
	}
	if Sgn(0) != 1 || Sgn(-1e-300) != -1 {
		t.Error("sgn")
	}
}
