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

// Package meanopac computes frequency-averaged radiative opacities
// (Planck and Rosseland means) for photons and neutrinos and serves them
// from log-space interpolation tables. Sub-packages neutrinos and photons
// hold the opacity models and table builders, and package databox holds the
// tables themselves.
package meanopac

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Version gives the version number.
const Version = "1.0.0"

// DataVersion is the version of the table file format.
const DataVersion = "1.0.0"

// Log receives log messages from table construction and storage.
var Log logrus.FieldLogger = logrus.StandardLogger()

// RadiationType identifies a kind of radiation.
type RadiationType int

// These are the radiation types.
const (
	Tracer         RadiationType = -1
	Photon         RadiationType = 0
	NuElectron     RadiationType = 1
	NuElectronAnti RadiationType = 2
	NuHeavy        RadiationType = 3
)

// NeutrinoNTypes is the number of neutrino species.
const NeutrinoNTypes = 3

// RadType2Idx returns the species index of neutrino type t.
func RadType2Idx(t RadiationType) int { return int(t) - 1 }

// Idx2RadType returns the neutrino type with species index i.
func Idx2RadType(i int) RadiationType { return RadiationType(i + 1) }

// IsNeutrino reports whether t is a neutrino species.
func (t RadiationType) IsNeutrino() bool {
	return t >= NuElectron && t <= NuHeavy
}

var radTypeNames = map[RadiationType]string{
	Tracer:         "tracer",
	Photon:         "photon",
	NuElectron:     "nu_electron",
	NuElectronAnti: "nu_electron_anti",
	NuHeavy:        "nu_heavy",
}

func (t RadiationType) String() string {
	if s, ok := radTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("RadiationType(%d)", int(t))
}

// ParseRadiationType returns the radiation type named s, as returned by
// RadiationType.String.
func ParseRadiationType(s string) (RadiationType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for t, name := range radTypeNames {
		if name == s {
			return t, nil
		}
	}
	return Tracer, fmt.Errorf("meanopac: invalid radiation type %q", s)
}
