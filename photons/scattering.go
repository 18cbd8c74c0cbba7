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
	"fmt"

	"github.com/kr/pretty"
	"github.com/spatialmodel/meanopac"
)

// GrayS is a photon scattering model with a frequency-independent opacity
// Kappa, in cm^2/g.
type GrayS struct {
	Kappa float64
}

// NewGrayS returns a gray scattering model.
func NewGrayS(kappa float64) GrayS { return GrayS{Kappa: kappa} }

// TotalScatteringCoefficient returns the scattering coefficient in 1/cm.
func (g GrayS) TotalScatteringCoefficient(rho, temp, nu float64, lambda []float64) float64 {
	return rho * g.Kappa
}

// NLambda returns 0.
func (g GrayS) NLambda() int { return 0 }

// PrintParams prints the model parameters to standard output.
func (g GrayS) PrintParams() {
	fmt.Printf("Gray photon scattering opacity: %# v\n", pretty.Formatter(g))
}

// ThomsonS is Thomson scattering off free electrons, with one electron per
// AvgMass grams of material.
type ThomsonS struct {
	AvgMass float64
}

// NewThomsonS returns a Thomson scattering model. If avgMass is not
// positive, the proton mass is used.
func NewThomsonS(avgMass float64) ThomsonS {
	if avgMass <= 0 {
		avgMass = meanopac.CGS.MP
	}
	return ThomsonS{AvgMass: avgMass}
}

// TotalScatteringCoefficient returns the scattering coefficient in 1/cm.
func (t ThomsonS) TotalScatteringCoefficient(rho, temp, nu float64, lambda []float64) float64 {
	return rho / t.AvgMass * meanopac.CGS.SigmaThomson
}

// NLambda returns 0.
func (t ThomsonS) NLambda() int { return 0 }

// PrintParams prints the model parameters to standard output.
func (t ThomsonS) PrintParams() {
	fmt.Printf("Thomson photon scattering opacity: %# v\n", pretty.Formatter(t))
}
