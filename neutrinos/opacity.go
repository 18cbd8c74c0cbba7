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

// Package neutrinos holds neutrino opacity models, a Variant type that
// dispatches over them, and MeanOpacity, which tabulates Planck and
// Rosseland mean absorption coefficients as functions of density,
// temperature, electron fraction, and species.
//
// Unless otherwise noted, all quantities are in CGS units: densities in
// g/cm^3, temperatures in K, frequencies in Hz, and absorption
// coefficients in 1/cm.
package neutrinos

import (
	"fmt"

	"github.com/spatialmodel/meanopac"
)

// Opacity is the capability MeanOpacity needs from a neutrino opacity model.
// lambda holds NLambda auxiliary parameters and is passed through
// unchanged.
type Opacity interface {
	AbsorptionCoefficient(rho, temp, ye float64, typ meanopac.RadiationType, nu float64, lambda []float64) float64
	ThermalDistributionOfTNu(temp float64, typ meanopac.RadiationType, nu float64) float64
	DThermalDistributionOfTNuDT(temp float64, typ meanopac.RadiationType, nu float64) float64
	NLambda() int
}

// model is the full query surface shared by the Variant alternatives.
type model interface {
	Opacity

	AbsorptionCoefficientBins(rho, temp, ye float64, typ meanopac.RadiationType, nuBins, coeffs, lambda []float64)
	EmissivityPerNuOmega(rho, temp, ye float64, typ meanopac.RadiationType, nu float64, lambda []float64) float64
	EmissivityPerNuOmegaBins(rho, temp, ye float64, typ meanopac.RadiationType, nuBins, coeffs, lambda []float64)
	EmissivityPerNu(rho, temp, ye float64, typ meanopac.RadiationType, nu float64, lambda []float64) float64
	EmissivityPerNuBins(rho, temp, ye float64, typ meanopac.RadiationType, nuBins, coeffs, lambda []float64)
	Emissivity(rho, temp, ye float64, typ meanopac.RadiationType, lambda []float64) float64
	NumberEmissivity(rho, temp, ye float64, typ meanopac.RadiationType, lambda []float64) float64
	PrintParams()
	Finalize()
}

// fillBins sets coeffs[i] to f(nuBins[i]) for every frequency bin.
func fillBins(nuBins, coeffs []float64, f func(nu float64) float64) {
	if len(coeffs) < len(nuBins) {
		panic(fmt.Errorf("neutrinos: %d coefficients for %d frequency bins", len(coeffs), len(nuBins)))
	}
	for i, nu := range nuBins {
		coeffs[i] = f(nu)
	}
}
