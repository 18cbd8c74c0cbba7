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
	"fmt"
	"math"

	"github.com/kr/pretty"
	"github.com/spatialmodel/meanopac"
)

// Gray is an opacity model whose absorption coefficient is independent of
// frequency and species: alpha = rho * Kappa.
type Gray struct {
	// Kappa is the mass absorption coefficient in cm^2/g.
	Kappa float64
}

// NewGray returns a gray opacity model.
func NewGray(kappa float64) Gray { return Gray{Kappa: kappa} }

// AbsorptionCoefficient returns the absorption coefficient in 1/cm.
func (g Gray) AbsorptionCoefficient(rho, temp, ye float64, typ meanopac.RadiationType, nu float64, lambda []float64) float64 {
	return rho * g.Kappa
}

// AbsorptionCoefficientBins sets coeffs[i] to the absorption coefficient
// at frequency nuBins[i].
func (g Gray) AbsorptionCoefficientBins(rho, temp, ye float64, typ meanopac.RadiationType, nuBins, coeffs, lambda []float64) {
	fillBins(nuBins, coeffs, func(nu float64) float64 {
		return g.AbsorptionCoefficient(rho, temp, ye, typ, nu, lambda)
	})
}

// EmissivityPerNuOmega returns the thermal emissivity in
// erg/cm^3/s/Hz/sr.
func (g Gray) EmissivityPerNuOmega(rho, temp, ye float64, typ meanopac.RadiationType, nu float64, lambda []float64) float64 {
	return g.AbsorptionCoefficient(rho, temp, ye, typ, nu, lambda) * ThermalDistributionOfTNu(temp, nu)
}

// EmissivityPerNuOmegaBins is the frequency-binned form of
// EmissivityPerNuOmega.
func (g Gray) EmissivityPerNuOmegaBins(rho, temp, ye float64, typ meanopac.RadiationType, nuBins, coeffs, lambda []float64) {
	fillBins(nuBins, coeffs, func(nu float64) float64 {
		return g.EmissivityPerNuOmega(rho, temp, ye, typ, nu, lambda)
	})
}

// EmissivityPerNu returns the emissivity integrated over solid angle, in
// erg/cm^3/s/Hz.
func (g Gray) EmissivityPerNu(rho, temp, ye float64, typ meanopac.RadiationType, nu float64, lambda []float64) float64 {
	return 4 * math.Pi * g.EmissivityPerNuOmega(rho, temp, ye, typ, nu, lambda)
}

// EmissivityPerNuBins is the frequency-binned form of EmissivityPerNu.
func (g Gray) EmissivityPerNuBins(rho, temp, ye float64, typ meanopac.RadiationType, nuBins, coeffs, lambda []float64) {
	fillBins(nuBins, coeffs, func(nu float64) float64 {
		return g.EmissivityPerNu(rho, temp, ye, typ, nu, lambda)
	})
}

// Emissivity returns the emissivity integrated over solid angle and
// frequency, in erg/cm^3/s.
func (g Gray) Emissivity(rho, temp, ye float64, typ meanopac.RadiationType, lambda []float64) float64 {
	return 4 * math.Pi * rho * g.Kappa * ThermalDistributionOfT(temp)
}

// NumberEmissivity returns the number of neutrinos emitted per unit volume
// and time, in 1/cm^3/s.
func (g Gray) NumberEmissivity(rho, temp, ye float64, typ meanopac.RadiationType, lambda []float64) float64 {
	return 4 * math.Pi * rho * g.Kappa * ThermalNumberDistributionOfT(temp)
}

// ThermalDistributionOfTNu returns the Fermi-Dirac specific intensity.
func (g Gray) ThermalDistributionOfTNu(temp float64, typ meanopac.RadiationType, nu float64) float64 {
	return ThermalDistributionOfTNu(temp, nu)
}

// DThermalDistributionOfTNuDT returns the temperature derivative of the
// Fermi-Dirac specific intensity.
func (g Gray) DThermalDistributionOfTNuDT(temp float64, typ meanopac.RadiationType, nu float64) float64 {
	return DThermalDistributionOfTNuDT(temp, nu)
}

// NLambda returns 0; the model takes no auxiliary parameters.
func (g Gray) NLambda() int { return 0 }

// PrintParams prints the model parameters to standard output.
func (g Gray) PrintParams() {
	fmt.Printf("Gray neutrino opacity: %# v\n", pretty.Formatter(g))
}

// Finalize is a no-op; Gray holds no storage.
func (g Gray) Finalize() {}

// GetOnDevice returns a copy of g.
func (g Gray) GetOnDevice() Gray { return g }
