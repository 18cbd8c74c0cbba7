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

// Package photons calculates mean opacities for photons.
//
// Models and tables work in CGS units unless noted otherwise. Tables built
// with the scale-free constants in meanopac.Unity expect density,
// temperature, and frequency in the same dimensionless units as the model
// they were built from.
package photons

// Opacity is a frequency-dependent photon absorption model.
type Opacity interface {
	// AbsorptionCoefficient returns the absorption coefficient, in 1/cm, at
	// density rho (g/cm^3), temperature temp (K), and frequency nu (Hz).
	// lambda holds NLambda auxiliary parameters.
	AbsorptionCoefficient(rho, temp, nu float64, lambda []float64) float64

	// NLambda returns the number of auxiliary parameters the model uses.
	NLambda() int
}

// SOpacity is a frequency-dependent photon scattering model.
type SOpacity interface {
	// TotalScatteringCoefficient returns the scattering coefficient,
	// integrated over outgoing angle, in 1/cm.
	TotalScatteringCoefficient(rho, temp, nu float64, lambda []float64) float64

	NLambda() int
}

// ThermalDistribution is an equilibrium photon spectrum.
type ThermalDistribution interface {
	// ThermalDistributionOfTNu returns the specific intensity at
	// temperature temp and frequency nu.
	ThermalDistributionOfTNu(temp, nu float64) float64

	// DThermalDistributionOfTNuDT returns the temperature derivative of
	// ThermalDistributionOfTNu.
	DThermalDistributionOfTNuDT(temp, nu float64) float64
}
