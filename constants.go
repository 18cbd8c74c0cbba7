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

import "math"

// PhysicalConstants holds the constants used by the thermal distributions
// and table builders, expressed in one system of units.
type PhysicalConstants struct {
	// H is Planck's constant.
	H float64

	// KB is Boltzmann's constant.
	KB float64

	// C is the speed of light.
	C float64

	// MP is the proton mass.
	MP float64

	// ME is the electron mass.
	ME float64

	// SigmaThomson is the Thomson scattering cross section.
	SigmaThomson float64
}

// CGS holds the physical constants in centimeter-gram-second units.
var CGS = PhysicalConstants{
	H:            6.62607015e-27,
	KB:           1.380649e-16,
	C:            2.99792458e10,
	MP:           1.67262192369e-24,
	ME:           9.1093837015e-28,
	SigmaThomson: 6.6524587321e-25,
}

// Unity holds constants that are all one, for scale-free calculations.
var Unity = PhysicalConstants{
	H:            1,
	KB:           1,
	C:            1,
	MP:           1,
	ME:           1,
	SigmaThomson: 1,
}

// Integrals of the Planck and Fermi-Dirac spectra in dimensionless
// frequency x = hν/kT.
var (
	// BoseEnergyIntegral is the integral of x^3/(e^x - 1) from 0 to infinity.
	BoseEnergyIntegral = math.Pow(math.Pi, 4) / 15

	// BoseNumberIntegral is the integral of x^2/(e^x - 1) from 0 to infinity.
	BoseNumberIntegral = 2 * zeta3

	// FermiEnergyIntegral is the integral of x^3/(e^x + 1) from 0 to infinity.
	FermiEnergyIntegral = 7 * math.Pow(math.Pi, 4) / 120

	// FermiNumberIntegral is the integral of x^2/(e^x + 1) from 0 to infinity.
	FermiNumberIntegral = 1.5 * zeta3
)

// zeta3 is the Riemann zeta function at 3.
const zeta3 = 1.2020569031595942
