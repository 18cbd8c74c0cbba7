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

// Tophat is an opacity model that absorbs only inside the frequency band
// [NuMin, NuMax], where alpha = rho * C.
type Tophat struct {
	// C is the mass absorption coefficient inside the band, in cm^2/g.
	C float64

	// NuMin and NuMax bound the band, in Hz.
	NuMin, NuMax float64
}

// NewTophat returns a top-hat opacity model.
func NewTophat(c, nuMin, nuMax float64) Tophat {
	return Tophat{C: c, NuMin: nuMin, NuMax: nuMax}
}

func (t Tophat) inBand(nu float64) bool { return nu >= t.NuMin && nu <= t.NuMax }

// AbsorptionCoefficient returns the absorption coefficient in 1/cm.
func (t Tophat) AbsorptionCoefficient(rho, temp, ye float64, typ meanopac.RadiationType, nu float64, lambda []float64) float64 {
	if t.inBand(nu) {
		return rho * t.C
	}
	return 0
}

// AbsorptionCoefficientBins sets coeffs[i] to the absorption coefficient
// at frequency nuBins[i].
func (t Tophat) AbsorptionCoefficientBins(rho, temp, ye float64, typ meanopac.RadiationType, nuBins, coeffs, lambda []float64) {
	fillBins(nuBins, coeffs, func(nu float64) float64 {
		return t.AbsorptionCoefficient(rho, temp, ye, typ, nu, lambda)
	})
}

// EmissivityPerNuOmega returns the thermal emissivity in
// erg/cm^3/s/Hz/sr.
func (t Tophat) EmissivityPerNuOmega(rho, temp, ye float64, typ meanopac.RadiationType, nu float64, lambda []float64) float64 {
	return t.AbsorptionCoefficient(rho, temp, ye, typ, nu, lambda) * ThermalDistributionOfTNu(temp, nu)
}

// EmissivityPerNuOmegaBins is the frequency-binned form of
// EmissivityPerNuOmega.
func (t Tophat) EmissivityPerNuOmegaBins(rho, temp, ye float64, typ meanopac.RadiationType, nuBins, coeffs, lambda []float64) {
	fillBins(nuBins, coeffs, func(nu float64) float64 {
		return t.EmissivityPerNuOmega(rho, temp, ye, typ, nu, lambda)
	})
}

// EmissivityPerNu returns the emissivity integrated over solid angle, in
// erg/cm^3/s/Hz.
func (t Tophat) EmissivityPerNu(rho, temp, ye float64, typ meanopac.RadiationType, nu float64, lambda []float64) float64 {
	return 4 * math.Pi * t.EmissivityPerNuOmega(rho, temp, ye, typ, nu, lambda)
}

// EmissivityPerNuBins is the frequency-binned form of EmissivityPerNu.
func (t Tophat) EmissivityPerNuBins(rho, temp, ye float64, typ meanopac.RadiationType, nuBins, coeffs, lambda []float64) {
	fillBins(nuBins, coeffs, func(nu float64) float64 {
		return t.EmissivityPerNu(rho, temp, ye, typ, nu, lambda)
	})
}

// Emissivity returns the emissivity integrated over solid angle and
// frequency, in erg/cm^3/s.
func (t Tophat) Emissivity(rho, temp, ye float64, typ meanopac.RadiationType, lambda []float64) float64 {
	return 4 * math.Pi * rho * t.C * integrateNu(func(nu float64) float64 {
		return ThermalDistributionOfTNu(temp, nu)
	}, t.NuMin, t.NuMax)
}

// NumberEmissivity returns the number of neutrinos emitted per unit volume
// and time, in 1/cm^3/s.
func (t Tophat) NumberEmissivity(rho, temp, ye float64, typ meanopac.RadiationType, lambda []float64) float64 {
	return 4 * math.Pi * rho * t.C * integrateNu(func(nu float64) float64 {
		return ThermalDistributionOfTNu(temp, nu) / (pc.H * nu)
	}, t.NuMin, t.NuMax)
}

// ThermalDistributionOfTNu returns the Fermi-Dirac specific intensity.
func (t Tophat) ThermalDistributionOfTNu(temp float64, typ meanopac.RadiationType, nu float64) float64 {
	return ThermalDistributionOfTNu(temp, nu)
}

// DThermalDistributionOfTNuDT returns the temperature derivative of the
// Fermi-Dirac specific intensity.
func (t Tophat) DThermalDistributionOfTNuDT(temp float64, typ meanopac.RadiationType, nu float64) float64 {
	return DThermalDistributionOfTNuDT(temp, nu)
}

// NLambda returns 0; the model takes no auxiliary parameters.
func (t Tophat) NLambda() int { return 0 }

// PrintParams prints the model parameters to standard output.
func (t Tophat) PrintParams() {
	fmt.Printf("Tophat neutrino opacity: %# v\n", pretty.Formatter(t))
}

// Finalize is a no-op; Tophat holds no storage.
func (t Tophat) Finalize() {}

// GetOnDevice returns a copy of t.
func (t Tophat) GetOnDevice() Tophat { return t }
