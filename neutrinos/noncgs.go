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

	"github.com/kr/pretty"
	"github.com/spatialmodel/meanopac"
)

// Scalable is the set of models that NonCGSUnits can wrap.
type Scalable interface {
	Gray | Tophat
	model
}

// NonCGSUnits wraps a model so that its inputs and outputs are in a
// system of code units instead of CGS units.
type NonCGSUnits[T Scalable] struct {
	opac  T
	units meanopac.UnitSystem

	// conversion factors from CGS to code units
	inverseLength, emissivityPerNu, emissivity, numberEmissivity, intensity float64
}

// NewNonCGSUnits wraps opac to work in the given units.
func NewNonCGSUnits[T Scalable](opac T, units meanopac.UnitSystem) NonCGSUnits[T] {
	return NonCGSUnits[T]{
		opac:             opac,
		units:            units,
		inverseLength:    units.Length,
		emissivityPerNu:  units.Volume() / units.Energy(),
		emissivity:       units.Volume() * units.Time / units.Energy(),
		numberEmissivity: units.Volume() * units.Time,
		intensity:        units.Length * units.Length / units.Energy(),
	}
}

// Model returns the wrapped CGS model.
func (n NonCGSUnits[T]) Model() T { return n.opac }

// Units returns the code unit system.
func (n NonCGSUnits[T]) Units() meanopac.UnitSystem { return n.units }

func (n NonCGSUnits[T]) cgs(rho, temp float64) (float64, float64) {
	return rho * n.units.Rho(), temp * n.units.Temperature
}

// AbsorptionCoefficient returns the absorption coefficient in inverse code
// lengths.
func (n NonCGSUnits[T]) AbsorptionCoefficient(rho, temp, ye float64, typ meanopac.RadiationType, nu float64, lambda []float64) float64 {
	rho, temp = n.cgs(rho, temp)
	return n.opac.AbsorptionCoefficient(rho, temp, ye, typ, nu*n.units.Frequency(), lambda) * n.inverseLength
}

// AbsorptionCoefficientBins sets coeffs[i] to the absorption coefficient
// at frequency nuBins[i].
func (n NonCGSUnits[T]) AbsorptionCoefficientBins(rho, temp, ye float64, typ meanopac.RadiationType, nuBins, coeffs, lambda []float64) {
	fillBins(nuBins, coeffs, func(nu float64) float64 {
		return n.AbsorptionCoefficient(rho, temp, ye, typ, nu, lambda)
	})
}

// EmissivityPerNuOmega returns the emissivity in code units.
func (n NonCGSUnits[T]) EmissivityPerNuOmega(rho, temp, ye float64, typ meanopac.RadiationType, nu float64, lambda []float64) float64 {
	rho, temp = n.cgs(rho, temp)
	return n.opac.EmissivityPerNuOmega(rho, temp, ye, typ, nu*n.units.Frequency(), lambda) * n.emissivityPerNu
}

// EmissivityPerNuOmegaBins is the frequency-binned form of
// EmissivityPerNuOmega.
func (n NonCGSUnits[T]) EmissivityPerNuOmegaBins(rho, temp, ye float64, typ meanopac.RadiationType, nuBins, coeffs, lambda []float64) {
	fillBins(nuBins, coeffs, func(nu float64) float64 {
		return n.EmissivityPerNuOmega(rho, temp, ye, typ, nu, lambda)
	})
}

// EmissivityPerNu returns the angle-integrated emissivity in code units.
func (n NonCGSUnits[T]) EmissivityPerNu(rho, temp, ye float64, typ meanopac.RadiationType, nu float64, lambda []float64) float64 {
	rho, temp = n.cgs(rho, temp)
	return n.opac.EmissivityPerNu(rho, temp, ye, typ, nu*n.units.Frequency(), lambda) * n.emissivityPerNu
}

// EmissivityPerNuBins is the frequency-binned form of EmissivityPerNu.
func (n NonCGSUnits[T]) EmissivityPerNuBins(rho, temp, ye float64, typ meanopac.RadiationType, nuBins, coeffs, lambda []float64) {
	fillBins(nuBins, coeffs, func(nu float64) float64 {
		return n.EmissivityPerNu(rho, temp, ye, typ, nu, lambda)
	})
}

// Emissivity returns the angle- and frequency-integrated emissivity in code
// units.
func (n NonCGSUnits[T]) Emissivity(rho, temp, ye float64, typ meanopac.RadiationType, lambda []float64) float64 {
	rho, temp = n.cgs(rho, temp)
	return n.opac.Emissivity(rho, temp, ye, typ, lambda) * n.emissivity
}

// NumberEmissivity returns the number emissivity in code units.
func (n NonCGSUnits[T]) NumberEmissivity(rho, temp, ye float64, typ meanopac.RadiationType, lambda []float64) float64 {
	rho, temp = n.cgs(rho, temp)
	return n.opac.NumberEmissivity(rho, temp, ye, typ, lambda) * n.numberEmissivity
}

// ThermalDistributionOfTNu returns the Fermi-Dirac specific intensity in
// code units.
func (n NonCGSUnits[T]) ThermalDistributionOfTNu(temp float64, typ meanopac.RadiationType, nu float64) float64 {
	return n.opac.ThermalDistributionOfTNu(temp*n.units.Temperature, typ, nu*n.units.Frequency()) * n.intensity
}

// DThermalDistributionOfTNuDT returns the temperature derivative of the
// Fermi-Dirac specific intensity in code units.
func (n NonCGSUnits[T]) DThermalDistributionOfTNuDT(temp float64, typ meanopac.RadiationType, nu float64) float64 {
	return n.opac.DThermalDistributionOfTNuDT(temp*n.units.Temperature, typ, nu*n.units.Frequency()) *
		n.intensity * n.units.Temperature
}

// NLambda returns the auxiliary parameter count of the wrapped model.
func (n NonCGSUnits[T]) NLambda() int { return n.opac.NLambda() }

// PrintParams prints the unit system and the wrapped model's parameters.
func (n NonCGSUnits[T]) PrintParams() {
	fmt.Printf("Non-CGS units: %# v\n", pretty.Formatter(n.units))
	n.opac.PrintParams()
}

// Finalize finalizes the wrapped model.
func (n NonCGSUnits[T]) Finalize() { n.opac.Finalize() }

// GetOnDevice returns a copy of n wrapping a device copy of its model.
func (n NonCGSUnits[T]) GetOnDevice() NonCGSUnits[T] {
	o := n
	switch opac := any(n.opac).(type) {
	case Gray:
		o.opac = any(opac.GetOnDevice()).(T)
	case Tophat:
		o.opac = any(opac.GetOnDevice()).(T)
	}
	return o
}
