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

import "github.com/spatialmodel/meanopac"

// Alternative is the closed set of models a Variant can hold.
type Alternative interface {
	Gray | Tophat | NonCGSUnits[Gray] | NonCGSUnits[Tophat] | UserOpacity
}

// Variant holds exactly one Alternative and forwards every query to it.
// The zero Variant holds Gray{}, the first alternative.
// A Variant satisfies Opacity, so it can be passed to NewMeanOpacity.
type Variant struct {
	opac model
}

// NewVariant returns a Variant holding opac.
func NewVariant[T Alternative](opac T) Variant {
	return Variant{opac: any(opac).(model)}
}

func (v Variant) active() model {
	if v.opac == nil {
		return Gray{}
	}
	return v.opac
}

// Is reports whether v holds a T.
func Is[T Alternative](v Variant) bool {
	_, ok := any(v.active()).(T)
	return ok
}

// Get returns the T held by v, if any.
func Get[T Alternative](v Variant) (T, bool) {
	o, ok := any(v.active()).(T)
	return o, ok
}

// AbsorptionCoefficient returns the absorption coefficient of the active
// model.
func (v Variant) AbsorptionCoefficient(rho, temp, ye float64, typ meanopac.RadiationType, nu float64, lambda []float64) float64 {
	return v.active().AbsorptionCoefficient(rho, temp, ye, typ, nu, lambda)
}

// AbsorptionCoefficientBins sets coeffs[i] to the absorption coefficient
// of the active model at frequency nuBins[i].
func (v Variant) AbsorptionCoefficientBins(rho, temp, ye float64, typ meanopac.RadiationType, nuBins, coeffs, lambda []float64) {
	v.active().AbsorptionCoefficientBins(rho, temp, ye, typ, nuBins, coeffs, lambda)
}

// EmissivityPerNuOmega returns the emissivity per unit frequency and solid
// angle of the active model.
func (v Variant) EmissivityPerNuOmega(rho, temp, ye float64, typ meanopac.RadiationType, nu float64, lambda []float64) float64 {
	return v.active().EmissivityPerNuOmega(rho, temp, ye, typ, nu, lambda)
}

// EmissivityPerNuOmegaBins is the frequency-binned form of
// EmissivityPerNuOmega.
func (v Variant) EmissivityPerNuOmegaBins(rho, temp, ye float64, typ meanopac.RadiationType, nuBins, coeffs, lambda []float64) {
	v.active().EmissivityPerNuOmegaBins(rho, temp, ye, typ, nuBins, coeffs, lambda)
}

// EmissivityPerNu returns the emissivity per unit frequency of the active
// model.
func (v Variant) EmissivityPerNu(rho, temp, ye float64, typ meanopac.RadiationType, nu float64, lambda []float64) float64 {
	return v.active().EmissivityPerNu(rho, temp, ye, typ, nu, lambda)
}

// EmissivityPerNuBins is the frequency-binned form of EmissivityPerNu.
func (v Variant) EmissivityPerNuBins(rho, temp, ye float64, typ meanopac.RadiationType, nuBins, coeffs, lambda []float64) {
	v.active().EmissivityPerNuBins(rho, temp, ye, typ, nuBins, coeffs, lambda)
}

// Emissivity returns the total emissivity of the active model.
func (v Variant) Emissivity(rho, temp, ye float64, typ meanopac.RadiationType, lambda []float64) float64 {
	return v.active().Emissivity(rho, temp, ye, typ, lambda)
}

// NumberEmissivity returns the number emissivity of the active model.
func (v Variant) NumberEmissivity(rho, temp, ye float64, typ meanopac.RadiationType, lambda []float64) float64 {
	return v.active().NumberEmissivity(rho, temp, ye, typ, lambda)
}

// ThermalDistributionOfTNu returns the thermal distribution of the active
// model.
func (v Variant) ThermalDistributionOfTNu(temp float64, typ meanopac.RadiationType, nu float64) float64 {
	return v.active().ThermalDistributionOfTNu(temp, typ, nu)
}

// DThermalDistributionOfTNuDT returns the temperature derivative of the
// thermal distribution of the active model.
func (v Variant) DThermalDistributionOfTNuDT(temp float64, typ meanopac.RadiationType, nu float64) float64 {
	return v.active().DThermalDistributionOfTNuDT(temp, typ, nu)
}

// NLambda returns the auxiliary parameter count of the active model.
func (v Variant) NLambda() int { return v.active().NLambda() }

// PrintParams prints the parameters of the active model.
func (v Variant) PrintParams() { v.active().PrintParams() }

// Finalize finalizes the active model.
func (v Variant) Finalize() { v.active().Finalize() }

// GetOnDevice returns a new Variant holding a device copy of the active
// model.
func (v Variant) GetOnDevice() Variant {
	switch o := v.active().(type) {
	case Gray:
		return NewVariant(o.GetOnDevice())
	case Tophat:
		return NewVariant(o.GetOnDevice())
	case NonCGSUnits[Gray]:
		return NewVariant(o.GetOnDevice())
	case NonCGSUnits[Tophat]:
		return NewVariant(o.GetOnDevice())
	case UserOpacity:
		return NewVariant(o.GetOnDevice())
	}
	panic("neutrinos: invalid Variant alternative")
}
