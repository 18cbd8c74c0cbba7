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
	"math"

	"github.com/spatialmodel/meanopac"
)

// PlanckDistribution is the black body spectrum for a set of physical
// constants.
type PlanckDistribution struct {
	pc meanopac.PhysicalConstants
}

// NewPlanckDistribution returns the black body spectrum for constants pc.
func NewPlanckDistribution(pc meanopac.PhysicalConstants) PlanckDistribution {
	return PlanckDistribution{pc: pc}
}

// Constants returns the physical constants of d.
func (d PlanckDistribution) Constants() meanopac.PhysicalConstants { return d.pc }

func (d PlanckDistribution) x(temp, nu float64) float64 {
	return d.pc.H * nu / (d.pc.KB * temp)
}

// ThermalDistributionOfTNu returns the Planck specific intensity, in
// erg/cm^2/s/Hz/sr for CGS constants.
func (d PlanckDistribution) ThermalDistributionOfTNu(temp, nu float64) float64 {
	c := d.pc.C
	return 2 * d.pc.H * nu * nu * nu / (c * c) / math.Expm1(d.x(temp, nu))
}

// DThermalDistributionOfTNuDT returns the temperature derivative of the
// Planck specific intensity.
func (d PlanckDistribution) DThermalDistributionOfTNuDT(temp, nu float64) float64 {
	c := d.pc.C
	x := d.x(temp, nu)
	den := -math.Expm1(-x)
	return 2 * d.pc.H * nu * nu * nu / (c * c) * x / temp * math.Exp(-x) / (den * den)
}

// ThermalDistributionOfT returns the Planck specific intensity integrated
// over frequency.
func (d PlanckDistribution) ThermalDistributionOfT(temp float64) float64 {
	c := d.pc.C
	kt := d.pc.KB * temp / d.pc.H
	return 2 * d.pc.H / (c * c) * kt * kt * kt * kt * meanopac.BoseEnergyIntegral
}

// ThermalNumberDistributionOfT returns the photon number intensity
// integrated over frequency.
func (d PlanckDistribution) ThermalNumberDistributionOfT(temp float64) float64 {
	c := d.pc.C
	kt := d.pc.KB * temp / d.pc.H
	return 2 / (c * c) * kt * kt * kt * meanopac.BoseNumberIntegral
}
