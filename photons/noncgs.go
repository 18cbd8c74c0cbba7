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

// MeanNonCGSUnitsS wraps CGS mean scattering tables so that densities and
// temperatures are given, and coefficients returned, in code units.
type MeanNonCGSUnitsS struct {
	mean  MeanSOpacityCGS
	units meanopac.UnitSystem
}

// NewMeanNonCGSUnitsS wraps mean to work in the given units.
func NewMeanNonCGSUnitsS(mean MeanSOpacityCGS, units meanopac.UnitSystem) MeanNonCGSUnitsS {
	return MeanNonCGSUnitsS{mean: mean, units: units}
}

// Mean returns the wrapped CGS tables.
func (n MeanNonCGSUnitsS) Mean() MeanSOpacityCGS { return n.mean }

// Units returns the code unit system.
func (n MeanNonCGSUnitsS) Units() meanopac.UnitSystem { return n.units }

// PlanckMeanTotalScatteringCoefficient returns the Planck mean scattering
// coefficient in inverse code lengths.
func (n MeanNonCGSUnitsS) PlanckMeanTotalScatteringCoefficient(rho, temp float64) float64 {
	return n.mean.PlanckMeanTotalScatteringCoefficient(rho*n.units.Rho(), temp*n.units.Temperature) * n.units.Length
}

// RosselandMeanTotalScatteringCoefficient returns the Rosseland mean
// scattering coefficient in inverse code lengths.
func (n MeanNonCGSUnitsS) RosselandMeanTotalScatteringCoefficient(rho, temp float64) float64 {
	return n.mean.RosselandMeanTotalScatteringCoefficient(rho*n.units.Rho(), temp*n.units.Temperature) * n.units.Length
}

// NLambda returns the auxiliary parameter count of the wrapped tables.
func (n MeanNonCGSUnitsS) NLambda() int { return n.mean.NLambda() }

// PrintParams prints the unit system and the wrapped tables.
func (n MeanNonCGSUnitsS) PrintParams() {
	fmt.Printf("Non-CGS units: %# v\n", pretty.Formatter(n.units))
	n.mean.PrintParams()
}

// Finalize releases the wrapped tables.
func (n MeanNonCGSUnitsS) Finalize() { n.mean.Finalize() }

// GetOnDevice returns a copy of n wrapping device copies of its tables.
func (n MeanNonCGSUnitsS) GetOnDevice() MeanNonCGSUnitsS {
	return MeanNonCGSUnitsS{mean: n.mean.GetOnDevice(), units: n.units}
}
