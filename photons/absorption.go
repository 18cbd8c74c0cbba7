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
	"math"

	"github.com/kr/pretty"
	"github.com/spatialmodel/meanopac"
)

var cgsPlanck = NewPlanckDistribution(meanopac.CGS)

// Gray is a photon absorption model with a frequency-independent opacity
// Kappa, in cm^2/g.
type Gray struct {
	Kappa float64
}

// NewGray returns a gray absorption model.
func NewGray(kappa float64) Gray { return Gray{Kappa: kappa} }

// AbsorptionCoefficient returns the absorption coefficient in 1/cm.
func (g Gray) AbsorptionCoefficient(rho, temp, nu float64, lambda []float64) float64 {
	return rho * g.Kappa
}

// EmissivityPerNuOmega returns the thermal emissivity in erg/cm^3/s/Hz/sr.
func (g Gray) EmissivityPerNuOmega(rho, temp, nu float64, lambda []float64) float64 {
	return g.AbsorptionCoefficient(rho, temp, nu, lambda) * cgsPlanck.ThermalDistributionOfTNu(temp, nu)
}

// Emissivity returns the thermal emissivity integrated over frequency and
// solid angle, in erg/cm^3/s.
func (g Gray) Emissivity(rho, temp float64, lambda []float64) float64 {
	return 4 * math.Pi * rho * g.Kappa * cgsPlanck.ThermalDistributionOfT(temp)
}

// NLambda returns 0.
func (g Gray) NLambda() int { return 0 }

// PrintParams prints the model parameters to standard output.
func (g Gray) PrintParams() {
	fmt.Printf("Gray photon opacity: %# v\n", pretty.Formatter(g))
}

// freeFreeCoefficient is the free-free absorption coefficient prefactor in
// CGS units.
const freeFreeCoefficient = 3.692e8

// FreeFree is thermal bremsstrahlung absorption by a fully ionized plasma
// of a single species with charge Z, including stimulated emission. Ion
// and electron number densities are both taken to be rho/m_p. Gff is the
// frequency-averaged Gaunt factor.
type FreeFree struct {
	Gff, Z float64
}

// NewFreeFree returns a free-free absorption model.
func NewFreeFree(gff, z float64) FreeFree { return FreeFree{Gff: gff, Z: z} }

// AbsorptionCoefficient returns the absorption coefficient in 1/cm.
func (f FreeFree) AbsorptionCoefficient(rho, temp, nu float64, lambda []float64) float64 {
	pc := meanopac.CGS
	n := rho / pc.MP
	x := pc.H * nu / (pc.KB * temp)
	return freeFreeCoefficient * f.Z * f.Z * f.Gff * n * n / (math.Sqrt(temp) * nu * nu * nu) * -math.Expm1(-x)
}

// NLambda returns 0.
func (f FreeFree) NLambda() int { return 0 }

// PrintParams prints the model parameters to standard output.
func (f FreeFree) PrintParams() {
	fmt.Printf("Free-free photon opacity: %# v\n", pretty.Formatter(f))
}
