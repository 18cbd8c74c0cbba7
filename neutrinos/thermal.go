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
	"math"

	"github.com/spatialmodel/meanopac"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

var pc = meanopac.CGS

// ThermalDistributionOfTNu returns the specific intensity of a
// Fermi-Dirac distribution of massless neutrinos with zero chemical
// potential at temperature temp and frequency nu, in erg/cm^2/s/Hz/sr.
// It is the same for every species.
func ThermalDistributionOfTNu(temp, nu float64) float64 {
	x := pc.H * nu / (pc.KB * temp)
	return 2 * pc.H * nu * nu * nu / (pc.C * pc.C) / (math.Exp(x) + 1)
}

// DThermalDistributionOfTNuDT returns the derivative of
// ThermalDistributionOfTNu with respect to temperature.
func DThermalDistributionOfTNuDT(temp, nu float64) float64 {
	x := pc.H * nu / (pc.KB * temp)
	ex := math.Exp(-x)
	return 2 * pc.H * nu * nu * nu / (pc.C * pc.C) * x / temp * ex / ((1 + ex) * (1 + ex))
}

// ThermalDistributionOfT returns ThermalDistributionOfTNu integrated over
// frequency, in erg/cm^2/s/sr.
func ThermalDistributionOfT(temp float64) float64 {
	kt := pc.KB * temp / pc.H
	return 2 * pc.H / (pc.C * pc.C) * kt * kt * kt * kt * meanopac.FermiEnergyIntegral
}

// ThermalNumberDistributionOfT returns the number analogue of
// ThermalDistributionOfT, in 1/cm^2/s/sr.
func ThermalNumberDistributionOfT(temp float64) float64 {
	kt := pc.KB * temp / pc.H
	return 2 / (pc.C * pc.C) * kt * kt * kt * meanopac.FermiNumberIntegral
}

// nIntegrate is the number of frequency samples used for numerical
// frequency integrals.
const nIntegrate = 1024

// integrateNu integrates f over frequency between nuMin and nuMax on a
// logarithmically spaced grid.
func integrateNu(f func(nu float64) float64, nuMin, nuMax float64) float64 {
	if !(nuMax > nuMin) || nuMin <= 0 {
		return 0
	}
	nus := floats.LogSpan(make([]float64, nIntegrate), nuMin, nuMax)
	fs := make([]float64, len(nus))
	for i, nu := range nus {
		fs[i] = f(nu)
	}
	return integrate.Trapezoidal(nus, fs)
}

// thermalBand returns a frequency band that holds all but a negligible part
// of the thermal spectrum at temperature temp.
func thermalBand(temp float64) (nuMin, nuMax float64) {
	nut := pc.KB * temp / pc.H
	return 1e-4 * nut, 1e2 * nut
}
