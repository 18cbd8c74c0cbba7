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
	"github.com/spatialmodel/meanopac"
	"github.com/spatialmodel/meanopac/databox"
)

// TableBounds specifies the grid of a photon mean opacity table. The bounds
// are base-10 logarithms of density and temperature.
type TableBounds struct {
	LRhoMin, LRhoMax float64
	NRho             int
	LTMin, LTMax     float64
	NT               int
}

func (b TableBounds) validate(name string) error {
	if b.NRho < 1 || b.NT < 1 {
		return meanopac.Fail(meanopac.ContractError, "%s: table dimensions %dx%d are not positive", name, b.NRho, b.NT)
	}
	if b.LRhoMax < b.LRhoMin || (b.NRho > 1 && b.LRhoMax == b.LRhoMin) {
		return meanopac.Fail(meanopac.ContractError, "%s: invalid density bounds [%g, %g]", name, b.LRhoMin, b.LRhoMax)
	}
	if b.LTMax < b.LTMin || (b.NT > 1 && b.LTMax == b.LTMin) {
		return meanopac.Fail(meanopac.ContractError, "%s: invalid temperature bounds [%g, %g]", name, b.LTMin, b.LTMax)
	}
	return nil
}

// defaultNNu is the number of frequency samples when the frequency grid is
// chosen automatically.
const defaultNNu = 100

type frequencyGrid struct {
	auto           bool
	lNuMin, lNuMax float64
	nNu            int
}

// An Option changes how mean opacity tables are built.
type Option func(*frequencyGrid)

// WithFrequencyGrid integrates over nNu frequencies evenly spaced in
// log10(nu) between lNuMin and lNuMax. By default the grid spans from
// 1e-3 kT_min/h to 1e3 kT_max/h with 100 samples.
func WithFrequencyGrid(lNuMin, lNuMax float64, nNu int) Option {
	return func(g *frequencyGrid) {
		g.auto = false
		g.lNuMin, g.lNuMax, g.nNu = lNuMin, lNuMax, nNu
	}
}

func newFrequencyGrid(name string, pc meanopac.PhysicalConstants, b TableBounds, opts []Option) (frequencyGrid, error) {
	g := frequencyGrid{auto: true, nNu: defaultNNu}
	for _, o := range opts {
		o(&g)
	}
	if g.auto {
		g.lNuMin = meanopac.ToLog(1e-3 * pc.KB * meanopac.FromLog(b.LTMin) / pc.H)
		g.lNuMax = meanopac.ToLog(1e3 * pc.KB * meanopac.FromLog(b.LTMax) / pc.H)
		return g, nil
	}
	if g.nNu < 2 {
		return g, meanopac.Fail(meanopac.ContractError, "%s: frequency grid needs at least 2 points, have %d", name, g.nNu)
	}
	if !(g.lNuMax > g.lNuMin) {
		return g, meanopac.Fail(meanopac.ContractError, "%s: invalid frequency bounds [%g, %g]", name, g.lNuMin, g.lNuMax)
	}
	return g, nil
}

// nodes returns the log10 frequencies of the grid.
func (g frequencyGrid) nodes() []float64 {
	return databox.Range{Min: g.lNuMin, Max: g.lNuMax, N: g.nNu}.Nodes()
}

// coefficientFunc returns an absorption or scattering coefficient in
// inverse length.
type coefficientFunc func(rho, temp, nu float64) float64

// buildMeanTables tabulates the Planck and Rosseland means of coeff over
// the grid b, weighting with the Planck distribution for constants pc.
// The tables have axis 0 in log temperature and axis 1 in log density.
func buildMeanTables(name string, pc meanopac.PhysicalConstants, coeff coefficientFunc, b TableBounds, opts []Option) (planck, rosseland *databox.DataBox, err error) {
	if err = b.validate(name); err != nil {
		return nil, nil, err
	}
	dist := NewPlanckDistribution(pc)
	grid, err := newFrequencyGrid(name, dist.Constants(), b, opts)
	if err != nil {
		return nil, nil, err
	}

	planck = databox.New(b.NRho, b.NT)
	planck.SetRange(0, b.LTMin, b.LTMax, b.NT)
	planck.SetRange(1, b.LRhoMin, b.LRhoMax, b.NRho)
	rosseland = new(databox.DataBox)
	rosseland.CopyMetadata(planck)
	rRho, _ := planck.Range(1)
	rT, _ := planck.Range(0)

	lnus := grid.nodes()
	dlnu := (grid.lNuMax - grid.lNuMin) / float64(grid.nNu-1)
	err = meanopac.FillMeanTables(name, planck, rosseland, func(idx []int) (float64, float64) {
		rho := meanopac.FromLog(rRho.X(idx[0]))
		temp := meanopac.FromLog(rT.X(idx[1]))
		var planckNum, planckDenom, rossNum, rossDenom float64
		for inu, lnu := range lnus {
			weight := 1.
			if inu == 0 || inu == len(lnus)-1 {
				weight = 0.5 // trapezoidal rule
			}
			nu := meanopac.FromLog(lnu)
			alpha := coeff(rho, temp, nu)
			B := dist.ThermalDistributionOfTNu(temp, nu)
			dBdT := dist.DThermalDistributionOfTNuDT(temp, nu)
			planckNum += weight * alpha / rho * B * nu * dlnu
			planckDenom += weight * B * nu * dlnu
			if alpha > meanopac.Small {
				rossNum += weight * meanopac.Ratio(rho, alpha) * dBdT * nu * dlnu
				rossDenom += weight * dBdT * nu * dlnu
			}
		}
		kappaPlanck := meanopac.Ratio(planckNum, planckDenom)
		kappaRosseland := 0.
		if kappaPlanck > meanopac.Small {
			kappaRosseland = meanopac.Ratio(rossDenom, rossNum)
		}
		return kappaPlanck, kappaRosseland
	})
	if err != nil {
		return nil, nil, err
	}
	return planck, rosseland, nil
}

// queryMean returns rho times the interpolated mean opacity in table b.
func queryMean(b *databox.DataBox, rho, temp float64) float64 {
	return rho * meanopac.FromLog(b.Interp(meanopac.ToLog(rho), meanopac.ToLog(temp)))
}
