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
	"github.com/spatialmodel/meanopac/databox"
)

// TableBounds specifies the grid of a MeanOpacity table. Density and
// temperature bounds are base-10 logarithms of CGS values; electron
// fraction bounds are linear.
type TableBounds struct {
	LRhoMin, LRhoMax float64
	NRho             int
	LTMin, LTMax     float64
	NT               int
	YeMin, YeMax     float64
	NYe              int
}

func (b TableBounds) validate() error {
	for _, a := range []struct {
		name     string
		min, max float64
		n        int
	}{
		{"density", b.LRhoMin, b.LRhoMax, b.NRho},
		{"temperature", b.LTMin, b.LTMax, b.NT},
		{"electron fraction", b.YeMin, b.YeMax, b.NYe},
	} {
		if a.n < 1 {
			return meanopac.Fail(meanopac.ContractError, "neutrinos.MeanOpacity: %s grid needs at least one point", a.name)
		}
		if a.max < a.min || (a.n > 1 && a.max == a.min) {
			return meanopac.Fail(meanopac.ContractError, "neutrinos.MeanOpacity: invalid %s bounds [%g, %g]", a.name, a.min, a.max)
		}
	}
	return nil
}

// Frequency integration grid.
const (
	nNu   = 100
	nuMin = 1e10 // Hz
	nuMax = 1e30 // Hz
)

var tableFile = meanopac.TableFile{
	Comment:      "MeanOpac neutrino mean absorption opacity tables",
	Dims:         []string{"lRho", "lT", "Ye", "species"},
	PlanckKey:    "PlanckMeanOpacity",
	RosselandKey: "RosselandMeanOpacity",
}

// checkBand returns an error if opac is a top-hat model whose band does not
// cover the frequency integration grid, where the Rosseland integrand is
// undefined.
func checkBand(opac Opacity) error {
	lo, hi := nuMin, nuMax
	var th Tophat
	switch o := opac.(type) {
	case Tophat:
		th = o
	case NonCGSUnits[Tophat]:
		th = o.Model()
		f := o.Units().Frequency()
		lo, hi = lo*f, hi*f
	case Variant:
		if t, ok := Get[Tophat](o); ok {
			return checkBand(t)
		}
		if t, ok := Get[NonCGSUnits[Tophat]](o); ok {
			return checkBand(t)
		}
		return nil
	default:
		return nil
	}
	if th.NuMin > lo || th.NuMax < hi {
		return meanopac.Fail(meanopac.ContractError, "neutrinos.MeanOpacity: tophat band [%g, %g] Hz must cover the integration grid [%g, %g] Hz", th.NuMin, th.NuMax, lo, hi)
	}
	return nil
}

// MeanOpacity holds tables of the Planck and Rosseland mean absorption
// opacities of each neutrino species.
type MeanOpacity struct {
	lkappaPlanck, lkappaRosseland *databox.DataBox
	nlambda                       int
}

// NewMeanOpacity tabulates the mean opacities of opac on the grid b,
// integrating over frequency between 1e10 and 1e30 Hz. lambda is passed to
// every evaluation of opac.
func NewMeanOpacity(opac Opacity, b TableBounds, lambda []float64) (MeanOpacity, error) {
	if err := b.validate(); err != nil {
		return MeanOpacity{}, err
	}
	if err := checkBand(opac); err != nil {
		return MeanOpacity{}, err
	}
	m := MeanOpacity{
		lkappaPlanck:    new(databox.DataBox),
		lkappaRosseland: new(databox.DataBox),
		nlambda:         opac.NLambda(),
	}
	m.lkappaPlanck.Resize(b.NRho, b.NT, b.NYe, meanopac.NeutrinoNTypes)
	// axis 0 is the species and is not interpolated.
	m.lkappaPlanck.SetRange(1, b.YeMin, b.YeMax, b.NYe)
	m.lkappaPlanck.SetRange(2, b.LTMin, b.LTMax, b.NT)
	m.lkappaPlanck.SetRange(3, b.LRhoMin, b.LRhoMax, b.NRho)
	m.lkappaRosseland.CopyMetadata(m.lkappaPlanck)

	rRho, _ := m.lkappaPlanck.Range(3)
	rT, _ := m.lkappaPlanck.Range(2)
	rYe, _ := m.lkappaPlanck.Range(1)

	lnuMin := meanopac.ToLog(nuMin)
	lnuMax := meanopac.ToLog(nuMax)
	dlnu := (lnuMax - lnuMin) / (nNu - 1)
	nu0 := meanopac.FromLog(lnuMin)
	nu1 := meanopac.FromLog(lnuMax)

	err := meanopac.FillMeanTables("neutrinos.MeanOpacity", m.lkappaPlanck, m.lkappaRosseland, func(idx []int) (float64, float64) {
		rho := meanopac.FromLog(rRho.X(idx[0]))
		temp := meanopac.FromLog(rT.X(idx[1]))
		ye := rYe.X(idx[2])
		typ := meanopac.Idx2RadType(idx[3])

		var planckNum, planckDenom, rossNum, rossDenom float64
		for inu := 0; inu < nNu; inu++ {
			nu := meanopac.FromLog(lnuMin + float64(inu)*dlnu)
			alpha := opac.AbsorptionCoefficient(rho, temp, ye, typ, nu, lambda)
			B := opac.ThermalDistributionOfTNu(temp, typ, nu)
			dBdT := opac.DThermalDistributionOfTNuDT(temp, typ, nu)
			planckNum += alpha / rho * B * nu * dlnu
			planckDenom += B * nu * dlnu
			rossNum += rho / alpha * dBdT * nu * dlnu
			rossDenom += dBdT * nu * dlnu
		}

		// Trapezoidal rule: the end points get half weight.
		a0 := opac.AbsorptionCoefficient(rho, temp, ye, typ, nu0, lambda)
		a1 := opac.AbsorptionCoefficient(rho, temp, ye, typ, nu1, lambda)
		b0 := opac.ThermalDistributionOfTNu(temp, typ, nu0)
		b1 := opac.ThermalDistributionOfTNu(temp, typ, nu1)
		db0 := opac.DThermalDistributionOfTNuDT(temp, typ, nu0)
		db1 := opac.DThermalDistributionOfTNuDT(temp, typ, nu1)
		planckNum -= 0.5 * 1 / rho * (a0*b0*nu0 + a1*b1*nu1) * dlnu
		planckDenom -= 0.5 * (b0*nu0 + b1*nu1) * dlnu
		rossNum -= 0.5 * rho * (1/a0*db0*nu0 + 1/a1*db1*nu1) * dlnu
		rossDenom -= 0.5 * (db0*nu0 + db1*nu1) * dlnu

		return planckNum / planckDenom, 1 / (rossNum / rossDenom)
	})
	if err != nil {
		return MeanOpacity{}, err
	}
	return m, nil
}

// LoadMeanOpacity reads tables saved by MeanOpacity.Save.
func LoadMeanOpacity(path string) (MeanOpacity, error) {
	p, r, nlambda, err := tableFile.Load("neutrinos.MeanOpacity", path)
	if err != nil {
		return MeanOpacity{}, err
	}
	return MeanOpacity{lkappaPlanck: p, lkappaRosseland: r, nlambda: nlambda}, nil
}

// Save writes the tables to a NetCDF file at path.
func (m MeanOpacity) Save(path string) error {
	return tableFile.Save("neutrinos.MeanOpacity", path, m.lkappaPlanck, m.lkappaRosseland, m.nlambda)
}

// NLambda returns the auxiliary parameter count of the tabulated model.
func (m MeanOpacity) NLambda() int { return m.nlambda }

// PrintParams prints a description of the tables to standard output.
func (m MeanOpacity) PrintParams() {
	fmt.Println("Mean opacity")
	if m.lkappaPlanck == nil || m.lkappaPlanck.IsEmpty() {
		return
	}
	ranges := make([]databox.Range, 0, 3)
	for axis := 3; axis >= 1; axis-- {
		r, _ := m.lkappaPlanck.Range(axis)
		ranges = append(ranges, r)
	}
	fmt.Printf("%# v\n", pretty.Formatter(struct {
		LRho, LT, Ye databox.Range
		NLambda      int
	}{ranges[0], ranges[1], ranges[2], m.nlambda}))
}

// GetOnDevice returns a copy of m whose tables are device copies.
func (m MeanOpacity) GetOnDevice() MeanOpacity {
	return MeanOpacity{
		lkappaPlanck:    m.lkappaPlanck.OnDevice(),
		lkappaRosseland: m.lkappaRosseland.OnDevice(),
		nlambda:         m.nlambda,
	}
}

// Finalize releases the table storage.
func (m MeanOpacity) Finalize() {
	m.lkappaPlanck.Finalize()
	m.lkappaRosseland.Finalize()
}

// PlanckMeanAbsorptionCoefficient returns the Planck mean absorption
// coefficient of species typ, in 1/cm.
func (m MeanOpacity) PlanckMeanAbsorptionCoefficient(rho, temp, ye float64, typ meanopac.RadiationType) float64 {
	return m.query(m.lkappaPlanck, rho, temp, ye, typ)
}

// RosselandMeanAbsorptionCoefficient returns the Rosseland mean absorption
// coefficient of species typ, in 1/cm.
func (m MeanOpacity) RosselandMeanAbsorptionCoefficient(rho, temp, ye float64, typ meanopac.RadiationType) float64 {
	return m.query(m.lkappaRosseland, rho, temp, ye, typ)
}

func (m MeanOpacity) query(b *databox.DataBox, rho, temp, ye float64, typ meanopac.RadiationType) float64 {
	lRho := meanopac.ToLog(rho)
	lT := meanopac.ToLog(temp)
	idx := meanopac.RadType2Idx(typ)
	return rho * meanopac.FromLog(b.Interp(lRho, lT, ye, float64(idx)))
}
