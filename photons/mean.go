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
	"github.com/spatialmodel/meanopac/databox"
)

var tableDims = []string{"lRho", "lT"}

// meanTables holds a pair of Planck and Rosseland mean opacity tables.
type meanTables struct {
	lkappaPlanck, lkappaRosseland *databox.DataBox
	nlambda                       int
}

func (m meanTables) onDevice() meanTables {
	return meanTables{
		lkappaPlanck:    m.lkappaPlanck.OnDevice(),
		lkappaRosseland: m.lkappaRosseland.OnDevice(),
		nlambda:         m.nlambda,
	}
}

func (m meanTables) finalize() {
	m.lkappaPlanck.Finalize()
	m.lkappaRosseland.Finalize()
}

func (m meanTables) printParams(title string) {
	fmt.Println(title)
	if m.lkappaPlanck.IsEmpty() {
		return
	}
	lRho, _ := m.lkappaPlanck.Range(1)
	lT, _ := m.lkappaPlanck.Range(0)
	fmt.Printf("%# v\n", pretty.Formatter(struct {
		LRho, LT databox.Range
		NLambda  int
	}{lRho, lT, m.nlambda}))
}

func loadMeanTables(tf meanopac.TableFile, name, path string) (meanTables, error) {
	p, r, nlambda, err := tf.Load(name, path)
	if err != nil {
		return meanTables{}, err
	}
	return meanTables{lkappaPlanck: p, lkappaRosseland: r, nlambda: nlambda}, nil
}

var absorptionFile = meanopac.TableFile{
	Comment:      "MeanOpac photon mean absorption opacity tables",
	Dims:         tableDims,
	PlanckKey:    "PlanckMeanOpacity",
	RosselandKey: "RosselandMeanOpacity",
}

// MeanOpacity holds tables of the Planck and Rosseland mean photon
// absorption opacities, in CGS units.
type MeanOpacity struct {
	t meanTables
}

// NewMeanOpacity tabulates the mean opacities of the absorption model opac.
// lambda is passed to every evaluation of opac.
func NewMeanOpacity(opac Opacity, b TableBounds, lambda []float64, opts ...Option) (MeanOpacity, error) {
	coeff := func(rho, temp, nu float64) float64 {
		return opac.AbsorptionCoefficient(rho, temp, nu, lambda)
	}
	p, r, err := buildMeanTables("photons.MeanOpacity", meanopac.CGS, coeff, b, opts)
	if err != nil {
		return MeanOpacity{}, err
	}
	return MeanOpacity{t: meanTables{lkappaPlanck: p, lkappaRosseland: r, nlambda: opac.NLambda()}}, nil
}

// LoadMeanOpacity reads tables saved by MeanOpacity.Save.
func LoadMeanOpacity(path string) (MeanOpacity, error) {
	t, err := loadMeanTables(absorptionFile, "photons.MeanOpacity", path)
	return MeanOpacity{t: t}, err
}

// Save writes the tables to a NetCDF file at path.
func (m MeanOpacity) Save(path string) error {
	return absorptionFile.Save("photons.MeanOpacity", path, m.t.lkappaPlanck, m.t.lkappaRosseland, m.t.nlambda)
}

// PlanckMeanAbsorptionCoefficient returns the Planck mean absorption
// coefficient in 1/cm.
func (m MeanOpacity) PlanckMeanAbsorptionCoefficient(rho, temp float64) float64 {
	return queryMean(m.t.lkappaPlanck, rho, temp)
}

// RosselandMeanAbsorptionCoefficient returns the Rosseland mean absorption
// coefficient in 1/cm.
func (m MeanOpacity) RosselandMeanAbsorptionCoefficient(rho, temp float64) float64 {
	return queryMean(m.t.lkappaRosseland, rho, temp)
}

// NLambda returns the auxiliary parameter count of the tabulated model.
func (m MeanOpacity) NLambda() int { return m.t.nlambda }

// PrintParams prints a description of the tables to standard output.
func (m MeanOpacity) PrintParams() { m.t.printParams("Mean absorption opacity") }

// GetOnDevice returns a copy of m whose tables are device copies.
func (m MeanOpacity) GetOnDevice() MeanOpacity { return MeanOpacity{t: m.t.onDevice()} }

// Finalize releases the table storage.
func (m MeanOpacity) Finalize() { m.t.finalize() }
