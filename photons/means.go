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
)

// meanSOpacity holds mean scattering opacity tables built with one set of
// physical constants.
type meanSOpacity struct {
	t meanTables
}

func newMeanSOpacity(name string, pc meanopac.PhysicalConstants, s SOpacity, b TableBounds, lambda []float64, opts []Option) (meanSOpacity, error) {
	coeff := func(rho, temp, nu float64) float64 {
		return s.TotalScatteringCoefficient(rho, temp, nu, lambda)
	}
	p, r, err := buildMeanTables(name, pc, coeff, b, opts)
	if err != nil {
		return meanSOpacity{}, err
	}
	return meanSOpacity{t: meanTables{lkappaPlanck: p, lkappaRosseland: r, nlambda: s.NLambda()}}, nil
}

// PlanckMeanTotalScatteringCoefficient returns the Planck mean scattering
// coefficient in inverse length.
func (m meanSOpacity) PlanckMeanTotalScatteringCoefficient(rho, temp float64) float64 {
	return queryMean(m.t.lkappaPlanck, rho, temp)
}

// RosselandMeanTotalScatteringCoefficient returns the Rosseland mean
// scattering coefficient in inverse length.
func (m meanSOpacity) RosselandMeanTotalScatteringCoefficient(rho, temp float64) float64 {
	return queryMean(m.t.lkappaRosseland, rho, temp)
}

// NLambda returns the auxiliary parameter count of the tabulated model.
func (m meanSOpacity) NLambda() int { return m.t.nlambda }

// PrintParams prints a description of the tables to standard output.
func (m meanSOpacity) PrintParams() { m.t.printParams("Mean scattering opacity") }

// Finalize releases the table storage.
func (m meanSOpacity) Finalize() { m.t.finalize() }

var scatteringFile = meanopac.TableFile{
	Dims:         tableDims,
	PlanckKey:    "PlanckMeanSOpacity",
	RosselandKey: "RosselandMeanSOpacity",
}

// MeanSOpacityCGS holds Planck and Rosseland mean scattering opacity
// tables in CGS units.
type MeanSOpacityCGS struct {
	meanSOpacity
}

const cgsName = "photons.MeanSOpacityCGS"

// NewMeanSOpacityCGS tabulates the mean opacities of the scattering model
// s, weighting with the CGS Planck distribution.
func NewMeanSOpacityCGS(s SOpacity, b TableBounds, lambda []float64, opts ...Option) (MeanSOpacityCGS, error) {
	m, err := newMeanSOpacity(cgsName, meanopac.CGS, s, b, lambda, opts)
	return MeanSOpacityCGS{m}, err
}

// LoadMeanSOpacityCGS reads tables saved by MeanSOpacityCGS.Save.
func LoadMeanSOpacityCGS(path string) (MeanSOpacityCGS, error) {
	t, err := loadMeanTables(scatteringFile, cgsName, path)
	return MeanSOpacityCGS{meanSOpacity{t: t}}, err
}

// Save writes the tables to a NetCDF file at path.
func (m MeanSOpacityCGS) Save(path string) error {
	tf := scatteringFile
	tf.Comment = "MeanOpac photon mean scattering opacity tables (CGS)"
	return tf.Save(cgsName, path, m.t.lkappaPlanck, m.t.lkappaRosseland, m.t.nlambda)
}

// GetOnDevice returns a copy of m whose tables are device copies.
func (m MeanSOpacityCGS) GetOnDevice() MeanSOpacityCGS {
	return MeanSOpacityCGS{meanSOpacity{t: m.t.onDevice()}}
}

// MeanSOpacityScaleFree holds Planck and Rosseland mean scattering opacity
// tables built with all physical constants set to one.
type MeanSOpacityScaleFree struct {
	meanSOpacity
}

const scaleFreeName = "photons.MeanSOpacityScaleFree"

// NewMeanSOpacityScaleFree tabulates the mean opacities of the scattering
// model s, weighting with the scale-free Planck distribution.
func NewMeanSOpacityScaleFree(s SOpacity, b TableBounds, lambda []float64, opts ...Option) (MeanSOpacityScaleFree, error) {
	m, err := newMeanSOpacity(scaleFreeName, meanopac.Unity, s, b, lambda, opts)
	return MeanSOpacityScaleFree{m}, err
}

// LoadMeanSOpacityScaleFree reads tables saved by
// MeanSOpacityScaleFree.Save.
func LoadMeanSOpacityScaleFree(path string) (MeanSOpacityScaleFree, error) {
	t, err := loadMeanTables(scatteringFile, scaleFreeName, path)
	return MeanSOpacityScaleFree{meanSOpacity{t: t}}, err
}

// Save writes the tables to a NetCDF file at path.
func (m MeanSOpacityScaleFree) Save(path string) error {
	tf := scatteringFile
	tf.Comment = "MeanOpac photon mean scattering opacity tables (scale-free)"
	return tf.Save(scaleFreeName, path, m.t.lkappaPlanck, m.t.lkappaRosseland, m.t.nlambda)
}

// GetOnDevice returns a copy of m whose tables are device copies.
func (m MeanSOpacityScaleFree) GetOnDevice() MeanSOpacityScaleFree {
	return MeanSOpacityScaleFree{meanSOpacity{t: m.t.onDevice()}}
}
