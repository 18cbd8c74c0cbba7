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

// MeanSAlternative is the set of mean scattering table types a MeanSVariant
// can hold.
type MeanSAlternative interface {
	MeanSOpacityScaleFree | MeanSOpacityCGS | MeanNonCGSUnitsS
}

type meanSModel interface {
	PlanckMeanTotalScatteringCoefficient(rho, temp float64) float64
	RosselandMeanTotalScatteringCoefficient(rho, temp float64) float64
	NLambda() int
	PrintParams()
	Finalize()
}

// MeanSVariant holds one of the mean scattering table types and forwards
// queries to it. The zero value holds an empty MeanSOpacityScaleFree.
type MeanSVariant struct {
	mean meanSModel
}

// NewMeanSVariant returns a MeanSVariant holding mean.
func NewMeanSVariant[T MeanSAlternative](mean T) MeanSVariant {
	return MeanSVariant{mean: any(mean).(meanSModel)}
}

func (v MeanSVariant) active() meanSModel {
	if v.mean == nil {
		return MeanSOpacityScaleFree{}
	}
	return v.mean
}

// Is reports whether v holds a T.
func Is[T MeanSAlternative](v MeanSVariant) bool {
	_, ok := any(v.active()).(T)
	return ok
}

// Get returns the T held by v, if any.
func Get[T MeanSAlternative](v MeanSVariant) (T, bool) {
	m, ok := any(v.active()).(T)
	return m, ok
}

// PlanckMeanTotalScatteringCoefficient returns the Planck mean scattering
// coefficient of the held tables.
func (v MeanSVariant) PlanckMeanTotalScatteringCoefficient(rho, temp float64) float64 {
	return v.active().PlanckMeanTotalScatteringCoefficient(rho, temp)
}

// RosselandMeanTotalScatteringCoefficient returns the Rosseland mean
// scattering coefficient of the held tables.
func (v MeanSVariant) RosselandMeanTotalScatteringCoefficient(rho, temp float64) float64 {
	return v.active().RosselandMeanTotalScatteringCoefficient(rho, temp)
}

// NLambda returns the auxiliary parameter count of the held tables.
func (v MeanSVariant) NLambda() int { return v.active().NLambda() }

// PrintParams prints a description of the held tables.
func (v MeanSVariant) PrintParams() { v.active().PrintParams() }

// Finalize releases the held tables.
func (v MeanSVariant) Finalize() { v.active().Finalize() }

// GetOnDevice returns a new MeanSVariant holding device copies of the
// held tables.
func (v MeanSVariant) GetOnDevice() MeanSVariant {
	switch m := v.active().(type) {
	case MeanSOpacityScaleFree:
		return NewMeanSVariant(m.GetOnDevice())
	case MeanSOpacityCGS:
		return NewMeanSVariant(m.GetOnDevice())
	case MeanNonCGSUnitsS:
		return NewMeanSVariant(m.GetOnDevice())
	}
	panic("photons: invalid MeanSVariant alternative")
}
