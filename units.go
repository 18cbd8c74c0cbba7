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

package meanopac

import (
	"io"
	"math"

	"github.com/BurntSushi/toml"
	"github.com/ctessum/unit"
)

// UnitSystem is a system of code units, given as the size of one code
// unit of each base quantity in CGS units.
type UnitSystem struct {
	Time        float64 // s
	Mass        float64 // g
	Length      float64 // cm
	Temperature float64 // K
}

// CGSUnits is the identity unit system.
var CGSUnits = UnitSystem{Time: 1, Mass: 1, Length: 1, Temperature: 1}

// NewUnitSystem returns the unit system in which one code unit of time,
// mass, length, and temperature equals the given quantities.
func NewUnitSystem(time, mass, length, temperature *unit.Unit) (UnitSystem, error) {
	for _, q := range []struct {
		name string
		u    *unit.Unit
		d    unit.Dimensions
	}{
		{name: "time", u: time, d: unit.Second},
		{name: "mass", u: mass, d: unit.Kilogram},
		{name: "length", u: length, d: unit.Meter},
		{name: "temperature", u: temperature, d: unit.Kelvin},
	} {
		if q.u == nil {
			return UnitSystem{}, Fail(ContractError, "meanopac: missing %s unit", q.name)
		}
		if err := q.u.Check(q.d); err != nil {
			return UnitSystem{}, Fail(ContractError, "meanopac: %s unit: %w", q.name, err)
		}
	}
	u := UnitSystem{
		Time:        time.Value(),
		Mass:        mass.Value() * 1000,
		Length:      length.Value() * 100,
		Temperature: temperature.Value(),
	}
	return u, u.validate()
}

func (u UnitSystem) validate() error {
	for _, v := range []float64{u.Time, u.Mass, u.Length, u.Temperature} {
		if !(v > 0) || math.IsInf(v, 0) {
			return Fail(ContractError, "meanopac: invalid unit system %+v", u)
		}
	}
	return nil
}

// unitSystemFile is the TOML representation of a unit system, in SI units.
type unitSystemFile struct {
	TimeSeconds       float64
	MassKilograms     float64
	LengthMeters      float64
	TemperatureKelvin float64
}

// LoadUnitSystem reads a unit system from TOML data of the form
//
//	TimeSeconds = 1.0
//	MassKilograms = 1.0e-3
//	LengthMeters = 1.0e-2
//	TemperatureKelvin = 1.0
func LoadUnitSystem(r io.Reader) (UnitSystem, error) {
	var f unitSystemFile
	if _, err := toml.DecodeReader(r, &f); err != nil {
		return UnitSystem{}, Fail(ContractError, "meanopac: reading unit system: %w", err)
	}
	return NewUnitSystem(
		unit.New(f.TimeSeconds, unit.Second),
		unit.New(f.MassKilograms, unit.Kilogram),
		unit.New(f.LengthMeters, unit.Meter),
		unit.New(f.TemperatureKelvin, unit.Kelvin),
	)
}

// Rho returns the size of the code density unit in g/cm^3.
func (u UnitSystem) Rho() float64 { return u.Mass / (u.Length * u.Length * u.Length) }

// Frequency returns the size of the code frequency unit in Hz.
func (u UnitSystem) Frequency() float64 { return 1 / u.Time }

// Energy returns the size of the code energy unit in erg.
func (u UnitSystem) Energy() float64 { return u.Mass * u.Length * u.Length / (u.Time * u.Time) }

// Volume returns the size of the code volume unit in cm^3.
func (u UnitSystem) Volume() float64 { return u.Length * u.Length * u.Length }
