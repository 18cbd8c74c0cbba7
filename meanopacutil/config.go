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

package meanopacutil

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/meanopac"
	"github.com/spatialmodel/meanopac/neutrinos"
	"github.com/spatialmodel/meanopac/photons"
	"github.com/spf13/cast"
)

// setLogLevel sets the level of the standard logrus logger from the
// LogLevel configuration variable.
func setLogLevel(cfg *viper.Viper) error {
	lvl, err := logrus.ParseLevel(cfg.GetString("LogLevel"))
	if err != nil {
		return fmt.Errorf("meanopacutil: LogLevel: %v", err)
	}
	logrus.SetLevel(lvl)
	return nil
}

// toFloat64SliceE converts a configuration value holding a list of numbers,
// which may have been given as strings on the command line or as a JSON
// array in an environment variable, to a []float64.
func toFloat64SliceE(s interface{}) ([]float64, error) {
	var vals []interface{}
	switch v := s.(type) {
	case nil:
		return nil, nil
	case []float64:
		return v, nil
	case []interface{}:
		vals = v
	case []string:
		for _, x := range v {
			vals = append(vals, x)
		}
	case string:
		if strings.TrimSpace(v) == "" {
			return nil, nil
		}
		var o []float64
		if err := json.Unmarshal([]byte(v), &o); err != nil {
			return nil, err
		}
		return o, nil
	default:
		return nil, fmt.Errorf("invalid type %T for a list of numbers", s)
	}
	o := make([]float64, len(vals))
	for i, val := range vals {
		f, err := cast.ToFloat64E(val)
		if err != nil {
			return nil, err
		}
		o[i] = f
	}
	return o, nil
}

// lambda returns the auxiliary model parameters. There must be at least
// nlambda of them.
func lambda(cfg *viper.Viper, nlambda int) ([]float64, error) {
	l, err := toFloat64SliceE(cfg.Get("Model.Lambda"))
	if err != nil {
		return nil, fmt.Errorf("meanopacutil: Model.Lambda: %v", err)
	}
	if len(l) < nlambda {
		return nil, fmt.Errorf("meanopacutil: Model.Lambda has %d values but the model needs %d", len(l), nlambda)
	}
	return l, nil
}

// unitSystem returns the unit system in the file given by the UnitsFile
// configuration variable, and whether one was given.
func unitSystem(cfg *viper.Viper) (meanopac.UnitSystem, bool, error) {
	path := os.ExpandEnv(cfg.GetString("UnitsFile"))
	if path == "" {
		return meanopac.CGSUnits, false, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return meanopac.UnitSystem{}, false, fmt.Errorf("meanopacutil: opening UnitsFile: %w", err)
	}
	defer f.Close()
	u, err := meanopac.LoadUnitSystem(f)
	if err != nil {
		return meanopac.UnitSystem{}, false, err
	}
	return u, true, nil
}

// NeutrinoModel returns the neutrino opacity model described by cfg.
// Gray and tophat models are given in code units if UnitsFile is set.
func NeutrinoModel(cfg *viper.Viper) (neutrinos.Variant, error) {
	units, nonCGS, err := unitSystem(cfg)
	if err != nil {
		return neutrinos.Variant{}, err
	}
	switch t := cfg.GetString("Model.Type"); t {
	case "gray":
		g := neutrinos.NewGray(cfg.GetFloat64("Model.Kappa"))
		if nonCGS {
			return neutrinos.NewVariant(neutrinos.NewNonCGSUnits(g, units)), nil
		}
		return neutrinos.NewVariant(g), nil
	case "tophat":
		nuMin, nuMax := cfg.GetFloat64("Model.NuMin"), cfg.GetFloat64("Model.NuMax")
		if !(nuMax > nuMin) {
			return neutrinos.Variant{}, fmt.Errorf("meanopacutil: Model.NuMax (%g) must be greater than Model.NuMin (%g)", nuMax, nuMin)
		}
		th := neutrinos.NewTophat(cfg.GetFloat64("Model.Kappa"), nuMin, nuMax)
		if nonCGS {
			return neutrinos.NewVariant(neutrinos.NewNonCGSUnits(th, units)), nil
		}
		return neutrinos.NewVariant(th), nil
	case "user":
		if nonCGS {
			return neutrinos.Variant{}, fmt.Errorf("meanopacutil: user-defined models must be in CGS units; unset UnitsFile")
		}
		u, err := neutrinos.NewUserOpacity(cfg.GetString("Model.Expression"), cfg.GetInt("Model.NLambda"))
		if err != nil {
			return neutrinos.Variant{}, err
		}
		return neutrinos.NewVariant(u), nil
	default:
		return neutrinos.Variant{}, fmt.Errorf("meanopacutil: invalid neutrino Model.Type %q; valid types are gray, tophat, and user", t)
	}
}

// PhotonModel returns the photon absorption model described by cfg.
func PhotonModel(cfg *viper.Viper) (photons.Opacity, error) {
	switch t := cfg.GetString("Model.Type"); t {
	case "gray":
		return photons.NewGray(cfg.GetFloat64("Model.Kappa")), nil
	case "freefree":
		return photons.NewFreeFree(cfg.GetFloat64("Model.Gff"), cfg.GetFloat64("Model.Z")), nil
	default:
		return nil, fmt.Errorf("meanopacutil: invalid photon absorption Model.Type %q; valid types are gray and freefree", t)
	}
}

// PhotonSModel returns the photon scattering model described by cfg.
func PhotonSModel(cfg *viper.Viper) (photons.SOpacity, error) {
	switch t := cfg.GetString("Model.Type"); t {
	case "grays":
		return photons.NewGrayS(cfg.GetFloat64("Model.Kappa")), nil
	case "thomson":
		return photons.NewThomsonS(cfg.GetFloat64("Model.AvgMass")), nil
	default:
		return nil, fmt.Errorf("meanopacutil: invalid photon scattering Model.Type %q; valid types are grays and thomson", t)
	}
}

// NeutrinoBounds returns the neutrino table grid described by cfg.
func NeutrinoBounds(cfg *viper.Viper) neutrinos.TableBounds {
	return neutrinos.TableBounds{
		LRhoMin: cfg.GetFloat64("Table.LRhoMin"),
		LRhoMax: cfg.GetFloat64("Table.LRhoMax"),
		NRho:    cfg.GetInt("Table.NRho"),
		LTMin:   cfg.GetFloat64("Table.LTMin"),
		LTMax:   cfg.GetFloat64("Table.LTMax"),
		NT:      cfg.GetInt("Table.NT"),
		YeMin:   cfg.GetFloat64("Table.YeMin"),
		YeMax:   cfg.GetFloat64("Table.YeMax"),
		NYe:     cfg.GetInt("Table.NYe"),
	}
}

// PhotonBounds returns the photon table grid described by cfg.
func PhotonBounds(cfg *viper.Viper) photons.TableBounds {
	return photons.TableBounds{
		LRhoMin: cfg.GetFloat64("Table.LRhoMin"),
		LRhoMax: cfg.GetFloat64("Table.LRhoMax"),
		NRho:    cfg.GetInt("Table.NRho"),
		LTMin:   cfg.GetFloat64("Table.LTMin"),
		LTMax:   cfg.GetFloat64("Table.LTMax"),
		NT:      cfg.GetInt("Table.NT"),
	}
}

// frequencyOptions returns the photon frequency grid options described by
// cfg. Frequency.NNu = 0 selects the automatic grid.
func frequencyOptions(cfg *viper.Viper) []photons.Option {
	n := cfg.GetInt("Frequency.NNu")
	if n == 0 {
		return nil
	}
	return []photons.Option{photons.WithFrequencyGrid(cfg.GetFloat64("Frequency.LNuMin"), cfg.GetFloat64("Frequency.LNuMax"), n)}
}

// checkOutputFile makes sure that the output file is specified and expands
// any environment variables.
func checkOutputFile(f string) (string, error) {
	if f == "" {
		return "", fmt.Errorf(`meanopacutil: you need to specify an output file (for example: --OutputFile="opacity.nc")`)
	}
	return os.ExpandEnv(f), nil
}

// checkInputFile makes sure that the input file is specified and expands
// any environment variables.
func checkInputFile(f string) (string, error) {
	if f == "" {
		return "", fmt.Errorf(`meanopacutil: you need to specify an input file (for example: --InputFile="opacity.nc")`)
	}
	return os.ExpandEnv(f), nil
}
