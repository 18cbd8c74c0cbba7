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
	"os"
	"path/filepath"
	"testing"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/meanopac"
	"github.com/spatialmodel/meanopac/neutrinos"
	"github.com/spatialmodel/meanopac/photons"
	"github.com/stretchr/testify/require"
)

// writeUnitsFile writes a unit system with kilometer lengths and
// kiloKelvin temperatures to a file in dir.
func writeUnitsFile(t *testing.T, dir string) string {
	path := filepath.Join(dir, "units.toml")
	err := os.WriteFile(path, []byte(`TimeSeconds = 1.0
MassKilograms = 1.0e-3
LengthMeters = 1.0e3
TemperatureKelvin = 1.0e3
`), 0644)
	require.NoError(t, err)
	return path
}

func TestNeutrinoModel(t *testing.T) {
	dir := t.TempDir()

	t.Run("gray", func(t *testing.T) {
		cfg := viper.New()
		cfg.Set("Model.Type", "gray")
		cfg.Set("Model.Kappa", 3.0)
		v, err := NeutrinoModel(cfg)
		require.NoError(t, err)
		require.True(t, neutrinos.Is[neutrinos.Gray](v))
		g, _ := neutrinos.Get[neutrinos.Gray](v)
		require.Equal(t, 3.0, g.Kappa)
	})
	t.Run("gray units", func(t *testing.T) {
		cfg := viper.New()
		cfg.Set("Model.Type", "gray")
		cfg.Set("UnitsFile", writeUnitsFile(t, dir))
		v, err := NeutrinoModel(cfg)
		require.NoError(t, err)
		require.True(t, neutrinos.Is[neutrinos.NonCGSUnits[neutrinos.Gray]](v))
		n, _ := neutrinos.Get[neutrinos.NonCGSUnits[neutrinos.Gray]](v)
		require.InDelta(t, 1e5, n.Units().Length, 1e-9)
	})
	t.Run("tophat", func(t *testing.T) {
		cfg := viper.New()
		cfg.Set("Model.Type", "tophat")
		cfg.Set("Model.NuMin", 1e19)
		cfg.Set("Model.NuMax", 1e21)
		v, err := NeutrinoModel(cfg)
		require.NoError(t, err)
		require.True(t, neutrinos.Is[neutrinos.Tophat](v))

		cfg.Set("Model.NuMax", 1e18)
		_, err = NeutrinoModel(cfg)
		require.Error(t, err)
	})
	t.Run("user", func(t *testing.T) {
		cfg := viper.New()
		cfg.Set("Model.Type", "user")
		cfg.Set("Model.Expression", "rho * lambda0 * lambda1")
		cfg.Set("Model.NLambda", 2)
		v, err := NeutrinoModel(cfg)
		require.NoError(t, err)
		require.True(t, neutrinos.Is[neutrinos.UserOpacity](v))
		require.Equal(t, 2, v.NLambda())

		cfg.Set("Model.Expression", "rho * lambda2")
		_, err = NeutrinoModel(cfg)
		require.True(t, meanopac.IsKind(err, meanopac.ContractError))

		cfg.Set("Model.Expression", "rho")
		cfg.Set("UnitsFile", writeUnitsFile(t, dir))
		_, err = NeutrinoModel(cfg)
		require.Error(t, err)
	})
	t.Run("invalid", func(t *testing.T) {
		cfg := viper.New()
		cfg.Set("Model.Type", "grey")
		_, err := NeutrinoModel(cfg)
		require.Error(t, err)
	})
}

func TestPhotonModels(t *testing.T) {
	cfg := viper.New()
	cfg.Set("Model.Type", "freefree")
	cfg.Set("Model.Gff", 1.2)
	cfg.Set("Model.Z", 2.0)
	o, err := PhotonModel(cfg)
	require.NoError(t, err)
	require.Equal(t, photons.FreeFree{Gff: 1.2, Z: 2}, o)

	_, err = PhotonSModel(cfg)
	require.Error(t, err)

	cfg.Set("Model.Type", "thomson")
	s, err := PhotonSModel(cfg)
	require.NoError(t, err)
	require.Equal(t, meanopac.CGS.MP, s.(photons.ThomsonS).AvgMass)

	cfg.Set("Model.Type", "grays")
	cfg.Set("Model.Kappa", 0.4)
	s, err = PhotonSModel(cfg)
	require.NoError(t, err)
	require.Equal(t, photons.GrayS{Kappa: 0.4}, s)
}

func TestToFloat64SliceE(t *testing.T) {
	for _, test := range []struct {
		name string
		in   interface{}
		want []float64
	}{
		{"nil", nil, nil},
		{"strings", []string{"1", "2.5"}, []float64{1, 2.5}},
		{"json", "[1, 2e3]", []float64{1, 2000}},
		{"empty", "", nil},
		{"interfaces", []interface{}{int64(3), "4", 5.5}, []float64{3, 4, 5.5}},
	} {
		t.Run(test.name, func(t *testing.T) {
			have, err := toFloat64SliceE(test.in)
			require.NoError(t, err)
			require.Equal(t, test.want, have)
		})
	}
	_, err := toFloat64SliceE([]string{"x"})
	require.Error(t, err)
	_, err = toFloat64SliceE(3)
	require.Error(t, err)
}

func TestLambda(t *testing.T) {
	cfg := viper.New()
	cfg.Set("Model.Lambda", []string{"0.5"})
	l, err := lambda(cfg, 1)
	require.NoError(t, err)
	require.Equal(t, []float64{0.5}, l)
	_, err = lambda(cfg, 2)
	require.Error(t, err)
}

func TestFrequencyOptions(t *testing.T) {
	cfg := viper.New()
	require.Nil(t, frequencyOptions(cfg))
	cfg.Set("Frequency.NNu", 50)
	cfg.Set("Frequency.LNuMin", 10.0)
	cfg.Set("Frequency.LNuMax", 16.0)
	require.Len(t, frequencyOptions(cfg), 1)
}

func TestSetLogLevel(t *testing.T) {
	lvl := logrus.GetLevel()
	defer logrus.SetLevel(lvl)

	cfg := viper.New()
	cfg.Set("LogLevel", "debug")
	require.NoError(t, setLogLevel(cfg))
	require.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	cfg.Set("LogLevel", "loud")
	require.Error(t, setLogLevel(cfg))
}
