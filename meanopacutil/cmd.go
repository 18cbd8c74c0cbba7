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

// Package meanopacutil holds the MeanOpac command-line interface and its
// configuration handling.
package meanopacutil

import (
	"fmt"
	"strings"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/meanopac"
	"github.com/spatialmodel/meanopac/neutrinos"
	"github.com/spatialmodel/meanopac/photons"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to MeanOpac.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "LogLevel",
			usage: `
              LogLevel sets the logging verbosity: one of panic, fatal,
              error, warning, info, debug, or trace.`,
			defaultVal: "info",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Model.Type",
			usage: `
              Model.Type specifies the opacity model. For neutrinos it is
              gray, tophat, or user. For photon absorption it is gray or
              freefree, and for photon scattering it is grays or thomson.`,
			shorthand:  "m",
			defaultVal: "gray",
			flagsets:   []*pflag.FlagSet{buildCmd.PersistentFlags(), modelCmd.Flags()},
		},
		{
			name: "Model.Kappa",
			usage: `
              Model.Kappa specifies the opacity of gray models and the
              in-band opacity of tophat models, in cm^2/g.`,
			defaultVal: 1.0,
			flagsets:   []*pflag.FlagSet{buildCmd.PersistentFlags(), modelCmd.Flags()},
		},
		{
			name: "Model.NuMin",
			usage: `
              Model.NuMin specifies the lower edge of the tophat model
              frequency band, in Hz. Tables can only be built for bands
              that cover 1e10 to 1e30 Hz.`,
			defaultVal: 1e9,
			flagsets:   []*pflag.FlagSet{buildCmd.PersistentFlags(), modelCmd.Flags()},
		},
		{
			name: "Model.NuMax",
			usage: `
              Model.NuMax specifies the upper edge of the tophat model
              frequency band, in Hz.`,
			defaultVal: 1e31,
			flagsets:   []*pflag.FlagSet{buildCmd.PersistentFlags(), modelCmd.Flags()},
		},
		{
			name: "Model.Expression",
			usage: `
              Model.Expression specifies the absorption coefficient of the
              user-defined neutrino model, in 1/cm, as an expression of the
              variables rho, T, Ye, type, nu, and lambda0, lambda1, ...
              Available functions are exp, log, log10, sqrt, abs, and pow.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{buildCmd.PersistentFlags(), modelCmd.Flags()},
		},
		{
			name: "Model.NLambda",
			usage: `
              Model.NLambda specifies the number of auxiliary parameters
              used by Model.Expression.`,
			defaultVal: 0,
			flagsets:   []*pflag.FlagSet{buildCmd.PersistentFlags(), modelCmd.Flags()},
		},
		{
			name: "Model.Lambda",
			usage: `
              Model.Lambda specifies the values of the auxiliary model
              parameters.`,
			defaultVal: []string{},
			flagsets:   []*pflag.FlagSet{buildCmd.PersistentFlags(), modelCmd.Flags()},
		},
		{
			name: "Model.Gff",
			usage: `
              Model.Gff specifies the Gaunt factor of the free-free model.`,
			defaultVal: 1.0,
			flagsets:   []*pflag.FlagSet{buildCmd.PersistentFlags()},
		},
		{
			name: "Model.Z",
			usage: `
              Model.Z specifies the ion charge of the free-free model.`,
			defaultVal: 1.0,
			flagsets:   []*pflag.FlagSet{buildCmd.PersistentFlags()},
		},
		{
			name: "Model.AvgMass",
			usage: `
              Model.AvgMass specifies the mass per free electron of the
              Thomson scattering model, in g. Values <= 0 select the proton
              mass.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{buildCmd.PersistentFlags()},
		},
		{
			name: "Table.LRhoMin",
			usage: `
              Table.LRhoMin is log10 of the lowest tabulated density, in g/cm^3.`,
			defaultVal: -10.0,
			flagsets:   []*pflag.FlagSet{buildCmd.PersistentFlags()},
		},
		{
			name: "Table.LRhoMax",
			usage: `
              Table.LRhoMax is log10 of the highest tabulated density, in g/cm^3.`,
			defaultVal: 15.0,
			flagsets:   []*pflag.FlagSet{buildCmd.PersistentFlags()},
		},
		{
			name: "Table.NRho",
			usage: `
              Table.NRho is the number of tabulated densities.`,
			defaultVal: 26,
			flagsets:   []*pflag.FlagSet{buildCmd.PersistentFlags()},
		},
		{
			name: "Table.LTMin",
			usage: `
              Table.LTMin is log10 of the lowest tabulated temperature, in K.`,
			defaultVal: 3.0,
			flagsets:   []*pflag.FlagSet{buildCmd.PersistentFlags()},
		},
		{
			name: "Table.LTMax",
			usage: `
              Table.LTMax is log10 of the highest tabulated temperature, in K.`,
			defaultVal: 12.0,
			flagsets:   []*pflag.FlagSet{buildCmd.PersistentFlags()},
		},
		{
			name: "Table.NT",
			usage: `
              Table.NT is the number of tabulated temperatures.`,
			defaultVal: 19,
			flagsets:   []*pflag.FlagSet{buildCmd.PersistentFlags()},
		},
		{
			name: "Table.YeMin",
			usage: `
              Table.YeMin is the lowest tabulated electron fraction.`,
			defaultVal: 0.05,
			flagsets:   []*pflag.FlagSet{buildNeutrinosCmd.Flags()},
		},
		{
			name: "Table.YeMax",
			usage: `
              Table.YeMax is the highest tabulated electron fraction.`,
			defaultVal: 0.55,
			flagsets:   []*pflag.FlagSet{buildNeutrinosCmd.Flags()},
		},
		{
			name: "Table.NYe",
			usage: `
              Table.NYe is the number of tabulated electron fractions.`,
			defaultVal: 11,
			flagsets:   []*pflag.FlagSet{buildNeutrinosCmd.Flags()},
		},
		{
			name: "Frequency.LNuMin",
			usage: `
              Frequency.LNuMin is log10 of the lowest frequency, in Hz, of
              the photon integration grid. It is only used when
              Frequency.NNu is not 0.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{buildPhotonsCmd.Flags(), buildPhotonsSCmd.Flags()},
		},
		{
			name: "Frequency.LNuMax",
			usage: `
              Frequency.LNuMax is log10 of the highest frequency, in Hz, of
              the photon integration grid. It is only used when
              Frequency.NNu is not 0.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{buildPhotonsCmd.Flags(), buildPhotonsSCmd.Flags()},
		},
		{
			name: "Frequency.NNu",
			usage: `
              Frequency.NNu is the number of frequencies in the photon
              integration grid. If it is 0, the grid is chosen from the
              table temperature range.`,
			defaultVal: 0,
			flagsets:   []*pflag.FlagSet{buildPhotonsCmd.Flags(), buildPhotonsSCmd.Flags()},
		},
		{
			name: "ScaleFree",
			usage: `
              ScaleFree specifies that photon scattering tables are built
              and read with all physical constants set to one.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{buildPhotonsSCmd.Flags(), queryPhotonsSCmd.Flags()},
		},
		{
			name: "UnitsFile",
			usage: `
              UnitsFile specifies a TOML file giving the code unit system
              in SI units (fields TimeSeconds, MassKilograms, LengthMeters,
              and TemperatureKelvin). If it is set, queries take and return
              values in code units.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{queryPhotonsSCmd.Flags(), modelCmd.Flags()},
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile specifies the path of the table file to create.`,
			shorthand:  "o",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{buildCmd.PersistentFlags()},
		},
		{
			name: "InputFile",
			usage: `
              InputFile specifies the path of the table file to read.`,
			shorthand:  "i",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{queryNeutrinosCmd.Flags(), queryPhotonsCmd.Flags(), queryPhotonsSCmd.Flags()},
		},
		{
			name: "Rho",
			usage: `
              Rho specifies the density at which to evaluate opacities.`,
			defaultVal: 1.0,
			flagsets:   []*pflag.FlagSet{queryCmd.PersistentFlags()},
		},
		{
			name: "Temperature",
			usage: `
              Temperature specifies the temperature at which to evaluate
              opacities.`,
			defaultVal: 1e4,
			flagsets:   []*pflag.FlagSet{queryCmd.PersistentFlags()},
		},
		{
			name: "Ye",
			usage: `
              Ye specifies the electron fraction at which to evaluate
              neutrino opacities.`,
			defaultVal: 0.5,
			flagsets:   []*pflag.FlagSet{queryNeutrinosCmd.Flags(), modelCmd.Flags()},
		},
		{
			name: "Species",
			usage: `
              Species specifies the neutrino species: nu_electron,
              nu_electron_anti, or nu_heavy.`,
			defaultVal: "nu_electron",
			flagsets:   []*pflag.FlagSet{queryNeutrinosCmd.Flags(), modelCmd.Flags()},
		},
		{
			name: "Nu",
			usage: `
              Nu specifies the frequency at which to evaluate a neutrino
              opacity model.`,
			defaultVal: 1e21,
			flagsets:   []*pflag.FlagSet{modelCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("MEANOPAC")
	Cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	Cfg.AutomaticEnv()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case []string:
				if option.shorthand == "" {
					set.StringSlice(option.name, option.defaultVal.([]string), option.usage)
				} else {
					set.StringSliceP(option.name, option.shorthand, option.defaultVal.([]string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(buildCmd)
	buildCmd.AddCommand(buildNeutrinosCmd)
	buildCmd.AddCommand(buildPhotonsCmd)
	buildCmd.AddCommand(buildPhotonsSCmd)
	Root.AddCommand(queryCmd)
	queryCmd.AddCommand(queryNeutrinosCmd)
	queryCmd.AddCommand(queryPhotonsCmd)
	queryCmd.AddCommand(queryPhotonsSCmd)
	queryCmd.AddCommand(modelCmd)
}

// setConfig finds and reads in the configuration file, if there is one,
// and sets up logging.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("meanopac: problem reading configuration file: %v", err)
		}
	}
	return setLogLevel(Cfg)
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "meanopac",
	Short: "Planck and Rosseland mean opacity tables.",
	Long: `MeanOpac builds and queries tables of Planck and Rosseland mean opacities
for photons and neutrinos. Use the subcommands specified below to access the
functionality.

Refer to the subcommand documentation for configuration options and default settings.
Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'MEANOPAC_var' where 'var' is the
name of the variable to be set, with '.' replaced by '_'.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of MeanOpac.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("MeanOpac v%s (table format v%s)\n", meanopac.Version, meanopac.DataVersion)
	},
	DisableAutoGenTag: true,
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build mean opacity tables.",
	Long: `build integrates an opacity model over frequency on a grid of densities
and temperatures and saves the resulting Planck and Rosseland mean opacity
tables to OutputFile. Use the subcommands specified below to choose the kind
of radiation.`,
	DisableAutoGenTag: true,
}

var buildNeutrinosCmd = &cobra.Command{
	Use:   "neutrinos",
	Short: "Build neutrino mean absorption opacity tables.",
	Long: `neutrinos builds tables of the mean absorption opacity of each neutrino
species as a function of density, temperature, and electron fraction.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		outputFile, err := checkOutputFile(Cfg.GetString("OutputFile"))
		if err != nil {
			return err
		}
		opac, err := NeutrinoModel(Cfg)
		if err != nil {
			return err
		}
		defer opac.Finalize()
		l, err := lambda(Cfg, opac.NLambda())
		if err != nil {
			return err
		}
		mean, err := neutrinos.NewMeanOpacity(opac, NeutrinoBounds(Cfg), l)
		if err != nil {
			return err
		}
		defer mean.Finalize()
		return saved(cmd, outputFile, mean.Save(outputFile))
	},
	DisableAutoGenTag: true,
}

var buildPhotonsCmd = &cobra.Command{
	Use:   "photons",
	Short: "Build photon mean absorption opacity tables.",
	Long: `photons builds tables of the photon mean absorption opacity as a function
of density and temperature, in CGS units.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		outputFile, err := checkOutputFile(Cfg.GetString("OutputFile"))
		if err != nil {
			return err
		}
		opac, err := PhotonModel(Cfg)
		if err != nil {
			return err
		}
		l, err := lambda(Cfg, opac.NLambda())
		if err != nil {
			return err
		}
		mean, err := photons.NewMeanOpacity(opac, PhotonBounds(Cfg), l, frequencyOptions(Cfg)...)
		if err != nil {
			return err
		}
		defer mean.Finalize()
		return saved(cmd, outputFile, mean.Save(outputFile))
	},
	DisableAutoGenTag: true,
}

var buildPhotonsSCmd = &cobra.Command{
	Use:   "photons-s",
	Short: "Build photon mean scattering opacity tables.",
	Long: `photons-s builds tables of the photon mean scattering opacity as a
function of density and temperature, in CGS units or, if ScaleFree is set,
with all physical constants set to one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		outputFile, err := checkOutputFile(Cfg.GetString("OutputFile"))
		if err != nil {
			return err
		}
		opac, err := PhotonSModel(Cfg)
		if err != nil {
			return err
		}
		l, err := lambda(Cfg, opac.NLambda())
		if err != nil {
			return err
		}
		b, opts := PhotonBounds(Cfg), frequencyOptions(Cfg)
		if Cfg.GetBool("ScaleFree") {
			mean, err := photons.NewMeanSOpacityScaleFree(opac, b, l, opts...)
			if err != nil {
				return err
			}
			defer mean.Finalize()
			return saved(cmd, outputFile, mean.Save(outputFile))
		}
		mean, err := photons.NewMeanSOpacityCGS(opac, b, l, opts...)
		if err != nil {
			return err
		}
		defer mean.Finalize()
		return saved(cmd, outputFile, mean.Save(outputFile))
	},
	DisableAutoGenTag: true,
}

// saved reports the outcome of saving tables to path.
func saved(cmd *cobra.Command, path string, err error) error {
	if err != nil {
		return err
	}
	cmd.Printf("Saved mean opacity tables to %s\n", path)
	return nil
}

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Evaluate mean opacities.",
	Long: `query reads mean opacity tables from InputFile and prints the Planck and
Rosseland mean coefficients at density Rho and temperature Temperature. Use
the subcommands specified below to choose the kind of table.`,
	DisableAutoGenTag: true,
}

var queryNeutrinosCmd = &cobra.Command{
	Use:   "neutrinos",
	Short: "Evaluate neutrino mean absorption opacities.",
	Long: `neutrinos prints the mean absorption coefficients, in 1/cm, of neutrino
species Species at density Rho (g/cm^3), temperature Temperature (K), and
electron fraction Ye.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		inputFile, err := checkInputFile(Cfg.GetString("InputFile"))
		if err != nil {
			return err
		}
		typ, err := meanopac.ParseRadiationType(Cfg.GetString("Species"))
		if err != nil {
			return err
		}
		if !typ.IsNeutrino() {
			return fmt.Errorf("meanopacutil: Species %s is not a neutrino species", typ)
		}
		mean, err := neutrinos.LoadMeanOpacity(inputFile)
		if err != nil {
			return err
		}
		defer mean.Finalize()
		rho, temp, ye := Cfg.GetFloat64("Rho"), Cfg.GetFloat64("Temperature"), Cfg.GetFloat64("Ye")
		printMeans(cmd, "absorption", "1/cm",
			mean.PlanckMeanAbsorptionCoefficient(rho, temp, ye, typ),
			mean.RosselandMeanAbsorptionCoefficient(rho, temp, ye, typ))
		return nil
	},
	DisableAutoGenTag: true,
}

var queryPhotonsCmd = &cobra.Command{
	Use:   "photons",
	Short: "Evaluate photon mean absorption opacities.",
	Long: `photons prints the photon mean absorption coefficients, in 1/cm, at
density Rho (g/cm^3) and temperature Temperature (K).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		inputFile, err := checkInputFile(Cfg.GetString("InputFile"))
		if err != nil {
			return err
		}
		mean, err := photons.LoadMeanOpacity(inputFile)
		if err != nil {
			return err
		}
		defer mean.Finalize()
		rho, temp := Cfg.GetFloat64("Rho"), Cfg.GetFloat64("Temperature")
		printMeans(cmd, "absorption", "1/cm",
			mean.PlanckMeanAbsorptionCoefficient(rho, temp),
			mean.RosselandMeanAbsorptionCoefficient(rho, temp))
		return nil
	},
	DisableAutoGenTag: true,
}

var queryPhotonsSCmd = &cobra.Command{
	Use:   "photons-s",
	Short: "Evaluate photon mean scattering opacities.",
	Long: `photons-s prints the photon mean scattering coefficients at density Rho
and temperature Temperature. If UnitsFile is set, CGS tables are queried in
code units.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mean, err := loadMeanSVariant(Cfg)
		if err != nil {
			return err
		}
		defer mean.Finalize()
		meanopac.Log.WithField("nlambda", mean.NLambda()).Debug("loaded mean scattering tables")
		rho, temp := Cfg.GetFloat64("Rho"), Cfg.GetFloat64("Temperature")
		printMeans(cmd, "scattering", "1/length",
			mean.PlanckMeanTotalScatteringCoefficient(rho, temp),
			mean.RosselandMeanTotalScatteringCoefficient(rho, temp))
		return nil
	},
	DisableAutoGenTag: true,
}

// loadMeanSVariant reads the scattering tables described by cfg.
func loadMeanSVariant(cfg *viper.Viper) (photons.MeanSVariant, error) {
	inputFile, err := checkInputFile(cfg.GetString("InputFile"))
	if err != nil {
		return photons.MeanSVariant{}, err
	}
	units, nonCGS, err := unitSystem(cfg)
	if err != nil {
		return photons.MeanSVariant{}, err
	}
	if cfg.GetBool("ScaleFree") {
		if nonCGS {
			return photons.MeanSVariant{}, fmt.Errorf("meanopacutil: scale-free tables cannot be used with a UnitsFile")
		}
		mean, err := photons.LoadMeanSOpacityScaleFree(inputFile)
		if err != nil {
			return photons.MeanSVariant{}, err
		}
		return photons.NewMeanSVariant(mean), nil
	}
	mean, err := photons.LoadMeanSOpacityCGS(inputFile)
	if err != nil {
		return photons.MeanSVariant{}, err
	}
	if nonCGS {
		return photons.NewMeanSVariant(photons.NewMeanNonCGSUnitsS(mean, units)), nil
	}
	return photons.NewMeanSVariant(mean), nil
}

var modelCmd = &cobra.Command{
	Use:   "model",
	Short: "Evaluate a neutrino opacity model.",
	Long: `model prints the absorption coefficient and emissivities of the neutrino
opacity model described by the Model options, for species Species at density
Rho, temperature Temperature, electron fraction Ye, and frequency Nu. If
UnitsFile is set, gray and tophat models are evaluated in code units.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opac, err := NeutrinoModel(Cfg)
		if err != nil {
			return err
		}
		defer opac.Finalize()
		typ, err := meanopac.ParseRadiationType(Cfg.GetString("Species"))
		if err != nil {
			return err
		}
		if !typ.IsNeutrino() {
			return fmt.Errorf("meanopacutil: Species %s is not a neutrino species", typ)
		}
		l, err := lambda(Cfg, opac.NLambda())
		if err != nil {
			return err
		}
		rho, temp, ye, nu := Cfg.GetFloat64("Rho"), Cfg.GetFloat64("Temperature"), Cfg.GetFloat64("Ye"), Cfg.GetFloat64("Nu")
		if logrus.IsLevelEnabled(logrus.DebugLevel) {
			opac.PrintParams()
		}
		cmd.Printf("Absorption coefficient: %g\n", opac.AbsorptionCoefficient(rho, temp, ye, typ, nu, l))
		cmd.Printf("Emissivity per frequency: %g\n", opac.EmissivityPerNu(rho, temp, ye, typ, nu, l))
		cmd.Printf("Emissivity: %g\n", opac.Emissivity(rho, temp, ye, typ, l))
		cmd.Printf("Number emissivity: %g\n", opac.NumberEmissivity(rho, temp, ye, typ, l))
		return nil
	},
	DisableAutoGenTag: true,
}

// printMeans prints a pair of Planck and Rosseland mean coefficients.
func printMeans(cmd *cobra.Command, kind, units string, planck, rosseland float64) {
	cmd.Printf("Planck mean %s coefficient: %g %s\n", kind, planck, units)
	cmd.Printf("Rosseland mean %s coefficient: %g %s\n", kind, rosseland, units)
}
