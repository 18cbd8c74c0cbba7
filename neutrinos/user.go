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
	"math"

	"github.com/Knetic/govaluate"
	"github.com/kr/pretty"
	"github.com/spatialmodel/meanopac"
)

// UserOpacity is an opacity model whose absorption coefficient, in 1/cm,
// is given by an arithmetic expression. The expression may use the
// variables rho, T, Ye, type (the RadiationType as a number), nu, and
// lambda0 through lambdaN-1 for the N auxiliary parameters, and the
// functions exp, log, log10, pow, sqrt, and abs. Numeric literals cannot
// use exponent notation; use pow(10, n) instead. For example:
//
//	rho * 0.2 * pow(nu / pow(10, 21), 2) * (1 + lambda0)
type UserOpacity struct {
	expression string
	expr       *govaluate.EvaluableExpression
	lambdaVars []string
}

// userFunctions are the functions available to UserOpacity expressions.
var userFunctions = map[string]govaluate.ExpressionFunction{
	"exp":   unary("exp", math.Exp),
	"log":   unary("log", math.Log),
	"log10": unary("log10", math.Log10),
	"sqrt":  unary("sqrt", math.Sqrt),
	"abs":   unary("abs", math.Abs),
	"pow": func(args ...interface{}) (interface{}, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("got %d arguments for function 'pow', but needs 2", len(args))
		}
		x, ok1 := args[0].(float64)
		y, ok2 := args[1].(float64)
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("function 'pow' needs numeric arguments")
		}
		return math.Pow(x, y), nil
	},
}

func unary(name string, f func(float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("got %d arguments for function '%s', but needs 1", len(args), name)
		}
		x, ok := args[0].(float64)
		if !ok {
			return nil, fmt.Errorf("function '%s' needs a numeric argument", name)
		}
		return f(x), nil
	}
}

// NewUserOpacity returns an opacity model that evaluates expression,
// which may refer to nlambda auxiliary parameters.
func NewUserOpacity(expression string, nlambda int) (UserOpacity, error) {
	if nlambda < 0 {
		return UserOpacity{}, meanopac.Fail(meanopac.ContractError,
			"neutrinos.UserOpacity: negative auxiliary parameter count %d", nlambda)
	}
	expr, err := govaluate.NewEvaluableExpressionWithFunctions(expression, userFunctions)
	if err != nil {
		return UserOpacity{}, meanopac.Fail(meanopac.ContractError, "neutrinos.UserOpacity: %w", err)
	}
	u := UserOpacity{
		expression: expression,
		expr:       expr,
		lambdaVars: make([]string, nlambda),
	}
	known := map[string]bool{"rho": true, "T": true, "Ye": true, "type": true, "nu": true}
	for i := range u.lambdaVars {
		u.lambdaVars[i] = fmt.Sprintf("lambda%d", i)
		known[u.lambdaVars[i]] = true
	}
	for _, v := range expr.Vars() {
		if !known[v] {
			return UserOpacity{}, meanopac.Fail(meanopac.ContractError,
				"neutrinos.UserOpacity: unknown variable %q in expression %q", v, expression)
		}
	}
	return u, nil
}

// Expression returns the absorption coefficient expression.
func (u UserOpacity) Expression() string { return u.expression }

// AbsorptionCoefficient evaluates the expression. It returns NaN if the
// expression cannot be evaluated. lambda must hold at least NLambda values.
func (u UserOpacity) AbsorptionCoefficient(rho, temp, ye float64, typ meanopac.RadiationType, nu float64, lambda []float64) float64 {
	if u.expr == nil {
		return math.NaN()
	}
	if len(lambda) < len(u.lambdaVars) {
		panic(fmt.Errorf("neutrinos.UserOpacity: %d auxiliary parameters, need %d", len(lambda), len(u.lambdaVars)))
	}
	params := map[string]interface{}{
		"rho":  rho,
		"T":    temp,
		"Ye":   ye,
		"type": float64(typ),
		"nu":   nu,
	}
	for i, name := range u.lambdaVars {
		params[name] = lambda[i]
	}
	v, err := u.expr.Evaluate(params)
	if err != nil {
		return math.NaN()
	}
	f, ok := v.(float64)
	if !ok {
		return math.NaN()
	}
	return f
}

// AbsorptionCoefficientBins sets coeffs[i] to the absorption coefficient
// at frequency nuBins[i].
func (u UserOpacity) AbsorptionCoefficientBins(rho, temp, ye float64, typ meanopac.RadiationType, nuBins, coeffs, lambda []float64) {
	fillBins(nuBins, coeffs, func(nu float64) float64 {
		return u.AbsorptionCoefficient(rho, temp, ye, typ, nu, lambda)
	})
}

// EmissivityPerNuOmega returns the thermal emissivity in
// erg/cm^3/s/Hz/sr.
func (u UserOpacity) EmissivityPerNuOmega(rho, temp, ye float64, typ meanopac.RadiationType, nu float64, lambda []float64) float64 {
	return u.AbsorptionCoefficient(rho, temp, ye, typ, nu, lambda) * ThermalDistributionOfTNu(temp, nu)
}

// EmissivityPerNuOmegaBins is the frequency-binned form of
// EmissivityPerNuOmega.
func (u UserOpacity) EmissivityPerNuOmegaBins(rho, temp, ye float64, typ meanopac.RadiationType, nuBins, coeffs, lambda []float64) {
	fillBins(nuBins, coeffs, func(nu float64) float64 {
		return u.EmissivityPerNuOmega(rho, temp, ye, typ, nu, lambda)
	})
}

// EmissivityPerNu returns the emissivity integrated over solid angle, in
// erg/cm^3/s/Hz.
func (u UserOpacity) EmissivityPerNu(rho, temp, ye float64, typ meanopac.RadiationType, nu float64, lambda []float64) float64 {
	return 4 * math.Pi * u.EmissivityPerNuOmega(rho, temp, ye, typ, nu, lambda)
}

// EmissivityPerNuBins is the frequency-binned form of EmissivityPerNu.
func (u UserOpacity) EmissivityPerNuBins(rho, temp, ye float64, typ meanopac.RadiationType, nuBins, coeffs, lambda []float64) {
	fillBins(nuBins, coeffs, func(nu float64) float64 {
		return u.EmissivityPerNu(rho, temp, ye, typ, nu, lambda)
	})
}

// Emissivity returns the emissivity integrated over solid angle and
// frequency, in erg/cm^3/s, integrating numerically over the thermal
// spectrum.
func (u UserOpacity) Emissivity(rho, temp, ye float64, typ meanopac.RadiationType, lambda []float64) float64 {
	nuMin, nuMax := thermalBand(temp)
	return integrateNu(func(nu float64) float64 {
		return u.EmissivityPerNu(rho, temp, ye, typ, nu, lambda)
	}, nuMin, nuMax)
}

// NumberEmissivity returns the number of neutrinos emitted per unit volume
// and time, in 1/cm^3/s.
func (u UserOpacity) NumberEmissivity(rho, temp, ye float64, typ meanopac.RadiationType, lambda []float64) float64 {
	nuMin, nuMax := thermalBand(temp)
	return integrateNu(func(nu float64) float64 {
		return u.EmissivityPerNu(rho, temp, ye, typ, nu, lambda) / (pc.H * nu)
	}, nuMin, nuMax)
}

// ThermalDistributionOfTNu returns the Fermi-Dirac specific intensity.
func (u UserOpacity) ThermalDistributionOfTNu(temp float64, typ meanopac.RadiationType, nu float64) float64 {
	return ThermalDistributionOfTNu(temp, nu)
}

// DThermalDistributionOfTNuDT returns the temperature derivative of the
// Fermi-Dirac specific intensity.
func (u UserOpacity) DThermalDistributionOfTNuDT(temp float64, typ meanopac.RadiationType, nu float64) float64 {
	return DThermalDistributionOfTNuDT(temp, nu)
}

// NLambda returns the number of auxiliary parameters the expression uses.
func (u UserOpacity) NLambda() int { return len(u.lambdaVars) }

// PrintParams prints the model parameters to standard output.
func (u UserOpacity) PrintParams() {
	fmt.Printf("User-defined neutrino opacity: %# v\n", pretty.Formatter(struct {
		Expression string
		NLambda    int
	}{u.expression, u.NLambda()}))
}

// Finalize is a no-op; UserOpacity holds no storage.
func (u UserOpacity) Finalize() {}

// GetOnDevice returns a copy of u. The parsed expression is immutable and
// is shared with u.
func (u UserOpacity) GetOnDevice() UserOpacity { return u }
