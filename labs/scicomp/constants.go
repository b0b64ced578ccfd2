package scicomp

import (
	"context"
	"math"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// Fundamental constants, 2019 SI exact values where defined, CODATA 2018
// otherwise. All in base SI units.
const (
	speedOfLight     = 299_792_458.0    // m/s
	planck           = 6.62607015e-34   // J s
	boltzmann        = 1.380649e-23     // J/K
	avogadro         = 6.02214076e23    // 1/mol
	elementaryCharge = 1.602176634e-19  // C
	gravitational    = 6.67430e-11      // m^3/(kg s^2)
	standardGravity  = 9.80665          // m/s^2
)

// Derived constants.
const (
	reducedPlanck = planck / (2 * math.Pi)
	gasConstant   = boltzmann * avogadro
)

// Conversion factors, each the size of one source unit in base SI units.
// Multiply to convert into SI, divide to convert out.
const (
	minute = 60.0
	hour   = 3600.0
	day    = 86_400.0

	inch = 0.0254
	foot = 12 * inch
	yard = 3 * foot
	mile = 1760 * yard

	pound = 0.45359237
	ounce = pound / 16

	atmosphere = 101_325.0
	bar        = 1e5

	calorie      = 4.184
	electronVolt = elementaryCharge

	degree = math.Pi / 180
)

func celsiusToKelvin(c float64) float64     { return c + 273.15 }
func celsiusToFahrenheit(c float64) float64 { return c*9/5 + 32 }
func fahrenheitToCelsius(f float64) float64 { return (f - 32) * 5 / 9 }

// photonEnergy returns the energy in joules of a photon with the given
// wavelength in meters.
func photonEnergy(wavelength float64) float64 {
	return planck * speedOfLight / wavelength
}

func runConstants(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	p.Section("Fundamental constants")
	p.Table(
		[]string{"constant", "symbol", "value", "unit"},
		[][]string{
			{"speed of light", "c", "2.99792458e+08", "m/s"},
			{"Planck", "h", "6.62607015e-34", "J s"},
			{"Boltzmann", "k", "1.380649e-23", "J/K"},
			{"Avogadro", "N_A", "6.02214076e+23", "1/mol"},
			{"elementary charge", "e", "1.602176634e-19", "C"},
			{"gravitational", "G", "6.67430e-11", "m^3/(kg s^2)"},
			{"standard gravity", "g", "9.80665e+00", "m/s^2"},
		},
	)

	p.Section("Derived, not memorized")
	p.KV("hbar = h/(2 pi)", "%.9e J s", reducedPlanck)
	p.KV("R = k * N_A", "%.9f J/(mol K)", gasConstant)

	p.Section("Unit conversions")
	p.KV("marathon (26.219 mi)", "%.3f km", 26.219*mile/1000)
	p.KV("165 lb", "%.2f kg", 165*pound)
	p.KV("1 atm", "%.5f bar", atmosphere/bar)
	p.KV("1 day", "%.0f s", 1*day)
	p.KV("90 degrees", "%.6f rad", 90*degree)
	p.KV("250 kcal snack", "%.1f kJ", 250*1000*calorie/1000) // kcal -> cal -> J -> kJ

	p.Section("Temperature scales")
	p.KV("water boils", "100 C = %.1f F = %.2f K", celsiusToFahrenheit(100), celsiusToKelvin(100))
	p.KV("body temperature", "98.6 F = %.1f C", fahrenheitToCelsius(98.6))
	p.KV("absolute zero", "%.2f C", fahrenheitToCelsius(celsiusToFahrenheit(-273.15)))

	p.Section("A constant at work")
	green := 532e-9
	e := photonEnergy(green)
	p.KV("green laser photon", "%.4e J", e)
	p.KV("same, in eV", "%.2f eV", e/electronVolt)
	p.KV("photons per mJ pulse", "%.3e", 1e-3/e)

	return nil
}
