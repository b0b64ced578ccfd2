package mathx

import (
	"context"
	"fmt"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

const (
	feetPerMeter = 3.28084
	milesPerKm   = 0.621371
	poundsPerKg  = 2.2046226218
)

func metersToFeet(m float64) float64 { return m * feetPerMeter }
func feetToMeters(ft float64) float64 { return ft / feetPerMeter }

func kmToMiles(km float64) float64 { return km * milesPerKm }
func milesToKm(mi float64) float64 { return mi / milesPerKm }

func kgToPounds(kg float64) float64 { return kg * poundsPerKg }
func poundsToKg(lb float64) float64 { return lb / poundsPerKg }

func celsiusToFahrenheit(c float64) float64 { return c*9/5 + 32 }
func fahrenheitToCelsius(f float64) float64 { return (f - 32) * 5 / 9 }

func runUnits(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	p.Section("Length")
	p.KV("100 m in feet", "%.2f", metersToFeet(100))
	p.KV("marathon (42.195 km) in miles", "%.2f", kmToMiles(42.195))
	p.KV("1 mile in km", "%.4f", milesToKm(1))

	p.Section("Weight")
	p.KV("70 kg in pounds", "%.2f", kgToPounds(70))
	p.KV("1 lb in kg", "%.5f", poundsToKg(1))

	p.Section("Temperature")
	rows := [][]string{}
	for _, c := range []float64{-40, 0, 37, 100} {
		rows = append(rows, []string{
			fmt.Sprintf("%.0f", c),
			fmt.Sprintf("%.1f", celsiusToFahrenheit(c)),
		})
	}
	p.Table([]string{"CELSIUS", "FAHRENHEIT"}, rows)
	p.KV("-40 is the crossing point", "%.0f C = %.0f F",
		-40.0, celsiusToFahrenheit(-40))

	p.Section("Round trips stay put")
	p.KV("m -> ft -> m", "%.6f", feetToMeters(metersToFeet(12.5)))
	p.KV("C -> F -> C", "%.6f", fahrenheitToCelsius(celsiusToFahrenheit(21.5)))

	return nil
}
