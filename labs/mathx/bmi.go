package mathx

import (
	"context"
	"fmt"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

const (
	kgPerPound    = 0.45359237
	metersPerInch = 0.0254
)

// bmi computes the body mass index from weight in kilograms and height in
// meters.
func bmi(weightKg, heightM float64) float64 {
	return weightKg / (heightM * heightM)
}

// bmiCategory classifies a BMI value using the WHO adult ranges.
func bmiCategory(v float64) string {
	switch {
	case v < 18.5:
		return "underweight"
	case v < 25:
		return "normal"
	case v < 30:
		return "overweight"
	default:
		return "obese"
	}
}

func runBMI(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	p.Section("BMI for a range of profiles")
	profiles := []struct {
		name     string
		weightKg float64
		heightM  float64
	}{
		{"amara", 54.0, 1.62},
		{"bo", 82.5, 1.78},
		{"chen", 96.0, 1.70},
		{"dika", 48.0, 1.75},
	}

	rows := make([][]string, 0, len(profiles))
	for _, pr := range profiles {
		v := bmi(pr.weightKg, pr.heightM)
		rows = append(rows, []string{
			pr.name,
			fmt.Sprintf("%.1f", pr.weightKg),
			fmt.Sprintf("%.2f", pr.heightM),
			fmt.Sprintf("%.1f", v),
			bmiCategory(v),
		})
	}
	p.Table([]string{"NAME", "KG", "M", "BMI", "CATEGORY"}, rows)

	p.Section("Imperial inputs convert first")
	lb, inches := 150.0, 65.0
	kg := lb * kgPerPound
	m := inches * metersPerInch
	v := bmi(kg, m)
	p.KV("150 lb, 65 in", "%.1f kg, %.2f m", kg, m)
	p.KV("BMI", "%.1f (%s)", v, bmiCategory(v))

	p.Section("Category boundaries")
	for _, edge := range []float64{18.4, 18.5, 24.9, 25.0, 29.9, 30.0} {
		p.KV(fmt.Sprintf("BMI %.1f", edge), "%s", bmiCategory(edge))
	}

	return nil
}
