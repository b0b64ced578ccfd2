package scicomp

import (
	"context"
	"math"
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// moments summarizes a sample the way a describe() call would.
type moments struct {
	N            int
	Mean, Median float64
	StdDev       float64
	Skew, ExKurt float64
	Min, Max     float64
}

// describe computes the usual descriptive statistics of xs. The median is
// the empirical quantile, an actual data point rather than an interpolation.
func describe(xs []float64) moments {
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	return moments{
		N:      len(xs),
		Mean:   stat.Mean(xs, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		StdDev: stat.StdDev(xs, nil),
		Skew:   stat.Skew(xs, nil),
		ExKurt: stat.ExKurtosis(xs, nil),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
	}
}

// sample draws n values from dist.
func sample(dist distuv.Rander, n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = dist.Rand()
	}
	return xs
}

// tTestResult holds a t statistic, its degrees of freedom, and the
// two-sided p-value.
type tTestResult struct {
	T  float64
	DF float64
	P  float64
}

// tTestOneSample tests whether the mean of xs differs from mu0.
func tTestOneSample(xs []float64, mu0 float64) tTestResult {
	n := float64(len(xs))
	mean := stat.Mean(xs, nil)
	sd := stat.StdDev(xs, nil)
	t := (mean - mu0) / (sd / math.Sqrt(n))
	df := n - 1
	return tTestResult{T: t, DF: df, P: twoSidedP(t, df)}
}

// tTestWelch tests whether xs and ys share a mean, without assuming equal
// variances. Degrees of freedom follow Welch-Satterthwaite.
func tTestWelch(xs, ys []float64) tTestResult {
	nx, ny := float64(len(xs)), float64(len(ys))
	vx := stat.Variance(xs, nil) / nx
	vy := stat.Variance(ys, nil) / ny
	t := (stat.Mean(xs, nil) - stat.Mean(ys, nil)) / math.Sqrt(vx+vy)
	df := (vx + vy) * (vx + vy) / (vx*vx/(nx-1) + vy*vy/(ny-1))
	return tTestResult{T: t, DF: df, P: twoSidedP(t, df)}
}

func twoSidedP(t, df float64) float64 {
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return 2 * dist.CDF(-math.Abs(t))
}

func runStats(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	p.Section("Describe a sample")
	scores := []float64{
		52, 61, 64, 68, 71, 73, 74, 76, 78, 79,
		81, 82, 84, 85, 87, 88, 90, 93, 95, 98,
	}
	m := describe(scores)
	p.KV("n", "%d", m.N)
	p.KV("mean", "%.2f", m.Mean)
	p.KV("median", "%.0f", m.Median)
	p.KV("std dev", "%.2f", m.StdDev)
	p.KV("skewness", "%.3f", m.Skew)
	p.KV("excess kurtosis", "%.3f", m.ExKurt)
	p.KV("range", "%.0f to %.0f", m.Min, m.Max)

	p.Section("The normal distribution")
	norm := distuv.Normal{Mu: 50, Sigma: 10}
	p.KV("density peak at the mean", "%.5f", norm.Prob(50))
	p.KV("P(X <= 50)", "%.3f", norm.CDF(50))
	p.KV("P(X <= 70), two sigmas up", "%.5f", norm.CDF(70))
	p.KV("mass within one sigma", "%.4f", norm.CDF(60)-norm.CDF(40))
	p.KV("97.5th percentile", "%.3f", norm.Quantile(0.975))

	p.Section("Sampling from a distribution")
	seeded := distuv.Normal{Mu: 50, Sigma: 10, Src: rand.NewPCG(1, 7)}
	draws := sample(seeded, 1000)
	p.KV("draws", "%d", len(draws))
	p.KV("sample mean near 50", "%t", math.Abs(stat.Mean(draws, nil)-50) < 1)
	p.KV("sample std near 10", "%t", math.Abs(stat.StdDev(draws, nil)-10) < 1)
	gamma := distuv.Gamma{Alpha: 2, Beta: 0.1, Src: rand.NewPCG(5, 11)}
	gdraws := sample(gamma, 1000)
	p.KV("gamma mean (expect 20)", "near: %t", math.Abs(stat.Mean(gdraws, nil)-20) < 2)

	p.Section("One-sample t-test")
	iqs := []float64{108, 112, 96, 118, 104, 107, 113, 109, 116, 101, 111, 105}
	one := tTestOneSample(iqs, 100)
	p.KV("sample mean", "%.2f", stat.Mean(iqs, nil))
	p.KV("H0", "true mean is 100")
	p.KV("t statistic", "%.3f", one.T)
	p.KV("degrees of freedom", "%.0f", one.DF)
	p.KV("p-value", "%.4f", one.P)
	p.KV("reject at 0.05", "%t", one.P < 0.05)

	p.Section("Two-sample t-test, Welch")
	control := []float64{70, 74, 68, 71, 73, 69, 75, 72, 70, 74}
	treatment := []float64{78, 82, 77, 80, 84, 79, 81, 83, 76, 80}
	two := tTestWelch(control, treatment)
	p.KV("control mean", "%.1f", stat.Mean(control, nil))
	p.KV("treatment mean", "%.1f", stat.Mean(treatment, nil))
	p.KV("t statistic", "%.3f", two.T)
	p.KV("degrees of freedom", "%.2f", two.DF)
	p.KV("p-value", "%.2e", two.P)
	p.KV("reject at 0.05", "%t", two.P < 0.05)

	return nil
}
