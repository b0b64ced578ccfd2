package concur

import (
	"context"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// leibnizStripe sums the terms k, k+stride, k+2*stride, ... below n of the
// series pi = 4/1 - 4/3 + 4/5 - ...
func leibnizStripe(start, stride, n int) float64 {
	var sum float64
	for k := start; k < n; k += stride {
		term := 4.0 / float64(2*k+1)
		if k%2 == 1 {
			term = -term
		}
		sum += term
	}
	return sum
}

// estimatePi splits the first n series terms across workers goroutines.
// Worker w owns every workers-th term starting at w, so the stripes are
// disjoint and the merge order is fixed.
func estimatePi(ctx context.Context, n, workers int) (float64, error) {
	parts := make([]float64, workers)
	g, _ := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			parts[w] = leibnizStripe(w, workers, n)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	var pi float64
	for _, part := range parts {
		pi += part
	}
	return pi, nil
}

// stage simulates one step of a build: it works for d, then fails if told to.
func stage(ctx context.Context, name string, d time.Duration, fail bool) error {
	select {
	case <-time.After(d):
		if fail {
			return fmt.Errorf("stage %s: found a problem", name)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func runErrgroup(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	p.Section("Parallel pi")
	const terms, workers = 2_000_000, 4
	pi, err := estimatePi(ctx, terms, workers)
	if err != nil {
		return err
	}
	p.KV("series terms", "%d", terms)
	p.KV("workers", "%d", workers)
	p.KV("estimate", "%.5f", pi)
	p.KV("math.Pi", "%.5f", math.Pi)
	p.KV("off by", "%.1e", math.Abs(pi-math.Pi))

	p.Section("First error cancels the rest")
	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return stage(gctx, "fetch", 10*time.Millisecond, false) })
	g.Go(func() error { return stage(gctx, "vet", 25*time.Millisecond, true) })
	g.Go(func() error { return stage(gctx, "compile", 2*time.Second, false) })
	err = g.Wait()
	elapsed := time.Since(start)
	p.KV("first failure", "%v", err)
	p.KV("slow stage cut short", "%t", elapsed < time.Second)

	return nil
}
