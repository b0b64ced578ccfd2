package concur

import (
	"context"
	"sync"
	"time"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// fanOutSquares squares every element concurrently, one goroutine per
// element. Each goroutine writes only its own slot, so no locking is needed.
func fanOutSquares(nums []int) []int {
	out := make([]int, len(nums))
	var wg sync.WaitGroup
	for i, n := range nums {
		wg.Add(1)
		go func(i, n int) {
			defer wg.Done()
			out[i] = n * n
		}(i, n)
	}
	wg.Wait()
	return out
}

// raceWalls runs count sleeps of d first back to back, then all at once,
// and returns both wall-clock times.
func raceWalls(count int, d time.Duration) (sequential, concurrent time.Duration) {
	start := time.Now()
	for i := 0; i < count; i++ {
		time.Sleep(d)
	}
	sequential = time.Since(start)

	start = time.Now()
	var wg sync.WaitGroup
	for i := 0; i < count; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			time.Sleep(d)
		}()
	}
	wg.Wait()
	concurrent = time.Since(start)
	return sequential, concurrent
}

func runGoroutines(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	p.Section("Fan out, join, collect")
	nums := []int{3, 1, 4, 1, 5, 9, 2, 6}
	p.KV("input", "%v", nums)
	p.KV("squares", "%v", fanOutSquares(nums))
	p.KV("goroutines used", "%d", len(nums))

	p.Section("Why bother")
	// Six 30ms waits: about 180ms in a row, about 30ms all at once.
	seq, conc := raceWalls(6, 30*time.Millisecond)
	p.KV("tasks", "6 of 30ms each")
	p.KV("concurrent beat sequential", "%t", conc < seq)

	p.Section("The join matters")
	p.Println("  Without Wait() the function could return while goroutines")
	p.Println("  still run; their writes would land in a slice nobody reads.")

	return nil
}
