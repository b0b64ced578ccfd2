package concur

import (
	"context"
	"runtime"
	"sync"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// sloppyCounter locks each read and each write, but not the read-modify-write
// as a whole. Two goroutines can read the same value and both write back
// value+1, losing one of the increments.
type sloppyCounter struct {
	mu sync.Mutex
	n  int
}

func (c *sloppyCounter) value() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}

func (c *sloppyCounter) increment() {
	c.mu.Lock()
	v := c.n
	c.mu.Unlock()
	// Yield between read and write to widen the overwrite window.
	runtime.Gosched()
	c.mu.Lock()
	c.n = v + 1
	c.mu.Unlock()
}

// safeCounter holds the lock across the entire increment.
type safeCounter struct {
	mu sync.Mutex
	n  int
}

func (c *safeCounter) value() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}

func (c *safeCounter) increment() {
	c.mu.Lock()
	c.n++
	c.mu.Unlock()
}

// hammer starts workers goroutines, each calling fn times times, and waits
// for all of them.
func hammer(workers, times int, fn func()) {
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < times; i++ {
				fn()
			}
		}()
	}
	wg.Wait()
}

func runMutex(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	const workers, times = 40, 25
	want := workers * times

	p.Section("Split lock loses updates")
	var sloppy sloppyCounter
	hammer(workers, times, sloppy.increment)
	p.KV("increments issued", "%d", want)
	p.KV("final count", "%d", sloppy.value())
	p.KV("updates lost", "%d", want-sloppy.value())

	p.Section("One lock around the whole update")
	var safe safeCounter
	hammer(workers, times, safe.increment)
	p.KV("increments issued", "%d", want)
	p.KV("final count", "%d", safe.value())
	p.KV("updates lost", "%d", want-safe.value())

	return nil
}
