package concur

import (
	"context"
	"time"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// generate emits nums on a fresh channel and closes it when done.
func generate(nums ...int) <-chan int {
	out := make(chan int)
	go func() {
		defer close(out)
		for _, n := range nums {
			out <- n
		}
	}()
	return out
}

// square reads from in until it closes, squaring each value.
func square(in <-chan int) <-chan int {
	out := make(chan int)
	go func() {
		defer close(out)
		for n := range in {
			out <- n * n
		}
	}()
	return out
}

// timedCall asks a worker for n*2 but abandons the wait after budget. The
// worker is told to stop and joined before return, so no goroutine outlives
// the call.
func timedCall(n int, work, budget time.Duration) (int, bool) {
	cancel := make(chan struct{})
	done := make(chan struct{})
	res := make(chan int, 1)
	go func() {
		defer close(done)
		select {
		case <-time.After(work):
			res <- n * 2
		case <-cancel:
		}
	}()

	var v int
	var ok bool
	select {
	case v = <-res:
		ok = true
	case <-time.After(budget):
	}
	close(cancel)
	<-done
	return v, ok
}

func runChannels(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	p.Section("Pipeline")
	var total int
	var squares []int
	for v := range square(generate(1, 2, 3, 4, 5)) {
		squares = append(squares, v)
		total += v
	}
	p.KV("stages", "generate -> square -> collect")
	p.KV("squares", "%v", squares)
	p.KV("sum", "%d", total)

	p.Section("Buffering")
	buf := make(chan string, 2)
	p.KV("capacity", "%d", cap(buf))
	buf <- "first"
	buf <- "second"
	// A third send would block: the buffer is full and nobody receives.
	p.KV("queued without a receiver", "%d", len(buf))
	p.KV("received", "%s, %s", <-buf, <-buf)

	p.Section("Select with a deadline")
	if v, ok := timedCall(21, 10*time.Millisecond, 500*time.Millisecond); ok {
		p.KV("fast worker (10ms, 500ms budget)", "answered %d", v)
	} else {
		p.KV("fast worker (10ms, 500ms budget)", "timed out")
	}
	if v, ok := timedCall(21, 300*time.Millisecond, 40*time.Millisecond); ok {
		p.KV("slow worker (300ms, 40ms budget)", "answered %d", v)
	} else {
		p.KV("slow worker (300ms, 40ms budget)", "timed out")
	}

	return nil
}
