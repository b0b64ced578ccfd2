package concur

import (
	"bytes"
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"

	"github.com/workbook-dev/workbook/labkit/lab"
)

// TestMain ensures no lab or helper leaks a goroutine.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestFanOutSquares(t *testing.T) {
	got := fanOutSquares([]int{3, 1, 4, 1, 5})
	want := []int{9, 1, 16, 1, 25}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: expected %d, got %d", i, want[i], got[i])
		}
	}
	if len(fanOutSquares(nil)) != 0 {
		t.Error("expected empty result for empty input")
	}
}

func TestSafeCounterExact(t *testing.T) {
	var c safeCounter
	hammer(20, 50, c.increment)
	if c.value() != 1000 {
		t.Errorf("expected 1000, got %d", c.value())
	}
}

func TestSloppyCounterNeverOvercounts(t *testing.T) {
	var c sloppyCounter
	hammer(20, 50, c.increment)
	if c.value() > 1000 {
		t.Errorf("count %d exceeds increments issued", c.value())
	}

	// Without contention every update lands.
	var solo sloppyCounter
	hammer(1, 100, solo.increment)
	if solo.value() != 100 {
		t.Errorf("expected 100 from a single worker, got %d", solo.value())
	}
}

func TestPipeline(t *testing.T) {
	var got []int
	for v := range square(generate(1, 2, 3)) {
		got = append(got, v)
	}
	want := []int{1, 4, 9}
	if len(got) != len(want) {
		t.Fatalf("expected %d values, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}

func TestTimedCallAnswers(t *testing.T) {
	v, ok := timedCall(21, time.Millisecond, 5*time.Second)
	if !ok {
		t.Fatal("expected an answer within budget")
	}
	if v != 42 {
		t.Errorf("expected 42, got %d", v)
	}
}

func TestTimedCallTimesOut(t *testing.T) {
	start := time.Now()
	_, ok := timedCall(21, 5*time.Second, 10*time.Millisecond)
	if ok {
		t.Fatal("expected a timeout")
	}
	// The worker is cancelled, not waited out.
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("timed-out call took %v, expected a prompt return", elapsed)
	}
}

func TestLeibnizStripesCoverSeries(t *testing.T) {
	const n = 10_000
	whole := leibnizStripe(0, 1, n)
	var striped float64
	for w := 0; w < 3; w++ {
		striped += leibnizStripe(w, 3, n)
	}
	if math.Abs(whole-striped) > 1e-9 {
		t.Errorf("striped sum %v differs from whole sum %v", striped, whole)
	}
}

func TestEstimatePi(t *testing.T) {
	pi, err := estimatePi(context.Background(), 1_000_000, 4)
	if err != nil {
		t.Fatalf("estimatePi() error: %v", err)
	}
	if math.Abs(pi-math.Pi) > 1e-5 {
		t.Errorf("estimate %v too far from pi", pi)
	}

	again, err := estimatePi(context.Background(), 1_000_000, 4)
	if err != nil {
		t.Fatalf("estimatePi() error: %v", err)
	}
	if pi != again {
		t.Errorf("expected deterministic estimate, got %v then %v", pi, again)
	}
}

func TestGroupCancelsOnFirstError(t *testing.T) {
	start := time.Now()
	g, gctx := errgroup.WithContext(context.Background())
	g.Go(func() error { return stage(gctx, "quick-fail", 5*time.Millisecond, true) })
	g.Go(func() error { return stage(gctx, "slow", 10*time.Second, false) })

	err := g.Wait()
	if err == nil {
		t.Fatal("expected the failing stage's error")
	}
	if !strings.Contains(err.Error(), "quick-fail") {
		t.Errorf("expected quick-fail error, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("group took %v, expected early cancellation", elapsed)
	}
}

func TestStageHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := stage(ctx, "any", time.Minute, false)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestLabsRun(t *testing.T) {
	for _, l := range Labs() {
		t.Run(l.Slug, func(t *testing.T) {
			var buf bytes.Buffer
			env := lab.NewEnv(&buf, t.TempDir())
			if err := l.Run(context.Background(), env); err != nil {
				t.Fatalf("%s: %v", l.Ref(), err)
			}
			if buf.Len() == 0 {
				t.Errorf("%s produced no output", l.Ref())
			}
		})
	}
}
