package debugging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workbook-dev/workbook/labkit/lab"
)

func TestCalculator(t *testing.T) {
	var calc calculator

	assert.Equal(t, 5.0, calc.Add(2, 3))
	assert.Equal(t, 0.0, calc.Add(-1, 1))

	q, err := calc.Divide(5, 2)
	require.NoError(t, err)
	assert.Equal(t, 2.5, q)

	_, err = calc.Divide(5, 0)
	assert.ErrorIs(t, err, errDivideByZero)

	tests := []struct {
		n    int
		want int
	}{
		{0, 1},
		{1, 1},
		{5, 120},
		{10, 3628800},
	}
	for _, tt := range tests {
		got, err := calc.Factorial(tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "factorial(%d)", tt.n)
	}
	_, err = calc.Factorial(-1)
	assert.Error(t, err)
}

func TestProbeCountsFailures(t *testing.T) {
	var calc calculator
	rec := &probe{}

	assert.True(t, assert.Equal(rec, 5.0, calc.Add(2, 3)))
	assert.Equal(t, 0, rec.failed)

	assert.False(t, assert.Equal(rec, 6.0, calc.Add(2, 3)))
	assert.Equal(t, 1, rec.failed)
}

func TestFibonacci(t *testing.T) {
	tests := []struct {
		n     int
		want  int
		calls int
	}{
		{0, 0, 1},
		{1, 1, 1},
		{10, 55, 177},
		{20, 6765, 21891},
	}
	for _, tt := range tests {
		v, calls := fibRecursive(tt.n)
		assert.Equal(t, tt.want, v, "fibRecursive(%d)", tt.n)
		assert.Equal(t, tt.calls, calls, "calls for n=%d", tt.n)
		assert.Equal(t, tt.want, fibIterative(tt.n), "fibIterative(%d)", tt.n)
	}
}

func BenchmarkFibRecursive(b *testing.B) {
	for i := 0; i < b.N; i++ {
		fibRecursive(20)
	}
}

func BenchmarkFibIterative(b *testing.B) {
	for i := 0; i < b.N; i++ {
		fibIterative(20)
	}
}

func TestEnrollmentDiff(t *testing.T) {
	want := sampleEnrollment()
	got := sampleEnrollment()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("fresh copies differ (-want +got):\n%s", diff)
	}

	got.Scores["algos"] = 93
	diff := cmp.Diff(want, got)
	require.NotEmpty(t, diff)
	assert.Contains(t, diff, "93")
}

func TestSafeIndex(t *testing.T) {
	xs := []int{10, 20, 30}

	v, err := safeIndex(xs, 1)
	require.NoError(t, err)
	assert.Equal(t, 20, v)

	_, err = safeIndex(xs, 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "index out of range")
}

func TestSafeDivide(t *testing.T) {
	q, err := safeDivide(10, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, q)

	_, err = safeDivide(1, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "integer divide by zero")
}

func TestUnwindOrder(t *testing.T) {
	var buf bytes.Buffer
	err := unwindDemo(&buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "depth 3")

	out := buf.String()
	last := strings.Index(out, "runs last")
	first := strings.Index(out, "runs first")
	require.True(t, last >= 0 && first >= 0, "both deferred lines should print, got %q", out)
	assert.Less(t, first, last, "defers must run in reverse order")
}

func TestLabLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	log := newLabLogger(&buf, slog.LevelInfo)

	log.Debug("hidden")
	log.Info("shown", "n", 1)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.NotContains(t, out, `"time"`, "timestamps should be stripped")
}

func TestTraced(t *testing.T) {
	var buf bytes.Buffer
	log := newLabLogger(&buf, slog.LevelDebug)
	div := traced(log, "divide", calculator{}.Divide)

	q, err := div(10, 4)
	require.NoError(t, err)
	assert.Equal(t, 2.5, q)
	assert.Contains(t, buf.String(), `"fn":"divide"`)
	assert.Contains(t, buf.String(), `"result":2.5`)

	buf.Reset()
	_, err = div(1, 0)
	assert.ErrorIs(t, err, errDivideByZero)
	assert.Contains(t, buf.String(), "call failed")
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
