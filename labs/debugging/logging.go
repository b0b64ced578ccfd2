package debugging

import (
	"context"
	"io"
	"log/slog"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// dropTime removes the time attribute so two runs of the lesson print
// identical bytes.
func dropTime(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey && len(groups) == 0 {
		return slog.Attr{}
	}
	return a
}

// newLabLogger builds a JSON slog logger writing to w at the given
// level, timestamps stripped.
func newLabLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: dropTime,
	}))
}

// traced wraps a binary operation with enter and exit logging, the Go
// shape of a debugging decorator: log the arguments, log the result or
// the error, and hand the error on unchanged.
func traced(log *slog.Logger, name string, op func(a, b float64) (float64, error)) func(a, b float64) (float64, error) {
	return func(a, b float64) (float64, error) {
		log.Debug("call", "fn", name, "a", a, "b", b)
		out, err := op(a, b)
		if err != nil {
			log.Error("call failed", "fn", name, "err", err.Error())
			return out, err
		}
		log.Debug("return", "fn", name, "result", out)
		return out, err
	}
}

func runLogging(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	p.Section("Levels gate what you see")
	info := newLabLogger(env.Out, slog.LevelInfo)
	info.Debug("loading lesson data", "rows", 120)
	info.Info("lesson starting", "chapter", "debugging")
	info.Warn("scratch dir already exists")
	info.Error("this one always shows")
	p.Println("The Debug line above was swallowed: the handler is at Info.")

	p.Section("Turn Debug on and it appears")
	debug := newLabLogger(env.Out, slog.LevelDebug)
	debug.Debug("loading lesson data", "rows", 120)

	p.Section("Attributes, not string building")
	debug.Info("scores loaded",
		slog.Int("count", 3),
		slog.Group("range", slog.Int("min", 88), slog.Int("max", 93)),
	)
	perRun := debug.With("run_id", "run_001")
	perRun.Info("step done", "step", 1)
	perRun.Info("step done", "step", 2)

	p.Section("Text handler, same records")
	text := slog.New(slog.NewTextHandler(env.Out, &slog.HandlerOptions{
		ReplaceAttr: dropTime,
	}))
	text.Info("scores loaded", "count", 3)

	p.Section("Tracing a call")
	var calc calculator
	div := traced(debug, "divide", calc.Divide)
	if _, err := div(10, 4); err != nil {
		return err
	}
	_, err := div(1, 0)
	p.KV("error still reaches the caller", "%t", err != nil)

	return nil
}
