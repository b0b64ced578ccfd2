package basics

import (
	"context"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

func runValues(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	p.Section("Zero values")
	var (
		count   int
		ratio   float64
		label   string
		enabled bool
	)
	p.KV("var count int", "%d", count)
	p.KV("var ratio float64", "%g", ratio)
	p.KV("var label string", "%q", label)
	p.KV("var enabled bool", "%t", enabled)

	p.Section("Short declarations infer the type")
	age := 42
	pi := 3.14159
	name := "workbook"
	p.KV("age := 42", "%d is %T", age, age)
	p.KV("pi := 3.14159", "%.5f is %T", pi, pi)
	p.KV("name := \"workbook\"", "%s is %T", name, name)

	p.Section("Conversions are always explicit")
	total, parts := 7, 2
	p.KV("7 / 2", "%d (integer division truncates)", total/parts)
	p.KV("float64(7) / float64(2)", "%.1f", float64(total)/float64(parts))
	almostFour := 3.99
	p.KV("int(3.99)", "%d (conversion truncates too)", int(almostFour))

	p.Section("Strings are bytes, ranging yields runes")
	word := "héllo"
	p.KV("len(\"héllo\")", "%d bytes", len(word))
	p.KV("utf8.RuneCountInString", "%d runes", runeCount(word))
	for i, r := range word {
		p.Printf("  offset %d: %c (%U)\n", i, r, r)
	}

	return nil
}

// runeCount counts runes the way a range loop sees them.
func runeCount(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
