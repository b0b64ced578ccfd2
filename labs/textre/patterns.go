package textre

import (
	"context"
	"regexp"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// demoPattern pairs a pattern with inputs to try it against.
type demoPattern struct {
	Note    string
	Pattern string
	Inputs  []string
}

func runPatterns(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	demos := []demoPattern{
		{
			Note:    "literal text matches anywhere in the string",
			Pattern: `cat`,
			Inputs:  []string{"cat", "concatenate", "dog"},
		},
		{
			Note:    "a class matches one character from a set",
			Pattern: `gr[ae]y`,
			Inputs:  []string{"gray", "grey", "groy"},
		},
		{
			Note:    "quantifiers repeat what precedes them",
			Pattern: `go+al`,
			Inputs:  []string{"goal", "goooal", "gal"},
		},
		{
			Note:    "anchors pin the match to the ends",
			Pattern: `^\d+$`,
			Inputs:  []string{"12345", "12a45", " 123"},
		},
		{
			Note:    "groups bundle alternatives",
			Pattern: `^(on|off)$`,
			Inputs:  []string{"on", "off", "online"},
		},
		{
			Note:    "\\b marks a word boundary",
			Pattern: `\bgo\b`,
			Inputs:  []string{"let's go now", "golang", "go"},
		},
	}

	for _, d := range demos {
		p.Section(d.Note)
		p.KV("pattern", "%s", d.Pattern)
		re := regexp.MustCompile(d.Pattern)
		for _, in := range d.Inputs {
			p.KV("  "+in, "%t", re.MatchString(in))
		}
	}

	return nil
}
