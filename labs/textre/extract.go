package textre

import (
	"context"
	"regexp"
	"strconv"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

var (
	numberRe   = regexp.MustCompile(`-?\d+`)
	logLineRe  = regexp.MustCompile(`^(?P<level>[A-Z]+) +(?P<msg>.*)$`)
	digitRunRe = regexp.MustCompile(`\d`)
	commaRe    = regexp.MustCompile(`\s*,\s*`)
)

// extractNumbers returns every integer embedded in s, in order.
func extractNumbers(s string) []int {
	var nums []int
	for _, m := range numberRe.FindAllString(s, -1) {
		n, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		nums = append(nums, n)
	}
	return nums
}

// parseLogLine splits "LEVEL message" using named groups.
func parseLogLine(line string) (level, msg string, ok bool) {
	m := logLineRe.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return m[logLineRe.SubexpIndex("level")], m[logLineRe.SubexpIndex("msg")], true
}

// maskDigits replaces every digit in s with an asterisk.
func maskDigits(s string) string {
	return digitRunRe.ReplaceAllString(s, "*")
}

// splitList splits a comma-separated list, swallowing the spaces around
// each comma.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return commaRe.Split(s, -1)
}

func runExtract(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	p.Section("Find every match")
	sensor := "temp 21 then -3 overnight, back to 14 by noon"
	p.KV("text", "%s", sensor)
	p.KV("numbers", "%v", extractNumbers(sensor))

	p.Section("Named submatches")
	for _, line := range []string{
		"ERROR disk two is on fire",
		"INFO backup finished",
		"not a log line",
	} {
		level, msg, ok := parseLogLine(line)
		if ok {
			p.KV(level, "%s", msg)
		} else {
			p.KV("unparsed", "%s", line)
		}
	}

	p.Section("Replace")
	card := "card 4111 1111 1111 1111 charged"
	p.KV("before", "%s", card)
	p.KV("after", "%s", maskDigits(card))

	p.Section("Split")
	list := "apples, pears ,  plums,cherries"
	p.KV("input", "%q", list)
	p.KV("fields", "%q", splitList(list))

	return nil
}
