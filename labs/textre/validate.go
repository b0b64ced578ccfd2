package textre

import (
	"context"
	"regexp"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// Validation patterns anchor both ends so a stray prefix or suffix fails.
var (
	emailRe    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	usernameRe = regexp.MustCompile(`^[a-z][a-z0-9_]{2,15}$`)
	hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	isoDateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// validEmail reports whether s looks like a mail address. The pattern checks
// shape only; a deliverable address needs more than a regexp.
func validEmail(s string) bool { return emailRe.MatchString(s) }

// validUsername accepts 3-16 lowercase names starting with a letter.
func validUsername(s string) bool { return usernameRe.MatchString(s) }

// validHexColor accepts #RRGGBB.
func validHexColor(s string) bool { return hexColorRe.MatchString(s) }

// validISODate accepts the YYYY-MM-DD shape. It does not check the calendar;
// 2024-99-99 passes here and fails in time.Parse.
func validISODate(s string) bool { return isoDateRe.MatchString(s) }

func runValidate(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	p.Section("Email shape")
	for _, s := range []string{
		"ada@example.com",
		"grace.hopper+lists@navy.mil",
		"no-at-sign.example.com",
		"spaces in@example.com",
	} {
		p.KV(s, "%t", validEmail(s))
	}

	p.Section("Usernames")
	for _, s := range []string{"ada", "ada_lovelace", "x", "Ada", "4chan"} {
		p.KV(s, "%t", validUsername(s))
	}

	p.Section("Hex colors")
	for _, s := range []string{"#1a2b3c", "#FFFFFF", "#fff", "1a2b3c"} {
		p.KV(s, "%t", validHexColor(s))
	}

	p.Section("Dates, shape only")
	for _, s := range []string{"2024-02-29", "2024-99-99", "24-02-29"} {
		p.KV(s, "%t", validISODate(s))
	}
	p.Println("  A passing shape still needs time.Parse for calendar truth.")

	return nil
}
