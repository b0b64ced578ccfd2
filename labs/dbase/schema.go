package dbase

import (
	"context"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

func runSchema(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	s, err := setupSchool(ctx, env, "schema.db")
	if err != nil {
		return err
	}
	defer s.Close()

	p.Section("Tables in the catalog")
	names, err := s.tables(ctx)
	if err != nil {
		return err
	}
	for _, name := range names {
		p.Printf("  %s\n", name)
	}

	p.Section("Row counts after seeding")
	for _, table := range []string{"students", "courses", "enrollments"} {
		n, err := s.countRows(ctx, table)
		if err != nil {
			return err
		}
		p.KV(table, "%d rows", n)
	}

	p.Section("Seeding is idempotent")
	if err := s.seed(ctx); err != nil {
		return err
	}
	n, err := s.countRows(ctx, "students")
	if err != nil {
		return err
	}
	p.KV("students after second seed", "%d rows", n)

	var version string
	if err := s.db.QueryRowContext(ctx, "SELECT sqlite_version()").Scan(&version); err != nil {
		return err
	}
	p.Blank()
	p.KV("engine", "SQLite %s", version)

	return nil
}
