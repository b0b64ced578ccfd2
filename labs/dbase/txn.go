package dbase

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// execer is the slice of database/sql shared by *sql.DB and *sql.Tx, so
// enroll can run standalone or inside a transaction.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// enroll adds one enrollment row through db or an open transaction.
func enroll(ctx context.Context, tx execer, studentID, courseID int64, grade string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO enrollments (student_id, course_id, grade) VALUES (?, ?, ?)`,
		studentID, courseID, grade)
	if err != nil {
		return fmt.Errorf("enrolling %d in %d: %w", studentID, courseID, err)
	}
	return nil
}

func runTransactions(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	s, err := setupSchool(ctx, env, "txn.db")
	if err != nil {
		return err
	}
	defer s.Close()

	p.Section("Rollback undoes everything")
	before, err := s.countRows(ctx, "students")
	if err != nil {
		return err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO students (name, age, grade) VALUES (?, ?, ?)`,
		"Phantom Student", 99, "F"); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Rollback(); err != nil {
		return err
	}
	after, err := s.countRows(ctx, "students")
	if err != nil {
		return err
	}
	p.KV("students before", "%d", before)
	p.KV("students after rollback", "%d", after)

	p.Section("Commit lands both or neither")
	tx, err = s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := enroll(ctx, tx, 2, 2, "B"); err != nil {
		tx.Rollback()
		return err
	}
	if err := enroll(ctx, tx, 2, 4, "B+"); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	n, err := s.countRows(ctx, "enrollments")
	if err != nil {
		return err
	}
	p.KV("enrollments after commit", "%d", n)

	p.Section("Constraints push back")
	err = enroll(ctx, s.db, 1, 999, "A")
	p.KV("unknown course rejected", "%t", err != nil)
	err = enroll(ctx, s.db, 1, 1, "A")
	p.KV("double enrollment rejected", "%t", err != nil)
	n, err = s.countRows(ctx, "enrollments")
	if err != nil {
		return err
	}
	p.KV("enrollments unchanged", "%d", n)

	return nil
}
