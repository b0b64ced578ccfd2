package dbase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

type student struct {
	ID    int64
	Name  string
	Age   int
	Grade string
}

// addStudent inserts a student and returns the generated id.
func (s *school) addStudent(ctx context.Context, name string, age int, grade string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO students (name, age, grade) VALUES (?, ?, ?)`,
		name, age, grade)
	if err != nil {
		return 0, fmt.Errorf("adding student %s: %w", name, err)
	}
	return res.LastInsertId()
}

// listStudents returns every student ordered by id.
func (s *school) listStudents(ctx context.Context) ([]student, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, age, grade FROM students ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing students: %w", err)
	}
	defer rows.Close()

	var out []student
	for rows.Next() {
		var st student
		if err := rows.Scan(&st.ID, &st.Name, &st.Age, &st.Grade); err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

// studentByID fetches one student. The caller can match a missing row
// with errors.Is against sql.ErrNoRows.
func (s *school) studentByID(ctx context.Context, id int64) (student, error) {
	var st student
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, age, grade FROM students WHERE id = ?`, id).
		Scan(&st.ID, &st.Name, &st.Age, &st.Grade)
	if err != nil {
		return student{}, fmt.Errorf("fetching student %d: %w", id, err)
	}
	return st, nil
}

// setGrade updates a student's grade and reports how many rows changed.
func (s *school) setGrade(ctx context.Context, id int64, grade string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE students SET grade = ? WHERE id = ?`, grade, id)
	if err != nil {
		return 0, fmt.Errorf("updating grade of %d: %w", id, err)
	}
	return res.RowsAffected()
}

// removeStudent deletes a student and their enrollments in one
// transaction, enrollments first so the foreign key stays satisfied.
func (s *school) removeStudent(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("removing student %d: %w", id, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM enrollments WHERE student_id = ?`, id); err != nil {
		return fmt.Errorf("removing enrollments of %d: %w", id, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM students WHERE id = ?`, id); err != nil {
		return fmt.Errorf("removing student %d: %w", id, err)
	}
	return tx.Commit()
}

func runCRUD(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	s, err := setupSchool(ctx, env, "crud.db")
	if err != nil {
		return err
	}
	defer s.Close()

	p.Section("Create")
	id, err := s.addStudent(ctx, "Eve Martinez", 22, "A")
	if err != nil {
		return err
	}
	p.KV("inserted Eve Martinez", "id %d", id)

	p.Section("Read")
	students, err := s.listStudents(ctx)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(students))
	for _, st := range students {
		rows = append(rows, []string{
			strconv.FormatInt(st.ID, 10), st.Name, strconv.Itoa(st.Age), st.Grade,
		})
	}
	p.Table([]string{"id", "name", "age", "grade"}, rows)

	p.Section("Update")
	affected, err := s.setGrade(ctx, 1, "A+")
	if err != nil {
		return err
	}
	p.KV("rows changed", "%d", affected)
	st, err := s.studentByID(ctx, 1)
	if err != nil {
		return err
	}
	p.KV("Alice's grade now", "%s", st.Grade)

	p.Section("The row that is not there")
	_, err = s.studentByID(ctx, 99)
	p.KV("is sql.ErrNoRows", "%t", errors.Is(err, sql.ErrNoRows))

	p.Section("Delete")
	if err := s.removeStudent(ctx, 4); err != nil {
		return err
	}
	for _, table := range []string{"students", "enrollments"} {
		n, err := s.countRows(ctx, table)
		if err != nil {
			return err
		}
		p.KV(table+" after delete", "%d rows", n)
	}

	return nil
}
