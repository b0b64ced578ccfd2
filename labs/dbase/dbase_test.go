package dbase

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"math"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/workbook-dev/workbook/labkit/lab"
)

func testSchool(t *testing.T) *school {
	t.Helper()
	ctx := context.Background()
	s, err := openSchool(ctx, filepath.Join(t.TempDir(), "school.db"))
	if err != nil {
		t.Fatalf("openSchool() error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	if err := s.init(ctx); err != nil {
		t.Fatalf("init() error: %v", err)
	}
	if err := s.seed(ctx); err != nil {
		t.Fatalf("seed() error: %v", err)
	}
	return s
}

func mustCount(t *testing.T, s *school, table string) int {
	t.Helper()
	n, err := s.countRows(context.Background(), table)
	if err != nil {
		t.Fatalf("countRows(%s) error: %v", table, err)
	}
	return n
}

func TestSeed(t *testing.T) {
	s := testSchool(t)
	ctx := context.Background()

	if got := mustCount(t, s, "students"); got != 4 {
		t.Errorf("students = %d, expected 4", got)
	}
	if got := mustCount(t, s, "courses"); got != 4 {
		t.Errorf("courses = %d, expected 4", got)
	}
	if got := mustCount(t, s, "enrollments"); got != 10 {
		t.Errorf("enrollments = %d, expected 10", got)
	}

	names, err := s.tables(ctx)
	if err != nil {
		t.Fatalf("tables() error: %v", err)
	}
	want := []string{"courses", "enrollments", "students"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("tables = %v, expected %v", names, want)
	}

	if err := s.seed(ctx); err != nil {
		t.Fatalf("second seed() error: %v", err)
	}
	if got := mustCount(t, s, "students"); got != 4 {
		t.Errorf("students after second seed = %d, expected 4", got)
	}
}

func TestCRUD(t *testing.T) {
	s := testSchool(t)
	ctx := context.Background()

	id, err := s.addStudent(ctx, "Eve Martinez", 22, "A")
	if err != nil {
		t.Fatalf("addStudent() error: %v", err)
	}
	if id != 5 {
		t.Errorf("new id = %d, expected 5", id)
	}

	students, err := s.listStudents(ctx)
	if err != nil {
		t.Fatalf("listStudents() error: %v", err)
	}
	if len(students) != 5 {
		t.Fatalf("listed %d students, expected 5", len(students))
	}
	if students[0].Name != "Alice Johnson" || students[4].Name != "Eve Martinez" {
		t.Errorf("unexpected order: first %q last %q", students[0].Name, students[4].Name)
	}

	affected, err := s.setGrade(ctx, 1, "A+")
	if err != nil {
		t.Fatalf("setGrade() error: %v", err)
	}
	if affected != 1 {
		t.Errorf("setGrade affected %d rows, expected 1", affected)
	}
	st, err := s.studentByID(ctx, 1)
	if err != nil {
		t.Fatalf("studentByID() error: %v", err)
	}
	if st.Grade != "A+" {
		t.Errorf("grade = %q, expected A+", st.Grade)
	}

	affected, err = s.setGrade(ctx, 99, "A")
	if err != nil {
		t.Fatalf("setGrade(99) error: %v", err)
	}
	if affected != 0 {
		t.Errorf("setGrade(99) affected %d rows, expected 0", affected)
	}

	if _, err := s.studentByID(ctx, 99); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("studentByID(99) error = %v, expected sql.ErrNoRows", err)
	}

	if err := s.removeStudent(ctx, 4); err != nil {
		t.Fatalf("removeStudent() error: %v", err)
	}
	if got := mustCount(t, s, "students"); got != 4 {
		t.Errorf("students after delete = %d, expected 4", got)
	}
	if got := mustCount(t, s, "enrollments"); got != 8 {
		t.Errorf("enrollments after delete = %d, expected 8", got)
	}
}

func TestTranscript(t *testing.T) {
	s := testSchool(t)

	trs, err := s.transcript(context.Background())
	if err != nil {
		t.Fatalf("transcript() error: %v", err)
	}
	if len(trs) != 10 {
		t.Fatalf("transcript has %d rows, expected 10", len(trs))
	}
	first := transcriptRow{Student: "Alice Johnson", Course: "Computer Science", Grade: "A", Credits: 4}
	if trs[0] != first {
		t.Errorf("first row = %+v, expected %+v", trs[0], first)
	}
	last := transcriptRow{Student: "David Wilson", Course: "Mathematics", Grade: "B+", Credits: 3}
	if trs[9] != last {
		t.Errorf("last row = %+v, expected %+v", trs[9], last)
	}
}

func TestCourseReport(t *testing.T) {
	s := testSchool(t)

	stats, err := s.courseReport(context.Background())
	if err != nil {
		t.Fatalf("courseReport() error: %v", err)
	}
	if len(stats) != 4 {
		t.Fatalf("report has %d rows, expected 4", len(stats))
	}

	want := []courseStats{
		{Course: "Chemistry", Enrolled: 2, AvgGPA: 3.85},
		{Course: "Computer Science", Enrolled: 3, AvgGPA: 3.9},
		{Course: "Mathematics", Enrolled: 3, AvgGPA: (4.0 + 3.0 + 3.3) / 3},
		{Course: "Physics", Enrolled: 2, AvgGPA: 3.65},
	}
	for i, w := range want {
		got := stats[i]
		if got.Course != w.Course || got.Enrolled != w.Enrolled {
			t.Errorf("row %d = %+v, expected %+v", i, got, w)
			continue
		}
		if math.Abs(got.AvgGPA-w.AvgGPA) > 1e-9 {
			t.Errorf("%s gpa = %v, expected %v", w.Course, got.AvgGPA, w.AvgGPA)
		}
	}
}

func TestTransactionRollback(t *testing.T) {
	s := testSchool(t)
	ctx := context.Background()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("BeginTx() error: %v", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO students (name, age, grade) VALUES (?, ?, ?)`,
		"Phantom Student", 99, "F"); err != nil {
		t.Fatalf("insert in tx error: %v", err)
	}
	if err := tx.Rollback(); err != nil {
		t.Fatalf("Rollback() error: %v", err)
	}
	if got := mustCount(t, s, "students"); got != 4 {
		t.Errorf("students after rollback = %d, expected 4", got)
	}

	tx, err = s.db.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("BeginTx() error: %v", err)
	}
	if err := enroll(ctx, tx, 2, 2, "B"); err != nil {
		t.Fatalf("enroll in tx error: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("Commit() error: %v", err)
	}
	if got := mustCount(t, s, "enrollments"); got != 11 {
		t.Errorf("enrollments after commit = %d, expected 11", got)
	}
}

func TestConstraints(t *testing.T) {
	s := testSchool(t)
	ctx := context.Background()

	if err := enroll(ctx, s.db, 1, 999, "A"); err == nil {
		t.Error("expected foreign key error for unknown course")
	}
	if err := enroll(ctx, s.db, 1, 1, "A"); err == nil {
		t.Error("expected primary key error for double enrollment")
	}
	if got := mustCount(t, s, "enrollments"); got != 10 {
		t.Errorf("enrollments = %d, expected 10 after rejected inserts", got)
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
