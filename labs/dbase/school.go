package dbase

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/workbook-dev/workbook/labkit/lab"
)

// school wraps a SQLite database holding students, courses, and the
// enrollments joining them.
type school struct {
	db *sql.DB
}

// openSchool opens or creates the database at path. Foreign key checks
// are off by default in SQLite and must be asked for; the pool is capped
// at one connection so the database sees a single writer.
func openSchool(ctx context.Context, path string) (*school, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging %s: %w", path, err)
	}
	return &school{db: db}, nil
}

func (s *school) Close() error {
	return s.db.Close()
}

const schema = `
CREATE TABLE IF NOT EXISTS students (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	name            TEXT NOT NULL,
	age             INTEGER,
	grade           TEXT,
	enrollment_date DATE DEFAULT CURRENT_DATE
);

CREATE TABLE IF NOT EXISTS courses (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	course_name TEXT NOT NULL,
	instructor  TEXT,
	credits     INTEGER
);

CREATE TABLE IF NOT EXISTS enrollments (
	student_id INTEGER,
	course_id  INTEGER,
	grade      TEXT,
	FOREIGN KEY (student_id) REFERENCES students (id),
	FOREIGN KEY (course_id) REFERENCES courses (id),
	PRIMARY KEY (student_id, course_id)
);
`

// init creates the three tables if they are not there yet.
func (s *school) init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// seed loads the sample rows once. A database that already holds students
// is left alone.
func (s *school) seed(ctx context.Context) error {
	n, err := s.countRows(ctx, "students")
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	students := []struct {
		name  string
		age   int
		grade string
	}{
		{"Alice Johnson", 20, "A"},
		{"Bob Smith", 19, "B+"},
		{"Carol Davis", 21, "A-"},
		{"David Wilson", 18, "B"},
	}
	for _, st := range students {
		if _, err := s.db.ExecContext(ctx,
			`INSERT INTO students (name, age, grade) VALUES (?, ?, ?)`,
			st.name, st.age, st.grade); err != nil {
			return fmt.Errorf("seeding students: %w", err)
		}
	}

	courses := []struct {
		name       string
		instructor string
		credits    int
	}{
		{"Mathematics", "Dr. Smith", 3},
		{"Physics", "Dr. Johnson", 4},
		{"Chemistry", "Dr. Davis", 3},
		{"Computer Science", "Dr. Wilson", 4},
	}
	for _, c := range courses {
		if _, err := s.db.ExecContext(ctx,
			`INSERT INTO courses (course_name, instructor, credits) VALUES (?, ?, ?)`,
			c.name, c.instructor, c.credits); err != nil {
			return fmt.Errorf("seeding courses: %w", err)
		}
	}

	enrollments := []struct {
		student, course int
		grade           string
	}{
		{1, 1, "A"}, {1, 2, "B+"}, {1, 4, "A"},
		{2, 1, "B"}, {2, 3, "A-"},
		{3, 2, "A"}, {3, 3, "A"}, {3, 4, "A-"},
		{4, 1, "B+"}, {4, 4, "A"},
	}
	for _, e := range enrollments {
		if _, err := s.db.ExecContext(ctx,
			`INSERT INTO enrollments (student_id, course_id, grade) VALUES (?, ?, ?)`,
			e.student, e.course, e.grade); err != nil {
			return fmt.Errorf("seeding enrollments: %w", err)
		}
	}
	return nil
}

// countRows counts the rows of one of the schema's tables. The table name
// is trusted; it never comes from input.
func (s *school) countRows(ctx context.Context, table string) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting %s: %w", table, err)
	}
	return n, nil
}

// tables lists the user tables in the database catalog.
func (s *school) tables(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// setupSchool opens a lesson-private database under the scratch directory
// with the schema and sample data in place.
func setupSchool(ctx context.Context, env *lab.Env, name string) (*school, error) {
	path, err := env.Scratch(name)
	if err != nil {
		return nil, err
	}
	s, err := openSchool(ctx, path)
	if err != nil {
		return nil, err
	}
	if err := s.init(ctx); err != nil {
		s.Close()
		return nil, err
	}
	if err := s.seed(ctx); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}
