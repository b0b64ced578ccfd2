package dbase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

type transcriptRow struct {
	Student string
	Course  string
	Grade   string
	Credits int
}

// transcript joins students to their courses through the enrollments
// table, ordered for reading.
func (s *school) transcript(ctx context.Context) ([]transcriptRow, error) {
	const q = `
		SELECT s.name, c.course_name, e.grade, c.credits
		FROM students s
		JOIN enrollments e ON s.id = e.student_id
		JOIN courses c ON e.course_id = c.id
		ORDER BY s.name, c.course_name
	`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("querying transcript: %w", err)
	}
	defer rows.Close()

	var out []transcriptRow
	for rows.Next() {
		var r transcriptRow
		if err := rows.Scan(&r.Student, &r.Course, &r.Grade, &r.Credits); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

type courseStats struct {
	Course   string
	Enrolled int
	AvgGPA   float64
}

// courseReport aggregates per course: how many students enrolled and
// their average GPA on the usual 4-point letter mapping.
func (s *school) courseReport(ctx context.Context) ([]courseStats, error) {
	const q = `
		SELECT c.course_name,
		       COUNT(e.student_id) AS enrolled,
		       AVG(CASE e.grade
		           WHEN 'A'  THEN 4.0
		           WHEN 'A-' THEN 3.7
		           WHEN 'B+' THEN 3.3
		           WHEN 'B'  THEN 3.0
		           ELSE 0 END) AS avg_gpa
		FROM courses c
		LEFT JOIN enrollments e ON c.id = e.course_id
		GROUP BY c.id, c.course_name
		ORDER BY c.course_name
	`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("querying course report: %w", err)
	}
	defer rows.Close()

	var out []courseStats
	for rows.Next() {
		var cs courseStats
		if err := rows.Scan(&cs.Course, &cs.Enrolled, &cs.AvgGPA); err != nil {
			return nil, err
		}
		out = append(out, cs)
	}
	return out, rows.Err()
}

func runJoins(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	s, err := setupSchool(ctx, env, "joins.db")
	if err != nil {
		return err
	}
	defer s.Close()

	p.Section("Transcript: two joins")
	trs, err := s.transcript(ctx)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(trs))
	for _, r := range trs {
		rows = append(rows, []string{r.Student, r.Course, r.Grade, strconv.Itoa(r.Credits)})
	}
	p.Table([]string{"student", "course", "grade", "credits"}, rows)

	p.Section("Course report: LEFT JOIN and GROUP BY")
	stats, err := s.courseReport(ctx)
	if err != nil {
		return err
	}
	rows = rows[:0]
	for _, cs := range stats {
		rows = append(rows, []string{cs.Course, strconv.Itoa(cs.Enrolled), fmt.Sprintf("%.2f", cs.AvgGPA)})
	}
	p.Table([]string{"course", "enrolled", "avg gpa"}, rows)

	return nil
}
