package dbase

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

// These tests run against a stub connection instead of SQLite, so the
// driver-independent error paths can be reached on demand.

func TestListStudentsQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	s := &school{db: db}
	boom := errors.New("disk I/O error")
	mock.ExpectQuery("SELECT id, name, age, grade FROM students").WillReturnError(boom)

	_, err = s.listStudents(context.Background())
	assert.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseReportQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	s := &school{db: db}
	boom := errors.New("database is locked")
	mock.ExpectQuery("SELECT (.+) FROM courses").WillReturnError(boom)

	_, err = s.courseReport(context.Background())
	assert.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveStudentRollsBackOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	s := &school{db: db}
	boom := errors.New("disk I/O error")
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM enrollments WHERE student_id").
		WithArgs(int64(4)).
		WillReturnError(boom)
	mock.ExpectRollback()

	err = s.removeStudent(context.Background(), 4)
	assert.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranscriptScanError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	s := &school{db: db}
	rows := sqlmock.NewRows([]string{"name", "course_name", "grade", "credits"}).
		AddRow("Alice Johnson", "Mathematics", "A", "not-a-number")
	mock.ExpectQuery("SELECT (.+) FROM students s").WillReturnRows(rows)

	_, err = s.transcript(context.Background())
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
