package service

import (
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestNextJobOrderSeqFromCounter(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`UPDATE form_counters SET current_value`).
		WillReturnRows(sqlmock.NewRows([]string{"current_value"}).AddRow(42))

	seq, err := NextJobOrderSeq(db)
	if err != nil {
		t.Fatalf("NextJobOrderSeq: %v", err)
	}
	if seq != 42 {
		t.Errorf("seq = %d, want 42", seq)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestNextJobOrderSeqFallsBackToSequence(t *testing.T) {
	db, mock := newMockDB(t)

	// counter row missing: zero rows from the bump
	mock.ExpectQuery(`UPDATE form_counters SET current_value`).
		WillReturnRows(sqlmock.NewRows([]string{"current_value"}))
	mock.ExpectQuery(`SELECT nextval`).
		WillReturnRows(sqlmock.NewRows([]string{"nextval"}).AddRow(17))

	seq, err := NextJobOrderSeq(db)
	if err != nil {
		t.Fatalf("NextJobOrderSeq: %v", err)
	}
	if seq != 17 {
		t.Errorf("seq = %d, want 17", seq)
	}
}

func TestNextJobOrderSeqFallsBackToMax(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`UPDATE form_counters SET current_value`).
		WillReturnError(fmt.Errorf("relation \"form_counters\" does not exist"))
	mock.ExpectQuery(`SELECT nextval`).
		WillReturnError(fmt.Errorf("no serial sequence"))
	mock.ExpectQuery(`SELECT COALESCE\(MAX\(jo_number_seq\)`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(7))

	seq, err := NextJobOrderSeq(db)
	if err != nil {
		t.Fatalf("NextJobOrderSeq: %v", err)
	}
	if seq != 7 {
		t.Errorf("seq = %d, want 7", seq)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
