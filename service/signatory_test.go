package service

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func expectReportRow(mock sqlmock.Sqlmock, notedByUserID, approvedByUserID int64) {
	mock.ExpectQuery(`SELECT \* FROM "engine_service_reports"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "noted_by_user_id", "noted_by_checked", "approved_by_user_id", "approved_by_checked", "deleted_at"}).
			AddRow(9, notedByUserID, false, approvedByUserID, false, nil))
}

func TestToggleFlag(t *testing.T) {
	db, mock := newMockDB(t)

	expectReportRow(mock, 4, 7)
	mock.ExpectExec(`UPDATE "engine_service_reports" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "engine_service_reports"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "noted_by_user_id", "noted_by_checked"}).
			AddRow(9, 4, true))

	s := NewSignatory(db)
	row, err := s.ToggleFlag("engine_service_reports", 9, "noted_by", true, 4)
	if err != nil {
		t.Fatalf("ToggleFlag: %v", err)
	}
	if checked, _ := row["noted_by_checked"].(bool); !checked {
		t.Error("noted_by_checked should be true after toggle")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestToggleFlagWrongUser(t *testing.T) {
	db, mock := newMockDB(t)

	expectReportRow(mock, 4, 7)

	s := NewSignatory(db)
	_, err := s.ToggleFlag("engine_service_reports", 9, "noted_by", true, 7)
	if !errors.Is(err, ErrNotSignatory) {
		t.Fatalf("err = %v, want ErrNotSignatory", err)
	}
	// the record must not have been touched
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestToggleFlagNoDesignatedSignatory(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "engine_service_reports"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "noted_by_user_id"}).AddRow(9, nil))

	s := NewSignatory(db)
	_, err := s.ToggleFlag("engine_service_reports", 9, "noted_by", true, 4)
	if !errors.Is(err, ErrNotSignatory) {
		t.Fatalf("err = %v, want ErrNotSignatory", err)
	}
}

func TestToggleFlagDeletedRecord(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "engine_service_reports"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "noted_by_user_id", "deleted_at"}).
			AddRow(9, 4, "2025-01-01T00:00:00Z"))

	s := NewSignatory(db)
	_, err := s.ToggleFlag("engine_service_reports", 9, "noted_by", true, 4)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound for deleted record", err)
	}
	// no UPDATE may have run
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestToggleFlagTableNotAllowed(t *testing.T) {
	db, _ := newMockDB(t)

	s := NewSignatory(db)
	_, err := s.ToggleFlag("users", 1, "noted_by", true, 4)
	if !errors.Is(err, ErrTableNotAllowed) {
		t.Fatalf("err = %v, want ErrTableNotAllowed", err)
	}
}

func TestToggleFlagInvalidField(t *testing.T) {
	db, _ := newMockDB(t)

	s := NewSignatory(db)
	_, err := s.ToggleFlag("engine_service_reports", 9, "deleted_by", true, 4)
	if !errors.Is(err, ErrInvalidField) {
		t.Fatalf("err = %v, want ErrInvalidField", err)
	}
}
