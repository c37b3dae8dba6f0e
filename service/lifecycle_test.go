package service

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func expectJobOrderRow(mock sqlmock.Sqlmock, deleted bool) {
	var deletedAt interface{}
	if deleted {
		deletedAt = "2025-01-01T00:00:00Z"
	}
	mock.ExpectQuery(`SELECT \* FROM "job_order_requests"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "jo_number", "status", "created_by", "deleted_at"}).
			AddRow(5, "JO-0005", "Pending", 2, deletedAt))
}

func TestSoftDelete(t *testing.T) {
	db, mock := newMockDB(t)

	expectScopeLookup(mock, 3, "global") // form_records.delete
	expectJobOrderRow(mock, false)
	mock.ExpectExec(`UPDATE "job_order_requests" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	expectJobOrderRow(mock, true)
	expectAuditInsert(mock)

	l := NewLifecycle(db)
	updated, err := l.SoftDelete("job-order-request", 5, 1)
	if err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}
	if updated["deleted_at"] == nil {
		t.Error("deleted_at should be set after soft delete")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestSoftDeleteAlreadyDeleted(t *testing.T) {
	db, mock := newMockDB(t)

	expectScopeLookup(mock, 3, "global")
	expectJobOrderRow(mock, true)

	l := NewLifecycle(db)
	_, err := l.SoftDelete("job-order-request", 5, 1)
	if !errors.Is(err, ErrAlreadyDeleted) {
		t.Fatalf("err = %v, want ErrAlreadyDeleted", err)
	}
	// no UPDATE and no audit entry
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestSoftDeleteNoPermission(t *testing.T) {
	db, mock := newMockDB(t)

	expectScopeLookup(mock, 3, "")

	l := NewLifecycle(db)
	_, err := l.SoftDelete("job-order-request", 5, 1)
	if !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("err = %v, want ErrPermissionDenied", err)
	}
}

func TestSoftDeleteLegacyRoleTable(t *testing.T) {
	db, mock := newMockDB(t)

	// kb articles use the flat-role path, not position permissions
	mock.ExpectQuery(`SELECT .+ FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "role"}).AddRow(1, "user"))

	l := NewLifecycle(db)
	_, err := l.SoftDelete("kb-article", 5, 1)
	if !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("err = %v, want ErrPermissionDenied", err)
	}
}

func TestRestore(t *testing.T) {
	db, mock := newMockDB(t)

	expectScopeLookup(mock, 3, "global") // form_records.restore
	expectJobOrderRow(mock, true)
	mock.ExpectExec(`UPDATE "job_order_requests" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	expectJobOrderRow(mock, false)
	expectAuditInsert(mock)

	l := NewLifecycle(db)
	updated, err := l.Restore("job-order-request", 5, 1)
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if updated["deleted_at"] != nil {
		t.Error("deleted_at should be cleared after restore")
	}
}

func TestRestoreNotDeleted(t *testing.T) {
	db, mock := newMockDB(t)

	expectScopeLookup(mock, 3, "global")
	expectJobOrderRow(mock, false)

	l := NewLifecycle(db)
	_, err := l.Restore("job-order-request", 5, 1)
	if !errors.Is(err, ErrNotDeleted) {
		t.Fatalf("err = %v, want ErrNotDeleted", err)
	}
}

func TestSoftDeleteUnknownFormType(t *testing.T) {
	db, _ := newMockDB(t)

	l := NewLifecycle(db)
	_, err := l.SoftDelete("no-such-form", 5, 1)
	if !errors.Is(err, ErrUnknownFormType) {
		t.Fatalf("err = %v, want ErrUnknownFormType", err)
	}
}
