package service

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func expectSheetRow(mock sqlmock.Sqlmock, status, approvalStatus string, createdBy int64, deleted bool) {
	var deletedAt interface{}
	if deleted {
		deletedAt = "2025-01-01T00:00:00Z"
	}
	mock.ExpectQuery(`SELECT \* FROM "daily_time_sheets"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "status", "approval_status", "created_by", "deleted_at"}).
			AddRow(10, status, approvalStatus, createdBy, deletedAt))
}

func expectBranchOf(mock sqlmock.Sqlmock, userID int64, address string) {
	mock.ExpectQuery(`SELECT .+ FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "address"}).AddRow(userID, address))
}

func expectAuditInsert(mock sqlmock.Sqlmock) {
	mock.ExpectQuery(`INSERT INTO "audit_logs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
}

func TestUpdateStatusSameBranch(t *testing.T) {
	db, mock := newMockDB(t)

	expectSheetRow(mock, "in-progress", "pending_level_1", 2, false)
	expectScopeLookup(mock, 3, "branch")
	expectBranchOf(mock, 2, "Branch A") // creator
	expectBranchOf(mock, 1, "Branch A") // actor
	mock.ExpectExec(`UPDATE "daily_time_sheets" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	expectAuditInsert(mock)
	expectSheetRow(mock, "Close", "pending_level_1", 2, false)

	w := NewWorkflow(db)
	updated, err := w.UpdateStatus("daily-time-sheet", 10, "close", 1)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated["status"] != "Close" {
		t.Errorf("status = %v, want Close", updated["status"])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestUpdateStatusCrossBranchDenied(t *testing.T) {
	db, mock := newMockDB(t)

	expectSheetRow(mock, "Pending", "pending_level_1", 2, false)
	expectScopeLookup(mock, 3, "branch")
	expectBranchOf(mock, 2, "Branch B") // creator is from another branch
	expectBranchOf(mock, 1, "Branch A")

	w := NewWorkflow(db)
	_, err := w.UpdateStatus("daily-time-sheet", 10, "close", 1)
	if !errors.Is(err, ErrDifferentBranch) {
		t.Fatalf("err = %v, want ErrDifferentBranch", err)
	}
	// no UPDATE and no audit entry may have happened
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestUpdateStatusNoGrant(t *testing.T) {
	db, mock := newMockDB(t)

	expectSheetRow(mock, "Pending", "pending_level_1", 2, false)
	expectScopeLookup(mock, 3, "")

	w := NewWorkflow(db)
	_, err := w.UpdateStatus("daily-time-sheet", 10, "close", 1)
	if !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("err = %v, want ErrPermissionDenied", err)
	}
}

func TestUpdateStatusEmpty(t *testing.T) {
	db, _ := newMockDB(t)

	w := NewWorkflow(db)
	_, err := w.UpdateStatus("daily-time-sheet", 10, "", 1)
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("err = %v, want ErrInvalidStatus", err)
	}
}

func expectApprovalLevel(mock sqlmock.Sqlmock, level int, override bool) {
	mock.ExpectQuery(`SELECT pos.approval_level, pos.is_override FROM positions`).
		WillReturnRows(sqlmock.NewRows([]string{"approval_level", "is_override"}).AddRow(level, override))
}

func TestApproveLevel1(t *testing.T) {
	db, mock := newMockDB(t)

	expectSheetRow(mock, "Pending", "pending_level_1", 2, false)
	expectScopeLookup(mock, 3, "global")
	expectApprovalLevel(mock, 1, false)
	mock.ExpectExec(`UPDATE "daily_time_sheets" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	expectAuditInsert(mock)
	expectSheetRow(mock, "Pending", "pending_level_2", 2, false)

	w := NewWorkflow(db)
	updated, err := w.Approve("daily-time-sheet", 10, 1, "looks good")
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if updated["approval_status"] != "pending_level_2" {
		t.Errorf("approval_status = %v, want pending_level_2", updated["approval_status"])
	}
}

func TestApproveWrongLevel(t *testing.T) {
	db, mock := newMockDB(t)

	expectSheetRow(mock, "Pending", "pending_level_2", 2, false)
	expectScopeLookup(mock, 3, "global")
	expectApprovalLevel(mock, 1, false) // level-1 approver on a level-2 record

	w := NewWorkflow(db)
	_, err := w.Approve("daily-time-sheet", 10, 1, "")
	if !errors.Is(err, ErrWrongLevel) {
		t.Fatalf("err = %v, want ErrWrongLevel", err)
	}
}

func TestApproveOverrideActsOnAnyLevel(t *testing.T) {
	db, mock := newMockDB(t)

	expectSheetRow(mock, "Pending", "pending_level_2", 2, false)
	expectScopeLookup(mock, 3, "global")
	expectApprovalLevel(mock, 0, true) // super admin
	mock.ExpectExec(`UPDATE "daily_time_sheets" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	expectAuditInsert(mock)
	expectSheetRow(mock, "Pending", "approved", 2, false)

	w := NewWorkflow(db)
	updated, err := w.Approve("daily-time-sheet", 10, 1, "")
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if updated["approval_status"] != "approved" {
		t.Errorf("approval_status = %v, want approved", updated["approval_status"])
	}
}

func TestRejectTerminalState(t *testing.T) {
	db, mock := newMockDB(t)

	expectSheetRow(mock, "Pending", "approved", 2, false)
	expectScopeLookup(mock, 3, "global")
	expectApprovalLevel(mock, 2, false)

	w := NewWorkflow(db)
	_, err := w.Reject("daily-time-sheet", 10, 1, "nope")
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
}

func TestDecideNotApprovable(t *testing.T) {
	db, _ := newMockDB(t)

	w := NewWorkflow(db)
	_, err := w.Approve("leave-request", 10, 1, "")
	if !errors.Is(err, ErrNotApprovable) {
		t.Fatalf("err = %v, want ErrNotApprovable", err)
	}
}
