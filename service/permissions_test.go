package service

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestGetScopeGranted(t *testing.T) {
	db, mock := newMockDB(t)
	expectScopeLookup(mock, 3, "branch")

	perms := NewPermissions(db)
	scope, err := perms.GetScope(1, "approvals", "edit")
	if err != nil {
		t.Fatalf("GetScope: %v", err)
	}
	if scope != ScopeBranch {
		t.Errorf("scope = %q, want %q", scope, ScopeBranch)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestGetScopeNoGrant(t *testing.T) {
	db, mock := newMockDB(t)
	expectScopeLookup(mock, 3, "")

	perms := NewPermissions(db)
	scope, err := perms.GetScope(1, "approvals", "edit")
	if err != nil {
		t.Fatalf("GetScope: %v", err)
	}
	if scope != ScopeNone {
		t.Errorf("scope = %q, want none", scope)
	}
}

func TestGetScopeNoPosition(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT .+ FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "position_id"}).AddRow(1, nil))

	perms := NewPermissions(db)
	scope, err := perms.GetScope(1, "approvals", "edit")
	if err != nil {
		t.Fatalf("GetScope: %v", err)
	}
	if scope != ScopeNone {
		t.Errorf("scope = %q, want none for positionless user", scope)
	}
	// fail-closed: no grant query should have run
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestHasPermission(t *testing.T) {
	db, mock := newMockDB(t)
	expectScopeLookup(mock, 3, "global")

	perms := NewPermissions(db)
	ok, err := perms.HasPermission(1, "form_records", "delete")
	if err != nil {
		t.Fatalf("HasPermission: %v", err)
	}
	if !ok {
		t.Error("expected permission to be granted")
	}
}

func TestCheckRecordPermission(t *testing.T) {
	cases := []struct {
		role string
		want bool
	}{
		{"admin", true},
		{"user", false},
	}

	for _, tc := range cases {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT .+ FROM "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "role"}).AddRow(1, tc.role))

		perms := NewPermissions(db)
		ok, err := perms.CheckRecordPermission(1)
		if err != nil {
			t.Fatalf("CheckRecordPermission(%s): %v", tc.role, err)
		}
		if ok != tc.want {
			t.Errorf("CheckRecordPermission(%s) = %v, want %v", tc.role, ok, tc.want)
		}
	}
}

func TestApprovalLevel(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT pos.approval_level, pos.is_override FROM positions`).
		WillReturnRows(sqlmock.NewRows([]string{"approval_level", "is_override"}).AddRow(2, false))

	perms := NewPermissions(db)
	level, override, err := perms.ApprovalLevel(1)
	if err != nil {
		t.Fatalf("ApprovalLevel: %v", err)
	}
	if level != 2 || override {
		t.Errorf("level=%d override=%v, want 2/false", level, override)
	}
}
