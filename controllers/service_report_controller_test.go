package controllers

import (
	"database/sql/driver"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

// Report updates go through a column whitelist; signatory flags, approval
// state and lifecycle fields in the request body must be ignored, not
// written.
func TestUpdateServiceReportIgnoresProtectedFields(t *testing.T) {
	mock := newTestDB(t)

	mock.ExpectQuery(`SELECT \* FROM "engine_service_reports"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "noted_by_user_id", "noted_by_checked", "deleted_at"}).
			AddRow(9, 4, false, nil))

	// exactly the nine whitelisted columns plus updated_at, then the id;
	// a leaked flag or lifecycle column would change the arg count and
	// fail the expectation
	args := make([]driver.Value, 11)
	for i := range args {
		args[i] = sqlmock.AnyArg()
	}
	mock.ExpectExec(`UPDATE "engine_service_reports" SET`).
		WithArgs(args...).
		WillReturnResult(sqlmock.NewResult(0, 1))

	r := newTestRouter(99) // not the designated signatory
	r.PUT("/reports/:type/:id", UpdateServiceReport)

	body := `{
		"engine_id": 3,
		"service_date": "2025-03-01T00:00:00Z",
		"findings": "ok",
		"noted_by_checked": true,
		"approved_by_checked": true,
		"approval_status": "approved",
		"deleted_at": "2025-01-01T00:00:00Z",
		"created_by": 1
	}`
	req := httptest.NewRequest(http.MethodPut, "/reports/engine-service-report/9", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestReportInputColumnWhitelist(t *testing.T) {
	protected := []string{
		"noted_by_checked", "approved_by_checked", "approval_status",
		"deleted_at", "deleted_by", "created_by", "signature_url",
	}
	types := []string{
		"engine-service-report", "pump-service-report",
		"engine-commissioning-report", "pump-teardown-report",
	}
	for _, typ := range types {
		in, _, ok := reportInput(typ)
		if !ok {
			t.Fatalf("reportInput(%s): unknown type", typ)
		}
		u := in.updates()
		for _, col := range protected {
			if _, found := u[col]; found {
				t.Errorf("%s: column %q must not be client-updatable", typ, col)
			}
		}
	}
}

// A user with no view grant only sees their own reports, on the by-id
// endpoint as well as the list.
func TestGetServiceReportByIDLimitedToOwnRecords(t *testing.T) {
	mock := newTestDB(t)

	// positionless user: visibility falls back to created_by
	mock.ExpectQuery(`SELECT .+ FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "position_id"}).AddRow(99, nil))
	mock.ExpectQuery(`SELECT \* FROM "engine_service_reports" WHERE deleted_at IS NULL AND created_by`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	r := newTestRouter(99)
	r.GET("/reports/:type/:id", GetServiceReportByID)

	req := httptest.NewRequest(http.MethodGet, "/reports/engine-service-report/9", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404 for a record outside visibility", w.Code)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
