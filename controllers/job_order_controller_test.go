package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestGetJobOrderByIDLimitedToOwnRecords(t *testing.T) {
	mock := newTestDB(t)

	mock.ExpectQuery(`SELECT .+ FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "position_id"}).AddRow(99, nil))
	mock.ExpectQuery(`SELECT \* FROM "job_order_requests" WHERE deleted_at IS NULL AND created_by`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	r := newTestRouter(99)
	r.GET("/job-orders/:id", GetJobOrderByID)

	req := httptest.NewRequest(http.MethodGet, "/job-orders/5", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404 for a record outside visibility", w.Code)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
