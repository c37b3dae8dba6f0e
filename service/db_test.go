package service

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	return db, mock
}

// expectScopeLookup queues the two queries behind Permissions.GetScope:
// the user's position, then the grant row. An empty scope means no grant.
func expectScopeLookup(mock sqlmock.Sqlmock, positionID int64, scope string) {
	mock.ExpectQuery(`SELECT .+ FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "position_id"}).AddRow(1, positionID))

	rows := sqlmock.NewRows([]string{"scope"})
	if scope != "" {
		rows.AddRow(scope)
	}
	mock.ExpectQuery(`SELECT pp.scope FROM position_permissions`).WillReturnRows(rows)
}
