package repo

import (
	"testing"

	"VitalLog/internal/model"

	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB поднимает изолированную in-memory SQLite с миграциями.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: "file::memory:?cache=shared"}
	db, err := gorm.Open(dial, &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.HealthRecord{}))
	t.Cleanup(func() {
		db.Exec("DELETE FROM health_records")
		db.Exec("DELETE FROM users")
	})
	return db
}
