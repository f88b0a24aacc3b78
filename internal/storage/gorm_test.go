package storage_test

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"clinic-app-server/internal/storage"
)

func newMockGormBackend(t *testing.T) (*storage.GormBackend, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return storage.NewGormBackend(gdb), mock
}

func TestGormBackendGet(t *testing.T) {
	backend, mock := newMockGormBackend(t)

	mock.ExpectQuery("SELECT \\* FROM `blobs`").
		WillReturnRows(sqlmock.NewRows([]string{"key", "data"}).
			AddRow("patients", []byte(`[{"id":"P1"}]`)))

	data, ok, err := backend.Get("patients")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `[{"id":"P1"}]`, string(data))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormBackendGetMissing(t *testing.T) {
	backend, mock := newMockGormBackend(t)

	mock.ExpectQuery("SELECT \\* FROM `blobs`").
		WillReturnRows(sqlmock.NewRows([]string{"key", "data"}))

	_, ok, err := backend.Get("patients")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormBackendSetUpserts(t *testing.T) {
	backend, mock := newMockGormBackend(t)

	mock.ExpectExec("INSERT INTO `blobs`").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, backend.Set("patients", []byte(`[]`)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormBackendDelete(t *testing.T) {
	backend, mock := newMockGormBackend(t)

	mock.ExpectExec("DELETE FROM `blobs`").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, backend.Delete("patients"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
