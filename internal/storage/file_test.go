package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-app-server/internal/models"
	"clinic-app-server/internal/storage"
)

func TestFileBackendRoundTrip(t *testing.T) {
	dir := t.TempDir()
	backend, err := storage.NewFileBackend(dir)
	require.NoError(t, err)
	store := storage.New(backend)

	_, err = storage.Create(store, storage.KeyPatients, models.Patient{ID: "P1", Name: "Siti Aminah"})
	require.NoError(t, err)

	// The collection lands in its own file.
	_, err = os.Stat(filepath.Join(dir, "patients.json"))
	require.NoError(t, err)

	// A fresh store over the same directory sees the data.
	reopened, err := storage.NewFileBackend(dir)
	require.NoError(t, err)
	all, err := storage.GetAll[models.Patient](storage.New(reopened), storage.KeyPatients)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Siti Aminah", all[0].Name)
}

func TestFileBackendDeleteMissingKey(t *testing.T) {
	backend, err := storage.NewFileBackend(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, backend.Delete("nonexistent"))

	_, ok, err := backend.Get("nonexistent")
	require.NoError(t, err)
	assert.False(t, ok)
}
