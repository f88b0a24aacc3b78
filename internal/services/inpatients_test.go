package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-app-server/internal/models"
	"clinic-app-server/internal/services"
	"clinic-app-server/internal/storage"
)

func seedInpatient(t *testing.T, store *storage.Store, id string, status models.InpatientStatus) models.Inpatient {
	t.Helper()
	inpatient, err := storage.Create(store, storage.KeyInpatients, models.Inpatient{
		ID:            id,
		PatientID:     "P1",
		PatientName:   "Budi Santoso",
		AdmissionDate: "2026-08-27",
		AdmissionTime: "14:30",
		RoomNumber:    "204B",
		RoomType:      models.RoomClass2,
		Diagnosis:     "DBD",
		Status:        status,
	})
	require.NoError(t, err)
	return inpatient
}

func TestDischargeStampsDateAndTime(t *testing.T) {
	store := newTestStore(t)
	svc := services.NewInpatientService(store, nopLogger())
	inpatient := seedInpatient(t, store, "INP001", models.InpatientActive)

	discharged, err := svc.Discharge(inpatient.ID)
	require.NoError(t, err)

	assert.Equal(t, models.InpatientDischarged, discharged.Status)
	assert.NotEmpty(t, discharged.DischargeDate)
	assert.NotEmpty(t, discharged.DischargeTime)
	// Admission details survive the partial update.
	assert.Equal(t, "204B", discharged.RoomNumber)
	assert.Equal(t, "2026-08-27", discharged.AdmissionDate)
}

func TestDischargeRequiresActiveAdmission(t *testing.T) {
	store := newTestStore(t)
	svc := services.NewInpatientService(store, nopLogger())
	inpatient := seedInpatient(t, store, "INP001", models.InpatientDischarged)

	_, err := svc.Discharge(inpatient.ID)
	assert.ErrorIs(t, err, services.ErrInvalidTransition)
}

func TestDischargeUnknownID(t *testing.T) {
	store := newTestStore(t)
	svc := services.NewInpatientService(store, nopLogger())

	_, err := svc.Discharge("missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
