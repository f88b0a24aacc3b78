package services_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"clinic-app-server/internal/models"
	"clinic-app-server/internal/storage"
)

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	return storage.New(storage.NewMemoryBackend())
}

func nopLogger() zerolog.Logger { return zerolog.Nop() }

func seedPatient(t *testing.T, store *storage.Store, id, name string) models.Patient {
	t.Helper()
	patient, err := storage.Create(store, storage.KeyPatients, models.Patient{ID: id, Name: name})
	require.NoError(t, err)
	return patient
}

func seedStaff(t *testing.T, store *storage.Store, id, username string, role models.Role) models.User {
	t.Helper()
	user, err := storage.Create(store, storage.KeyUsers, models.User{
		ID:       id,
		Username: username,
		Name:     "Staff " + username,
		Role:     role,
		Status:   models.UserActive,
	})
	require.NoError(t, err)
	return user
}

func seedMedicine(t *testing.T, store *storage.Store, id, name string, stock, minStock int) models.Medicine {
	t.Helper()
	medicine, err := storage.Create(store, storage.KeyMedicines, models.Medicine{
		ID: id, Name: name, Stock: stock, MinStock: minStock, Unit: "tablet",
	})
	require.NoError(t, err)
	return medicine
}

func seedAppointment(t *testing.T, store *storage.Store, id string, patient models.Patient, doctor models.User, status models.AppointmentStatus) models.Appointment {
	t.Helper()
	appointment, err := storage.Create(store, storage.KeyAppointments, models.Appointment{
		ID:          id,
		PatientID:   patient.ID,
		PatientName: patient.Name,
		DoctorID:    doctor.ID,
		DoctorName:  doctor.Name,
		Poli:        "Poli Umum",
		Date:        "2026-08-29",
		Time:        "09:00",
		Complaint:   "Demam tinggi",
		Status:      status,
		QueueNumber: 1,
	})
	require.NoError(t, err)
	return appointment
}
