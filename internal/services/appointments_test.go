package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-app-server/internal/models"
	"clinic-app-server/internal/services"
	"clinic-app-server/internal/storage"
)

func TestScheduleAssignsSequentialQueueNumbers(t *testing.T) {
	store := newTestStore(t)
	svc := services.NewAppointmentService(store, nopLogger())
	patient := seedPatient(t, store, "P1", "Budi Santoso")
	doctor := seedStaff(t, store, "USR002", "drjohn", models.RoleDoctor)

	input := services.ScheduleInput{
		PatientID: patient.ID,
		DoctorID:  doctor.ID,
		Poli:      "Poli Umum",
		Date:      "2026-08-29",
		Time:      "09:00",
		Complaint: "Batuk pilek",
	}

	for want := 1; want <= 3; want++ {
		appointment, err := svc.Schedule(input)
		require.NoError(t, err)
		assert.Equal(t, want, appointment.QueueNumber)
		assert.Equal(t, models.AppointmentWaiting, appointment.Status)
		assert.Equal(t, patient.Name, appointment.PatientName)
		assert.Equal(t, doctor.Name, appointment.DoctorName)
	}

	// A different poli queues independently.
	other := input
	other.Poli = "Poli Gigi"
	appointment, err := svc.Schedule(other)
	require.NoError(t, err)
	assert.Equal(t, 1, appointment.QueueNumber)

	// So does a different date.
	other = input
	other.Date = "2026-08-30"
	appointment, err = svc.Schedule(other)
	require.NoError(t, err)
	assert.Equal(t, 1, appointment.QueueNumber)
}

func TestScheduleCancelledAppointmentsKeepTheirSlot(t *testing.T) {
	store := newTestStore(t)
	svc := services.NewAppointmentService(store, nopLogger())
	patient := seedPatient(t, store, "P1", "Budi Santoso")
	doctor := seedStaff(t, store, "USR002", "drjohn", models.RoleDoctor)

	input := services.ScheduleInput{
		PatientID: patient.ID, DoctorID: doctor.ID,
		Poli: "Poli Umum", Date: "2026-08-29", Time: "09:00",
	}

	first, err := svc.Schedule(input)
	require.NoError(t, err)
	_, err = svc.Cancel(first.ID)
	require.NoError(t, err)

	// The cancelled appointment still counts toward the queue.
	second, err := svc.Schedule(input)
	require.NoError(t, err)
	assert.Equal(t, 2, second.QueueNumber)
}

func TestScheduleRejectsUnknownPatient(t *testing.T) {
	store := newTestStore(t)
	svc := services.NewAppointmentService(store, nopLogger())
	seedStaff(t, store, "USR002", "drjohn", models.RoleDoctor)

	_, err := svc.Schedule(services.ScheduleInput{
		PatientID: "missing", DoctorID: "USR002", Poli: "Poli Umum", Date: "2026-08-29",
	})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestScheduleRejectsNonDoctor(t *testing.T) {
	store := newTestStore(t)
	svc := services.NewAppointmentService(store, nopLogger())
	patient := seedPatient(t, store, "P1", "Budi Santoso")
	nurse := seedStaff(t, store, "USR003", "nurse1", models.RoleNurse)

	_, err := svc.Schedule(services.ScheduleInput{
		PatientID: patient.ID, DoctorID: nurse.ID, Poli: "Poli Umum", Date: "2026-08-29",
	})
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestStartAndCancelTransitions(t *testing.T) {
	store := newTestStore(t)
	svc := services.NewAppointmentService(store, nopLogger())
	patient := seedPatient(t, store, "P1", "Budi Santoso")
	doctor := seedStaff(t, store, "USR002", "drjohn", models.RoleDoctor)
	appointment := seedAppointment(t, store, "APT001", patient, doctor, models.AppointmentWaiting)

	started, err := svc.Start(appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentInProgress, started.Status)

	// Starting twice is rejected.
	_, err = svc.Start(appointment.ID)
	assert.ErrorIs(t, err, services.ErrInvalidTransition)

	// An in-progress appointment may still be cancelled.
	cancelled, err := svc.Cancel(appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentCancelled, cancelled.Status)

	// Terminal states reject every transition.
	_, err = svc.Start(appointment.ID)
	assert.ErrorIs(t, err, services.ErrInvalidTransition)
	_, err = svc.Cancel(appointment.ID)
	assert.ErrorIs(t, err, services.ErrInvalidTransition)
}

func TestStartUnknownAppointment(t *testing.T) {
	store := newTestStore(t)
	svc := services.NewAppointmentService(store, nopLogger())

	_, err := svc.Start("missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
