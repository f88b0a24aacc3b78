package services_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-app-server/internal/models"
	"clinic-app-server/internal/services"
	"clinic-app-server/internal/storage"
)

func outpatientInput() services.ExaminationInput {
	return services.ExaminationInput{
		Examination: "Tenggorokan merah, tonsil membesar",
		Diagnosis:   "Faringitis akut",
		Treatment:   "Istirahat dan obat simptomatik",
		Notes:       "Kontrol bila tidak membaik",
		CareStatus:  models.CareOutpatient,
	}
}

func TestCompleteOutpatient(t *testing.T) {
	store := newTestStore(t)
	svc := services.NewExaminationService(store, nopLogger())
	patient := seedPatient(t, store, "P1", "Budi Santoso")
	doctor := seedStaff(t, store, "USR002", "drjohn", models.RoleDoctor)
	appointment := seedAppointment(t, store, "APT001", patient, doctor, models.AppointmentInProgress)

	result, err := svc.Complete(appointment.ID, doctor, outpatientInput())
	require.NoError(t, err)

	assert.Equal(t, models.AppointmentCompleted, result.Appointment.Status)
	assert.NotEmpty(t, result.Appointment.CompletedAt)
	assert.Equal(t, "Faringitis akut", result.MedicalRecord.Diagnosis)
	assert.Equal(t, appointment.Complaint, result.MedicalRecord.Complaint)
	assert.Equal(t, models.CareOutpatient, result.MedicalRecord.CareStatus)
	assert.Equal(t, doctor.Name, result.MedicalRecord.DoctorName)
	assert.Contains(t, result.MedicalNote.Notes, "Rawat Jalan")
	assert.Nil(t, result.Inpatient)
	assert.Nil(t, result.Referral)

	inpatients, err := storage.GetAll[models.Inpatient](store, storage.KeyInpatients)
	require.NoError(t, err)
	assert.Empty(t, inpatients)
	referrals, err := storage.GetAll[models.Referral](store, storage.KeyReferrals)
	require.NoError(t, err)
	assert.Empty(t, referrals)
}

func TestCompleteInpatientCreatesAdmission(t *testing.T) {
	store := newTestStore(t)
	svc := services.NewExaminationService(store, nopLogger())
	patient := seedPatient(t, store, "P1", "Budi Santoso")
	doctor := seedStaff(t, store, "USR002", "drjohn", models.RoleDoctor)
	appointment := seedAppointment(t, store, "APT001", patient, doctor, models.AppointmentInProgress)

	input := outpatientInput()
	input.CareStatus = models.CareInpatient
	input.RoomType = models.RoomClass2
	input.InpatientNotes = "Observasi 2x24 jam"

	result, err := svc.Complete(appointment.ID, doctor, input)
	require.NoError(t, err)

	require.NotNil(t, result.Inpatient)
	assert.Equal(t, models.InpatientActive, result.Inpatient.Status)
	assert.Equal(t, models.RoomClass2, result.Inpatient.RoomType)
	assert.Equal(t, patient.Name, result.Inpatient.PatientName)
	assert.Equal(t, "Observasi 2x24 jam", result.Inpatient.Notes)
	assert.Regexp(t, regexp.MustCompile(`^[1-3]\d\d[A-C]$`), result.Inpatient.RoomNumber)
	assert.Equal(t, models.AppointmentCompleted, result.Appointment.Status)

	inpatients, err := storage.GetAll[models.Inpatient](store, storage.KeyInpatients)
	require.NoError(t, err)
	require.Len(t, inpatients, 1)
}

func TestCompleteInpatientRequiresRoomType(t *testing.T) {
	store := newTestStore(t)
	svc := services.NewExaminationService(store, nopLogger())
	patient := seedPatient(t, store, "P1", "Budi Santoso")
	doctor := seedStaff(t, store, "USR002", "drjohn", models.RoleDoctor)
	appointment := seedAppointment(t, store, "APT001", patient, doctor, models.AppointmentInProgress)

	input := outpatientInput()
	input.CareStatus = models.CareInpatient

	_, err := svc.Complete(appointment.ID, doctor, input)
	assert.ErrorIs(t, err, services.ErrValidation)

	// Validation failures leave no partial state behind.
	got, err := storage.GetByID[models.Appointment](store, storage.KeyAppointments, appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentInProgress, got.Status)
	records, err := storage.GetAll[models.MedicalRecord](store, storage.KeyMedicalRecords)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCompleteReferralCreatesPendingReferral(t *testing.T) {
	store := newTestStore(t)
	svc := services.NewExaminationService(store, nopLogger())
	patient := seedPatient(t, store, "P1", "Budi Santoso")
	doctor := seedStaff(t, store, "USR002", "drjohn", models.RoleDoctor)
	appointment := seedAppointment(t, store, "APT001", patient, doctor, models.AppointmentInProgress)

	input := outpatientInput()
	input.CareStatus = models.CareReferral
	input.ReferralHospital = "RSUD Kota"
	input.ReferralReason = "Perlu pemeriksaan spesialis"

	result, err := svc.Complete(appointment.ID, doctor, input)
	require.NoError(t, err)

	require.NotNil(t, result.Referral)
	assert.Equal(t, models.ReferralPending, result.Referral.Status)
	assert.Equal(t, "RSUD Kota", result.Referral.ToHospital)
	assert.Equal(t, "PUSKESMAS MKP KELOMPOK 6", result.Referral.FromHospital)
	assert.Equal(t, models.UrgencyNormal, result.Referral.Urgency)
	assert.Nil(t, result.Inpatient)
}

func TestCompleteReferralRequiresDestinationAndReason(t *testing.T) {
	store := newTestStore(t)
	svc := services.NewExaminationService(store, nopLogger())
	patient := seedPatient(t, store, "P1", "Budi Santoso")
	doctor := seedStaff(t, store, "USR002", "drjohn", models.RoleDoctor)
	appointment := seedAppointment(t, store, "APT001", patient, doctor, models.AppointmentInProgress)

	input := outpatientInput()
	input.CareStatus = models.CareReferral
	input.ReferralHospital = "RSUD Kota"

	_, err := svc.Complete(appointment.ID, doctor, input)
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestCompleteUsesStoredClinicNameOnReferrals(t *testing.T) {
	store := newTestStore(t)
	svc := services.NewExaminationService(store, nopLogger())
	patient := seedPatient(t, store, "P1", "Budi Santoso")
	doctor := seedStaff(t, store, "USR002", "drjohn", models.RoleDoctor)
	appointment := seedAppointment(t, store, "APT001", patient, doctor, models.AppointmentInProgress)
	_, err := storage.Create(store, storage.KeyHospital, models.Hospital{ID: "HSP001", Name: "Klinik Sehat"})
	require.NoError(t, err)

	input := outpatientInput()
	input.CareStatus = models.CareReferral
	input.ReferralHospital = "RSUD Kota"
	input.ReferralReason = "Perlu pemeriksaan spesialis"

	result, err := svc.Complete(appointment.ID, doctor, input)
	require.NoError(t, err)
	assert.Equal(t, "Klinik Sehat", result.Referral.FromHospital)
}

func TestCompleteRequiresInProgressAppointment(t *testing.T) {
	store := newTestStore(t)
	svc := services.NewExaminationService(store, nopLogger())
	patient := seedPatient(t, store, "P1", "Budi Santoso")
	doctor := seedStaff(t, store, "USR002", "drjohn", models.RoleDoctor)
	appointment := seedAppointment(t, store, "APT001", patient, doctor, models.AppointmentWaiting)

	_, err := svc.Complete(appointment.ID, doctor, outpatientInput())
	assert.ErrorIs(t, err, services.ErrInvalidTransition)
}

func TestCompleteRejectsNonDoctor(t *testing.T) {
	store := newTestStore(t)
	svc := services.NewExaminationService(store, nopLogger())
	patient := seedPatient(t, store, "P1", "Budi Santoso")
	doctor := seedStaff(t, store, "USR002", "drjohn", models.RoleDoctor)
	nurse := seedStaff(t, store, "USR003", "nurse1", models.RoleNurse)
	appointment := seedAppointment(t, store, "APT001", patient, doctor, models.AppointmentInProgress)

	_, err := svc.Complete(appointment.ID, nurse, outpatientInput())
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestCompleteRequiresDiagnosisAndTreatment(t *testing.T) {
	store := newTestStore(t)
	svc := services.NewExaminationService(store, nopLogger())
	patient := seedPatient(t, store, "P1", "Budi Santoso")
	doctor := seedStaff(t, store, "USR002", "drjohn", models.RoleDoctor)
	appointment := seedAppointment(t, store, "APT001", patient, doctor, models.AppointmentInProgress)

	input := outpatientInput()
	input.Diagnosis = "   "

	_, err := svc.Complete(appointment.ID, doctor, input)
	assert.ErrorIs(t, err, services.ErrValidation)
}
