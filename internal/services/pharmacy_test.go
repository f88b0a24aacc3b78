package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-app-server/internal/models"
	"clinic-app-server/internal/services"
	"clinic-app-server/internal/storage"
)

func TestPrescribeCreatesPendingPrescription(t *testing.T) {
	store := newTestStore(t)
	svc := services.NewPharmacyService(store, nopLogger())
	patient := seedPatient(t, store, "P1", "Budi Santoso")
	doctor := seedStaff(t, store, "USR002", "drjohn", models.RoleDoctor)
	appointment := seedAppointment(t, store, "APT001", patient, doctor, models.AppointmentInProgress)
	seedMedicine(t, store, "MED001", "Paracetamol 500mg", 150, 50)

	prescription, err := svc.Prescribe(doctor, services.PrescribeInput{
		AppointmentID: appointment.ID,
		Medicines: []models.PrescriptionMedicine{
			{MedicineID: "MED001", Quantity: 10, Dosage: "3x1"},
		},
		Notes: "Setelah makan",
	})
	require.NoError(t, err)

	assert.Equal(t, models.PrescriptionPending, prescription.Status)
	assert.Equal(t, patient.ID, prescription.PatientID)
	assert.Equal(t, patient.Name, prescription.PatientName)
	assert.Equal(t, doctor.Name, prescription.DoctorName)
	require.Len(t, prescription.Medicines, 1)
	assert.Equal(t, "Paracetamol 500mg", prescription.Medicines[0].MedicineName)

	// Prescribing alone never touches stock.
	medicine, err := storage.GetByID[models.Medicine](store, storage.KeyMedicines, "MED001")
	require.NoError(t, err)
	assert.Equal(t, 150, medicine.Stock)
}

func TestPrescribeValidatesLines(t *testing.T) {
	store := newTestStore(t)
	svc := services.NewPharmacyService(store, nopLogger())
	patient := seedPatient(t, store, "P1", "Budi Santoso")
	doctor := seedStaff(t, store, "USR002", "drjohn", models.RoleDoctor)
	appointment := seedAppointment(t, store, "APT001", patient, doctor, models.AppointmentInProgress)
	seedMedicine(t, store, "MED001", "Paracetamol 500mg", 150, 50)

	_, err := svc.Prescribe(doctor, services.PrescribeInput{AppointmentID: appointment.ID})
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = svc.Prescribe(doctor, services.PrescribeInput{
		AppointmentID: appointment.ID,
		Medicines:     []models.PrescriptionMedicine{{MedicineID: "MED001", Quantity: 0}},
	})
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = svc.Prescribe(doctor, services.PrescribeInput{
		AppointmentID: appointment.ID,
		Medicines:     []models.PrescriptionMedicine{{MedicineID: "missing", Quantity: 1}},
	})
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// 160 requested against 150 held.
	_, err = svc.Prescribe(doctor, services.PrescribeInput{
		AppointmentID: appointment.ID,
		Medicines:     []models.PrescriptionMedicine{{MedicineID: "MED001", Quantity: 160}},
	})
	assert.ErrorIs(t, err, services.ErrInsufficientStock)
}

func TestDispenseDecrementsStockAndFlipsStatus(t *testing.T) {
	store := newTestStore(t)
	svc := services.NewPharmacyService(store, nopLogger())
	patient := seedPatient(t, store, "P1", "Budi Santoso")
	doctor := seedStaff(t, store, "USR002", "drjohn", models.RoleDoctor)
	appointment := seedAppointment(t, store, "APT001", patient, doctor, models.AppointmentInProgress)
	seedMedicine(t, store, "MED001", "Paracetamol 500mg", 20, 5)

	prescription, err := svc.Prescribe(doctor, services.PrescribeInput{
		AppointmentID: appointment.ID,
		Medicines:     []models.PrescriptionMedicine{{MedicineID: "MED001", Quantity: 5, Dosage: "3x1"}},
	})
	require.NoError(t, err)

	dispensed, err := svc.Dispense(prescription.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PrescriptionDispensed, dispensed.Status)
	assert.NotEmpty(t, dispensed.DispensedAt)

	medicine, err := storage.GetByID[models.Medicine](store, storage.KeyMedicines, "MED001")
	require.NoError(t, err)
	assert.Equal(t, 15, medicine.Stock)
}

func TestDispenseTwiceIsRejected(t *testing.T) {
	store := newTestStore(t)
	svc := services.NewPharmacyService(store, nopLogger())
	patient := seedPatient(t, store, "P1", "Budi Santoso")
	doctor := seedStaff(t, store, "USR002", "drjohn", models.RoleDoctor)
	appointment := seedAppointment(t, store, "APT001", patient, doctor, models.AppointmentInProgress)
	seedMedicine(t, store, "MED001", "Paracetamol 500mg", 20, 5)

	prescription, err := svc.Prescribe(doctor, services.PrescribeInput{
		AppointmentID: appointment.ID,
		Medicines:     []models.PrescriptionMedicine{{MedicineID: "MED001", Quantity: 5}},
	})
	require.NoError(t, err)

	_, err = svc.Dispense(prescription.ID)
	require.NoError(t, err)

	_, err = svc.Dispense(prescription.ID)
	assert.ErrorIs(t, err, services.ErrAlreadyDispensed)

	// The second attempt must not decrement stock again.
	medicine, err := storage.GetByID[models.Medicine](store, storage.KeyMedicines, "MED001")
	require.NoError(t, err)
	assert.Equal(t, 15, medicine.Stock)
}

func TestDispenseInsufficientStockLeavesEverythingUntouched(t *testing.T) {
	store := newTestStore(t)
	svc := services.NewPharmacyService(store, nopLogger())
	patient := seedPatient(t, store, "P1", "Budi Santoso")
	doctor := seedStaff(t, store, "USR002", "drjohn", models.RoleDoctor)
	appointment := seedAppointment(t, store, "APT001", patient, doctor, models.AppointmentInProgress)
	seedMedicine(t, store, "MED001", "Paracetamol 500mg", 150, 50)
	seedMedicine(t, store, "MED002", "Amoxicillin 500mg", 50, 20)

	prescription, err := svc.Prescribe(doctor, services.PrescribeInput{
		AppointmentID: appointment.ID,
		Medicines: []models.PrescriptionMedicine{
			{MedicineID: "MED001", Quantity: 100},
			{MedicineID: "MED002", Quantity: 40},
		},
	})
	require.NoError(t, err)

	// Stock of the second line drops below the requested quantity before the
	// pharmacist gets to it.
	_, err = storage.Update[models.Medicine](store, storage.KeyMedicines, "MED002",
		map[string]any{"stock": 30})
	require.NoError(t, err)

	_, err = svc.Dispense(prescription.ID)
	assert.ErrorIs(t, err, services.ErrInsufficientStock)

	// No line was decremented, not even the coverable first one.
	first, err := storage.GetByID[models.Medicine](store, storage.KeyMedicines, "MED001")
	require.NoError(t, err)
	assert.Equal(t, 150, first.Stock)
	second, err := storage.GetByID[models.Medicine](store, storage.KeyMedicines, "MED002")
	require.NoError(t, err)
	assert.Equal(t, 30, second.Stock)

	// And the prescription stays pending so it can be retried after restock.
	got, err := storage.GetByID[models.Prescription](store, storage.KeyPrescriptions, prescription.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PrescriptionPending, got.Status)
}

func TestDispenseSkipsRemovedMedicines(t *testing.T) {
	store := newTestStore(t)
	svc := services.NewPharmacyService(store, nopLogger())
	patient := seedPatient(t, store, "P1", "Budi Santoso")
	doctor := seedStaff(t, store, "USR002", "drjohn", models.RoleDoctor)
	appointment := seedAppointment(t, store, "APT001", patient, doctor, models.AppointmentInProgress)
	seedMedicine(t, store, "MED001", "Paracetamol 500mg", 20, 5)
	seedMedicine(t, store, "MED002", "Amoxicillin 500mg", 50, 20)

	prescription, err := svc.Prescribe(doctor, services.PrescribeInput{
		AppointmentID: appointment.ID,
		Medicines: []models.PrescriptionMedicine{
			{MedicineID: "MED001", Quantity: 5},
			{MedicineID: "MED002", Quantity: 10},
		},
	})
	require.NoError(t, err)

	// MED002 is deleted from the catalog before dispensing.
	removed, err := storage.Delete[models.Medicine](store, storage.KeyMedicines, "MED002")
	require.NoError(t, err)
	require.True(t, removed)

	dispensed, err := svc.Dispense(prescription.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PrescriptionDispensed, dispensed.Status)

	medicine, err := storage.GetByID[models.Medicine](store, storage.KeyMedicines, "MED001")
	require.NoError(t, err)
	assert.Equal(t, 15, medicine.Stock)
}

func TestPrescribeSumsDuplicateLinesAgainstStock(t *testing.T) {
	store := newTestStore(t)
	svc := services.NewPharmacyService(store, nopLogger())
	patient := seedPatient(t, store, "P1", "Budi Santoso")
	doctor := seedStaff(t, store, "USR002", "drjohn", models.RoleDoctor)
	appointment := seedAppointment(t, store, "APT001", patient, doctor, models.AppointmentInProgress)
	seedMedicine(t, store, "MED001", "Paracetamol 500mg", 150, 50)

	// Each line fits on its own but their sum exceeds stock.
	_, err := svc.Prescribe(doctor, services.PrescribeInput{
		AppointmentID: appointment.ID,
		Medicines: []models.PrescriptionMedicine{
			{MedicineID: "MED001", Quantity: 100, Dosage: "3x1"},
			{MedicineID: "MED001", Quantity: 100, Dosage: "1x1 malam"},
		},
	})
	assert.ErrorIs(t, err, services.ErrInsufficientStock)
}

func TestDispenseSumsDuplicateLinesAgainstStock(t *testing.T) {
	store := newTestStore(t)
	svc := services.NewPharmacyService(store, nopLogger())
	seedPatient(t, store, "P1", "Budi Santoso")
	seedMedicine(t, store, "MED001", "Paracetamol 500mg", 150, 50)

	// A stored prescription may carry duplicate lines whose sum no longer
	// fits; it must be rejected whole, never dispensed into negative stock.
	prescription, err := storage.Create(store, storage.KeyPrescriptions, models.Prescription{
		ID: "RXDUP", PatientID: "P1", Status: models.PrescriptionPending,
		Medicines: []models.PrescriptionMedicine{
			{MedicineID: "MED001", MedicineName: "Paracetamol 500mg", Quantity: 100, Dosage: "3x1"},
			{MedicineID: "MED001", MedicineName: "Paracetamol 500mg", Quantity: 100, Dosage: "1x1 malam"},
		},
	})
	require.NoError(t, err)

	_, err = svc.Dispense(prescription.ID)
	assert.ErrorIs(t, err, services.ErrInsufficientStock)

	medicine, err := storage.GetByID[models.Medicine](store, storage.KeyMedicines, "MED001")
	require.NoError(t, err)
	assert.Equal(t, 150, medicine.Stock)
	assert.GreaterOrEqual(t, medicine.Stock, 0)

	got, err := storage.GetByID[models.Prescription](store, storage.KeyPrescriptions, prescription.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PrescriptionPending, got.Status)
}

func TestDispenseDecrementsDuplicateLinesByTheirSum(t *testing.T) {
	store := newTestStore(t)
	svc := services.NewPharmacyService(store, nopLogger())
	patient := seedPatient(t, store, "P1", "Budi Santoso")
	doctor := seedStaff(t, store, "USR002", "drjohn", models.RoleDoctor)
	appointment := seedAppointment(t, store, "APT001", patient, doctor, models.AppointmentInProgress)
	seedMedicine(t, store, "MED001", "Paracetamol 500mg", 150, 50)

	prescription, err := svc.Prescribe(doctor, services.PrescribeInput{
		AppointmentID: appointment.ID,
		Medicines: []models.PrescriptionMedicine{
			{MedicineID: "MED001", Quantity: 50, Dosage: "3x1"},
			{MedicineID: "MED001", Quantity: 40, Dosage: "1x1 malam"},
		},
	})
	require.NoError(t, err)

	dispensed, err := svc.Dispense(prescription.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PrescriptionDispensed, dispensed.Status)

	medicine, err := storage.GetByID[models.Medicine](store, storage.KeyMedicines, "MED001")
	require.NoError(t, err)
	assert.Equal(t, 60, medicine.Stock)
}

func TestLowStock(t *testing.T) {
	store := newTestStore(t)
	svc := services.NewPharmacyService(store, nopLogger())
	seedMedicine(t, store, "MED001", "Paracetamol 500mg", 150, 50)
	seedMedicine(t, store, "MED002", "Amoxicillin 500mg", 20, 30)
	seedMedicine(t, store, "MED003", "OBH Combi", 30, 30)

	low, err := svc.LowStock()
	require.NoError(t, err)
	require.Len(t, low, 2)
	assert.Equal(t, "MED002", low[0].ID)
	assert.Equal(t, "MED003", low[1].ID)
}
