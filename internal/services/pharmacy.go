package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"clinic-app-server/internal/models"
	"clinic-app-server/internal/storage"
)

// PharmacyService owns prescription creation and dispensing. Dispensing is
// the only operation that mutates medicine stock.
type PharmacyService struct {
	store *storage.Store
	log   zerolog.Logger
}

// NewPharmacyService creates a PharmacyService.
func NewPharmacyService(store *storage.Store, log zerolog.Logger) *PharmacyService {
	return &PharmacyService{store: store, log: log}
}

// PrescribeInput carries a new prescription issued from an appointment.
type PrescribeInput struct {
	AppointmentID string
	Medicines     []models.PrescriptionMedicine
	Notes         string
}

// Prescribe creates a pending prescription for an appointment. Every line
// must name an existing medicine, request a positive quantity, and be
// coverable by current stock.
func (s *PharmacyService) Prescribe(doctor models.User, in PrescribeInput) (models.Prescription, error) {
	if len(in.Medicines) == 0 {
		return models.Prescription{}, fmt.Errorf("at least one medicine is required: %w", ErrValidation)
	}
	appointment, err := storage.GetByID[models.Appointment](s.store, storage.KeyAppointments, in.AppointmentID)
	if err != nil {
		return models.Prescription{}, fmt.Errorf("appointment: %w", err)
	}

	lines := make([]models.PrescriptionMedicine, 0, len(in.Medicines))
	requested := map[string]int{}
	for _, line := range in.Medicines {
		if line.Quantity <= 0 {
			return models.Prescription{}, fmt.Errorf("quantity for %s must be positive: %w", line.MedicineID, ErrValidation)
		}
		medicine, err := storage.GetByID[models.Medicine](s.store, storage.KeyMedicines, line.MedicineID)
		if err != nil {
			return models.Prescription{}, fmt.Errorf("medicine %s: %w", line.MedicineID, err)
		}
		// Lines for the same medicine count against stock together.
		requested[line.MedicineID] += line.Quantity
		if medicine.Stock < requested[line.MedicineID] {
			return models.Prescription{}, fmt.Errorf("%s (tersedia %d, diminta %d): %w",
				medicine.Name, medicine.Stock, requested[line.MedicineID], ErrInsufficientStock)
		}
		line.MedicineName = medicine.Name
		lines = append(lines, line)
	}

	prescription := models.Prescription{
		ID:            "RX" + uuid.NewString(),
		AppointmentID: appointment.ID,
		PatientID:     appointment.PatientID,
		PatientName:   appointment.PatientName,
		DoctorID:      doctor.ID,
		DoctorName:    doctor.Name,
		Date:          today(),
		Medicines:     lines,
		Status:        models.PrescriptionPending,
		Notes:         in.Notes,
	}
	created, err := storage.Create(s.store, storage.KeyPrescriptions, prescription)
	countOutcome("prescribe", err)
	return created, err
}

// Dispense releases a pending prescription's medicines to the patient. All
// lines are verified against current stock before any decrement, so a
// prescription either dispenses completely or not at all and stock never
// goes negative. A prescription that is not pending is rejected with no
// effect on stock.
func (s *PharmacyService) Dispense(id string) (models.Prescription, error) {
	prescription, err := storage.GetByID[models.Prescription](s.store, storage.KeyPrescriptions, id)
	if err != nil {
		return models.Prescription{}, err
	}
	switch prescription.Status {
	case models.PrescriptionPending:
	case models.PrescriptionDispensed:
		return models.Prescription{}, fmt.Errorf("prescription %s: %w", id, ErrAlreadyDispensed)
	default:
		return models.Prescription{}, fmt.Errorf("prescription %s is %s: %w", id, prescription.Status, ErrInvalidTransition)
	}

	// Sum the requested quantity per medicine first; a prescription may hold
	// several lines for the same medicine and they draw from the same stock.
	requested := map[string]int{}
	order := make([]string, 0, len(prescription.Medicines))
	for _, line := range prescription.Medicines {
		if _, seen := requested[line.MedicineID]; !seen {
			order = append(order, line.MedicineID)
		}
		requested[line.MedicineID] += line.Quantity
	}

	// Verify every medicine before touching stock.
	for _, id := range order {
		medicine, err := storage.GetByID[models.Medicine](s.store, storage.KeyMedicines, id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				// Medicine removed since prescribing; skipped at decrement
				// time as well.
				continue
			}
			return models.Prescription{}, err
		}
		if medicine.Stock < requested[id] {
			countOutcome("dispense", ErrInsufficientStock)
			return models.Prescription{}, fmt.Errorf("%s (tersedia %d, diminta %d): %w",
				medicine.Name, medicine.Stock, requested[id], ErrInsufficientStock)
		}
	}

	for _, id := range order {
		medicine, err := storage.GetByID[models.Medicine](s.store, storage.KeyMedicines, id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				continue
			}
			return models.Prescription{}, err
		}
		if _, err := storage.Update[models.Medicine](s.store, storage.KeyMedicines, medicine.ID,
			map[string]any{"stock": medicine.Stock - requested[id]}); err != nil {
			return models.Prescription{}, err
		}
	}

	updated, err := storage.Update[models.Prescription](s.store, storage.KeyPrescriptions, id, map[string]any{
		"status":      models.PrescriptionDispensed,
		"dispensedAt": time.Now().Format(time.RFC3339),
	})
	countOutcome("dispense", err)
	if err != nil {
		return models.Prescription{}, err
	}
	s.log.Info().Str("prescription", id).Int("lines", len(updated.Medicines)).Msg("prescription dispensed")
	return updated, nil
}

// LowStock lists medicines at or below their reorder threshold.
func (s *PharmacyService) LowStock() ([]models.Medicine, error) {
	medicines, err := storage.GetAll[models.Medicine](s.store, storage.KeyMedicines)
	if err != nil {
		return nil, err
	}
	var low []models.Medicine
	for _, m := range medicines {
		if m.LowStock() {
			low = append(low, m)
		}
	}
	return low, nil
}
