package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"clinic-app-server/internal/models"
	"clinic-app-server/internal/storage"
)

// NursingService owns nurse-authored observations and care tasks.
type NursingService struct {
	store *storage.Store
	log   zerolog.Logger
}

// NewNursingService creates a NursingService.
func NewNursingService(store *storage.Store, log zerolog.Logger) *NursingService {
	return &NursingService{store: store, log: log}
}

// VitalSignInput carries the measurements of an initial examination.
type VitalSignInput struct {
	PatientID     string
	BloodPressure string
	HeartRate     int
	Temperature   float64
	Respiration   int
	Weight        float64
	Height        float64
	Complaint     string
	Notes         string
}

// RecordVitalSign stores a vital-sign observation for a patient.
func (s *NursingService) RecordVitalSign(nurse models.User, in VitalSignInput) (models.VitalSign, error) {
	if nurse.Role != models.RoleNurse {
		return models.VitalSign{}, fmt.Errorf("only nurses may record vital signs: %w", ErrValidation)
	}
	patient, err := storage.GetByID[models.Patient](s.store, storage.KeyPatients, in.PatientID)
	if err != nil {
		return models.VitalSign{}, fmt.Errorf("patient: %w", err)
	}
	vital := models.VitalSign{
		ID:            "VS" + uuid.NewString(),
		PatientID:     patient.ID,
		PatientName:   patient.Name,
		Date:          today(),
		BloodPressure: in.BloodPressure,
		HeartRate:     in.HeartRate,
		Temperature:   in.Temperature,
		Respiration:   in.Respiration,
		Weight:        in.Weight,
		Height:        in.Height,
		Complaint:     in.Complaint,
		Notes:         in.Notes,
		NurseID:       nurse.ID,
		NurseName:     nurse.Name,
	}
	created, err := storage.Create(s.store, storage.KeyVitalSigns, vital)
	countOutcome("vital_sign", err)
	return created, err
}

// ActionInput carries a new nursing care task.
type ActionInput struct {
	PatientID   string
	ActionType  string
	Description string
}

// CreateAction registers a pending nursing action for a patient.
func (s *NursingService) CreateAction(nurse models.User, in ActionInput) (models.NursingAction, error) {
	if nurse.Role != models.RoleNurse {
		return models.NursingAction{}, fmt.Errorf("only nurses may create nursing actions: %w", ErrValidation)
	}
	patient, err := storage.GetByID[models.Patient](s.store, storage.KeyPatients, in.PatientID)
	if err != nil {
		return models.NursingAction{}, fmt.Errorf("patient: %w", err)
	}
	action := models.NursingAction{
		ID:          "NA" + uuid.NewString(),
		PatientID:   patient.ID,
		PatientName: patient.Name,
		Date:        today(),
		ActionType:  in.ActionType,
		Description: in.Description,
		NurseID:     nurse.ID,
		NurseName:   nurse.Name,
		Status:      models.NursingPending,
	}
	created, err := storage.Create(s.store, storage.KeyNursingActions, action)
	countOutcome("nursing_action_create", err)
	return created, err
}

// CompleteAction flips a pending nursing action to completed. It has no side
// effects on any other entity.
func (s *NursingService) CompleteAction(id string) (models.NursingAction, error) {
	action, err := storage.GetByID[models.NursingAction](s.store, storage.KeyNursingActions, id)
	if err != nil {
		return models.NursingAction{}, err
	}
	if action.Status != models.NursingPending {
		return models.NursingAction{}, fmt.Errorf("nursing action is %s: %w", action.Status, ErrInvalidTransition)
	}
	updated, err := storage.Update[models.NursingAction](s.store, storage.KeyNursingActions, id,
		map[string]any{"status": models.NursingCompleted})
	countOutcome("nursing_action_complete", err)
	if err != nil {
		return models.NursingAction{}, err
	}
	s.log.Info().Str("action", id).Msg("nursing action completed")
	return updated, nil
}
