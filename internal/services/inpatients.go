package services

import (
	"fmt"

	"github.com/rs/zerolog"

	"clinic-app-server/internal/models"
	"clinic-app-server/internal/storage"
)

// InpatientService owns ward admissions after they are created by the
// examination workflow.
type InpatientService struct {
	store *storage.Store
	log   zerolog.Logger
}

// NewInpatientService creates an InpatientService.
func NewInpatientService(store *storage.Store, log zerolog.Logger) *InpatientService {
	return &InpatientService{store: store, log: log}
}

// Discharge releases an active admission, stamping the discharge date and
// time. TotalDays is left as stored; it is an estimate, not a computed value.
func (s *InpatientService) Discharge(id string) (models.Inpatient, error) {
	inpatient, err := storage.GetByID[models.Inpatient](s.store, storage.KeyInpatients, id)
	if err != nil {
		return models.Inpatient{}, err
	}
	if inpatient.Status != models.InpatientActive {
		return models.Inpatient{}, fmt.Errorf("inpatient is %s: %w", inpatient.Status, ErrInvalidTransition)
	}
	updated, err := storage.Update[models.Inpatient](s.store, storage.KeyInpatients, id, map[string]any{
		"status":        models.InpatientDischarged,
		"dischargeDate": today(),
		"dischargeTime": clock(),
	})
	countOutcome("inpatient_discharge", err)
	if err != nil {
		return models.Inpatient{}, err
	}
	s.log.Info().Str("inpatient", id).Msg("inpatient discharged")
	return updated, nil
}
