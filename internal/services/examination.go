package services

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"clinic-app-server/internal/models"
	"clinic-app-server/internal/storage"
)

// Fallback when no hospital profile has been stored yet.
const defaultClinicName = "PUSKESMAS MKP KELOMPOK 6"

// ExaminationService completes doctor examinations: it writes the medical
// record and note, branches into an inpatient admission or a referral per
// the chosen care status, and closes the appointment.
type ExaminationService struct {
	store *storage.Store
	log   zerolog.Logger
}

// NewExaminationService creates an ExaminationService.
func NewExaminationService(store *storage.Store, log zerolog.Logger) *ExaminationService {
	return &ExaminationService{store: store, log: log}
}

// ExaminationInput carries the examination form fields.
type ExaminationInput struct {
	VitalSigns      models.RecordedVitals
	Examination     string
	Diagnosis       string
	Treatment       string
	Notes           string
	Recommendations string
	FollowUp        models.FollowUp
	CareStatus      models.CareStatus

	// rawat_inap
	RoomType       string
	InpatientNotes string

	// rujukan
	ReferralHospital string
	ReferralAddress  string
	ReferralPhone    string
	ReferralType     string
	ReferralReason   string
	ReferralUrgency  models.ReferralUrgency
	ReferralNotes    string
}

// ExaminationResult reports everything a completed examination produced.
type ExaminationResult struct {
	MedicalRecord models.MedicalRecord `json:"medicalRecord"`
	MedicalNote   models.MedicalNote   `json:"medicalNote"`
	Appointment   models.Appointment   `json:"appointment"`
	Inpatient     *models.Inpatient    `json:"inpatient,omitempty"`
	Referral      *models.Referral     `json:"referral,omitempty"`
}

// Complete finishes the examination of an in-progress appointment. All
// validation happens before the first write; a validation error leaves no
// partial state behind. The multi-collection write itself is sequential and
// not transactional.
func (s *ExaminationService) Complete(appointmentID string, doctor models.User, in ExaminationInput) (ExaminationResult, error) {
	var result ExaminationResult

	if doctor.Role != models.RoleDoctor {
		return result, fmt.Errorf("only doctors may complete examinations: %w", ErrValidation)
	}
	if strings.TrimSpace(in.Diagnosis) == "" || strings.TrimSpace(in.Treatment) == "" {
		return result, fmt.Errorf("diagnosis dan tindakan wajib diisi: %w", ErrValidation)
	}
	switch in.CareStatus {
	case models.CareOutpatient:
	case models.CareInpatient:
		if in.RoomType == "" {
			return result, fmt.Errorf("tipe kamar wajib diisi untuk rawat inap: %w", ErrValidation)
		}
	case models.CareReferral:
		if in.ReferralHospital == "" || in.ReferralReason == "" {
			return result, fmt.Errorf("rumah sakit tujuan dan alasan rujukan wajib diisi: %w", ErrValidation)
		}
	default:
		return result, fmt.Errorf("unknown care status %q: %w", in.CareStatus, ErrValidation)
	}

	appointment, err := storage.GetByID[models.Appointment](s.store, storage.KeyAppointments, appointmentID)
	if err != nil {
		return result, err
	}
	if appointment.Status != models.AppointmentInProgress {
		return result, fmt.Errorf("appointment is %s: %w", appointment.Status, ErrInvalidTransition)
	}

	date, timeOfDay := today(), clock()

	record := models.MedicalRecord{
		ID:              "MR" + uuid.NewString(),
		PatientID:       appointment.PatientID,
		PatientName:     appointment.PatientName,
		AppointmentID:   appointment.ID,
		Date:            date,
		Time:            timeOfDay,
		Complaint:       appointment.Complaint,
		VitalSigns:      in.VitalSigns,
		Examination:     in.Examination,
		Diagnosis:       in.Diagnosis,
		Treatment:       in.Treatment,
		Notes:           in.Notes,
		Recommendations: in.Recommendations,
		FollowUp:        in.FollowUp,
		DoctorID:        doctor.ID,
		DoctorName:      doctor.Name,
		Status:          "completed",
		CareStatus:      in.CareStatus,
		CareDetails: models.CareDetails{
			RoomType:         in.RoomType,
			ReferralHospital: in.ReferralHospital,
			ReferralReason:   in.ReferralReason,
		},
	}
	if result.MedicalRecord, err = storage.Create(s.store, storage.KeyMedicalRecords, record); err != nil {
		return result, err
	}

	switch in.CareStatus {
	case models.CareInpatient:
		inpatient := models.Inpatient{
			ID:            "INP" + uuid.NewString(),
			PatientID:     appointment.PatientID,
			PatientName:   appointment.PatientName,
			AppointmentID: appointment.ID,
			AdmissionDate: date,
			AdmissionTime: timeOfDay,
			RoomNumber:    randomRoomNumber(),
			RoomType:      in.RoomType,
			Diagnosis:     in.Diagnosis,
			DoctorID:      doctor.ID,
			DoctorName:    doctor.Name,
			Status:        models.InpatientActive,
			Notes:         firstNonEmpty(in.InpatientNotes, in.Notes),
		}
		created, err := storage.Create(s.store, storage.KeyInpatients, inpatient)
		if err != nil {
			return result, err
		}
		result.Inpatient = &created

	case models.CareReferral:
		urgency := in.ReferralUrgency
		if urgency == "" {
			urgency = models.UrgencyNormal
		}
		referral := models.Referral{
			ID:                "REF" + uuid.NewString(),
			PatientID:         appointment.PatientID,
			PatientName:       appointment.PatientName,
			AppointmentID:     appointment.ID,
			ReferralDate:      date,
			ReferralTime:      timeOfDay,
			FromHospital:      s.clinicName(),
			ToHospital:        in.ReferralHospital,
			ToHospitalAddress: in.ReferralAddress,
			ToHospitalPhone:   in.ReferralPhone,
			ReferralType:      in.ReferralType,
			Diagnosis:         in.Diagnosis,
			Reason:            in.ReferralReason,
			Urgency:           urgency,
			DoctorID:          doctor.ID,
			DoctorName:        doctor.Name,
			Status:            models.ReferralPending,
			Notes:             firstNonEmpty(in.ReferralNotes, in.Notes),
		}
		created, err := storage.Create(s.store, storage.KeyReferrals, referral)
		if err != nil {
			return result, err
		}
		result.Referral = &created
	}

	result.Appointment, err = storage.Update[models.Appointment](s.store, storage.KeyAppointments, appointment.ID, map[string]any{
		"status":      models.AppointmentCompleted,
		"completedAt": time.Now().Format(time.RFC3339),
	})
	if err != nil {
		return result, err
	}

	note := models.MedicalNote{
		ID:              "MN" + uuid.NewString(),
		PatientID:       appointment.PatientID,
		PatientName:     appointment.PatientName,
		Date:            date,
		Diagnosis:       in.Diagnosis,
		Notes:           fmt.Sprintf("%s\n\nCatatan: %s\n\nStatus Perawatan: %s", in.Examination, in.Notes, careStatusLabel(in.CareStatus)),
		Recommendations: in.Recommendations,
		DoctorID:        doctor.ID,
		DoctorName:      doctor.Name,
	}
	if result.MedicalNote, err = storage.Create(s.store, storage.KeyMedicalNotes, note); err != nil {
		return result, err
	}

	countOutcome("examination_complete", nil)
	s.log.Info().Str("appointment", appointment.ID).Str("careStatus", string(in.CareStatus)).
		Msg("examination completed")
	return result, nil
}

func (s *ExaminationService) clinicName() string {
	hospitals, err := storage.GetAll[models.Hospital](s.store, storage.KeyHospital)
	if err != nil || len(hospitals) == 0 {
		return defaultClinicName
	}
	return hospitals[0].Name
}

// randomRoomNumber picks a ward room in the 100-399 range with wing A-C.
func randomRoomNumber() string {
	return fmt.Sprintf("%d%c", 100+rand.Intn(300), rune('A'+rand.Intn(3)))
}

func careStatusLabel(cs models.CareStatus) string {
	switch cs {
	case models.CareInpatient:
		return "Rawat Inap"
	case models.CareReferral:
		return "Rujukan"
	default:
		return "Rawat Jalan"
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
