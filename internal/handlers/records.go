package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"clinic-app-server/internal/models"
	"clinic-app-server/internal/services"
	"clinic-app-server/internal/storage"
	"clinic-app-server/internal/utils"
)

// MedicalRecordHandler handles clinical documentation: examination
// completion, medical records and medical notes.
type MedicalRecordHandler struct {
	Store       *storage.Store
	Examination *services.ExaminationService
}

// NewMedicalRecordHandler creates a new MedicalRecordHandler.
func NewMedicalRecordHandler(store *storage.Store, examination *services.ExaminationService) *MedicalRecordHandler {
	return &MedicalRecordHandler{Store: store, Examination: examination}
}

// CompleteExaminationRequest represents the examination form submission.
type CompleteExaminationRequest struct {
	BloodPressure string   `json:"bloodPressure"`
	HeartRate     *int     `json:"heartRate"`
	Temperature   *float64 `json:"temperature"`
	Respiration   *int     `json:"respiration"`
	Weight        *float64 `json:"weight"`
	Height        *float64 `json:"height"`

	Examination     string `json:"examination"`
	Diagnosis       string `json:"diagnosis" binding:"required"`
	Treatment       string `json:"treatment" binding:"required"`
	Notes           string `json:"notes"`
	Recommendations string `json:"recommendations"`
	FollowUpDate    string `json:"followUpDate"`
	FollowUpNotes   string `json:"followUpNotes"`

	CareStatus models.CareStatus `json:"careStatus" binding:"required,oneof=rawat_jalan rawat_inap rujukan"`

	RoomType       string `json:"roomType"`
	InpatientNotes string `json:"inpatientNotes"`

	ReferralHospital string                 `json:"referralHospital"`
	ReferralAddress  string                 `json:"referralAddress"`
	ReferralPhone    string                 `json:"referralPhone"`
	ReferralType     string                 `json:"referralType"`
	ReferralReason   string                 `json:"referralReason"`
	ReferralUrgency  models.ReferralUrgency `json:"referralUrgency"`
	ReferralNotes    string                 `json:"referralNotes"`
}

// CompleteExamination finishes the examination of an appointment, creating
// the medical record and note plus the inpatient admission or referral the
// chosen care status requires.
func (h *MedicalRecordHandler) CompleteExamination(c *gin.Context) {
	var req CompleteExaminationRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	doctor, ok := currentUser(c, h.Store)
	if !ok {
		return
	}
	if doctor.Role != models.RoleDoctor {
		utils.Forbidden(c, "Anda tidak memiliki akses untuk melakukan tindakan ini")
		return
	}

	result, err := h.Examination.Complete(c.Param("id"), doctor, services.ExaminationInput{
		VitalSigns: models.RecordedVitals{
			BloodPressure: req.BloodPressure,
			HeartRate:     req.HeartRate,
			Temperature:   req.Temperature,
			Respiration:   req.Respiration,
			Weight:        req.Weight,
			Height:        req.Height,
		},
		Examination:      req.Examination,
		Diagnosis:        req.Diagnosis,
		Treatment:        req.Treatment,
		Notes:            req.Notes,
		Recommendations:  req.Recommendations,
		FollowUp:         models.FollowUp{Date: req.FollowUpDate, Notes: req.FollowUpNotes},
		CareStatus:       req.CareStatus,
		RoomType:         req.RoomType,
		InpatientNotes:   req.InpatientNotes,
		ReferralHospital: req.ReferralHospital,
		ReferralAddress:  req.ReferralAddress,
		ReferralPhone:    req.ReferralPhone,
		ReferralType:     req.ReferralType,
		ReferralReason:   req.ReferralReason,
		ReferralUrgency:  req.ReferralUrgency,
		ReferralNotes:    req.ReferralNotes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, "Examination completed successfully", result)
}

// GetMedicalRecords returns medical records, optionally filtered by patientId.
func (h *MedicalRecordHandler) GetMedicalRecords(c *gin.Context) {
	records, err := storage.GetAll[models.MedicalRecord](h.Store, storage.KeyMedicalRecords)
	if err != nil {
		respondError(c, err)
		return
	}
	patientID := c.Query("patientId")
	filtered := make([]models.MedicalRecord, 0, len(records))
	for _, r := range records {
		if patientID != "" && r.PatientID != patientID {
			continue
		}
		filtered = append(filtered, r)
	}
	utils.Success(c, "Medical records fetched successfully", filtered)
}

// GetMedicalRecordByID returns a single medical record.
func (h *MedicalRecordHandler) GetMedicalRecordByID(c *gin.Context) {
	record, err := storage.GetByID[models.MedicalRecord](h.Store, storage.KeyMedicalRecords, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, "Medical record fetched successfully", record)
}

// CreateMedicalNoteRequest represents a standalone doctor note.
type CreateMedicalNoteRequest struct {
	PatientID       string `json:"patientId" binding:"required"`
	Diagnosis       string `json:"diagnosis" binding:"required"`
	Notes           string `json:"notes" binding:"required"`
	Recommendations string `json:"recommendations"`
}

// CreateMedicalNote stores a standalone note by the authenticated doctor.
func (h *MedicalRecordHandler) CreateMedicalNote(c *gin.Context) {
	var req CreateMedicalNoteRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	doctor, ok := currentUser(c, h.Store)
	if !ok {
		return
	}
	if doctor.Role != models.RoleDoctor {
		utils.Forbidden(c, "Only doctors may write medical notes")
		return
	}

	patient, err := storage.GetByID[models.Patient](h.Store, storage.KeyPatients, req.PatientID)
	if err != nil {
		respondError(c, err)
		return
	}

	note := models.MedicalNote{
		ID:              "MN" + uuid.NewString(),
		PatientID:       patient.ID,
		PatientName:     patient.Name,
		Date:            todayStamp(),
		Diagnosis:       req.Diagnosis,
		Notes:           req.Notes,
		Recommendations: req.Recommendations,
		DoctorID:        doctor.ID,
		DoctorName:      doctor.Name,
	}
	created, err := storage.Create(h.Store, storage.KeyMedicalNotes, note)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, "Medical note created successfully", created)
}

// GetMedicalNotes returns medical notes, optionally filtered by patientId.
func (h *MedicalRecordHandler) GetMedicalNotes(c *gin.Context) {
	notes, err := storage.GetAll[models.MedicalNote](h.Store, storage.KeyMedicalNotes)
	if err != nil {
		respondError(c, err)
		return
	}
	patientID := c.Query("patientId")
	filtered := make([]models.MedicalNote, 0, len(notes))
	for _, n := range notes {
		if patientID != "" && n.PatientID != patientID {
			continue
		}
		filtered = append(filtered, n)
	}
	utils.Success(c, "Medical notes fetched successfully", filtered)
}
