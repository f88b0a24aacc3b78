package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"clinic-app-server/internal/models"
	"clinic-app-server/internal/storage"
	"clinic-app-server/internal/utils"
)

// PatientHandler handles patient registration and administration.
type PatientHandler struct {
	Store *storage.Store
}

// NewPatientHandler creates a new PatientHandler.
func NewPatientHandler(store *storage.Store) *PatientHandler {
	return &PatientHandler{Store: store}
}

// CreatePatientRequest represents the request body for registering a patient.
type CreatePatientRequest struct {
	Name             string `json:"name" binding:"required"`
	Age              int    `json:"age" binding:"required,min=0"`
	Gender           string `json:"gender" binding:"required"`
	Address          string `json:"address" binding:"required"`
	Phone            string `json:"phone" binding:"required"`
	Email            string `json:"email"`
	NIK              string `json:"nik" binding:"required"`
	BloodType        string `json:"bloodType"`
	Allergies        string `json:"allergies"`
	EmergencyContact string `json:"emergencyContact"`
}

// CreatePatient registers a new patient.
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var req CreatePatientRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	patient := models.Patient{
		ID:               uuid.NewString(),
		Name:             req.Name,
		Age:              req.Age,
		Gender:           req.Gender,
		Address:          req.Address,
		Phone:            req.Phone,
		Email:            req.Email,
		NIK:              req.NIK,
		RegistrationDate: todayStamp(),
		BloodType:        req.BloodType,
		Allergies:        req.Allergies,
		EmergencyContact: req.EmergencyContact,
	}
	created, err := storage.Create(h.Store, storage.KeyPatients, patient)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, "Patient registered successfully", created)
}

// GetPatients returns all registered patients.
func (h *PatientHandler) GetPatients(c *gin.Context) {
	patients, err := storage.GetAll[models.Patient](h.Store, storage.KeyPatients)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, "Patients fetched successfully", patients)
}

// GetPatientByID returns a single patient.
func (h *PatientHandler) GetPatientByID(c *gin.Context) {
	patient, err := storage.GetByID[models.Patient](h.Store, storage.KeyPatients, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, "Patient fetched successfully", patient)
}

// UpdatePatient shallow-merges the submitted fields into a patient record.
func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	updates, ok := utils.BindPartial(c)
	if !ok {
		return
	}
	updated, err := storage.Update[models.Patient](h.Store, storage.KeyPatients, c.Param("id"), updates)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, "Patient updated successfully", updated)
}

// DeletePatient removes a patient record.
func (h *PatientHandler) DeletePatient(c *gin.Context) {
	removed, err := storage.Delete[models.Patient](h.Store, storage.KeyPatients, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !removed {
		utils.NotFound(c, "Patient not found")
		return
	}
	utils.Success(c, "Patient deleted successfully", nil)
}
