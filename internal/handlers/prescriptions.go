package handlers

import (
	"github.com/gin-gonic/gin"

	"clinic-app-server/internal/models"
	"clinic-app-server/internal/services"
	"clinic-app-server/internal/storage"
	"clinic-app-server/internal/utils"
)

// PrescriptionHandler handles prescriptions: creation by doctors, dispensing
// by pharmacists.
type PrescriptionHandler struct {
	Store    *storage.Store
	Pharmacy *services.PharmacyService
}

// NewPrescriptionHandler creates a new PrescriptionHandler.
func NewPrescriptionHandler(store *storage.Store, pharmacy *services.PharmacyService) *PrescriptionHandler {
	return &PrescriptionHandler{Store: store, Pharmacy: pharmacy}
}

// PrescriptionLineRequest is one requested medicine line.
type PrescriptionLineRequest struct {
	MedicineID string `json:"medicineId" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,min=1"`
	Dosage     string `json:"dosage" binding:"required"`
}

// CreatePrescriptionRequest represents the request body for a new prescription.
type CreatePrescriptionRequest struct {
	AppointmentID string                    `json:"appointmentId" binding:"required"`
	Medicines     []PrescriptionLineRequest `json:"medicines" binding:"required,min=1,dive"`
	Notes         string                    `json:"notes"`
}

// CreatePrescription issues a pending prescription for an appointment.
// Only the authenticated doctor may issue one.
func (h *PrescriptionHandler) CreatePrescription(c *gin.Context) {
	var req CreatePrescriptionRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	doctor, ok := currentUser(c, h.Store)
	if !ok {
		return
	}
	if doctor.Role != models.RoleDoctor {
		utils.Forbidden(c, "Only doctors may issue prescriptions")
		return
	}

	lines := make([]models.PrescriptionMedicine, len(req.Medicines))
	for i, l := range req.Medicines {
		lines[i] = models.PrescriptionMedicine{
			MedicineID: l.MedicineID,
			Quantity:   l.Quantity,
			Dosage:     l.Dosage,
		}
	}

	prescription, err := h.Pharmacy.Prescribe(doctor, services.PrescribeInput{
		AppointmentID: req.AppointmentID,
		Medicines:     lines,
		Notes:         req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, "Prescription created successfully", prescription)
}

// GetPrescriptions returns prescriptions, optionally filtered by status or
// patientId query parameters.
func (h *PrescriptionHandler) GetPrescriptions(c *gin.Context) {
	prescriptions, err := storage.GetAll[models.Prescription](h.Store, storage.KeyPrescriptions)
	if err != nil {
		respondError(c, err)
		return
	}

	status := c.Query("status")
	patientID := c.Query("patientId")
	filtered := make([]models.Prescription, 0, len(prescriptions))
	for _, p := range prescriptions {
		if status != "" && string(p.Status) != status {
			continue
		}
		if patientID != "" && p.PatientID != patientID {
			continue
		}
		filtered = append(filtered, p)
	}
	utils.Success(c, "Prescriptions fetched successfully", filtered)
}

// GetPrescriptionByID returns a single prescription.
func (h *PrescriptionHandler) GetPrescriptionByID(c *gin.Context) {
	prescription, err := storage.GetByID[models.Prescription](h.Store, storage.KeyPrescriptions, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, "Prescription fetched successfully", prescription)
}

// DispensePrescription releases the medicines of a pending prescription,
// decrementing stock per line. Insufficient stock rejects the whole
// prescription untouched.
func (h *PrescriptionHandler) DispensePrescription(c *gin.Context) {
	if _, ok := currentUser(c, h.Store); !ok {
		return
	}
	prescription, err := h.Pharmacy.Dispense(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, "Prescription dispensed successfully", prescription)
}
