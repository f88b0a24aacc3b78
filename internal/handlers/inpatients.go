package handlers

import (
	"github.com/gin-gonic/gin"

	"clinic-app-server/internal/models"
	"clinic-app-server/internal/services"
	"clinic-app-server/internal/storage"
	"clinic-app-server/internal/utils"
)

// InpatientHandler handles ward admissions.
type InpatientHandler struct {
	Store      *storage.Store
	Inpatients *services.InpatientService
}

// NewInpatientHandler creates a new InpatientHandler.
func NewInpatientHandler(store *storage.Store, inpatients *services.InpatientService) *InpatientHandler {
	return &InpatientHandler{Store: store, Inpatients: inpatients}
}

// GetInpatients returns admissions, optionally filtered by status.
func (h *InpatientHandler) GetInpatients(c *gin.Context) {
	inpatients, err := storage.GetAll[models.Inpatient](h.Store, storage.KeyInpatients)
	if err != nil {
		respondError(c, err)
		return
	}
	status := c.Query("status")
	filtered := make([]models.Inpatient, 0, len(inpatients))
	for _, i := range inpatients {
		if status != "" && string(i.Status) != status {
			continue
		}
		filtered = append(filtered, i)
	}
	utils.Success(c, "Inpatients fetched successfully", filtered)
}

// GetInpatientByID returns a single admission.
func (h *InpatientHandler) GetInpatientByID(c *gin.Context) {
	inpatient, err := storage.GetByID[models.Inpatient](h.Store, storage.KeyInpatients, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, "Inpatient fetched successfully", inpatient)
}

// DischargeInpatient releases an active admission.
func (h *InpatientHandler) DischargeInpatient(c *gin.Context) {
	doctor, ok := currentUser(c, h.Store)
	if !ok {
		return
	}
	if doctor.Role != models.RoleDoctor {
		utils.Forbidden(c, "Only doctors may discharge inpatients")
		return
	}
	inpatient, err := h.Inpatients.Discharge(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, "Inpatient discharged", inpatient)
}
