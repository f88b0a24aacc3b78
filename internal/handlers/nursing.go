package handlers

import (
	"github.com/gin-gonic/gin"

	"clinic-app-server/internal/models"
	"clinic-app-server/internal/services"
	"clinic-app-server/internal/storage"
	"clinic-app-server/internal/utils"
)

// NursingHandler handles vital signs and nursing actions.
type NursingHandler struct {
	Store   *storage.Store
	Nursing *services.NursingService
}

// NewNursingHandler creates a new NursingHandler.
func NewNursingHandler(store *storage.Store, nursing *services.NursingService) *NursingHandler {
	return &NursingHandler{Store: store, Nursing: nursing}
}

// CreateVitalSignRequest represents a vital-sign observation submission.
type CreateVitalSignRequest struct {
	PatientID     string  `json:"patientId" binding:"required"`
	BloodPressure string  `json:"bloodPressure" binding:"required"`
	HeartRate     int     `json:"heartRate" binding:"required,min=1"`
	Temperature   float64 `json:"temperature" binding:"required"`
	Respiration   int     `json:"respiration" binding:"min=0"`
	Weight        float64 `json:"weight" binding:"min=0"`
	Height        float64 `json:"height" binding:"min=0"`
	Complaint     string  `json:"complaint"`
	Notes         string  `json:"notes"`
}

// CreateVitalSign records a vital-sign observation by the authenticated nurse.
func (h *NursingHandler) CreateVitalSign(c *gin.Context) {
	var req CreateVitalSignRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	nurse, ok := currentUser(c, h.Store)
	if !ok {
		return
	}
	if nurse.Role != models.RoleNurse {
		utils.Forbidden(c, "Only nurses may record vital signs")
		return
	}

	vital, err := h.Nursing.RecordVitalSign(nurse, services.VitalSignInput{
		PatientID:     req.PatientID,
		BloodPressure: req.BloodPressure,
		HeartRate:     req.HeartRate,
		Temperature:   req.Temperature,
		Respiration:   req.Respiration,
		Weight:        req.Weight,
		Height:        req.Height,
		Complaint:     req.Complaint,
		Notes:         req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, "Vital sign recorded successfully", vital)
}

// GetVitalSigns returns vital signs, optionally filtered by patientId.
func (h *NursingHandler) GetVitalSigns(c *gin.Context) {
	vitals, err := storage.GetAll[models.VitalSign](h.Store, storage.KeyVitalSigns)
	if err != nil {
		respondError(c, err)
		return
	}
	patientID := c.Query("patientId")
	filtered := make([]models.VitalSign, 0, len(vitals))
	for _, v := range vitals {
		if patientID != "" && v.PatientID != patientID {
			continue
		}
		filtered = append(filtered, v)
	}
	utils.Success(c, "Vital signs fetched successfully", filtered)
}

// CreateNursingActionRequest represents a new nursing care task.
type CreateNursingActionRequest struct {
	PatientID   string `json:"patientId" binding:"required"`
	ActionType  string `json:"actionType" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// CreateNursingAction registers a pending nursing action.
func (h *NursingHandler) CreateNursingAction(c *gin.Context) {
	var req CreateNursingActionRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	nurse, ok := currentUser(c, h.Store)
	if !ok {
		return
	}
	if nurse.Role != models.RoleNurse {
		utils.Forbidden(c, "Only nurses may create nursing actions")
		return
	}

	action, err := h.Nursing.CreateAction(nurse, services.ActionInput{
		PatientID:   req.PatientID,
		ActionType:  req.ActionType,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, "Nursing action created successfully", action)
}

// GetNursingActions returns nursing actions, optionally filtered by patientId
// or status.
func (h *NursingHandler) GetNursingActions(c *gin.Context) {
	actions, err := storage.GetAll[models.NursingAction](h.Store, storage.KeyNursingActions)
	if err != nil {
		respondError(c, err)
		return
	}
	patientID := c.Query("patientId")
	status := c.Query("status")
	filtered := make([]models.NursingAction, 0, len(actions))
	for _, a := range actions {
		if patientID != "" && a.PatientID != patientID {
			continue
		}
		if status != "" && string(a.Status) != status {
			continue
		}
		filtered = append(filtered, a)
	}
	utils.Success(c, "Nursing actions fetched successfully", filtered)
}

// CompleteNursingAction flips a pending action to completed.
func (h *NursingHandler) CompleteNursingAction(c *gin.Context) {
	if _, ok := currentUser(c, h.Store); !ok {
		return
	}
	action, err := h.Nursing.CompleteAction(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, "Nursing action completed", action)
}
