package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"clinic-app-server/internal/models"
	"clinic-app-server/internal/storage"
	"clinic-app-server/internal/utils"
)

// HospitalHandler handles the clinic profile and the admin-managed reference
// lists: polis, medicine categories and medical action tariffs.
type HospitalHandler struct {
	Store *storage.Store
}

// NewHospitalHandler creates a new HospitalHandler.
func NewHospitalHandler(store *storage.Store) *HospitalHandler {
	return &HospitalHandler{Store: store}
}

// GetHospital returns the clinic profile.
func (h *HospitalHandler) GetHospital(c *gin.Context) {
	hospitals, err := storage.GetAll[models.Hospital](h.Store, storage.KeyHospital)
	if err != nil {
		respondError(c, err)
		return
	}
	if len(hospitals) == 0 {
		utils.NotFound(c, "Hospital profile not found")
		return
	}
	utils.Success(c, "Hospital profile fetched successfully", hospitals[0])
}

// UpdateHospital shallow-merges the submitted fields into the clinic profile.
func (h *HospitalHandler) UpdateHospital(c *gin.Context) {
	updates, ok := utils.BindPartial(c)
	if !ok {
		return
	}
	hospitals, err := storage.GetAll[models.Hospital](h.Store, storage.KeyHospital)
	if err != nil {
		respondError(c, err)
		return
	}
	if len(hospitals) == 0 {
		utils.NotFound(c, "Hospital profile not found")
		return
	}
	updated, err := storage.Update[models.Hospital](h.Store, storage.KeyHospital, hospitals[0].ID, updates)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, "Hospital profile updated successfully", updated)
}

// CreatePoliRequest represents a new outpatient department.
type CreatePoliRequest struct {
	Name     string `json:"name" binding:"required"`
	Doctor   string `json:"doctor" binding:"required"`
	Schedule string `json:"schedule" binding:"required"`
	Time     string `json:"time" binding:"required"`
}

// CreatePoli adds an outpatient department.
func (h *HospitalHandler) CreatePoli(c *gin.Context) {
	var req CreatePoliRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	poli := models.Poli{
		ID:       "POL" + uuid.NewString(),
		Name:     req.Name,
		Doctor:   req.Doctor,
		Schedule: req.Schedule,
		Time:     req.Time,
		Status:   "active",
	}
	created, err := storage.Create(h.Store, storage.KeyPolis, poli)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, "Poli created successfully", created)
}

// GetPolis returns all outpatient departments.
func (h *HospitalHandler) GetPolis(c *gin.Context) {
	polis, err := storage.GetAll[models.Poli](h.Store, storage.KeyPolis)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, "Polis fetched successfully", polis)
}

// UpdatePoli shallow-merges the submitted fields into a poli.
func (h *HospitalHandler) UpdatePoli(c *gin.Context) {
	updates, ok := utils.BindPartial(c)
	if !ok {
		return
	}
	updated, err := storage.Update[models.Poli](h.Store, storage.KeyPolis, c.Param("id"), updates)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, "Poli updated successfully", updated)
}

// DeletePoli removes a poli.
func (h *HospitalHandler) DeletePoli(c *gin.Context) {
	removed, err := storage.Delete[models.Poli](h.Store, storage.KeyPolis, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !removed {
		utils.NotFound(c, "Poli not found")
		return
	}
	utils.Success(c, "Poli deleted successfully", nil)
}

// CreateMedicineCategoryRequest represents a new medicine category.
type CreateMedicineCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateMedicineCategory adds a medicine category.
func (h *HospitalHandler) CreateMedicineCategory(c *gin.Context) {
	var req CreateMedicineCategoryRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	category := models.MedicineCategory{ID: "CAT" + uuid.NewString(), Name: req.Name}
	created, err := storage.Create(h.Store, storage.KeyMedicineCategories, category)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, "Medicine category created successfully", created)
}

// GetMedicineCategories returns all medicine categories.
func (h *HospitalHandler) GetMedicineCategories(c *gin.Context) {
	categories, err := storage.GetAll[models.MedicineCategory](h.Store, storage.KeyMedicineCategories)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, "Medicine categories fetched successfully", categories)
}

// DeleteMedicineCategory removes a medicine category.
func (h *HospitalHandler) DeleteMedicineCategory(c *gin.Context) {
	removed, err := storage.Delete[models.MedicineCategory](h.Store, storage.KeyMedicineCategories, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !removed {
		utils.NotFound(c, "Medicine category not found")
		return
	}
	utils.Success(c, "Medicine category deleted successfully", nil)
}

// CreateMedicalActionRequest represents a new tariff entry.
type CreateMedicalActionRequest struct {
	Code string `json:"code" binding:"required"`
	Name string `json:"name" binding:"required"`
	Fee  int    `json:"fee" binding:"min=0"`
}

// CreateMedicalAction adds a billable procedure to the tariff list. Codes
// must be unique because they double as record ids.
func (h *HospitalHandler) CreateMedicalAction(c *gin.Context) {
	var req CreateMedicalActionRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	actions, err := storage.GetAll[models.MedicalAction](h.Store, storage.KeyMedicalActions)
	if err != nil {
		respondError(c, err)
		return
	}
	for _, a := range actions {
		if a.Code == req.Code {
			utils.BadRequest(c, "Action code is already taken")
			return
		}
	}
	action := models.MedicalAction{Code: req.Code, Name: req.Name, Fee: req.Fee}
	created, err := storage.Create(h.Store, storage.KeyMedicalActions, action)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, "Medical action created successfully", created)
}

// GetMedicalActions returns the tariff list.
func (h *HospitalHandler) GetMedicalActions(c *gin.Context) {
	actions, err := storage.GetAll[models.MedicalAction](h.Store, storage.KeyMedicalActions)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, "Medical actions fetched successfully", actions)
}

// DeleteMedicalAction removes a tariff entry.
func (h *HospitalHandler) DeleteMedicalAction(c *gin.Context) {
	removed, err := storage.Delete[models.MedicalAction](h.Store, storage.KeyMedicalActions, c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !removed {
		utils.NotFound(c, "Medical action not found")
		return
	}
	utils.Success(c, "Medical action deleted successfully", nil)
}
