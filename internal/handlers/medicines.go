package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"clinic-app-server/internal/models"
	"clinic-app-server/internal/services"
	"clinic-app-server/internal/storage"
	"clinic-app-server/internal/utils"
)

// MedicineHandler handles pharmacy inventory administration.
type MedicineHandler struct {
	Store    *storage.Store
	Pharmacy *services.PharmacyService
}

// NewMedicineHandler creates a new MedicineHandler.
func NewMedicineHandler(store *storage.Store, pharmacy *services.PharmacyService) *MedicineHandler {
	return &MedicineHandler{Store: store, Pharmacy: pharmacy}
}

// CreateMedicineRequest represents the request body for adding a medicine.
type CreateMedicineRequest struct {
	Name        string `json:"name" binding:"required"`
	Stock       int    `json:"stock" binding:"min=0"`
	MinStock    int    `json:"minStock" binding:"min=0"`
	Price       int    `json:"price" binding:"min=0"`
	Unit        string `json:"unit" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Description string `json:"description"`
	Expiry      string `json:"expiry"`
}

// CreateMedicine adds a medicine to the inventory.
func (h *MedicineHandler) CreateMedicine(c *gin.Context) {
	var req CreateMedicineRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	medicine := models.Medicine{
		ID:          "MED" + uuid.NewString(),
		Name:        req.Name,
		Stock:       req.Stock,
		MinStock:    req.MinStock,
		Price:       req.Price,
		Unit:        req.Unit,
		Category:    req.Category,
		Description: req.Description,
		Expiry:      req.Expiry,
	}
	created, err := storage.Create(h.Store, storage.KeyMedicines, medicine)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, "Medicine created successfully", created)
}

// GetMedicines returns the full inventory.
func (h *MedicineHandler) GetMedicines(c *gin.Context) {
	medicines, err := storage.GetAll[models.Medicine](h.Store, storage.KeyMedicines)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, "Medicines fetched successfully", medicines)
}

// GetLowStock returns medicines at or below their reorder threshold.
func (h *MedicineHandler) GetLowStock(c *gin.Context) {
	medicines, err := h.Pharmacy.LowStock()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, "Low stock medicines fetched successfully", medicines)
}

// GetMedicineByID returns a single medicine.
func (h *MedicineHandler) GetMedicineByID(c *gin.Context) {
	medicine, err := storage.GetByID[models.Medicine](h.Store, storage.KeyMedicines, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, "Medicine fetched successfully", medicine)
}

// UpdateMedicine shallow-merges the submitted fields into a medicine record.
// This is the only way besides dispensing that stock changes.
func (h *MedicineHandler) UpdateMedicine(c *gin.Context) {
	updates, ok := utils.BindPartial(c)
	if !ok {
		return
	}
	if stock, exists := updates["stock"]; exists {
		if v, ok := stock.(float64); !ok || v < 0 {
			utils.BadRequest(c, "Stock must be a non-negative number")
			return
		}
	}
	updated, err := storage.Update[models.Medicine](h.Store, storage.KeyMedicines, c.Param("id"), updates)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, "Medicine updated successfully", updated)
}

// DeleteMedicine removes a medicine from the inventory.
func (h *MedicineHandler) DeleteMedicine(c *gin.Context) {
	removed, err := storage.Delete[models.Medicine](h.Store, storage.KeyMedicines, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !removed {
		utils.NotFound(c, "Medicine not found")
		return
	}
	utils.Success(c, "Medicine deleted successfully", nil)
}
