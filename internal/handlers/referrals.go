package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"clinic-app-server/internal/models"
	"clinic-app-server/internal/storage"
	"clinic-app-server/internal/utils"
)

// Allowed referral transitions. Completed and cancelled are terminal.
var referralTransitions = map[models.ReferralStatus][]models.ReferralStatus{
	models.ReferralPending:  {models.ReferralAccepted, models.ReferralCancelled},
	models.ReferralAccepted: {models.ReferralCompleted, models.ReferralCancelled},
}

// ReferralHandler handles outbound referrals after the examination workflow
// creates them.
type ReferralHandler struct {
	Store *storage.Store
}

// NewReferralHandler creates a new ReferralHandler.
func NewReferralHandler(store *storage.Store) *ReferralHandler {
	return &ReferralHandler{Store: store}
}

// GetReferrals returns referrals, optionally filtered by status or patientId.
func (h *ReferralHandler) GetReferrals(c *gin.Context) {
	referrals, err := storage.GetAll[models.Referral](h.Store, storage.KeyReferrals)
	if err != nil {
		respondError(c, err)
		return
	}
	status := c.Query("status")
	patientID := c.Query("patientId")
	filtered := make([]models.Referral, 0, len(referrals))
	for _, r := range referrals {
		if status != "" && string(r.Status) != status {
			continue
		}
		if patientID != "" && r.PatientID != patientID {
			continue
		}
		filtered = append(filtered, r)
	}
	utils.Success(c, "Referrals fetched successfully", filtered)
}

// GetReferralByID returns a single referral.
func (h *ReferralHandler) GetReferralByID(c *gin.Context) {
	referral, err := storage.GetByID[models.Referral](h.Store, storage.KeyReferrals, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, "Referral fetched successfully", referral)
}

// UpdateReferralStatusRequest represents a referral status change.
type UpdateReferralStatusRequest struct {
	Status models.ReferralStatus `json:"status" binding:"required,oneof=accepted completed cancelled"`
}

// UpdateReferralStatus advances a referral along
// pending → accepted → completed, with cancellation allowed from either
// non-terminal state.
func (h *ReferralHandler) UpdateReferralStatus(c *gin.Context) {
	var req UpdateReferralStatusRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	referral, err := storage.GetByID[models.Referral](h.Store, storage.KeyReferrals, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	allowed := false
	for _, next := range referralTransitions[referral.Status] {
		if next == req.Status {
			allowed = true
			break
		}
	}
	if !allowed {
		utils.BadRequest(c, fmt.Sprintf("cannot move referral from %s to %s", referral.Status, req.Status))
		return
	}

	updated, err := storage.Update[models.Referral](h.Store, storage.KeyReferrals, referral.ID,
		map[string]any{"status": req.Status})
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, "Referral status updated", updated)
}
