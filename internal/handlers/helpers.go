package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"clinic-app-server/internal/middleware"
	"clinic-app-server/internal/models"
	"clinic-app-server/internal/services"
	"clinic-app-server/internal/session"
	"clinic-app-server/internal/storage"
	"clinic-app-server/internal/utils"
)

// respondError maps the storage/workflow error taxonomy onto HTTP responses:
// not-found sentinels become 404s, rejected inputs and forbidden transitions
// become 400s, session failures become 401s.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		utils.NotFound(c, err.Error())
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrInsufficientStock),
		errors.Is(err, services.ErrAlreadyDispensed),
		errors.Is(err, services.ErrInvalidTransition):
		utils.BadRequest(c, err.Error())
	case errors.Is(err, session.ErrNoSession):
		utils.Unauthorized(c, err.Error())
	default:
		utils.InternalServerError(c, err.Error())
	}
}

// todayStamp returns the clinic's date stamp format.
func todayStamp() string { return time.Now().Format("2006-01-02") }

// currentUser resolves the authenticated user from the token's username.
// Writes a 401 and returns false when no matching active user exists.
func currentUser(c *gin.Context, store *storage.Store) (models.User, bool) {
	username, ok := middleware.GetUsernameFromContext(c)
	if !ok {
		utils.Unauthorized(c, "User not authenticated")
		return models.User{}, false
	}
	user, err := session.Resolve(store, username)
	if err != nil {
		respondError(c, err)
		return models.User{}, false
	}
	return user, true
}
