package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"clinic-app-server/internal/config"
	"clinic-app-server/internal/models"
	"clinic-app-server/internal/session"
	"clinic-app-server/internal/storage"
	"clinic-app-server/internal/utils"
)

// AuthHandler handles authentication-related requests.
type AuthHandler struct {
	Store *storage.Store
	Cfg   *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(store *storage.Store, cfg *config.Config) *AuthHandler {
	return &AuthHandler{Store: store, Cfg: cfg}
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response body for successful login.
type LoginResponse struct {
	AccessToken string               `json:"accessToken"`
	User        models.UserSanitized `json:"user"`
}

// Login checks the credentials against the users collection, persists the
// session record and returns an access token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	users, err := storage.GetAll[models.User](h.Store, storage.KeyUsers)
	if err != nil {
		utils.InternalServerError(c, "Failed to load users: "+err.Error())
		return
	}

	var user *models.User
	for i := range users {
		if users[i].Username == req.Username {
			user = &users[i]
			break
		}
	}
	if user == nil || !user.CheckPassword(req.Password) {
		utils.Unauthorized(c, "Username atau password salah!")
		return
	}
	if user.Status == models.UserInactive {
		utils.Forbidden(c, "Account is inactive")
		return
	}

	token, err := utils.GenerateToken(user, h.Cfg)
	if err != nil {
		utils.InternalServerError(c, "Failed to generate token: "+err.Error())
		return
	}

	if err := session.Save(h.Store, session.Session{
		Role:      user.Role,
		Username:  user.Username,
		LoginTime: time.Now(),
	}); err != nil {
		utils.InternalServerError(c, "Failed to store session: "+err.Error())
		return
	}

	utils.Success(c, "Login successful", LoginResponse{
		AccessToken: token,
		User:        user.Sanitize(),
	})
}

// Logout clears the persisted session.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := session.Clear(h.Store); err != nil {
		utils.InternalServerError(c, "Failed to clear session: "+err.Error())
		return
	}
	utils.Success(c, "Logout successful", nil)
}

// GetProfile returns the authenticated user's own record.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	user, ok := currentUser(c, h.Store)
	if !ok {
		return
	}
	utils.Success(c, "Profile fetched successfully", user.Sanitize())
}
