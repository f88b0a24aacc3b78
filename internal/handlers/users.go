package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"clinic-app-server/internal/models"
	"clinic-app-server/internal/storage"
	"clinic-app-server/internal/utils"
)

// UserHandler handles staff account administration (admin only).
type UserHandler struct {
	Store *storage.Store
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(store *storage.Store) *UserHandler {
	return &UserHandler{Store: store}
}

// CreateUserRequest represents the request body for creating a staff account.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=4"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=admin doctor nurse pharmacist"`
	Email    string `json:"email" binding:"omitempty,email"`
	Phone    string `json:"phone"`
	Poli     string `json:"poli"`
	Schedule string `json:"schedule"`
	License  string `json:"license"`
	Shift    string `json:"shift"`
}

// CreateUser creates a staff account. Usernames must be unique.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	users, err := storage.GetAll[models.User](h.Store, storage.KeyUsers)
	if err != nil {
		respondError(c, err)
		return
	}
	for _, u := range users {
		if u.Username == req.Username {
			utils.BadRequest(c, "Username is already taken")
			return
		}
	}

	user := models.User{
		ID:       "USR" + uuid.NewString(),
		Username: req.Username,
		Name:     req.Name,
		Role:     models.Role(req.Role),
		Email:    req.Email,
		Phone:    req.Phone,
		Poli:     req.Poli,
		Schedule: req.Schedule,
		License:  req.License,
		Shift:    req.Shift,
		Status:   models.UserActive,
	}
	if err := user.SetPassword(req.Password); err != nil {
		utils.InternalServerError(c, "Failed to hash password: "+err.Error())
		return
	}

	created, err := storage.Create(h.Store, storage.KeyUsers, user)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, "User created successfully", created.Sanitize())
}

// GetUsers returns all staff accounts, passwords stripped. An optional role
// query filters by role (used by the appointment form to list doctors).
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := storage.GetAll[models.User](h.Store, storage.KeyUsers)
	if err != nil {
		respondError(c, err)
		return
	}
	role := c.Query("role")
	sanitized := make([]models.UserSanitized, 0, len(users))
	for _, u := range users {
		if role != "" && string(u.Role) != role {
			continue
		}
		sanitized = append(sanitized, u.Sanitize())
	}
	utils.Success(c, "Users fetched successfully", sanitized)
}

// GetUserByID returns a single staff account.
func (h *UserHandler) GetUserByID(c *gin.Context) {
	user, err := storage.GetByID[models.User](h.Store, storage.KeyUsers, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, "User fetched successfully", user.Sanitize())
}

// UpdateUser shallow-merges the submitted fields into a staff account. A
// password field, when present, is re-hashed before merging.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	updates, ok := utils.BindPartial(c)
	if !ok {
		return
	}
	if password, exists := updates["password"]; exists {
		plain, ok := password.(string)
		if !ok || len(plain) < 6 {
			utils.BadRequest(c, "Password must be at least 6 characters")
			return
		}
		var tmp models.User
		if err := tmp.SetPassword(plain); err != nil {
			utils.InternalServerError(c, "Failed to hash password: "+err.Error())
			return
		}
		updates["password"] = tmp.Password
	}
	updated, err := storage.Update[models.User](h.Store, storage.KeyUsers, c.Param("id"), updates)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, "User updated successfully", updated.Sanitize())
}

// DeleteUser removes a staff account.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	removed, err := storage.Delete[models.User](h.Store, storage.KeyUsers, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !removed {
		utils.NotFound(c, "User not found")
		return
	}
	utils.Success(c, "User deleted successfully", nil)
}
