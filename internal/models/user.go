package models

import (
	"golang.org/x/crypto/bcrypt"
)

// Role enum
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleDoctor     Role = "doctor"
	RoleNurse      Role = "nurse"
	RolePharmacist Role = "pharmacist"
)

// UserStatus represents whether a staff account may log in.
type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
)

// User represents a staff member of the clinic. Role-specific fields
// (Poli/Schedule for doctors, Shift for nurses, License for clinical staff)
// are empty for roles they do not apply to.
type User struct {
	ID       string     `json:"id"`
	Username string     `json:"username"`
	Password string     `json:"password,omitempty"` // bcrypt hash, stripped by Sanitize
	Name     string     `json:"name"`
	Role     Role       `json:"role"`
	Email    string     `json:"email"`
	Phone    string     `json:"phone"`
	Poli     string     `json:"poli,omitempty"`
	Schedule string     `json:"schedule,omitempty"`
	License  string     `json:"license,omitempty"`
	Shift    string     `json:"shift,omitempty"`
	Status   UserStatus `json:"status"`
}

func (u User) RecordID() string { return u.ID }

// UserSanitized represents the user data that is safe to send in API responses.
type UserSanitized struct {
	ID       string     `json:"id"`
	Username string     `json:"username"`
	Name     string     `json:"name"`
	Role     Role       `json:"role"`
	Email    string     `json:"email"`
	Phone    string     `json:"phone"`
	Poli     string     `json:"poli,omitempty"`
	Schedule string     `json:"schedule,omitempty"`
	License  string     `json:"license,omitempty"`
	Shift    string     `json:"shift,omitempty"`
	Status   UserStatus `json:"status"`
}

// SetPassword hashes a password and sets it on the user
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword compares a password with the user's hashed password
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// Sanitize creates a UserSanitized struct from a User, excluding the password hash.
func (u *User) Sanitize() UserSanitized {
	return UserSanitized{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Role:     u.Role,
		Email:    u.Email,
		Phone:    u.Phone,
		Poli:     u.Poli,
		Schedule: u.Schedule,
		License:  u.License,
		Shift:    u.Shift,
		Status:   u.Status,
	}
}
