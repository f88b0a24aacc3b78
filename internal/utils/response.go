package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every clinic endpoint answers with. Status
// mirrors the HTTP code so portal clients that only inspect the body still
// see it; exactly one of Data and Error is set.
type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func ok(c *gin.Context, code int, message string, data any) {
	c.JSON(code, Response{Status: code, Message: message, Data: data})
}

// Success answers 200 with the fetched or updated payload.
func Success(c *gin.Context, message string, data any) {
	ok(c, http.StatusOK, message, data)
}

// Created answers 201 for a newly stored record.
func Created(c *gin.Context, message string, data any) {
	ok(c, http.StatusCreated, message, data)
}

// Error answers with an error envelope carrying the given status code.
func Error(c *gin.Context, statusCode int, errorMessage string) {
	c.JSON(statusCode, Response{
		Status:  statusCode,
		Message: "An error occurred",
		Error:   errorMessage,
	})
}

// BadRequest rejects invalid input (failed binding, forbidden transition,
// insufficient stock).
func BadRequest(c *gin.Context, errorMessage string) {
	Error(c, http.StatusBadRequest, errorMessage)
}

// Unauthorized rejects requests without a valid token or session.
func Unauthorized(c *gin.Context, errorMessage string) {
	Error(c, http.StatusUnauthorized, errorMessage)
}

// Forbidden rejects requests whose role may not perform the operation.
func Forbidden(c *gin.Context, errorMessage string) {
	Error(c, http.StatusForbidden, errorMessage)
}

// NotFound reports a missing record.
func NotFound(c *gin.Context, errorMessage string) {
	Error(c, http.StatusNotFound, errorMessage)
}

// InternalServerError reports a storage or encoding failure.
func InternalServerError(c *gin.Context, errorMessage string) {
	Error(c, http.StatusInternalServerError, errorMessage)
}
