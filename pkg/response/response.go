package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 with a success status and message.
func OK(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Resp{
		Status:  StatusSuccess,
		Message: message,
	})
}

// Created sends 201 with the stored event attached.
func Created(c *gin.Context, message string, event any) {
	c.JSON(http.StatusCreated, Resp{
		Status:  StatusSuccess,
		Message: message,
		Event:   event,
	})
}

// Skipped sends 200 for deliveries that are acknowledged but not stored,
// so GitHub does not retry them.
func Skipped(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Resp{
		Status:  StatusSkipped,
		Message: message,
	})
}

// Error sends an error response with the given HTTP status code.
func Error(c *gin.Context, code int, err error) {
	c.JSON(code, Resp{
		Status:  StatusError,
		Message: err.Error(),
	})
}

// InternalError sends 500 without leaking the underlying error.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Resp{
		Status:  StatusError,
		Message: DefaultErrorMessage,
	})
}
