package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/revisaai/revisaai/internal/models"
	"github.com/revisaai/revisaai/internal/validate"
	"github.com/revisaai/revisaai/pkg/logger"
)

var (
	errForbidden = errors.New("cannot act on another user's account")
	errNotOwner  = fmt.Errorf("%w: resource belongs to another user", errForbidden)
)

// writeError maps domain errors to HTTP statuses with an {"error": msg} body.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, errForbidden):
		status = http.StatusForbidden
	case errors.Is(err, models.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrAlreadyExists):
		status = http.StatusConflict
	}
	if status == http.StatusInternalServerError {
		logger.Errorf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// bind decodes the JSON body into dst and runs the validate tags.
// It writes a 400 and returns false when either step fails.
func bind(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return bindValid(c, dst)
}

// bindValid runs only the validate tags, for bodies normalized after decoding.
func bindValid(c *gin.Context, dst interface{}) bool {
	if err := validate.Struct(dst); err != nil {
		writeError(c, err)
		return false
	}
	return true
}
