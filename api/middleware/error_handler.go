// api/middleware/error_handler.go
package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10" // Import validator for binding errors
	"github.com/sirupsen/logrus"

	"github.com/Annany2002/schema-builder/internal/core"
	"github.com/Annany2002/schema-builder/internal/logger"
	"github.com/Annany2002/schema-builder/internal/storage"
)

var (
	customLog = logger.NewLogger()
)

// ErrorHandler creates a Gin middleware for centralized error handling.
// Handlers attach errors with c.Error and return; this maps the last one to a response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		statusCode, userMessage := classify(err)

		entry := customLog.WithFields(logrus.Fields{
			"status": statusCode,
			"path":   c.Request.URL.Path,
			"error":  err.Error(),
		})
		if statusCode >= http.StatusInternalServerError {
			entry.Errorf("[ErrorHandler] Unhandled error type: %T", err)
		} else {
			entry.Warn("[ErrorHandler] Request rejected")
		}

		if !c.Writer.Written() {
			c.AbortWithStatusJSON(statusCode, gin.H{"error": userMessage})
		} else {
			customLog.Warnf("[ErrorHandler] Response already written before handling error.")
		}
	}
}

// classify maps an error to an HTTP status code and the message shown to the user.
func classify(err error) (int, string) {
	var validationErrs validator.ValidationErrors

	switch {
	case errors.Is(err, storage.ErrSchemaNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, core.ErrMoveAtBoundary):
		return http.StatusConflict, err.Error()
	case errors.Is(err, core.ErrSchemaNameRequired),
		errors.Is(err, core.ErrSchemaHasNoElements),
		errors.Is(err, core.ErrElementIdentityMissing),
		errors.Is(err, core.ErrDirectionNotSupported),
		errors.Is(err, core.ErrUnknownElementField),
		errors.Is(err, core.ErrInvalidFieldValue),
		errors.Is(err, core.ErrUnknownPreset),
		errors.Is(err, core.ErrInvalidQuery),
		errors.Is(err, core.ErrInvalidRequestBody):
		return http.StatusBadRequest, err.Error()
	case errors.As(err, &validationErrs):
		details := make([]string, 0, len(validationErrs))
		for _, fe := range validationErrs {
			details = append(details, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
		}
		return http.StatusBadRequest, "Validation failed: " + strings.Join(details, "; ")
	default:
		return http.StatusInternalServerError, "An unexpected internal server error occurred."
	}
}
