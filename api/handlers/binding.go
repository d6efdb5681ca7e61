package handlers

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/Annany2002/schema-builder/internal/core"
	"github.com/Annany2002/schema-builder/internal/logger"
)

var (
	customLog = logger.NewLogger()
)

// bindJSON decodes the request body into dst. Tag validation failures are
// returned as validator.ValidationErrors; anything else is ErrInvalidRequestBody.
func bindJSON(c *gin.Context, dst any) error {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return nil
	}
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return validationErrs
	}
	return fmt.Errorf("%w: %v", core.ErrInvalidRequestBody, err)
}
