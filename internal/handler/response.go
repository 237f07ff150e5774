package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	apperrors "github.com/carebridge/eldercare-api/pkg/errors"
)

// Error writes the `{"error": message}` body the frontend expects, with
// the status from the error taxonomy.
func Error(c *gin.Context, err error) {
	c.JSON(apperrors.Status(err), gin.H{"error": err.Error()})
}

// BindingError turns a gin binding failure into a validation error whose
// message names the first offending field instead of echoing the whole
// validator chain.
func BindingError(err error) *apperrors.AppError {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		field := strings.ToLower(fieldErrs[0].Field())
		if fieldErrs[0].Tag() == "required" {
			return apperrors.Validation(field + " is required")
		}
		return apperrors.Validation("invalid " + field)
	}
	return apperrors.Validation("invalid request body")
}

// List writes items as a bare JSON array. An empty collection is `[]`,
// never `null`.
func List[T any](c *gin.Context, items []T) {
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, items)
}

// ParseID normalizes a path identifier to a UUID. Malformed ids are a
// validation failure, never a silent fallback to another id scheme.
func ParseID(c *gin.Context, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		return uuid.Nil, apperrors.Validation("invalid " + param)
	}
	return id, nil
}
