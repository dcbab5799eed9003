package util

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// BindJSON binds and validates the request body. On failure it writes a
// single 400 response enumerating every offending field and returns false.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			details := make([]FieldError, 0, len(verrs))
			for _, fe := range verrs {
				details = append(details, FieldError{
					Field:   fe.Field(),
					Message: fe.Error(),
				})
			}
			ValidationFailed(c, details)
			return false
		}
		BadRequest(c, "invalid request body")
		return false
	}
	return true
}
