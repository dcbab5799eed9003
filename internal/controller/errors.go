package controller

import (
	"errors"
	"net/http"

	"career_path_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// writeServiceError maps service-layer sentinels onto the HTTP error
// taxonomy. Anything unrecognized is a logged 500.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrNotFound):
		util.NotFound(c)
	case errors.Is(err, util.ErrForbidden):
		util.Forbidden(c)
	case errors.Is(err, util.ErrEmailRegistered):
		util.Conflict(c, "Email already registered")
	case errors.Is(err, util.ErrInvalidCredentials):
		util.Error(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, util.ErrAccountDisabled):
		util.Error(c, http.StatusForbidden, "Account is disabled")
	case errors.Is(err, util.ErrTestIDMismatch):
		util.BadRequest(c, "Test id in body does not match the URL")
	case errors.Is(err, util.ErrNoResults):
		util.BadRequest(c, "No test results available to generate a plan")
	default:
		util.LogInternalError(c, err)
	}
}
