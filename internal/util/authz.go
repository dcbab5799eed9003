package util

import (
	"strings"

	"career_path_backend/internal/model"
)

// IsAdmin is an explicit allow-list check: a role claim of "admin" or an
// email under the configured admin domain. Never inferred from ownership.
func IsAdmin(claims *Claims, adminDomain string) bool {
	if claims == nil {
		return false
	}
	if claims.Role == model.RoleAdmin {
		return true
	}
	return adminDomain != "" && strings.HasSuffix(claims.Email, adminDomain)
}

// IsOwner compares the caller's identity with the resource owner exactly.
func IsOwner(claims *Claims, ownerID uint) bool {
	return claims != nil && claims.UserID == ownerID
}

// IsPublic reports whether a result is visible to arbitrary callers.
func IsPublic(result *model.TestResult) bool {
	return result != nil && result.IsShared
}
