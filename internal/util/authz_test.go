package util

import (
	"testing"

	"career_path_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestIsAdmin(t *testing.T) {
	domain := "@admin.com"

	assert.False(t, IsAdmin(nil, domain))
	assert.False(t, IsAdmin(&Claims{Role: model.RoleUser, Email: "u@example.com"}, domain))
	assert.True(t, IsAdmin(&Claims{Role: model.RoleAdmin, Email: "u@example.com"}, domain))
	assert.True(t, IsAdmin(&Claims{Role: model.RoleUser, Email: "boss@admin.com"}, domain))
	// Suffix match is exact: similar domains do not qualify.
	assert.False(t, IsAdmin(&Claims{Role: model.RoleUser, Email: "boss@notadmin.org"}, domain))
	// No configured domain means role is the only path in.
	assert.False(t, IsAdmin(&Claims{Role: model.RoleUser, Email: "boss@admin.com"}, ""))
}

func TestIsOwner(t *testing.T) {
	assert.False(t, IsOwner(nil, 1))
	assert.True(t, IsOwner(&Claims{UserID: 1}, 1))
	assert.False(t, IsOwner(&Claims{UserID: 2}, 1))
}

func TestIsPublic(t *testing.T) {
	assert.False(t, IsPublic(nil))
	assert.False(t, IsPublic(&model.TestResult{IsShared: false}))
	assert.True(t, IsPublic(&model.TestResult{IsShared: true}))
}
