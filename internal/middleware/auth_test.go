package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"career_path_backend/internal/config"
	"career_path_backend/internal/model"
	"career_path_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWT:   config.JWTConfig{Secret: "test-secret", ExpireTime: time.Hour},
		Admin: config.AdminConfig{EmailDomain: "@admin.com"},
	}
}

func tokenFor(t *testing.T, cfg *config.Config, user *model.User) string {
	t.Helper()
	token, err := util.GenerateJWT(user, cfg.JWT.Secret, cfg.JWT.ExpireTime)
	require.NoError(t, err)
	return token
}

func adminRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/admin", AuthMiddleware(cfg), AdminMiddleware(cfg), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	cfg := testConfig()
	router := adminRouter(cfg)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	router.ServeHTTP(w, req)

	// No identity at all is a 401, even on an admin route.
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsGarbageToken(t *testing.T) {
	cfg := testConfig()
	router := adminRouter(cfg)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminMiddlewareForbidsPlainUser(t *testing.T) {
	cfg := testConfig()
	router := adminRouter(cfg)
	user := &model.User{Name: "u", Email: "u@example.com", Role: model.RoleUser}
	user.ID = 1

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, cfg, user))
	router.ServeHTTP(w, req)

	// Authenticated but not admin: 403, not 401.
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminMiddlewareAllowsRoleClaim(t *testing.T) {
	cfg := testConfig()
	router := adminRouter(cfg)
	user := &model.User{Name: "a", Email: "a@example.com", Role: model.RoleAdmin}
	user.ID = 2

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, cfg, user))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminMiddlewareAllowsAdminDomain(t *testing.T) {
	cfg := testConfig()
	router := adminRouter(cfg)
	user := &model.User{Name: "a", Email: "ops@admin.com", Role: model.RoleUser}
	user.ID = 3

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, cfg, user))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestApikeyHeaderFallback(t *testing.T) {
	cfg := testConfig()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/me", AuthMiddleware(cfg), func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		require.NotNil(t, claims)
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID})
	})

	user := &model.User{Name: "u", Email: "u@example.com", Role: model.RoleUser}
	user.ID = 9

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("apikey", tokenFor(t, cfg, user))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTryAuthMiddlewareIsOptional(t *testing.T) {
	cfg := testConfig()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/open", TryAuthMiddleware(cfg), func(c *gin.Context) {
		if util.GetUserFromContext(c) != nil {
			c.String(http.StatusOK, "known")
			return
		}
		c.String(http.StatusOK, "guest")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/open", nil))
	assert.Equal(t, "guest", w.Body.String())

	user := &model.User{Name: "u", Email: "u@example.com", Role: model.RoleUser}
	user.ID = 4
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, cfg, user))
	router.ServeHTTP(w, req)
	assert.Equal(t, "known", w.Body.String())
}
