package controller

import (
	"errors"

	"career_path_backend/internal/service"
	"career_path_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	Auth  *service.AuthService
	Users *service.UserService
}

func NewAuthController(auth *service.AuthService, users *service.UserService) *AuthController {
	return &AuthController{Auth: auth, Users: users}
}

// Register godoc
// @Summary Create an account
// @Tags auth
// @Accept json
// @Produce json
// @Param body body service.RegisterRequest true "registration payload"
// @Success 201 {object} util.Response
// @Router /auth/register [post]
func (ctl *AuthController) Register(c *gin.Context) {
	var req service.RegisterRequest
	if !util.BindJSON(c, &req) {
		return
	}

	user, token, err := ctl.Auth.Register(&req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	util.Created(c, gin.H{"user": user, "token": token})
}

// Login godoc
// @Summary Sign in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param body body service.LoginRequest true "credentials"
// @Success 200 {object} util.Response
// @Router /auth/login [post]
func (ctl *AuthController) Login(c *gin.Context) {
	var req service.LoginRequest
	if !util.BindJSON(c, &req) {
		return
	}

	user, token, err := ctl.Auth.Login(&req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	util.Success(c, gin.H{"user": user, "token": token})
}

// Me returns the account behind the presented token.
func (ctl *AuthController) Me(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	user, err := ctl.Auth.Users.FindByID(claims.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		util.NotFound(c)
		return
	}
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, user)
}

func (ctl *AuthController) ChangePassword(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	var req service.ChangePasswordRequest
	if !util.BindJSON(c, &req) {
		return
	}

	if err := ctl.Auth.ChangePassword(claims.UserID, &req); err != nil {
		writeServiceError(c, err)
		return
	}
	util.Success(c, gin.H{"message": "password changed"})
}
