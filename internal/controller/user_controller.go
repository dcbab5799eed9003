package controller

import (
	"strconv"

	"career_path_backend/internal/service"
	"career_path_backend/internal/util"

	"github.com/gin-gonic/gin"
)

const maxAvatarSize = 5 << 20 // 5 MiB

type UserController struct {
	Users   *service.UserService
	Storage *service.StorageService
}

func NewUserController(users *service.UserService, storage *service.StorageService) *UserController {
	return &UserController{Users: users, Storage: storage}
}

func (ctl *UserController) GetProfile(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	profile, err := ctl.Users.GetProfile(claims.UserID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	util.Success(c, profile)
}

func (ctl *UserController) UpdateProfile(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	var req service.ProfileUpdateRequest
	if !util.BindJSON(c, &req) {
		return
	}

	profile, err := ctl.Users.UpdateProfile(claims.UserID, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	util.Success(c, profile)
}

// UploadAvatar stores the uploaded image and points the account at it.
func (ctl *UserController) UploadAvatar(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		util.BadRequest(c, "avatar file is required")
		return
	}
	if file.Size > maxAvatarSize {
		util.BadRequest(c, "avatar exceeds the 5 MiB limit")
		return
	}

	url, err := ctl.Storage.SaveImage(c.Request.Context(), file)
	if err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	profile, err := ctl.Users.SetAvatar(claims.UserID, url)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	util.Success(c, gin.H{"avatar_url": url, "profile": profile})
}

// Admin user management.

func (ctl *UserController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	users, total, err := ctl.Users.ListUsers(page, limit)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, gin.H{"users": users, "total": total, "page": page, "limit": limit})
}

func (ctl *UserController) Get(c *gin.Context) {
	id, err := parseUserID(c)
	if err != nil {
		util.BadRequest(c, "invalid user id")
		return
	}

	user, err := ctl.Users.GetUser(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	util.Success(c, user)
}

func (ctl *UserController) Update(c *gin.Context) {
	id, err := parseUserID(c)
	if err != nil {
		util.BadRequest(c, "invalid user id")
		return
	}

	var req service.AdminUserUpdateRequest
	if !util.BindJSON(c, &req) {
		return
	}

	user, err := ctl.Users.UpdateUser(id, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	util.Success(c, user)
}

func (ctl *UserController) Delete(c *gin.Context) {
	id, err := parseUserID(c)
	if err != nil {
		util.BadRequest(c, "invalid user id")
		return
	}

	if err := ctl.Users.DeleteUser(id); err != nil {
		writeServiceError(c, err)
		return
	}
	util.Success(c, gin.H{"message": "user deleted"})
}

func (ctl *UserController) ResetPassword(c *gin.Context) {
	id, err := parseUserID(c)
	if err != nil {
		util.BadRequest(c, "invalid user id")
		return
	}

	var req service.ResetPasswordRequest
	if !util.BindJSON(c, &req) {
		return
	}

	if err := ctl.Users.ResetPassword(id, &req); err != nil {
		writeServiceError(c, err)
		return
	}
	util.Success(c, gin.H{"message": "password reset"})
}

type disableRequest struct {
	Disabled *bool `json:"disabled" binding:"required"`
}

func (ctl *UserController) SetDisabled(c *gin.Context) {
	id, err := parseUserID(c)
	if err != nil {
		util.BadRequest(c, "invalid user id")
		return
	}

	var req disableRequest
	if !util.BindJSON(c, &req) {
		return
	}

	user, err := ctl.Users.SetDisabled(id, *req.Disabled)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	util.Success(c, user)
}

func parseUserID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
