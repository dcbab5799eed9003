package service

import (
	"errors"

	"career_path_backend/internal/model"
	"career_path_backend/internal/repository"
	"career_path_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type ProfileUpdateRequest struct {
	Name       string `json:"name" binding:"omitempty,max=100"`
	Bio        string `json:"bio" binding:"omitempty,max=500"`
	Age        int    `json:"age" binding:"omitempty,gte=0,lte=150"`
	Education  string `json:"education" binding:"omitempty,max=200"`
	Experience string `json:"experience" binding:"omitempty,max=500"`
}

type AdminUserUpdateRequest struct {
	Name     string         `json:"name" binding:"omitempty,max=100"`
	Role     model.UserRole `json:"role" binding:"omitempty,oneof=user admin"`
	Disabled *bool          `json:"disabled"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=6,max=72"`
}

type UserService struct {
	Users    *repository.UserRepository
	Profiles *repository.ProfileRepository
}

func NewUserService(users *repository.UserRepository, profiles *repository.ProfileRepository) *UserService {
	return &UserService{Users: users, Profiles: profiles}
}

// GetProfile creates the profile row lazily from the account on first
// access, so every authenticated user always has one.
func (s *UserService) GetProfile(userID uint) (*model.Profile, error) {
	profile, err := s.Profiles.FindByUserID(userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user, err := s.Users.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	profile = &model.Profile{
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		AvatarURL: user.Avatar,
	}
	if err := s.Profiles.Upsert(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// UpdateProfile upserts the caller's profile; last write wins.
func (s *UserService) UpdateProfile(userID uint, req *ProfileUpdateRequest) (*model.Profile, error) {
	profile, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		profile.Name = req.Name
	}
	profile.Bio = req.Bio
	profile.Age = req.Age
	profile.Education = req.Education
	profile.Experience = req.Experience

	if err := s.Profiles.Upsert(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// SetAvatar records the uploaded avatar URL on both the account and the
// profile.
func (s *UserService) SetAvatar(userID uint, url string) (*model.Profile, error) {
	user, err := s.Users.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	user.Avatar = url
	if err := s.Users.Update(user); err != nil {
		return nil, err
	}

	profile, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	profile.AvatarURL = url
	if err := s.Profiles.Upsert(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Admin user management below.

func (s *UserService) ListUsers(page, limit int) ([]model.User, int64, error) {
	if page <= 0 {
		page = 1
	}
	limit = clampLimit(limit)
	return s.Users.List(page, limit)
}

func (s *UserService) GetUser(id uint) (*model.User, error) {
	user, err := s.Users.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) UpdateUser(id uint, req *AdminUserUpdateRequest) (*model.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Role != "" {
		user.Role = req.Role
	}
	if req.Disabled != nil {
		user.Disabled = *req.Disabled
	}
	if err := s.Users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) DeleteUser(id uint) error {
	if _, err := s.GetUser(id); err != nil {
		return err
	}
	return s.Users.Delete(id)
}

// ResetPassword is the admin override; it does not require the old one.
func (s *UserService) ResetPassword(id uint, req *ResetPasswordRequest) error {
	if _, err := s.GetUser(id); err != nil {
		return err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.Users.UpdatePassword(id, string(hashed))
}

// SetDisabled blocks or restores sign-in without deleting the account.
func (s *UserService) SetDisabled(id uint, disabled bool) (*model.User, error) {
	if _, err := s.GetUser(id); err != nil {
		return nil, err
	}
	if err := s.Users.SetDisabled(id, disabled); err != nil {
		return nil, err
	}
	return s.GetUser(id)
}
