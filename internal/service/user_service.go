package service

import (
	"strings"

	"greenbook/internal/dto"
	"greenbook/internal/repository"
	pkgErrors "greenbook/pkg/errors"
)

type UserService interface {
	// UpdateProfile 只修改显示名, 角色不能通过本接口修改
	UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*dto.UserInfo, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*dto.UserInfo, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, pkgErrors.Validation("姓名不能为空")
	}

	if err := s.userRepo.UpdateName(userID, name); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	return &dto.UserInfo{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Role:     string(user.Role),
		AuthType: user.AuthProvider,
	}, nil
}
