package service

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"greenbook/internal/dto"
	"greenbook/internal/model"
	"greenbook/internal/pkg/auth"
	"greenbook/internal/pkg/config"
	"greenbook/internal/pkg/crypto"
	"greenbook/internal/pkg/jwt"
	"greenbook/internal/pkg/logger"
	"greenbook/internal/repository"
	"greenbook/pkg/constants"
	pkgErrors "greenbook/pkg/errors"
)

type AuthService interface {
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	RefreshToken(refreshToken string) (*dto.LoginResponse, error)
	// Me 按 token 中的邮箱解析内部用户及其成员关系
	Me(email string) (*dto.MeResponse, error)
}

type authService struct {
	cfg         *config.AuthConfig
	userRepo    repository.UserRepository
	memberRepo  repository.ClientUserRepository
	ldapService LDAPService
}

func NewAuthService(
	cfg *config.AuthConfig,
	userRepo repository.UserRepository,
	memberRepo repository.ClientUserRepository,
	ldapService LDAPService,
) AuthService {
	return &authService{
		cfg:         cfg,
		userRepo:    userRepo,
		memberRepo:  memberRepo,
		ldapService: ldapService,
	}
}

func (s *authService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	var user *model.User
	var err error

	switch req.AuthType {
	case constants.AuthTypeLDAP:
		if !s.cfg.LDAP.Enabled {
			return nil, pkgErrors.New(pkgErrors.CodeAuthError, "LDAP认证未启用")
		}
		identity, err := s.ldapService.Authenticate(req.Username, req.Password)
		if err != nil {
			return nil, err
		}
		user, err = s.syncLDAPUser(identity)
		if err != nil {
			return nil, err
		}

	case constants.AuthTypeLocal:
		if !s.cfg.Local.Enabled {
			return nil, pkgErrors.New(pkgErrors.CodeAuthError, "本地认证未启用")
		}
		user, err = s.authenticateLocal(req.Username, req.Password)
		if err != nil {
			return nil, err
		}

	default:
		return nil, pkgErrors.New(pkgErrors.CodeBadRequest, "不支持的认证类型")
	}

	if err := s.userRepo.UpdateLastLogin(user.ID); err != nil {
		logger.Warn("更新最后登录时间失败", zap.String("user_id", user.ID), zap.Error(err))
	}

	return s.issueTokens(user)
}

func (s *authService) authenticateLocal(email, password string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(normalizeEmail(email))
	if err != nil {
		if errors.Is(err, pkgErrors.ErrRecordNotFound) {
			return nil, pkgErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if user.AuthProvider != constants.AuthTypeLocal {
		return nil, pkgErrors.ErrInvalidCredentials
	}
	if !crypto.CheckPassword(password, user.Password) {
		return nil, pkgErrors.ErrInvalidCredentials
	}

	return user, nil
}

// syncLDAPUser 首次登录时按邮箱创建内部用户, 全局角色为 USER
func (s *authService) syncLDAPUser(identity *LDAPIdentity) (*model.User, error) {
	email := normalizeEmail(identity.Email)
	user, err := s.userRepo.FindByEmail(email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, pkgErrors.ErrRecordNotFound) {
		return nil, err
	}

	user = &model.User{
		Name:         identity.DisplayName,
		Email:        email,
		Role:         auth.RoleUser,
		AuthProvider: constants.AuthTypeLDAP,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	logger.Info("LDAP用户首次登录, 已创建内部用户",
		zap.String("user_id", user.ID),
		zap.String("username", identity.Username))
	return user, nil
}

func (s *authService) RefreshToken(refreshToken string) (*dto.LoginResponse, error) {
	claims, err := jwt.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}

	if claims.Type != constants.JWTTypeRefresh {
		return nil, pkgErrors.New(pkgErrors.CodeUnauthorized, "无效的RefreshToken")
	}

	// 重新读取用户, 保证新 token 中的姓名是最新的
	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		if errors.Is(err, pkgErrors.ErrRecordNotFound) {
			return nil, pkgErrors.ErrInvalidToken
		}
		return nil, err
	}

	return s.issueTokens(user)
}

func (s *authService) Me(email string) (*dto.MeResponse, error) {
	user, err := s.userRepo.FindByEmail(normalizeEmail(email))
	if err != nil {
		if errors.Is(err, pkgErrors.ErrRecordNotFound) {
			return nil, pkgErrors.ErrUserNotFound
		}
		return nil, err
	}

	memberships, err := s.memberRepo.ListByUser(user.ID)
	if err != nil {
		return nil, err
	}

	return dto.ToMeResponse(user, memberships), nil
}

func (s *authService) issueTokens(user *model.User) (*dto.LoginResponse, error) {
	accessToken, err := jwt.GenerateAccessToken(user.ID, user.Email, user.Name, user.AuthProvider)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "生成AccessToken失败", err)
	}

	refreshToken, err := jwt.GenerateRefreshToken(user.ID, user.Email, user.Name, user.AuthProvider)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "生成RefreshToken失败", err)
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    s.cfg.JWT.AccessTokenExpire,
		User: &dto.UserInfo{
			ID:       user.ID,
			Name:     user.Name,
			Email:    user.Email,
			Role:     string(user.Role),
			AuthType: user.AuthProvider,
		},
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
