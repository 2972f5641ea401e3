package service

import (
	"errors"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"greenbook/internal/pkg/auth"
	"greenbook/internal/pkg/logger"
	"greenbook/internal/repository"
	pkgErrors "greenbook/pkg/errors"
)

// AuthorizationService 基于客户成员关系做权限判断
//  1. 角色只在 client_users 中按 (client, user) 记录, 用户的全局角色不参与判断
//  2. 操作 -> 角色 的关系写死在 internal/pkg/auth 的 Policy 中
//  3. 判断与后续写操作之间不加锁
type AuthorizationService interface {
	// VerifyAccess 成员关系存在且角色在 allowed 中时返回 true
	VerifyAccess(clientID, userID string, allowed []auth.Role) bool
	// Authorize 按操作策略判断, 拒绝时返回 Forbidden 错误
	Authorize(clientID, userID string, op auth.Operation) error
}

type authorizationService struct {
	memberRepo repository.ClientUserRepository
}

// NewAuthorizationService 创建 AuthorizationService
func NewAuthorizationService(memberRepo repository.ClientUserRepository) AuthorizationService {
	return &authorizationService{memberRepo: memberRepo}
}

func (s *authorizationService) VerifyAccess(clientID, userID string, allowed []auth.Role) bool {
	if clientID == "" || userID == "" {
		return false
	}

	member, err := s.memberRepo.FindByClientAndUser(clientID, userID)
	if err != nil {
		if !errors.Is(err, pkgErrors.ErrRecordNotFound) {
			logger.Warn("查询成员关系失败, 按无权限处理",
				zap.String("client_id", clientID),
				zap.String("user_id", userID),
				zap.Error(err))
		}
		return false
	}

	return lo.Contains(allowed, member.Role)
}

func (s *authorizationService) Authorize(clientID, userID string, op auth.Operation) error {
	if !auth.RequiresMembership(op) {
		return nil
	}
	if s.VerifyAccess(clientID, userID, auth.RolesFor(op)) {
		return nil
	}

	logger.Debug("操作被拒绝",
		zap.String("client_id", clientID),
		zap.String("user_id", userID),
		zap.String("operation", string(op)))
	return pkgErrors.ErrNoAccess
}
