package service

import (
	"go.uber.org/zap"

	"greenbook/internal/dto"
	"greenbook/internal/model"
	"greenbook/internal/pkg/auth"
	"greenbook/internal/pkg/logger"
	"greenbook/internal/repository"
	pkgErrors "greenbook/pkg/errors"
)

const defaultClientMemberRole = auth.RoleGuest

type ClientUserService interface {
	// AddMember 按邮箱添加已注册用户, 未指定角色时为 GUEST
	AddMember(userID, clientID string, req *dto.ClientMemberAddRequest) (*dto.ClientMemberResponse, error)
	UpdateMemberRole(userID, clientID, memberUserID string, req *dto.ClientMemberUpdateRoleRequest) (*dto.ClientMemberResponse, error)
	RemoveMember(userID, clientID, memberUserID string) error
	ListMembers(userID, clientID string) ([]*dto.ClientMemberResponse, error)
}

type clientUserService struct {
	repo     repository.ClientUserRepository
	userRepo repository.UserRepository
	authz    AuthorizationService
}

func NewClientUserService(repo repository.ClientUserRepository, userRepo repository.UserRepository, authz AuthorizationService) ClientUserService {
	return &clientUserService{
		repo:     repo,
		userRepo: userRepo,
		authz:    authz,
	}
}

func (s *clientUserService) AddMember(userID, clientID string, req *dto.ClientMemberAddRequest) (*dto.ClientMemberResponse, error) {
	if err := s.authz.Authorize(clientID, userID, auth.OpMemberManage); err != nil {
		return nil, err
	}

	role := defaultClientMemberRole
	if req.Role != nil && *req.Role != "" {
		parsed, ok := auth.ParseRole(*req.Role)
		if !ok {
			return nil, pkgErrors.Validation("无效的角色")
		}
		role = parsed
	}

	target, err := s.userRepo.FindByEmail(normalizeEmail(req.Email))
	if err != nil {
		if isNotFound(err) {
			return nil, pkgErrors.ErrUserNotFound
		}
		return nil, err
	}

	if _, err := s.repo.FindByClientAndUser(clientID, target.ID); err == nil {
		return nil, pkgErrors.New(pkgErrors.CodeConflict, "该用户已是客户成员")
	} else if !isNotFound(err) {
		return nil, err
	}

	member := &model.ClientUser{
		ClientID: clientID,
		UserID:   target.ID,
		Role:     role,
	}
	if err := s.repo.Create(member); err != nil {
		return nil, err
	}
	member.User = target

	logger.Info("客户成员已添加",
		zap.String("client_id", clientID),
		zap.String("member_user_id", target.ID),
		zap.String("role", string(role)))
	return dto.ToClientMemberResponse(member), nil
}

func (s *clientUserService) UpdateMemberRole(userID, clientID, memberUserID string, req *dto.ClientMemberUpdateRoleRequest) (*dto.ClientMemberResponse, error) {
	if err := s.authz.Authorize(clientID, userID, auth.OpMemberManage); err != nil {
		return nil, err
	}

	role, ok := auth.ParseRole(req.Role)
	if !ok {
		return nil, pkgErrors.Validation("无效的角色")
	}

	member, err := s.findMember(clientID, memberUserID)
	if err != nil {
		return nil, err
	}
	if member.Role == auth.RoleAdmin && role != auth.RoleAdmin {
		if err := s.ensureAnotherAdmin(clientID, member.ID); err != nil {
			return nil, err
		}
	}

	if err := s.repo.UpdateRole(member.ID, role); err != nil {
		return nil, err
	}
	member.Role = role

	if user, err := s.userRepo.FindByID(memberUserID); err == nil {
		member.User = user
	}
	return dto.ToClientMemberResponse(member), nil
}

func (s *clientUserService) RemoveMember(userID, clientID, memberUserID string) error {
	if err := s.authz.Authorize(clientID, userID, auth.OpMemberManage); err != nil {
		return err
	}

	member, err := s.findMember(clientID, memberUserID)
	if err != nil {
		return err
	}
	if member.Role == auth.RoleAdmin {
		if err := s.ensureAnotherAdmin(clientID, member.ID); err != nil {
			return err
		}
	}

	if err := s.repo.Delete(member.ID); err != nil {
		return err
	}
	logger.Info("客户成员已移除",
		zap.String("client_id", clientID),
		zap.String("member_user_id", memberUserID))
	return nil
}

func (s *clientUserService) ListMembers(userID, clientID string) ([]*dto.ClientMemberResponse, error) {
	if err := s.authz.Authorize(clientID, userID, auth.OpMemberList); err != nil {
		return nil, err
	}

	members, err := s.repo.ListByClient(clientID)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ClientMemberResponse, len(members))
	for i, member := range members {
		responses[i] = dto.ToClientMemberResponse(member)
	}
	return responses, nil
}

func (s *clientUserService) findMember(clientID, memberUserID string) (*model.ClientUser, error) {
	member, err := s.repo.FindByClientAndUser(clientID, memberUserID)
	if err != nil {
		if isNotFound(err) {
			return nil, pkgErrors.NotFound("成员不存在")
		}
		return nil, err
	}
	return member, nil
}

// ensureAnotherAdmin 客户至少保留一个 ADMIN
func (s *clientUserService) ensureAnotherAdmin(clientID, excludeMemberID string) error {
	members, err := s.repo.ListByClient(clientID)
	if err != nil {
		return err
	}
	for _, m := range members {
		if m.ID != excludeMemberID && m.Role == auth.RoleAdmin {
			return nil
		}
	}
	return pkgErrors.New(pkgErrors.CodeConflict, "客户至少需要保留一个管理员")
}
