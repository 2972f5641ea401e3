package service

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"greenbook/internal/dto"
	"greenbook/internal/model"
	"greenbook/internal/pkg/auth"
	"greenbook/internal/pkg/logger"
	"greenbook/internal/repository"
	pkgErrors "greenbook/pkg/errors"
)

var validate = validator.New()

type ClientService interface {
	// Create 创建客户, 创建者同时成为该客户的 ADMIN
	Create(userID string, req *dto.ClientCreateRequest) (*dto.ClientResponse, error)
	Update(userID, clientID string, req *dto.ClientUpdateRequest) (*dto.ClientResponse, error)
	// Delete 连同客户下的项目和成员关系一起删除
	Delete(userID, clientID string) error
	Get(userID, clientID string) (*dto.ClientResponse, error)
	ListMine(userID string, query *dto.PageQuery) ([]*dto.ClientResponse, int64, error)
	ListProjects(userID, clientID string, query *dto.PageQuery) ([]*dto.ProjectResponse, int64, error)
}

type clientService struct {
	repo        repository.ClientRepository
	projectRepo repository.ProjectRepository
	authz       AuthorizationService
}

func NewClientService(repo repository.ClientRepository, projectRepo repository.ProjectRepository, authz AuthorizationService) ClientService {
	return &clientService{
		repo:        repo,
		projectRepo: projectRepo,
		authz:       authz,
	}
}

func (s *clientService) Create(userID string, req *dto.ClientCreateRequest) (*dto.ClientResponse, error) {
	name := strings.TrimSpace(req.CompanyName)
	email := strings.TrimSpace(req.CompanyEmail)
	if err := validateCompany(name, email); err != nil {
		return nil, err
	}

	client := &model.Client{
		CompanyName:  name,
		CompanyEmail: email,
		CompanyPhone: req.CompanyPhone,
		CompanyLogo:  req.CompanyLogo,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		Country:      req.Country,
		CreatedByID:  userID,
	}
	if err := s.repo.CreateWithAdmin(client, userID); err != nil {
		return nil, err
	}

	logger.Info("客户创建成功", zap.String("client_id", client.ID), zap.String("user_id", userID))
	return dto.ToClientResponse(client), nil
}

func (s *clientService) Update(userID, clientID string, req *dto.ClientUpdateRequest) (*dto.ClientResponse, error) {
	if err := s.authz.Authorize(clientID, userID, auth.OpClientUpdate); err != nil {
		return nil, err
	}

	client, err := s.repo.FindByID(clientID)
	if err != nil {
		return nil, err
	}

	if req.CompanyName != nil {
		client.CompanyName = strings.TrimSpace(*req.CompanyName)
	}
	if req.CompanyEmail != nil {
		client.CompanyEmail = strings.TrimSpace(*req.CompanyEmail)
	}
	if err := validateCompany(client.CompanyName, client.CompanyEmail); err != nil {
		return nil, err
	}
	if req.CompanyPhone != nil {
		client.CompanyPhone = req.CompanyPhone
	}
	if req.CompanyLogo != nil {
		client.CompanyLogo = req.CompanyLogo
	}
	if req.Address != nil {
		client.Address = req.Address
	}
	if req.City != nil {
		client.City = req.City
	}
	if req.State != nil {
		client.State = req.State
	}
	if req.Country != nil {
		client.Country = req.Country
	}

	if err := s.repo.Update(client); err != nil {
		return nil, err
	}
	return dto.ToClientResponse(client), nil
}

func (s *clientService) Delete(userID, clientID string) error {
	if err := s.authz.Authorize(clientID, userID, auth.OpClientDelete); err != nil {
		return err
	}
	if _, err := s.repo.FindByID(clientID); err != nil {
		return err
	}

	if err := s.repo.DeleteCascade(clientID); err != nil {
		return err
	}
	logger.Info("客户已删除", zap.String("client_id", clientID), zap.String("user_id", userID))
	return nil
}

// Get 创建者或任意成员可查看
func (s *clientService) Get(userID, clientID string) (*dto.ClientResponse, error) {
	client, err := s.repo.FindByID(clientID)
	if err != nil {
		return nil, err
	}

	if client.CreatedByID != userID {
		if err := s.authz.Authorize(clientID, userID, auth.OpClientView); err != nil {
			return nil, err
		}
	}
	return dto.ToClientResponse(client), nil
}

func (s *clientService) ListMine(userID string, query *dto.PageQuery) ([]*dto.ClientResponse, int64, error) {
	clients, total, err := s.repo.ListByMember(userID, query.GetPage(), query.GetPageSize(), strings.TrimSpace(query.Keyword))
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*dto.ClientResponse, len(clients))
	for i, client := range clients {
		responses[i] = dto.ToClientResponse(client)
	}
	return responses, total, nil
}

// ListProjects 按更新时间倒序
func (s *clientService) ListProjects(userID, clientID string, query *dto.PageQuery) ([]*dto.ProjectResponse, int64, error) {
	if err := s.authz.Authorize(clientID, userID, auth.OpProjectView); err != nil {
		return nil, 0, err
	}

	projects, total, err := s.projectRepo.List(repository.ProjectFilter{
		ClientIDs: []string{clientID},
		Keyword:   strings.TrimSpace(query.Keyword),
		Page:      query.GetPage(),
		PageSize:  query.GetPageSize(),
	})
	if err != nil {
		return nil, 0, err
	}
	return dto.ToProjectResponses(projects), total, nil
}

func validateCompany(name, email string) error {
	if name == "" {
		return pkgErrors.Validation("公司名称不能为空")
	}
	if email == "" {
		return pkgErrors.Validation("公司邮箱不能为空")
	}
	if err := validate.Var(email, "email"); err != nil {
		return pkgErrors.Validation("公司邮箱格式不正确")
	}
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, pkgErrors.ErrRecordNotFound)
}
