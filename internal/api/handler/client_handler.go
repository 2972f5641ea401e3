package handler

import (
	"github.com/gin-gonic/gin"

	"greenbook/internal/api/middleware"
	"greenbook/internal/dto"
	"greenbook/internal/service"
	"greenbook/pkg/utils"
)

type ClientHandler struct {
	service service.ClientService
}

func NewClientHandler(service service.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// Create 创建客户
// @Summary 创建客户
// @Description 任何已登录用户都可以创建, 创建者成为 ADMIN
// @Tags Client
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ClientCreateRequest true "创建客户请求"
// @Success 200 {object} utils.Response{data=dto.ClientResponse}
// @Router /api/v1/clients [post]
func (h *ClientHandler) Create(c *gin.Context) {
	var req dto.ClientCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	client, err := h.service.Create(middleware.CurrentUserID(c), &req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, client)
}

// List 我的客户
// @Summary 当前用户所属的客户
// @Tags Client
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Param keyword query string false "公司名称或邮箱"
// @Success 200 {object} utils.PageResponse{data=[]dto.ClientResponse}
// @Router /api/v1/clients [get]
func (h *ClientHandler) List(c *gin.Context) {
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err)
		return
	}

	clients, total, err := h.service.ListMine(middleware.CurrentUserID(c), &query)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.PageSuccess(c, clients, total, query.GetPage(), query.GetPageSize())
}

// Get 客户详情
// @Summary 客户详情
// @Tags Client
// @Produce json
// @Security BearerAuth
// @Param id path string true "客户ID"
// @Success 200 {object} utils.Response{data=dto.ClientResponse}
// @Router /api/v1/clients/{id} [get]
func (h *ClientHandler) Get(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		badRequest(c, err)
		return
	}

	client, err := h.service.Get(middleware.CurrentUserID(c), param.ID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, client)
}

// Update 更新客户
// @Summary 更新客户
// @Tags Client
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "客户ID"
// @Param request body dto.ClientUpdateRequest true "更新客户请求"
// @Success 200 {object} utils.Response{data=dto.ClientResponse}
// @Router /api/v1/clients/{id} [put]
func (h *ClientHandler) Update(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		badRequest(c, err)
		return
	}
	var req dto.ClientUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	client, err := h.service.Update(middleware.CurrentUserID(c), param.ID, &req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, client)
}

// Delete 删除客户
// @Summary 删除客户及其项目和成员关系
// @Tags Client
// @Produce json
// @Security BearerAuth
// @Param id path string true "客户ID"
// @Success 200 {object} utils.Response
// @Router /api/v1/clients/{id} [delete]
func (h *ClientHandler) Delete(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.service.Delete(middleware.CurrentUserID(c), param.ID); err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, nil)
}

// ListProjects 客户下的项目
// @Summary 客户下的项目, 按更新时间倒序
// @Tags Client
// @Produce json
// @Security BearerAuth
// @Param id path string true "客户ID"
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Param keyword query string false "项目名称或描述"
// @Success 200 {object} utils.PageResponse{data=[]dto.ProjectResponse}
// @Router /api/v1/clients/{id}/projects [get]
func (h *ClientHandler) ListProjects(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		badRequest(c, err)
		return
	}
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err)
		return
	}

	projects, total, err := h.service.ListProjects(middleware.CurrentUserID(c), param.ID, &query)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.PageSuccess(c, projects, total, query.GetPage(), query.GetPageSize())
}
