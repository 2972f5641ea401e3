package handler

import (
	"github.com/gin-gonic/gin"

	"greenbook/internal/api/middleware"
	"greenbook/internal/dto"
	"greenbook/internal/service"
	"greenbook/pkg/utils"
)

type ProjectHandler struct {
	projectService service.ProjectService
}

func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// Create 创建项目
// @Summary 创建项目
// @Description 创建代码仓库并从模板初始化, 再从模板复制 CMS 空间, 最后保存项目
// @Tags Project
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ProjectCreateRequest true "创建项目请求"
// @Success 200 {object} utils.Response{data=dto.ProjectResponse}
// @Router /api/v1/projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	var req dto.ProjectCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), middleware.CurrentUserID(c), &req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, project)
}

// List 获取项目列表
// @Summary 当前用户可见的项目
// @Tags Project
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Param keyword query string false "项目名称或描述"
// @Param client_id query string false "客户ID"
// @Param status query string false "部署状态"
// @Success 200 {object} utils.PageResponse{data=[]dto.ProjectResponse}
// @Router /api/v1/projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	var query dto.ProjectListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err)
		return
	}

	projects, total, err := h.projectService.List(middleware.CurrentUserID(c), &query)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.PageSuccess(c, projects, total, query.GetPage(), query.GetPageSize())
}

// Get 获取项目详情
// @Summary 获取项目详情
// @Tags Project
// @Produce json
// @Security BearerAuth
// @Param id path string true "项目ID"
// @Success 200 {object} utils.Response{data=dto.ProjectResponse}
// @Router /api/v1/projects/{id} [get]
func (h *ProjectHandler) Get(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		badRequest(c, err)
		return
	}

	project, err := h.projectService.Get(middleware.CurrentUserID(c), param.ID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, project)
}

// Update 更新项目
// @Summary 更新项目名称和描述
// @Tags Project
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "项目ID"
// @Param request body dto.ProjectUpdateRequest true "更新项目请求"
// @Success 200 {object} utils.Response{data=dto.ProjectResponse}
// @Router /api/v1/projects/{id} [put]
func (h *ProjectHandler) Update(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		badRequest(c, err)
		return
	}
	var req dto.ProjectUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	project, err := h.projectService.Update(middleware.CurrentUserID(c), param.ID, &req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, project)
}

// UpdateStatus 更新部署状态
// @Summary 更新项目部署状态
// @Tags Project
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "项目ID"
// @Param request body dto.ProjectStatusRequest true "状态"
// @Success 200 {object} utils.Response{data=dto.ProjectResponse}
// @Router /api/v1/projects/{id}/status [patch]
func (h *ProjectHandler) UpdateStatus(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		badRequest(c, err)
		return
	}
	var req dto.ProjectStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	project, err := h.projectService.UpdateStatus(middleware.CurrentUserID(c), param.ID, &req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, project)
}

// UpdateBuilderKey 更新 CMS 公钥
// @Summary 更新 CMS 公钥并写入仓库 .env
// @Description 公钥先保存, 仓库同步失败时返回 500 且 data 中带已保存的项目
// @Tags Project
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "项目ID"
// @Param request body dto.ProjectBuilderKeyRequest true "公钥"
// @Success 200 {object} utils.Response{data=dto.ProjectResponse}
// @Router /api/v1/projects/{id}/builder-key [patch]
func (h *ProjectHandler) UpdateBuilderKey(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		badRequest(c, err)
		return
	}
	var req dto.ProjectBuilderKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	project, err := h.projectService.UpdateBuilderKey(c.Request.Context(), middleware.CurrentUserID(c), param.ID, &req)
	if err != nil && project != nil {
		utils.ErrorWithData(c, err, project)
		return
	}
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, project)
}

// Delete 删除项目
// @Summary 删除项目
// @Description 仓库和 CMS 空间保留
// @Tags Project
// @Produce json
// @Security BearerAuth
// @Param id path string true "项目ID"
// @Success 200 {object} utils.Response
// @Router /api/v1/projects/{id} [delete]
func (h *ProjectHandler) Delete(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.projectService.Delete(middleware.CurrentUserID(c), param.ID); err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, nil)
}
