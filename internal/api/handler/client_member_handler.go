package handler

import (
	"github.com/gin-gonic/gin"

	"greenbook/internal/api/middleware"
	"greenbook/internal/dto"
	"greenbook/internal/service"
	"greenbook/pkg/utils"
)

type ClientMemberHandler struct {
	service service.ClientUserService
}

func NewClientMemberHandler(service service.ClientUserService) *ClientMemberHandler {
	return &ClientMemberHandler{service: service}
}

// AddMember 添加客户成员
// @Summary 按邮箱添加客户成员
// @Tags ClientMember
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "客户ID"
// @Param request body dto.ClientMemberAddRequest true "添加成员请求"
// @Success 200 {object} utils.Response{data=dto.ClientMemberResponse}
// @Router /api/v1/clients/{id}/members [post]
func (h *ClientMemberHandler) AddMember(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		badRequest(c, err)
		return
	}
	var req dto.ClientMemberAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	member, err := h.service.AddMember(middleware.CurrentUserID(c), param.ID, &req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, member)
}

// ListMembers 客户成员列表
// @Summary 客户成员列表
// @Tags ClientMember
// @Produce json
// @Security BearerAuth
// @Param id path string true "客户ID"
// @Success 200 {object} utils.Response{data=[]dto.ClientMemberResponse}
// @Router /api/v1/clients/{id}/members [get]
func (h *ClientMemberHandler) ListMembers(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		badRequest(c, err)
		return
	}

	members, err := h.service.ListMembers(middleware.CurrentUserID(c), param.ID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, members)
}

// UpdateRole 更新成员角色
// @Summary 更新成员角色
// @Tags ClientMember
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "客户ID"
// @Param userId path string true "用户ID"
// @Param request body dto.ClientMemberUpdateRoleRequest true "角色"
// @Success 200 {object} utils.Response{data=dto.ClientMemberResponse}
// @Router /api/v1/clients/{id}/members/{userId} [put]
func (h *ClientMemberHandler) UpdateRole(c *gin.Context) {
	var param dto.MemberParam
	if err := c.ShouldBindUri(&param); err != nil {
		badRequest(c, err)
		return
	}
	var req dto.ClientMemberUpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	member, err := h.service.UpdateMemberRole(middleware.CurrentUserID(c), param.ID, param.UserID, &req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, member)
}

// RemoveMember 移除成员
// @Summary 移除客户成员
// @Tags ClientMember
// @Produce json
// @Security BearerAuth
// @Param id path string true "客户ID"
// @Param userId path string true "用户ID"
// @Success 200 {object} utils.Response
// @Router /api/v1/clients/{id}/members/{userId} [delete]
func (h *ClientMemberHandler) RemoveMember(c *gin.Context) {
	var param dto.MemberParam
	if err := c.ShouldBindUri(&param); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.service.RemoveMember(middleware.CurrentUserID(c), param.ID, param.UserID); err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, nil)
}
