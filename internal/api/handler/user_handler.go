package handler

import (
	"github.com/gin-gonic/gin"

	"greenbook/internal/api/middleware"
	"greenbook/internal/dto"
	"greenbook/internal/service"
	"greenbook/pkg/utils"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UpdateMe 更新个人资料
// @Summary 更新当前用户显示名
// @Tags 用户
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "个人资料"
// @Success 200 {object} utils.Response{data=dto.UserInfo}
// @Router /api/v1/users/me [put]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user, err := h.userService.UpdateProfile(middleware.CurrentUserID(c), &req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, user)
}
