package handler

import (
	"github.com/gin-gonic/gin"

	"greenbook/internal/api/middleware"
	"greenbook/internal/dto"
	"greenbook/internal/service"
	"greenbook/pkg/utils"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login 登录
// @Summary 用户登录
// @Description 支持LDAP和本地用户登录, 本地用户以邮箱作为用户名
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "登录请求"
// @Success 200 {object} utils.Response{data=dto.LoginResponse}
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, resp)
}

// Refresh 刷新Token
// @Summary 刷新访问Token
// @Description 使用RefreshToken获取新的AccessToken
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "刷新Token请求"
// @Success 200 {object} utils.Response{data=dto.LoginResponse}
// @Router /api/v1/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := h.authService.RefreshToken(req.RefreshToken)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, resp)
}

// GetMe 获取当前用户信息
// @Summary 获取当前用户信息
// @Description 返回当前用户及其所属客户
// @Tags 认证
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response{data=dto.MeResponse}
// @Router /api/v1/auth/me [get]
func (h *AuthHandler) GetMe(c *gin.Context) {
	me, err := h.authService.Me(middleware.CurrentEmail(c))
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, me)
}
