package dto

import (
	"github.com/samber/lo"

	"greenbook/internal/model"
)

// UpdateProfileRequest 更新个人资料, 不允许修改角色
type UpdateProfileRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// UserSimpleResponse 用户精简信息
type UserSimpleResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// MembershipResponse 当前用户的客户成员关系
type MembershipResponse struct {
	ClientID    string `json:"client_id"`
	CompanyName string `json:"company_name,omitempty"`
	Role        string `json:"role"`
}

// MeResponse 当前用户及其成员关系
type MeResponse struct {
	UserInfo
	Memberships []MembershipResponse `json:"memberships"`
}

// ToMeResponse 转换当前用户
func ToMeResponse(user *model.User, memberships []*model.ClientUser) *MeResponse {
	return &MeResponse{
		UserInfo: UserInfo{
			ID:       user.ID,
			Name:     user.Name,
			Email:    user.Email,
			Role:     string(user.Role),
			AuthType: user.AuthProvider,
		},
		Memberships: lo.Map(memberships, func(m *model.ClientUser, _ int) MembershipResponse {
			resp := MembershipResponse{ClientID: m.ClientID, Role: string(m.Role)}
			if m.Client != nil {
				resp.CompanyName = m.Client.CompanyName
			}
			return resp
		}),
	}
}
