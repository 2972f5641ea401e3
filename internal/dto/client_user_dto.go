package dto

import "greenbook/internal/model"

// ClientMemberAddRequest 按邮箱添加成员, 角色默认 GUEST
type ClientMemberAddRequest struct {
	Email string  `json:"email" binding:"required,email"`
	Role  *string `json:"role" binding:"omitempty,oneof=ADMIN USER GUEST"`
}

// ClientMemberUpdateRoleRequest 更新成员角色
type ClientMemberUpdateRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=ADMIN USER GUEST"`
}

// ClientMemberResponse 成员响应
type ClientMemberResponse struct {
	ID        string `json:"id"`
	ClientID  string `json:"client_id"`
	UserID    string `json:"user_id"`
	Role      string `json:"role"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// ToClientMemberResponse 转换成员
func ToClientMemberResponse(m *model.ClientUser) *ClientMemberResponse {
	resp := &ClientMemberResponse{
		ID:        m.ID,
		ClientID:  m.ClientID,
		UserID:    m.UserID,
		Role:      string(m.Role),
		CreatedAt: formatTime(m.CreatedAt),
	}
	if m.User != nil {
		resp.Name = m.User.Name
		resp.Email = m.User.Email
	}
	return resp
}
