package dto

import "greenbook/internal/model"

// ClientCreateRequest 创建客户请求
type ClientCreateRequest struct {
	CompanyName  string  `json:"company_name" binding:"required,max=191"`
	CompanyEmail string  `json:"company_email" binding:"required,email,max=191"`
	CompanyPhone *string `json:"company_phone" binding:"omitempty,max=50"`
	CompanyLogo  *string `json:"company_logo" binding:"omitempty,url,max=500"`
	Address      *string `json:"address" binding:"omitempty,max=255"`
	City         *string `json:"city" binding:"omitempty,max=100"`
	State        *string `json:"state" binding:"omitempty,max=100"`
	Country      *string `json:"country" binding:"omitempty,max=100"`
}

// ClientUpdateRequest 更新客户请求, 只更新传入的字段
type ClientUpdateRequest struct {
	CompanyName  *string `json:"company_name" binding:"omitempty,min=1,max=191"`
	CompanyEmail *string `json:"company_email" binding:"omitempty,email,max=191"`
	CompanyPhone *string `json:"company_phone" binding:"omitempty,max=50"`
	CompanyLogo  *string `json:"company_logo" binding:"omitempty,url,max=500"`
	Address      *string `json:"address" binding:"omitempty,max=255"`
	City         *string `json:"city" binding:"omitempty,max=100"`
	State        *string `json:"state" binding:"omitempty,max=100"`
	Country      *string `json:"country" binding:"omitempty,max=100"`
}

// ClientResponse 客户响应
type ClientResponse struct {
	ID           string  `json:"id"`
	CompanyName  string  `json:"company_name"`
	CompanyEmail string  `json:"company_email"`
	CompanyPhone *string `json:"company_phone,omitempty"`
	CompanyLogo  *string `json:"company_logo,omitempty"`
	Address      *string `json:"address,omitempty"`
	City         *string `json:"city,omitempty"`
	State        *string `json:"state,omitempty"`
	Country      *string `json:"country,omitempty"`
	CreatedByID  string  `json:"created_by_id"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

// ToClientResponse 转换客户
func ToClientResponse(c *model.Client) *ClientResponse {
	return &ClientResponse{
		ID:           c.ID,
		CompanyName:  c.CompanyName,
		CompanyEmail: c.CompanyEmail,
		CompanyPhone: c.CompanyPhone,
		CompanyLogo:  c.CompanyLogo,
		Address:      c.Address,
		City:         c.City,
		State:        c.State,
		Country:      c.Country,
		CreatedByID:  c.CreatedByID,
		CreatedAt:    formatTime(c.CreatedAt),
		UpdatedAt:    formatTime(c.UpdatedAt),
	}
}
