package model

import "greenbook/internal/pkg/auth"

const ClientTableName = "clients"
const ClientUserTableName = "client_users"

// Client 客户(组织), 项目与成员的归属
type Client struct {
	BaseModelWithSoftDelete
	CompanyName  string  `gorm:"size:191;not null" json:"company_name"`
	CompanyEmail string  `gorm:"size:191;not null" json:"company_email"`
	CompanyPhone *string `gorm:"size:50" json:"company_phone,omitempty"`
	CompanyLogo  *string `gorm:"size:500" json:"company_logo,omitempty"`
	Address      *string `gorm:"size:255" json:"address,omitempty"`
	City         *string `gorm:"size:100" json:"city,omitempty"`
	State        *string `gorm:"size:100" json:"state,omitempty"`
	Country      *string `gorm:"size:100" json:"country,omitempty"`
	CreatedByID  string  `gorm:"size:36;not null;index" json:"created_by_id"`

	CreatedBy *User `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
}

func (Client) TableName() string {
	return ClientTableName
}

// ClientUser 客户成员关系, 每个 (client, user) 至多一条
type ClientUser struct {
	BaseModel
	ClientID string    `gorm:"size:36;not null;uniqueIndex:idx_client_user" json:"client_id"`
	UserID   string    `gorm:"size:36;not null;uniqueIndex:idx_client_user;index" json:"user_id"`
	Role     auth.Role `gorm:"size:20;not null;default:GUEST" json:"role"`

	Client *Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	User   *User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (ClientUser) TableName() string {
	return ClientUserTableName
}
