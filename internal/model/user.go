package model

import (
	"time"

	"greenbook/internal/pkg/auth"
)

const UserTableName = "users"

// User 用户, 以邮箱作为外部身份到内部用户的映射键
type User struct {
	BaseModel
	Name         string     `gorm:"size:100;not null" json:"name"`
	Email        string     `gorm:"size:191;not null;uniqueIndex" json:"email"`
	Role         auth.Role  `gorm:"size:20;not null;default:USER" json:"role"`
	AuthProvider string     `gorm:"size:20;not null;default:local" json:"auth_provider"`
	Password     string     `gorm:"size:255" json:"-"` // LDAP 用户为空
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`

	Memberships []ClientUser `gorm:"foreignKey:UserID;references:ID" json:"memberships,omitempty"`
}

// TableName 指定表名
func (User) TableName() string {
	return UserTableName
}
