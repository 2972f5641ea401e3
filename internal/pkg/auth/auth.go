package auth

import (
	"strings"

	"github.com/samber/lo"
)

// Role 客户内角色
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
	RoleGuest Role = "GUEST"
)

// AllRoles 任意成员身份
var AllRoles = []Role{RoleAdmin, RoleUser, RoleGuest}

// Valid 是否为已知角色
func (r Role) Valid() bool {
	return lo.Contains(AllRoles, r)
}

// ParseRole 大小写不敏感解析角色
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	return r, r.Valid()
}

// Operation 需要鉴权的操作
type Operation string

const (
	OpClientCreate        Operation = "client:create"
	OpClientUpdate        Operation = "client:update"
	OpClientDelete        Operation = "client:delete"
	OpClientView          Operation = "client:view"
	OpMemberManage        Operation = "member:manage"
	OpMemberList          Operation = "member:list"
	OpProjectCreate       Operation = "project:create"
	OpProjectUpdate       Operation = "project:update"
	OpProjectBuilderKey   Operation = "project:builder_key"
	OpProjectUpdateStatus Operation = "project:status"
	OpProjectDelete       Operation = "project:delete"
	OpProjectView         Operation = "project:view"
)

// Policy 每个操作允许的角色
// OpClientCreate 不在表中: 任何已登录用户都可以创建客户, 不依赖成员关系
var Policy = map[Operation][]Role{
	OpClientUpdate:        {RoleAdmin},
	OpClientDelete:        {RoleAdmin},
	OpClientView:          AllRoles,
	OpMemberManage:        {RoleAdmin},
	OpMemberList:          AllRoles,
	OpProjectCreate:       {RoleAdmin, RoleUser},
	OpProjectUpdate:       {RoleAdmin, RoleUser},
	OpProjectBuilderKey:   {RoleAdmin, RoleUser},
	OpProjectUpdateStatus: {RoleAdmin},
	OpProjectDelete:       {RoleAdmin},
	OpProjectView:         AllRoles,
}

// RequiresMembership 操作是否需要客户成员身份
func RequiresMembership(op Operation) bool {
	_, ok := Policy[op]
	return ok
}

// RolesFor 返回操作允许的角色, 未登记的操作返回空
func RolesFor(op Operation) []Role {
	return Policy[op]
}

// Allow 判断角色是否可执行操作
func Allow(role Role, op Operation) bool {
	if !RequiresMembership(op) {
		return true
	}
	return lo.Contains(Policy[op], role)
}
