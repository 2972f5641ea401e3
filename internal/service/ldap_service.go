package service

import (
	"fmt"

	"github.com/go-ldap/ldap/v3"

	"greenbook/internal/pkg/config"
	pkgErrors "greenbook/pkg/errors"
)

// LDAPIdentity LDAP 认证通过后得到的身份
type LDAPIdentity struct {
	Username    string
	Email       string
	DisplayName string
}

type LDAPService interface {
	Authenticate(username, password string) (*LDAPIdentity, error)
}

type ldapService struct {
	cfg *config.LDAPConfig
}

func NewLDAPService(cfg *config.LDAPConfig) LDAPService {
	return &ldapService{
		cfg: cfg,
	}
}

func (s *ldapService) Authenticate(username, password string) (*LDAPIdentity, error) {
	if !s.cfg.Enabled {
		return nil, pkgErrors.New(pkgErrors.CodeAuthError, "LDAP认证未启用")
	}

	conn, err := s.connect()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	userDN, attributes, err := s.searchUser(conn, username)
	if err != nil {
		return nil, err
	}

	// 用用户自己的 DN 重新绑定来校验密码
	if err := conn.Bind(userDN, password); err != nil {
		return nil, pkgErrors.ErrInvalidCredentials
	}

	identity := &LDAPIdentity{
		Username:    username,
		Email:       attributes[s.cfg.Attributes.Email],
		DisplayName: attributes[s.cfg.Attributes.DisplayName],
	}
	if identity.Email == "" {
		// 内部用户以邮箱关联, 没有邮箱无法登录
		return nil, pkgErrors.New(pkgErrors.CodeAuthError, "LDAP用户缺少邮箱属性")
	}
	if identity.DisplayName == "" {
		identity.DisplayName = username
	}
	return identity, nil
}

func (s *ldapService) connect() (*ldap.Conn, error) {
	var conn *ldap.Conn
	var err error

	address := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	if s.cfg.UseSSL {
		conn, err = ldap.DialURL("ldaps://" + address)
	} else {
		conn, err = ldap.DialURL("ldap://" + address)
	}
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeAuthError, "LDAP连接失败", err)
	}

	// 使用管理员账号绑定
	if err := conn.Bind(s.cfg.BindDN, s.cfg.BindPassword); err != nil {
		conn.Close()
		return nil, pkgErrors.Wrap(pkgErrors.CodeAuthError, "LDAP绑定失败", err)
	}

	return conn, nil
}

func (s *ldapService) searchUser(conn *ldap.Conn, username string) (string, map[string]string, error) {
	filter := fmt.Sprintf(s.cfg.UserFilter, ldap.EscapeFilter(username))

	searchRequest := ldap.NewSearchRequest(
		s.cfg.BaseDN,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		0,
		0,
		false,
		filter,
		s.searchAttributes(),
		nil,
	)

	result, err := conn.Search(searchRequest)
	if err != nil {
		return "", nil, pkgErrors.Wrap(pkgErrors.CodeAuthError, "LDAP搜索失败", err)
	}

	if len(result.Entries) == 0 {
		// 不区分用户不存在和密码错误
		return "", nil, pkgErrors.ErrInvalidCredentials
	}
	if len(result.Entries) > 1 {
		return "", nil, pkgErrors.New(pkgErrors.CodeAuthError, "找到多个匹配的用户")
	}

	entry := result.Entries[0]
	attributes := make(map[string]string)
	for _, name := range s.searchAttributes() {
		attributes[name] = entry.GetAttributeValue(name)
	}

	return entry.DN, attributes, nil
}

func (s *ldapService) searchAttributes() []string {
	return []string{s.cfg.Attributes.Username, s.cfg.Attributes.Email, s.cfg.Attributes.DisplayName}
}
