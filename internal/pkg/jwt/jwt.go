package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"greenbook/internal/pkg/config"
	"greenbook/pkg/constants"
	pkgErrors "greenbook/pkg/errors"
)

// UserClaims 用户Claims
type UserClaims struct {
	UserID   string `json:"uid"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	AuthType string `json:"auth_type"` // ldap or local
	Type     string `json:"type"`      // access or refresh
	jwt.RegisteredClaims
}

// GenerateAccessToken 生成访问Token
func GenerateAccessToken(userID, email, name, authType string) (string, error) {
	cfg := config.GlobalConfig.Auth.JWT
	return generate(cfg, userID, email, name, authType, constants.JWTTypeAccess, time.Duration(cfg.AccessTokenExpire)*time.Second)
}

// GenerateRefreshToken 生成刷新Token
func GenerateRefreshToken(userID, email, name, authType string) (string, error) {
	cfg := config.GlobalConfig.Auth.JWT
	return generate(cfg, userID, email, name, authType, constants.JWTTypeRefresh, time.Duration(cfg.RefreshTokenExpire)*time.Second)
}

func generate(cfg config.JWTConfig, userID, email, name, authType, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := UserClaims{
		UserID:   userID,
		Email:    email,
		Name:     name,
		AuthType: authType,
		Type:     tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// ParseToken 解析Token
func ParseToken(tokenString string) (*UserClaims, error) {
	cfg := config.GlobalConfig.Auth.JWT

	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	})

	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeUnauthorized, "解析Token失败", err)
	}

	if claims, ok := token.Claims.(*UserClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, pkgErrors.ErrInvalidToken
}

// ValidateToken 验证Token有效性
func ValidateToken(tokenString string) (*UserClaims, error) {
	claims, err := ParseToken(tokenString)
	if err != nil {
		return nil, err
	}

	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return nil, pkgErrors.ErrTokenExpired
	}

	return claims, nil
}
