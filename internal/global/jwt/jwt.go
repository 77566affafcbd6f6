package jwt

import (
	"time"

	"project-submission-system/config"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// Payload 写入令牌的用户信息
type Payload struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	RoleID int    `json:"role_id"`
}

type Claims struct {
	Payload
	jwtlib.RegisteredClaims
}

// CreateToken 签发访问令牌
func CreateToken(payload Payload) string {
	cfg := config.Get().JWT
	now := time.Now()
	claims := Claims{
		Payload: payload,
		RegisteredClaims: jwtlib.RegisteredClaims{
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(time.Duration(cfg.AccessExpire) * time.Second)),
			Issuer:    "project-submission-system",
		},
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.AccessSecret))
	if err != nil {
		return ""
	}
	return signed
}

// ParseToken 解析并校验访问令牌
func ParseToken(tokenString string) (*Claims, bool) {
	claims := &Claims{}
	token, err := jwtlib.ParseWithClaims(tokenString, claims, func(t *jwtlib.Token) (interface{}, error) {
		return []byte(config.Get().JWT.AccessSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}
	return claims, true
}
