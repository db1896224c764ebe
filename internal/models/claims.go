package models

import "github.com/golang-jwt/jwt/v5"

// JWTClaims is the access token payload issued after a successful login.
type JWTClaims struct {
	UserID   int64  `json:"uid"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Name     string `json:"name,omitempty"`
	jwt.RegisteredClaims
}
