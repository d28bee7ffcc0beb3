package models

import "github.com/golang-jwt/jwt/v5"

// JWTClaims carries the authenticated identity inside access tokens.
type JWTClaims struct {
	UserID int64    `json:"uid"`
	Email  string   `json:"email"`
	Role   UserRole `json:"role"`
	jwt.RegisteredClaims
}

// LoginResponse is the payload returned on successful authentication.
type LoginResponse struct {
	User        User   `json:"user"`
	AccessToken string `json:"accessToken"`
	ExpiresIn   int64  `json:"expiresIn"`
}
