// Package models - claims của JWT token thuộc domain auth.
package models

import "github.com/dgrijalva/jwt-go"

// TokenClaims chứa data được mã hóa trong JWT token.
type TokenClaims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.StandardClaims
}
