package types

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/hrsuite/recruit-go/models"
)

type Claims struct {
	UserID   uint            `json:"user_id"`
	Username string          `json:"username"`
	Role     models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

func (c *Claims) IsStaff() bool {
	return c.Role == models.RoleAdmin || c.Role == models.RoleHR
}
