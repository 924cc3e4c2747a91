package types

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/linskybing/naming-go/models"
)

type Claims struct {
	UserID   uint            `json:"user_id"`
	Username string          `json:"username"`
	FullName string          `json:"full_name"`
	Role     models.UserRole `json:"role"`
	jwt.RegisteredClaims
}
