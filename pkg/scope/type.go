package scope

import "github.com/golang-jwt/jwt"

// Payload represents the JWT token claims.
type Payload struct {
	jwt.StandardClaims
	UserID   string `json:"sub"`      // Subject (user ID)
	Username string `json:"username"` // Username
	Role     string `json:"role"`     // Operator role
}

// implManager implements Manager.
type implManager struct {
	secretKey string
}

// PayloadCtxKey keys the verified payload in a request context.
type PayloadCtxKey struct{}
