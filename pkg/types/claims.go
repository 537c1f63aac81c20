package types

import "github.com/golang-jwt/jwt/v5"

// Claims identify the caller. Groups drive admin and critical path approval checks.
type Claims struct {
	Username string   `json:"username"`
	Groups   []string `json:"groups"`
	jwt.RegisteredClaims
}
