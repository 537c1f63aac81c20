package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/linskybing/bodhi-go/internal/application"
	"github.com/linskybing/bodhi-go/internal/config"
	"github.com/linskybing/bodhi-go/pkg/types"
)

const claimsKey = "claims"

var jwtKey []byte

// Init sets the JWT signing key.
func Init() {
	jwtKey = []byte(config.JwtSecret)
}

// GenerateToken issues a signed token for name with the given groups.
var GenerateToken = func(name string, groups []string, expireDuration time.Duration) (string, error) {
	claims := &types.Claims{
		Username: name,
		Groups:   groups,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expireDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    config.Issuer,
			Subject:   name,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

// ParseToken validates and extracts claims.
func ParseToken(tokenStr string) (*types.Claims, error) {
	claims := &types.Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Username == "" {
		return nil, errors.New("token has no username")
	}
	return claims, nil
}

// tokenFromRequest reads a Bearer token from the Authorization header or the
// token cookie. ok is false when neither is present.
func tokenFromRequest(c *gin.Context) (token string, ok bool, err error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return "", true, errors.New("Authorization header format must be Bearer {token}")
		}
		return parts[1], true, nil
	}
	if cookie, err := c.Cookie("token"); err == nil {
		return cookie, true, nil
	}
	return "", false, nil
}

// JWTAuthMiddleware validates Bearer token in Authorization header or cookie.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok, err := tokenFromRequest(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization required (header or cookie)"})
			return
		}

		claims, err := ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token: " + err.Error()})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// OptionalJWT sets claims when a valid token is present and lets anonymous
// requests through otherwise.
func OptionalJWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok, err := tokenFromRequest(c)
		if ok && err == nil {
			if claims, err := ParseToken(tokenStr); err == nil {
				c.Set(claimsKey, claims)
			}
		}
		c.Next()
	}
}

// CurrentActor returns the authenticated caller. ok is false for anonymous requests.
func CurrentActor(c *gin.Context) (application.Actor, bool) {
	v, exists := c.Get(claimsKey)
	if !exists {
		return application.Actor{}, false
	}
	claims, ok := v.(*types.Claims)
	if !ok {
		return application.Actor{}, false
	}
	return application.Actor{Name: claims.Username, Groups: claims.Groups}, true
}
