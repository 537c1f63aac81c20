package middleware

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/linskybing/bodhi-go/internal/config"
	"github.com/linskybing/bodhi-go/pkg/response"
)

// Auth handles authorization middleware
type Auth struct {
	policy *config.Policy
}

// NewAuth creates a new Auth middleware instance
func NewAuth(policy *config.Policy) *Auth {
	return &Auth{policy: policy}
}

// IsAdmin reports whether one of groups is an admin group.
func (a *Auth) IsAdmin(groups []string) bool {
	for _, g := range groups {
		for _, admin := range a.policy.AdminGroups {
			if g == admin {
				return true
			}
		}
	}
	return false
}

// Admin checks the caller belongs to an admin group. Must run after JWTAuthMiddleware.
func (a *Auth) Admin() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := CurrentActor(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid token claims"})
			return
		}
		if !a.IsAdmin(actor.Groups) {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "admin only"})
			return
		}
		c.Next()
	}
}

// LoggingMiddleware logs one line per request.
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Printf("[http] %s %s %d %s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start).Round(time.Microsecond))
	}
}

// CORSMiddleware allows the configured origins. Websocket upgrades bypass it.
func CORSMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		cfg.AllowOrigins = origins
	}

	corsHandler := cors.New(cfg)
	return func(c *gin.Context) {
		if strings.EqualFold(c.GetHeader("Upgrade"), "websocket") {
			c.Next()
			return
		}
		corsHandler(c)
	}
}
