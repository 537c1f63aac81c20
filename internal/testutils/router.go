package testutils

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/bodhi-go/internal/api/handlers"
	"github.com/linskybing/bodhi-go/internal/api/middleware"
	"github.com/linskybing/bodhi-go/internal/api/routes"
	"github.com/linskybing/bodhi-go/internal/config"
)

func SetupRouter(h *handlers.Handlers, policy *config.Policy) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.RegisterRoutes(r, h, middleware.NewAuth(policy))
	return r
}
