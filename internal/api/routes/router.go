package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	_ "github.com/linskybing/bodhi-go/docs"
	"github.com/linskybing/bodhi-go/internal/api/handlers"
	"github.com/linskybing/bodhi-go/internal/api/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handlers, authMiddleware *middleware.Auth) {
	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// --- public reads ---
	r.GET("/releases", h.Release.ListReleases)
	r.GET("/releases/:name", h.Release.GetRelease)
	r.GET("/updates/:alias", h.Update.GetUpdate)
	r.GET("/composes", h.Compose.ListComposes)
	r.GET("/composes/:release/:request", h.Compose.GetCompose)
	r.GET("/overrides/:nvr", h.Override.GetOverride)
	r.GET("/users/:name", h.User.GetUser)
	r.GET("/events", h.Event.RecentEvents)
	r.GET("/ws/events", h.Event.StreamEvents)

	// anonymous comments are allowed; a token, when sent, identifies the author
	r.POST("/updates/:alias/comments", middleware.OptionalJWT(), h.Update.AddComment)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/me", h.User.Me)

		updates := auth.Group("/updates")
		{
			updates.POST("", h.Update.CreateUpdate)
			updates.PUT("/:alias", h.Update.EditUpdate)
			updates.POST("/:alias/request", h.Update.SetRequest)
		}

		overrides := auth.Group("/overrides")
		{
			overrides.POST("", h.Override.CreateOverride)
			overrides.DELETE("/:nvr", h.Override.ExpireOverride)
		}

		composes := auth.Group("/composes")
		composes.Use(authMiddleware.Admin())
		{
			composes.POST("", h.Compose.StartCompose)
			composes.PUT("/:release/:request/state", h.Compose.UpdateComposeState)
			composes.DELETE("/:release/:request", h.Compose.AbortCompose)
		}
	}
}
