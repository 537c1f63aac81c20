package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/bodhi-go/internal/application"
	"github.com/linskybing/bodhi-go/internal/domain/override"
	"github.com/linskybing/bodhi-go/pkg/response"
)

type OverrideHandler struct {
	svc *application.OverrideService
}

func NewOverrideHandler(svc *application.OverrideService) *OverrideHandler {
	return &OverrideHandler{svc: svc}
}

// GetOverride godoc
// @Summary Get a buildroot override
// @Tags overrides
// @Produce json
// @Param nvr path string true "Build NVR"
// @Success 200 {object} override.BuildrootOverride
// @Failure 404 {object} response.ErrorResponse
// @Router /overrides/{nvr} [get]
func (h *OverrideHandler) GetOverride(c *gin.Context) {
	o, err := h.svc.Get(c.Param("nvr"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// CreateOverride godoc
// @Summary Create or refresh a buildroot override
// @Tags overrides
// @Accept json
// @Produce json
// @Param input body override.CreateOverrideDTO true "Override"
// @Success 201 {object} override.BuildrootOverride
// @Failure 400 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /overrides [post]
func (h *OverrideHandler) CreateOverride(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var input override.CreateOverrideDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	o, err := h.svc.Create(c.Request.Context(), input, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, o)
}

// ExpireOverride godoc
// @Summary Expire a buildroot override now
// @Tags overrides
// @Produce json
// @Param nvr path string true "Build NVR"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /overrides/{nvr} [delete]
func (h *OverrideHandler) ExpireOverride(c *gin.Context) {
	if err := h.svc.Expire(c.Request.Context(), c.Param("nvr")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Override expired"})
}
