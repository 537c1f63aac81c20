package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/bodhi-go/internal/application"
	"github.com/linskybing/bodhi-go/internal/domain/compose"
	"github.com/linskybing/bodhi-go/pkg/response"
)

type ComposeHandler struct {
	svc *application.ComposeService
}

func NewComposeHandler(svc *application.ComposeService) *ComposeHandler {
	return &ComposeHandler{svc: svc}
}

// ListComposes godoc
// @Summary List running composes
// @Tags composes
// @Produce json
// @Success 200 {array} compose.View
// @Router /composes [get]
func (h *ComposeHandler) ListComposes(c *gin.Context) {
	views, err := h.svc.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// GetCompose godoc
// @Summary Get a compose
// @Tags composes
// @Produce json
// @Param release path string true "Release name"
// @Param request path string true "testing or stable"
// @Success 200 {object} compose.View
// @Failure 404 {object} response.ErrorResponse
// @Router /composes/{release}/{request} [get]
func (h *ComposeHandler) GetCompose(c *gin.Context) {
	view, err := h.svc.Get(c.Param("release"), c.Param("request"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// StartCompose godoc
// @Summary Start a compose and lock its updates
// @Tags composes
// @Accept json
// @Produce json
// @Param input body compose.StartComposeDTO true "Compose"
// @Success 201 {object} compose.View
// @Failure 409 {object} response.ErrorResponse "Compose already running"
// @Security BearerAuth
// @Router /composes [post]
func (h *ComposeHandler) StartCompose(c *gin.Context) {
	var input compose.StartComposeDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	view, err := h.svc.Start(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// UpdateComposeState godoc
// @Summary Report compose progress
// @Description A success state marks every locked update pushed; a failed state keeps the locks.
// @Tags composes
// @Accept json
// @Produce json
// @Param release path string true "Release name"
// @Param request path string true "testing or stable"
// @Param input body compose.StateDTO true "State"
// @Success 200 {object} compose.View
// @Failure 404 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /composes/{release}/{request}/state [put]
func (h *ComposeHandler) UpdateComposeState(c *gin.Context) {
	var input compose.StateDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	view, err := h.svc.UpdateState(c.Request.Context(), c.Param("release"), c.Param("request"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// AbortCompose godoc
// @Summary Abort a compose and unlock its updates
// @Tags composes
// @Produce json
// @Param release path string true "Release name"
// @Param request path string true "testing or stable"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /composes/{release}/{request} [delete]
func (h *ComposeHandler) AbortCompose(c *gin.Context) {
	if err := h.svc.Abort(c.Request.Context(), c.Param("release"), c.Param("request")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Compose aborted"})
}
