package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/bodhi-go/internal/api/middleware"
	"github.com/linskybing/bodhi-go/internal/application"
	"github.com/linskybing/bodhi-go/internal/domain/update"
	"github.com/linskybing/bodhi-go/pkg/response"
)

type UpdateHandler struct {
	svc *application.UpdateService
}

func NewUpdateHandler(svc *application.UpdateService) *UpdateHandler {
	return &UpdateHandler{svc: svc}
}

// requireActor aborts with 401 for anonymous callers.
func requireActor(c *gin.Context) (application.Actor, bool) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Authorization required"})
	}
	return actor, ok
}

// GetUpdate godoc
// @Summary Get an update
// @Tags updates
// @Produce json
// @Param alias path string true "Update alias"
// @Success 200 {object} update.UpdateView
// @Failure 404 {object} response.ErrorResponse
// @Router /updates/{alias} [get]
func (h *UpdateHandler) GetUpdate(c *gin.Context) {
	view, err := h.svc.Get(c.Param("alias"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// CreateUpdate godoc
// @Summary Submit a new update
// @Tags updates
// @Accept json
// @Produce json
// @Param input body update.CreateUpdateDTO true "Update"
// @Success 201 {object} update.Result
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Release not found"
// @Security BearerAuth
// @Router /updates [post]
func (h *UpdateHandler) CreateUpdate(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var input update.CreateUpdateDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	res, err := h.svc.Create(c.Request.Context(), input, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// EditUpdate godoc
// @Summary Edit an update
// @Tags updates
// @Accept json
// @Produce json
// @Param alias path string true "Update alias"
// @Param input body update.EditUpdateDTO true "Changes"
// @Success 200 {object} update.Result
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Update is locked"
// @Security BearerAuth
// @Router /updates/{alias} [put]
func (h *UpdateHandler) EditUpdate(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var input update.EditUpdateDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	res, err := h.svc.Edit(c.Request.Context(), c.Param("alias"), input, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// SetRequest godoc
// @Summary Change the request of an update
// @Tags updates
// @Accept json
// @Produce json
// @Param alias path string true "Update alias"
// @Param input body update.RequestDTO true "Request"
// @Success 200 {object} update.Result
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Update is locked"
// @Security BearerAuth
// @Router /updates/{alias}/request [post]
func (h *UpdateHandler) SetRequest(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var input update.RequestDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	req, err := update.ParseRequest(input.Request)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	res, err := h.svc.SetRequest(c.Request.Context(), c.Param("alias"), req, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

type commentResponse struct {
	Comment *update.Comment `json:"comment"`
	Caveats []update.Caveat `json:"caveats"`
}

// AddComment godoc
// @Summary Comment on an update and leave karma
// @Description Anonymous comments are accepted without a token and never count toward karma thresholds.
// @Tags updates
// @Accept json
// @Produce json
// @Param alias path string true "Update alias"
// @Param input body update.CommentDTO true "Comment"
// @Success 201 {object} commentResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /updates/{alias}/comments [post]
func (h *UpdateHandler) AddComment(c *gin.Context) {
	var input update.CommentDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		if !input.Anonymous {
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Authorization required for non-anonymous comments"})
			return
		}
		actor = application.Actor{Name: "anonymous"}
	}
	comment, caveats, err := h.svc.Comment(c.Request.Context(), c.Param("alias"), input, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, commentResponse{Comment: comment, Caveats: caveats})
}
