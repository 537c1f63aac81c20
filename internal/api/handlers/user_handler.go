package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/bodhi-go/internal/application"
	"github.com/linskybing/bodhi-go/internal/domain/user"
)

type UserHandler struct {
	svc *application.UserService
}

func NewUserHandler(svc *application.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Me godoc
// @Summary The authenticated user
// @Description Records the caller on first use and refreshes its groups from the token.
// @Tags users
// @Produce json
// @Success 200 {object} user.UserDTO
// @Failure 401 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /me [get]
func (h *UserHandler) Me(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	u, err := h.svc.Identify(actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user.ToDTO(u))
}

// GetUser godoc
// @Summary Get a user by name
// @Tags users
// @Produce json
// @Param name path string true "User name"
// @Success 200 {object} user.UserDTO
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{name} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	u, err := h.svc.Get(c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}
