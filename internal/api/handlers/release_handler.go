package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/bodhi-go/internal/application"
)

type ReleaseHandler struct {
	svc *application.ReleaseService
}

func NewReleaseHandler(svc *application.ReleaseService) *ReleaseHandler {
	return &ReleaseHandler{svc: svc}
}

// ListReleases godoc
// @Summary List releases
// @Tags releases
// @Produce json
// @Success 200 {array} release.Release
// @Router /releases [get]
func (h *ReleaseHandler) ListReleases(c *gin.Context) {
	releases, err := h.svc.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, releases)
}

// GetRelease godoc
// @Summary Get a release
// @Tags releases
// @Produce json
// @Param name path string true "Release name"
// @Success 200 {object} release.Release
// @Failure 404 {object} response.ErrorResponse
// @Router /releases/{name} [get]
func (h *ReleaseHandler) GetRelease(c *gin.Context) {
	rel, err := h.svc.Get(c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rel)
}
