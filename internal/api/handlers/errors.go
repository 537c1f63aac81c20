package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/linskybing/bodhi-go/internal/application"
	"github.com/linskybing/bodhi-go/internal/domain/update"
	"github.com/linskybing/bodhi-go/pkg/response"
	"gorm.io/gorm"
)

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case update.IsValidation(err):
		return http.StatusBadRequest
	case update.IsLocked(err):
		return http.StatusConflict
	case errors.Is(err, gorm.ErrRecordNotFound),
		errors.Is(err, update.ErrUpdateNotFound),
		errors.Is(err, application.ErrReleaseNotFound),
		errors.Is(err, application.ErrComposeNotFound),
		errors.Is(err, application.ErrOverrideNotFound),
		errors.Is(err, application.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, application.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, application.ErrComposeExists):
		return http.StatusConflict
	case errors.Is(err, application.ErrNothingToCompose),
		errors.Is(err, application.ErrUserRequired),
		errors.Is(err, update.ErrCommentAuthorRequired),
		errors.Is(err, update.ErrCommentEmpty),
		errors.Is(err, update.ErrMixedContentTypes),
		errors.Is(err, update.ErrNoBuilds):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("[api] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = errors.New("not found")
	}
	c.JSON(status, response.ErrorResponse{Error: err.Error()})
}

// bindError turns binding failures into readable messages.
func bindError(c *gin.Context, err error) {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	msgs := make([]string, 0, len(verr))
	for _, fe := range verr {
		lbl := strings.ToLower(fe.StructField())
		var msg string
		switch fe.Tag() {
		case "required":
			msg = fmt.Sprintf("%s is required", lbl)
		case "min":
			msg = fmt.Sprintf("%s must have at least %s entries", lbl, fe.Param())
		case "oneof":
			msg = fmt.Sprintf("%s must be one of [%s]", lbl, fe.Param())
		default:
			msg = fmt.Sprintf("%s is invalid", lbl)
		}
		msgs = append(msgs, msg)
	}
	c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: strings.Join(msgs, "; ")})
}
