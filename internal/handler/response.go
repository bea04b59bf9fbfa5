package handler

import (
	"errors"
	"io"
	"net/http"

	"sitepulse/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// CallerIdentityHeader carries the identity of the caller on owner-only routes
const CallerIdentityHeader = "X-Caller-Identity"

// Response is the standard API response
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the error API response
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: "Invalid request: " + err.Error(),
	})
}

// bindOptionalJSON binds a JSON body when one is sent; an empty body leaves obj as is
func bindOptionalJSON(c *gin.Context, obj interface{}) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, err)
		return false
	}
	return true
}

// fail maps a service error onto an HTTP status
func fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, service.ErrValidation):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrSiteNotFound):
		status, message = http.StatusNotFound, "Site not found"
	case errors.Is(err, service.ErrAuthorizationFailed):
		status, message = http.StatusForbidden, "Not authorized for this site"
	case errors.Is(err, service.ErrOwnershipConflict):
		status, message = http.StatusConflict, "Site is owned by a different identity"
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Request failed")
	}

	c.JSON(status, ErrorResponse{
		Code:    status,
		Message: message,
	})
}
