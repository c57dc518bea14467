package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/JellyPork/bunflow/internal/task"
	"github.com/JellyPork/bunflow/pkg/response"
)

// respondError translates domain errors into the matching HTTP response.
// Unknown errors surface as 500 without leaking their message.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, task.ErrTaskNotFound), errors.Is(err, task.ErrTagNotFound):
		response.NotFound(c, err)
	case errors.Is(err, task.ErrEmptyInput), errors.Is(err, task.ErrEmptyTitle), errors.Is(err, task.ErrEmptyTagName):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
