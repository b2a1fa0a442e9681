package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"maintenance-task-parser/internal/parser"
	"maintenance-task-parser/pkg/response"
)

// mapError translates use-case errors into HTTP responses. Input problems
// are the caller's fault; everything else is a 500.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, parser.ErrEmptyInput):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
