package http

import (
	"github.com/gin-gonic/gin"

	"maintenance-task-parser/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	requests := rg.Group("/requests")
	{
		requests.POST("", mw.RateLimit(), h.Parse)
	}
}
