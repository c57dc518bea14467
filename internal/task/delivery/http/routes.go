package http

import (
	"github.com/gin-gonic/gin"

	"github.com/JellyPork/bunflow/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Every route
// carries the scope and rate-limit middlewares.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.Scope(), mw.RateLimit())
	{
		tasks.POST("/quick-add", h.QuickAdd)
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.GET("/:id", h.Detail)
		tasks.PUT("/:id", h.Update)
		tasks.POST("/:id/toggle", h.Toggle)
		tasks.DELETE("/:id", h.Delete)
	}

	tags := rg.Group("/tags", mw.Scope(), mw.RateLimit())
	{
		tags.GET("", h.ListTags)
		tags.PATCH("/:id", h.RenameTag)
		tags.DELETE("/:id", h.DeleteTag)
	}
}
