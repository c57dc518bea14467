package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/JellyPork/bunflow/internal/middleware"
	taskHTTP "github.com/JellyPork/bunflow/internal/task/delivery/http"
)

// setupTaskDomain registers the task domain routes. The handler arrives
// fully wired from main; the server only owns routing.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	taskHTTP.RegisterRoutes(api, srv.taskHandler, mw)
	srv.l.Infof(ctx, "Task domain registered")
}
