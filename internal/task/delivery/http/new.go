package http

import (
	"github.com/gin-gonic/gin"

	"github.com/JellyPork/bunflow/internal/task"
	"github.com/JellyPork/bunflow/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	QuickAdd(c *gin.Context)
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Toggle(c *gin.Context)
	Delete(c *gin.Context)
	ListTags(c *gin.Context)
	RenameTag(c *gin.Context)
	DeleteTag(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
