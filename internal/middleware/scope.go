package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/JellyPork/bunflow/internal/model"
)

const scopeKey = "bunflow-scope"

// Scope picks the caller's identity off the request headers and stashes it
// in the gin context for the handlers. Anonymous callers get a default
// identity; there is no authentication layer in front of this.
func (mw Middleware) Scope() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc := model.Scope{
			UserID:   c.GetHeader("X-User-ID"),
			Username: c.GetHeader("X-Username"),
		}
		if sc.UserID == "" {
			sc.UserID = "local"
		}
		c.Set(scopeKey, sc)
		c.Next()
	}
}

// GetScope reads the identity stashed by Scope. Safe to call from any
// handler behind the middleware.
func GetScope(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{UserID: "local"}
}
