package middleware

import (
	"net/http"

	"monarch-web/internal/delivery/http/response"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// RequireJSON rejects request bodies not declared as application/json.
// Browsers cannot send that type cross-site without a CORS preflight, so plain
// HTML forms from other origins never reach the handler.
func RequireJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
		default:
			c.Next()
			return
		}

		if c.ContentType() != binding.MIMEJSON {
			response.Error(c, http.StatusUnsupportedMediaType, "Content-Type must be application/json", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
