package middleware

import (
	"log"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into a response produced by onPanic.
func Recovery(onPanic func(c *gin.Context)) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("panic recovered (request %s): %v", c.GetString(RequestIDKey), recovered)
		onPanic(c)
	})
}
