package middleware

import "github.com/gin-gonic/gin"

// Logger returns gin's request logger; kept behind our own constructor
// so the middleware stack reads uniformly in main.
func Logger() gin.HandlerFunc {
	return gin.Logger()
}
