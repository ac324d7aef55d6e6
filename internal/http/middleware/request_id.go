package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// ContextRequestIDKey — ключ идентификатора запроса в gin.Context.
	ContextRequestIDKey = "requestID"
	// RequestIDHeader — заголовок, в котором идентификатор возвращается клиенту.
	RequestIDHeader = "X-Request-Id"
)

// RequestIDMiddleware присваивает каждому запросу идентификатор для
// корреляции логов. Пришедший от клиента идентификатор сохраняется.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(ContextRequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}
