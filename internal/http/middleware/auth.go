package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Context ключи для gin.Context.
const (
	ContextUserIDKey = "userID"
)

// IdentityMiddleware извлекает идентификатор пользователя из заголовка,
// который проставляет внешний identity-провайдер после проверки токена.
// Сам сервис токены не разбирает: аутентификация делегирована наружу.
func IdentityMiddleware(header string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(header))
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "требуется авторизация"})
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}
