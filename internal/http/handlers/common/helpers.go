package common

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/buscart/buscart-backend/internal/dto"
	"github.com/buscart/buscart-backend/internal/http/middleware"
	"github.com/buscart/buscart-backend/internal/logger"
	"github.com/buscart/buscart-backend/internal/pkg/apperror"
)

var (
	// ErrUserNotInContext возвращается, когда middleware не положил
	// идентификатор пользователя в контекст.
	ErrUserNotInContext = errors.New("пользователь не найден в контексте")
)

// CurrentUserID извлекает идентификатор пользователя из gin.Context.
func CurrentUserID(c *gin.Context) (string, error) {
	raw, exists := c.Get(middleware.ContextUserIDKey)
	if !exists {
		return "", ErrUserNotInContext
	}

	userID, ok := raw.(string)
	if !ok || userID == "" {
		return "", ErrUserNotInContext
	}

	return userID, nil
}

// ParseIDParam разбирает целочисленный идентификатор из параметра пути.
func ParseIDParam(c *gin.Context, paramName string) (int64, error) {
	param := c.Param(paramName)
	if param == "" {
		return 0, fmt.Errorf("параметр %s отсутствует", paramName)
	}

	parsed, err := strconv.ParseInt(param, 10, 64)
	if err != nil || parsed <= 0 {
		return 0, fmt.Errorf("параметр %s должен быть положительным числом", paramName)
	}

	return parsed, nil
}

// ParseIntQuery безопасно читает целочисленный query-параметр с дефолтом.
func ParseIntQuery(c *gin.Context, key string, fallback int) int {
	if v := c.Query(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return fallback
}

// GetPagination извлекает limit и offset из query-параметров.
func GetPagination(c *gin.Context) (limit, offset int) {
	limit = ParseIntQuery(c, "limit", 20)
	offset = ParseIntQuery(c, "offset", 0)
	if limit > 100 {
		limit = 100
	}
	if limit < 1 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return
}

// RespondError отправляет ошибку в стандартном формате.
func RespondError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// RespondBadRequest отправляет 400 Bad Request.
func RespondBadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "некорректный запрос"
	}
	RespondError(c, http.StatusBadRequest, message)
}

// RespondUnauthorized отправляет 401 Unauthorized.
func RespondUnauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "требуется авторизация"
	}
	RespondError(c, http.StatusUnauthorized, message)
}

// RespondServiceError переводит ошибку сервисного слоя в HTTP ответ.
// AppError несёт свой статус; всё остальное маскируется как 500,
// но попадает в лог целиком.
func RespondServiceError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		message := appErr.Message
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			logRequestError(c, err)
			message = "внутренняя ошибка сервера"
		}
		RespondError(c, appErr.HTTPStatus, message)
		return
	}

	logRequestError(c, err)
	RespondError(c, http.StatusInternalServerError, "внутренняя ошибка сервера")
}

func logRequestError(c *gin.Context, err error) {
	if logger.Log == nil {
		return
	}
	logger.Log.WithFields(logrus.Fields{
		"error":      err.Error(),
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString(middleware.ContextRequestIDKey),
	}).Error("request error")
}
