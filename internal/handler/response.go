package handler

import (
	"errors"
	"net/http"

	"github.com/blues/tfs/internal/agent"
	"github.com/blues/tfs/internal/logic"
	"github.com/blues/tfs/internal/store"
	"github.com/gin-gonic/gin"
)

// Response 通用响应结构
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// SuccessResponse 成功响应
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse 错误响应
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Message: message,
		Data:    nil,
	})
}

// FailWithError 按错误类型映射HTTP状态码并返回错误响应
func FailWithError(c *gin.Context, err error) {
	ErrorResponse(c, statusFromError(err), err.Error())
}

// statusFromError 引擎错误到HTTP状态码的映射
func statusFromError(err error) int {
	switch {
	case errors.Is(err, logic.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, logic.ErrNoActivePledge):
		return http.StatusBadRequest
	case errors.Is(err, logic.ErrNotFound), errors.Is(err, agent.ErrAgentNotFound):
		return http.StatusNotFound
	case errors.Is(err, logic.ErrDuplicateTicker):
		return http.StatusConflict
	case errors.Is(err, logic.ErrAlreadyUpvoted):
		return http.StatusConflict
	case errors.Is(err, logic.ErrAlreadyFunded):
		return http.StatusConflict
	case errors.Is(err, store.ErrPersistence):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
