package utils

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"greenbook/pkg/errors"
)

// Response 统一响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Detail  string      `json:"detail,omitempty"` // 详细错误信息（可选）
	Data    interface{} `json:"data,omitempty"`
}

// PageResponse 分页响应结构
type PageResponse struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Total   int64       `json:"total"`
	Page    int         `json:"page"`
	Size    int         `json:"size"`
	Pages   int         `json:"pages"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    errors.CodeSuccess,
		Message: "success",
		Data:    data,
	})
}

// PageSuccess 分页成功响应
func PageSuccess(c *gin.Context, data interface{}, total int64, page, size int) {
	pages := 0
	if size > 0 {
		pages = int((total + int64(size) - 1) / int64(size))
	}
	c.JSON(http.StatusOK, PageResponse{
		Code:    errors.CodeSuccess,
		Message: "success",
		Data:    data,
		Total:   total,
		Page:    page,
		Size:    size,
		Pages:   pages,
	})
}

// Error 错误响应
// HTTP状态码由错误码决定; 5xx 只返回通用信息, 外部服务的细节只进日志
func Error(c *gin.Context, err error) {
	ErrorWithData(c, err, nil)
}

// ErrorWithData 错误响应, 同时返回已经生效的部分结果
func ErrorWithData(c *gin.Context, err error, data interface{}) {
	status := errors.HTTPStatus(err)
	_ = c.Error(err)

	message := errors.ErrInternalError.Message
	if status < http.StatusInternalServerError {
		message = err.Error()
		var appErr *errors.AppError
		if stderrors.As(err, &appErr) {
			message = appErr.Message
		}
	}
	c.JSON(status, Response{
		Code:    errors.CodeOf(err),
		Message: message,
		Data:    data,
	})
}

// ErrorWithCode 自定义错误响应
func ErrorWithCode(c *gin.Context, status int, message string) {
	c.JSON(status, Response{
		Code:    status,
		Message: message,
	})
}

// ErrorWithDetail 带详细信息的错误响应
func ErrorWithDetail(c *gin.Context, status int, message, detail string) {
	c.JSON(status, Response{
		Code:    status,
		Message: message,
		Detail:  detail,
	})
}
