package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// 错误码
const (
	CodeSuccess           = 200
	CodeBadRequest        = 400
	CodeUnauthorized      = 401
	CodeForbidden         = 403
	CodeNotFound          = 404
	CodeConflict          = 409
	CodeInternalError     = 500
	CodeDatabaseError     = 501
	CodeAuthError         = 502
	CodeValidationError   = 503
	CodeIntegrationError  = 504
	CodeProvisioningError = 505
)

// AppError 应用错误
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is 同码即相等, 使 errors.Is(err, ErrRecordNotFound) 对包装后的错误同样成立
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code && (t.Message == "" || t.Message == e.Message)
}

// New 创建新错误
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装错误
func Wrap(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Validation 参数缺失或格式错误, 不重试
func Validation(message string) *AppError {
	return New(CodeValidationError, message)
}

// Forbidden 调用者角色不满足要求
func Forbidden(message string) *AppError {
	return New(CodeForbidden, message)
}

// NotFound 引用的实体不存在
func NotFound(message string) *AppError {
	return New(CodeNotFound, message)
}

// Integration 外部服务调用失败
func Integration(message string, err error) *AppError {
	return Wrap(CodeIntegrationError, message, err)
}

// Provisioning 外部资源无法创建
func Provisioning(message string, err error) *AppError {
	return Wrap(CodeProvisioningError, message, err)
}

// CodeOf 取出错误链上第一个 AppError 的错误码, 非 AppError 视为内部错误
func CodeOf(err error) int {
	if err == nil {
		return CodeSuccess
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternalError
}

// IsCode 判断错误链上是否存在指定错误码
func IsCode(err error, code int) bool {
	return err != nil && CodeOf(err) == code
}

// HTTPStatus 将错误码映射为HTTP状态码
func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case CodeSuccess:
		return http.StatusOK
	case CodeBadRequest, CodeValidationError:
		return http.StatusBadRequest
	case CodeUnauthorized, CodeAuthError:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// 预定义错误
var (
	ErrBadRequest      = New(CodeBadRequest, "请求参数错误")
	ErrUnauthorized    = New(CodeUnauthorized, "未授权")
	ErrForbidden       = New(CodeForbidden, "禁止访问")
	ErrNotFound        = New(CodeNotFound, "资源不存在")
	ErrConflict        = New(CodeConflict, "资源冲突")
	ErrInternalError   = New(CodeInternalError, "内部服务器错误")
	ErrDatabaseError   = New(CodeDatabaseError, "数据库错误")
	ErrAuthError       = New(CodeAuthError, "认证失败")
	ErrValidationError = New(CodeValidationError, "数据验证失败")

	// 具体业务错误
	ErrInvalidCredentials = New(CodeAuthError, "用户名或密码错误")
	ErrUserNotFound       = New(CodeNotFound, "用户不存在")
	ErrInvalidToken       = New(CodeUnauthorized, "无效的Token")
	ErrTokenExpired       = New(CodeUnauthorized, "Token已过期")
	ErrRecordNotFound     = New(CodeNotFound, "记录不存在")
	ErrRecordExists       = New(CodeConflict, "记录已存在")
	ErrNoAccess           = New(CodeForbidden, "无权限执行该操作")
)
