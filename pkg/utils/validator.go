package utils

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormatValidationError 将绑定/校验错误转换为可读信息
func FormatValidationError(err error) string {
	if err == nil {
		return ""
	}

	var validationErrors validator.ValidationErrors
	if stderrors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			messages = append(messages, formatFieldError(e))
		}
		return strings.Join(messages, "; ")
	}

	var typeErr *json.UnmarshalTypeError
	if stderrors.As(err, &typeErr) {
		return fmt.Sprintf("字段 '%s' 类型应为 %s", typeErr.Field, typeErr.Type.String())
	}

	var syntaxErr *json.SyntaxError
	if stderrors.As(err, &syntaxErr) {
		return "JSON 格式错误"
	}

	return err.Error()
}

func formatFieldError(e validator.FieldError) string {
	field := e.Field()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("字段 '%s' 不能为空", field)
	case "max":
		return fmt.Sprintf("字段 '%s' 长度不能超过 %s", field, e.Param())
	case "min":
		return fmt.Sprintf("字段 '%s' 长度不能少于 %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("字段 '%s' 必须是以下之一: %s", field, e.Param())
	case "email":
		return fmt.Sprintf("字段 '%s' 必须是合法的邮箱地址", field)
	case "url":
		return fmt.Sprintf("字段 '%s' 必须是合法的URL", field)
	default:
		return fmt.Sprintf("字段 '%s' 未通过 '%s' 校验", field, e.Tag())
	}
}
