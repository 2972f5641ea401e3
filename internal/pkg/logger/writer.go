package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// SQLWriter 把 gorm 的 Printf 输出转成 zap 日志, 与业务日志共用编码器、输出和级别
type SQLWriter struct {
	log *zap.Logger
}

// gorm 自带文件行号, 不再记录 caller
func newSQLWriter(l *zap.Logger) *SQLWriter {
	return &SQLWriter{log: l.Named("gorm").WithOptions(zap.WithCaller(false))}
}

// Printf 实现 gorm logger.Writer
func (w *SQLWriter) Printf(format string, args ...interface{}) {
	msg := strings.ReplaceAll(fmt.Sprintf(format, args...), "\n", " ")
	if ce := w.log.Check(sqlLevel(format, args), msg); ce != nil {
		ce.Write()
	}
}

// sqlLevel 执行出错记为 error, 慢查询记为 warn
func sqlLevel(format string, args []interface{}) zapcore.Level {
	for _, arg := range args {
		switch v := arg.(type) {
		case error:
			return zapcore.ErrorLevel
		case string:
			if strings.HasPrefix(v, "SLOW SQL") {
				return zapcore.WarnLevel
			}
		}
	}
	switch {
	case strings.Contains(format, "[error]"):
		return zapcore.ErrorLevel
	case strings.Contains(format, "[warn]"):
		return zapcore.WarnLevel
	}
	return zapcore.InfoLevel
}

// GetWriter 返回 gorm 使用的日志写入器
func GetWriter() *SQLWriter {
	return sqlWriter
}
