// Package log 提供日志级别别名定义
package log

import "github.com/bankrun/v1/pkg/types"

// LogLevel 日志级别（统一定义在 pkg/types）
type LogLevel = types.LogLevel

// 常量别名
const (
	DebugLevel = types.DebugLevel
	InfoLevel  = types.InfoLevel
	WarnLevel  = types.WarnLevel
	ErrorLevel = types.ErrorLevel
	FatalLevel = types.FatalLevel
)
