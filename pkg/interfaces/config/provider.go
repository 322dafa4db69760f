// Package config provides configuration provider interfaces.
package config

import (
	logconfig "github.com/bankrun/v1/internal/config/log"
	runtimeconfig "github.com/bankrun/v1/internal/config/runtime"
)

// Provider 配置提供者接口
type Provider interface {
	// GetLog 获取日志配置（LogOptions）
	GetLog() *logconfig.LogOptions

	// GetRuntime 获取运行时配置（RuntimeOptions）
	GetRuntime() *runtimeconfig.RuntimeOptions
}
