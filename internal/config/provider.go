package config

import (
	logconfig "github.com/bankrun/v1/internal/config/log"
	runtimeconfig "github.com/bankrun/v1/internal/config/runtime"
	"github.com/bankrun/v1/pkg/interfaces/config"
	"github.com/bankrun/v1/pkg/types"
)

// Provider 实现配置提供者接口
type Provider struct {
	userConfig *types.UserConfig
}

// NewProvider 创建配置提供者
func NewProvider(userConfig *types.UserConfig) config.Provider {
	return &Provider{
		userConfig: userConfig,
	}
}

// GetLog 获取日志配置
func (p *Provider) GetLog() *logconfig.LogOptions {
	// 直接传递用户日志配置给log.New，由它处理默认值和覆盖
	var userLogConfig *types.UserLogConfig
	if p.userConfig != nil {
		userLogConfig = p.userConfig.Log
	}
	return logconfig.New(userLogConfig).Options()
}

// GetRuntime 获取运行时配置
func (p *Provider) GetRuntime() *runtimeconfig.RuntimeOptions {
	var userRuntimeConfig *types.UserRuntimeConfig
	if p.userConfig != nil {
		userRuntimeConfig = p.userConfig.Runtime
	}
	return runtimeconfig.New(userRuntimeConfig).Options()
}
