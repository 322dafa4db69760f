// Package config 提供应用配置管理功能
package config

import (
	logconfig "github.com/bankrun/v1/internal/config/log"
	runtimeconfig "github.com/bankrun/v1/internal/config/runtime"
	"github.com/bankrun/v1/pkg/interfaces/config"
	"go.uber.org/fx"
)

// ConfigParams 定义配置模块的依赖参数
type ConfigParams struct {
	fx.In

	// 应用配置选项
	AppOptions config.AppOptions `optional:"true"`
}

// ConfigOutput 定义配置模块的输出结构
type ConfigOutput struct {
	fx.Out

	// 配置提供者
	Provider config.Provider
}

// Module 返回配置模块
func Module() fx.Option {
	return fx.Module("config",
		fx.Provide(
			ProvideConfigServices,
			// 提供具体的配置类型用于依赖注入
			func(provider config.Provider) *logconfig.LogOptions {
				return provider.GetLog()
			},
			func(provider config.Provider) *runtimeconfig.RuntimeOptions {
				return provider.GetRuntime()
			},
		),
	)
}

// ProvideConfigServices 提供配置服务
func ProvideConfigServices(params ConfigParams) ConfigOutput {
	var provider config.Provider
	if params.AppOptions != nil {
		provider = NewProvider(params.AppOptions.GetUserConfig())
	} else {
		// 没有应用配置时使用全默认值
		provider = NewProvider(nil)
	}

	return ConfigOutput{
		Provider: provider,
	}
}
