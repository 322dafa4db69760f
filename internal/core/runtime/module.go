// Package runtime 提供程序运行时核心功能
package runtime

import (
	runtimeconfig "github.com/bankrun/v1/internal/config/runtime"
	logiface "github.com/bankrun/v1/pkg/interfaces/infrastructure/log"
	runtimeiface "github.com/bankrun/v1/pkg/interfaces/runtime"
	"go.uber.org/fx"
)

// ModuleInput 运行时模块的输入依赖
type ModuleInput struct {
	fx.In

	// 基础设施依赖
	Logger logiface.Logger `optional:"true"`

	// 配置依赖
	Options *runtimeconfig.RuntimeOptions `optional:"true"`
}

// ModuleOutput 运行时模块的输出服务
type ModuleOutput struct {
	fx.Out

	// 程序注册表
	Registry runtimeiface.ProgramRegistry

	// 程序调用器
	Invoker runtimeiface.Invoker
}

// Module 运行时模块的fx选项
//
// 提供：
// - ProgramRegistry: 程序注册表，程序在应用启动时注册
// - Invoker: 统一调用入口
//
// 依赖：
// - Logger: 日志记录器（可选）
// - RuntimeOptions: 运行时配置（可选，缺省走内置默认值）
func Module() fx.Option {
	return fx.Module("runtime",
		fx.Provide(ProvideServices),
	)
}

// ProvideServices 提供运行时服务
func ProvideServices(input ModuleInput) ModuleOutput {
	registry := NewRegistry()
	invoker := NewInvoker(registry, input.Options, input.Logger)

	return ModuleOutput{
		Registry: registry,
		Invoker:  invoker,
	}
}
