// Package greeting 提供greeting程序的模块装配
package greeting

import (
	logiface "github.com/bankrun/v1/pkg/interfaces/infrastructure/log"
	runtimeiface "github.com/bankrun/v1/pkg/interfaces/runtime"
	"go.uber.org/fx"
)

// ModuleInput greeting模块的输入依赖
type ModuleInput struct {
	fx.In

	Registry runtimeiface.ProgramRegistry
	Logger   logiface.Logger `optional:"true"`
}

// Module greeting程序模块的fx选项
//
// 应用装配阶段将greeting程序注册进运行时注册表。
func Module() fx.Option {
	return fx.Module("program-greeting",
		fx.Invoke(RegisterProgram),
	)
}

// RegisterProgram 将greeting程序注册到运行时
func RegisterProgram(input ModuleInput) error {
	program := New()
	if err := input.Registry.Register(program); err != nil {
		return err
	}
	if input.Logger != nil {
		input.Logger.Infof("program registered: %s (%s)", program.Name(), program.ID())
	}
	return nil
}
