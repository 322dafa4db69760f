// Package app 提供应用装配与生命周期管理
//
// 把配置、日志、运行时和内置程序装配成一个可启动的应用。
// 装配方式与模块划分跟随fx依赖注入约定：
// 每个功能域一个Module()，本包只负责编排。
package app

import (
	"context"
	"fmt"
	"time"

	internalconfig "github.com/bankrun/v1/internal/config"
	infralog "github.com/bankrun/v1/internal/core/infrastructure/log"
	"github.com/bankrun/v1/internal/core/runtime"
	"github.com/bankrun/v1/internal/programs/greeting"
	"github.com/bankrun/v1/pkg/interfaces/config"
	runtimeiface "github.com/bankrun/v1/pkg/interfaces/runtime"
	"go.uber.org/fx"
)

// 启动/停止超时
// 运行时完全在进程内，超时仅为防御fx钩子卡死
const lifecycleTimeout = 10 * time.Second

// App 装配完成的应用
type App struct {
	fxApp *fx.App

	// Invoker 程序调用器（装配后可用）
	Invoker runtimeiface.Invoker

	// Registry 程序注册表（装配后可用）
	Registry runtimeiface.ProgramRegistry
}

// Options 应用构建参数
type Options struct {
	// Environment 运行环境（默认development）
	Environment Environment

	// ConfigPath 用户配置文件路径（可选）
	ConfigPath string

	// QuietFx 是否关闭fx自身的装配日志输出
	QuietFx bool
}

// New 构建应用
//
// 装配所有模块并填充Invoker/Registry。构建只做依赖装配，
// 不触发fx生命周期钩子；调用方需显式Start/Stop。
func New(opts Options) (*App, error) {
	appOptions, err := LoadOptions(opts.Environment, opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load app options: %w", err)
	}

	a := &App{}

	fxOptions := []fx.Option{
		fx.Provide(func() config.AppOptions { return appOptions }),
		internalconfig.Module(),
		infralog.Module(),
		runtime.Module(),
		greeting.Module(),
		fx.Populate(&a.Invoker, &a.Registry),
	}
	if opts.QuietFx {
		fxOptions = append(fxOptions, fx.NopLogger)
	}

	a.fxApp = fx.New(fxOptions...)
	if err := a.fxApp.Err(); err != nil {
		return nil, fmt.Errorf("assemble app: %w", err)
	}
	return a, nil
}

// Start 启动应用（执行所有fx OnStart钩子）
func (a *App) Start(ctx context.Context) error {
	startCtx, cancel := context.WithTimeout(ctx, lifecycleTimeout)
	defer cancel()
	return a.fxApp.Start(startCtx)
}

// Stop 停止应用（执行所有fx OnStop钩子）
func (a *App) Stop(ctx context.Context) error {
	stopCtx, cancel := context.WithTimeout(ctx, lifecycleTimeout)
	defer cancel()
	return a.fxApp.Stop(stopCtx)
}
