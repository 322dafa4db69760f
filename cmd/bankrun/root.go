package main

import (
	"fmt"
	"os"

	"github.com/bankrun/v1/internal/app"
	"github.com/spf13/cobra"
)

const version = "1.0.0"

// GlobalFlags 全局标志
type GlobalFlags struct {
	Environment string // 运行环境
	ConfigPath  string // 配置文件路径
	Verbose     bool   // 详细模式
}

var globalFlags GlobalFlags

// rootCmd 根命令
var rootCmd = &cobra.Command{
	Use:   "bankrun",
	Short: "bankrun 进程内程序运行时",
	Long: `bankrun - 进程内托管程序运行时

在当前进程内装载内置程序并分发指令调用，
捕获程序日志帧，适合测试与本地验证场景。

使用方式:
  bankrun program list          # 列出已注册程序
  bankrun invoke                # 调用greeting程序的initialize入口`,
	SilenceUsage: true,
}

// Execute 执行根命令
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}

// buildApp 按全局标志装配应用
func buildApp() (*app.App, error) {
	return app.New(app.Options{
		Environment: app.Environment(globalFlags.Environment),
		ConfigPath:  globalFlags.ConfigPath,
		QuietFx:     !globalFlags.Verbose,
	})
}

func init() {
	// 全局标志
	rootCmd.PersistentFlags().StringVar(&globalFlags.Environment, "env", "development", "运行环境: development|testing|production")
	rootCmd.PersistentFlags().StringVar(&globalFlags.ConfigPath, "config", "", "配置文件路径 (默认使用嵌入配置)")
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.Verbose, "verbose", "v", false, "详细输出")

	rootCmd.Version = version

	// 添加子命令
	rootCmd.AddCommand(invokeCmd)
	rootCmd.AddCommand(programCmd)
}
