package main

import (
	"context"
	"fmt"

	"github.com/bankrun/v1/internal/core/runtime"
	"github.com/bankrun/v1/pkg/constants"
	"github.com/bankrun/v1/pkg/types"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// invokeFlags invoke命令的标志
type invokeFlags struct {
	Program    string // 目标程序标识符
	Entrypoint string // 入口名称
}

var invokeOpts invokeFlags

// invokeCmd 调用程序入口
var invokeCmd = &cobra.Command{
	Use:   "invoke",
	Short: "调用程序入口并打印捕获的日志",
	Long: `按调用约定构造指令并同步执行。

指令数据前8字节为入口判别符（sha256("global:<入口名>")前8字节），
执行后打印调用结果与捕获的全部日志帧。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		programID, err := types.ParseProgramID(invokeOpts.Program)
		if err != nil {
			return fmt.Errorf("解析程序标识符: %w", err)
		}

		a, err := buildApp()
		if err != nil {
			return err
		}
		ctx := context.Background()
		if err := a.Start(ctx); err != nil {
			return fmt.Errorf("启动应用: %w", err)
		}
		defer a.Stop(ctx) //nolint:errcheck

		disc := runtime.EntrypointDiscriminator(invokeOpts.Entrypoint)
		result := a.Invoker.Invoke(ctx, types.Instruction{
			ProgramID: programID,
			Data:      disc[:],
		})

		// 打印捕获的日志帧
		for _, line := range result.Logs {
			pterm.Println(line)
		}

		if !result.Success() {
			pterm.Error.Printf("调用失败: %v\n", result.Err)
			return fmt.Errorf("invocation %s failed", result.InvocationID)
		}
		pterm.Success.Printf("调用成功 (invocation %s)\n", result.InvocationID)
		return nil
	},
}

func init() {
	invokeCmd.Flags().StringVarP(&invokeOpts.Program, "program", "p", constants.GreetingProgramID, "目标程序标识符 (Base58)")
	invokeCmd.Flags().StringVarP(&invokeOpts.Entrypoint, "entrypoint", "e", "initialize", "入口名称")
}
