package main

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// programCmd 程序管理命令
var programCmd = &cobra.Command{
	Use:   "program",
	Short: "查看已注册程序",
}

// programListCmd 列出已注册程序
var programListCmd = &cobra.Command{
	Use:   "list",
	Short: "列出所有已注册程序的标识符",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		ctx := context.Background()
		if err := a.Start(ctx); err != nil {
			return fmt.Errorf("启动应用: %w", err)
		}
		defer a.Stop(ctx) //nolint:errcheck

		ids := a.Registry.List()
		rows := pterm.TableData{{"程序标识符", "名称"}}
		for _, id := range ids {
			program, _ := a.Registry.Get(id)
			rows = append(rows, []string{id.String(), program.Name()})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
	},
}

func init() {
	programCmd.AddCommand(programListCmd)
}
