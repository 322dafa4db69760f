// Package runtime 提供程序运行时的公共接口定义
//
// 📋 **程序运行时接口 (Program Runtime Interface)**
//
// 本文件定义了宿主运行时与被托管程序之间的调用约定：
// - Program：程序必须实现的入口分发接口
// - InvocationContext：运行时提供给程序的每次调用能力集
// - ProgramRegistry / Invoker：运行时对外暴露的服务面
//
// 🎯 **设计原则**
// - 程序无状态：程序实例不持有调用间共享的可变状态
// - 上下文短生命周期：InvocationContext只在单次调用内有效，
//   程序不得保留其引用
// - 统一结果形态：所有入口都通过error报告失败，由运行时
//   折叠为InvocationResult
package runtime

import (
	"context"

	"github.com/bankrun/v1/pkg/types"
)

// InvocationContext 单次调用的上下文
//
// 由运行时在分发前创建，调用返回后销毁。
// 程序通过它获知自己的标识符并输出程序日志。
type InvocationContext interface {
	// ProgramID 返回被调用程序的标识符
	ProgramID() types.ProgramID

	// InvocationID 返回本次调用的唯一追踪ID
	InvocationID() string

	// Depth 返回当前调用深度（无跨程序调用时恒为1）
	Depth() int

	// Log 输出一行程序日志
	Log(msg string)

	// Logf 使用格式化字符串输出一行程序日志
	Logf(format string, args ...interface{})

	// RemainingAccounts 返回入口结构未消费的账户元信息
	RemainingAccounts() []types.AccountMeta
}

// Program 被托管程序接口
//
// Execute负责按指令数据中的判别符分发到具体入口；
// 判别符不合法属于调用约定错误，在入口体执行前报告。
type Program interface {
	// ID 返回程序标识符（声明时固定）
	ID() types.ProgramID

	// Name 返回程序可读名称
	Name() string

	// Execute 分发并执行一条指令
	Execute(ctx context.Context, ictx InvocationContext, data []byte, accounts []types.AccountMeta) error
}

// ProgramRegistry 程序注册表接口
type ProgramRegistry interface {
	// Register 注册程序（同标识符唯一）
	Register(program Program) error

	// Get 按标识符查找程序
	Get(id types.ProgramID) (Program, bool)

	// List 列出所有已注册程序的标识符（按Base58字典序）
	List() []types.ProgramID
}

// Invoker 程序调用器接口
//
// 运行时的统一调用入口：查找程序、构建上下文、捕获日志、
// 折叠执行结果。
type Invoker interface {
	// Invoke 同步执行一条指令并返回调用结果
	Invoke(ctx context.Context, ins types.Instruction) *types.InvocationResult
}
