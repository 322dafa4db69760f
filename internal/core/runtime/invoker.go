package runtime

import (
	"context"
	"errors"
	"fmt"
	"time"

	runtimeconfig "github.com/bankrun/v1/internal/config/runtime"
	"github.com/bankrun/v1/pkg/constants"
	logiface "github.com/bankrun/v1/pkg/interfaces/infrastructure/log"
	runtimeiface "github.com/bankrun/v1/pkg/interfaces/runtime"
	types "github.com/bankrun/v1/pkg/types"
	"github.com/google/uuid"
)

var (
	// ErrProgramNotFound 目标程序未注册
	ErrProgramNotFound = errors.New("program not found")
)

// Invoker 程序调用器
//
// # 核心功能：
// - 按指令中的程序标识符查找目标程序
// - 为每次调用构建独立的InvocationContext
// - 捕获调用帧日志和程序日志
// - 将程序返回的error折叠为统一的InvocationResult
//
// # 设计目标：
// - 同步执行：调用在当前goroutine内完成，不挂起不排队
// - 无共享状态：每次调用独享上下文与日志缓冲，
//   任意多次调用可并发进行互不干扰
// - 结果完备：无论成功失败，捕获的日志都随结果返回
type Invoker struct {
	registry runtimeiface.ProgramRegistry
	options  *runtimeconfig.RuntimeOptions
	logger   logiface.Logger
}

// 确保Invoker实现了接口
var _ runtimeiface.Invoker = (*Invoker)(nil)

// NewInvoker 创建程序调用器
//
// 参数：
//   - registry: 程序注册表（必需）
//   - options: 运行时配置（nil时使用默认值）
//   - logger: 日志记录器（nil时不输出宿主日志）
func NewInvoker(registry runtimeiface.ProgramRegistry, options *runtimeconfig.RuntimeOptions, logger logiface.Logger) *Invoker {
	if options == nil {
		options = runtimeconfig.New(nil).Options()
	}
	return &Invoker{
		registry: registry,
		options:  options,
		logger:   logger,
	}
}

// Invoke 同步执行一条指令并返回调用结果
//
// 执行流程：
//  1. 按标识符查找程序，未注册直接返回失败结果
//  2. 构建调用上下文（uuid追踪ID、日志收集器、深度1）
//  3. 记录调用开始帧，执行程序分发
//  4. 记录成功/失败帧，折叠为InvocationResult
func (inv *Invoker) Invoke(ctx context.Context, ins types.Instruction) *types.InvocationResult {
	start := time.Now()
	invocationID := uuid.New().String()

	result := &types.InvocationResult{
		InvocationID: invocationID,
		ProgramID:    ins.ProgramID,
	}

	program, found := inv.registry.Get(ins.ProgramID)
	if !found {
		result.Status = types.InvocationStatusFailed
		result.Err = fmt.Errorf("%w: %s", ErrProgramNotFound, ins.ProgramID)
		invocationTotal.WithLabelValues(ins.ProgramID.String(), "not_found").Inc()
		inv.logf("invoke rejected: program %s not registered", ins.ProgramID)
		return result
	}

	collector := newLogCollector(inv.options.MaxLogLines)
	ictx := &InvocationContext{
		programID:    ins.ProgramID,
		invocationID: invocationID,
		depth:        constants.MaxInvokeDepth,
		remaining:    ins.Accounts,
		collector:    collector,
	}

	// 调用帧行不走Log()，不受程序日志前缀影响
	collector.append(fmt.Sprintf(constants.LogFrameInvoke, ins.ProgramID, ictx.depth))

	err := program.Execute(ctx, ictx, ins.Data, ins.Accounts)
	if err != nil {
		collector.append(fmt.Sprintf(constants.LogFrameFailed, ins.ProgramID, err))
		result.Status = types.InvocationStatusFailed
		result.Err = err
		invocationTotal.WithLabelValues(ins.ProgramID.String(), "failed").Inc()
		inv.logf("program %s (%s) failed: %v", program.Name(), ins.ProgramID, err)
	} else {
		collector.append(fmt.Sprintf(constants.LogFrameSuccess, ins.ProgramID))
		result.Status = types.InvocationStatusSuccess
		invocationTotal.WithLabelValues(ins.ProgramID.String(), "success").Inc()
		inv.logf("program %s (%s) invocation %s succeeded", program.Name(), ins.ProgramID, invocationID)
	}

	result.Logs = collector.snapshot()
	programLogLines.Add(float64(len(result.Logs)))
	invocationDuration.Observe(time.Since(start).Seconds())
	return result
}

func (inv *Invoker) logf(format string, args ...interface{}) {
	if inv.logger != nil {
		inv.logger.Debugf(format, args...)
	}
}
