package runtime

import (
	"fmt"

	"github.com/bankrun/v1/pkg/constants"
	runtimeiface "github.com/bankrun/v1/pkg/interfaces/runtime"
	types "github.com/bankrun/v1/pkg/types"
)

// logCollector 程序日志收集器
//
// 缓冲单次调用产生的日志行，行数有上界：
// 超限后追加一次截断标记并丢弃后续行。
// 单次调用独占，不需要加锁。
type logCollector struct {
	lines     []string
	maxLines  int
	truncated bool
}

func newLogCollector(maxLines int) *logCollector {
	return &logCollector{maxLines: maxLines}
}

// append 追加一行原始日志（含帧行）
func (c *logCollector) append(line string) {
	if c.maxLines > 0 && len(c.lines) >= c.maxLines {
		if !c.truncated {
			c.lines = append(c.lines, constants.LogTruncatedMarker)
			c.truncated = true
		}
		return
	}
	c.lines = append(c.lines, line)
}

// snapshot 返回已收集日志行的副本
func (c *logCollector) snapshot() []string {
	out := make([]string, len(c.lines))
	copy(out, c.lines)
	return out
}

// InvocationContext 单次调用的上下文实现
//
// 由Invoker在分发前创建，暴露给程序的能力集仅限：
// 读取自身标识符、输出程序日志、读取剩余账户。
// 调用返回后即销毁，程序不得保留引用。
type InvocationContext struct {
	programID    types.ProgramID
	invocationID string
	depth        int
	remaining    []types.AccountMeta
	collector    *logCollector
}

// 确保InvocationContext实现了接口
var _ runtimeiface.InvocationContext = (*InvocationContext)(nil)

// ProgramID 返回被调用程序的标识符
func (c *InvocationContext) ProgramID() types.ProgramID {
	return c.programID
}

// InvocationID 返回本次调用的唯一追踪ID
func (c *InvocationContext) InvocationID() string {
	return c.invocationID
}

// Depth 返回当前调用深度
func (c *InvocationContext) Depth() int {
	return c.depth
}

// Log 输出一行程序日志
// 捕获格式与外部调用方断言的"Program log: <内容>"保持一致
func (c *InvocationContext) Log(msg string) {
	c.collector.append(fmt.Sprintf(constants.LogLinePrefix, msg))
}

// Logf 使用格式化字符串输出一行程序日志
func (c *InvocationContext) Logf(format string, args ...interface{}) {
	c.Log(fmt.Sprintf(format, args...))
}

// RemainingAccounts 返回入口结构未消费的账户元信息
func (c *InvocationContext) RemainingAccounts() []types.AccountMeta {
	return c.remaining
}
