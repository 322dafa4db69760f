package types

// ==================== 调用状态枚举 ====================

// InvocationStatus 单次调用的最终状态
type InvocationStatus int

const (
	InvocationStatusUnknown InvocationStatus = iota
	InvocationStatusSuccess
	InvocationStatusFailed
)

// String 返回状态的字符串表示
func (s InvocationStatus) String() string {
	switch s {
	case InvocationStatusSuccess:
		return "success"
	case InvocationStatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ==================== 调用结果 ====================

// InvocationResult 一次程序调用的结果
//
// 结果形态始终包含失败分支，即使某些入口（如initialize）
// 不存在任何失败路径；这是为了和统一的调用约定保持兼容。
type InvocationResult struct {
	// InvocationID 本次调用的唯一追踪ID
	InvocationID string `json:"invocation_id"`

	// ProgramID 被调用的程序标识符
	ProgramID ProgramID `json:"program_id"`

	// Status 调用最终状态
	Status InvocationStatus `json:"status"`

	// Logs 运行时捕获的程序日志行（含调用帧行）
	Logs []string `json:"logs"`

	// Err 失败原因，成功时为nil
	Err error `json:"-"`
}

// Success 判断调用是否成功
func (r *InvocationResult) Success() bool {
	return r != nil && r.Status == InvocationStatusSuccess
}
