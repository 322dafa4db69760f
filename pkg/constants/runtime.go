package constants

// 调用约定常量
//
// 入口分发与日志帧格式是运行时与程序之间的契约，
// 调用方（尤其是测试）会对这些格式做精确断言，不能随意改动。
const (
	// DiscriminatorLength 入口判别符长度（指令数据前8字节）
	DiscriminatorLength = 8

	// EntrypointNamespace 入口判别符的命名空间前缀
	// 判别符 = sha256("global:<入口名>") 的前8字节
	EntrypointNamespace = "global"

	// MaxInvokeDepth 调用深度上限
	// 不支持跨程序调用，深度恒为1
	MaxInvokeDepth = 1
)

// 日志帧格式
const (
	// LogFrameInvoke 调用开始帧，参数：程序标识符、调用深度
	LogFrameInvoke = "Program %s invoke [%d]"

	// LogFrameSuccess 调用成功帧，参数：程序标识符
	LogFrameSuccess = "Program %s success"

	// LogFrameFailed 调用失败帧，参数：程序标识符、失败原因
	LogFrameFailed = "Program %s failed: %s"

	// LogLinePrefix 程序日志行前缀，参数：日志内容
	LogLinePrefix = "Program log: %s"

	// LogTruncatedMarker 日志超限截断标记
	LogTruncatedMarker = "Log truncated"
)
