package log

import (
	"go.uber.org/zap/zapcore"
)

// 日志配置默认值
// 这些默认值基于生产环境的常见日志配置
const (
	// defaultLogLevel 默认日志级别设为"info"
	// 原因：info级别平衡了信息量和性能，记录重要事件但不过于详细
	defaultLogLevel = "info"

	// defaultToConsole 默认启用控制台输出
	// 原因：bankrun主要在开发与测试场景使用，控制台输出提供即时反馈
	defaultToConsole = true

	// defaultFilePath 默认不写日志文件
	// 原因：作为可嵌入的测试运行时，不应擅自在宿主项目目录落盘
	defaultFilePath = ""

	// === 日志轮转配置 ===

	// defaultMaxSize 单个日志文件最大100MB
	defaultMaxSize = 100

	// defaultMaxBackups 最多保留5个备份文件
	defaultMaxBackups = 5

	// defaultMaxAge 日志文件最多保留7天
	defaultMaxAge = 7

	// defaultCompress 默认压缩历史日志
	defaultCompress = true

	// defaultEnableCaller 默认不记录调用者信息
	// 原因：程序日志已经带有调用帧行，调用者信息意义不大且有开销
	defaultEnableCaller = false
)

// defaultLevelMap 级别字符串到zap级别的映射
var defaultLevelMap = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
	"fatal": zapcore.FatalLevel,
}

// createDefaultLogOptions 创建默认日志配置
func createDefaultLogOptions() *LogOptions {
	return &LogOptions{
		Level:        defaultLogLevel,
		ToConsole:    defaultToConsole,
		FilePath:     defaultFilePath,
		MaxSize:      defaultMaxSize,
		MaxBackups:   defaultMaxBackups,
		MaxAge:       defaultMaxAge,
		Compress:     defaultCompress,
		EnableCaller: defaultEnableCaller,
		LevelMap:     defaultLevelMap,
	}
}
