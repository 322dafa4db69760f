package log

import (
	"github.com/bankrun/v1/pkg/types"
	"go.uber.org/zap/zapcore"
)

// LogOptions 日志配置选项
// 专注于基础设施核心功能的简化配置
type LogOptions struct {
	// === 基础配置 ===
	Level     string `json:"level"`      // 日志级别 (debug, info, warn, error, fatal)
	ToConsole bool   `json:"to_console"` // 是否输出到控制台
	FilePath  string `json:"file_path"`  // 日志文件路径（为空时不写文件）

	// === 基础轮转配置 ===
	MaxSize    int  `json:"max_size"`    // 单个日志文件最大大小(MB)
	MaxBackups int  `json:"max_backups"` // 最大备份文件数
	MaxAge     int  `json:"max_age"`     // 日志文件最大保留天数
	Compress   bool `json:"compress"`    // 是否压缩历史日志文件

	// === 调试配置 ===
	EnableCaller bool `json:"enable_caller"` // 是否启用调用者信息

	// === 内部配置（不对外暴露） ===
	LevelMap map[string]zapcore.Level `json:"-"` // 级别映射
}

// Config 日志配置实现
type Config struct {
	options *LogOptions
}

// New 创建日志配置实现
//
// 先构造完整默认配置，再用用户配置覆盖已设置的字段。
func New(userConfig *types.UserLogConfig) *Config {
	options := createDefaultLogOptions()
	applyUserLogConfig(options, userConfig)
	return &Config{options: options}
}

// FromOptions 从已装配的选项创建日志配置
// 供依赖注入路径复用Provider产出的选项
func FromOptions(options *LogOptions) *Config {
	if options == nil {
		return New(nil)
	}
	if options.LevelMap == nil {
		options.LevelMap = defaultLevelMap
	}
	return &Config{options: options}
}

// Options 返回日志配置选项
func (c *Config) Options() *LogOptions {
	return c.options
}

// ZapLevel 返回配置级别对应的zap级别
// 未知级别回退到info
func (c *Config) ZapLevel() zapcore.Level {
	if level, ok := c.options.LevelMap[c.options.Level]; ok {
		return level
	}
	return zapcore.InfoLevel
}

// applyUserLogConfig 应用用户日志配置覆盖默认值
// 只处理配置文件中实际出现的字段（指针非nil）
func applyUserLogConfig(options *LogOptions, userConfig *types.UserLogConfig) {
	if userConfig == nil {
		return
	}
	if userConfig.Level != nil && types.LogLevel(*userConfig.Level).Valid() {
		options.Level = *userConfig.Level
	}
	if userConfig.FilePath != nil {
		options.FilePath = *userConfig.FilePath
		// 指定文件路径时默认不输出到控制台
		options.ToConsole = false
	}
	if userConfig.ToConsole != nil {
		options.ToConsole = *userConfig.ToConsole
	}
}
