// Package runtime 提供程序运行时的配置实现
package runtime

import "github.com/bankrun/v1/pkg/types"

// 运行时配置默认值
const (
	// defaultMaxLogLines 单次调用可捕获的程序日志行数上限
	// 原因：托管运行时必须为程序日志缓冲设置上界，
	// 失控的日志循环不应耗尽宿主内存；超限后追加截断标记并丢弃后续行
	defaultMaxLogLines = 256
)

// RuntimeOptions 运行时配置选项
type RuntimeOptions struct {
	// MaxLogLines 单次调用可捕获的程序日志行数上限
	MaxLogLines int `json:"max_log_lines"`
}

// Config 运行时配置实现
type Config struct {
	options *RuntimeOptions
}

// New 创建运行时配置实现
// 先构造默认配置，再用用户配置覆盖已设置的字段
func New(userConfig *types.UserRuntimeConfig) *Config {
	options := &RuntimeOptions{
		MaxLogLines: defaultMaxLogLines,
	}
	if userConfig != nil && userConfig.MaxLogLines != nil && *userConfig.MaxLogLines > 0 {
		options.MaxLogLines = *userConfig.MaxLogLines
	}
	return &Config{options: options}
}

// Options 返回运行时配置选项
func (c *Config) Options() *RuntimeOptions {
	return c.options
}
