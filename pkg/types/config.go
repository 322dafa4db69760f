package types

// 用户配置类型
//
// 🔧 零值陷阱处理说明：
// 为了区分"用户未设置"和"用户设置为零值"，可覆盖字段统一使用指针类型：
// - nil: 用户未在配置文件中设置该字段，使用系统默认值
// - &value: 用户明确设置了该值，即使是零值（如0、false、""）也会被采用

// UserLogConfig 用户日志配置
type UserLogConfig struct {
	// Level 日志级别（debug/info/warn/error/fatal）
	Level *string `json:"level,omitempty"`

	// FilePath 日志文件路径，设置后默认不再输出到控制台
	FilePath *string `json:"file_path,omitempty"`

	// ToConsole 是否输出到控制台
	ToConsole *bool `json:"to_console,omitempty"`
}

// UserRuntimeConfig 用户运行时配置
type UserRuntimeConfig struct {
	// MaxLogLines 单次调用可捕获的程序日志行数上限
	MaxLogLines *int `json:"max_log_lines,omitempty"`
}

// UserConfig 用户配置文件结构
// 只包含用户友好的配置字段，缺省字段走内置默认值
type UserConfig struct {
	Log     *UserLogConfig     `json:"log,omitempty"`
	Runtime *UserRuntimeConfig `json:"runtime,omitempty"`
}
