package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/bankrun/v1/pkg/types"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

// TestLogConfigDefaults 测试默认配置
func TestLogConfigDefaults(t *testing.T) {
	cfg := New(nil)
	options := cfg.Options()

	assert.Equal(t, "info", options.Level)
	assert.True(t, options.ToConsole)
	assert.Empty(t, options.FilePath)
	assert.Equal(t, 100, options.MaxSize)
	assert.Equal(t, 5, options.MaxBackups)
	assert.Equal(t, 7, options.MaxAge)
	assert.True(t, options.Compress)
	assert.Equal(t, zapcore.InfoLevel, cfg.ZapLevel())
}

// TestLogConfigUserOverride 测试用户配置覆盖
func TestLogConfigUserOverride(t *testing.T) {
	t.Run("Level Override", func(t *testing.T) {
		cfg := New(&types.UserLogConfig{Level: strPtr("debug")})
		assert.Equal(t, "debug", cfg.Options().Level)
		assert.Equal(t, zapcore.DebugLevel, cfg.ZapLevel())
	})

	t.Run("Invalid Level Ignored", func(t *testing.T) {
		cfg := New(&types.UserLogConfig{Level: strPtr("loud")})
		// 非法级别不覆盖默认值
		assert.Equal(t, "info", cfg.Options().Level)
	})

	t.Run("FilePath Disables Console", func(t *testing.T) {
		cfg := New(&types.UserLogConfig{FilePath: strPtr("/tmp/bankrun.log")})
		options := cfg.Options()
		assert.Equal(t, "/tmp/bankrun.log", options.FilePath)
		assert.False(t, options.ToConsole)
	})

	t.Run("Explicit Console With File", func(t *testing.T) {
		// 用户明确设置to_console=true时同时保留两路输出
		cfg := New(&types.UserLogConfig{
			FilePath:  strPtr("/tmp/bankrun.log"),
			ToConsole: boolPtr(true),
		})
		options := cfg.Options()
		assert.Equal(t, "/tmp/bankrun.log", options.FilePath)
		assert.True(t, options.ToConsole)
	})
}

// TestFromOptions 测试选项复用路径
func TestFromOptions(t *testing.T) {
	t.Run("Nil Falls Back To Defaults", func(t *testing.T) {
		cfg := FromOptions(nil)
		require.NotNil(t, cfg)
		assert.Equal(t, "info", cfg.Options().Level)
	})

	t.Run("Missing LevelMap Restored", func(t *testing.T) {
		cfg := FromOptions(&LogOptions{Level: "warn"})
		assert.Equal(t, zapcore.WarnLevel, cfg.ZapLevel())
	})

	t.Run("Unknown Level Falls Back To Info", func(t *testing.T) {
		cfg := FromOptions(&LogOptions{Level: "noise"})
		assert.Equal(t, zapcore.InfoLevel, cfg.ZapLevel())
	})
}
