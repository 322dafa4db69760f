package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankrun/v1/pkg/types"
)

// TestProvider 测试配置提供者
func TestProvider(t *testing.T) {
	t.Run("Nil UserConfig Yields Defaults", func(t *testing.T) {
		provider := NewProvider(nil)

		logOptions := provider.GetLog()
		require.NotNil(t, logOptions)
		assert.Equal(t, "info", logOptions.Level)

		runtimeOptions := provider.GetRuntime()
		require.NotNil(t, runtimeOptions)
		assert.Equal(t, 256, runtimeOptions.MaxLogLines)
	})

	t.Run("UserConfig Propagated", func(t *testing.T) {
		level := "debug"
		maxLines := 16
		provider := NewProvider(&types.UserConfig{
			Log:     &types.UserLogConfig{Level: &level},
			Runtime: &types.UserRuntimeConfig{MaxLogLines: &maxLines},
		})

		assert.Equal(t, "debug", provider.GetLog().Level)
		assert.Equal(t, 16, provider.GetRuntime().MaxLogLines)
	})
}
