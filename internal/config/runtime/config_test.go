package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bankrun/v1/pkg/types"
)

func intPtr(n int) *int { return &n }

// TestRuntimeConfig 测试运行时配置
func TestRuntimeConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		options := New(nil).Options()
		assert.Equal(t, 256, options.MaxLogLines)
	})

	t.Run("User Override", func(t *testing.T) {
		options := New(&types.UserRuntimeConfig{MaxLogLines: intPtr(32)}).Options()
		assert.Equal(t, 32, options.MaxLogLines)
	})

	t.Run("Non Positive Ignored", func(t *testing.T) {
		// 上限必须为正，非法值回退默认
		options := New(&types.UserRuntimeConfig{MaxLogLines: intPtr(0)}).Options()
		assert.Equal(t, 256, options.MaxLogLines)

		options = New(&types.UserRuntimeConfig{MaxLogLines: intPtr(-5)}).Options()
		assert.Equal(t, 256, options.MaxLogLines)
	})
}
