package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 测试用的合法Base58标识符（32字节）
const testProgramIDLiteral = "GhcmnSh5q2ZSpBCD6bkNKLXarKghCGg6QDVjk4wQbiav"

// TestParseProgramID 测试程序标识符解析
func TestParseProgramID(t *testing.T) {
	t.Run("Valid Literal Roundtrip", func(t *testing.T) {
		id, err := ParseProgramID(testProgramIDLiteral)
		require.NoError(t, err)

		// 重编码必须与原字面量一致
		assert.Equal(t, testProgramIDLiteral, id.String())
		assert.False(t, id.IsZero())
		assert.Len(t, id.Bytes(), ProgramIDLength)
	})

	t.Run("Stable Across Repeated Reads", func(t *testing.T) {
		// 同一字面量多次解析结果必须完全一致（确定性，非随机）
		first, err := ParseProgramID(testProgramIDLiteral)
		require.NoError(t, err)
		for i := 0; i < 10; i++ {
			again, err := ParseProgramID(testProgramIDLiteral)
			require.NoError(t, err)
			assert.True(t, first.Equal(again))
			assert.Equal(t, first.String(), again.String())
		}
	})

	t.Run("Invalid Base58", func(t *testing.T) {
		// 0、O、I、l不在Base58字母表中
		_, err := ParseProgramID("0OIl+/====")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidProgramID)
	})

	t.Run("Wrong Length", func(t *testing.T) {
		// 合法Base58但解码后不足32字节
		_, err := ParseProgramID("3yZe7d")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidProgramIDLength)
	})

	t.Run("Empty String", func(t *testing.T) {
		_, err := ParseProgramID("")
		require.Error(t, err)
	})
}

// TestMustParseProgramID 测试panic路径
func TestMustParseProgramID(t *testing.T) {
	t.Run("Valid Does Not Panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			_ = MustParseProgramID(testProgramIDLiteral)
		})
	})

	t.Run("Invalid Panics", func(t *testing.T) {
		assert.Panics(t, func() {
			_ = MustParseProgramID("not-base58!")
		})
	})
}

// TestProgramIDEqual 测试标识符比较
func TestProgramIDEqual(t *testing.T) {
	id1 := MustParseProgramID(testProgramIDLiteral)
	id2 := MustParseProgramID(testProgramIDLiteral)
	var zero ProgramID

	assert.True(t, id1.Equal(id2))
	assert.False(t, id1.Equal(zero))
	assert.True(t, zero.IsZero())

	// Bytes返回副本，修改不应影响原值
	raw := id1.Bytes()
	raw[0] ^= 0xFF
	assert.Equal(t, testProgramIDLiteral, id1.String())
}
