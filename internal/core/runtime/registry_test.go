package runtime

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	runtimeiface "github.com/bankrun/v1/pkg/interfaces/runtime"
	types "github.com/bankrun/v1/pkg/types"
)

// mockProgram 测试用程序
type mockProgram struct {
	id      types.ProgramID
	name    string
	execute func(ictx runtimeiface.InvocationContext, data []byte, accounts []types.AccountMeta) error
}

func (m *mockProgram) ID() types.ProgramID { return m.id }
func (m *mockProgram) Name() string        { return m.name }
func (m *mockProgram) Execute(_ context.Context, ictx runtimeiface.InvocationContext, data []byte, accounts []types.AccountMeta) error {
	if m.execute != nil {
		return m.execute(ictx, data, accounts)
	}
	return nil
}

// testProgramID 构造测试标识符
func testProgramID(seed byte) types.ProgramID {
	var id types.ProgramID
	for i := range id {
		id[i] = seed
	}
	return id
}

// TestRegistry 测试注册表功能
func TestRegistry(t *testing.T) {
	t.Run("NewRegistry Creation", func(t *testing.T) {
		registry := NewRegistry()

		assert.NotNil(t, registry)
		assert.NotNil(t, registry.programs)
		assert.Empty(t, registry.programs)
	})

	t.Run("Registry Program Management", func(t *testing.T) {
		registry := NewRegistry()
		program := &mockProgram{id: testProgramID(1), name: "mock"}

		// 测试注册程序
		err := registry.Register(program)
		assert.NoError(t, err)

		// 测试获取程序
		got, found := registry.Get(testProgramID(1))
		assert.True(t, found)
		assert.Equal(t, program, got)

		// 测试获取不存在的程序
		_, found = registry.Get(testProgramID(2))
		assert.False(t, found)

		// 测试列出程序
		ids := registry.List()
		assert.Len(t, ids, 1)
		assert.Equal(t, testProgramID(1), ids[0])
	})

	t.Run("Registry Duplicate Registration", func(t *testing.T) {
		registry := NewRegistry()

		program1 := &mockProgram{id: testProgramID(1), name: "first"}
		program2 := &mockProgram{id: testProgramID(1), name: "second"}

		// 第一次注册成功
		err1 := registry.Register(program1)
		assert.NoError(t, err1)

		// 重复注册同标识符应该失败
		err2 := registry.Register(program2)
		assert.Error(t, err2)
		assert.Contains(t, err2.Error(), "already registered")
	})

	t.Run("Registry Rejects Invalid Programs", func(t *testing.T) {
		registry := NewRegistry()

		// nil程序
		err := registry.Register(nil)
		assert.Error(t, err)

		// 零值标识符
		err = registry.Register(&mockProgram{name: "zero"})
		assert.Error(t, err)
	})

	t.Run("Registry List Sorted", func(t *testing.T) {
		registry := NewRegistry()
		require.NoError(t, registry.Register(&mockProgram{id: testProgramID(9), name: "a"}))
		require.NoError(t, registry.Register(&mockProgram{id: testProgramID(3), name: "b"}))
		require.NoError(t, registry.Register(&mockProgram{id: testProgramID(7), name: "c"}))

		ids := registry.List()
		require.Len(t, ids, 3)
		// Base58字典序稳定
		for i := 1; i < len(ids); i++ {
			assert.Less(t, ids[i-1].String(), ids[i].String())
		}
	})
}
