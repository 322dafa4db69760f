package greeting

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankrun/v1/internal/core/runtime"
	"github.com/bankrun/v1/pkg/constants"
	types "github.com/bankrun/v1/pkg/types"
)

// newTestRuntime 构建注册了greeting程序的调用器
func newTestRuntime(t *testing.T) *runtime.Invoker {
	t.Helper()
	registry := runtime.NewRegistry()
	require.NoError(t, registry.Register(New()))
	return runtime.NewInvoker(registry, nil, nil)
}

// initializeInstruction 按调用约定构造initialize指令
func initializeInstruction(accounts ...types.AccountMeta) types.Instruction {
	disc := runtime.EntrypointDiscriminator("initialize")
	return types.Instruction{
		ProgramID: ID,
		Data:      disc[:],
		Accounts:  accounts,
	}
}

// TestProgramIdentity 测试程序身份
func TestProgramIdentity(t *testing.T) {
	program := New()

	// 标识符与声明字面量一致，重复读取稳定
	assert.Equal(t, constants.GreetingProgramID, program.ID().String())
	assert.Equal(t, program.ID(), program.ID())
	assert.Equal(t, "greeting", program.Name())
}

// TestInitialize 测试initialize入口
func TestInitialize(t *testing.T) {
	t.Run("Always Succeeds", func(t *testing.T) {
		invoker := newTestRuntime(t)

		result := invoker.Invoke(context.Background(), initializeInstruction())
		require.NotNil(t, result)
		assert.True(t, result.Success())
		assert.NoError(t, result.Err)
	})

	t.Run("Greets With Exact Program ID", func(t *testing.T) {
		// 具体场景：标识符为GhcmnSh5q2ZSpBCD6bkNKLXarKghCGg6QDVjk4wQbiav时，
		// 调用成功且日志恰好包含该字面量
		invoker := newTestRuntime(t)

		result := invoker.Invoke(context.Background(), initializeInstruction())
		require.True(t, result.Success())
		assert.Contains(t, result.Logs, fmt.Sprintf("Program log: Greetings from: %s", constants.GreetingProgramID))
	})

	t.Run("Emits Exactly One Program Log Line", func(t *testing.T) {
		invoker := newTestRuntime(t)

		result := invoker.Invoke(context.Background(), initializeInstruction())
		require.True(t, result.Success())

		// invoke帧 + 一行程序日志 + success帧
		require.Len(t, result.Logs, 3)
		assert.Equal(t, fmt.Sprintf("Program %s invoke [1]", ID), result.Logs[0])
		assert.Equal(t, fmt.Sprintf("Program log: Greetings from: %s", ID), result.Logs[1])
		assert.Equal(t, fmt.Sprintf("Program %s success", ID), result.Logs[2])
	})

	t.Run("Repeated Invocations Identical", func(t *testing.T) {
		// 程序无状态：任意多次调用的可观测输出完全一致
		invoker := newTestRuntime(t)

		first := invoker.Invoke(context.Background(), initializeInstruction())
		require.True(t, first.Success())
		for i := 0; i < 5; i++ {
			again := invoker.Invoke(context.Background(), initializeInstruction())
			require.True(t, again.Success())
			assert.Equal(t, first.Logs, again.Logs)
		}
	})

	t.Run("Tolerates Remaining Accounts", func(t *testing.T) {
		// 入口声明零账户，多传的账户作为剩余账户透传，不影响结果
		invoker := newTestRuntime(t)

		var addr types.ProgramID
		addr[0] = 0x42
		result := invoker.Invoke(context.Background(), initializeInstruction(
			types.AccountMeta{Address: addr, IsSigner: true, IsWritable: true},
		))
		assert.True(t, result.Success())
	})
}

// TestExecuteDispatch 测试调用约定层的分发错误
func TestExecuteDispatch(t *testing.T) {
	t.Run("Unknown Discriminator", func(t *testing.T) {
		invoker := newTestRuntime(t)
		disc := runtime.EntrypointDiscriminator("does_not_exist")

		result := invoker.Invoke(context.Background(), types.Instruction{
			ProgramID: ID,
			Data:      disc[:],
		})
		assert.False(t, result.Success())
		assert.ErrorIs(t, result.Err, ErrUnknownEntrypoint)
	})

	t.Run("Short Instruction Data", func(t *testing.T) {
		invoker := newTestRuntime(t)

		result := invoker.Invoke(context.Background(), types.Instruction{
			ProgramID: ID,
			Data:      []byte{1, 2},
		})
		assert.False(t, result.Success())
		assert.ErrorIs(t, result.Err, runtime.ErrInstructionTooShort)
	})
}
