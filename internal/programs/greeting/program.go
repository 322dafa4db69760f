// Package greeting 提供内置的greeting程序
//
// 📋 **greeting程序 (Greeting Program)**
//
// 最小的被托管程序：一个入口、一个固定标识符、零账户约束。
// 唯一入口initialize输出一行"Greetings from: <程序标识符>"
// 程序日志后无条件成功返回，不产生任何其他副作用。
//
// 🎯 **设计要点**
// - 编译期常量身份：标识符以字面量声明在pkg/constants，
//   包加载时解析一次，运行期只读
// - 空标记账户结构：InitializeAccounts零字段，仅为满足
//   统一调用约定的入参容器要求而存在
package greeting

import (
	"context"
	"errors"
	"fmt"

	"github.com/bankrun/v1/internal/core/runtime"
	"github.com/bankrun/v1/pkg/constants"
	runtimeiface "github.com/bankrun/v1/pkg/interfaces/runtime"
	types "github.com/bankrun/v1/pkg/types"
)

// ID greeting程序的标识符
// 声明时固定，整个部署生命周期内不变
var ID = types.MustParseProgramID(constants.GreetingProgramID)

// initializeDiscriminator initialize入口的判别符
var initializeDiscriminator = runtime.EntrypointDiscriminator("initialize")

var (
	// ErrUnknownEntrypoint 指令判别符未匹配到任何入口
	ErrUnknownEntrypoint = errors.New("unknown entrypoint discriminator")
)

// InitializeAccounts initialize入口的账户结构
//
// 零字段：该入口不声明任何账户，不校验任何约束。
// 结构体本身只为满足统一入参容器的调用约定而存在，
// 向它"传入字段"在构造期就不可能发生。
type InitializeAccounts struct{}

// loadInitializeAccounts 按入口声明装载账户结构
//
// initialize声明零个账户，装载消费零个元信息；
// 传入的账户全部作为剩余账户透传。
func loadInitializeAccounts(_ []types.AccountMeta) (InitializeAccounts, error) {
	return InitializeAccounts{}, nil
}

// Program greeting程序实现
// 无状态：实例不持有任何调用间共享数据
type Program struct{}

// 确保Program实现了运行时程序接口
var _ runtimeiface.Program = (*Program)(nil)

// New 创建greeting程序实例
func New() *Program {
	return &Program{}
}

// ID 返回程序标识符
func (p *Program) ID() types.ProgramID {
	return ID
}

// Name 返回程序可读名称
func (p *Program) Name() string {
	return constants.GreetingProgramName
}

// Execute 按判别符分发指令
//
// 判别符不合法属于调用约定错误，在任何入口体执行前报告，
// 不计入具体入口的失败路径。
func (p *Program) Execute(_ context.Context, ictx runtimeiface.InvocationContext, data []byte, accounts []types.AccountMeta) error {
	disc, _, err := runtime.SplitInstructionData(data)
	if err != nil {
		return err
	}

	switch disc {
	case initializeDiscriminator:
		accs, err := loadInitializeAccounts(accounts)
		if err != nil {
			return err
		}
		return p.Initialize(ictx, accs)
	default:
		return fmt.Errorf("%w: %x", ErrUnknownEntrypoint, disc)
	}
}

// Initialize initialize入口
//
// 唯一副作用是输出一行包含程序标识符的程序日志，
// 之后无条件成功返回。不存在可失败的分支。
func (p *Program) Initialize(ictx runtimeiface.InvocationContext, _ InitializeAccounts) error {
	ictx.Logf("Greetings from: %s", ictx.ProgramID())
	return nil
}
