package runtime

import (
	"fmt"
	"sort"
	"sync"

	runtimeiface "github.com/bankrun/v1/pkg/interfaces/runtime"
	types "github.com/bankrun/v1/pkg/types"
)

// Registry 程序注册表
//
// # 核心功能：
// - 维护程序标识符到Program的一对一映射
// - 确保每个标识符只注册一次
// - 提供并发安全的注册、查询操作
//
// # 设计目标：
// - 并发安全：读写锁保护，支持高并发查询
// - 域唯一：每个程序标识符只能注册一次
// - 可枚举：支持列出所有已注册程序
// - 高性能：O(1)查询复杂度
type Registry struct {
	// mu 读写锁
	// 保护programs映射的并发访问安全
	// 读写锁优化读多写少的访问模式
	mu sync.RWMutex

	// programs 程序标识符到程序实例的映射
	programs map[types.ProgramID]runtimeiface.Program
}

// 确保Registry实现了ProgramRegistry接口
var _ runtimeiface.ProgramRegistry = (*Registry)(nil)

// NewRegistry 创建程序注册表
//
// 返回初始化完成的空注册表实例，读写锁已初始化，可安全并发使用。
//
// 使用示例：
//
//	reg := NewRegistry()
//	reg.Register(greeting.New())
func NewRegistry() *Registry {
	return &Registry{programs: make(map[types.ProgramID]runtimeiface.Program)}
}

// Register 注册程序（同标识符唯一）
func (r *Registry) Register(program runtimeiface.Program) error {
	if program == nil {
		return fmt.Errorf("program is nil")
	}
	id := program.ID()
	if id.IsZero() {
		return fmt.Errorf("program id is zero")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.programs[id]; exists {
		return fmt.Errorf("program already registered: %s", id)
	}
	r.programs[id] = program
	return nil
}

// Get 按标识符查找程序
func (r *Registry) Get(id types.ProgramID) (runtimeiface.Program, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	program, found := r.programs[id]
	return program, found
}

// List 列出所有已注册程序的标识符（按Base58字典序，保证枚举稳定）
func (r *Registry) List() []types.ProgramID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]types.ProgramID, 0, len(r.programs))
	for id := range r.programs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	})
	return ids
}
