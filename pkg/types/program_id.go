// Package types 提供bankrun系统的共享类型定义
package types

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
)

// ProgramIDLength 程序标识符长度（32字节）
const ProgramIDLength = 32

var (
	// ErrInvalidProgramID 无效的程序标识符
	ErrInvalidProgramID = errors.New("invalid program id")
	// ErrInvalidProgramIDLength 程序标识符长度错误
	ErrInvalidProgramIDLength = errors.New("invalid program id length")
)

// ProgramID 程序标识符
//
// 32字节的全局唯一标识，对外以Base58字符串形式呈现。
// 标识符在程序声明时固定，部署后不再变化：
// 运行时只解码、比较和重编码，从不重新构造。
type ProgramID [ProgramIDLength]byte

// ParseProgramID 从Base58字符串解析程序标识符
//
// 参数：
//   - s: Base58编码的标识符字符串
//
// 返回：
//   - ProgramID: 解析后的标识符
//   - error: 解码失败或长度不是32字节
func ParseProgramID(s string) (ProgramID, error) {
	var id ProgramID
	raw, err := base58.Decode(s)
	if err != nil {
		return id, fmt.Errorf("%w: %v", ErrInvalidProgramID, err)
	}
	if len(raw) != ProgramIDLength {
		return id, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidProgramIDLength, len(raw), ProgramIDLength)
	}
	copy(id[:], raw)
	return id, nil
}

// MustParseProgramID 解析程序标识符，失败时panic
//
// 仅用于包级声明中的编译期字面量，运行期输入必须走ParseProgramID。
func MustParseProgramID(s string) ProgramID {
	id, err := ParseProgramID(s)
	if err != nil {
		panic(fmt.Sprintf("types: MustParseProgramID(%q): %v", s, err))
	}
	return id
}

// String 返回标识符的Base58字符串表示
func (id ProgramID) String() string {
	return base58.Encode(id[:])
}

// Bytes 返回标识符的字节副本
func (id ProgramID) Bytes() []byte {
	out := make([]byte, ProgramIDLength)
	copy(out, id[:])
	return out
}

// Equal 判断两个标识符是否相等
func (id ProgramID) Equal(other ProgramID) bool {
	return bytes.Equal(id[:], other[:])
}

// IsZero 判断标识符是否为零值
func (id ProgramID) IsZero() bool {
	return id == ProgramID{}
}
