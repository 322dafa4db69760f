package runtime

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/bankrun/v1/pkg/constants"
)

var (
	// ErrInstructionTooShort 指令数据不足以容纳入口判别符
	ErrInstructionTooShort = errors.New("instruction data too short for entrypoint discriminator")
)

// Discriminator 入口判别符（指令数据前8字节）
type Discriminator [constants.DiscriminatorLength]byte

// EntrypointDiscriminator 计算入口的判别符
//
// 判别符 = sha256("<命名空间>:<入口名>") 的前8字节。
// 该推导是调用约定的一部分，调用方用同样的算法构造指令数据。
func EntrypointDiscriminator(name string) Discriminator {
	var d Discriminator
	sum := sha256.Sum256([]byte(constants.EntrypointNamespace + ":" + name))
	copy(d[:], sum[:constants.DiscriminatorLength])
	return d
}

// SplitInstructionData 从指令数据中切出判别符和入口参数
//
// 返回：
//   - Discriminator: 入口判别符
//   - []byte: 判别符之后的入口参数（initialize无参数时为空）
//   - error: 数据不足8字节
func SplitInstructionData(data []byte) (Discriminator, []byte, error) {
	var d Discriminator
	if len(data) < constants.DiscriminatorLength {
		return d, nil, fmt.Errorf("%w: got %d bytes", ErrInstructionTooShort, len(data))
	}
	copy(d[:], data[:constants.DiscriminatorLength])
	return d, data[constants.DiscriminatorLength:], nil
}
