package types

// AccountMeta 指令引用的账户元信息
//
// 调用约定要求账户按声明顺序传入；入口结构未消费的账户
// 作为"剩余账户"原样透传给程序。
type AccountMeta struct {
	// Address 账户地址（32字节，Base58呈现）
	Address ProgramID `json:"address"`

	// IsSigner 该账户是否为本次调用的签名者
	IsSigner bool `json:"is_signer"`

	// IsWritable 该账户是否可写
	IsWritable bool `json:"is_writable"`
}

// Instruction 一次程序调用的完整描述
//
// 调用方构造后交给运行时分发，生命周期仅覆盖单次调用。
type Instruction struct {
	// ProgramID 目标程序标识符
	ProgramID ProgramID `json:"program_id"`

	// Data 指令数据
	// 前8字节为入口判别符，其余为入口参数（initialize无参数）
	Data []byte `json:"data"`

	// Accounts 按序传入的账户元信息
	Accounts []AccountMeta `json:"accounts"`
}
