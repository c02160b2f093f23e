package consts

// prereq 程序的指令 discriminator（8 字节，按大端读取为 uint64 以便 switch 比较）
//
//	Complete: [0, 77, 224, 147, 136, 25, 88, 76]
//	Update:   [219, 200, 88, 176, 158, 63, 253, 127]
const (
	PrereqComplete uint64 = 0x004de0938819584c
	PrereqUpdate   uint64 = 0xdbc858b09e3ffd7f
)

// PDA 种子前缀：["prereq", signer]
const PrereqSeed = "prereq"

// Anchor 账户名称，用于计算 PrereqAccount 的账户 discriminator
const PrereqAccountName = "PrereqAccount"
