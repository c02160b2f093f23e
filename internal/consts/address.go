package consts

import "prereq-sol/internal/types"

// Base58 地址常量（可读性高，适合配置与日志使用）
const (
	// Programs
	SystemProgramStr = "11111111111111111111111111111111"

	// Turbin3 prereq 程序（链上已部署，地址不可更改）
	PrereqProgramStr = "ADcaide4vBtKuyZQqdU689YqEGZMCmS4tL35bdTv9wJa"

	// 默认转账目标（Turbin3 钱包）
	DefaultRecipientStr = "95HRCXSxU18oh8hWXbdkqxenqCwopDGXjmhFQ9Pd2EuQ"
)

var (
	SystemProgram    = types.PubkeyFromBase58(SystemProgramStr)
	PrereqProgram    = types.PubkeyFromBase58(PrereqProgramStr)
	DefaultRecipient = types.PubkeyFromBase58(DefaultRecipientStr)
)
