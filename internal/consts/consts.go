package consts

const (
	LamportsPerSOL uint64 = 1_000_000_000

	// 水龙头默认领取 2 SOL
	DefaultAirdropLamports = 2 * LamportsPerSOL

	// 默认转账 0.1 SOL
	DefaultTransferLamports = LamportsPerSOL / 10

	ExplorerTxURL  = "https://explorer.solana.com/tx/%s?cluster=%s"
	DefaultCluster = "devnet"
)
