package transport

import (
	"context"
	"errors"

	soltypes "github.com/blocto/solana-go-sdk/types"

	"prereq-sol/internal/types"
)

var (
	ErrTransactionFailed = errors.New("transaction failed on chain")
	ErrConfirmTimeout    = errors.New("timed out waiting for confirmation")
	ErrAccountNotFound   = errors.New("account not found")
)

const (
	StatusProcessed = "processed"
	StatusConfirmed = "confirmed"
	StatusFinalized = "finalized"
)

// SignatureStatus 是 getSignatureStatuses 单条结果的精简版本
type SignatureStatus struct {
	Slot         uint64
	Confirmation string // processed / confirmed / finalized，节点未返回时为空
	Err          any    // 链上执行错误，nil 表示成功
}

// Transport 抽象了与 RPC 节点的交互，逻辑层只依赖该接口，便于测试替换
type Transport interface {
	GetBalance(ctx context.Context, account types.Pubkey) (uint64, error)
	GetLatestBlockhash(ctx context.Context) (types.Hash, error)
	GetFeeForMessage(ctx context.Context, message soltypes.Message) (uint64, error)
	GetAccountData(ctx context.Context, account types.Pubkey) ([]byte, error)
	RequestAirdrop(ctx context.Context, to types.Pubkey, lamports uint64) (string, error)
	SendTransaction(ctx context.Context, tx soltypes.Transaction) (string, error)
	GetSignatureStatus(ctx context.Context, signature string) (*SignatureStatus, error)
}
