package logic

import (
	"context"
	"fmt"

	"github.com/blocto/solana-go-sdk/program/system"
	soltypes "github.com/blocto/solana-go-sdk/types"

	"prereq-sol/internal/svc"
	"prereq-sol/internal/types"
	"prereq-sol/pkg/logger"
)

func transferInstruction(from soltypes.Account, to types.Pubkey, lamports uint64) soltypes.Instruction {
	return system.Transfer(system.TransferParam{
		From:   from.PublicKey,
		To:     to.ToCommon(),
		Amount: lamports,
	})
}

// Transfer 从 from 转出固定数量的 lamports，余额不足以覆盖转账 + 手续费时拒绝
func Transfer(ctx context.Context, sc *svc.ServiceContext, from soltypes.Account, to types.Pubkey, lamports uint64) (*Receipt, error) {
	payer := types.PubkeyFromCommon(from.PublicKey)

	balance, err := sc.Transport.GetBalance(ctx, payer)
	if err != nil {
		return nil, fmt.Errorf("get balance: %w", err)
	}

	msg, err := newMessage(ctx, sc, from, transferInstruction(from, to, lamports))
	if err != nil {
		return nil, err
	}
	fee, err := sc.Transport.GetFeeForMessage(ctx, msg)
	if err != nil {
		return nil, fmt.Errorf("get fee: %w", err)
	}

	if lamports > balance || fee > balance-lamports {
		return nil, fmt.Errorf("%w: balance=%d amount=%d fee=%d", ErrInsufficientBalance, balance, lamports, fee)
	}

	logger.Infof("[Transfer] %s -> %s, amount=%d fee=%d", payer, to, lamports, fee)
	return submit(ctx, sc, msg, from)
}

// TransferAll 转出全部余额，扣除手续费后清空 from 账户
func TransferAll(ctx context.Context, sc *svc.ServiceContext, from soltypes.Account, to types.Pubkey) (*Receipt, error) {
	payer := types.PubkeyFromCommon(from.PublicKey)

	balance, err := sc.Transport.GetBalance(ctx, payer)
	if err != nil {
		return nil, fmt.Errorf("get balance: %w", err)
	}

	// 估算手续费与正式转账共用同一个 blockhash，金额不影响费用
	blockhash, err := latestBlockhash(ctx, sc)
	if err != nil {
		return nil, err
	}
	fee, err := sc.Transport.GetFeeForMessage(ctx, buildMessage(from, blockhash, transferInstruction(from, to, balance)))
	if err != nil {
		return nil, fmt.Errorf("get fee: %w", err)
	}
	if balance <= fee {
		return nil, fmt.Errorf("%w: balance=%d fee=%d", ErrInsufficientBalance, balance, fee)
	}

	msg := buildMessage(from, blockhash, transferInstruction(from, to, balance-fee))

	logger.Infof("[TransferAll] %s -> %s, amount=%d fee=%d", payer, to, balance-fee, fee)
	return submit(ctx, sc, msg, from)
}
