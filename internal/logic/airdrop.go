package logic

import (
	"context"
	"fmt"

	"prereq-sol/internal/svc"
	"prereq-sol/internal/transport"
	"prereq-sol/internal/types"
	"prereq-sol/pkg/logger"
)

// Airdrop 向水龙头申请 lamports 并等待到账
func Airdrop(ctx context.Context, sc *svc.ServiceContext, to types.Pubkey, lamports uint64) (*Receipt, error) {
	sig, err := sc.Transport.RequestAirdrop(ctx, to, lamports)
	if err != nil {
		return nil, fmt.Errorf("request airdrop: %w", err)
	}
	logger.Infof("[Airdrop] 已申请 %d lamports -> %s, sig=%s", lamports, to, sig)

	if err := transport.WaitForConfirmation(ctx, sc.Transport, sig, sc.ConfirmOpt); err != nil {
		return nil, err
	}
	return newReceipt(sc, sig), nil
}
