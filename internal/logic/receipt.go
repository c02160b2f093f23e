package logic

import (
	"context"
	"errors"
	"fmt"

	soltypes "github.com/blocto/solana-go-sdk/types"

	"prereq-sol/internal/consts"
	"prereq-sol/internal/svc"
	"prereq-sol/internal/transport"
	"prereq-sol/internal/types"
)

var ErrInsufficientBalance = errors.New("insufficient balance for transfer + fee")

// Receipt 表示一笔已确认的提交
type Receipt struct {
	Signature   string
	ExplorerURL string
}

func newReceipt(sc *svc.ServiceContext, sig string) *Receipt {
	cluster := sc.Config.RpcConf.Cluster
	if cluster == "" {
		cluster = consts.DefaultCluster
	}
	return &Receipt{
		Signature:   sig,
		ExplorerURL: fmt.Sprintf(consts.ExplorerTxURL, sig, cluster),
	}
}

// newMessage 以 payer 作为 fee payer 组装消息，blockhash 从节点实时获取
func newMessage(ctx context.Context, sc *svc.ServiceContext, payer soltypes.Account, ixs ...soltypes.Instruction) (soltypes.Message, error) {
	blockhash, err := latestBlockhash(ctx, sc)
	if err != nil {
		return soltypes.Message{}, err
	}
	return buildMessage(payer, blockhash, ixs...), nil
}

func latestBlockhash(ctx context.Context, sc *svc.ServiceContext) (types.Hash, error) {
	blockhash, err := sc.Transport.GetLatestBlockhash(ctx)
	if err != nil {
		return types.Hash{}, fmt.Errorf("get latest blockhash: %w", err)
	}
	return blockhash, nil
}

func buildMessage(payer soltypes.Account, blockhash types.Hash, ixs ...soltypes.Instruction) soltypes.Message {
	return soltypes.NewMessage(soltypes.NewMessageParam{
		FeePayer:        payer.PublicKey,
		RecentBlockhash: blockhash.String(),
		Instructions:    ixs,
	})
}

// submit 签名、发送并等待确认
func submit(ctx context.Context, sc *svc.ServiceContext, msg soltypes.Message, signers ...soltypes.Account) (*Receipt, error) {
	tx, err := soltypes.NewTransaction(soltypes.NewTransactionParam{
		Message: msg,
		Signers: signers,
	})
	if err != nil {
		return nil, fmt.Errorf("sign transaction: %w", err)
	}

	sig, err := transport.SendAndConfirm(ctx, sc.Transport, tx, sc.ConfirmOpt)
	if err != nil {
		return nil, err
	}
	return newReceipt(sc, sig), nil
}
