package logic

import (
	"context"
	"errors"
	"fmt"

	soltypes "github.com/blocto/solana-go-sdk/types"

	"prereq-sol/internal/pda"
	"prereq-sol/internal/prereq"
	"prereq-sol/internal/svc"
	"prereq-sol/internal/transport"
	"prereq-sol/internal/types"
	"prereq-sol/pkg/logger"
)

// Enroll 调用 prereq 程序的 complete 指令，创建 signer 的报名记录
func Enroll(ctx context.Context, sc *svc.ServiceContext, signer soltypes.Account, github []byte) (*Receipt, error) {
	return invoke(ctx, sc, signer, prereq.CompleteArgs{Github: github})
}

// UpdateEnrollment 调用 update 指令，修改已有报名记录中的 github
func UpdateEnrollment(ctx context.Context, sc *svc.ServiceContext, signer soltypes.Account, github []byte) (*Receipt, error) {
	return invoke(ctx, sc, signer, prereq.UpdateArgs{Github: github})
}

func invoke(ctx context.Context, sc *svc.ServiceContext, signer soltypes.Account, args prereq.Args) (*Receipt, error) {
	signerKey := types.PubkeyFromCommon(signer.PublicKey)

	ix, err := prereq.NewInstruction(args, signerKey)
	if err != nil {
		return nil, fmt.Errorf("build %s instruction: %w", args.Kind(), err)
	}

	msg, err := newMessage(ctx, sc, signer, ix)
	if err != nil {
		return nil, err
	}

	logger.Infof("[Prereq] %s: signer=%s prereq=%s github=%q",
		args.Kind(), signerKey, ix.Accounts[1].PubKey.ToBase58(), args.GithubBytes())
	receipt, err := submit(ctx, sc, msg, signer)
	if err != nil {
		return nil, withProgramError(err)
	}
	return receipt, nil
}

// withProgramError 把链上返回的自定义错误码映射为 prereq 的具名错误
func withProgramError(err error) error {
	var txErr *transport.TxError
	if !errors.As(err, &txErr) {
		return err
	}
	code, ok := txErr.CustomCode()
	if !ok {
		return err
	}
	if named := prereq.ProgramError(code); named != nil {
		return fmt.Errorf("%w: %w", named, err)
	}
	return err
}

// EnrollmentStatus 读取并解析 signer 的链上报名记录
func EnrollmentStatus(ctx context.Context, sc *svc.ServiceContext, signer types.Pubkey) (*prereq.PrereqAccount, pda.ProgramAddress, error) {
	addr, err := pda.DerivePrereq(signer)
	if err != nil {
		return nil, pda.ProgramAddress{}, fmt.Errorf("derive prereq address: %w", err)
	}

	data, err := sc.Transport.GetAccountData(ctx, addr.Address)
	if err != nil {
		return nil, addr, err
	}

	account, err := prereq.DecodePrereqAccount(data)
	if err != nil {
		return nil, addr, err
	}
	return account, addr, nil
}
