package transport

import (
	"context"
	"errors"
	"fmt"
	"time"

	soltypes "github.com/blocto/solana-go-sdk/types"

	"prereq-sol/pkg/logger"
)

type ConfirmOption struct {
	Timeout      time.Duration
	PollInterval time.Duration
}

func (o ConfirmOption) withDefaults() ConfirmOption {
	if o.Timeout <= 0 {
		o.Timeout = 60 * time.Second
	}
	if o.PollInterval <= 0 {
		o.PollInterval = 500 * time.Millisecond
	}
	return o
}

// SendAndConfirm 提交交易并等待其达到 confirmed 或 finalized
func SendAndConfirm(ctx context.Context, t Transport, tx soltypes.Transaction, opt ConfirmOption) (string, error) {
	sig, err := t.SendTransaction(ctx, tx)
	if err != nil {
		return "", err
	}
	logger.Infof("[Confirm] 交易已提交: %s", sig)
	return sig, WaitForConfirmation(ctx, t, sig, opt)
}

// WaitForConfirmation 按固定间隔轮询签名状态。
// 查询失败只记录日志继续轮询，链上执行失败立即返回 *TxError（可用 ErrTransactionFailed 判断）。
func WaitForConfirmation(ctx context.Context, t Transport, sig string, opt ConfirmOption) error {
	opt = opt.withDefaults()
	waitCtx, cancel := context.WithTimeout(ctx, opt.Timeout)
	defer cancel()

	ticker := time.NewTicker(opt.PollInterval)
	defer ticker.Stop()

	start := time.Now()
	for {
		status, err := t.GetSignatureStatus(waitCtx, sig)
		switch {
		case err != nil:
			logger.Warnf("[Confirm] 查询签名状态失败: sig=%s err=%v", sig, err)
		case status == nil:
			// 节点尚未看到该交易
		case status.Err != nil:
			return &TxError{Signature: sig, Err: status.Err}
		case status.Confirmation == StatusConfirmed || status.Confirmation == StatusFinalized:
			logger.Infof("[Confirm] 交易已确认: sig=%s slot=%d status=%s 耗时=%v", sig, status.Slot, status.Confirmation, time.Since(start))
			return nil
		}

		select {
		case <-waitCtx.Done():
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if errors.Is(waitCtx.Err(), context.DeadlineExceeded) {
				return fmt.Errorf("%w: sig=%s after %v", ErrConfirmTimeout, sig, opt.Timeout)
			}
			return waitCtx.Err()
		case <-ticker.C:
		}
	}
}
