package transport

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/blocto/solana-go-sdk/client"
	"github.com/blocto/solana-go-sdk/common"
	soltypes "github.com/blocto/solana-go-sdk/types"

	"prereq-sol/internal/types"
	"prereq-sol/pkg/logger"
)

type RpcOption struct {
	Endpoint    string
	CallTimeout time.Duration // 单次调用超时
	RetryCount  int           // 只读调用失败后的重试次数
	RetryDelay  time.Duration
}

// RpcTransport 基于 blocto solana-go-sdk 的 RPC 客户端实现 Transport
type RpcTransport struct {
	client      *client.Client
	callTimeout time.Duration
	retryCount  int
	retryDelay  time.Duration
}

func NewRpcTransport(opt RpcOption) (*RpcTransport, error) {
	c := client.NewClient(opt.Endpoint)
	if c == nil {
		return nil, errors.New("rpc client init failed")
	}
	if opt.CallTimeout <= 0 {
		opt.CallTimeout = 10 * time.Second
	}
	if opt.RetryDelay <= 0 {
		opt.RetryDelay = time.Second
	}
	return &RpcTransport{
		client:      c,
		callTimeout: opt.CallTimeout,
		retryCount:  opt.RetryCount,
		retryDelay:  opt.RetryDelay,
	}, nil
}

// retry 只用于幂等的查询类调用
func retry[T any](ctx context.Context, t *RpcTransport, name string, call func(ctx context.Context) (T, error)) (T, error) {
	var (
		result T
		err    error
	)
	for i := 0; i <= t.retryCount; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return result, ctx.Err()
			case <-time.After(t.retryDelay):
			}
		}

		callCtx, cancel := context.WithTimeout(ctx, t.callTimeout)
		start := time.Now()
		result, err = call(callCtx)
		cancel()
		if err == nil {
			logger.Debugf("[RpcTransport] %s ok, 耗时: %v", name, time.Since(start))
			return result, nil
		}
		logger.Warnf("[RpcTransport] 第 %d 次 %s 失败: %v", i+1, name, err)
	}
	return result, fmt.Errorf("%s failed: %w", name, err)
}

func (t *RpcTransport) GetBalance(ctx context.Context, account types.Pubkey) (uint64, error) {
	return retry(ctx, t, "GetBalance", func(ctx context.Context) (uint64, error) {
		return t.client.GetBalance(ctx, account.String())
	})
}

func (t *RpcTransport) GetLatestBlockhash(ctx context.Context) (types.Hash, error) {
	return retry(ctx, t, "GetLatestBlockhash", func(ctx context.Context) (types.Hash, error) {
		resp, err := t.client.GetLatestBlockhash(ctx)
		if err != nil {
			return types.Hash{}, err
		}
		return types.HashFromBase58(resp.Blockhash)
	})
}

func (t *RpcTransport) GetFeeForMessage(ctx context.Context, message soltypes.Message) (uint64, error) {
	return retry(ctx, t, "GetFeeForMessage", func(ctx context.Context) (uint64, error) {
		fee, err := t.client.GetFeeForMessage(ctx, message)
		if err != nil {
			return 0, err
		}
		if fee == nil {
			// blockhash 已过期时节点返回 null
			return 0, errors.New("fee unavailable, blockhash may have expired")
		}
		return *fee, nil
	})
}

func (t *RpcTransport) GetAccountData(ctx context.Context, account types.Pubkey) ([]byte, error) {
	info, err := retry(ctx, t, "GetAccountInfo", func(ctx context.Context) (client.AccountInfo, error) {
		return t.client.GetAccountInfo(ctx, account.String())
	})
	if err != nil {
		return nil, err
	}
	if info.Owner == (common.PublicKey{}) && info.Lamports == 0 {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, account)
	}
	return info.Data, nil
}

func (t *RpcTransport) RequestAirdrop(ctx context.Context, to types.Pubkey, lamports uint64) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, t.callTimeout)
	defer cancel()
	sig, err := t.client.RequestAirdrop(callCtx, to.String(), lamports)
	if err != nil {
		return "", fmt.Errorf("RequestAirdrop failed: %w", err)
	}
	return sig, nil
}

func (t *RpcTransport) SendTransaction(ctx context.Context, tx soltypes.Transaction) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, t.callTimeout)
	defer cancel()
	sig, err := t.client.SendTransaction(callCtx, tx)
	if err != nil {
		return "", fmt.Errorf("SendTransaction failed: %w", err)
	}
	return sig, nil
}

func (t *RpcTransport) GetSignatureStatus(ctx context.Context, signature string) (*SignatureStatus, error) {
	return retry(ctx, t, "GetSignatureStatus", func(ctx context.Context) (*SignatureStatus, error) {
		status, err := t.client.GetSignatureStatus(ctx, signature)
		if err != nil {
			return nil, err
		}
		if status == nil {
			return nil, nil
		}
		s := &SignatureStatus{
			Slot: status.Slot,
			Err:  status.Err,
		}
		if status.ConfirmationStatus != nil {
			s.Confirmation = string(*status.ConfirmationStatus)
		}
		return s, nil
	})
}
