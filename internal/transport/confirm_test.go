package transport

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	soltypes "github.com/blocto/solana-go-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// statusTransport 只实现提交与状态查询，其余方法调用会 panic
type statusTransport struct {
	Transport

	sendErr  error
	statuses []*SignatureStatus
	errs     []error
	polls    atomic.Int32
}

func (s *statusTransport) SendTransaction(ctx context.Context, tx soltypes.Transaction) (string, error) {
	if s.sendErr != nil {
		return "", s.sendErr
	}
	return "sig-1", nil
}

func (s *statusTransport) GetSignatureStatus(ctx context.Context, signature string) (*SignatureStatus, error) {
	i := int(s.polls.Add(1)) - 1
	if i < len(s.errs) && s.errs[i] != nil {
		return nil, s.errs[i]
	}
	if i < len(s.statuses) {
		return s.statuses[i], nil
	}
	if len(s.statuses) == 0 {
		return nil, nil
	}
	return s.statuses[len(s.statuses)-1], nil
}

var fastPoll = ConfirmOption{Timeout: time.Second, PollInterval: time.Millisecond}

func TestSendAndConfirm(t *testing.T) {
	tr := &statusTransport{
		statuses: []*SignatureStatus{
			nil,
			{Slot: 1, Confirmation: StatusProcessed},
			nil,
			{Slot: 2, Confirmation: StatusConfirmed},
		},
		errs: []error{nil, nil, errors.New("node hiccup")},
	}

	sig, err := SendAndConfirm(context.Background(), tr, soltypes.Transaction{}, fastPoll)
	require.NoError(t, err)
	assert.Equal(t, "sig-1", sig)
	assert.Equal(t, int32(4), tr.polls.Load())
}

func TestSendAndConfirm_SendError(t *testing.T) {
	sendErr := errors.New("blockhash not found")
	tr := &statusTransport{sendErr: sendErr}

	_, err := SendAndConfirm(context.Background(), tr, soltypes.Transaction{}, fastPoll)
	assert.ErrorIs(t, err, sendErr)
	assert.Equal(t, int32(0), tr.polls.Load())
}

func TestWaitForConfirmation_Failed(t *testing.T) {
	tr := &statusTransport{
		statuses: []*SignatureStatus{{Slot: 3, Confirmation: StatusConfirmed, Err: map[string]any{"InstructionError": []any{0, "Custom"}}}},
	}
	err := WaitForConfirmation(context.Background(), tr, "sig-1", fastPoll)
	assert.ErrorIs(t, err, ErrTransactionFailed)

	var txErr *TxError
	require.ErrorAs(t, err, &txErr)
	assert.Equal(t, "sig-1", txErr.Signature)
	_, ok := txErr.CustomCode()
	assert.False(t, ok)
}

func TestTxErrorCustomCode(t *testing.T) {
	cases := []struct {
		name string
		err  any
		code uint32
		ok   bool
	}{
		{"float", map[string]any{"InstructionError": []any{0.0, map[string]any{"Custom": 6000.0}}}, 6000, true},
		{"number", map[string]any{"InstructionError": []any{0, map[string]any{"Custom": json.Number("6000")}}}, 6000, true},
		{"int", map[string]any{"InstructionError": []any{0, map[string]any{"Custom": 1}}}, 1, true},
		{"builtin", map[string]any{"InstructionError": []any{0, "InvalidAccountData"}}, 0, false},
		{"negative", map[string]any{"InstructionError": []any{0, map[string]any{"Custom": -1.0}}}, 0, false},
		{"other", "AccountInUse", 0, false},
		{"nil", nil, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, ok := (&TxError{Err: tc.err}).CustomCode()
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.code, code)
		})
	}
}

func TestWaitForConfirmation_Timeout(t *testing.T) {
	tr := &statusTransport{
		statuses: []*SignatureStatus{{Slot: 1, Confirmation: StatusProcessed}},
	}
	err := WaitForConfirmation(context.Background(), tr, "sig-1", ConfirmOption{
		Timeout:      20 * time.Millisecond,
		PollInterval: 5 * time.Millisecond,
	})
	assert.ErrorIs(t, err, ErrConfirmTimeout)
}

func TestWaitForConfirmation_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tr := &statusTransport{}
	err := WaitForConfirmation(ctx, tr, "sig-1", fastPoll)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConfirmOptionDefaults(t *testing.T) {
	o := ConfirmOption{}.withDefaults()
	assert.Equal(t, 60*time.Second, o.Timeout)
	assert.Equal(t, 500*time.Millisecond, o.PollInterval)
}
