package transport

import (
	"encoding/json"
	"fmt"
)

// TxError 表示交易已上链但执行失败，Err 为节点返回的原始错误结构
type TxError struct {
	Signature string
	Err       any
}

func (e *TxError) Error() string {
	return fmt.Sprintf("%v: sig=%s err=%v", ErrTransactionFailed, e.Signature, e.Err)
}

func (e *TxError) Unwrap() error {
	return ErrTransactionFailed
}

// CustomCode 提取程序自定义错误码，形如
// {"InstructionError": [0, {"Custom": 6000}]}
func (e *TxError) CustomCode() (uint32, bool) {
	m, ok := e.Err.(map[string]any)
	if !ok {
		return 0, false
	}
	pair, ok := m["InstructionError"].([]any)
	if !ok || len(pair) != 2 {
		return 0, false
	}
	detail, ok := pair[1].(map[string]any)
	if !ok {
		return 0, false
	}
	return toUint32(detail["Custom"])
}

func toUint32(v any) (uint32, bool) {
	switch n := v.(type) {
	case float64:
		if n < 0 || n > float64(^uint32(0)) || n != float64(uint32(n)) {
			return 0, false
		}
		return uint32(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil || i < 0 || i > int64(^uint32(0)) {
			return 0, false
		}
		return uint32(i), true
	case int:
		if n < 0 || int64(n) > int64(^uint32(0)) {
			return 0, false
		}
		return uint32(n), true
	case uint32:
		return n, true
	case uint64:
		if n > uint64(^uint32(0)) {
			return 0, false
		}
		return uint32(n), true
	}
	return 0, false
}
