package wallet

import (
	"fmt"
	"strconv"
	"strings"

	soltypes "github.com/blocto/solana-go-sdk/types"
	"github.com/mr-tron/base58"
	"github.com/zeromicro/go-zero/core/jsonx"
)

// Base58ToWallet 把 base58 私钥（Phantom 等钱包导出格式）转换为字节数组
func Base58ToWallet(s string) ([]byte, error) {
	key, err := base58.Decode(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: decode base58: %v", ErrInvalidWallet, err)
	}
	return key, nil
}

// WalletToBase58 是 Base58ToWallet 的逆操作
func WalletToBase58(key []byte) string {
	return base58.Encode(key)
}

func FromBase58(s string) (soltypes.Account, error) {
	key, err := Base58ToWallet(s)
	if err != nil {
		return soltypes.Account{}, err
	}
	return FromBytes(key)
}

// ParseWalletBytes 解析 "[1, 2, 3]" 形式的字节数组文本，方括号可省略
func ParseWalletBytes(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "[") {
		s = "[" + s + "]"
	}

	var numbers []int
	if err := jsonx.UnmarshalFromString(s, &numbers); err != nil {
		return nil, fmt.Errorf("%w: parse byte array: %v", ErrInvalidWallet, err)
	}
	if len(numbers) == 0 {
		return nil, fmt.Errorf("%w: empty byte array", ErrInvalidWallet)
	}
	return toBytes(numbers)
}

// FormatWalletBytes 输出 "[1, 2, 3]" 形式，可直接粘贴进钱包文件
func FormatWalletBytes(key []byte) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, b := range key {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(int(b)))
	}
	sb.WriteByte(']')
	return sb.String()
}
