package wallet

import (
	"bytes"
	"crypto/ed25519"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	soltypes "github.com/blocto/solana-go-sdk/types"
	"github.com/zeromicro/go-zero/core/jsonx"

	"prereq-sol/internal/types"
)

var (
	ErrWalletExists  = errors.New("wallet file already exists")
	ErrInvalidWallet = errors.New("invalid wallet")
)

// NewKeypair 生成新的 ed25519 密钥对
func NewKeypair() soltypes.Account {
	return soltypes.NewAccount()
}

func Pubkey(account soltypes.Account) types.Pubkey {
	return types.PubkeyFromCommon(account.PublicKey)
}

// FromBytes 从 64 字节私钥（seed ++ pubkey）恢复账户，并校验后 32 字节与派生出的公钥一致
func FromBytes(key []byte) (soltypes.Account, error) {
	if len(key) != ed25519.PrivateKeySize {
		return soltypes.Account{}, fmt.Errorf("%w: key length %d, want %d", ErrInvalidWallet, len(key), ed25519.PrivateKeySize)
	}
	account, err := soltypes.AccountFromBytes(key)
	if err != nil {
		return soltypes.Account{}, fmt.Errorf("%w: %v", ErrInvalidWallet, err)
	}

	derived := ed25519.NewKeyFromSeed(key[:ed25519.SeedSize])
	if !bytes.Equal(derived[ed25519.SeedSize:], key[ed25519.SeedSize:]) {
		return soltypes.Account{}, fmt.Errorf("%w: public key does not match secret", ErrInvalidWallet)
	}
	return account, nil
}

// Save 以 Solana CLI 的格式（64 个数字组成的 JSON 数组）写入钱包文件。
// 文件已存在且 overwrite=false 时返回 ErrWalletExists。
func Save(path string, account soltypes.Account, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrWalletExists, path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("stat wallet file %s: %w", path, err)
		}
	}

	// []byte 会被编码成 base64 字符串，这里转成数字数组
	numbers := make([]int, len(account.PrivateKey))
	for i, b := range account.PrivateKey {
		numbers[i] = int(b)
	}
	data, err := jsonx.Marshal(numbers)
	if err != nil {
		return fmt.Errorf("marshal wallet: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create wallet dir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write wallet file %s: %w", path, err)
	}
	return nil
}

// Load 读取 JSON 数组格式的钱包文件
func Load(path string) (soltypes.Account, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return soltypes.Account{}, fmt.Errorf("read wallet file %s: %w", path, err)
	}

	var numbers []int
	if err := jsonx.Unmarshal(data, &numbers); err != nil {
		return soltypes.Account{}, fmt.Errorf("%w: parse %s: %v", ErrInvalidWallet, path, err)
	}
	key, err := toBytes(numbers)
	if err != nil {
		return soltypes.Account{}, err
	}
	return FromBytes(key)
}

func toBytes(numbers []int) ([]byte, error) {
	key := make([]byte, len(numbers))
	for i, n := range numbers {
		if n < 0 || n > 255 {
			return nil, fmt.Errorf("%w: byte #%d out of range: %d", ErrInvalidWallet, i, n)
		}
		key[i] = byte(n)
	}
	return key, nil
}
