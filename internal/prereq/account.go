package prereq

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/near/borsh-go"

	"prereq-sol/internal/consts"
	"prereq-sol/internal/types"
)

var ErrInvalidAccountData = errors.New("invalid prereq account data")

// PrereqAccount 是链上报名记录（PDA 账户）的数据布局
type PrereqAccount struct {
	Github []byte
	Key    types.Pubkey
}

var prereqAccountDiscriminator = accountDiscriminator(consts.PrereqAccountName)

// Anchor 账户 discriminator：sha256("account:<Name>") 的前 8 字节
func accountDiscriminator(name string) [DiscriminatorSize]byte {
	sum := sha256.Sum256([]byte("account:" + name))
	var d [DiscriminatorSize]byte
	copy(d[:], sum[:DiscriminatorSize])
	return d
}

func DecodePrereqAccount(data []byte) (*PrereqAccount, error) {
	if len(data) < DiscriminatorSize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidAccountData, len(data))
	}
	if !bytes.Equal(data[:DiscriminatorSize], prereqAccountDiscriminator[:]) {
		return nil, fmt.Errorf("%w: discriminator mismatch", ErrInvalidAccountData)
	}

	account := PrereqAccount{}
	if err := borsh.Deserialize(&account, data[DiscriminatorSize:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAccountData, err)
	}
	return &account, nil
}

// EncodePrereqAccount 主要用于测试与本地模拟
func EncodePrereqAccount(account PrereqAccount) ([]byte, error) {
	body, err := borsh.Serialize(account)
	if err != nil {
		return nil, err
	}
	data := make([]byte, 0, DiscriminatorSize+len(body))
	data = append(data, prereqAccountDiscriminator[:]...)
	return append(data, body...), nil
}
