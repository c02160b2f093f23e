package types

import (
	"testing"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPubkeyFromBase58(t *testing.T) {
	p, err := TryPubkeyFromBase58("11111111111111111111111111111111")
	require.NoError(t, err)
	assert.Equal(t, Pubkey{}, p)
	assert.Equal(t, "11111111111111111111111111111111", p.String())

	_, err = TryPubkeyFromBase58("0OIl")
	assert.Error(t, err)

	// 合法 base58，但长度不是 32
	_, err = TryPubkeyFromBase58("2g")
	assert.Error(t, err)

	assert.Panics(t, func() { PubkeyFromBase58("not-a-key") })
}

func TestPubkeyCommonConversion(t *testing.T) {
	const addr = "ADcaide4vBtKuyZQqdU689YqEGZMCmS4tL35bdTv9wJa"
	p := PubkeyFromBase58(addr)

	pk := p.ToCommon()
	assert.Equal(t, addr, pk.ToBase58())
	assert.True(t, PubkeyFromCommon(pk).Equals(p))
	assert.Equal(t, common.PublicKeyFromString(addr), pk)
}

func TestHashFromBase58(t *testing.T) {
	h, err := HashFromBase58("EETubP5AKHgjPAhzPAFcb8BAY1hMH639CWCFTqi3hq1k")
	require.NoError(t, err)
	assert.False(t, h.IsZero())
	assert.Equal(t, "EETubP5AKHgjPAhzPAFcb8BAY1hMH639CWCFTqi3hq1k", h.String())

	_, err = HashFromBase58("abc")
	assert.Error(t, err)
}
