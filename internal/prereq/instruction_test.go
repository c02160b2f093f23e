package prereq

import (
	"encoding/binary"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prereq-sol/internal/consts"
	"prereq-sol/internal/pda"
	"prereq-sol/internal/types"
)

func TestKindDiscriminator(t *testing.T) {
	assert.Equal(t, [8]byte{0, 77, 224, 147, 136, 25, 88, 76}, KindComplete.Discriminator())
	assert.Equal(t, [8]byte{219, 200, 88, 176, 158, 63, 253, 127}, KindUpdate.Discriminator())
	assert.Equal(t, "complete", KindComplete.String())
	assert.Equal(t, "update", KindUpdate.String())
	assert.Contains(t, Kind(1).String(), "unknown")
}

func TestEncode_UpdateExample(t *testing.T) {
	data, err := Encode(KindUpdate, []byte("danielAsaboro"))
	require.NoError(t, err)

	expected := []byte{219, 200, 88, 176, 158, 63, 253, 127, 13, 0, 0, 0}
	expected = append(expected, "danielAsaboro"...)
	assert.Equal(t, expected, data)
	assert.Len(t, data, 25)
}

func TestEncode_Empty(t *testing.T) {
	data, err := Encode(KindComplete, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 77, 224, 147, 136, 25, 88, 76, 0, 0, 0, 0}, data)

	data, err = Encode(KindComplete, []byte{})
	require.NoError(t, err)
	assert.Len(t, data, 12)
}

func TestEncode_Shape(t *testing.T) {
	inputs := [][]byte{
		[]byte("a"),
		[]byte("danielAsaboro"),
		{0x00, 0xff, 0x10},
		make([]byte, 300),
	}
	for _, g := range inputs {
		complete, err := Encode(KindComplete, g)
		require.NoError(t, err)
		update, err := Encode(KindUpdate, g)
		require.NoError(t, err)

		assert.Len(t, complete, 8+4+len(g))
		assert.Equal(t, uint32(len(g)), binary.LittleEndian.Uint32(complete[8:12]))
		assert.Equal(t, g, complete[12:])

		// 只有 discriminator 不同
		assert.NotEqual(t, complete[:8], update[:8])
		assert.Equal(t, complete[8:], update[8:])
	}
}

func TestEncode_Deterministic(t *testing.T) {
	a, err := Encode(KindComplete, []byte("danielAsaboro"))
	require.NoError(t, err)
	b, err := EncodeArgs(CompleteArgs{Github: []byte("danielAsaboro")})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEncode_Overflow(t *testing.T) {
	maxArgLen = 4
	defer func() {
		maxArgLen = 1<<32 - 1
	}()

	_, err := Encode(KindComplete, []byte("abcd"))
	assert.NoError(t, err)

	data, err := Encode(KindComplete, []byte("abcde"))
	assert.ErrorIs(t, err, ErrEncodingOverflow)
	assert.Nil(t, data)
}

func TestAccounts(t *testing.T) {
	signer := consts.DefaultRecipient
	prereq := types.PubkeyFromBase58("DgY9yP7Z12kSaGvL3uYMeCyjT1uTY4u5byHfCH9HJKAe")

	for _, in := range [][3]types.Pubkey{
		{signer, prereq, consts.SystemProgram},
		{{}, {}, {}},
		{consts.SystemProgram, consts.SystemProgram, signer},
	} {
		metas := Accounts(in[0], in[1], in[2])
		require.Len(t, metas, 3)

		flags := [][2]bool{}
		for i, m := range metas {
			assert.Equal(t, in[i].ToCommon(), m.PubKey)
			flags = append(flags, [2]bool{m.IsSigner, m.IsWritable})
		}
		assert.Equal(t, [][2]bool{{true, true}, {false, true}, {false, false}}, flags)
	}
}

func TestNewInstruction(t *testing.T) {
	signer := consts.DefaultRecipient

	ix, err := NewInstruction(UpdateArgs{Github: []byte("danielAsaboro")}, signer)
	require.NoError(t, err)

	assert.Equal(t, consts.PrereqProgram.ToCommon(), ix.ProgramID)
	require.Len(t, ix.Accounts, 3)
	assert.Equal(t, signer.ToCommon(), ix.Accounts[0].PubKey)
	assert.Equal(t, "DgY9yP7Z12kSaGvL3uYMeCyjT1uTY4u5byHfCH9HJKAe", ix.Accounts[1].PubKey.ToBase58())
	assert.Equal(t, consts.SystemProgram.ToCommon(), ix.Accounts[2].PubKey)

	expected, err := Encode(KindUpdate, []byte("danielAsaboro"))
	require.NoError(t, err)
	assert.Equal(t, expected, ix.Data)

	addr, err := pda.DerivePrereq(signer)
	require.NoError(t, err)
	assert.Equal(t, addr.Address.ToCommon(), ix.Accounts[1].PubKey)
}

func TestEncodeDecode_Concurrent(t *testing.T) {
	github := []byte("danielAsaboro")
	want, err := Encode(KindComplete, github)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			data, err := Encode(KindComplete, github)
			assert.NoError(t, err)
			assert.Equal(t, want, data)

			args, err := Decode(data)
			if assert.NoError(t, err) {
				assert.Equal(t, github, args.GithubBytes())
			}
		}()
	}
	wg.Wait()
}
