package pda

import (
	"errors"
	"fmt"
	"math"

	"github.com/blocto/solana-go-sdk/common"

	"prereq-sol/internal/consts"
	"prereq-sol/internal/types"
)

const (
	MaxSeeds      = 16
	MaxSeedLength = 32
)

var (
	ErrInvalidSeed = errors.New("invalid seed")

	// 256 个 bump 全部落在曲线上，概率上可以忽略
	ErrNoViableBump = errors.New("unable to find a viable program address bump")
)

// ProgramAddress 表示程序派生地址（PDA）及其 bump
type ProgramAddress struct {
	Address types.Pubkey
	Bump    uint8
}

func validateSeeds(seeds [][]byte, limit int) error {
	if len(seeds) > limit {
		return fmt.Errorf("%w: too many seeds: got %d, max %d", ErrInvalidSeed, len(seeds), limit)
	}
	for i, s := range seeds {
		if len(s) > MaxSeedLength {
			return fmt.Errorf("%w: seed #%d too long: got %d bytes, max %d", ErrInvalidSeed, i, len(s), MaxSeedLength)
		}
	}
	return nil
}

// CreateAddress 直接用给定种子计算候选地址，不做 bump 搜索。
// 候选地址落在 ed25519 曲线上时返回错误。
func CreateAddress(seeds [][]byte, programID types.Pubkey) (types.Pubkey, error) {
	if err := validateSeeds(seeds, MaxSeeds); err != nil {
		return types.Pubkey{}, err
	}
	pk, err := common.CreateProgramAddress(seeds, programID.ToCommon())
	if err != nil {
		return types.Pubkey{}, fmt.Errorf("create program address: %w", err)
	}
	return types.PubkeyFromCommon(pk), nil
}

// Derive 与 Solana SDK 的 find_program_address 行为一致：
// bump 从 255 开始递减，第一个不在曲线上的候选地址即为结果（canonical bump）。
// bump 本身占用一个种子位，因此调用方最多传入 MaxSeeds-1 个种子。
func Derive(seeds [][]byte, programID types.Pubkey) (ProgramAddress, error) {
	if err := validateSeeds(seeds, MaxSeeds-1); err != nil {
		return ProgramAddress{}, err
	}

	// 复制一份，避免 append 写入调用方切片的底层数组
	candidate := make([][]byte, len(seeds), len(seeds)+1)
	copy(candidate, seeds)
	candidate = append(candidate, []byte{0})

	program := programID.ToCommon()
	for bump := math.MaxUint8; bump >= 0; bump-- {
		candidate[len(seeds)] = []byte{byte(bump)}
		pk, err := common.CreateProgramAddress(candidate, program)
		if err != nil {
			// 种子已校验过，这里的失败只可能是候选地址在曲线上
			continue
		}
		return ProgramAddress{Address: types.PubkeyFromCommon(pk), Bump: uint8(bump)}, nil
	}
	return ProgramAddress{}, ErrNoViableBump
}

// DerivePrereq 计算 signer 在 prereq 程序下的报名记录地址，种子为 ["prereq", signer]
func DerivePrereq(signer types.Pubkey) (ProgramAddress, error) {
	return Derive([][]byte{[]byte(consts.PrereqSeed), signer.Bytes()}, consts.PrereqProgram)
}
