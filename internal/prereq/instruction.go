package prereq

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	soltypes "github.com/blocto/solana-go-sdk/types"
	"github.com/near/borsh-go"

	"prereq-sol/internal/consts"
	"prereq-sol/internal/pda"
	"prereq-sol/internal/types"
)

const (
	DiscriminatorSize = 8
	lengthSize        = 4
	headerSize        = DiscriminatorSize + lengthSize
)

var ErrEncodingOverflow = errors.New("argument too long for u32 length prefix")

// 测试中可调小，避免分配 4GB 内存
var maxArgLen uint64 = math.MaxUint32

// Kind 即指令 discriminator 按大端读出的 uint64
type Kind uint64

const (
	KindComplete = Kind(consts.PrereqComplete)
	KindUpdate   = Kind(consts.PrereqUpdate)
)

func (k Kind) String() string {
	switch k {
	case KindComplete:
		return "complete"
	case KindUpdate:
		return "update"
	default:
		return fmt.Sprintf("unknown(%#016x)", uint64(k))
	}
}

// Discriminator 返回 8 字节的指令标识
func (k Kind) Discriminator() [DiscriminatorSize]byte {
	var d [DiscriminatorSize]byte
	binary.BigEndian.PutUint64(d[:], uint64(k))
	return d
}

// Args 是 complete / update 两种指令参数的统一接口
type Args interface {
	Kind() Kind
	GithubBytes() []byte
}

type CompleteArgs struct {
	Github []byte
}

func (a CompleteArgs) Kind() Kind          { return KindComplete }
func (a CompleteArgs) GithubBytes() []byte { return a.Github }

type UpdateArgs struct {
	Github []byte
}

func (a UpdateArgs) Kind() Kind          { return KindUpdate }
func (a UpdateArgs) GithubBytes() []byte { return a.Github }

// githubArgs 与链上 IDL 的参数布局一致：github: bytes（u32 LE 长度 + 原始字节）
type githubArgs struct {
	Github []byte
}

// Encode 构造指令数据：discriminator(8) ++ u32 LE 长度(4) ++ github 原始字节。
// 不校验 github 内容，允许为空。
func Encode(kind Kind, github []byte) ([]byte, error) {
	if uint64(len(github)) > maxArgLen {
		return nil, fmt.Errorf("%w: got %d bytes", ErrEncodingOverflow, len(github))
	}

	body, err := borsh.Serialize(githubArgs{Github: github})
	if err != nil {
		return nil, fmt.Errorf("serialize %s args: %w", kind, err)
	}

	d := kind.Discriminator()
	data := make([]byte, 0, headerSize+len(github))
	data = append(data, d[:]...)
	data = append(data, body...)
	return data, nil
}

func EncodeArgs(args Args) ([]byte, error) {
	return Encode(args.Kind(), args.GithubBytes())
}

// Accounts 返回 complete / update 共用的账户列表，链上程序按位置索引，顺序不可调整：
//
//	#0 signer         (signer, writable)
//	#1 prereq PDA     (writable)
//	#2 system program (readonly)
func Accounts(signer, prereq, system types.Pubkey) []soltypes.AccountMeta {
	return []soltypes.AccountMeta{
		{PubKey: signer.ToCommon(), IsSigner: true, IsWritable: true},
		{PubKey: prereq.ToCommon(), IsSigner: false, IsWritable: true},
		{PubKey: system.ToCommon(), IsSigner: false, IsWritable: false},
	}
}

// NewInstruction 派生 signer 的 prereq PDA，并组装完整的程序指令
func NewInstruction(args Args, signer types.Pubkey) (soltypes.Instruction, error) {
	addr, err := pda.DerivePrereq(signer)
	if err != nil {
		return soltypes.Instruction{}, fmt.Errorf("derive prereq address: %w", err)
	}

	data, err := EncodeArgs(args)
	if err != nil {
		return soltypes.Instruction{}, err
	}

	return soltypes.Instruction{
		ProgramID: consts.PrereqProgram.ToCommon(),
		Accounts:  Accounts(signer, addr.Address, consts.SystemProgram),
		Data:      data,
	}, nil
}
