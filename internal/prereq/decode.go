package prereq

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/near/borsh-go"
)

var (
	ErrUnknownInstruction = errors.New("unknown prereq instruction")
	ErrInvalidPayload     = errors.New("invalid prereq instruction payload")
)

// Decode 解析指令数据，返回指令类型与 github 参数
func Decode(data []byte) (Args, error) {
	// 指令 data 至少应包含 8 字节方法 ID
	if len(data) < DiscriminatorSize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidPayload, len(data))
	}

	kind := Kind(binary.BigEndian.Uint64(data[:DiscriminatorSize]))
	switch kind {
	case KindComplete, KindUpdate:
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownInstruction, kind)
	}

	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: missing length prefix, got %d bytes", ErrInvalidPayload, len(data))
	}
	n := binary.LittleEndian.Uint32(data[DiscriminatorSize:headerSize])
	if uint64(len(data)-headerSize) != uint64(n) {
		return nil, fmt.Errorf("%w: length prefix %d, body %d bytes", ErrInvalidPayload, n, len(data)-headerSize)
	}

	var args githubArgs
	if err := borsh.Deserialize(&args, data[DiscriminatorSize:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	if kind == KindUpdate {
		return UpdateArgs{Github: args.Github}, nil
	}
	return CompleteArgs{Github: args.Github}, nil
}
