package prereq

import "errors"

// 程序自定义错误码（Anchor 从 6000 开始编号）
const ErrCodeInvalidGithubAccount uint32 = 6000

var ErrInvalidGithubAccount = errors.New("invalid github account")

var programErrors = map[uint32]error{
	ErrCodeInvalidGithubAccount: ErrInvalidGithubAccount,
}

// ProgramError 返回错误码对应的错误，未知错误码返回 nil
func ProgramError(code uint32) error {
	return programErrors[code]
}
