// Package errorx 带错误码的错误类型, 所有前置条件校验失败都以 *Error 返回给调用方
package errorx

import (
	"errors"
	"fmt"

	"longrun/infra/errorx/errCode"
)

type Error struct {
	Code  errCode.Code
	Msg   string
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Msg, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func New(code errCode.Code, msg string) error {
	return &Error{Code: code, Msg: msg}
}

func Newf(code errCode.Code, format string, args ...any) error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// Wrap 保留下层错误, 外层打上错误码
func Wrap(code errCode.Code, err error, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Msg: msg, Cause: err}
}

// CodeOf 取错误链上最外层的错误码, 非 errorx 错误返回 INVALID_VALUE
func CodeOf(err error) errCode.Code {
	if err == nil {
		return errCode.OK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return errCode.INVALID_VALUE
}

func Is(err error, code errCode.Code) bool {
	if err == nil {
		return false
	}
	return CodeOf(err) == code
}
