package diag

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"slicut/pkg/contract"
)

// Code 是最小错误分类代码。
// 仅用于日志汇总与退出码映射，与错误链本身解耦。
type Code string

const (
	CodeUnknown Code = "unknown"
	CodeRange   Code = "range"
	CodeIO      Code = "io"
	CodeCancel  Code = "cancel"
)

// Classify 将错误归为最小分类。
// 说明：仅依赖哨兵错误与标准库错误类型，不做字符串匹配。
func Classify(err error) Code {
	if err == nil {
		return CodeUnknown
	}
	// 取消/超时优先
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return CodeCancel
	}
	// 范围文本问题
	if errors.Is(err, contract.ErrInvalidRange) || errors.Is(err, contract.ErrRangeOverflow) {
		return CodeRange
	}
	// 输入/读写
	if errors.Is(err, contract.ErrIsDirectory) {
		return CodeIO
	}
	var perr *fs.PathError
	if errors.As(err, &perr) {
		return CodeIO
	}
	if errors.Is(err, os.ErrClosed) || errors.Is(err, fs.ErrPermission) || errors.Is(err, fs.ErrNotExist) {
		return CodeIO
	}
	return CodeUnknown
}
