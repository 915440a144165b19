package contract

import "errors"

// 范围/输入相关最小错误分类。
var (
	// ErrInvalidRange: 范围文本缺少 ':' 分隔符，或任一侧整数解析失败。
	ErrInvalidRange = errors.New("invalid range")
	// ErrRangeOverflow: '+N' 相对末端计算越出非负偏移域（N 大于已解析起点偏移）。
	// 必须显式上报，禁止静默回绕成无关的大偏移。
	ErrRangeOverflow = errors.New("range overflow")
	// ErrIsDirectory: 输入路径指向目录（在任何读取发生前判定）。
	ErrIsDirectory = errors.New("input is a directory")
)
