package input

import (
	"fmt"
	"io"
	"os"

	"slicut/pkg/contract"
)

// Input: 已打开的输入源（文件或 STDIN）。
// 可寻址性在打开时一次判定：常规文件或块设备可寻址；
// STDIN、FIFO、字符设备一律按流处理。
type Input struct {
	f        *os.File
	name     string
	seekable bool
	stdin    bool
}

// Open 打开输入。path 为空或 "-" 表示 STDIN。
// 目录在任何读取发生前拒绝（包装 ErrIsDirectory）。
func Open(path string) (*Input, error) {
	if path == "" || path == "-" {
		return &Input{f: os.Stdin, name: "stdin", stdin: true}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	mode := st.Mode()
	if mode.IsDir() {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s", contract.ErrIsDirectory, path)
	}
	// 块设备：Device 置位且 CharDevice 未置位
	seekable := mode.IsRegular() ||
		(mode&os.ModeDevice != 0 && mode&os.ModeCharDevice == 0)
	return &Input{f: f, name: path, seekable: seekable}, nil
}

// Reader 返回底层读取端。
func (in *Input) Reader() io.Reader { return in.f }

// Seeker 返回可寻址读取端；第二返回值为 false 表示仅支持流式读取。
func (in *Input) Seeker() (io.ReadSeeker, bool) {
	if !in.seekable {
		return nil, false
	}
	return in.f, true
}

// Name 返回用于日志的输入标识。
func (in *Input) Name() string { return in.name }

// Close 关闭输入。STDIN 不关闭（归调用进程所有）。
func (in *Input) Close() error {
	if in.stdin {
		return nil
	}
	return in.f.Close()
}
