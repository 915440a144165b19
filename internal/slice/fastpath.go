package slice

import (
	"errors"
	"io"

	"slicut/pkg/contract"
)

// CopyRange 可寻址快路径：仅适用于字节计数 + 已知总长的随机访问源。
// 以 Seek 到末尾取得总长，把两侧边界换算为夹取后的绝对偏移，
// start >= end 则零输出；否则寻址到 start 并整段拷贝 end-start 字节。
// 语义上与字节策略下的 Stream 完全等价（由交叉等价测试钉死），
// 只是绕过了逐字节计数。
func CopyRange(f io.ReadSeeker, w io.Writer, rng contract.Range) error {
	size, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return err
	}
	start := rng.Start.Abs(size)
	end := rng.End.Abs(size)
	if start >= end {
		return nil
	}
	if _, err := f.Seek(start, io.SeekStart); err != nil {
		return err
	}
	if _, err := io.CopyN(w, f, end-start); err != nil {
		// 拷贝期间文件缩短：视同干净的流尽
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}
