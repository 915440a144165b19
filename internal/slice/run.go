package slice

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"slicut/internal/diag"
	"slicut/internal/input"
	"slicut/pkg/contract"
)

// Settings 运行期配置（最小必要）。
type Settings struct {
	Range   contract.Range
	Counter contract.Counter
	Mode    contract.Mode
	// BufSize 为读写缓冲区大小（字节）。<=0 使用 bufio 默认值。
	BufSize int
}

// countingWriter 统计写出字节数（仅用于 finish 日志）。
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// Run 执行一次切片：包缓冲、选路（快路径 / 流式引擎）、冲刷。
// 约束：
// - 全程同步单线程；源与汇各一，严格顺序处理；
// - 字节模式且源可寻址时走 CopyRange，否则走 Stream；
// - 正常完成时冲刷汇；中途 I/O 错误立即返回，已写出字节不回滚。
func Run(ctx context.Context, in *input.Input, out io.Writer, set Settings, logger *diag.Logger) error {
	if set.Counter == nil {
		return fmt.Errorf("sanity: nil counter")
	}
	var t *diag.Timer
	if logger != nil {
		t = logger.Start("slice", "run", in.Name())
	}
	cw := &countingWriter{w: out}
	err := runOnce(ctx, in, cw, set)
	if err != nil {
		if logger != nil {
			logger.Error("slice", string(diag.Classify(err)), "run failed", in.Name())
		}
		return err
	}
	if t != nil {
		t.Finish("run", cw.n)
	}
	return nil
}

func runOnce(ctx context.Context, in *input.Input, out io.Writer, set Settings) error {
	bw := newWriter(out, set.BufSize)
	if set.Mode == contract.ModeByte {
		if f, ok := in.Seeker(); ok {
			if err := CopyRange(f, bw, set.Range); err != nil {
				return err
			}
			return bw.Flush()
		}
	}
	br := newReader(in.Reader(), set.BufSize)
	if err := Stream(ctx, set.Range, set.Counter, br, bw); err != nil {
		return err
	}
	return bw.Flush()
}

func newReader(r io.Reader, size int) *bufio.Reader {
	if size > 0 {
		return bufio.NewReaderSize(r, size)
	}
	return bufio.NewReader(r)
}

func newWriter(w io.Writer, size int) *bufio.Writer {
	if size > 0 {
		return bufio.NewWriterSize(w, size)
	}
	return bufio.NewWriter(w)
}
