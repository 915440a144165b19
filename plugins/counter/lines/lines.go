package lines

import (
	"fmt"

	"slicut/pkg/contract"
)

// Options 为行计数器的可选配置（最小必要）。
type Options struct {
	// Delimiter: 行分隔符，必须恰为 1 个字节。空串表示默认 "\n"。
	// 注意：按字节比较；UTF-8 下与 '\n' 比较是安全的。
	Delimiter string `json:"delimiter"`
}

// Counter 实现按行计数：字节等于分隔符时记 1 个单位，否则 0。
// 行的范围贯穿至（并包含）其结尾分隔符；末行无分隔符时不计。
type Counter struct {
	delim byte
}

// New 创建行计数器。
func New(opts *Options) (*Counter, error) {
	d := byte('\n')
	if opts != nil && opts.Delimiter != "" {
		if len(opts.Delimiter) != 1 {
			return nil, fmt.Errorf("delimiter must be a single byte: %q", opts.Delimiter)
		}
		d = opts.Delimiter[0]
	}
	return &Counter{delim: d}, nil
}

func (l *Counter) Count(c byte) int {
	if c == l.delim {
		return 1
	}
	return 0
}

var _ contract.Counter = (*Counter)(nil)
