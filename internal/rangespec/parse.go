package rangespec

import (
	"fmt"
	"strconv"
	"strings"

	"slicut/pkg/contract"
)

// Parse 将范围文本 "start:end" 解析为 Range。
// 规则：
// - 必须恰含一个 ':' 分隔（按首个 ':' 切分）；缺失则为格式错误；
// - 起点为空 → FromStart(0)；否则按带符号整数解析，负数映射为 FromEnd(-v)；
// - 末端为空 → FromEnd(0)（直至流末尾）；
// - 末端以 '+' 开头 → 相对已解析起点的定长窗口：
//   FromStart(m) → FromStart(m+N)；FromEnd(m) → FromEnd(m-N)，
//   其中 N > m 越出非负偏移域，判为 ErrRangeOverflow，不得静默回绕；
// - 其余情况按与起点相同的符号规则解析。
func Parse(s string) (contract.Range, error) {
	sp, ep, ok := strings.Cut(s, ":")
	if !ok {
		return contract.Range{}, fmt.Errorf("%w: missing ':' in %q", contract.ErrInvalidRange, s)
	}

	start := contract.FromStart(0)
	if sp != "" {
		b, err := parseSigned(sp)
		if err != nil {
			return contract.Range{}, fmt.Errorf("%w: start %q", contract.ErrInvalidRange, sp)
		}
		start = b
	}

	var end contract.Boundary
	switch {
	case ep == "":
		end = contract.FromEnd(0)
	case strings.HasPrefix(ep, "+"):
		n, err := strconv.ParseInt(ep[1:], 10, 64)
		if err != nil || n < 0 {
			return contract.Range{}, fmt.Errorf("%w: end %q", contract.ErrInvalidRange, ep)
		}
		if !start.End {
			end = contract.FromStart(start.Off + n)
			break
		}
		if n > start.Off {
			return contract.Range{}, fmt.Errorf("%w: +%d exceeds start offset %d", contract.ErrRangeOverflow, n, start.Off)
		}
		end = contract.FromEnd(start.Off - n)
	default:
		b, err := parseSigned(ep)
		if err != nil {
			return contract.Range{}, fmt.Errorf("%w: end %q", contract.ErrInvalidRange, ep)
		}
		end = b
	}

	return contract.Range{Start: start, End: end}, nil
}

// parseSigned: 带符号整数 → 方向化边界（非负 → FromStart，负 → FromEnd）。
func parseSigned(s string) (contract.Boundary, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return contract.Boundary{}, err
	}
	if v < 0 {
		return contract.FromEnd(-v), nil
	}
	return contract.FromStart(v), nil
}
