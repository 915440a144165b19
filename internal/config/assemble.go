package config

import (
	"encoding/json"
	"fmt"

	"slicut/internal/rangespec"
	"slicut/internal/slice"
	"slicut/pkg/contract"
	"slicut/pkg/registry"
)

// Assemble 把校验后的文本配置装配为运行设置：
// 解析范围文本，并经注册表解析一次计数策略（运行期接口分发）。
func Assemble(c Config) (slice.Settings, error) {
	rng, err := rangespec.Parse(c.Range)
	if err != nil {
		return slice.Settings{}, err
	}
	mode := contract.Mode(c.Mode)
	newCounter, ok := registry.Counter[mode]
	if !ok {
		return slice.Settings{}, fmt.Errorf("unknown counting mode: %q", c.Mode)
	}
	var raw json.RawMessage
	if mode == contract.ModeLine {
		b, err := json.Marshal(struct {
			Delimiter string `json:"delimiter"`
		}{c.Delimiter})
		if err != nil {
			return slice.Settings{}, err
		}
		raw = b
	}
	cnt, err := newCounter(raw)
	if err != nil {
		return slice.Settings{}, fmt.Errorf("counter %q: %w", c.Mode, err)
	}
	return slice.Settings{Range: rng, Counter: cnt, Mode: mode, BufSize: c.BufSize}, nil
}
