package bytes

import (
	"encoding/json"

	"slicut/pkg/contract"
)

// Counter 实现按字节计数：每个字节恒为 1 个单位。
type Counter struct{}

// New 创建字节计数器。无可配置项；raw 仅为工厂签名统一而保留。
func New(raw json.RawMessage) (*Counter, error) {
	return &Counter{}, nil
}

func (Counter) Count(c byte) int { return 1 }

var _ contract.Counter = Counter{}
