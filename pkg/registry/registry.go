package registry

import (
	"bytes"
	"encoding/json"

	"slicut/pkg/contract"
	cbytes "slicut/plugins/counter/bytes"
	clines "slicut/plugins/counter/lines"
)

// strictUnmarshal: 使用 DisallowUnknownFields 严格解码，拒绝未知字段。
func strictUnmarshal(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		// 保持零值（默认选项）
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// NewCounter 工厂签名：接收原样 JSON Options。
type NewCounter func(raw json.RawMessage) (contract.Counter, error)

// Counter 计数策略工厂注册表（显式、零反射）。
// 每次运行解析一次，运行期经接口分发，不做逐字节的模式再判定。
var Counter = map[contract.Mode]NewCounter{
	// line: 按行计数（分隔符可配置，默认 '\n'）
	contract.ModeLine: func(raw json.RawMessage) (contract.Counter, error) {
		var opts clines.Options
		if err := strictUnmarshal(raw, &opts); err != nil {
			return nil, err
		}
		return clines.New(&opts)
	},
	// byte: 按字节计数
	contract.ModeByte: func(raw json.RawMessage) (contract.Counter, error) {
		return cbytes.New(raw)
	},
}
