package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// LoadJSON 读取 JSON 配置。raw 非空时优先（来自 ENV 注入），否则按 path 读文件。
// 严格解码：未知字段视为错误，避免拼写错误被静默忽略。
func LoadJSON(path string, raw []byte) (Config, error) {
	if len(raw) == 0 {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, err
		}
		raw = b
	}
	var c Config
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return Config{}, fmt.Errorf("config json: %w", err)
	}
	return c, nil
}
