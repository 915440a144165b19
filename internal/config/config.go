package config

import (
	"fmt"
	"strconv"
	"strings"

	"slicut/pkg/contract"
)

// Defaults 返回内置默认配置。
func Defaults() Config {
	return Config{
		Mode:      string(contract.ModeLine),
		Delimiter: "\n",
		BufSize:   64 * 1024,
		Logging:   Logging{Level: "error"},
	}
}

// Merge 以 over 的非零字段覆盖 base。
func Merge(base, over Config) Config {
	out := base
	if over.Range != "" {
		out.Range = over.Range
	}
	if over.Input != "" {
		out.Input = over.Input
	}
	if over.Mode != "" {
		out.Mode = over.Mode
	}
	if over.Delimiter != "" {
		out.Delimiter = over.Delimiter
	}
	if over.BufSize > 0 {
		out.BufSize = over.BufSize
	}
	if over.Logging.Level != "" {
		out.Logging.Level = over.Logging.Level
	}
	return out
}

// EnvOverlay 从进程环境构造覆盖层（SLICUT_ 前缀，最小集合）。
// 非法数值在此处失败，不延迟到运行期。
func EnvOverlay(environ []string) (Config, error) {
	var over Config
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || v == "" {
			continue
		}
		switch k {
		case "SLICUT_MODE":
			over.Mode = v
		case "SLICUT_DELIM":
			over.Delimiter = v
		case "SLICUT_BUF_SIZE":
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				return Config{}, fmt.Errorf("SLICUT_BUF_SIZE: invalid value %q", v)
			}
			over.BufSize = n
		case "SLICUT_LOG_LEVEL":
			over.Logging.Level = v
		}
	}
	return over, nil
}

// Validate 对合并后的最终配置做基本校验。
func Validate(c Config) error {
	if strings.TrimSpace(c.Range) == "" {
		return fmt.Errorf("%w: range is required", contract.ErrInvalidRange)
	}
	switch contract.Mode(c.Mode) {
	case contract.ModeLine, contract.ModeByte:
	default:
		return fmt.Errorf("mode must be line or byte: %q", c.Mode)
	}
	if len(c.Delimiter) != 1 {
		return fmt.Errorf("delimiter must be a single byte: %q", c.Delimiter)
	}
	if c.BufSize < 0 {
		return fmt.Errorf("buf_size must be >= 0: %d", c.BufSize)
	}
	return nil
}
