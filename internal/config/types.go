package config

// Config: 运行期只读配置（一次解析，运行期不变）。
// JSON 使用 snake_case；未知字段在解析期失败。
// 优先级：CLI > ENV > JSON > 默认值（Merge 由低到高逐层覆盖）。
type Config struct {
	// Range: 范围文本 "start:end"（必填；通常来自位置参数）。
	Range string `json:"range"`
	// Input: 输入路径；空或 "-" 表示 STDIN。
	Input string `json:"input"`
	// Mode: 计数模式（line|byte）。
	Mode string `json:"mode"`
	// Delimiter: 行分隔符，恰 1 字节；仅行模式使用。
	Delimiter string `json:"delimiter"`
	// BufSize: 读写缓冲区大小（字节）。0 表示使用实现默认值。
	BufSize int     `json:"buf_size"`
	Logging Logging `json:"logging"`
}

// Logging: 仅保留日志等级可配置；输出固定走 stderr。
type Logging struct {
	Level string `json:"level"`
}
