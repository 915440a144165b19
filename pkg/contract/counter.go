package contract

// Counter: 计数单位策略。
// 约束：
// 1) 纯函数：逐字节求值，无前瞻、无内部状态；
// 2) 返回该字节“完成”的单位数（0 或 1）；
// 3) 位置计数器由调用方（引擎）维护，策略不持有。
type Counter interface {
	Count(c byte) int
}
