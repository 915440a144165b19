package contract

// Mode: 计数模式名（注册表键）。
type Mode string

const (
	// ModeLine: 按逻辑行计数（行包含其结尾分隔符）。
	ModeLine Mode = "line"
	// ModeByte: 按字节计数。
	ModeByte Mode = "byte"
)

// Boundary: 范围一侧的边界。
// 约束：
// 1) Off 在自身锚点坐标系内恒为非负；
// 2) 方向由 End 标记区分，解析后不再出现负数；
// 3) 单位（字节/行）由调用方的计数策略决定，Boundary 本身不感知。
type Boundary struct {
	// Off: 距锚点的偏移（单位数）。
	Off int64
	// End: true 表示自流末尾回数；false 表示自流起点前数。
	End bool
}

// FromStart 构造起点锚定边界（距流起点 n 单位）。
func FromStart(n int64) Boundary { return Boundary{Off: n} }

// FromEnd 构造末尾锚定边界（距流末尾 n 单位）。
func FromEnd(n int64) Boundary { return Boundary{Off: n, End: true} }

// Abs 在总长 size 已知时换算为绝对偏移，并夹取到 [0, size]。
// 仅对字节计数有意义（快路径使用）。
func (b Boundary) Abs(size int64) int64 {
	abs := b.Off
	if b.End {
		abs = size - b.Off
	}
	if abs < 0 {
		return 0
	}
	if abs > size {
		return size
	}
	return abs
}

// Range: 有序边界对 (Start, End)。
// 构造期不保证 Start 先于 End；空范围在执行期自然产生零输出，不是错误。
type Range struct {
	Start Boundary
	End   Boundary
}
