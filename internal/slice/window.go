package slice

// window: 尾部滑动窗口（FIFO 字节队列）。
// 仅服务于末尾锚定边界的流式切片；由单次 Stream 调用独占，结束即废弃。
// 实现为带头指针的切片：push O(1) 摊还、popFront O(1)，
// 头部空间过半时整体前移复用底层数组。
type window struct {
	buf  []byte
	head int
}

func (q *window) push(c byte) {
	if q.head > 0 && q.head*2 >= len(q.buf) {
		n := copy(q.buf, q.buf[q.head:])
		q.buf = q.buf[:n]
		q.head = 0
	}
	q.buf = append(q.buf, c)
}

func (q *window) popFront() (byte, bool) {
	if q.head >= len(q.buf) {
		return 0, false
	}
	c := q.buf[q.head]
	q.head++
	return c, true
}

func (q *window) len() int { return len(q.buf) - q.head }
