package diag

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// 级别定义
type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// Logger 为最小结构化日志器：单行 JSON 写 stderr，支持级别过滤。
// STDOUT 是数据通道，日志一律走 stderr；不落盘、不创建目录。
type Logger struct {
	corrID string
	level  Level
	sink   io.Writer
	mu     sync.Mutex
}

// NewLogger 通过配置的 level 初始化；默认输出到 stderr。
func NewLogger(corrID, level string) *Logger {
	return &Logger{corrID: corrID, level: parseLevel(strings.TrimSpace(level)), sink: os.Stderr}
}

// NewLoggerTo 指定输出端（测试用）。
func NewLoggerTo(corrID, level string, sink io.Writer) *Logger {
	return &Logger{corrID: corrID, level: parseLevel(strings.TrimSpace(level)), sink: sink}
}

func parseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return Debug
	case "info":
		return Info
	case "warn":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

// Event 为标准事件结构。
type Event struct {
	Level  string            `json:"level"`
	TS     string            `json:"ts"`
	CorrID string            `json:"corr_id"`
	Comp   string            `json:"comp"`
	Stage  string            `json:"stage"` // start|finish|error
	Code   string            `json:"code,omitempty"`
	DurMS  int64             `json:"dur_ms,omitempty"`
	Count  int64             `json:"count,omitempty"`
	Input  string            `json:"input,omitempty"`
	Msg    string            `json:"msg"`
	KV     map[string]string `json:"kv,omitempty"`
}

// log 以最小开销写出事件，遵循级别过滤。
func (l *Logger) log(lv Level, ev Event) {
	if l == nil || lv < l.level {
		return
	}
	ev.Level = lv.String()
	ev.TS = time.Now().UTC().Format(time.RFC3339Nano)
	ev.CorrID = l.corrID
	b, _ := json.Marshal(ev)
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = l.sink.Write(append(b, '\n'))
}

// Start 记录 start 事件；返回计时器用于 Finish。
func (l *Logger) Start(comp, msg, input string) *Timer {
	l.log(Info, Event{Comp: comp, Stage: "start", Input: input, Msg: msg})
	return &Timer{l: l, comp: comp, input: input, t0: time.Now()}
}

// Error 记录 error 事件。
func (l *Logger) Error(comp, code, msg, input string) {
	l.log(Error, Event{Comp: comp, Stage: "error", Code: code, Input: input, Msg: msg})
}

// DebugKV 输出调试级别事件（仅在 level=debug 时生效）。
func (l *Logger) DebugKV(comp, msg string, kv map[string]string) {
	l.log(Debug, Event{Comp: comp, Stage: "start", Msg: msg, KV: kv})
}

// Timer 用于 start→finish 计时。
type Timer struct {
	l     *Logger
	comp  string
	input string
	t0    time.Time
}

// Finish 记录 finish；count 为写出字节数等可选计数。
func (t *Timer) Finish(msg string, count int64) {
	if t == nil || t.l == nil {
		return
	}
	t.l.log(Info, Event{Comp: t.comp, Stage: "finish", DurMS: time.Since(t.t0).Milliseconds(), Count: count, Input: t.input, Msg: msg})
}
