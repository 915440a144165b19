package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"slicut/pkg/contract"
)

// TestDefaults 默认值
func TestDefaults(t *testing.T) {
	c := Defaults()
	if c.Mode != "line" || c.Delimiter != "\n" || c.BufSize != 64*1024 || c.Logging.Level != "error" {
		t.Fatalf("unexpected defaults %+v", c)
	}
}

// TestMerge 逐字段覆盖，零值不覆盖
func TestMerge(t *testing.T) {
	base := Defaults()
	got := Merge(base, Config{Mode: "byte", Range: "1:2"})
	if got.Mode != "byte" || got.Range != "1:2" {
		t.Fatalf("override missing %+v", got)
	}
	if got.Delimiter != "\n" || got.BufSize != base.BufSize {
		t.Fatalf("zero fields must not override %+v", got)
	}
}

// TestEnvOverlay SLICUT_ 前缀环境覆盖
func TestEnvOverlay(t *testing.T) {
	over, err := EnvOverlay([]string{"SLICUT_MODE=byte", "SLICUT_BUF_SIZE=128", "SLICUT_LOG_LEVEL=debug", "PATH=/bin", "SLICUT_DELIM=;"})
	if err != nil {
		t.Fatalf("overlay: %v", err)
	}
	if over.Mode != "byte" || over.BufSize != 128 || over.Logging.Level != "debug" || over.Delimiter != ";" {
		t.Fatalf("unexpected overlay %+v", over)
	}
	if _, err := EnvOverlay([]string{"SLICUT_BUF_SIZE=xx"}); err == nil {
		t.Fatalf("expect buf size error")
	}
}

// TestValidate 校验规则
func TestValidate(t *testing.T) {
	ok := Merge(Defaults(), Config{Range: "1:2"})
	if err := Validate(ok); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
	if err := Validate(Defaults()); !errors.Is(err, contract.ErrInvalidRange) {
		t.Fatalf("missing range: %v", err)
	}
	bad := ok
	bad.Mode = "rune"
	if err := Validate(bad); err == nil {
		t.Fatalf("expect mode error")
	}
	bad = ok
	bad.Delimiter = "ab"
	if err := Validate(bad); err == nil {
		t.Fatalf("expect delimiter error")
	}
	bad = ok
	bad.BufSize = -1
	if err := Validate(bad); err == nil {
		t.Fatalf("expect buf size error")
	}
}

// TestLoadJSON 文件与内联 JSON；未知字段拒绝
func TestLoadJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "c.json")
	if err := os.WriteFile(p, []byte(`{"mode":"byte","buf_size":8}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	c, err := LoadJSON(p, nil)
	if err != nil || c.Mode != "byte" || c.BufSize != 8 {
		t.Fatalf("load file: %+v %v", c, err)
	}
	c, err = LoadJSON("", []byte(`{"delimiter":";"}`))
	if err != nil || c.Delimiter != ";" {
		t.Fatalf("load raw: %+v %v", c, err)
	}
	if _, err := LoadJSON("", []byte(`{"sep":";"}`)); err == nil {
		t.Fatalf("expect unknown field error")
	}
	if _, err := LoadJSON(filepath.Join(t.TempDir(), "nope.json"), nil); err == nil {
		t.Fatalf("expect read error")
	}
}

// TestAssemble 装配：范围解析 + 注册表计数策略
func TestAssemble(t *testing.T) {
	cfg := Merge(Defaults(), Config{Range: "-2:", Mode: "line", Delimiter: ";"})
	set, err := Assemble(cfg)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if set.Range.Start != contract.FromEnd(2) || set.Range.End != contract.FromEnd(0) {
		t.Fatalf("range %+v", set.Range)
	}
	if set.Counter.Count(';') != 1 || set.Counter.Count('\n') != 0 {
		t.Fatalf("delimiter not applied")
	}
	if set.Mode != contract.ModeLine || set.BufSize != 64*1024 {
		t.Fatalf("settings %+v", set)
	}
}

// TestAssembleErrors 非法范围与未知模式
func TestAssembleErrors(t *testing.T) {
	cfg := Merge(Defaults(), Config{Range: "xx"})
	if _, err := Assemble(cfg); !errors.Is(err, contract.ErrInvalidRange) {
		t.Fatalf("expect invalid range, got %v", err)
	}
	cfg = Merge(Defaults(), Config{Range: "-2:+9"})
	if _, err := Assemble(cfg); !errors.Is(err, contract.ErrRangeOverflow) {
		t.Fatalf("expect overflow, got %v", err)
	}
	cfg = Merge(Defaults(), Config{Range: "1:2", Mode: "rune"})
	if _, err := Assemble(cfg); err == nil {
		t.Fatalf("expect unknown mode")
	}
}
