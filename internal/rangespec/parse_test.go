package rangespec

import (
	"errors"
	"testing"

	"slicut/pkg/contract"
)

// TestParseBasic 常见形式
func TestParseBasic(t *testing.T) {
	cases := []struct {
		in   string
		want contract.Range
	}{
		{"1:5", contract.Range{Start: contract.FromStart(1), End: contract.FromStart(5)}},
		{":", contract.Range{Start: contract.FromStart(0), End: contract.FromEnd(0)}},
		{":3", contract.Range{Start: contract.FromStart(0), End: contract.FromStart(3)}},
		{"2:", contract.Range{Start: contract.FromStart(2), End: contract.FromEnd(0)}},
		{"-5:", contract.Range{Start: contract.FromEnd(5), End: contract.FromEnd(0)}},
		{":-2", contract.Range{Start: contract.FromStart(0), End: contract.FromEnd(2)}},
		{"-7:-2", contract.Range{Start: contract.FromEnd(7), End: contract.FromEnd(2)}},
		{"0:0", contract.Range{Start: contract.FromStart(0), End: contract.FromStart(0)}},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		if err != nil {
			t.Fatalf("%q: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("%q: got %+v want %+v", c.in, got, c.want)
		}
	}
}

// TestParseRelativeEnd '+N' 相对末端
func TestParseRelativeEnd(t *testing.T) {
	got, err := Parse("1:+3")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.End != contract.FromStart(4) {
		t.Fatalf("start-anchored: %+v", got.End)
	}
	got, err = Parse("-5:+2")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.End != contract.FromEnd(3) {
		t.Fatalf("end-anchored: %+v", got.End)
	}
	got, err = Parse(":+4")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.End != contract.FromStart(4) {
		t.Fatalf("empty start: %+v", got.End)
	}
}

// TestParseRelativeOverflow '+N' 越出末尾锚定起点的偏移域
func TestParseRelativeOverflow(t *testing.T) {
	_, err := Parse("-2:+5")
	if !errors.Is(err, contract.ErrRangeOverflow) {
		t.Fatalf("expect overflow, got %v", err)
	}
	// 恰好用尽偏移域：合法
	got, err := Parse("-2:+2")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.End != contract.FromEnd(0) {
		t.Fatalf("exact: %+v", got.End)
	}
}

// TestParseInvalid 非法输入
func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"", "1", "a:b", "1:x", "x:2", "1:+x", "1:+-3", "1.5:2"} {
		if _, err := Parse(in); !errors.Is(err, contract.ErrInvalidRange) {
			t.Fatalf("%q: expect invalid range, got %v", in, err)
		}
	}
}
