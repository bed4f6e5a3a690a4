package input

import (
	"errors"
	"strings"
	"testing"
)

func TestClean(t *testing.T) {
	cases := []struct {
		raw  string
		want string
		ok   bool
	}{
		{raw: "  hello \r\n", want: "hello", ok: true},
		{raw: "", ok: false},
		{raw: " \t ", ok: false},
		{raw: `"quoted"`, want: "quoted", ok: true},
		{raw: `'single'`, want: "single", ok: true},
		{raw: `"mixed'`, want: "mixed", ok: true},
		{raw: `""`, ok: false},
		{raw: `'"'`, want: `"`, ok: true},
		{raw: `"'"`, ok: false},
		{raw: `it's`, want: "it's", ok: true},
		{raw: `say "hi"`, want: `say "hi"`, ok: true},
		{raw: `"a" and "b"`, want: `a" and "b`, ok: true},
	}
	for _, tc := range cases {
		got, ok := Clean(tc.raw)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("Clean(%q): expected (%q, %v), got (%q, %v)", tc.raw, tc.want, tc.ok, got, ok)
		}
	}
}

func TestReaderLinesSkipsBlanks(t *testing.T) {
	r, err := NewReader(strings.NewReader("a\n\n  \n\"\"\nb\r\nc"), "")
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	var nums []int
	var lines []string
	for n, line := range r.Lines() {
		nums = append(nums, n)
		lines = append(lines, line)
	}
	if err := r.Err(); err != nil {
		t.Fatalf("unexpected read error: %v", err)
	}
	if strings.Join(lines, ",") != "a,b,c" {
		t.Fatalf("unexpected lines: %v", lines)
	}
	if len(nums) != 3 || nums[0] != 1 || nums[1] != 5 || nums[2] != 6 {
		t.Fatalf("unexpected line numbers: %v", nums)
	}
}

func TestReaderLinesStopsEarly(t *testing.T) {
	r, err := NewReader(strings.NewReader("a\nb\nc\n"), "utf-8")
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	count := 0
	for range r.Lines() {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Fatalf("expected 2 lines, got %d", count)
	}
}

func TestReaderDecodesLatin1(t *testing.T) {
	r, err := NewReader(strings.NewReader("caf\xe9\n"), "ISO-8859-1")
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	var lines []string
	for _, line := range r.Lines() {
		lines = append(lines, line)
	}
	if len(lines) != 1 || lines[0] != "café" {
		t.Fatalf("unexpected decoded lines: %q", lines)
	}
}

func TestReaderUnknownEncoding(t *testing.T) {
	_, err := NewReader(strings.NewReader(""), "no-such-charset")
	if !errors.Is(err, ErrUnknownEncoding) {
		t.Fatalf("expected ErrUnknownEncoding, got %v", err)
	}
}

func TestFromStrings(t *testing.T) {
	var lines []string
	for _, line := range FromStrings([]string{"x", "", "'y'"}) {
		lines = append(lines, line)
	}
	if strings.Join(lines, ",") != "x,y" {
		t.Fatalf("unexpected lines: %v", lines)
	}
}
