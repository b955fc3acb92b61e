package rope

import (
	"math/rand"
	"strings"
	"testing"
)

func TestEmptyRope(t *testing.T) {
	r := New()

	if !r.IsEmpty() {
		t.Error("new rope should be empty")
	}
	if r.Len() != 0 {
		t.Errorf("expected length 0, got %d", r.Len())
	}
	if r.LineCount() != 1 {
		t.Errorf("expected 1 line, got %d", r.LineCount())
	}
	if r.String() != "" {
		t.Errorf("expected empty string, got %q", r.String())
	}
}

func TestFromStringRoundTrip(t *testing.T) {
	tests := []string{
		"",
		"hello",
		"line1\nline2\nline3",
		"trailing newline\n",
		"crlf line\r\nnext\r\n",
		"unicode: héllo wörld 世界",
		strings.Repeat("chunk boundary test line\n", 100),
	}

	for _, text := range tests {
		r := FromString(text)
		if r.String() != text {
			t.Errorf("round trip failed for %q", truncate(text))
		}
	}
}

func TestLenCountsScalars(t *testing.T) {
	r := FromString("héllo")
	if r.Len() != 5 {
		t.Errorf("expected 5 scalars, got %d", r.Len())
	}
	if r.ByteLen() != 6 {
		t.Errorf("expected 6 bytes, got %d", r.ByteLen())
	}
}

func TestCharAt(t *testing.T) {
	r := FromString("a世b")

	tests := []struct {
		offset int
		want   rune
		ok     bool
	}{
		{0, 'a', true},
		{1, '世', true},
		{2, 'b', true},
		{3, 0, false},
		{-1, 0, false},
	}

	for _, tt := range tests {
		got, ok := r.CharAt(tt.offset)
		if ok != tt.ok || got != tt.want {
			t.Errorf("CharAt(%d) = %q, %v; want %q, %v", tt.offset, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSlice(t *testing.T) {
	r := FromString("hello 世界 world")

	tests := []struct {
		start, end int
		want       string
	}{
		{0, 5, "hello"},
		{6, 8, "世界"},
		{9, 14, "world"},
		{0, 0, ""},
		{5, 3, ""},
		{9, 100, "world"},
	}

	for _, tt := range tests {
		if got := r.Slice(tt.start, tt.end); got != tt.want {
			t.Errorf("Slice(%d, %d) = %q, want %q", tt.start, tt.end, got, tt.want)
		}
	}
}

func TestInsertIsPersistent(t *testing.T) {
	orig := FromString("hello world")
	ins := orig.Insert(5, ",")

	if orig.String() != "hello world" {
		t.Errorf("original modified: %q", orig.String())
	}
	if ins.String() != "hello, world" {
		t.Errorf("insert result: %q", ins.String())
	}
}

func TestInsertPositions(t *testing.T) {
	tests := []struct {
		name   string
		base   string
		offset int
		text   string
		want   string
	}{
		{"start", "world", 0, "hello ", "hello world"},
		{"middle", "helloworld", 5, " ", "hello world"},
		{"end", "hello", 5, " world", "hello world"},
		{"past end clamps", "hi", 99, "!", "hi!"},
		{"negative clamps", "hi", -5, "!", "!hi"},
		{"into empty", "", 0, "text", "text"},
		{"multibyte", "ab", 1, "世", "a世b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromString(tt.base).Insert(tt.offset, tt.text)
			if got.String() != tt.want {
				t.Errorf("got %q, want %q", got.String(), tt.want)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name       string
		base       string
		start, end int
		want       string
	}{
		{"middle", "hello world", 5, 6, "helloworld"},
		{"prefix", "hello world", 0, 6, "world"},
		{"suffix", "hello world", 5, 11, "hello"},
		{"all", "hello", 0, 5, ""},
		{"empty range", "hello", 3, 3, "hello"},
		{"inverted range", "hello", 4, 2, "hello"},
		{"past end clamps", "hello", 3, 99, "hel"},
		{"start past end", "hello", 99, 100, "hello"},
		{"multibyte", "a世b", 1, 2, "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromString(tt.base).Delete(tt.start, tt.end)
			if got.String() != tt.want {
				t.Errorf("got %q, want %q", got.String(), tt.want)
			}
		})
	}
}

func TestLineToChar(t *testing.T) {
	r := FromString("ab\ncd\n\nefg")

	tests := []struct {
		line int
		want int
	}{
		{0, 0},
		{1, 3},
		{2, 6},
		{3, 7},
		{4, 10}, // past last line: total length
		{-1, 0},
	}

	for _, tt := range tests {
		if got := r.LineToChar(tt.line); got != tt.want {
			t.Errorf("LineToChar(%d) = %d, want %d", tt.line, got, tt.want)
		}
	}
}

func TestLineToByte(t *testing.T) {
	r := FromString("世界\nab")

	if got := r.LineToByte(1); got != 7 {
		t.Errorf("LineToByte(1) = %d, want 7", got)
	}
	if got := r.LineToByte(0); got != 0 {
		t.Errorf("LineToByte(0) = %d, want 0", got)
	}
}

func TestCharToLine(t *testing.T) {
	r := FromString("ab\ncd\n\nefg")

	tests := []struct {
		offset int
		want   int
	}{
		{0, 0},
		{2, 0},
		{3, 1},
		{5, 1},
		{6, 2},
		{7, 3},
		{9, 3},
		{100, 3},
	}

	for _, tt := range tests {
		if got := r.CharToLine(tt.offset); got != tt.want {
			t.Errorf("CharToLine(%d) = %d, want %d", tt.offset, got, tt.want)
		}
	}
}

func TestLine(t *testing.T) {
	r := FromString("ab\ncd\n\nefg")

	tests := []struct {
		line int
		want string
		ok   bool
	}{
		{0, "ab\n", true},
		{1, "cd\n", true},
		{2, "\n", true},
		{3, "efg", true},
		{4, "", false},
		{-1, "", false},
	}

	for _, tt := range tests {
		got, ok := r.Line(tt.line)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Line(%d) = %q, %v; want %q, %v", tt.line, got, ok, tt.want, tt.ok)
		}
	}
}

func TestLineWithTrailingNewline(t *testing.T) {
	r := FromString("ab\n")

	if got, ok := r.Line(1); !ok || got != "" {
		t.Errorf("Line(1) = %q, %v; want empty line", got, ok)
	}
	if r.LineCount() != 2 {
		t.Errorf("LineCount() = %d, want 2", r.LineCount())
	}
}

func TestLargeRopeStructure(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 2000; i++ {
		sb.WriteString("line with some text in it\n")
	}
	text := sb.String()
	r := FromString(text)

	if r.String() != text {
		t.Fatal("large rope round trip failed")
	}
	if r.LineCount() != 2001 {
		t.Errorf("expected 2001 lines, got %d", r.LineCount())
	}
	if got := r.LineToChar(1000); got != 1000*26 {
		t.Errorf("LineToChar(1000) = %d, want %d", got, 1000*26)
	}
}

// TestAgainstNaive cross-checks rope conversions against direct string
// scans on randomized edit sequences.
func TestAgainstNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	pieces := []string{"a", "bc", "\n", "世", "def\ngh", " ", "\r\n"}

	text := ""
	r := New()

	for i := 0; i < 500; i++ {
		if rng.Intn(3) < 2 || len(text) == 0 {
			piece := pieces[rng.Intn(len(pieces))]
			runes := []rune(text)
			at := rng.Intn(len(runes) + 1)
			text = string(runes[:at]) + piece + string(runes[at:])
			r = r.Insert(at, piece)
		} else {
			runes := []rune(text)
			start := rng.Intn(len(runes) + 1)
			end := start + rng.Intn(4)
			if end > len(runes) {
				end = len(runes)
			}
			text = string(runes[:start]) + string(runes[end:])
			r = r.Delete(start, end)
		}
	}

	if r.String() != text {
		t.Fatalf("content diverged after edits")
	}

	runes := []rune(text)
	if r.Len() != len(runes) {
		t.Fatalf("Len() = %d, want %d", r.Len(), len(runes))
	}

	wantLines := strings.Count(text, "\n") + 1
	if r.LineCount() != wantLines {
		t.Fatalf("LineCount() = %d, want %d", r.LineCount(), wantLines)
	}

	for off := 0; off <= len(runes); off += 7 {
		wantLine := strings.Count(string(runes[:off]), "\n")
		if got := r.CharToLine(off); got != wantLine {
			t.Errorf("CharToLine(%d) = %d, want %d", off, got, wantLine)
		}
	}

	for line := 0; line <= wantLines; line++ {
		want := naiveLineToChar(runes, line)
		if got := r.LineToChar(line); got != want {
			t.Errorf("LineToChar(%d) = %d, want %d", line, got, want)
		}
	}
}

func naiveLineToChar(runes []rune, line int) int {
	if line <= 0 {
		return 0
	}
	seen := 0
	for i, r := range runes {
		if r == '\n' {
			seen++
			if seen == line {
				return i + 1
			}
		}
	}
	return len(runes)
}

func truncate(s string) string {
	if len(s) > 40 {
		return s[:40] + "..."
	}
	return s
}
