package syntax

import "testing"

func TestParseDepths(t *testing.T) {
	// a{b(c)d}e
	tree := Parse("a{b(c)d}e")

	cases := []struct {
		offset int
		want   int
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{3, 1},
		{4, 2},
		{5, 1},
		{6, 1},
		{7, 0},
		{8, 0},
		{100, 0},
		{-1, 0},
	}
	for _, tc := range cases {
		if got := tree.IndentationLevel(tc.offset); got != tc.want {
			t.Errorf("IndentationLevel(%d) = %d, want %d", tc.offset, got, tc.want)
		}
	}
}

func TestParseIgnoresStringLiterals(t *testing.T) {
	tree := Parse(`x = "{" .. y`)
	for off := 0; off < 12; off++ {
		if got := tree.IndentationLevel(off); got != 0 {
			t.Errorf("bracket inside literal affected depth at %d: %d", off, got)
		}
	}
}

func TestParseEscapedQuote(t *testing.T) {
	// The escaped quote does not close the literal; only the bracket
	// after the literal opens a scope.
	content := `"a\"{"` + "{"
	tree := Parse(content)
	if got := tree.IndentationLevel(len(content)); got != 1 {
		t.Errorf("IndentationLevel = %d, want 1", got)
	}
	if got := tree.IndentationLevel(4); got != 0 {
		t.Errorf("bracket inside literal affected depth: %d", got)
	}
}

func TestParseUnterminatedLiteralEndsAtNewline(t *testing.T) {
	tree := Parse("x = \"oops\n{")
	if got := tree.IndentationLevel(11); got != 1 {
		t.Errorf("IndentationLevel = %d, want 1", got)
	}
}

func TestParseUnbalancedClosersClamp(t *testing.T) {
	tree := Parse(")}]")
	for off := 0; off <= 3; off++ {
		if got := tree.IndentationLevel(off); got != 0 {
			t.Errorf("IndentationLevel(%d) = %d, want 0", off, got)
		}
	}
}

func TestParseIgnoresAngleBrackets(t *testing.T) {
	tree := Parse("a < b > c")
	if tree.MaxDepth() != 0 {
		t.Error("angle brackets should not open scopes")
	}
}

func TestMaxDepth(t *testing.T) {
	if got := Parse("((()))").MaxDepth(); got != 3 {
		t.Errorf("MaxDepth = %d, want 3", got)
	}
	if got := Parse("flat").MaxDepth(); got != 0 {
		t.Errorf("MaxDepth = %d, want 0", got)
	}
}

func TestNilTree(t *testing.T) {
	var tree *Tree
	if tree.IndentationLevel(5) != 0 {
		t.Error("nil tree should report depth 0")
	}
	if tree.MaxDepth() != 0 {
		t.Error("nil tree should report max depth 0")
	}
}
