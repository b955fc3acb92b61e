package textobject

import "testing"

func TestDetectLineBreakLF(t *testing.T) {
	if DetectLineBreak("hello\n") != LineBreakLF {
		t.Error("expected LF for a \\n-terminated first line")
	}
	if DetectLineBreak("no terminator") != LineBreakLF {
		t.Error("expected LF fallback when no terminator is present")
	}
	if DetectLineBreak("") != LineBreakLF {
		t.Error("expected LF fallback for empty content")
	}
}

func TestDetectLineBreakCRLF(t *testing.T) {
	if DetectLineBreak("hello\r\n") != LineBreakCRLF {
		t.Error("expected CRLF for a \\r\\n-terminated first line")
	}
}

func TestLineBreakSequence(t *testing.T) {
	if LineBreakLF.Sequence() != "\n" || LineBreakLF.Len() != 1 {
		t.Error("LF sequence should be a single \\n")
	}
	if LineBreakCRLF.Sequence() != "\r\n" || LineBreakCRLF.Len() != 2 {
		t.Error("CRLF sequence should be \\r\\n")
	}
}

func TestLineBreakString(t *testing.T) {
	if LineBreakLF.String() != "\\n" {
		t.Errorf("LF String() = %q", LineBreakLF.String())
	}
	if LineBreakCRLF.String() != "\\r\\n" {
		t.Errorf("CRLF String() = %q", LineBreakCRLF.String())
	}
}
