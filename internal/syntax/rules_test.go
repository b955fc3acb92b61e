package syntax

import "testing"

func TestLoadRulesFromString(t *testing.T) {
	rules, err := LoadRulesFromString(`function indent(depth, offset) return depth * 2 end`)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	defer rules.Close()

	if got := rules.Apply(2, 0); got != 4 {
		t.Errorf("Apply(2, 0) = %d, want 4", got)
	}
	if got := rules.Apply(0, 10); got != 0 {
		t.Errorf("Apply(0, 10) = %d, want 0", got)
	}
}

func TestRulesReceiveOffset(t *testing.T) {
	rules, err := LoadRulesFromString(`function indent(depth, offset) return offset end`)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	defer rules.Close()

	if got := rules.Apply(1, 7); got != 7 {
		t.Errorf("Apply(1, 7) = %d, want 7", got)
	}
}

func TestRulesNegativeResultClamps(t *testing.T) {
	rules, err := LoadRulesFromString(`function indent(depth, offset) return depth - 10 end`)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	defer rules.Close()

	if got := rules.Apply(2, 0); got != 0 {
		t.Errorf("Apply(2, 0) = %d, want 0", got)
	}
}

func TestRulesErrorFallsBackToDepth(t *testing.T) {
	rules, err := LoadRulesFromString(`function indent(depth, offset) error("boom") end`)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	defer rules.Close()

	if got := rules.Apply(3, 0); got != 3 {
		t.Errorf("Apply(3, 0) = %d, want 3", got)
	}
}

func TestRulesNonNumberFallsBackToDepth(t *testing.T) {
	rules, err := LoadRulesFromString(`function indent(depth, offset) return "deep" end`)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	defer rules.Close()

	if got := rules.Apply(3, 0); got != 3 {
		t.Errorf("Apply(3, 0) = %d, want 3", got)
	}
}

func TestLoadRulesMissingFunction(t *testing.T) {
	if _, err := LoadRulesFromString(`x = 1`); err == nil {
		t.Error("expected error for script without indent function")
	}
}

func TestLoadRulesSyntaxError(t *testing.T) {
	if _, err := LoadRulesFromString(`function indent(`); err == nil {
		t.Error("expected error for broken script")
	}
}

func TestRulesClose(t *testing.T) {
	rules, err := LoadRulesFromString(`function indent(depth, offset) return depth end`)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if err := rules.Close(); err != nil {
		t.Errorf("first Close failed: %v", err)
	}
	if got := rules.Apply(2, 0); got != 2 {
		t.Errorf("Apply after Close = %d, want raw depth 2", got)
	}
	if err := rules.Close(); err != ErrRulesClosed {
		t.Errorf("second Close = %v, want ErrRulesClosed", err)
	}
}

func TestNilRules(t *testing.T) {
	var rules *Rules
	if got := rules.Apply(5, 0); got != 5 {
		t.Errorf("nil rules Apply = %d, want 5", got)
	}
	if err := rules.Close(); err != nil {
		t.Errorf("nil rules Close = %v", err)
	}
}

func TestIndenter(t *testing.T) {
	rules, err := LoadRulesFromString(`function indent(depth, offset) return depth * 2 end`)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	defer rules.Close()

	in := NewIndenter(Parse("{a}"), rules)
	if got := in.IndentationLevel(1); got != 2 {
		t.Errorf("IndentationLevel(1) = %d, want 2", got)
	}
}

func TestIndenterZeroParts(t *testing.T) {
	if got := NewIndenter(nil, nil).IndentationLevel(3); got != 0 {
		t.Errorf("IndentationLevel = %d, want 0", got)
	}
	var in *Indenter
	if got := in.IndentationLevel(3); got != 0 {
		t.Errorf("nil indenter = %d, want 0", got)
	}
}

func TestIndenterRetree(t *testing.T) {
	in := NewIndenter(Parse("flat"), nil)
	if got := in.IndentationLevel(2); got != 0 {
		t.Errorf("IndentationLevel = %d, want 0", got)
	}
	in.Retree(Parse("{{x}}"))
	if got := in.IndentationLevel(2); got != 2 {
		t.Errorf("IndentationLevel after Retree = %d, want 2", got)
	}
}
