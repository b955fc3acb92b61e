package syntax

import (
	"errors"
	"fmt"
	"os"
	"sync"

	lua "github.com/yuin/gopher-lua"
)

// ErrRulesClosed is returned when a closed rule set is used.
var ErrRulesClosed = errors.New("syntax: rules closed")

// indentFunc is the global function a rules script must define:
//
//	function indent(depth, offset) ... return level end
const indentFunc = "indent"

// Rules runs user-defined Lua indent rules.
//
// gopher-lua's LState is not goroutine-safe; the mutex serializes all
// access so rules can be shared between the edit path and a config
// reload.
type Rules struct {
	mu     sync.Mutex
	state  *lua.LState
	closed bool
}

// LoadRules reads a Lua rules script from disk.
func LoadRules(path string) (*Rules, error) {
	code, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read indent rules: %w", err)
	}
	return LoadRulesFromString(string(code))
}

// LoadRulesFromString compiles a Lua rules script. The script runs once
// at load time and must leave a global indent function behind. Only the
// base, table, string and math libraries are opened; scripts get no io,
// os or debug access.
func LoadRulesFromString(code string) (*Rules, error) {
	state := lua.NewState(lua.Options{SkipOpenLibs: true})
	lua.OpenBase(state)
	lua.OpenTable(state)
	lua.OpenString(state)
	lua.OpenMath(state)

	if err := state.DoString(code); err != nil {
		state.Close()
		return nil, fmt.Errorf("load indent rules: %w", err)
	}

	if fn := state.GetGlobal(indentFunc); fn.Type() != lua.LTFunction {
		state.Close()
		return nil, fmt.Errorf("indent rules: global %q is %s, want function", indentFunc, fn.Type())
	}

	return &Rules{state: state}, nil
}

// Apply maps a bracket depth at a byte offset to an indentation level.
// Any rule failure falls back to the raw depth; a broken rules script
// degrades indentation, it never blocks an edit.
func (r *Rules) Apply(depth, byteOffset int) int {
	if r == nil {
		return depth
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return depth
	}

	level, err := r.call(depth, byteOffset)
	if err != nil {
		return depth
	}
	return level
}

func (r *Rules) call(depth, byteOffset int) (level int, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("lua panic: %v", rec)
		}
	}()

	r.state.Push(r.state.GetGlobal(indentFunc))
	r.state.Push(lua.LNumber(depth))
	r.state.Push(lua.LNumber(byteOffset))
	if err := r.state.PCall(2, 1, nil); err != nil {
		return 0, err
	}

	ret := r.state.Get(-1)
	r.state.Pop(1)

	n, ok := ret.(lua.LNumber)
	if !ok {
		return 0, fmt.Errorf("indent rules: returned %s, want number", ret.Type())
	}
	level = int(n)
	if level < 0 {
		level = 0
	}
	return level, nil
}

// Close releases the Lua state. Apply on a closed rule set falls back
// to the raw depth.
func (r *Rules) Close() error {
	if r == nil {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrRulesClosed
	}
	r.closed = true
	r.state.Close()
	return nil
}
