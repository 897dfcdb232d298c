package lua

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	lua "github.com/yuin/gopher-lua"
)

func TestDoString(t *testing.T) {
	s := NewState()
	defer s.Close()

	if err := s.DoString(`answer = 6 * 7`); err != nil {
		t.Fatalf("DoString() error = %v", err)
	}
	if got := s.GetGlobal("answer"); got != lua.LNumber(42) {
		t.Errorf("answer = %v, want 42", got)
	}
}

func TestDoStringSyntaxError(t *testing.T) {
	s := NewState()
	defer s.Close()

	if err := s.DoString(`this is not lua`); err == nil {
		t.Error("DoString() with bad syntax should fail")
	}
}

func TestSandboxRemovesLoaders(t *testing.T) {
	s := NewState()
	defer s.Close()

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "io", "os"} {
		if v := s.GetGlobal(name); v != lua.LNil {
			t.Errorf("global %s = %v, want nil", name, v)
		}
	}
	for _, name := range []string{"string", "table", "math", "pairs"} {
		if v := s.GetGlobal(name); v == lua.LNil {
			t.Errorf("global %s missing", name)
		}
	}
}

func TestPrintGoesToOutput(t *testing.T) {
	var buf bytes.Buffer
	s := NewState(WithOutput(&buf))
	defer s.Close()

	if err := s.DoString(`print("hello", 1, true)`); err != nil {
		t.Fatalf("DoString() error = %v", err)
	}
	if got := buf.String(); got != "hello\t1\ttrue\n" {
		t.Errorf("output = %q", got)
	}
}

func TestCall(t *testing.T) {
	s := NewState()
	defer s.Close()

	if err := s.DoString(`function add(a, b) return a + b, "done" end`); err != nil {
		t.Fatal(err)
	}
	got, err := s.Call(s.GetGlobal("add"), lua.LNumber(2), lua.LNumber(3))
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	if len(got) != 2 || got[0] != lua.LNumber(5) || got[1] != lua.LString("done") {
		t.Errorf("Call() = %v", got)
	}
	if top := s.L.GetTop(); top != 0 {
		t.Errorf("stack top = %d after call, want 0", top)
	}
}

func TestCallErrors(t *testing.T) {
	s := NewState()
	defer s.Close()

	if _, err := s.Call(lua.LString("nope")); !errors.Is(err, ErrNotFunction) {
		t.Errorf("Call(string) error = %v, want ErrNotFunction", err)
	}

	if err := s.DoString(`function boom() error("kaboom") end`); err != nil {
		t.Fatal(err)
	}
	_, err := s.Call(s.GetGlobal("boom"))
	if err == nil || !strings.Contains(err.Error(), "kaboom") {
		t.Errorf("Call(boom) error = %v", err)
	}
	if top := s.L.GetTop(); top != 0 {
		t.Errorf("stack top = %d after failed call, want 0", top)
	}
}

func TestNestedCall(t *testing.T) {
	s := NewState()
	defer s.Close()

	var inner lua.LValue
	s.SetGlobal("callback", s.L.NewFunction(func(L *lua.LState) int {
		res, err := s.Call(inner)
		if err != nil {
			L.RaiseError("%v", err)
		}
		L.Push(res[0])
		return 1
	}))
	if err := s.DoString(`function inner() return "deep" end
function outer() return callback() end`); err != nil {
		t.Fatal(err)
	}
	inner = s.GetGlobal("inner")

	got, err := s.Call(s.GetGlobal("outer"))
	if err != nil {
		t.Fatalf("Call(outer) error = %v", err)
	}
	if got[0] != lua.LString("deep") {
		t.Errorf("Call(outer) = %v", got)
	}
}

func TestExecutionTimeout(t *testing.T) {
	s := NewState(WithExecutionTimeout(50 * time.Millisecond))
	defer s.Close()

	if err := s.DoString(`while true do end`); err == nil {
		t.Error("infinite loop should be stopped by the timeout")
	}
	if err := s.DoString(`x = 1`); err != nil {
		t.Errorf("state unusable after timeout: %v", err)
	}
}

func TestDoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "init.lua")
	if err := os.WriteFile(path, []byte(`loaded = "yes"`), 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewState()
	defer s.Close()

	if err := s.DoFile(path); err != nil {
		t.Fatalf("DoFile() error = %v", err)
	}
	if got := s.GetGlobal("loaded"); got != lua.LString("yes") {
		t.Errorf("loaded = %v", got)
	}
}

func TestRegisterModule(t *testing.T) {
	s := NewState()
	defer s.Close()

	s.RegisterModule("util", map[string]lua.LGFunction{
		"double": func(L *lua.LState) int {
			L.Push(L.CheckNumber(1) * 2)
			return 1
		},
	})
	if err := s.DoString(`result = util.double(21)`); err != nil {
		t.Fatal(err)
	}
	if got := s.GetGlobal("result"); got != lua.LNumber(42) {
		t.Errorf("result = %v", got)
	}
}

func TestClosedState(t *testing.T) {
	s := NewState()
	_ = s.Close()
	if !s.IsClosed() {
		t.Error("IsClosed() = false after Close")
	}
	if err := s.DoString(`x = 1`); !errors.Is(err, ErrStateClosed) {
		t.Errorf("DoString() error = %v, want ErrStateClosed", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}
