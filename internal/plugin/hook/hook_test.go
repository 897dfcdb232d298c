package hook

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRunInOrder(t *testing.T) {
	r := NewRegistry()
	var got []string
	r.AddFunc(BeforeSave, func(args ...any) error {
		got = append(got, "first")
		return nil
	})
	r.AddFunc(BeforeSave, func(args ...any) error {
		got = append(got, "second:"+args[0].(string))
		return nil
	})

	if err := r.Run(BeforeSave, "file.clj"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if diff := cmp.Diff([]string{"first", "second:file.clj"}, got); diff != "" {
		t.Errorf("run order mismatch (-want +got):\n%s", diff)
	}
}

func TestRunJoinsErrors(t *testing.T) {
	r := NewRegistry()
	errA := errors.New("a failed")
	ran := false
	r.AddFunc(AfterOpen, func(...any) error { return errA })
	r.AddFunc(AfterOpen, func(...any) error { ran = true; return nil })

	err := r.Run(AfterOpen)
	if !errors.Is(err, errA) {
		t.Errorf("Run() error = %v, want %v", err, errA)
	}
	if !ran {
		t.Error("a failing hook should not stop later hooks")
	}
}

func TestRunEmpty(t *testing.T) {
	if err := NewRegistry().Run("no-such-hook"); err != nil {
		t.Errorf("Run() on empty list error = %v", err)
	}
}

func TestRemove(t *testing.T) {
	r := NewRegistry()
	calls := 0
	id := r.AddFunc(BeforeQuit, func(...any) error { calls++; return nil })
	r.AddFunc(BeforeQuit, func(...any) error { calls += 10; return nil })

	if !r.Remove(BeforeQuit, id) {
		t.Fatal("Remove() = false, want true")
	}
	if r.Remove(BeforeQuit, id) {
		t.Error("second Remove() should report false")
	}
	_ = r.Run(BeforeQuit)
	if calls != 10 {
		t.Errorf("calls = %d, want 10", calls)
	}
}

type named string

func (n named) Run(...any) error { return nil }

func TestRemoveMatching(t *testing.T) {
	r := NewRegistry()
	r.Add(AfterSave, named("a"))
	r.Add(AfterSave, named("b"))
	r.Add(AfterSave, named("a"))

	n := r.RemoveMatching(AfterSave, func(h Hook) bool { return h == named("a") })
	if n != 2 {
		t.Errorf("RemoveMatching() = %d, want 2", n)
	}
	if r.Count(AfterSave) != 1 {
		t.Errorf("Count() = %d, want 1", r.Count(AfterSave))
	}
}

func TestHookMayModifyRegistry(t *testing.T) {
	r := NewRegistry()
	added := 0
	r.AddFunc(AfterInit, func(...any) error {
		r.AddFunc(AfterInit, func(...any) error { added++; return nil })
		return nil
	})

	_ = r.Run(AfterInit)
	if added != 0 {
		t.Error("hooks added during Run should not run in the same pass")
	}
	_ = r.Run(AfterInit)
	if added != 1 {
		t.Errorf("added = %d, want 1", added)
	}
}

func TestNamesAndClear(t *testing.T) {
	r := NewRegistry()
	r.Add(BeforeSave, named("x"))
	r.Add(AfterInit, named("y"))

	if diff := cmp.Diff([]string{AfterInit, BeforeSave}, r.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
	r.Clear(BeforeSave)
	if diff := cmp.Diff([]string{AfterInit}, r.Names()); diff != "" {
		t.Errorf("Names() after Clear mismatch (-want +got):\n%s", diff)
	}
}
