package killring

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestYankEmpty(t *testing.T) {
	r := New(3)
	got, ok := r.Yank()
	if ok || got != "" {
		t.Errorf("Yank() on empty ring = %q, %v; want \"\", false", got, ok)
	}
}

func TestPushYank(t *testing.T) {
	r := New(3)
	r.Push("one")
	r.Push("two")

	got, ok := r.Yank()
	if !ok || got != "two" {
		t.Errorf("Yank() = %q, %v; want %q, true", got, ok, "two")
	}
	again, _ := r.Yank()
	if again != got {
		t.Errorf("repeated Yank() = %q, want %q", again, got)
	}
}

func TestBounded(t *testing.T) {
	r := New(5)
	for i := 0; i < 50; i++ {
		text := fmt.Sprintf("kill-%d", i)
		r.Push(text)
		if r.Len() > r.Max() {
			t.Fatalf("Len() = %d exceeds Max() = %d", r.Len(), r.Max())
		}
		if got, _ := r.Yank(); got != text {
			t.Fatalf("Yank() = %q, want most recent %q", got, text)
		}
	}
	want := []string{"kill-49", "kill-48", "kill-47", "kill-46", "kill-45"}
	if diff := cmp.Diff(want, r.Entries()); diff != "" {
		t.Errorf("Entries() mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultMax(t *testing.T) {
	if got := New(0).Max(); got != DefaultMax {
		t.Errorf("New(0).Max() = %d, want %d", got, DefaultMax)
	}
	if got := New(-4).Max(); got != DefaultMax {
		t.Errorf("New(-4).Max() = %d, want %d", got, DefaultMax)
	}
}

func TestSetMaxShrinks(t *testing.T) {
	r := New(10)
	for _, s := range []string{"a", "b", "c", "d"} {
		r.Push(s)
	}
	r.SetMax(2)
	if diff := cmp.Diff([]string{"d", "c"}, r.Entries()); diff != "" {
		t.Errorf("Entries() mismatch (-want +got):\n%s", diff)
	}
}
