package explore

import (
	"testing"

	"github.com/Dicklesworthstone/peek/internal/explore/views"
)

func page(t *testing.T, stackable bool) Page {
	t.Helper()
	return Page{View: views.NewPreview("x", testViewConfig(t)), Stackable: stackable}
}

func TestStackPushPopLaw(t *testing.T) {
	var s Stack
	a, b := page(t, true), page(t, true)
	s.Push(a)

	before := *s.Top()
	s.Push(b)
	popped, ok := s.Pop()
	if !ok {
		t.Fatal("Pop after Push failed")
	}
	if popped != b {
		t.Error("Pop returned a different page than was pushed")
	}
	if *s.Top() != before || s.Len() != 1 {
		t.Error("push;pop did not restore the stack")
	}
}

func TestStackSpawn(t *testing.T) {
	t.Run("onto stackable pushes", func(t *testing.T) {
		var s Stack
		s.Push(page(t, true))
		s.Spawn(page(t, false))
		if s.Len() != 2 {
			t.Errorf("Len() = %d, want 2", s.Len())
		}
	})

	t.Run("onto non-stackable replaces", func(t *testing.T) {
		var s Stack
		s.Push(page(t, false))
		replacement := page(t, true)
		s.Spawn(replacement)
		if s.Len() != 1 {
			t.Errorf("Len() = %d, want 1", s.Len())
		}
		if *s.Top() != replacement {
			t.Error("Spawn did not replace the non-stackable top")
		}
	})

	t.Run("onto empty pushes", func(t *testing.T) {
		var s Stack
		s.Spawn(page(t, true))
		if s.Len() != 1 {
			t.Errorf("Len() = %d, want 1", s.Len())
		}
	})
}

func TestStackPopEmpty(t *testing.T) {
	var s Stack
	if _, ok := s.Pop(); ok {
		t.Error("Pop on empty stack should report false")
	}
	if s.Top() != nil {
		t.Error("Top on empty stack should be nil")
	}
}
