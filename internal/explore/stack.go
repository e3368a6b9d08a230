// Package explore is the pager: a stack of view frames, a command line, and
// the dispatch loop tying them to the terminal.
package explore

import "github.com/Dicklesworthstone/peek/internal/explore/views"

// Page is one entry on the view stack. Stackable pages are preserved when a
// new frame is spawned on top of them; non-stackable pages are replaced.
type Page struct {
	View      views.View
	Stackable bool
}

// Stack holds the visible frame on top of any frames to return to.
type Stack struct {
	pages []Page
}

func (s *Stack) Push(p Page) {
	s.pages = append(s.pages, p)
}

func (s *Stack) Pop() (Page, bool) {
	if len(s.pages) == 0 {
		return Page{}, false
	}
	p := s.pages[len(s.pages)-1]
	s.pages = s.pages[:len(s.pages)-1]
	return p, true
}

func (s *Stack) Top() *Page {
	if len(s.pages) == 0 {
		return nil
	}
	return &s.pages[len(s.pages)-1]
}

// ReplaceTop swaps the visible frame without touching the frames below.
func (s *Stack) ReplaceTop(p Page) {
	if len(s.pages) == 0 {
		s.pages = append(s.pages, p)
		return
	}
	s.pages[len(s.pages)-1] = p
}

func (s *Stack) Len() int { return len(s.pages) }

// Spawn makes p the new top. The previous top stays underneath only if it
// was stackable; otherwise it is dropped.
func (s *Stack) Spawn(p Page) {
	if top := s.Top(); top != nil && !top.Stackable {
		s.ReplaceTop(p)
		return
	}
	s.Push(p)
}
