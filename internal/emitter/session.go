package emitter

import (
	"strings"

	"yethangul/pkg/hangul"
	"yethangul/pkg/ime"
)

// Session keeps an Output in step with one CompositionManager. It remembers
// how many units at the end of the output belong to the pending syllable, so
// a slot collision swaps that syllable for the committed text instead of
// writing it a second time.
type Session struct {
	manager *ime.CompositionManager
	out     Output
	// shown is the number of trailing units that display the pending
	// syllable; zero when something else was inserted after it.
	shown int
	// last is the fragment inserted most recently, for role-less picks.
	last string
}

func NewSession(out Output) *Session {
	return &Session{manager: ime.NewCompositionManager(), out: out}
}

// Pick feeds one glyph to the manager and applies the result. The returned
// emission is the manager's own; the output may have been told to remove a
// different number of units.
func (s *Session) Pick(role hangul.Role, glyph string) (ime.Emission, error) {
	before := s.manager.State()
	pending := s.manager.Pending()
	collides := collision(role, before)
	e := s.manager.Add(role, glyph)
	if e.Text == "" && !e.ReplaceLast {
		return e, nil
	}

	applied := ime.Emission{Text: e.Text}
	switch {
	case (e.ReplaceLast || collides) && s.shown > 0:
		applied.ReplaceLast = true
		applied.ReplaceUnits = s.shown
	case collides:
		// The committed syllable is on the output already, just not at the end.
		applied.Text = strings.TrimPrefix(e.Text, pending)
	}
	err := s.out.Apply(applied)

	after := s.manager.Pending()
	switch {
	case e.ReplaceLast:
		s.shown = ime.Units(e.Text)
	case collides && after != "" && strings.HasSuffix(e.Text, after):
		s.shown = ime.Units(after)
	case role == hangul.RoleInitial && before.Empty():
		s.shown = ime.Units(e.Text)
	default:
		s.shown = 0
	}
	s.last = e.Text
	return e, err
}

// Combine inserts glyph without a role, merging it into the last inserted
// fragment when hangul.Combine can. Any pending syllable is completed first.
func (s *Session) Combine(glyph string) (ime.Emission, error) {
	if glyph == "" {
		return ime.Emission{}, nil
	}
	s.manager.Complete()
	s.shown = 0
	text, replace := hangul.Combine(s.last, glyph)
	e := ime.Emission{Text: text, ReplaceLast: replace}
	if replace {
		e.ReplaceUnits = ime.Units(s.last)
	}
	s.last = text
	return e, s.out.Apply(e)
}

// Insert completes the pending syllable, which is already on the output, and
// appends text after it.
func (s *Session) Insert(text string) (string, error) {
	completed := s.manager.Complete()
	s.shown = 0
	s.last = text
	return completed, s.out.Apply(ime.Emission{Text: text})
}

// Backspace drops the pending syllable and removes one unit from the output.
func (s *Session) Backspace() error {
	s.manager.Reset()
	s.shown = 0
	s.last = ""
	return s.out.Backspace(1)
}

// Complete closes the pending syllable without inserting anything.
func (s *Session) Complete() string {
	s.shown = 0
	return s.manager.Complete()
}

func (s *Session) Pending() string {
	return s.manager.Pending()
}

// collision reports whether adding a glyph in role commits the pending
// syllable. The gates mirror CompositionManager: a medial without an initial
// and a final without a medial stand alone instead.
func collision(role hangul.Role, st ime.CompositionState) bool {
	switch role {
	case hangul.RoleInitial:
		return !st.Empty()
	case hangul.RoleMedial:
		return st.Initial != nil && st.Medial != nil
	case hangul.RoleFinal:
		return st.Initial != nil && st.Medial != nil && st.Final != nil
	default:
		return false
	}
}
