package ime

import (
	"unicode/utf8"

	"yethangul/pkg/hangul"
)

// CompositionState holds the glyph units of the syllable being assembled.
// A nil slot is empty.
type CompositionState struct {
	Initial *string
	Medial  *string
	Final   *string
}

// Empty reports whether no slot is filled.
func (s CompositionState) Empty() bool {
	return s.Initial == nil && s.Medial == nil && s.Final == nil
}

func (s CompositionState) compose() string {
	return hangul.Compose(deref(s.Initial), deref(s.Medial), deref(s.Final))
}

// Emission is the text a host must insert after one pick. When ReplaceLast is
// set the host first removes ReplaceUnits display units, which is exactly the
// length of the previous emission from the same manager.
type Emission struct {
	Text         string
	ReplaceLast  bool
	ReplaceUnits int
}

// Units returns the display length of text. One unit is one Unicode scalar
// value, so a precomposed syllable is one unit and an archaic run is as many
// units as it has jamo.
func Units(text string) int {
	return utf8.RuneCountInString(text)
}

// CompositionManager sequences slot picks into syllables. It is not safe for
// concurrent use; keep one per input session.
type CompositionManager struct {
	state     CompositionState
	lastUnits int
}

func NewCompositionManager() *CompositionManager {
	return &CompositionManager{}
}

// AddInitial starts a new syllable with i, committing whatever was pending.
func (m *CompositionManager) AddInitial(i string) Emission {
	if i == "" {
		return Emission{}
	}
	if m.state.Empty() {
		m.state.Initial = strPtr(i)
		return m.emit(i, false)
	}
	committed := m.commit()
	m.state.Initial = strPtr(i)
	return m.emit(committed+i, false)
}

// AddMedial places a vowel. Without an initial the vowel stands alone and the
// pending syllable is untouched. A second vowel commits the syllable and opens
// a new unit holding only that vowel.
func (m *CompositionManager) AddMedial(v string) Emission {
	if v == "" {
		return Emission{}
	}
	if m.state.Initial == nil {
		return m.emit(v, false)
	}
	if m.state.Medial != nil {
		committed := m.commit()
		m.state.Medial = strPtr(v)
		return m.emit(committed+v, false)
	}
	m.state.Medial = strPtr(v)
	return m.emit(m.state.compose(), true)
}

// AddFinal places a trailing consonant once both initial and medial are set.
// A second final commits the syllable and opens a new unit holding only that
// final.
func (m *CompositionManager) AddFinal(f string) Emission {
	if f == "" {
		return Emission{}
	}
	if m.state.Initial == nil || m.state.Medial == nil {
		return m.emit(f, false)
	}
	if m.state.Final != nil {
		committed := m.commit()
		m.state.Final = strPtr(f)
		return m.emit(committed+f, false)
	}
	m.state.Final = strPtr(f)
	return m.emit(m.state.compose(), true)
}

// Add dispatches on role. RoleNone glyphs are emitted as they are and leave
// the pending syllable alone.
func (m *CompositionManager) Add(role hangul.Role, glyph string) Emission {
	switch role {
	case hangul.RoleInitial:
		return m.AddInitial(glyph)
	case hangul.RoleMedial:
		return m.AddMedial(glyph)
	case hangul.RoleFinal:
		return m.AddFinal(glyph)
	default:
		if glyph == "" {
			return Emission{}
		}
		return m.emit(glyph, false)
	}
}

// Complete composes the pending syllable and returns to the empty state.
func (m *CompositionManager) Complete() string {
	text := m.commit()
	m.lastUnits = 0
	return text
}

// Reset drops the pending syllable without producing text.
func (m *CompositionManager) Reset() {
	m.state = CompositionState{}
	m.lastUnits = 0
}

// State returns a copy of the pending slots.
func (m *CompositionManager) State() CompositionState {
	return CompositionState{
		Initial: copyPtr(m.state.Initial),
		Medial:  copyPtr(m.state.Medial),
		Final:   copyPtr(m.state.Final),
	}
}

// Pending returns the composed text of the current state without committing.
func (m *CompositionManager) Pending() string {
	return m.state.compose()
}

func (m *CompositionManager) commit() string {
	text := m.state.compose()
	m.state = CompositionState{}
	return text
}

func (m *CompositionManager) emit(text string, replace bool) Emission {
	e := Emission{Text: text, ReplaceLast: replace}
	if replace {
		e.ReplaceUnits = m.lastUnits
	}
	m.lastUnits = Units(text)
	return e
}

func strPtr(s string) *string {
	return &s
}

func copyPtr(p *string) *string {
	if p == nil {
		return nil
	}
	return strPtr(*p)
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
