package types

import (
	"fmt"
	"strings"

	"yethangul/pkg/hangul"
)

// Section is one tab of the glyph palette.
type Section int

const (
	SectionInitial Section = iota
	SectionMedial
	SectionFinal
	SectionWords
)

// Sections lists the palette tabs in display order.
var Sections = []Section{SectionInitial, SectionMedial, SectionFinal, SectionWords}

func (s Section) String() string {
	switch s {
	case SectionInitial:
		return "initial"
	case SectionMedial:
		return "medial"
	case SectionFinal:
		return "final"
	case SectionWords:
		return "words"
	default:
		return "unknown"
	}
}

// Title is the Korean heading shown above the section.
func (s Section) Title() string {
	switch s {
	case SectionInitial:
		return "초성"
	case SectionMedial:
		return "중성"
	case SectionFinal:
		return "종성"
	case SectionWords:
		return "단어"
	default:
		return "?"
	}
}

// Role is the slot filled by glyphs of the section. Words have none.
func (s Section) Role() hangul.Role {
	switch s {
	case SectionInitial:
		return hangul.RoleInitial
	case SectionMedial:
		return hangul.RoleMedial
	case SectionFinal:
		return hangul.RoleFinal
	default:
		return hangul.RoleNone
	}
}

// Next cycles forward through Sections.
func (s Section) Next() Section {
	return Sections[(int(s)+1)%len(Sections)]
}

// Prev cycles backward through Sections.
func (s Section) Prev() Section {
	return Sections[(int(s)+len(Sections)-1)%len(Sections)]
}

func ParseSection(name string) (Section, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "initial", "initials", "i", "초성":
		return SectionInitial, nil
	case "medial", "medials", "m", "중성":
		return SectionMedial, nil
	case "final", "finals", "f", "종성":
		return SectionFinal, nil
	case "words", "word", "w", "단어":
		return SectionWords, nil
	default:
		return SectionInitial, fmt.Errorf("unknown section %q", name)
	}
}
