package palette

import (
	"fmt"
	"strings"

	"yethangul/internal/types"
	"yethangul/pkg/hangul"
)

// Keys binds the first glyphs of every section to a printable key, in order.
const Keys = "1234567890abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

type Entry struct {
	Section types.Section
	Text    string
	// Key is 0 when the section has more glyphs than Keys.
	Key rune
}

// Role is the slot the entry fills when picked.
func (e Entry) Role() hangul.Role {
	return e.Section.Role()
}

// Repertoire classifies the entry for its slot.
func (e Entry) Repertoire() hangul.Repertoire {
	return hangul.Classify(e.Text, e.Role())
}

type Palette struct {
	sections map[types.Section][]Entry
}

func New() *Palette {
	return &Palette{sections: make(map[types.Section][]Entry)}
}

// Default returns the built-in palette of modern and archaic jamo plus a few
// archaic words.
func Default() *Palette {
	p := New()
	for _, glyph := range defaultInitials {
		p.mustAdd(types.SectionInitial, glyph)
	}
	for _, glyph := range defaultMedials {
		p.mustAdd(types.SectionMedial, glyph)
	}
	for _, glyph := range defaultFinals {
		p.mustAdd(types.SectionFinal, glyph)
	}
	for _, word := range defaultWords {
		p.mustAdd(types.SectionWords, word)
	}
	return p
}

func (p *Palette) mustAdd(section types.Section, text string) {
	if err := p.Add(section, text); err != nil {
		panic(err)
	}
}

// Add appends a glyph to section and binds it to the next free key. Glyphs of
// the slot sections must consist of jamo only.
func (p *Palette) Add(section types.Section, text string) error {
	if err := validateGlyph(section, text); err != nil {
		return err
	}
	entries := p.sections[section]
	for _, existing := range entries {
		if existing.Text == text {
			return nil
		}
	}
	entry := Entry{Section: section, Text: text}
	if idx := len(entries); idx < len(Keys) {
		entry.Key = rune(Keys[idx])
	}
	p.sections[section] = append(entries, entry)
	return nil
}

// Clear removes every glyph of section.
func (p *Palette) Clear(section types.Section) {
	delete(p.sections, section)
}

// Entries returns the glyphs of section in display order.
func (p *Palette) Entries(section types.Section) []Entry {
	entries := p.sections[section]
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Len reports how many glyphs section holds.
func (p *Palette) Len(section types.Section) int {
	return len(p.sections[section])
}

// At returns the glyph at index in section.
func (p *Palette) At(section types.Section, index int) (Entry, bool) {
	entries := p.sections[section]
	if index < 0 || index >= len(entries) {
		return Entry{}, false
	}
	return entries[index], true
}

// Translate looks up the glyph bound to key in section.
func (p *Palette) Translate(section types.Section, key rune) (Entry, bool) {
	if p == nil || key == 0 {
		return Entry{}, false
	}
	idx := strings.IndexRune(Keys, key)
	if idx < 0 {
		return Entry{}, false
	}
	return p.At(section, idx)
}

func validateGlyph(section types.Section, text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("palette: empty glyph in %s section", section)
	}
	if section == types.SectionWords {
		return nil
	}
	for _, r := range text {
		if !hangul.IsJamo(r) {
			return fmt.Errorf("palette: %s glyph must be jamo, got %q", section, text)
		}
	}
	return nil
}
