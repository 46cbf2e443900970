package palette

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"yethangul/internal/types"
	"yethangul/pkg/hangul"
)

func TestDefaultSections(t *testing.T) {
	p := Default()
	for _, section := range types.Sections {
		if p.Len(section) == 0 {
			t.Fatalf("expected glyphs in %s section", section)
		}
	}
	if got := p.Len(types.SectionInitial); got < 19 {
		t.Fatalf("expected at least the 19 modern initials, got %d", got)
	}
	for _, section := range []types.Section{types.SectionInitial, types.SectionMedial, types.SectionFinal} {
		for _, entry := range p.Entries(section) {
			r := []rune(entry.Text)
			if len(r) != 1 || hangul.SlotRole(r[0]) != section.Role() {
				t.Fatalf("glyph %q does not belong to the %s slot", entry.Text, section)
			}
		}
	}
}

func TestDefaultMixesRepertoires(t *testing.T) {
	p := Default()
	first, _ := p.At(types.SectionInitial, 0)
	if first.Repertoire() != hangul.RepertoireBasic {
		t.Fatalf("expected the first initial to be modern, got %v", first.Repertoire())
	}
	last, _ := p.At(types.SectionInitial, p.Len(types.SectionInitial)-1)
	if last.Repertoire() != hangul.RepertoireExtended {
		t.Fatalf("expected the last initial to be archaic, got %v", last.Repertoire())
	}
}

func TestTranslate(t *testing.T) {
	p := Default()
	entry, ok := p.Translate(types.SectionInitial, '1')
	if !ok || entry.Text != "\u1100" || entry.Key != '1' {
		t.Fatalf("unexpected entry for key 1: %#v", entry)
	}
	entry, ok = p.Translate(types.SectionMedial, 'a')
	if !ok || entry.Text != string(rune(0x1161+10)) {
		t.Fatalf("unexpected entry for key a: %#v", entry)
	}
	if entry.Role() != hangul.RoleMedial {
		t.Fatalf("expected medial role, got %v", entry.Role())
	}
	if _, ok := p.Translate(types.SectionWords, 'Z'); ok {
		t.Fatalf("expected no word bound to Z")
	}
	if _, ok := p.Translate(types.SectionInitial, '!'); ok {
		t.Fatalf("expected no glyph for an unbound key")
	}
}

func TestAddRejectsNonJamo(t *testing.T) {
	p := New()
	if err := p.Add(types.SectionInitial, "a"); err == nil {
		t.Fatalf("expected latin letter to be rejected")
	}
	if err := p.Add(types.SectionFinal, ""); err == nil {
		t.Fatalf("expected empty glyph to be rejected")
	}
	if err := p.Add(types.SectionWords, "hello"); err != nil {
		t.Fatalf("words accept any text: %v", err)
	}
}

func TestAddKeepsKeysStable(t *testing.T) {
	p := New()
	for i := 0; i < len(Keys)+2; i++ {
		if err := p.Add(types.SectionWords, strings.Repeat("x", i+1)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if err := p.Add(types.SectionWords, "x"); err != nil {
		t.Fatalf("duplicate add should be ignored: %v", err)
	}
	if got := p.Len(types.SectionWords); got != len(Keys)+2 {
		t.Fatalf("unexpected length %d", got)
	}
	overflow, _ := p.At(types.SectionWords, len(Keys))
	if overflow.Key != 0 {
		t.Fatalf("expected overflow glyph to be unbound, got %q", overflow.Key)
	}
}

func TestLoadOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.yaml")
	content := `sections:
  - name: initial
    glyphs: ["\u1140", "\uA964"]
  - name: words
    replace: true
    glyphs: ["\u1112\u119E\u11AB"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write palette: %v", err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := p.Len(types.SectionInitial); got != Default().Len(types.SectionInitial)+1 {
		t.Fatalf("expected one new initial, got %d", got)
	}
	words := p.Entries(types.SectionWords)
	if len(words) != 1 || words[0].Text != "\u1112\u119E\u11AB" || words[0].Key != '1' {
		t.Fatalf("unexpected words after replace: %#v", words)
	}
}

func TestLoadRejectsUnknownSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.yaml")
	if err := os.WriteFile(path, []byte("sections:\n  - name: tones\n    glyphs: [\"x\"]\n"), 0o644); err != nil {
		t.Fatalf("write palette: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected an error for an unknown section")
	}
}

func TestDescribe(t *testing.T) {
	got := Describe("\u1140\u119E")
	want := "HANGUL CHOSEONG PANSIOS + HANGUL JUNGSEONG ARAEA"
	if got != want {
		t.Fatalf("Describe = %q, want %q", got, want)
	}
	if got := CodePoints("가\u11EB"); got != "U+AC00 U+11EB" {
		t.Fatalf("CodePoints = %q", got)
	}
}
