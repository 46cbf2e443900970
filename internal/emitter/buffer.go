package emitter

import (
	"yethangul/pkg/ime"
)

// Buffer is an in-memory text surface counted in display units.
type Buffer struct {
	text []rune
}

func NewBuffer() *Buffer {
	return &Buffer{text: make([]rune, 0, 64)}
}

// Apply removes the replaced units, if any, and appends the emission text. An
// overrun clears the buffer, still appends the text and returns
// ErrReplaceOverrun.
func (b *Buffer) Apply(e ime.Emission) error {
	var err error
	if e.ReplaceLast && e.ReplaceUnits > 0 {
		err = b.Backspace(e.ReplaceUnits)
	}
	b.text = append(b.text, []rune(e.Text)...)
	return err
}

// Backspace removes count units from the end.
func (b *Buffer) Backspace(count int) error {
	if count <= 0 {
		return nil
	}
	if count > len(b.text) {
		b.text = b.text[:0]
		return ErrReplaceOverrun
	}
	b.text = b.text[:len(b.text)-count]
	return nil
}

func (b *Buffer) Text() string {
	return string(b.text)
}

func (b *Buffer) Units() int {
	return len(b.text)
}

func (b *Buffer) Reset() {
	b.text = b.text[:0]
}

func (b *Buffer) Close() error {
	return nil
}
