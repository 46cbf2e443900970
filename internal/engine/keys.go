package engine

import (
	"github.com/eiannone/keyboard"
)

// Key is the action a key press maps to.
type Key int

const (
	KeyNone Key = iota
	KeyRune
	KeyNextSection
	KeyPrevSection
	KeyLeft
	KeyRight
	KeyPick
	KeyCommit
	KeyBackspace
	KeyCopy
	KeyQuit
)

type KeyEvent struct {
	Key  Key
	Rune rune
}

// KeySource yields key presses one at a time. Next blocks until a key is
// pressed.
type KeySource interface {
	Open() error
	Next() (KeyEvent, error)
	Close() error
}

// Keyboard reads raw-mode key presses from the controlling terminal.
type Keyboard struct{}

var _ KeySource = Keyboard{}

func (Keyboard) Open() error {
	return keyboard.Open()
}

func (Keyboard) Next() (KeyEvent, error) {
	r, key, err := keyboard.GetKey()
	if err != nil {
		return KeyEvent{}, err
	}
	return translateKey(r, key), nil
}

func (Keyboard) Close() error {
	return keyboard.Close()
}

func translateKey(r rune, key keyboard.Key) KeyEvent {
	switch key {
	case keyboard.KeyEsc, keyboard.KeyCtrlC, keyboard.KeyCtrlD:
		return KeyEvent{Key: KeyQuit}
	case keyboard.KeyTab, keyboard.KeyArrowDown:
		return KeyEvent{Key: KeyNextSection}
	case keyboard.KeyArrowUp:
		return KeyEvent{Key: KeyPrevSection}
	case keyboard.KeyArrowLeft:
		return KeyEvent{Key: KeyLeft}
	case keyboard.KeyArrowRight:
		return KeyEvent{Key: KeyRight}
	case keyboard.KeyEnter:
		return KeyEvent{Key: KeyPick}
	case keyboard.KeySpace:
		return KeyEvent{Key: KeyCommit}
	case keyboard.KeyBackspace, keyboard.KeyBackspace2:
		return KeyEvent{Key: KeyBackspace}
	case keyboard.KeyCtrlY:
		return KeyEvent{Key: KeyCopy}
	}
	if r != 0 {
		return KeyEvent{Key: KeyRune, Rune: r}
	}
	return KeyEvent{Key: KeyNone}
}
