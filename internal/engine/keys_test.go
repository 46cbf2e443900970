package engine

import (
	"testing"

	"github.com/eiannone/keyboard"
)

func TestTranslateKey(t *testing.T) {
	cases := []struct {
		name string
		r    rune
		key  keyboard.Key
		want KeyEvent
	}{
		{"esc quits", 0, keyboard.KeyEsc, KeyEvent{Key: KeyQuit}},
		{"ctrl-c quits", 0, keyboard.KeyCtrlC, KeyEvent{Key: KeyQuit}},
		{"ctrl-d quits", 0, keyboard.KeyCtrlD, KeyEvent{Key: KeyQuit}},
		{"tab next section", 0, keyboard.KeyTab, KeyEvent{Key: KeyNextSection}},
		{"down next section", 0, keyboard.KeyArrowDown, KeyEvent{Key: KeyNextSection}},
		{"up previous section", 0, keyboard.KeyArrowUp, KeyEvent{Key: KeyPrevSection}},
		{"left", 0, keyboard.KeyArrowLeft, KeyEvent{Key: KeyLeft}},
		{"right", 0, keyboard.KeyArrowRight, KeyEvent{Key: KeyRight}},
		{"enter picks", 0, keyboard.KeyEnter, KeyEvent{Key: KeyPick}},
		{"space commits", ' ', keyboard.KeySpace, KeyEvent{Key: KeyCommit}},
		{"backspace", 0, keyboard.KeyBackspace, KeyEvent{Key: KeyBackspace}},
		{"delete as backspace", 0, keyboard.KeyBackspace2, KeyEvent{Key: KeyBackspace}},
		{"ctrl-y copies", 0, keyboard.KeyCtrlY, KeyEvent{Key: KeyCopy}},
		{"digit", '1', 0, KeyEvent{Key: KeyRune, Rune: '1'}},
		{"letter", 'Z', 0, KeyEvent{Key: KeyRune, Rune: 'Z'}},
		{"unbound control", 0, keyboard.KeyF1, KeyEvent{Key: KeyNone}},
	}
	for _, tc := range cases {
		if got := translateKey(tc.r, tc.key); got != tc.want {
			t.Fatalf("%s: translateKey(%q, %v) = %+v, want %+v", tc.name, tc.r, tc.key, got, tc.want)
		}
	}
}
