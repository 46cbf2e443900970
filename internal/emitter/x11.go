package emitter

import (
	"fmt"
	"os"
	"sync"
	"unicode/utf8"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgb/xtest"

	"yethangul/pkg/ime"
)

const (
	keysymBackSpace = 0xff08
	keysymTab       = 0xff09
	keysymReturn    = 0xff0d
	// Keysyms for code points outside Latin-1 are the code point with this
	// bit set.
	keysymUnicode = 0x01000000
)

// X11 types emissions into the focused X window through the XTEST extension.
// A spare keycode is remapped to each keysym in turn and restored on Close.
type X11 struct {
	conn     *xgb.Conn
	keycode  byte
	width    int
	original []xproto.Keysym
	mu       sync.Mutex
}

// OpenX11 connects to display, or to $DISPLAY when display is empty.
func OpenX11(display string) (*X11, error) {
	if display == "" {
		display = os.Getenv("DISPLAY")
	}
	if display == "" {
		return nil, fmt.Errorf("x11: DISPLAY not set")
	}
	conn, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("x11: %w", err)
	}
	if err := xtest.Init(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("x11: xtest: %w", err)
	}
	setup := xproto.Setup(conn)
	min := byte(setup.MinKeycode)
	max := byte(setup.MaxKeycode)
	count := int(max - min + 1)
	reply, err := xproto.GetKeyboardMapping(conn, xproto.Keycode(min), byte(count)).Reply()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("x11: keyboard mapping: %w", err)
	}
	width := int(reply.KeysymsPerKeycode)
	if width <= 0 {
		conn.Close()
		return nil, fmt.Errorf("x11: invalid keysyms width")
	}

	chosen := spareKeycode(reply.Keysyms, min, count, width)
	if chosen == 0 {
		chosen = max
	}
	idx := (int(chosen) - int(min)) * width
	original := append([]xproto.Keysym(nil), reply.Keysyms[idx:idx+width]...)
	out := &X11{conn: conn, keycode: chosen, width: width, original: original}
	if err := out.remap(0); err != nil {
		conn.Close()
		return nil, fmt.Errorf("x11: %w", err)
	}
	return out, nil
}

// spareKeycode returns the first keycode with no keysym bound, or 0.
func spareKeycode(keysyms []xproto.Keysym, min byte, count, width int) byte {
	for i := 0; i < count; i++ {
		empty := true
		for _, sym := range keysyms[i*width : (i+1)*width] {
			if sym != 0 {
				empty = false
				break
			}
		}
		if empty {
			return byte(int(min) + i)
		}
	}
	return 0
}

// Apply sends one BackSpace per replaced unit and then types the text.
func (x *X11) Apply(e ime.Emission) error {
	syms, err := emissionKeysyms(e)
	if err != nil {
		return err
	}
	return x.tapAll(syms)
}

func (x *X11) Backspace(count int) error {
	return x.tapAll(backspaceKeysyms(count))
}

func (x *X11) TypeText(text string) error {
	syms, err := textKeysyms(text)
	if err != nil {
		return err
	}
	return x.tapAll(syms)
}

// emissionKeysyms is the key sequence Apply taps for e. Nothing is sent when
// the text is not valid UTF-8.
func emissionKeysyms(e ime.Emission) ([]xproto.Keysym, error) {
	syms, err := textKeysyms(e.Text)
	if err != nil {
		return nil, err
	}
	if !e.ReplaceLast {
		return syms, nil
	}
	return append(backspaceKeysyms(e.ReplaceUnits), syms...), nil
}

func backspaceKeysyms(count int) []xproto.Keysym {
	if count <= 0 {
		return nil
	}
	syms := make([]xproto.Keysym, count)
	for i := range syms {
		syms[i] = keysymBackSpace
	}
	return syms
}

func textKeysyms(text string) ([]xproto.Keysym, error) {
	syms := make([]xproto.Keysym, 0, len(text))
	for len(text) > 0 {
		r, size := utf8.DecodeRuneInString(text)
		if r == utf8.RuneError && size == 1 {
			return nil, fmt.Errorf("x11: invalid utf-8")
		}
		if sym, ok := runeKeysym(r); ok {
			syms = append(syms, sym)
		}
		text = text[size:]
	}
	return syms, nil
}

func runeKeysym(r rune) (xproto.Keysym, bool) {
	switch r {
	case '\r':
		return 0, false
	case '\n':
		return keysymReturn, true
	case '\t':
		return keysymTab, true
	}
	return xproto.Keysym(keysymUnicode | uint32(r)), true
}

func (x *X11) tapAll(syms []xproto.Keysym) error {
	for _, sym := range syms {
		if err := x.tap(sym); err != nil {
			return err
		}
	}
	return nil
}

func (x *X11) tap(sym xproto.Keysym) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	if err := x.remap(sym); err != nil {
		return err
	}
	if err := xtest.FakeInputChecked(x.conn, xproto.KeyPress, x.keycode, 0, xproto.Window(0), 0, 0, 0).Check(); err != nil {
		return err
	}
	if err := xtest.FakeInputChecked(x.conn, xproto.KeyRelease, x.keycode, 0, xproto.Window(0), 0, 0, 0).Check(); err != nil {
		return err
	}
	x.conn.Sync()
	return nil
}

func (x *X11) remap(sym xproto.Keysym) error {
	keysyms := make([]xproto.Keysym, x.width)
	keysyms[0] = sym
	return xproto.ChangeKeyboardMappingChecked(x.conn, 1, xproto.Keycode(x.keycode), byte(x.width), keysyms).Check()
}

// Close restores the borrowed keycode and disconnects.
func (x *X11) Close() error {
	x.mu.Lock()
	defer x.mu.Unlock()
	defer x.conn.Close()
	err := xproto.ChangeKeyboardMappingChecked(x.conn, 1, xproto.Keycode(x.keycode), byte(x.width), x.original).Check()
	x.conn.Sync()
	return err
}
