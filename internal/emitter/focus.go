package emitter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// Target describes the window that currently receives typed text, preferring
// its title over its WM_CLASS.
func (x *X11) Target() (string, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	root := xproto.Setup(x.conn).DefaultScreen(x.conn).Root
	active, err := x.atom("_NET_ACTIVE_WINDOW")
	if err != nil {
		return "", err
	}
	reply, err := xproto.GetProperty(x.conn, false, root, active, xproto.AtomWindow, 0, 1).Reply()
	if err != nil {
		return "", fmt.Errorf("x11: active window: %w", err)
	}
	if reply == nil || reply.ValueLen == 0 || len(reply.Value) < 4 {
		return "", errors.New("x11: no active window")
	}
	win := xproto.Window(xgb.Get32(reply.Value))
	if win == 0 {
		return "", errors.New("x11: no active window")
	}

	for _, name := range []string{"_NET_WM_NAME", "WM_NAME", "WM_CLASS"} {
		atom, err := x.atom(name)
		if err != nil || atom == 0 {
			continue
		}
		prop, err := xproto.GetProperty(x.conn, false, win, atom, xproto.AtomAny, 0, 256).Reply()
		if err != nil || prop == nil {
			continue
		}
		if parts := splitProperty(prop.Value); len(parts) > 0 {
			if name == "WM_CLASS" {
				return parts[len(parts)-1], nil
			}
			return parts[0], nil
		}
	}
	return fmt.Sprintf("window 0x%x", uint32(win)), nil
}

func (x *X11) atom(name string) (xproto.Atom, error) {
	reply, err := xproto.InternAtom(x.conn, true, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, fmt.Errorf("x11: atom %s: %w", name, err)
	}
	return reply.Atom, nil
}

// splitProperty splits a NUL separated string property and drops empty parts.
func splitProperty(raw []byte) []string {
	var out []string
	for _, part := range strings.Split(string(raw), "\x00") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
