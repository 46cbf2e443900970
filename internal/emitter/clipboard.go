package emitter

import (
	"errors"

	"github.com/atotto/clipboard"
)

// Copier places text on a clipboard.
type Copier interface {
	Copy(text string) error
}

// ErrClipboardUnsupported is returned when no clipboard utility is available.
var ErrClipboardUnsupported = errors.New("emitter: clipboard unsupported on this system")

// Clipboard copies to the system clipboard.
type Clipboard struct{}

func (Clipboard) Copy(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}
	return clipboard.WriteAll(text)
}
