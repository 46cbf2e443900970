package engine

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"yethangul/internal/emitter"
	"yethangul/internal/palette"
	"yethangul/internal/types"
)

// Screen draws the palette after every key press.
type Screen interface {
	Render(emitter.Frame) error
}

type Options struct {
	Palette *palette.Palette
	Section types.Section
	// Output receives every emission in addition to the engine's own buffer.
	Output emitter.Output
	Copier emitter.Copier
	Screen Screen
	Logger *zap.Logger
	// Status is shown until the first key press.
	Status string
}

// Engine runs one palette session: key presses pick glyphs, the composition
// session turns picks into emissions and the outputs apply them.
type Engine struct {
	palette *palette.Palette
	session *emitter.Session
	buffer  *emitter.Buffer
	copier  emitter.Copier
	screen  Screen
	logger  *zap.Logger
	section types.Section
	cursor  int
	status  string
}

func New(opts Options) *Engine {
	p := opts.Palette
	if p == nil {
		p = palette.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	buffer := emitter.NewBuffer()
	var output emitter.Output = buffer
	if opts.Output != nil {
		output = emitter.Multi{buffer, opts.Output}
	}
	return &Engine{
		palette: p,
		session: emitter.NewSession(output),
		buffer:  buffer,
		copier:  opts.Copier,
		screen:  opts.Screen,
		logger:  logger,
		section: opts.Section,
		status:  opts.Status,
	}
}

// Text returns everything inserted so far.
func (e *Engine) Text() string { return e.buffer.Text() }

func (e *Engine) Section() types.Section { return e.section }

// Status is the message shown under the palette after the last key.
func (e *Engine) Status() string { return e.status }

// Run reads keys from src until a quit key, a source error or ctx is done.
func (e *Engine) Run(ctx context.Context, src KeySource) error {
	if err := src.Open(); err != nil {
		return fmt.Errorf("open keyboard: %w", err)
	}
	defer src.Close()

	type result struct {
		ev  KeyEvent
		err error
	}
	events := make(chan result)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev, err := src.Next()
			select {
			case events <- result{ev: ev, err: err}:
			case <-done:
				return
			}
			if err != nil {
				return
			}
		}
	}()

	if err := e.render(); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case res := <-events:
			if res.err != nil {
				return fmt.Errorf("read key: %w", res.err)
			}
			quit, err := e.HandleKey(res.ev)
			if err != nil {
				return err
			}
			if quit {
				e.session.Complete()
				return nil
			}
			if err := e.render(); err != nil {
				return err
			}
		}
	}
}

// HandleKey applies one key press and reports whether the session should end.
func (e *Engine) HandleKey(ev KeyEvent) (bool, error) {
	e.status = ""
	switch ev.Key {
	case KeyQuit:
		return true, nil
	case KeyNextSection:
		e.switchSection(e.section.Next())
	case KeyPrevSection:
		e.switchSection(e.section.Prev())
	case KeyLeft:
		e.moveCursor(-1)
	case KeyRight:
		e.moveCursor(1)
	case KeyPick:
		entry, ok := e.palette.At(e.section, e.cursor)
		if !ok {
			return false, nil
		}
		return false, e.Pick(entry)
	case KeyRune:
		entry, ok := e.palette.Translate(e.section, ev.Rune)
		if !ok {
			e.status = fmt.Sprintf("no glyph on %q in %s", ev.Rune, e.section)
			return false, nil
		}
		e.cursor = indexOf(e.palette.Entries(e.section), entry)
		return false, e.Pick(entry)
	case KeyCommit:
		return false, e.commitSpace()
	case KeyBackspace:
		return false, e.tolerate(e.session.Backspace())
	case KeyCopy:
		return false, e.copyCurrent()
	}
	return false, nil
}

// Pick feeds one palette entry to the composition session, which applies the
// resulting emission to the outputs.
func (e *Engine) Pick(entry palette.Entry) error {
	emission, err := e.session.Pick(entry.Role(), entry.Text)
	e.logger.Debug("pick",
		zap.Stringer("section", entry.Section),
		zap.String("glyph", entry.Text),
		zap.Stringer("repertoire", entry.Repertoire()),
		zap.String("text", emission.Text),
		zap.Bool("replace", emission.ReplaceLast),
		zap.Int("units", emission.ReplaceUnits),
	)
	return e.tolerate(err)
}

// commitSpace closes the pending syllable, which is already on screen, and
// inserts a space.
func (e *Engine) commitSpace() error {
	text, err := e.session.Insert(" ")
	if text != "" {
		e.logger.Debug("complete", zap.String("text", text))
	}
	return e.tolerate(err)
}

func (e *Engine) copyCurrent() error {
	entry, ok := e.palette.At(e.section, e.cursor)
	if !ok {
		return nil
	}
	if e.copier == nil {
		e.status = "clipboard disabled"
		return nil
	}
	if err := e.copier.Copy(entry.Text); err != nil {
		e.logger.Warn("copy failed", zap.Error(err))
		e.status = fmt.Sprintf("copy failed: %v", err)
		return nil
	}
	e.status = fmt.Sprintf("copied %s", entry.Text)
	return nil
}

// tolerate downgrades replace overruns to a warning; the buffer has already
// clamped itself.
func (e *Engine) tolerate(err error) error {
	if errors.Is(err, emitter.ErrReplaceOverrun) {
		e.logger.Warn("replace overrun", zap.Error(err))
		return nil
	}
	return err
}

func (e *Engine) switchSection(section types.Section) {
	e.section = section
	e.cursor = 0
}

func (e *Engine) moveCursor(delta int) {
	n := e.palette.Len(e.section)
	if n == 0 {
		e.cursor = 0
		return
	}
	e.cursor = ((e.cursor+delta)%n + n) % n
}

func (e *Engine) render() error {
	if e.screen == nil {
		return nil
	}
	return e.screen.Render(emitter.Frame{
		Section: e.section,
		Entries: e.palette.Entries(e.section),
		Cursor:  e.cursor,
		Text:    e.buffer.Text(),
		Pending: e.session.Pending(),
		Status:  e.status,
	})
}

func indexOf(entries []palette.Entry, target palette.Entry) int {
	for i, entry := range entries {
		if entry.Text == target.Text {
			return i
		}
	}
	return 0
}
