package emitter

import (
	"errors"

	"yethangul/pkg/ime"
)

// Output represents a host surface that receives composed text. Emissions
// must be applied in the order a single CompositionManager produced them. It
// is satisfied by Buffer and X11 and enables tests to substitute fakes.
type Output interface {
	Apply(ime.Emission) error
	Backspace(count int) error
	Close() error
}

// ErrReplaceOverrun is reported when an emission asks to remove more units
// than the surface holds.
var ErrReplaceOverrun = errors.New("emitter: replace exceeds inserted text")

var (
	_ Output = (*Buffer)(nil)
	_ Output = (*X11)(nil)
	_ Output = Multi(nil)
)

// Multi fans every call out to each output in order and returns the first
// error.
type Multi []Output

func (m Multi) Apply(e ime.Emission) error {
	var first error
	for _, out := range m {
		if err := out.Apply(e); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (m Multi) Backspace(count int) error {
	var first error
	for _, out := range m {
		if err := out.Backspace(count); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (m Multi) Close() error {
	var first error
	for _, out := range m {
		if err := out.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
