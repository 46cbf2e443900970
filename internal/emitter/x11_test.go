package emitter

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yethangul/pkg/ime"
)

func TestEmissionKeysyms(t *testing.T) {
	cases := []struct {
		name string
		e    ime.Emission
		want []xproto.Keysym
	}{
		{
			name: "plain text",
			e:    ime.Emission{Text: "가"},
			want: []xproto.Keysym{0x0100AC00},
		},
		{
			name: "replace removes units first",
			e:    ime.Emission{Text: "간", ReplaceLast: true, ReplaceUnits: 1},
			want: []xproto.Keysym{keysymBackSpace, 0x0100AC04},
		},
		{
			name: "archaic run is one keysym per jamo",
			e:    ime.Emission{Text: "\u1140\u119E\u11AB", ReplaceLast: true, ReplaceUnits: 2},
			want: []xproto.Keysym{keysymBackSpace, keysymBackSpace, 0x01001140, 0x0100119E, 0x010011AB},
		},
		{
			name: "units ignored without replace",
			e:    ime.Emission{Text: "a", ReplaceUnits: 3},
			want: []xproto.Keysym{0x01000061},
		},
		{
			name: "control characters",
			e:    ime.Emission{Text: "\t\r\n"},
			want: []xproto.Keysym{keysymTab, keysymReturn},
		},
		{
			name: "replace with no text",
			e:    ime.Emission{ReplaceLast: true, ReplaceUnits: 1},
			want: []xproto.Keysym{keysymBackSpace},
		},
		{
			name: "nothing to send",
			e:    ime.Emission{},
			want: []xproto.Keysym{},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := emissionKeysyms(tc.e)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEmissionKeysymsRejectsInvalidUTF8(t *testing.T) {
	got, err := emissionKeysyms(ime.Emission{Text: "가\xff", ReplaceLast: true, ReplaceUnits: 1})
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestBackspaceKeysyms(t *testing.T) {
	assert.Nil(t, backspaceKeysyms(0))
	assert.Nil(t, backspaceKeysyms(-1))
	assert.Equal(t, []xproto.Keysym{keysymBackSpace, keysymBackSpace, keysymBackSpace}, backspaceKeysyms(3))
}
