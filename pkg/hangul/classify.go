package hangul

import (
	"strings"
	"unicode/utf8"
)

// Role is the syllable slot a jamo occupies.
type Role int

const (
	RoleNone Role = iota
	RoleInitial
	RoleMedial
	RoleFinal
)

func (r Role) String() string {
	switch r {
	case RoleInitial:
		return "initial"
	case RoleMedial:
		return "medial"
	case RoleFinal:
		return "final"
	default:
		return "none"
	}
}

// ParseRole accepts the role names used by palette files and the command line.
func ParseRole(name string) Role {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "i", "initial", "leading", "choseong", "초성":
		return RoleInitial
	case "m", "medial", "vowel", "jungseong", "중성":
		return RoleMedial
	case "f", "final", "trailing", "jongseong", "종성":
		return RoleFinal
	default:
		return RoleNone
	}
}

// Repertoire tells which family of letters a glyph belongs to for a given slot.
type Repertoire int

const (
	RepertoireUnknown Repertoire = iota
	// RepertoireBasic is the modern 19/21/27 set that has precomposed syllables.
	RepertoireBasic
	// RepertoireLegacy is one of the compatibility aliases of a modern letter.
	RepertoireLegacy
	// RepertoireExtended is any other jamo; it only renders through font shaping.
	RepertoireExtended
)

func (r Repertoire) String() string {
	switch r {
	case RepertoireBasic:
		return "basic"
	case RepertoireLegacy:
		return "legacy"
	case RepertoireExtended:
		return "extended"
	default:
		return "unknown"
	}
}

// SlotRole reports the slot of a conjoining jamo from its code point.
// Compatibility jamo and everything else classify as RoleNone.
func SlotRole(r rune) Role {
	switch {
	case r >= 0x1100 && r <= 0x115F, r >= 0xA960 && r <= 0xA97C:
		return RoleInitial
	case r >= 0x1160 && r <= 0x11A7, r >= 0xD7B0 && r <= 0xD7C6:
		return RoleMedial
	case r >= 0x11A8 && r <= 0x11FF, r >= 0xD7CB && r <= 0xD7FB:
		return RoleFinal
	default:
		return RoleNone
	}
}

// IsJamo reports whether r lies in any of the Hangul jamo blocks.
func IsJamo(r rune) bool {
	switch {
	case r >= 0x1100 && r <= 0x11FF:
		return true
	case r >= 0x3131 && r <= 0x318E:
		return true
	case r >= 0xA960 && r <= 0xA97C:
		return true
	case r >= 0xD7B0 && r <= 0xD7FB:
		return true
	default:
		return false
	}
}

// IsSyllable reports whether r is a precomposed modern syllable.
func IsSyllable(r rune) bool {
	return r >= syllableBase && r <= syllableLast
}

// LegacyAlias returns the modern letter a stand-alone legacy letter stands in
// for. Conjoining and extended jamo never have an alias.
func LegacyAlias(r rune) (rune, bool) {
	modern, ok := legacyAliases[r]
	return modern, ok
}

// IsBasic reports whether glyph is a member of the modern repertoire for role,
// spelled either as a conjoining jamo or as a compatibility letter. The empty
// final is basic.
func IsBasic(glyph string, role Role) bool {
	return Classify(glyph, role) == RepertoireBasic
}

// Classify reports the repertoire of glyph when placed in role.
func Classify(glyph string, role Role) Repertoire {
	if glyph == "" {
		if role == RoleFinal {
			return RepertoireBasic
		}
		return RepertoireUnknown
	}
	r, ok := singleRune(glyph)
	if !ok {
		for _, ch := range glyph {
			if !IsJamo(ch) {
				return RepertoireUnknown
			}
		}
		return RepertoireExtended
	}
	if _, ok := modernIndex(r, role); ok {
		return RepertoireBasic
	}
	if modern, ok := LegacyAlias(r); ok {
		if _, ok := modernIndex(modern, role); ok {
			return RepertoireLegacy
		}
	}
	if IsJamo(r) {
		return RepertoireExtended
	}
	return RepertoireUnknown
}

func composable(glyph string, role Role) bool {
	switch Classify(glyph, role) {
	case RepertoireBasic, RepertoireLegacy:
		return true
	default:
		return false
	}
}

func modernIndex(r rune, role Role) (int, bool) {
	switch role {
	case RoleInitial:
		return initialIndex(r)
	case RoleMedial:
		return medialIndex(r)
	case RoleFinal:
		if r == 0 {
			return 0, false
		}
		return finalIndex(r)
	default:
		return 0, false
	}
}

func singleRune(s string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, false
	}
	return r, true
}
