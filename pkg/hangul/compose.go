package hangul

import "golang.org/x/text/unicode/norm"

// Compose builds one syllable from its slot glyphs.
//
// A triple drawn entirely from the modern repertoire (legacy aliases
// included) becomes a single precomposed syllable. Any archaic component makes
// the result the plain concatenation of the inputs, which relies on font
// shaping to render as one block. An empty initial yields "" and an empty
// medial yields the bare initial.
func Compose(initial, medial, final string) string {
	if initial == "" {
		return ""
	}
	if medial == "" {
		return initial
	}
	if !composable(initial, RoleInitial) || !composable(medial, RoleMedial) || !composable(final, RoleFinal) {
		return initial + medial + final
	}

	lead, _ := singleRune(initial)
	vowel, _ := singleRune(medial)
	var tail rune
	if final != "" {
		tail, _ = singleRune(final)
	}
	syllable, ok := composeRunes(lead, vowel, tail)
	if !ok {
		return initial + medial + final
	}
	return string(syllable)
}

func composeRunes(lead, vowel, tail rune) (rune, bool) {
	li, ok := initialIndex(dealias(lead))
	if !ok {
		return 0, false
	}
	vi, ok := medialIndex(dealias(vowel))
	if !ok {
		return 0, false
	}
	ti, ok := finalIndex(dealias(tail))
	if !ok {
		return 0, false
	}
	return rune(syllableBase + li*initialStride + vi*finalCount + ti), true
}

func dealias(r rune) rune {
	if modern, ok := LegacyAlias(r); ok {
		return modern
	}
	return r
}

// Decompose splits a single precomposed syllable into its compatibility
// letters. The final is "" when the syllable has none. Any other input
// reports ok=false.
func Decompose(syllable string) (initial, medial, final string, ok bool) {
	r, single := singleRune(syllable)
	if !single || !IsSyllable(r) {
		return "", "", "", false
	}
	base := int(r - syllableBase)
	li := base / initialStride
	vi := (base % initialStride) / finalCount
	ti := base % finalCount

	initial = string(choList[li])
	medial = string(jungList[vi])
	if ti != 0 {
		final = string(jongList[ti])
	}
	return initial, medial, final, true
}

// DecomposeConjoining rewrites every precomposed syllable in s as its
// canonical sequence of conjoining jamo.
func DecomposeConjoining(s string) string {
	return norm.NFD.String(s)
}

// Normalize applies canonical composition (NFC) to s, folding conjoining runs
// that spell modern syllables into precomposed form. A modern initial and
// medial followed by an archaic final still fold into a two-jamo syllable, so
// text meant for shaping should not be normalized.
func Normalize(s string) string {
	return norm.NFC.String(s)
}

// Combine merges the next picked glyph into the text that was inserted last,
// inferring slot roles from code points. It is meant for palettes that do not
// tag their glyphs with a role. When replace is true the caller swaps last for
// text; otherwise text is appended after last.
func Combine(last, next string) (text string, replace bool) {
	if next == "" {
		return "", false
	}
	nextRole := RoleNone
	if r, ok := singleRune(next); ok {
		nextRole = SlotRole(r)
	}
	lastRole := RoleNone
	if r, ok := singleRune(last); ok {
		lastRole = SlotRole(r)
	}
	tailRole := RoleNone
	if last != "" {
		runes := []rune(last)
		tailRole = SlotRole(runes[len(runes)-1])
	}

	if lastRole != RoleNone || nextRole != RoleNone || tailRole != RoleNone {
		switch {
		case lastRole == RoleInitial && nextRole == RoleMedial:
			return last + next, true
		case tailRole == RoleMedial && nextRole == RoleFinal:
			return last + next, true
		case lastRole == RoleInitial && nextRole == RoleFinal:
			return next, false
		}
	}

	if initial, medial, final, ok := Decompose(last); ok {
		if final == "" && isStandaloneConsonant(next) && composable(next, RoleFinal) {
			return Compose(initial, medial, next), true
		}
		return next, false
	}

	if isStandaloneConsonant(last) && isStandaloneVowel(next) {
		return Compose(last, next, ""), true
	}
	return next, false
}

func isStandaloneConsonant(s string) bool {
	r, ok := singleRune(s)
	if !ok {
		return false
	}
	_, modern := choseongIndex[dealias(r)]
	return modern
}

func isStandaloneVowel(s string) bool {
	r, ok := singleRune(s)
	if !ok {
		return false
	}
	_, modern := jungseongIndex[dealias(r)]
	return modern
}
