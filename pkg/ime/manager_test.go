package ime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yethangul/pkg/hangul"
)

func TestInitialThenMedialReplaces(t *testing.T) {
	m := NewCompositionManager()
	first := m.AddInitial("ㄱ")
	assert.Equal(t, Emission{Text: "ㄱ"}, first)

	second := m.AddMedial("ㅏ")
	assert.Equal(t, "가", second.Text)
	assert.True(t, second.ReplaceLast)
	assert.Equal(t, Units(first.Text), second.ReplaceUnits)
}

func TestFullSyllable(t *testing.T) {
	m := NewCompositionManager()
	m.AddInitial("ㄱ")
	m.AddMedial("ㅏ")
	e := m.AddFinal("ㄴ")
	assert.Equal(t, Emission{Text: "간", ReplaceLast: true, ReplaceUnits: 1}, e)
	assert.Equal(t, "간", m.Pending())
	assert.Equal(t, "간", m.Complete())
	assert.True(t, m.State().Empty())
}

func TestInitialCollisionCommitsBareInitial(t *testing.T) {
	m := NewCompositionManager()
	m.AddInitial("ㄱ")
	e := m.AddInitial("ㄴ")
	assert.Equal(t, Emission{Text: "ㄱㄴ"}, e)

	state := m.State()
	require.NotNil(t, state.Initial)
	assert.Equal(t, "ㄴ", *state.Initial)
	assert.Nil(t, state.Medial)
}

func TestMedialCollisionDropsInitial(t *testing.T) {
	m := NewCompositionManager()
	m.AddInitial("ㄱ")
	m.AddMedial("ㅏ")
	e := m.AddMedial("ㅗ")
	assert.Equal(t, Emission{Text: "가ㅗ"}, e)

	state := m.State()
	assert.Nil(t, state.Initial)
	require.NotNil(t, state.Medial)
	assert.Equal(t, "ㅗ", *state.Medial)
	assert.Nil(t, state.Final)

	// Without an initial the new unit cannot take a final.
	e = m.AddFinal("ㄴ")
	assert.Equal(t, Emission{Text: "ㄴ"}, e)
	assert.Equal(t, "", m.Complete())
}

func TestFinalCollisionKeepsOnlyFinal(t *testing.T) {
	m := NewCompositionManager()
	m.AddInitial("ㄱ")
	m.AddMedial("ㅏ")
	m.AddFinal("ㄴ")
	e := m.AddFinal("ㄹ")
	assert.Equal(t, Emission{Text: "간ㄹ"}, e)

	state := m.State()
	assert.Nil(t, state.Initial)
	assert.Nil(t, state.Medial)
	require.NotNil(t, state.Final)
	assert.Equal(t, "ㄹ", *state.Final)
}

func TestStandaloneGlyphsLeaveStateAlone(t *testing.T) {
	m := NewCompositionManager()
	assert.Equal(t, Emission{Text: "ㅏ"}, m.AddMedial("ㅏ"))
	assert.Equal(t, Emission{Text: "ㄴ"}, m.AddFinal("ㄴ"))
	assert.True(t, m.State().Empty())

	m.AddInitial("ㄱ")
	assert.Equal(t, Emission{Text: "ㄴ"}, m.AddFinal("ㄴ"))
	state := m.State()
	require.NotNil(t, state.Initial)
	assert.Nil(t, state.Final)
}

func TestArchaicReplaceCountsRunes(t *testing.T) {
	m := NewCompositionManager()
	first := m.AddInitial("\u1140")
	second := m.AddMedial("\u119E")
	assert.Equal(t, "\u1140\u119E", second.Text)
	assert.True(t, second.ReplaceLast)
	assert.Equal(t, 1, second.ReplaceUnits)
	assert.Equal(t, Units(first.Text), second.ReplaceUnits)

	third := m.AddFinal("\u11AB")
	assert.Equal(t, "\u1140\u119E\u11AB", third.Text)
	assert.True(t, third.ReplaceLast)
	assert.Equal(t, 2, third.ReplaceUnits)

	// The next syllable is appended, and its own replacement only covers
	// the bare initial.
	fourth := m.AddInitial("ㄱ")
	assert.Equal(t, Emission{Text: "\u1140\u119E\u11ABㄱ"}, fourth)
	fifth := m.AddMedial("ㅏ")
	assert.Equal(t, 4, fifth.ReplaceUnits)
}

func TestLegacyAliasComposes(t *testing.T) {
	m := NewCompositionManager()
	m.AddInitial("ㆁ")
	e := m.AddMedial("ㆍ")
	assert.Equal(t, "아", e.Text)
	e = m.AddFinal("ㆁ")
	assert.Equal(t, "앙", e.Text)
	assert.Equal(t, 1, e.ReplaceUnits)
}

func TestCompleteAndResetClearUnits(t *testing.T) {
	m := NewCompositionManager()
	m.AddInitial("ㄱ")
	assert.Equal(t, "ㄱ", m.Complete())
	assert.Equal(t, "", m.Complete())

	m.AddInitial("ㄴ")
	m.Reset()
	assert.True(t, m.State().Empty())
	assert.Equal(t, "", m.Pending())

	m.AddInitial("\u1140")
	m.Reset()
	m.AddInitial("ㄷ")
	e := m.AddMedial("ㅏ")
	assert.Equal(t, 1, e.ReplaceUnits)
}

func TestAddDispatch(t *testing.T) {
	m := NewCompositionManager()
	m.Add(hangul.RoleInitial, "ㅎ")
	m.Add(hangul.RoleMedial, "ㅏ")
	e := m.Add(hangul.RoleFinal, "ㄴ")
	assert.Equal(t, "한", e.Text)

	word := m.Add(hangul.RoleNone, "\u1112\u119E\u11AB")
	assert.Equal(t, Emission{Text: "\u1112\u119E\u11AB"}, word)
	assert.Equal(t, "한", m.Pending())
}

func TestEmptyGlyphIsIgnored(t *testing.T) {
	m := NewCompositionManager()
	m.AddInitial("ㄱ")
	assert.Equal(t, Emission{}, m.AddMedial(""))
	assert.Equal(t, Emission{}, m.AddInitial(""))
	e := m.AddMedial("ㅏ")
	assert.Equal(t, 1, e.ReplaceUnits)
}

func TestStateIsACopy(t *testing.T) {
	m := NewCompositionManager()
	m.AddInitial("ㄱ")
	state := m.State()
	*state.Initial = "ㄴ"
	assert.Equal(t, "ㄱ", m.Pending())
}
