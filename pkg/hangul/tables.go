package hangul

const (
	syllableBase  = 0xAC00
	syllableLast  = 0xD7A3
	medialCount   = 21
	finalCount    = 28
	initialStride = medialCount * finalCount
)

// Modern conjoining jamo occupy contiguous runs in the same order as the
// syllable tables, so their index is an offset.
const (
	conjoiningInitialFirst = 0x1100
	conjoiningInitialLast  = 0x1112
	conjoiningMedialFirst  = 0x1161
	conjoiningMedialLast   = 0x1175
	conjoiningFinalFirst   = 0x11A8
	conjoiningFinalLast    = 0x11C2
)

var (
	choList  = []rune{'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅃ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ'}
	jungList = []rune{'ㅏ', 'ㅐ', 'ㅑ', 'ㅒ', 'ㅓ', 'ㅔ', 'ㅕ', 'ㅖ', 'ㅗ', 'ㅘ', 'ㅙ', 'ㅚ', 'ㅛ', 'ㅜ', 'ㅝ', 'ㅞ', 'ㅟ', 'ㅠ', 'ㅡ', 'ㅢ', 'ㅣ'}
	jongList = []rune{0, 'ㄱ', 'ㄲ', 'ㄳ', 'ㄴ', 'ㄵ', 'ㄶ', 'ㄷ', 'ㄹ', 'ㄺ', 'ㄻ', 'ㄼ', 'ㄽ', 'ㄾ', 'ㄿ', 'ㅀ', 'ㅁ', 'ㅂ', 'ㅄ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ'}
)

var (
	choseongIndex  = buildIndex(choList)
	jungseongIndex = buildIndex(jungList)
	jongseongIndex = buildIndex(jongList)
)

// Stand-alone archaic letters from the compatibility block that borrow the
// slot of their closest modern letter when a modern syllable is formed.
var legacyAliases = map[rune]rune{
	'ㆁ': 'ㅇ', // yesieung
	'ㆆ': 'ㅎ', // yeorinhieuh
	'ㅿ': 'ㅅ', // pansios
	'ㆍ': 'ㅏ', // arae-a
	'ㆎ': 'ㅐ', // arae-ae
}

func buildIndex(list []rune) map[rune]int {
	idx := make(map[rune]int, len(list))
	for i, ch := range list {
		idx[ch] = i
	}
	return idx
}

func initialIndex(r rune) (int, bool) {
	if r >= conjoiningInitialFirst && r <= conjoiningInitialLast {
		return int(r - conjoiningInitialFirst), true
	}
	idx, ok := choseongIndex[r]
	return idx, ok
}

func medialIndex(r rune) (int, bool) {
	if r >= conjoiningMedialFirst && r <= conjoiningMedialLast {
		return int(r - conjoiningMedialFirst), true
	}
	idx, ok := jungseongIndex[r]
	return idx, ok
}

// finalIndex treats rune 0 as the empty final.
func finalIndex(r rune) (int, bool) {
	if r == 0 {
		return 0, true
	}
	if r >= conjoiningFinalFirst && r <= conjoiningFinalLast {
		return int(r-conjoiningFinalFirst) + 1, true
	}
	idx, ok := jongseongIndex[r]
	return idx, ok
}
