package palette

// Conjoining jamo shown by the default palette. Modern letters come first in
// table order, followed by the archaic letters most often needed for Middle
// Korean texts.
var (
	defaultInitials = appendRange(nil, 0x1100, 0x1112,
		0x1140, // pansios
		0x114C, // yesieung
		0x1159, // yeorinhieuh
		0x112B, // kapyeounpieup
		0x1147, // ssangieung
		0x1121, // pieup-sios
		0x1122, // pieup-sios-kiyeok
		0x1133, // sios-pieup-kiyeok
		0x113C, // chitueumsios
		0x113E, // ceongchieumsios
		0x114E, // chitueumcieuc
		0x1150, // ceongchieumcieuc
		0x1155, // ceongchieumchieuch
		0x115A, // kiyeok-tikeut
	)
	defaultMedials = appendRange(nil, 0x1161, 0x1175,
		0x119E, // arae-a
		0x11A1, // arae-a-i
		0x11A2, // ssangaraea
		0x1188, // yo-i
		0x1194, // yu-i
		0x1184, // yo-ya
		0x1185, // yo-yae
	)
	defaultFinals = appendRange(nil, 0x11A8, 0x11C2,
		0x11EB, // pansios
		0x11F0, // yesieung
		0x11F9, // yeorinhieuh
		0x11E6, // kapyeounpieup
		0x11D9, // rieul-yeorinhieuh
		0x11DD, // mieum-sios
	)
)

// Ready-made archaic words, spelled in conjoining jamo and inserted verbatim.
var defaultWords = []string{
	"\u1102\u1161\u1105\u1161\u11BA\u1106\u1161\u11AF\u110A\u119E\u1106\u1175", // naratmalssami
	"\u1103\u1172\u11F0\u1100\u1171\u11A8",                                     // tyungkwuk
	"\u1112\u119E\u11AB",                                                       // hon
	"\u1109\u119E\u11AF",                                                       // sal
	"\u1106\u119E\u1140\u119E\u11B7",                                           // maam
	"\u1100\u119E\u1105\u119E\u11B7",                                           // karam
	"\u1109\u1167\u11BC\u110B\u1175\u11AB",                                     // syengin
}

func appendRange(dst []string, first, last rune, extra ...rune) []string {
	for r := first; r <= last; r++ {
		dst = append(dst, string(r))
	}
	for _, r := range extra {
		dst = append(dst, string(r))
	}
	return dst
}
