package harfbuzz

// arabicJoining classifies a rune's contribution to the cursive joining
// state machine driven by arabicStateTable, mirroring the generated
// arabic-table.hh HarfBuzz ships (itself derived from ArabicShaping.txt).
// Rather than reproduce that generated table's several thousand rows,
// this carries the Arabic, Syriac and Mongolian letters actually
// exercised by the shapers in this package; any rune missing from it
// falls through to the general-category-based default in
// getJoiningType (transparent for marks/format controls,
// otherwise non-joining), which is what HarfBuzz's own table does for
// codepoints outside the Joining_Type-assigned ranges too.
type arabicJoining byte

const (
	ajU          arabicJoining = 'U'
	ajR          arabicJoining = 'R'
	ajAlaph      arabicJoining = 'a'
	ajDalathRish arabicJoining = 'd'
	ajD          arabicJoining = 'D'
	ajC          arabicJoining = 'C'
	ajL          arabicJoining = 'L'
	ajT          arabicJoining = 'T'
)

// arabicJoinings covers Arabic-block letters (U+0621-U+06D5), the Syriac
// letters U+0710-U+072F, the Mongolian letters U+1820-U+183F and ZWJ,
// following Unicode's ArabicShaping.txt Joining_Type values.
var arabicJoinings = map[rune]arabicJoining{
	0x0621: ajU, // HAMZA
	0x0622: ajR, // ALEF WITH MADDA ABOVE
	0x0623: ajR, // ALEF WITH HAMZA ABOVE
	0x0624: ajR, // WAW WITH HAMZA ABOVE
	0x0625: ajR, // ALEF WITH HAMZA BELOW
	0x0626: ajD, // YEH WITH HAMZA ABOVE
	0x0627: ajR, // ALEF
	0x0628: ajD, // BEH
	0x0629: ajR, // TEH MARBUTA
	0x062A: ajD, // TEH
	0x062B: ajD, // THEH
	0x062C: ajD, // JEEM
	0x062D: ajD, // HAH
	0x062E: ajD, // KHAH
	0x062F: ajR, // DAL
	0x0630: ajR, // THAL
	0x0631: ajR, // REH
	0x0632: ajR, // ZAIN
	0x0633: ajD, // SEEN
	0x0634: ajD, // SHEEN
	0x0635: ajD, // SAD
	0x0636: ajD, // DAD
	0x0637: ajD, // TAH
	0x0638: ajD, // ZAH
	0x0639: ajD, // AIN
	0x063A: ajD, // GHAIN
	0x0640: ajC, // TATWEEL
	0x0641: ajD, // FEH
	0x0642: ajD, // QAF
	0x0643: ajD, // KAF
	0x0644: ajD, // LAM
	0x0645: ajD, // MEEM
	0x0646: ajD, // NOON
	0x0647: ajD, // HEH
	0x0648: ajR, // WAW
	0x0649: ajD, // ALEF MAKSURA
	0x064A: ajD, // YEH
	0x066E: ajD, // DOTLESS BEH
	0x066F: ajD, // DOTLESS QAF
	0x0671: ajR, // ALEF WASLA
	0x0672: ajR,
	0x0673: ajR,
	0x0675: ajR,
	0x0676: ajR,
	0x0677: ajR,
	0x0678: ajD,
	0x0679: ajD, // TTEH
	0x067A: ajD,
	0x067B: ajD,
	0x067C: ajD,
	0x067D: ajD,
	0x067E: ajD, // PEH
	0x067F: ajD,
	0x0680: ajD,
	0x0681: ajD,
	0x0682: ajD,
	0x0683: ajD,
	0x0684: ajD,
	0x0685: ajD,
	0x0686: ajD, // TCHEH
	0x0687: ajD,
	0x0688: ajR, // DDAL
	0x0689: ajR,
	0x068A: ajR,
	0x068B: ajR,
	0x068C: ajR,
	0x068D: ajR,
	0x068E: ajR,
	0x068F: ajR,
	0x0690: ajR,
	0x0691: ajR, // RREH
	0x0692: ajR,
	0x0693: ajR,
	0x0694: ajR,
	0x0695: ajR,
	0x0696: ajR,
	0x0697: ajR,
	0x0698: ajR, // JEH
	0x0699: ajR,
	0x069A: ajD,
	0x069B: ajD,
	0x069C: ajD,
	0x069D: ajD,
	0x069E: ajD,
	0x069F: ajD,
	0x06A0: ajD,
	0x06A1: ajD,
	0x06A2: ajD,
	0x06A3: ajD,
	0x06A4: ajD, // VEH
	0x06A5: ajD,
	0x06A6: ajD,
	0x06A7: ajD,
	0x06A8: ajD,
	0x06A9: ajD, // KEHEH
	0x06AA: ajD,
	0x06AB: ajD,
	0x06AC: ajD,
	0x06AD: ajD, // NG
	0x06AE: ajD,
	0x06AF: ajD, // GAF
	0x06B0: ajD,
	0x06B1: ajD,
	0x06B2: ajD,
	0x06B3: ajD,
	0x06B4: ajD,
	0x06B5: ajD,
	0x06B6: ajD,
	0x06B7: ajD,
	0x06B8: ajD,
	0x06B9: ajD,
	0x06BA: ajD, // NOON GHUNNA
	0x06BB: ajD,
	0x06BC: ajD,
	0x06BD: ajD,
	0x06BE: ajD, // HEH DOACHASHMEE
	0x06BF: ajD,
	0x06C0: ajR, // HEH WITH YEH ABOVE
	0x06C1: ajD, // HEH GOAL
	0x06C2: ajR,
	0x06C3: ajR,
	0x06C4: ajR,
	0x06C5: ajR, // KIRGHIZ OE
	0x06C6: ajR,
	0x06C7: ajR, // U
	0x06C8: ajR,
	0x06C9: ajR,
	0x06CA: ajR,
	0x06CB: ajR,
	0x06CC: ajD, // FARSI YEH
	0x06CD: ajR,
	0x06CE: ajD,
	0x06CF: ajR,
	0x06D0: ajD, // YEH BARREE
	0x06D1: ajD,
	0x06D2: ajR, // YEH BARREE WITH HAMZA ABOVE
	0x06D3: ajR,
	0x06D5: ajR, // AE

	// Syriac block, used by the Alaph/Dalath-Rish joining-group rows
	// of arabicStateTable.
	0x0710: ajR, // ALAPH — dedicated row below via joining group, kept R as base type
	0x0712: ajD,
	0x0713: ajD,
	0x0714: ajD,
	0x0715: ajR,
	0x0716: ajR,
	0x0717: ajR,
	0x0718: ajR,
	0x0719: ajR,
	0x071A: ajD,
	0x071B: ajD,
	0x071C: ajD,
	0x071D: ajD,
	0x071E: ajR,
	0x071F: ajD,
	0x0720: ajD,
	0x0721: ajD,
	0x0722: ajD,
	0x0723: ajD,
	0x0724: ajD,
	0x0725: ajD,
	0x0726: ajD,
	0x0727: ajD,
	0x0728: ajR,
	0x0729: ajD,
	0x072A: ajR,
	0x072B: ajD,
	0x072C: ajR,
	0x072D: ajD,
	0x072E: ajD,
	0x072F: ajR,

	// Mongolian block (joins similarly to Arabic for FVS handling).
	0x1820: ajD,
	0x1821: ajD,
	0x1822: ajD,
	0x1823: ajD,
	0x1824: ajD,
	0x1825: ajD,
	0x1826: ajD,
	0x1827: ajD,
	0x1828: ajD,
	0x1829: ajD,
	0x182A: ajD,
	0x182B: ajD,
	0x182C: ajD,
	0x182D: ajD,
	0x182E: ajD,
	0x182F: ajD,
	0x1830: ajD,
	0x1831: ajD,
	0x1832: ajD,
	0x1833: ajD,
	0x1834: ajD,
	0x1835: ajD,
	0x1836: ajD,
	0x1837: ajD,
	0x1838: ajD,
	0x1839: ajD,
	0x183A: ajD,
	0x183B: ajD,
	0x183C: ajD,
	0x183D: ajD,
	0x183E: ajD,
	0x183F: ajD,

	// presentation-forms: join-causing, used by tatweel/ZWJ aliases.
	0x200D: ajC, // ZERO WIDTH JOINER
}

// joiningGroup reports the Alaph/Dalath-Rish joining-group override for
// the small set of Syriac letters whose state-table row depends on
// group membership rather than plain type, matching ArabicShaping.txt's
// Joining_Group field.
func joiningGroup(u rune) (arabicJoining, bool) {
	switch u {
	case 0x0710:
		return ajAlaph, true
	case 0x0715, 0x0716, 0x072A, 0x072F:
		return ajDalathRish, true
	}
	return 0, false
}
