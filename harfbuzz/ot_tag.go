package harfbuzz

import (
	"strings"

	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/font/opentype/tables"
	"github.com/go-text/typesetting/language"
	xlanguage "golang.org/x/text/language"
)

var (
	// tagDefaultScript is the OpenType script tag `DFLT`, for features
	// that are not script-specific.
	tagDefaultScript = ot.NewTag('D', 'F', 'L', 'T')
	// tagDefaultLanguage is the OpenType language tag `dflt`. Not a valid
	// BCP-47 tag, but some fonts mistakenly key their default language
	// system with it.
	tagDefaultLanguage = ot.NewTag('d', 'f', 'l', 't')
)

// oldTagFromScript maps a script to its pre-OpenType-1.6 ("old") 4-byte
// script tag, generally the lowercased ISO 15924 tag with a handful of
// historical exceptions.
func oldTagFromScript(script language.Script) tables.Tag {
	switch script {
	case 0:
		return tagDefaultScript
	case language.Mathematical_notation:
		return ot.NewTag('m', 'a', 't', 'h')
	case language.Hiragana:
		return ot.NewTag('k', 'a', 'n', 'a')
	case language.Lao:
		return ot.NewTag('l', 'a', 'o', ' ')
	case language.Yi:
		return ot.NewTag('y', 'i', ' ', ' ')
	case language.Nko:
		return ot.NewTag('n', 'k', 'o', ' ')
	case language.Vai:
		return ot.NewTag('v', 'a', 'i', ' ')
	}
	return tables.Tag(script | 0x20000000)
}

// newTagFromScript maps a script to its OpenType 1.6 "v2" script tag,
// used by scripts whose shaping model changed enough to need a
// distinct tag (mostly the Indic scripts).
func newTagFromScript(script language.Script) tables.Tag {
	switch script {
	case language.Bengali:
		return ot.NewTag('b', 'n', 'g', '2')
	case language.Devanagari:
		return ot.NewTag('d', 'e', 'v', '2')
	case language.Gujarati:
		return ot.NewTag('g', 'j', 'r', '2')
	case language.Gurmukhi:
		return ot.NewTag('g', 'u', 'r', '2')
	case language.Kannada:
		return ot.NewTag('k', 'n', 'd', '2')
	case language.Malayalam:
		return ot.NewTag('m', 'l', 'm', '2')
	case language.Oriya:
		return ot.NewTag('o', 'r', 'y', '2')
	case language.Tamil:
		return ot.NewTag('t', 'm', 'l', '2')
	case language.Telugu:
		return ot.NewTag('t', 'e', 'l', '2')
	case language.Myanmar:
		return ot.NewTag('m', 'y', 'm', '2')
	}
	return tagDefaultScript
}

// allTagsFromScript returns every OpenType script tag a font might use
// for `script`, most specific first (the "v3" tag where one exists,
// then the "v2" tag, then the old tag).
func allTagsFromScript(script language.Script) []tables.Tag {
	var tags []tables.Tag

	tag := newTagFromScript(script)
	if tag != tagDefaultScript {
		if tag != ot.NewTag('m', 'y', 'm', '2') {
			tags = append(tags, tag|'3')
		}
		tags = append(tags, tag)
	}

	oldTag := oldTagFromScript(script)
	if oldTag != tagDefaultScript {
		tags = append(tags, oldTag)
	}
	return tags
}

func parseLanguageTagStrict(langStr string) (xlanguage.Tag, bool) {
	if langStr == "" {
		return xlanguage.Tag{}, false
	}
	tag, err := xlanguage.Parse(langStr)
	if err != nil {
		return xlanguage.Tag{}, false
	}
	return tag, true
}

func primarySubtag(langStr string) (string, bool) {
	tag, ok := parseLanguageTagStrict(langStr)
	if !ok {
		return "", false
	}
	base, _ := tag.Base()
	primary := strings.ToLower(base.String())
	if primary == "" {
		return "", false
	}
	return primary, true
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlnum(c byte) bool {
	return isAlpha(c) || (c >= '0' && c <= '9')
}

func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}

func isISO639_3(tag string) bool {
	if len(tag) != 3 {
		return false
	}
	for i := 0; i < 3; i++ {
		if !isAlpha(tag[i]) {
			return false
		}
	}
	return true
}

// otTagsFromLanguage maps a BCP-47 primary language subtag to the
// OpenType language-system tags fonts register for it, falling back to
// the ISO-639-3 upper-cased tag convention most fonts follow when no
// explicit OpenType registry entry exists.
func otTagsFromLanguage(langStr string) []tables.Tag {
	primary, ok := primarySubtag(langStr)
	if !ok {
		return nil
	}

	if tags := otLanguageTagsForPrimary(primary); len(tags) != 0 {
		return tags
	}

	if isISO639_3(primary) {
		return []tables.Tag{ot.NewTag(toUpper(primary[0]), toUpper(primary[1]), toUpper(primary[2]), ' ')}
	}

	return nil
}

// parsePrivateUseSubtag extracts a 1-4 char tag following prefix inside
// a BCP-47 private-use subtag, used for the "-hbsc"/"-hbot" escapes that
// let callers force an exact script/language OpenType tag.
func parsePrivateUseSubtag(privateUseSubtag, prefix string, normalize func(byte) byte) (tables.Tag, bool) {
	s := strings.Index(privateUseSubtag, prefix)
	if s == -1 {
		return 0, false
	}

	var tag [4]byte
	l := len(privateUseSubtag)
	s += len(prefix)
	var i int
	for ; i < 4 && s+i < l && isAlnum(privateUseSubtag[s+i]); i++ {
		tag[i] = normalize(privateUseSubtag[s+i])
	}
	if i == 0 {
		return 0, false
	}
	for ; i < 4; i++ {
		tag[i] = ' '
	}
	out := ot.NewTag(tag[0], tag[1], tag[2], tag[3])
	if (out & 0xDFDFDFDF) == tagDefaultScript {
		out ^= ^tables.Tag(0xDFDFDFDF)
	}
	return out, true
}

func privateUseExtension(tag xlanguage.Tag) string {
	for _, ext := range tag.Extensions() {
		if ext.Type() == 'x' {
			return ext.String()
		}
	}
	return ""
}

// newOTTagsFromScriptAndLanguage converts a resolved Script/Language
// pair to the script and language tags the OT map builder should probe
// the font's GSUB/GPOS script/language-system lists with, most specific
// first.
func newOTTagsFromScriptAndLanguage(script language.Script, lang language.Language) (scriptTags, languageTags []tables.Tag) {
	if parsed, ok := parseLanguageTagStrict(string(lang)); ok {
		privateUseSubtag := privateUseExtension(parsed)

		if s, hasScript := parsePrivateUseSubtag(privateUseSubtag, "-hbsc", toLower); hasScript {
			scriptTags = []tables.Tag{s}
		}

		if l, hasLanguage := parsePrivateUseSubtag(privateUseSubtag, "-hbot", toUpper); hasLanguage {
			languageTags = append(languageTags, l)
		} else {
			languageTags = otTagsFromLanguage(parsed.String())
		}
	}

	if len(scriptTags) == 0 {
		scriptTags = allTagsFromScript(script)
	}
	return
}

// scriptRange associates a contiguous rune range with the script that
// owns it, used by scriptForRune for the common single-script blocks.
// This only needs to be precise enough to seed guessSegmentProperties
// when the caller supplied no explicit script: callers that care about
// exact Unicode Script property assignment (e.g. extended/uncommon
// blocks, or scripts sharing a block) should set Props.Script directly.
type scriptRange struct {
	lo, hi rune
	script language.Script
}

var scriptRanges = []scriptRange{
	{0x0041, 0x005A, language.Latin}, {0x0061, 0x007A, language.Latin},
	{0x00C0, 0x024F, language.Latin},
	{0x0370, 0x03FF, language.Greek},
	{0x0400, 0x04FF, language.Cyrillic},
	{0x0530, 0x058F, language.Armenian},
	{0x0590, 0x05FF, language.Hebrew},
	{0x0600, 0x06FF, language.Arabic}, {0x0750, 0x077F, language.Arabic}, {0xFB50, 0xFDFF, language.Arabic}, {0xFE70, 0xFEFF, language.Arabic},
	{0x0700, 0x074F, language.Syriac},
	{0x0780, 0x07BF, language.Thaana},
	{0x0900, 0x097F, language.Devanagari},
	{0x0980, 0x09FF, language.Bengali},
	{0x0A00, 0x0A7F, language.Gurmukhi},
	{0x0A80, 0x0AFF, language.Gujarati},
	{0x0B00, 0x0B7F, language.Oriya},
	{0x0B80, 0x0BFF, language.Tamil},
	{0x0C00, 0x0C7F, language.Telugu},
	{0x0C80, 0x0CFF, language.Kannada},
	{0x0D00, 0x0D7F, language.Malayalam},
	{0x0E00, 0x0E7F, language.Thai},
	{0x0E80, 0x0EFF, language.Lao},
	{0x0F00, 0x0FFF, language.Tibetan},
	{0x1000, 0x109F, language.Myanmar},
	{0x10A0, 0x10FF, language.Georgian},
	{0x1100, 0x11FF, language.Hangul}, {0xAC00, 0xD7A3, language.Hangul},
	{0x1780, 0x17FF, language.Khmer},
	{0x1800, 0x18AF, language.Mongolian},
	{0x2E80, 0x2FDF, language.Han}, {0x3400, 0x4DBF, language.Han}, {0x4E00, 0x9FFF, language.Han},
	{0x3040, 0x309F, language.Hiragana},
	{0x30A0, 0x30FF, language.Katakana},
	{0xA4D0, 0xA4FF, language.Lisu},
	{0xA500, 0xA63F, language.Vai},
	{0xA800, 0xA82F, language.Syloti_Nagri},
	{0xA840, 0xA87F, language.Phags_Pa},
	{0xA900, 0xA92F, language.Kayah_Li},
	{0xA930, 0xA95F, language.Rejang},
	{0x10A00, 0x10A5F, language.Kharoshthi},
	{0x1B80, 0x1BBF, language.Sundanese},
	{0x07C0, 0x07FF, language.Nko},
	{0x0800, 0x083F, language.Samaritan},
	{0x0840, 0x085F, language.Mandaic},
}

// scriptForRune returns the Unicode script of a single rune, used by
// Buffer.guessSegmentProperties to infer a script when the caller did
// not set one explicitly. It is a deliberately small, single-script
// block table rather than a full Script property port: ambiguous
// characters (digits, punctuation, symbols) correctly fall through to
// language.Common, the same as they do for Script.IsSupported callers
// who then keep scanning for a strong script.
func scriptForRune(r rune) language.Script {
	for _, sr := range scriptRanges {
		if r >= sr.lo && r <= sr.hi {
			return sr.script
		}
	}
	return language.Common
}

// scriptHorizontalDirection returns RightToLeft for the right-to-left
// scripts listed below and LeftToRight for every other script; it
// never returns DirectionInvalid.
func scriptHorizontalDirection(script language.Script) Direction {
	switch script {
	case language.Arabic, language.Hebrew, language.Syriac, language.Thaana,
		language.Nko, language.Mandaic, language.Samaritan:
		return RightToLeft
	default:
		return LeftToRight
	}
}
