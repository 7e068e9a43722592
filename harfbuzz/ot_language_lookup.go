package harfbuzz

import (
	"sync"

	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/font/opentype/tables"
)

// otLanguageEntry associates a BCP-47 primary language subtag with one
// or more OpenType language-system tags fonts commonly register for it.
// This is the "LangTags" registry from the OpenType spec, trimmed to the
// languages the complex shapers in this module care about (Arabic,
// Indic, Southeast-Asian and the other scripts with dedicated shapers);
// languages outside this table still shape correctly by falling back to
// their upper-cased ISO-639-3 tag in otTagsFromLanguage.
type otLanguageEntry struct {
	language string
	tag      tables.Tag
}

var otLanguages = []otLanguageEntry{
	{"ar", ot.NewTag('A', 'R', 'A', ' ')},
	{"fa", ot.NewTag('F', 'A', 'R', ' ')},
	{"ur", ot.NewTag('U', 'R', 'D', ' ')},
	{"ps", ot.NewTag('P', 'A', 'S', ' ')},
	{"ug", ot.NewTag('U', 'Y', 'G', ' ')},
	{"snd", ot.NewTag('S', 'N', 'D', ' ')},
	{"he", ot.NewTag('I', 'W', 'R', ' ')},
	{"yi", ot.NewTag('J', 'I', 'I', ' ')},
	{"syr", ot.NewTag('S', 'Y', 'R', ' ')},
	{"hi", ot.NewTag('H', 'I', 'N', ' ')},
	{"mr", ot.NewTag('M', 'A', 'R', ' ')},
	{"ne", ot.NewTag('N', 'E', 'P', ' ')},
	{"sa", ot.NewTag('S', 'A', 'N', ' ')},
	{"bn", ot.NewTag('B', 'E', 'N', ' ')},
	{"as", ot.NewTag('A', 'S', 'M', ' ')},
	{"pa", ot.NewTag('P', 'A', 'N', ' ')},
	{"gu", ot.NewTag('G', 'U', 'J', ' ')},
	{"or", ot.NewTag('O', 'R', 'I', ' ')},
	{"ta", ot.NewTag('T', 'A', 'M', ' ')},
	{"te", ot.NewTag('T', 'E', 'L', ' ')},
	{"kn", ot.NewTag('K', 'A', 'N', ' ')},
	{"ml", ot.NewTag('M', 'L', 'R', ' ')},
	{"si", ot.NewTag('S', 'N', 'H', ' ')},
	{"km", ot.NewTag('K', 'H', 'M', ' ')},
	{"lo", ot.NewTag('L', 'A', 'O', ' ')},
	{"th", ot.NewTag('T', 'H', 'A', ' ')},
	{"my", ot.NewTag('B', 'R', 'M', ' ')},
	{"bo", ot.NewTag('T', 'I', 'B', ' ')},
	{"dz", ot.NewTag('D', 'Z', 'N', ' ')},
	{"ko", ot.NewTag('K', 'O', 'R', ' ')},
	{"ja", ot.NewTag('J', 'A', 'N', ' ')},
	{"zh", ot.NewTag('Z', 'H', 'S', ' ')},
	{"mn", ot.NewTag('M', 'N', 'G', ' ')},
	{"bug", ot.NewTag('B', 'U', 'G', ' ')},
	{"jv", ot.NewTag('J', 'A', 'V', ' ')},
	{"su", ot.NewTag('S', 'U', 'N', ' ')},
	{"ccp", ot.NewTag('C', 'P', 'P', ' ')},
	{"nqo", ot.NewTag('N', 'K', 'O', ' ')},
	{"chr", ot.NewTag('C', 'H', 'R', ' ')},
	{"vai", ot.NewTag('V', 'A', 'I', ' ')},
	{"sat", ot.NewTag('S', 'A', 'T', ' ')},
}

var (
	otLanguageIndexOnce sync.Once
	otLanguageIndex     map[string][]tables.Tag
)

func initOTLanguageIndex() {
	otLanguageIndex = make(map[string][]tables.Tag, len(otLanguages))
	for _, entry := range otLanguages {
		if entry.tag == 0 {
			continue
		}
		otLanguageIndex[entry.language] = append(otLanguageIndex[entry.language], entry.tag)
	}
}

func otLanguageTagsForPrimary(primary string) []tables.Tag {
	otLanguageIndexOnce.Do(initOTLanguageIndex)
	tags := otLanguageIndex[primary]
	if len(tags) == 0 {
		return nil
	}
	out := make([]tables.Tag, len(tags))
	copy(out, tags)
	return out
}
