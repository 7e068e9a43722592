package harfbuzz

import (
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype/tables"
)

// Script/language/feature selection over a GSUB or GPOS table's Layout,
// ported from hb-ot-layout.cc's hb_ot_layout_table_select_script /
// _select_language / _find_feature family: tagList is probed in order
// (most specific OpenType script/language tag first, 'DFLT'/'dflt'
// last) and the first one the font actually lists wins.

// selectScript looks up the first tag in scriptTags present in layout's
// script list, falling back to 'DFLT' and then to script index 0 (the
// first script the font lists, the same leniency HarfBuzz applies for
// badly-authored fonts) if none match.
func selectScript(layout *font.Layout, scriptTags []tables.Tag) (index int, chosenTag tables.Tag, found bool) {
	if layout == nil {
		return NoScriptIndex, 0, false
	}
	for _, tag := range scriptTags {
		if i := scriptIndexForTag(layout, tag); i != NoScriptIndex {
			return i, tag, true
		}
	}
	if i := scriptIndexForTag(layout, tagDefaultScript); i != NoScriptIndex {
		return i, tagDefaultScript, false
	}
	if len(layout.Scripts) != 0 {
		return 0, layout.Scripts[0].Tag, false
	}
	return NoScriptIndex, 0, false
}

func scriptIndexForTag(layout *font.Layout, tag tables.Tag) int {
	for i, sc := range layout.Scripts {
		if sc.Tag == tag {
			return i
		}
	}
	return NoScriptIndex
}

// selectLanguage looks up the first tag in languageTags present in the
// chosen script's language-system list, falling back to the script's
// default language system (DefaultLanguageIndex) if none match or
// scriptIndex is itself invalid.
func selectLanguage(layout *font.Layout, scriptIndex int, languageTags []tables.Tag) (int, bool) {
	if layout == nil || scriptIndex == NoScriptIndex || scriptIndex >= len(layout.Scripts) {
		return DefaultLanguageIndex, false
	}
	script := layout.Scripts[scriptIndex]
	for _, tag := range languageTags {
		for i, lang := range script.Languages {
			if lang.Tag == tag {
				return i, true
			}
		}
	}
	return DefaultLanguageIndex, false
}

// languageSysForIndices resolves (scriptIndex, languageIndex) from a
// Layout down to the concrete font.Language record, or nil if either
// index selects the script's implicit default language system (which
// carries no explicit feature-index list of its own in some fonts).
func languageSysForIndices(layout *font.Layout, scriptIndex, languageIndex int) *font.Language {
	if layout == nil || scriptIndex == NoScriptIndex || scriptIndex >= len(layout.Scripts) {
		return nil
	}
	script := &layout.Scripts[scriptIndex]
	if languageIndex == DefaultLanguageIndex || languageIndex < 0 {
		return script.DefaultLanguage
	}
	if languageIndex >= len(script.Languages) {
		return script.DefaultLanguage
	}
	return &script.Languages[languageIndex]
}

// getRequiredFeature returns the required-feature index/tag for
// (scriptIndex, languageIndex), i.e. the single feature (if any) the
// language system mandates applying regardless of user-requested
// features, such as 'rvrn' for palette-variant fonts.
func getRequiredFeature(layout *font.Layout, scriptIndex, languageIndex int) (uint16, tables.Tag) {
	lang := languageSysForIndices(layout, scriptIndex, languageIndex)
	if lang == nil || lang.RequiredFeatureIndex == NoFeatureIndex {
		return NoFeatureIndex, 0
	}
	if int(lang.RequiredFeatureIndex) >= len(layout.Features) {
		return NoFeatureIndex, 0
	}
	return lang.RequiredFeatureIndex, layout.Features[lang.RequiredFeatureIndex].Tag
}

// findFeatureForLang returns the feature index of tag within the
// feature list referenced by (scriptIndex, languageIndex), or
// NoFeatureIndex if that language system does not reference it.
func findFeatureForLang(layout *font.Layout, scriptIndex, languageIndex int, tag tables.Tag) uint16 {
	lang := languageSysForIndices(layout, scriptIndex, languageIndex)
	if lang == nil {
		return NoFeatureIndex
	}
	for _, fi := range lang.Features {
		if int(fi) < len(layout.Features) && layout.Features[fi].Tag == tag {
			return fi
		}
	}
	return NoFeatureIndex
}

// findFeature searches the table's whole feature list (not just the
// ones a particular language system references) for tag, used for
// 'GlobalSearch' features that may be registered outside the selected
// script/language (e.g. numeral-variant features on fonts with
// incomplete language-system coverage).
func findFeature(layout *font.Layout, tag tables.Tag) uint16 {
	if layout == nil {
		return NoFeatureIndex
	}
	for i, feat := range layout.Features {
		if feat.Tag == tag {
			return uint16(i)
		}
	}
	return NoFeatureIndex
}

// getFeatureLookupsWithVar returns the lookup indices featureIndex's
// feature record references, matching hb_ot_layout_table_get_feature_
// lookups_with_var minus the variations substitution: a variable font
// can swap a feature's lookup list for an alternate one selected by the
// current design-space coordinates (FeatureVariations). Since
// shape.go's Shape now resolves a real variationsIndex per call via
// FindVariationIndex(font's coords), variationsIndex here is no longer
// always the sentinel — but the substitution record itself (mapping a
// feature index to its alternate Lookups for that index) isn't parsed
// out of go-text/typesetting's font.Layout anywhere in this package
// yet, so the feature's own Lookups list is still always what gets
// returned; a variable-font shape call resolves the right
// FeatureVariations *record* but not yet the substituted lookup list.
func getFeatureLookupsWithVar(layout *font.Layout, featureIndex uint16, variationsIndex int) []uint16 {
	if layout == nil || featureIndex == NoFeatureIndex || int(featureIndex) >= len(layout.Features) {
		return nil
	}
	return layout.Features[featureIndex].Lookups
}
