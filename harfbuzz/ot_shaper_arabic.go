package harfbuzz

// ported in the style of ot_use.go/ot_indic.go (hb-ot-shape-complex-arabic.cc
// Copyright © 2010,2012 Google, Inc. Behdad Esfahbod), grounded further on
// the arabic joining state machine and STCH stretching as carried by
// _examples/npillmayer-opentype/harfbuzz/otarabic/arabic.go and the GSUB
// fallback synthesis of _examples/npillmayer-opentype/harfbuzz/ot_arabic_fallback.go.

import (
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/font/opentype/tables"
	"github.com/go-text/typesetting/language"
)

func featureIsSyriac(tag tables.Tag) bool {
	return '2' <= byte(tag) && byte(tag) <= '3'
}

var arabicFeatures = [...]tables.Tag{
	ot.NewTag('i', 's', 'o', 'l'),
	ot.NewTag('f', 'i', 'n', 'a'),
	ot.NewTag('f', 'i', 'n', '2'),
	ot.NewTag('f', 'i', 'n', '3'),
	ot.NewTag('m', 'e', 'd', 'i'),
	ot.NewTag('m', 'e', 'd', '2'),
	ot.NewTag('i', 'n', 'i', 't'),
}

// init, medi, fina and isol, followed by three rlig slots; consulted by
// the fallback-shaping pass when the font lacks these GSUB features.
var arabicFallbackFeatures = [...]tables.Tag{
	ot.NewTag('i', 'n', 'i', 't'),
	ot.NewTag('m', 'e', 'd', 'i'),
	ot.NewTag('f', 'i', 'n', 'a'),
	ot.NewTag('i', 's', 'o', 'l'),
	ot.NewTag('r', 'l', 'i', 'g'),
	ot.NewTag('r', 'l', 'i', 'g'),
	ot.NewTag('r', 'l', 'i', 'g'),
}

const arabicFallbackMaxLookups = len(arabicFallbackFeatures)

// same order as arabicFeatures; stored in GlyphInfo.complexAux to pick
// which of the above masks a glyph receives.
const (
	arabIsol = iota
	arabFina
	arabFin2
	araFin3
	arabMedi
	arabMed2
	arabInit

	arabNone

	arabStchFixed
	arabStchRepeating
)

var arabicStateTable = [...][numStateMachineCols]struct {
	prevAction uint8
	currAction uint8
	nextState  uint16
}{
	/*   jt_U,          jt_L,          jt_R,          jt_D,          jg_ALAPH,      jg_DALATH_RISH */

	// State 0: prev was U, not willing to join.
	{{arabNone, arabNone, 0}, {arabNone, arabIsol, 2}, {arabNone, arabIsol, 1}, {arabNone, arabIsol, 2}, {arabNone, arabIsol, 1}, {arabNone, arabIsol, 6}},

	// State 1: prev was R or ISOL/ALAPH, not willing to join.
	{{arabNone, arabNone, 0}, {arabNone, arabIsol, 2}, {arabNone, arabIsol, 1}, {arabNone, arabIsol, 2}, {arabNone, arabFin2, 5}, {arabNone, arabIsol, 6}},

	// State 2: prev was D/L in ISOL form, willing to join.
	{{arabNone, arabNone, 0}, {arabNone, arabIsol, 2}, {arabInit, arabFina, 1}, {arabInit, arabFina, 3}, {arabInit, arabFina, 4}, {arabInit, arabFina, 6}},

	// State 3: prev was D in FINA form, willing to join.
	{{arabNone, arabNone, 0}, {arabNone, arabIsol, 2}, {arabMedi, arabFina, 1}, {arabMedi, arabFina, 3}, {arabMedi, arabFina, 4}, {arabMedi, arabFina, 6}},

	// State 4: prev was FINA ALAPH, not willing to join.
	{{arabNone, arabNone, 0}, {arabNone, arabIsol, 2}, {arabMed2, arabIsol, 1}, {arabMed2, arabIsol, 2}, {arabMed2, arabFin2, 5}, {arabMed2, arabIsol, 6}},

	// State 5: prev was FIN2/FIN3 ALAPH, not willing to join.
	{{arabNone, arabNone, 0}, {arabNone, arabIsol, 2}, {arabIsol, arabIsol, 1}, {arabIsol, arabIsol, 2}, {arabIsol, arabFin2, 5}, {arabIsol, arabIsol, 6}},

	// State 6: prev was DALATH/RISH, not willing to join.
	{{arabNone, arabNone, 0}, {arabNone, arabIsol, 2}, {arabNone, arabIsol, 1}, {arabNone, arabIsol, 2}, {arabNone, araFin3, 5}, {arabNone, arabIsol, 6}},
}

// hasArabicJoining reports whether script uses the cursive joining
// state machine above: Arabic, Syriac, Mongolian, N'Ko, Phags-Pa,
// Mandaic, Manichaean, Psalter Pahlavi and Adlam. Other joining scripts
// (Hanifi Rohingya, Sogdian, Old Sogdian, Chorasmian, Yezidi) are not
// included and report false.
func hasArabicJoining(script language.Script) bool {
	switch script {
	case language.Arabic, language.Syriac, language.Nko, language.Mongolian,
		language.Phags_Pa, language.Mandaic, language.Manichaean,
		language.Psalter_Pahlavi, language.Adlam:
		return true
	}
	return false
}

func getJoiningType(u rune, genCat generalCategory) uint8 {
	if group, ok := joiningGroup(u); ok {
		switch group {
		case ajAlaph:
			return joiningGroupAlaph
		case ajDalathRish:
			return joiningGroupDalathRish
		}
	}
	if jType, ok := arabicJoinings[u]; ok {
		switch jType {
		case ajU:
			return joiningTypeU
		case ajL:
			return joiningTypeL
		case ajR:
			return joiningTypeR
		case ajD:
			return joiningTypeD
		case ajT:
			return joiningTypeT
		case ajC:
			return joiningTypeC
		}
	}

	const mask = 1<<nonSpacingMark | 1<<enclosingMark | 1<<format
	if 1<<genCat&mask != 0 {
		return joiningTypeT
	}
	return joiningTypeU
}

// arabicShapePlan carries the per-shape-plan masks and fallback state
// the Arabic shaper needs, mirroring arabic_shape_plan_t.
type arabicShapePlan struct {
	fallbackPlan *arabicFallbackPlan

	// the +1 slot is for arabNone, which is not an OT feature.
	maskArray         [len(arabicFeatures) + 1]GlyphMask
	fallbackMaskArray [arabicFallbackMaxLookups]GlyphMask

	doFallback bool
	hasStch    bool
}

func newArabicPlan(plan *otShapePlan) arabicShapePlan {
	var arabicPlan arabicShapePlan

	arabicPlan.doFallback = plan.props.Script == language.Arabic
	arabicPlan.hasStch = plan.map_.getMask1(ot.NewTag('s', 't', 'c', 'h')) != 0
	for i, arabFeat := range arabicFeatures {
		arabicPlan.maskArray[i] = plan.map_.getMask1(arabFeat)
		arabicPlan.doFallback = arabicPlan.doFallback &&
			(featureIsSyriac(arabFeat) || plan.map_.needsFallback(arabFeat))
	}
	for i, fallbackFeat := range arabicFallbackFeatures {
		arabicPlan.fallbackMaskArray[i] = plan.map_.getMask1(fallbackFeat)
	}
	return arabicPlan
}

func applyArabicJoining(buffer *Buffer) {
	info := buffer.Info
	prev, state := -1, uint16(0)

	for i := range info {
		thisType := getJoiningType(info[i].codepoint, info[i].unicode.generalCategory())

		if thisType == joiningTypeT {
			info[i].complexAux = arabNone
			continue
		}

		entry := &arabicStateTable[state][thisType]

		if entry.prevAction != arabNone && prev != -1 {
			info[prev].complexAux = entry.prevAction
		} else if prev == -1 {
			if thisType >= joiningTypeR {
				buffer.unsafeToConcatFromOutbuffer(0, i+1)
			}
		} else if thisType >= joiningTypeR || (2 <= state && state <= 5) {
			buffer.unsafeToConcat(prev, i+1)
		}

		info[i].complexAux = entry.currAction
		prev = i
		state = entry.nextState
	}
}

func mongolianVariationSelectors(buffer *Buffer) {
	info := buffer.Info
	for i := 1; i < len(info); i++ {
		if cp := info[i].codepoint; 0x180B <= cp && cp <= 0x180D || cp == 0x180F {
			info[i].complexAux = info[i-1].complexAux
		}
	}
}

func (arabicPlan *arabicShapePlan) setupMasks(buffer *Buffer, script language.Script) {
	applyArabicJoining(buffer)
	if script == language.Mongolian {
		mongolianVariationSelectors(buffer)
	}

	info := buffer.Info
	for i := range info {
		info[i].Mask |= arabicPlan.maskArray[info[i].complexAux]
	}
}

func inArabicStchRange(sa uint8) bool {
	return arabStchFixed <= sa && sa <= arabStchRepeating
}

var modifierCombiningMarks = [...]rune{
	0x0654, 0x0655, 0x0658, 0x06DC, 0x06E3, 0x06E7, 0x06E8,
	0x08CA, 0x08CB, 0x08CD, 0x08CE, 0x08CF, 0x08D3, 0x08F3,
}

func isModifierCombiningMark(u rune) bool {
	for _, m := range modifierCombiningMarks {
		if u == m {
			return true
		}
	}
	return false
}

// complexShaperArabic implements otComplexShaper for Arabic-joining
// scripts: cursive joining masks, GSUB-feature-missing fallback shaping
// via synthesized single/ligature substitutions, STCH (Syriac Abbreviation
// Mark) stretching, and combining-mark reordering around the modifier
// marks that must stay adjacent to their base.
type complexShaperArabic struct {
	complexShaperNil

	plan arabicShapePlan
}

var _ otComplexShaper = (*complexShaperArabic)(nil)

func newComplexShaperArabic() otComplexShaper {
	return &complexShaperArabic{}
}

func (cs *complexShaperArabic) collectFeatures(plan *otShapePlanner) {
	map_ := &plan.map_

	map_.enableFeature(ot.NewTag('s', 't', 'c', 'h'))
	map_.addGSUBPause(cs.recordStchPause)

	map_.enableFeatureExt(ot.NewTag('c', 'c', 'm', 'p'), ffManualZWJ, 1)
	map_.enableFeatureExt(ot.NewTag('l', 'o', 'c', 'l'), ffManualZWJ, 1)

	map_.addGSUBPause(nil)

	for _, arabFeat := range arabicFeatures {
		hasFallback := plan.props.Script == language.Arabic && !featureIsSyriac(arabFeat)
		fl := ffNone
		if hasFallback {
			fl = ffHasFallback
		}
		map_.addFeatureExt(arabFeat, ffManualZWJ|fl, 1)
		map_.addGSUBPause(nil)
	}

	map_.enableFeatureExt(ot.NewTag('r', 'l', 'i', 'g'), ffManualZWJ|ffHasFallback, 1)

	if plan.props.Script == language.Arabic {
		map_.addGSUBPause(cs.arabicFallbackShapePause)
	}

	map_.enableFeatureExt(ot.NewTag('c', 'a', 'l', 't'), ffManualZWJ, 1)
	map_.addGSUBPause(nil)
	map_.enableFeatureExt(ot.NewTag('r', 'c', 'l', 't'), ffManualZWJ, 1)

	map_.enableFeatureExt(ot.NewTag('l', 'i', 'g', 'a'), ffManualZWJ, 1)
	map_.enableFeatureExt(ot.NewTag('c', 'l', 'i', 'g'), ffManualZWJ, 1)

	// the spec neither requires nor forbids mset; HarfBuzz enables it
	// for Arabic so mark-positioning GSUB variants used by some Nastaliq
	// fonts still run.
	map_.enableFeatureExt(ot.NewTag('m', 's', 'e', 't'), ffManualZWJ, 1)
}

func (cs *complexShaperArabic) overrideFeatures(plan *otShapePlanner) {
	// for Kashida justification, see HarfBuzz's note on disabling 'liga'
	// in the default LTR direction; this package does not implement
	// inter-word justification so no override is required here.
}

func (cs *complexShaperArabic) dataCreate(plan *otShapePlan) {
	cs.plan = newArabicPlan(plan)
}

func (cs *complexShaperArabic) setupMasks(plan *otShapePlan, buffer *Buffer, _ *Font) {
	cs.plan.setupMasks(buffer, plan.props.Script)
}

func (cs *complexShaperArabic) arabicFallbackShapePause(plan *otShapePlan, font *Font, buffer *Buffer) bool {
	if !cs.plan.doFallback {
		return false
	}

	if cs.plan.fallbackPlan == nil {
		cs.plan.fallbackPlan = newArabicFallbackPlan(cs.plan.fallbackMaskArray, font)
	}
	cs.plan.fallbackPlan.shape(font, buffer)
	return true
}

func (cs *complexShaperArabic) recordStchPause(plan *otShapePlan, font *Font, buffer *Buffer) bool {
	if !cs.plan.hasStch {
		return false
	}

	info := buffer.Info
	for i := range info {
		if info[i].multiplied() {
			comp := info[i].getLigComp()
			if comp%2 != 0 {
				info[i].complexAux = arabStchRepeating
			} else {
				info[i].complexAux = arabStchFixed
			}
		}
	}
	return false
}

// postprocessGlyphs implements the STCH (stretching) pass: glyphs
// previously marked arabStchFixed/arabStchRepeating by recordStchPause
// get duplicated so the repeating glyphs fill the horizontal space the
// run's context implies, matching hb-ot-shape-complex-arabic.cc's
// postprocess_glyphs.
func (cs *complexShaperArabic) postprocessGlyphs(plan *otShapePlan, buffer *Buffer, font *Font) {
	hasStch := false
	for i := range buffer.Info {
		if inArabicStchRange(buffer.Info[i].complexAux) {
			hasStch = true
			break
		}
	}
	if !hasStch {
		return
	}

	sign := Position(1)
	if font.XScale < 0 {
		sign = -1
	}

	const (
		measure = iota
		cut
	)

	originCount := len(buffer.Info)
	extraGlyphsNeeded := 0

	for step := measure; step <= cut; step++ {
		info := buffer.Info
		pos := buffer.Pos
		j := len(info)

		for i := originCount; i != 0; i-- {
			if sa := info[i-1].complexAux; !inArabicStchRange(sa) {
				if step == cut {
					j--
					info[j] = info[i-1]
					pos[j] = pos[i-1]
				}
				continue
			}

			var (
				wTotal, wFixed, wRepeating Position
				nFixed, nRepeating         int
			)
			end := i
			for i != 0 && inArabicStchRange(info[i-1].complexAux) {
				i--
				width := font.GlyphHAdvance(info[i].Glyph)
				if info[i].complexAux == arabStchFixed {
					wFixed += width
					nFixed++
				} else {
					wRepeating += width
					nRepeating++
				}
			}
			start := i

			context := i
			for context != 0 && !inArabicStchRange(info[context-1].complexAux) &&
				(info[context-1].isDefaultIgnorable() || isArabicWord(info[context-1].unicode.generalCategory())) {
				context--
				wTotal += pos[context].XAdvance
			}

			var nCopies int
			wRemaining := wTotal - wFixed
			if sign*wRemaining > sign*wRepeating && sign*wRepeating > 0 {
				nCopies = int(sign*wRemaining/(sign*wRepeating) - 1)
			}

			var extraRepeatOverlap Position
			shortfall := sign*wRemaining - sign*wRepeating*(Position(nCopies)+1)
			if shortfall > 0 && nRepeating > 0 {
				nCopies++
				excess := (Position(nCopies)+1)*sign*wRepeating - sign*wRemaining
				if excess > 0 {
					extraRepeatOverlap = excess / Position(nCopies*nRepeating)
				}
			}

			if step == measure {
				extraGlyphsNeeded += nCopies * nRepeating
			} else {
				buffer.unsafeToBreak(context, end)
				var xOffset Position
				for k := end; k > start; k-- {
					width := font.GlyphHAdvance(info[k-1].Glyph)

					repeat := 1
					if info[k-1].complexAux == arabStchRepeating {
						repeat += nCopies
					}

					for n := 0; n < repeat; n++ {
						xOffset -= width
						if n > 0 {
							xOffset += extraRepeatOverlap
						}
						pos[k-1].XOffset = xOffset
						j--
						info[j] = info[k-1]
						pos[j] = pos[k-1]
					}
				}
			}
		}

		if step == measure {
			buffer.Info = append(buffer.Info, make([]GlyphInfo, extraGlyphsNeeded)...)
			buffer.Pos = append(buffer.Pos, make([]GlyphPosition, extraGlyphsNeeded)...)
		}
	}
}

// isArabicWord reports whether genCat belongs to a category HarfBuzz's
// Arabic STCH context-extension treats as "part of the word" (letters,
// marks, numbers and currency/math/other symbols), mirroring
// hb-ot-shape-complex-arabic.cc's IS_WORD macro.
func isArabicWord(genCat generalCategory) bool {
	switch genCat {
	case genCatUnassigned, genCatPrivateUse,
		genCatModifierLetter, genCatOtherLetter,
		spacingMark, enclosingMark, nonSpacingMark,
		decimalNumber, genCatLetterNumber, genCatOtherNumber,
		genCatCurrencySymbol, genCatModifierSymbol, genCatMathSymbol, genCatOtherSymbol:
		return true
	}
	return false
}

func (cs *complexShaperArabic) reorderMarks(plan *otShapePlan, buffer *Buffer, start, end int) {
	info := buffer.Info

	i := start
	for cc := uint8(220); cc <= 230; cc += 10 {
		for i < end && info[i].getModifiedCombiningClass() < cc {
			i++
		}
		if i == end {
			break
		}
		if info[i].getModifiedCombiningClass() > cc {
			continue
		}

		j := i
		for j < end && info[j].getModifiedCombiningClass() == cc && isModifierCombiningMark(info[j].codepoint) {
			j++
		}
		if i == j {
			continue
		}

		temp := make([]GlyphInfo, j-i)
		buffer.mergeClusters(start, j)
		copy(temp, info[i:j])
		copy(info[start+j-i:], info[start:i])
		copy(info[start:], temp)

		newStart := start + j - i
		newCc := uint8(220)
		for start < newStart {
			info[start].setModifiedCombiningClass(newCc)
			start++
		}

		i = j
	}
}

func (cs *complexShaperArabic) marksBehavior() (zeroWidthMarks, bool) {
	return zeroWidthMarksNone, false
}

func (cs *complexShaperArabic) normalizationPreference() normalizationMode {
	return nmComposedDiacriticsNoShortCircuit
}
