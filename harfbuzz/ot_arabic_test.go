package harfbuzz

import (
	"testing"

	"github.com/go-text/typesetting/language"
)

func TestNumArabicLookup(t *testing.T) {
	if len(arabicFallbackFeatures) > arabicFallbackMaxLookups {
		t.Errorf("arabicFallbackFeatures has %d entries, exceeding arabicFallbackMaxLookups=%d",
			len(arabicFallbackFeatures), arabicFallbackMaxLookups)
	}
}

func TestHasArabicJoining(t *testing.T) {
	joining := []language.Script{
		language.Arabic, language.Syriac, language.Nko, language.Mongolian,
		language.Phags_Pa, language.Mandaic, language.Manichaean, language.Psalter_Pahlavi, language.Adlam,
	}
	for _, sc := range joining {
		if !hasArabicJoining(sc) {
			t.Errorf("expected %v to route through the cursive-joining shaper", sc)
		}
	}

	notJoining := []language.Script{language.Linear_A, language.Latin, language.Han, language.Thai}
	for _, sc := range notJoining {
		if hasArabicJoining(sc) {
			t.Errorf("did not expect %v to route through the cursive-joining shaper", sc)
		}
	}
}
