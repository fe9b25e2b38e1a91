package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugifyKeepsArabicText(t *testing.T) {
	assert.Equal(t, "سيارة-تويوتا-للبيع", Slugify("سيارة تويوتا للبيع"))
}

func TestSlugifyLowercasesLatinText(t *testing.T) {
	assert.Equal(t, "toyota-camry-2020", Slugify("Toyota Camry 2020"))
}

func TestSlugifyStripsMarkupAndSymbols(t *testing.T) {
	assert.Equal(t, "عرض-خاص", Slugify("<b>عرض</b> خاص!!"))
	assert.Equal(t, "a-b", Slugify("a & b"))
}

func TestSlugifyTruncatesLongTitles(t *testing.T) {
	slug := Slugify(strings.Repeat("شقة فاخرة ", 20))
	assert.LessOrEqual(t, len([]rune(slug)), 50)
	assert.False(t, strings.HasSuffix(slug, "-"))
}

func TestSlugifyFallsBackWhenEmpty(t *testing.T) {
	assert.Equal(t, "ad", Slugify(""))
	assert.Equal(t, "ad", Slugify("!!!???"))
}
