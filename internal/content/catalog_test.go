package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/kanabot/pkg/models"
)

func TestCatalogComplete(t *testing.T) {
	byScript := make(map[models.Script]int)
	for _, c := range Catalog() {
		byScript[c.Script]++
	}

	assert.Equal(t, 46, byScript[models.ScriptHiragana])
	assert.Equal(t, 46, byScript[models.ScriptKatakana])
	assert.Equal(t, 30, byScript[models.ScriptKanji])
	assert.Equal(t, 12, byScript[models.ScriptWord])
}

func TestCatalogEntriesWellFormed(t *testing.T) {
	for _, c := range Catalog() {
		require.NotEmpty(t, c.Glyph)
		require.NotEmpty(t, c.Romaji, "glyph %s", c.Glyph)
		require.NotEmpty(t, c.Category, "glyph %s", c.Glyph)
		assert.GreaterOrEqual(t, c.Difficulty, 0, "glyph %s", c.Glyph)
		assert.LessOrEqual(t, c.Difficulty, 5, "glyph %s", c.Glyph)
	}
}

func TestItemIDUnique(t *testing.T) {
	seen := make(map[string]string)
	for _, c := range Catalog() {
		entry := c
		id := ItemID(&entry)
		if prev, ok := seen[id]; ok {
			t.Fatalf("item id %s shared by %s and %s", id, prev, c.Glyph)
		}
		seen[id] = c.Glyph
	}
}

func TestParseItemIDRoundTrip(t *testing.T) {
	c := models.Character{Script: models.ScriptHiragana, Glyph: "つ", Romaji: "tsu"}
	script, romaji, err := ParseItemID(ItemID(&c))
	require.NoError(t, err)
	assert.Equal(t, models.ScriptHiragana, script)
	assert.Equal(t, "tsu", romaji)

	_, _, err = ParseItemID("garbage")
	assert.Error(t, err)

	_, _, err = ParseItemID("")
	assert.Error(t, err)
}

func TestWordCatalogCoversFeedbackCategories(t *testing.T) {
	categories := make(map[string]bool)
	for _, c := range wordCatalog {
		categories[c.Category] = true
	}

	// The analyzer has category-specific hints for these three.
	for _, want := range []string{"vowels", "difficult", "pitch"} {
		assert.True(t, categories[want], "missing category %s", want)
	}
}
