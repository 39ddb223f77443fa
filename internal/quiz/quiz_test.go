package quiz

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/kanabot/pkg/models"
)

func quizPool() []models.Character {
	return []models.Character{
		{ID: 1, Script: models.ScriptHiragana, Glyph: "あ", Romaji: "a", Meaning: "", Category: "vowels"},
		{ID: 2, Script: models.ScriptHiragana, Glyph: "い", Romaji: "i", Meaning: "", Category: "vowels"},
		{ID: 3, Script: models.ScriptHiragana, Glyph: "う", Romaji: "u", Meaning: "", Category: "vowels"},
		{ID: 4, Script: models.ScriptHiragana, Glyph: "か", Romaji: "ka", Meaning: "", Category: "k-sounds"},
		{ID: 5, Script: models.ScriptHiragana, Glyph: "き", Romaji: "ki", Meaning: "", Category: "k-sounds"},
		{ID: 6, Script: models.ScriptKanji, Glyph: "水", Romaji: "mizu", Meaning: "water", Category: "nature"},
		{ID: 7, Script: models.ScriptKanji, Glyph: "火", Romaji: "hi", Meaning: "fire", Category: "nature"},
		{ID: 8, Script: models.ScriptKanji, Glyph: "山", Romaji: "yama", Meaning: "mountain", Category: "nature"},
	}
}

func TestBuildQuestionsGlyphToRomaji(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	questions, err := buildQuestions(rnd, quizPool(), 5, GlyphToRomaji)
	require.NoError(t, err)
	assert.Len(t, questions, 5)

	for _, q := range questions {
		assert.Equal(t, q.Character.Glyph, q.Prompt)
		require.True(t, q.CorrectIndex >= 0 && q.CorrectIndex < len(q.Options))
		assert.Equal(t, q.Character.Romaji, q.Options[q.CorrectIndex])

		// Options must be unique
		seen := make(map[string]bool)
		for _, opt := range q.Options {
			assert.False(t, seen[opt], "duplicate option %q", opt)
			seen[opt] = true
		}
	}
}

func TestBuildQuestionsRomajiToGlyph(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	questions, err := buildQuestions(rnd, quizPool(), 3, RomajiToGlyph)
	require.NoError(t, err)

	for _, q := range questions {
		assert.Equal(t, q.Character.Romaji, q.Prompt)
		assert.Equal(t, q.Character.Glyph, q.Options[q.CorrectIndex])
	}
}

func TestBuildQuestionsGlyphToMeaning(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	questions, err := buildQuestions(rnd, quizPool(), 10, GlyphToMeaning)
	require.NoError(t, err)

	// Only the three kanji carry meanings
	assert.Len(t, questions, 3)
	for _, q := range questions {
		assert.NotEmpty(t, q.Character.Meaning)
		assert.Equal(t, q.Character.Meaning, q.Options[q.CorrectIndex])
	}
}

func TestBuildQuestionsCountCapped(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	questions, err := buildQuestions(rnd, quizPool(), 100, GlyphToRomaji)
	require.NoError(t, err)
	assert.Len(t, questions, len(quizPool()))
}

func TestBuildQuestionsTooFewCharacters(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	_, err := buildQuestions(rnd, quizPool()[:1], 5, GlyphToRomaji)
	assert.Error(t, err)
}

func TestGrade(t *testing.T) {
	question := Question{
		Options:      []string{"a", "i", "u", "ka"},
		CorrectIndex: 2,
	}
	assert.True(t, Grade(question, 2))
	assert.False(t, Grade(question, 0))
	assert.False(t, Grade(question, -1))
}

func TestDistractorsPreferSameCategory(t *testing.T) {
	pool := quizPool()
	target := pool[0] // あ, vowels

	rnd := rand.New(rand.NewSource(9))
	options := distractors(rnd, target, pool, GlyphToRomaji, 2)
	require.Len(t, options, 2)

	// With two other vowels available, both distractors come from vowels
	assert.ElementsMatch(t, []string{"i", "u"}, options)
}
