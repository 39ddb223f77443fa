package pronunciation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzePerfectMatch(t *testing.T) {
	a := New()

	result := a.Analyze("さくら", "sakura", "sakura", "vocabulary")
	require.NotNil(t, result)

	assert.Equal(t, 100, result.Accuracy)
	assert.Equal(t, 100, result.Fluency)
	assert.Equal(t, 100, result.Completeness)
	assert.Equal(t, 100, result.OverallScore)
}

func TestAnalyzeGreetingEndToEnd(t *testing.T) {
	a := New()

	result := a.Analyze("こんにちは", "konnichiwa", "konnichiwa", "greetings")

	assert.Equal(t, 100, result.Accuracy)
	assert.Equal(t, 100, result.Fluency)
	assert.Equal(t, 100, result.Completeness)
	assert.Equal(t, 100, result.OverallScore)
	assert.Contains(t, result.Strengths, "Clear pronunciation")
	assert.Equal(t, []string{
		"Listen to native speakers more",
		"Practice daily for better muscle memory",
	}, result.Improvements)
}

func TestAnalyzeEmptyRecognized(t *testing.T) {
	a := New()

	result := a.Analyze("つき", "", "tsuki", "vocabulary")

	assert.Equal(t, 0, result.Accuracy)
	assert.Equal(t, 0, result.Fluency)
	assert.Equal(t, 0, result.Completeness)
	assert.Equal(t, 0, result.OverallScore)
	assert.Contains(t, result.Feedback, "Try to pronounce the complete word - don't skip sounds.")
	assert.Equal(t, []string{"Good effort - keep practicing!"}, result.Strengths)
}

func TestAnalyzeTsuSubstitution(t *testing.T) {
	a := New()

	result := a.Analyze("つき", "suki", "tsuki", "difficult")

	// levenshtein("tsuki","suki") = 1, so the romaji similarity is 0.8.
	assert.Equal(t, 80, result.Accuracy)
	assert.Equal(t, 80, result.Fluency)
	assert.Equal(t, 80, result.Completeness)
	assert.Equal(t, 80, result.OverallScore)
	assert.Contains(t, result.Improvements, `Work on "tsu" sound - touch tongue to roof of mouth`)
}

func TestAnalyzeSpacePenalty(t *testing.T) {
	a := New()

	broken := a.Analyze("ありがとう", "ari gatou", "arigatou", "greetings")
	smooth := a.Analyze("ありがとう", "arigatou", "arigatou", "greetings")

	assert.Equal(t, 100, smooth.Fluency)
	assert.Equal(t, 80, broken.Fluency)
	// The space is stripped before similarity, so accuracy is unaffected.
	assert.Equal(t, smooth.Accuracy, broken.Accuracy)
}

func TestAnalyzeOverallIsWeightedSum(t *testing.T) {
	a := New()

	cases := []struct {
		target, recognized, romaji string
	}{
		{"こんにちは", "konichiwa", "konnichiwa"},
		{"りょこう", "ryoko", "ryokou"},
		{"はし", "hashi", "hashi"},
		{"つ", "su", "tsu"},
	}

	for _, tc := range cases {
		result := a.Analyze(tc.target, tc.recognized, tc.romaji, "vocabulary")

		expected := int(float64(result.Accuracy)*0.5 +
			float64(result.Fluency)*0.3 +
			float64(result.Completeness)*0.2 + 0.5)
		assert.Equal(t, expected, result.OverallScore, "target %q recognized %q", tc.target, tc.recognized)
		assert.GreaterOrEqual(t, result.OverallScore, 0)
		assert.LessOrEqual(t, result.OverallScore, 100)
	}
}

func TestAnalyzeFeedbackTiers(t *testing.T) {
	a := New()

	perfect := a.Analyze("あ", "a", "a", "vowels")
	require.NotEmpty(t, perfect.Feedback)
	assert.Equal(t, "🎉 Excellent pronunciation! You sound very natural.", perfect.Feedback[0])

	miss := a.Analyze("りょこう", "x", "ryokou", "vowels")
	require.NotEmpty(t, miss.Feedback)
	assert.Equal(t, "📚 Don't give up! Listen to the audio again and try slower.", miss.Feedback[0])
	assert.Contains(t, miss.Feedback, "Focus on mouth shape - Japanese vowels are very pure sounds.")
}

func TestAnalyzePitchCategory(t *testing.T) {
	a := New()

	result := a.Analyze("はし", "ha", "hashi", "pitch")

	assert.Contains(t, result.Improvements, "Focus on pitch patterns - practice with rising and falling tones")
}

func TestAnalyzeNeverFails(t *testing.T) {
	a := New()

	for _, tc := range []struct{ target, recognized, romaji, category string }{
		{"", "", "", ""},
		{"つ", "つ", "", "difficult"},
		{"!!!", "???", "...", "weird"},
	} {
		result := a.Analyze(tc.target, tc.recognized, tc.romaji, tc.category)
		require.NotNil(t, result)
		assert.NotEmpty(t, result.Feedback)
		assert.NotEmpty(t, result.Strengths)
		assert.NotEmpty(t, result.Improvements)
	}
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, similarity("sakura", "sakura"))
	assert.Equal(t, 0.0, similarity("", "sakura"))
	assert.Equal(t, 0.0, similarity("sakura", ""))
	assert.InDelta(t, 0.8, similarity("tsuki", "suki"), 1e-9)
	assert.Equal(t, 0.0, similarity("abc", "xyz"))
}
