package pronunciation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTips(t *testing.T) {
	a := New()

	tips := a.Tips("tsu")
	assert.Contains(t, tips, "Touch tongue to roof of mouth")

	// "tsuki" hits both "tsu" and... nothing else; tips stay deduplicated.
	assert.Equal(t, a.Tips("tsu"), a.Tips("tsuki"))

	// No fragment of the table occurs in "xyz".
	assert.Equal(t, []string{
		"Listen to the audio carefully",
		"Practice slowly at first",
		"Record yourself and compare",
	}, a.Tips("xyz"))
}

func TestTipsDeduplicates(t *testing.T) {
	a := New()

	tips := a.Tips("rya ryu ryo")
	seen := make(map[string]int)
	for _, tip := range tips {
		seen[tip]++
	}
	for tip, count := range seen {
		assert.Equal(t, 1, count, "tip %q repeated", tip)
	}
}

func TestAssessDifficulty(t *testing.T) {
	a := New()

	assert.Equal(t, DifficultyHard, a.AssessDifficulty("rya"))
	assert.Equal(t, DifficultyHard, a.AssessDifficulty("tsuki"))
	assert.Equal(t, DifficultyMedium, a.AssessDifficulty("n"))
	assert.Equal(t, DifficultyMedium, a.AssessDifficulty("konnichiwa"))
	assert.Equal(t, DifficultyEasy, a.AssessDifficulty("sake"))
	assert.Equal(t, DifficultyEasy, a.AssessDifficulty(""))

	// Hard beats medium when both fragments are present.
	assert.Equal(t, DifficultyHard, a.AssessDifficulty("ryokan"))
}
