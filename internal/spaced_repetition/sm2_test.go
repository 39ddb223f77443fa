package spaced_repetition

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/kanabot/pkg/models"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func TestNewItemDefaults(t *testing.T) {
	s := New()

	item := s.NewItem(42, "hiragana_tsu", 3, testNow)

	assert.Equal(t, 1, item.Interval)
	assert.Equal(t, 0, item.Repetitions)
	assert.Equal(t, DefaultEaseFactor, item.EaseFactor)
	assert.Equal(t, 0, item.CorrectCount)
	assert.Equal(t, 0, item.IncorrectCount)
}

func TestNewItemClampsDifficulty(t *testing.T) {
	s := New()

	assert.Equal(t, 0, s.NewItem(1, "a", -3, testNow).Difficulty)
	assert.Equal(t, 5, s.NewItem(1, "a", 9, testNow).Difficulty)
	assert.Equal(t, 2, s.NewItem(1, "a", 2, testNow).Difficulty)
}

func TestReviewIncorrectResets(t *testing.T) {
	s := New()
	item := &models.SpacedRepetitionItem{
		ItemID:      "kanji_moon",
		Difficulty:  3,
		Interval:    15,
		Repetitions: 4,
		EaseFactor:  2.5,
	}

	s.Review(item, false, testNow)

	assert.Equal(t, 1, item.Interval)
	assert.Equal(t, 0, item.Repetitions)
	assert.InDelta(t, 2.3, item.EaseFactor, 1e-9)
	assert.Equal(t, 1, item.IncorrectCount)
	assert.Equal(t, 0, item.CorrectCount)
	assert.Equal(t, testNow, item.LastReviewDate)
	assert.Equal(t, testNow.AddDate(0, 0, 1), item.NextReviewDate)
}

func TestReviewFreshItemIncorrect(t *testing.T) {
	s := New()
	item := s.NewItem(1, "w1", 3, testNow)

	s.Review(item, false, testNow)

	assert.Equal(t, 1, item.Interval)
	assert.Equal(t, 0, item.Repetitions)
	assert.InDelta(t, 2.3, item.EaseFactor, 1e-9)
	assert.Equal(t, 1, item.IncorrectCount)
}

func TestReviewCorrectGrowsInterval(t *testing.T) {
	s := New()
	item := &models.SpacedRepetitionItem{
		ItemID:     "w2",
		Difficulty: 2,
		Interval:   6,
		EaseFactor: 2.5,
	}

	s.Review(item, true, testNow)

	// delta = 0.1 - 3*(0.08 + 3*0.02) = -0.32
	assert.InDelta(t, 2.18, item.EaseFactor, 1e-9)
	assert.Equal(t, 13, item.Interval) // round(6 * 2.18)
	assert.Greater(t, item.Interval, 6)
	assert.Equal(t, 1, item.Repetitions)
	assert.Equal(t, 1, item.CorrectCount)
	assert.Equal(t, testNow.AddDate(0, 0, 13), item.NextReviewDate)
}

func TestReviewEaseDeltaByDifficulty(t *testing.T) {
	s := New()

	// Difficulty 5 gives the full +0.1 bonus, lower difficulties less.
	easy := &models.SpacedRepetitionItem{Difficulty: 5, Interval: 1, EaseFactor: 2.5}
	s.Review(easy, true, testNow)
	assert.InDelta(t, 2.6, easy.EaseFactor, 1e-9)

	hard := &models.SpacedRepetitionItem{Difficulty: 0, Interval: 1, EaseFactor: 2.5}
	s.Review(hard, true, testNow)
	// delta = 0.1 - 5*(0.08 + 5*0.02) = -0.8
	assert.InDelta(t, 1.7, hard.EaseFactor, 1e-9)
}

func TestEaseFactorNeverBelowFloor(t *testing.T) {
	s := New()
	item := &models.SpacedRepetitionItem{Difficulty: 0, Interval: 1, EaseFactor: DefaultEaseFactor}

	for i := 0; i < 20; i++ {
		s.Review(item, i%2 == 0, testNow)
		assert.GreaterOrEqual(t, item.EaseFactor, MinEaseFactor)
		assert.GreaterOrEqual(t, item.Interval, 1)
	}
}

func TestReviewLongCorrectStreak(t *testing.T) {
	s := New()
	item := s.NewItem(7, "w3", 4, testNow)

	last := item.Interval
	for i := 0; i < 6; i++ {
		s.Review(item, true, testNow.AddDate(0, 0, i))
		require.GreaterOrEqual(t, item.Interval, last)
		last = item.Interval
	}
	assert.Equal(t, 6, item.Repetitions)
	assert.Equal(t, 6, item.CorrectCount)
}

func TestDueItemsOrdering(t *testing.T) {
	s := New()

	items := []models.SpacedRepetitionItem{
		{ItemID: "seen_easy", Repetitions: 3, EaseFactor: 2.5, NextReviewDate: testNow.AddDate(0, 0, -1)},
		{ItemID: "fresh", Repetitions: 0, EaseFactor: 2.5, NextReviewDate: testNow.AddDate(0, 0, -2)},
		{ItemID: "seen_hard", Repetitions: 2, EaseFactor: 1.4, NextReviewDate: testNow.AddDate(0, 0, -3)},
		{ItemID: "future", Repetitions: 1, EaseFactor: 2.5, NextReviewDate: testNow.AddDate(0, 0, 3)},
	}

	due := s.DueItems(items, testNow, 0)

	require.Len(t, due, 3)
	assert.Equal(t, "fresh", due[0].ItemID)
	assert.Equal(t, "seen_hard", due[1].ItemID)
	assert.Equal(t, "seen_easy", due[2].ItemID)
}

func TestDueItemsLimit(t *testing.T) {
	s := New()

	var items []models.SpacedRepetitionItem
	for i := 0; i < 10; i++ {
		items = append(items, models.SpacedRepetitionItem{
			EaseFactor:     2.5,
			NextReviewDate: testNow.AddDate(0, 0, -1),
		})
	}

	assert.Len(t, s.DueItems(items, testNow, 4), 4)
	assert.Len(t, s.DueItems(items, testNow, 0), 10)
}

func TestIsMastered(t *testing.T) {
	s := New()

	assert.False(t, s.IsMastered(&models.SpacedRepetitionItem{}))
	assert.False(t, s.IsMastered(&models.SpacedRepetitionItem{
		Repetitions: 6, Interval: 10, CorrectCount: 10,
	}))
	assert.True(t, s.IsMastered(&models.SpacedRepetitionItem{
		Repetitions: 6, Interval: 45, CorrectCount: 19, IncorrectCount: 1,
	}))
	assert.False(t, s.IsMastered(&models.SpacedRepetitionItem{
		Repetitions: 6, Interval: 45, CorrectCount: 10, IncorrectCount: 5,
	}))
}
