package spaced_repetition

import (
	"math"
	"sort"
	"time"

	"github.com/example/kanabot/pkg/models"
)

const (
	// DefaultEaseFactor is the SM-2 starting ease for a fresh item.
	DefaultEaseFactor = 2.5
	// MinEaseFactor is the floor that keeps intervals from collapsing for
	// persistently difficult items.
	MinEaseFactor = 1.3
)

// Scheduler implements the SM-2 family algorithm over review records. It is
// stateless; a single instance serves all users.
type Scheduler struct {
	// Mastery thresholds used by IsMastered
	MasteryRepetitions int
	MasteryInterval    int
	MasteryAccuracy    float64
}

// New creates a scheduler with default settings
func New() *Scheduler {
	return &Scheduler{
		MasteryRepetitions: 5,
		MasteryInterval:    30,
		MasteryAccuracy:    0.9,
	}
}

// NewItem initializes a fresh review record for a catalog item. Difficulty is
// clamped to [0,5] here because Review itself never validates it.
func (s *Scheduler) NewItem(userID int64, itemID string, difficulty int, now time.Time) *models.SpacedRepetitionItem {
	if difficulty < 0 {
		difficulty = 0
	}
	if difficulty > 5 {
		difficulty = 5
	}
	return &models.SpacedRepetitionItem{
		UserID:         userID,
		ItemID:         itemID,
		Difficulty:     difficulty,
		Interval:       1,
		Repetitions:    0,
		EaseFactor:     DefaultEaseFactor,
		NextReviewDate: now,
		LastReviewDate: now,
	}
}

// Review applies one review outcome to the record and schedules the next one.
//
// A correct answer compounds the interval by the ease factor; an incorrect
// answer resets the item to daily review and drops the consecutive-correct
// counter back to zero. The ease factor never goes below MinEaseFactor.
func (s *Scheduler) Review(item *models.SpacedRepetitionItem, isCorrect bool, now time.Time) {
	item.Repetitions++
	item.LastReviewDate = now

	if isCorrect {
		item.CorrectCount++
		delta := 0.1 - float64(5-item.Difficulty)*(0.08+float64(5-item.Difficulty)*0.02)
		item.EaseFactor = math.Max(MinEaseFactor, item.EaseFactor+delta)
		item.Interval = int(math.Round(float64(item.Interval) * item.EaseFactor))
	} else {
		item.IncorrectCount++
		item.EaseFactor = math.Max(MinEaseFactor, item.EaseFactor-0.2)
		item.Interval = 1
		item.Repetitions = 0
	}

	item.NextReviewDate = now.AddDate(0, 0, item.Interval)
}

// DueItems returns up to limit records due at the given time, hardest first:
// never-reviewed items, then lowest ease factor, then earliest due date.
func (s *Scheduler) DueItems(items []models.SpacedRepetitionItem, now time.Time, limit int) []models.SpacedRepetitionItem {
	var due []models.SpacedRepetitionItem
	for _, item := range items {
		if !item.NextReviewDate.After(now) {
			due = append(due, item)
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		if (due[i].Repetitions == 0) != (due[j].Repetitions == 0) {
			return due[i].Repetitions == 0
		}
		if due[i].EaseFactor != due[j].EaseFactor {
			return due[i].EaseFactor < due[j].EaseFactor
		}
		return due[i].NextReviewDate.Before(due[j].NextReviewDate)
	})

	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	return due
}

// IsMastered reports whether an item has been learned well enough to stop
// counting toward the daily workload.
func (s *Scheduler) IsMastered(item *models.SpacedRepetitionItem) bool {
	total := item.CorrectCount + item.IncorrectCount
	if total == 0 {
		return false
	}
	accuracy := float64(item.CorrectCount) / float64(total)
	return item.Repetitions >= s.MasteryRepetitions &&
		item.Interval >= s.MasteryInterval &&
		accuracy >= s.MasteryAccuracy
}
