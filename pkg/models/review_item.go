package models

import "time"

// SpacedRepetitionItem tracks one user's scheduling state for one study item
// using the SM-2 algorithm. A record is created on first review and mutated in
// place on every later one; a failed review resets the counters, never the row.
type SpacedRepetitionItem struct {
	ID     int64  `json:"id" db:"id"`
	UserID int64  `json:"user_id" db:"user_id"`
	ItemID string `json:"item_id" db:"item_id"` // key into the character catalog

	// Difficulty is assumed to be in [0,5]; the scheduler does not validate
	// it, so callers clamp before a record reaches Review.
	Difficulty     int       `json:"difficulty" db:"difficulty"`
	Interval       int       `json:"interval" db:"interval"` // days, always >= 1
	Repetitions    int       `json:"repetitions" db:"repetitions"` // consecutive correct answers
	EaseFactor     float64   `json:"ease_factor" db:"ease_factor"` // floored at 1.3
	NextReviewDate time.Time `json:"next_review_date" db:"next_review_date"`
	LastReviewDate time.Time `json:"last_review_date" db:"last_review_date"`
	CorrectCount   int       `json:"correct_count" db:"correct_count"`
	IncorrectCount int       `json:"incorrect_count" db:"incorrect_count"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}
