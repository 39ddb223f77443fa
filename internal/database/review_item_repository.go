package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/example/kanabot/pkg/models"
)

// ReviewItemRepository handles database operations for spaced repetition records
type ReviewItemRepository struct{}

// NewReviewItemRepository creates a new repository instance
func NewReviewItemRepository() *ReviewItemRepository {
	return &ReviewItemRepository{}
}

// GetByUserAndItem returns the scheduling record for one user and catalog item,
// or nil when the item has never been reviewed.
func (r *ReviewItemRepository) GetByUserAndItem(userID int64, itemID string) (*models.SpacedRepetitionItem, error) {
	var item models.SpacedRepetitionItem
	err := DB.Get(&item, "SELECT * FROM review_items WHERE user_id = $1 AND item_id = $2", userID, itemID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get review item: %v", err)
	}
	return &item, nil
}

// GetDueForUser returns records due for review, most overdue first
func (r *ReviewItemRepository) GetDueForUser(userID int64, now time.Time) ([]models.SpacedRepetitionItem, error) {
	var items []models.SpacedRepetitionItem
	err := DB.Select(&items, `
		SELECT * FROM review_items
		WHERE user_id = $1 AND next_review_date <= $2
		ORDER BY next_review_date ASC
	`, userID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to get due review items: %v", err)
	}
	return items, nil
}

// GetAllForUser returns every scheduling record a user has
func (r *ReviewItemRepository) GetAllForUser(userID int64) ([]models.SpacedRepetitionItem, error) {
	var items []models.SpacedRepetitionItem
	err := DB.Select(&items, "SELECT * FROM review_items WHERE user_id = $1", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get review items: %v", err)
	}
	return items, nil
}

// CountDue returns how many records are due for a user at the given time
func (r *ReviewItemRepository) CountDue(userID int64, now time.Time) (int, error) {
	var count int
	err := DB.Get(&count,
		"SELECT COUNT(*) FROM review_items WHERE user_id = $1 AND next_review_date <= $2",
		userID, now)
	if err != nil {
		return 0, fmt.Errorf("failed to count due review items: %v", err)
	}
	return count, nil
}

// Save inserts or updates a scheduling record keyed by (user_id, item_id).
// Failed reviews reset counters in place; records are never deleted.
func (r *ReviewItemRepository) Save(item *models.SpacedRepetitionItem) error {
	if item.ID != 0 {
		return r.update(item)
	}

	var existingID int64
	err := DB.QueryRow("SELECT id FROM review_items WHERE user_id = $1 AND item_id = $2",
		item.UserID, item.ItemID).Scan(&existingID)
	if err == nil {
		item.ID = existingID
		return r.update(item)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to look up review item: %v", err)
	}

	result, err := DB.Exec(`
		INSERT INTO review_items (
			user_id, item_id, difficulty, interval, repetitions, ease_factor,
			next_review_date, last_review_date, correct_count, incorrect_count
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`,
		item.UserID,
		item.ItemID,
		item.Difficulty,
		item.Interval,
		item.Repetitions,
		item.EaseFactor,
		item.NextReviewDate,
		item.LastReviewDate,
		item.CorrectCount,
		item.IncorrectCount,
	)
	if err != nil {
		return fmt.Errorf("failed to insert review item: %v", err)
	}

	if id, err := result.LastInsertId(); err == nil {
		item.ID = id
	}
	return nil
}

func (r *ReviewItemRepository) update(item *models.SpacedRepetitionItem) error {
	_, err := DB.Exec(`
		UPDATE review_items SET
			difficulty = $1,
			interval = $2,
			repetitions = $3,
			ease_factor = $4,
			next_review_date = $5,
			last_review_date = $6,
			correct_count = $7,
			incorrect_count = $8,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $9
	`,
		item.Difficulty,
		item.Interval,
		item.Repetitions,
		item.EaseFactor,
		item.NextReviewDate,
		item.LastReviewDate,
		item.CorrectCount,
		item.IncorrectCount,
		item.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update review item: %v", err)
	}
	return nil
}

// CountMastered counts records that satisfy the mastery thresholds
func (r *ReviewItemRepository) CountMastered(userID int64) (int, error) {
	var count int
	err := DB.Get(&count, `
		SELECT COUNT(*) FROM review_items
		WHERE user_id = $1 AND repetitions >= 5 AND interval >= 30
		AND correct_count >= 9 * incorrect_count
	`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count mastered items: %v", err)
	}
	return count, nil
}
