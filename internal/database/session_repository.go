package database

import (
	"fmt"
	"time"

	"github.com/example/kanabot/pkg/models"
)

// SessionRepository handles database operations for study sessions
type SessionRepository struct{}

// NewSessionRepository creates a new repository instance
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{}
}

// Create records a completed practice, review or quiz run
func (r *SessionRepository) Create(session *models.StudySession) error {
	result, err := DB.Exec(`
		INSERT INTO study_sessions (user_id, mode, items, correct, accuracy, xp_earned, duration)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, session.UserID, session.Mode, session.Items, session.Correct, session.Accuracy, session.XPEarned, session.Duration)
	if err != nil {
		return fmt.Errorf("failed to insert study session: %v", err)
	}

	if id, err := result.LastInsertId(); err == nil {
		session.ID = id
	}
	return nil
}

// GetStats aggregates a user's history for the stats view
func (r *SessionRepository) GetStats(userID int64) (*models.StudyStats, error) {
	stats := &models.StudyStats{}

	err := DB.QueryRow(`
		SELECT
			COALESCE(SUM(xp_earned), 0),
			COUNT(*),
			COALESCE(AVG(accuracy), 0)
		FROM study_sessions WHERE user_id = $1
	`, userID).Scan(&stats.TotalXP, &stats.TotalSessions, &stats.AverageAccuracy)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate sessions: %v", err)
	}

	err = DB.Get(&stats.StudyDays,
		"SELECT COUNT(DISTINCT DATE(created_at)) FROM study_sessions WHERE user_id = $1",
		userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count study days: %v", err)
	}

	reviewRepo := NewReviewItemRepository()
	due, err := reviewRepo.CountDue(userID, time.Now().AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	stats.ItemsDueToday = due

	mastered, err := reviewRepo.CountMastered(userID)
	if err != nil {
		return nil, err
	}
	stats.ItemsMastered = mastered

	var learned int
	err = DB.Get(&learned,
		"SELECT COUNT(*) FROM review_items WHERE user_id = $1 AND correct_count > 0", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count learned characters: %v", err)
	}
	stats.CharactersLearned = learned

	stats.CurrentLevel = stats.Level()
	stats.XPToNextLevel = stats.CurrentLevel*100 - stats.TotalXP
	return stats, nil
}
