package models

import "time"

// StudySession records one completed practice or quiz run
type StudySession struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Mode      string    `json:"mode" db:"mode"` // practice, review, quiz
	Items     int       `json:"items" db:"items"`
	Correct   int       `json:"correct" db:"correct"`
	Accuracy  float64   `json:"accuracy" db:"accuracy"` // 0-100
	XPEarned  int       `json:"xp_earned" db:"xp_earned"`
	Duration  int       `json:"duration" db:"duration"` // seconds
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// StudyStats aggregates a user's history for the /stats view
type StudyStats struct {
	TotalXP           int     `json:"total_xp"`
	CurrentLevel      int     `json:"current_level"`
	XPToNextLevel     int     `json:"xp_to_next_level"`
	TotalSessions     int     `json:"total_sessions"`
	AverageAccuracy   float64 `json:"average_accuracy"`
	CharactersLearned int     `json:"characters_learned"`
	ItemsDueToday     int     `json:"items_due_today"`
	ItemsMastered     int     `json:"items_mastered"`
	StudyDays         int     `json:"study_days"`
}

// Level derives the user level from accumulated XP, 100 XP per level.
func (s *StudyStats) Level() int {
	return s.TotalXP/100 + 1
}
