package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/kanabot/pkg/models"
)

// UserRepository handles database operations for users
type UserRepository struct{}

// NewUserRepository creates a new repository instance
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// GetByID returns a user by Telegram ID, or nil when unknown
func (r *UserRepository) GetByID(id int64) (*models.User, error) {
	var user models.User
	err := DB.Get(&user, "SELECT * FROM users WHERE telegram_id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %v", err)
	}
	return &user, nil
}

// CreateOrUpdate registers a user on first contact and refreshes names after
func (r *UserRepository) CreateOrUpdate(user *models.User) error {
	existing, err := r.GetByID(user.ID)
	if err != nil {
		return err
	}

	if existing == nil {
		if user.ItemsPerDay == 0 {
			user.ItemsPerDay = 10
		}
		if user.NotificationHour == 0 {
			user.NotificationHour = 9
		}
		_, err = DB.Exec(`
			INSERT INTO users (telegram_id, username, first_name, last_name, notification_enabled, notification_hour, items_per_day)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, user.ID, user.Username, user.FirstName, user.LastName, true, user.NotificationHour, user.ItemsPerDay)
		if err != nil {
			return fmt.Errorf("failed to insert user: %v", err)
		}
		user.NotificationEnabled = true
		return nil
	}

	_, err = DB.Exec(`
		UPDATE users SET username = $1, first_name = $2, last_name = $3, updated_at = CURRENT_TIMESTAMP
		WHERE telegram_id = $4
	`, user.Username, user.FirstName, user.LastName, user.ID)
	if err != nil {
		return fmt.Errorf("failed to update user: %v", err)
	}

	user.NotificationEnabled = existing.NotificationEnabled
	user.NotificationHour = existing.NotificationHour
	user.ItemsPerDay = existing.ItemsPerDay
	user.IsAdmin = existing.IsAdmin
	return nil
}

// UpdateSettings persists notification and workload preferences
func (r *UserRepository) UpdateSettings(user *models.User) error {
	_, err := DB.Exec(`
		UPDATE users SET notification_enabled = $1, notification_hour = $2, items_per_day = $3, updated_at = CURRENT_TIMESTAMP
		WHERE telegram_id = $4
	`, user.NotificationEnabled, user.NotificationHour, user.ItemsPerDay, user.ID)
	if err != nil {
		return fmt.Errorf("failed to update user settings: %v", err)
	}
	return nil
}

// GetUsersForNotification returns users who want reminders at the given hour
func (r *UserRepository) GetUsersForNotification(hour int) ([]models.User, error) {
	var users []models.User
	err := DB.Select(&users,
		"SELECT * FROM users WHERE notification_enabled = $1 AND notification_hour = $2",
		true, hour)
	if err != nil {
		return nil, fmt.Errorf("failed to get users for notification: %v", err)
	}
	return users, nil
}

// CountUsers returns the number of registered users
func (r *UserRepository) CountUsers() (int, error) {
	var count int
	if err := DB.Get(&count, "SELECT COUNT(*) FROM users"); err != nil {
		return 0, fmt.Errorf("failed to count users: %v", err)
	}
	return count, nil
}
