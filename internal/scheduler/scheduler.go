package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/example/kanabot/internal/database"
)

// Default notification window
const (
	DefaultNotificationStartHour = 8
	DefaultNotificationEndHour   = 22
)

// Scheduler manages scheduled tasks for the application
type Scheduler struct {
	scheduler *gocron.Scheduler
	notifier  Notifier
}

// Notifier interface for sending review reminders
type Notifier interface {
	SendReviewReminder(userID int64, count int) error
}

// New creates a new scheduler instance
func New(notifier Notifier) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		notifier:  notifier,
	}
}

// Start begins running all scheduled tasks
func (s *Scheduler) Start() {
	// Schedule hourly check for users with due reviews
	s.scheduler.Every(1).Hour().Do(s.checkAndSendReminders)

	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// checkAndSendReminders finds users with reviews due at the current hour and notifies them
func (s *Scheduler) checkAndSendReminders() {
	currentHour := time.Now().Hour()

	startHour := DefaultNotificationStartHour
	endHour := DefaultNotificationEndHour

	if startHourStr := os.Getenv("NOTIFICATION_START_HOUR"); startHourStr != "" {
		if h, err := strconv.Atoi(startHourStr); err == nil && h >= 0 && h <= 23 {
			startHour = h
		}
	}

	if endHourStr := os.Getenv("NOTIFICATION_END_HOUR"); endHourStr != "" {
		if h, err := strconv.Atoi(endHourStr); err == nil && h >= 0 && h <= 23 {
			endHour = h
		}
	}

	if currentHour < startHour || currentHour > endHour {
		log.Printf("Current hour %d is outside notification hours (%d-%d), skipping reminders",
			currentHour, startHour, endHour)
		return
	}

	userRepo := database.NewUserRepository()
	reviewRepo := database.NewReviewItemRepository()

	users, err := userRepo.GetUsersForNotification(currentHour)
	if err != nil {
		log.Printf("Error getting users for notification: %v", err)
		return
	}

	for _, user := range users {
		due, err := reviewRepo.CountDue(user.ID, time.Now())
		if err != nil {
			log.Printf("Error counting due items for user %d: %v", user.ID, err)
			continue
		}

		if due > 0 {
			// Don't announce more than the user's daily preference
			count := due
			if count > user.ItemsPerDay {
				count = user.ItemsPerDay
			}

			if err := s.notifier.SendReviewReminder(user.ID, count); err != nil {
				log.Printf("Error sending reminder to user %d: %v", user.ID, err)
			}
		}
	}
}

// RunManualCheck forces a due-review check for a specific user
func (s *Scheduler) RunManualCheck(userID int64) error {
	reviewRepo := database.NewReviewItemRepository()

	due, err := reviewRepo.CountDue(userID, time.Now())
	if err != nil {
		return err
	}

	if due > 0 {
		return s.notifier.SendReviewReminder(userID, due)
	}

	return nil
}
