package bot

// BotConfig represents the configuration for the bot
type BotConfig struct {
	// Number of items in a practice session
	ItemsPerPractice int
	// Number of questions in a quiz
	QuizQuestions int
	// Minimum overall pronunciation score counted as a correct review
	PassingScore int
	// XP awarded per correct answer
	XPPerCorrect int
}

// DefaultConfig returns the default bot configuration
func DefaultConfig() *BotConfig {
	return &BotConfig{
		ItemsPerPractice: 5,
		QuizQuestions:    10,
		PassingScore:     70,
		XPPerCorrect:     10,
	}
}
