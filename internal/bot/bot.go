package bot

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/example/kanabot/internal/assessment"
	"github.com/example/kanabot/internal/database"
	"github.com/example/kanabot/internal/pronunciation"
	"github.com/example/kanabot/internal/quiz"
	"github.com/example/kanabot/internal/scheduler"
	"github.com/example/kanabot/internal/spaced_repetition"
	"github.com/example/kanabot/internal/tts"
	"github.com/example/kanabot/pkg/models"
)

// MenuButton represents a button in the menu
type MenuButton struct {
	Text         string
	CallbackData string
}

// createKeyboard creates a keyboard from menu buttons
func createKeyboard(buttons [][]MenuButton) tgbotapi.InlineKeyboardMarkup {
	var keyboard [][]tgbotapi.InlineKeyboardButton
	for _, row := range buttons {
		var keyboardRow []tgbotapi.InlineKeyboardButton
		for _, button := range row {
			keyboardRow = append(keyboardRow, tgbotapi.NewInlineKeyboardButtonData(button.Text, button.CallbackData))
		}
		keyboard = append(keyboard, keyboardRow)
	}
	return tgbotapi.NewInlineKeyboardMarkup(keyboard...)
}

// User conversation states
const (
	stateAwaitingAnswer = "awaiting_answer"
	stateAwaitingImport = "awaiting_import"
)

// UserState represents the current state of a user in conversation with the bot
type UserState struct {
	State     string
	Timestamp time.Time
}

// practiceSession represents a user's ongoing pronunciation practice or review run
type practiceSession struct {
	Mode       string // practice or review
	Characters []models.Character
	Index      int
	Correct    int
	StartedAt  time.Time
}

// quizSession represents a user's ongoing quiz run
type quizSession struct {
	Questions []quiz.Question
	Index     int
	Correct   int
	StartedAt time.Time
}

// Bot represents the Telegram bot application
type Bot struct {
	api    *tgbotapi.BotAPI
	token  string
	config *BotConfig

	analyzer *pronunciation.Analyzer
	assessor *assessment.Client
	sm2      *spaced_repetition.Scheduler
	speech   *tts.ElevenLabs
	quizzes  *quiz.Quiz

	userRepo    *database.UserRepository
	charRepo    *database.CharacterRepository
	reviewRepo  *database.ReviewItemRepository
	sessionRepo *database.SessionRepository

	scheduler        *scheduler.Scheduler
	schedulerEnabled bool

	userStates       map[int64]UserState
	practiceSessions map[int64]*practiceSession
	quizSessions     map[int64]*quizSession
	adminUserIDs     map[int64]bool
}

// New creates a new bot instance
func New() (*Bot, error) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable is not set")
	}

	if database.DB == nil {
		return nil, fmt.Errorf("database connection is not established")
	}

	var speech *tts.ElevenLabs
	if os.Getenv("ELEVENLABS_API_KEY") != "" {
		client, err := tts.New()
		if err != nil {
			log.Printf("Warning: unable to initialize text-to-speech client: %v", err)
		} else {
			speech = client
		}
	}

	schedulerEnabled := os.Getenv("ENABLE_SCHEDULER") != "false"

	bot := &Bot{
		token:            token,
		config:           DefaultConfig(),
		analyzer:         pronunciation.New(),
		assessor:         assessment.New(),
		sm2:              spaced_repetition.New(),
		speech:           speech,
		quizzes:          quiz.New(),
		userRepo:         database.NewUserRepository(),
		charRepo:         database.NewCharacterRepository(),
		reviewRepo:       database.NewReviewItemRepository(),
		sessionRepo:      database.NewSessionRepository(),
		schedulerEnabled: schedulerEnabled,
		userStates:       make(map[int64]UserState),
		practiceSessions: make(map[int64]*practiceSession),
		quizSessions:     make(map[int64]*quizSession),
		adminUserIDs:     make(map[int64]bool),
	}

	adminIDs := os.Getenv("ADMIN_USER_IDS")
	if adminIDs != "" {
		for _, idStr := range strings.Split(adminIDs, ",") {
			id, err := strconv.ParseInt(strings.TrimSpace(idStr), 10, 64)
			if err != nil {
				log.Printf("Warning: invalid admin user ID: %s", idStr)
				continue
			}
			bot.adminUserIDs[id] = true
		}
	}

	return bot, nil
}

// Start initializes the Telegram connection and processes updates until the channel closes
func (b *Bot) Start() error {
	botAPI, err := tgbotapi.NewBotAPI(b.token)
	if err != nil {
		return fmt.Errorf("unable to create bot: %v", err)
	}

	b.api = botAPI
	log.Printf("Authorized on account %s", botAPI.Self.UserName)

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60

	updates := b.api.GetUpdatesChan(updateConfig)

	if b.schedulerEnabled {
		b.scheduler = scheduler.New(b)
		b.scheduler.Start()
		log.Println("Review reminder scheduler started")
	}

	for update := range updates {
		go b.handleUpdate(update)
	}

	return nil
}

// Stop gracefully stops the bot
func (b *Bot) Stop() {
	if b.scheduler != nil {
		b.scheduler.Stop()
	}
	if b.api != nil {
		b.api.StopReceivingUpdates()
	}
	log.Println("Bot stopped")
}

// SendReviewReminder implements the scheduler.Notifier interface
func (b *Bot) SendReviewReminder(userID int64, count int) error {
	// For private chats the chat ID equals the user ID
	itemForm := "items"
	if count == 1 {
		itemForm = "item"
	}

	msg := tgbotapi.NewMessage(userID, fmt.Sprintf(
		"⏰ You have %d %s due for review! Use /review to keep your streak going.", count, itemForm))
	_, err := b.api.Send(msg)
	if err != nil {
		log.Printf("Error sending reminder to user %d: %v", userID, err)
	}
	return err
}

// isAdmin checks if a user is an admin
func (b *Bot) isAdmin(userID int64) bool {
	return b.adminUserIDs[userID]
}

// handleUpdate handles incoming updates from Telegram
func (b *Bot) handleUpdate(update tgbotapi.Update) {
	if update.Message != nil {
		if update.Message.IsCommand() {
			b.handleCommand(update.Message)
			return
		}

		userID := update.Message.From.ID
		state, exists := b.userStates[userID]
		if exists {
			switch state.State {
			case stateAwaitingAnswer:
				b.handlePracticeAnswer(update.Message)
				return
			case stateAwaitingImport:
				b.handleImportText(update.Message)
				return
			}
		}

		msg := tgbotapi.NewMessage(update.Message.Chat.ID, "I don't understand. Use /menu to show the main menu.")
		msg.ReplyMarkup = createKeyboard(b.MainMenuButtons())
		b.api.Send(msg)
	} else if update.CallbackQuery != nil {
		b.handleCallbackQuery(update.CallbackQuery)
	}
}

// handleCommand dispatches bot commands
func (b *Bot) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		b.handleStartCommand(message)
	case "menu":
		b.showMainMenu(message.Chat.ID)
	case "practice":
		b.showScriptMenu(message.Chat.ID, "practice")
	case "review":
		b.handleReviewCommand(message)
	case "quiz":
		b.showScriptMenu(message.Chat.ID, "quiz")
	case "stats":
		b.handleStatsCommand(message)
	case "settings":
		b.handleSettingsCommand(message.Chat.ID, message.From.ID)
	case "cancel":
		b.handleCancelCommand(message)
	case "import":
		if b.isAdmin(message.From.ID) {
			b.handleImportCommand(message)
		} else {
			msg := tgbotapi.NewMessage(message.Chat.ID, "This command is only available for administrators.")
			msg.ReplyMarkup = createKeyboard(b.MainMenuButtons())
			b.api.Send(msg)
		}
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Unknown command. Use /menu to show the main menu.")
		msg.ReplyMarkup = createKeyboard(b.MainMenuButtons())
		b.api.Send(msg)
	}
}

// showMainMenu shows the main menu
func (b *Bot) showMainMenu(chatID int64) {
	msg := tgbotapi.NewMessage(chatID, "Main Menu - choose an option:")
	msg.ReplyMarkup = createKeyboard(b.MainMenuButtons())
	b.api.Send(msg)
}

// MainMenuButtons returns the buttons for the main menu
func (b *Bot) MainMenuButtons() [][]MenuButton {
	return [][]MenuButton{
		{
			{Text: "🗣 Practice", CallbackData: "menu_practice"},
			{Text: "🔁 Review", CallbackData: "start_review"},
		},
		{
			{Text: "❓ Quiz", CallbackData: "menu_quiz"},
			{Text: "📊 Statistics", CallbackData: "show_stats"},
		},
		{
			{Text: "⚙️ Settings", CallbackData: "settings"},
		},
	}
}

// showScriptMenu asks which writing system to study, for practice or quiz
func (b *Bot) showScriptMenu(chatID int64, mode string) {
	msg := tgbotapi.NewMessage(chatID, "Which would you like to study?")
	msg.ReplyMarkup = createKeyboard([][]MenuButton{
		{
			{Text: "あ Hiragana", CallbackData: mode + "_script_hiragana"},
			{Text: "ア Katakana", CallbackData: mode + "_script_katakana"},
		},
		{
			{Text: "漢 Kanji", CallbackData: mode + "_script_kanji"},
			{Text: "🗾 Words", CallbackData: mode + "_script_word"},
		},
		{
			{Text: "« Back to Menu", CallbackData: "main_menu"},
		},
	})
	b.api.Send(msg)
}

// handleCallbackQuery handles callback queries from buttons
func (b *Bot) handleCallbackQuery(callback *tgbotapi.CallbackQuery) {
	userID := callback.From.ID
	chatID := callback.Message.Chat.ID

	// Acknowledge the button press
	b.api.Request(tgbotapi.NewCallback(callback.ID, ""))

	switch {
	case callback.Data == "main_menu":
		b.showMainMenu(chatID)
	case callback.Data == "menu_practice":
		b.showScriptMenu(chatID, "practice")
	case callback.Data == "menu_quiz":
		b.showScriptMenu(chatID, "quiz")
	case callback.Data == "start_review":
		b.startReview(chatID, userID)
	case callback.Data == "show_stats":
		b.sendStats(chatID, userID)
	case callback.Data == "settings":
		b.handleSettingsCommand(chatID, userID)
	case callback.Data == "settings_items":
		b.showItemsPerDaySettings(chatID, userID)
	case callback.Data == "settings_hour":
		b.showNotificationHourSettings(chatID, userID)
	case callback.Data == "settings_toggle_notify":
		b.toggleNotifications(chatID, userID)
	case strings.HasPrefix(callback.Data, "practice_script_"):
		script := models.Script(strings.TrimPrefix(callback.Data, "practice_script_"))
		b.startPractice(chatID, userID, script)
	case strings.HasPrefix(callback.Data, "quiz_script_"):
		script := models.Script(strings.TrimPrefix(callback.Data, "quiz_script_"))
		b.startQuiz(chatID, userID, script)
	case strings.HasPrefix(callback.Data, "quiz_answer_"):
		idx, err := strconv.Atoi(strings.TrimPrefix(callback.Data, "quiz_answer_"))
		if err != nil {
			log.Printf("Error parsing quiz answer: %v", err)
			return
		}
		b.handleQuizAnswer(chatID, userID, idx)
	case strings.HasPrefix(callback.Data, "set_items_"):
		count, err := strconv.Atoi(strings.TrimPrefix(callback.Data, "set_items_"))
		if err != nil {
			log.Printf("Error parsing items per day: %v", err)
			return
		}
		b.handleItemsPerDayChange(chatID, userID, count)
	case strings.HasPrefix(callback.Data, "set_hour_"):
		hour, err := strconv.Atoi(strings.TrimPrefix(callback.Data, "set_hour_"))
		if err != nil {
			log.Printf("Error parsing notification hour: %v", err)
			return
		}
		b.handleNotificationHourChange(chatID, userID, hour)
	}
}
