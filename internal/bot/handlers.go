package bot

import (
	"fmt"
	"log"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/example/kanabot/internal/content"
	"github.com/example/kanabot/internal/excel"
	"github.com/example/kanabot/internal/pronunciation"
	"github.com/example/kanabot/internal/quiz"
	"github.com/example/kanabot/pkg/models"
)

// handleStartCommand registers the user and shows the welcome message
func (b *Bot) handleStartCommand(message *tgbotapi.Message) {
	user := &models.User{
		ID:        message.From.ID,
		Username:  message.From.UserName,
		FirstName: message.From.FirstName,
		LastName:  message.From.LastName,
	}
	if err := b.userRepo.CreateOrUpdate(user); err != nil {
		log.Printf("Error registering user %d: %v", user.ID, err)
	}

	welcomeText := `ようこそ! Welcome to the Japanese Learning Bot! 🇯🇵

Practice hiragana, katakana, kanji and words with pronunciation feedback and spaced repetition.

Available commands:
/menu - Show main menu
/practice - Practice pronunciation
/review - Review items that are due
/quiz - Take a multiple choice quiz
/stats - Show your statistics
/settings - Configure your preferences`

	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	msg.ReplyMarkup = createKeyboard(b.MainMenuButtons())
	b.api.Send(msg)
}

// handleCancelCommand aborts any ongoing session or pending input
func (b *Bot) handleCancelCommand(message *tgbotapi.Message) {
	userID := message.From.ID
	delete(b.userStates, userID)
	delete(b.practiceSessions, userID)
	delete(b.quizSessions, userID)

	msg := tgbotapi.NewMessage(message.Chat.ID, "Session cancelled.")
	msg.ReplyMarkup = createKeyboard(b.MainMenuButtons())
	b.api.Send(msg)
}

// startPractice begins a pronunciation practice session for one script
func (b *Bot) startPractice(chatID, userID int64, script models.Script) {
	characters, err := b.charRepo.GetRandom(script, b.config.ItemsPerPractice)
	if err != nil {
		log.Printf("Error loading characters for practice: %v", err)
		b.sendPlain(chatID, "❌ Could not start a practice session. Please try again.")
		return
	}
	if len(characters) == 0 {
		b.sendPlain(chatID, "No study items available for this script yet.")
		return
	}

	b.practiceSessions[userID] = &practiceSession{
		Mode:       "practice",
		Characters: characters,
		StartedAt:  time.Now(),
	}
	b.userStates[userID] = UserState{State: stateAwaitingAnswer, Timestamp: time.Now()}

	b.sendPlain(chatID, fmt.Sprintf("🗣 Practice session started: %d items. Type the romaji reading of each item. /cancel to stop.", len(characters)))
	b.sendPracticePrompt(chatID, userID)
}

// handleReviewCommand starts a review session from the due queue
func (b *Bot) handleReviewCommand(message *tgbotapi.Message) {
	b.startReview(message.Chat.ID, message.From.ID)
}

func (b *Bot) startReview(chatID, userID int64) {
	user, err := b.userRepo.GetByID(userID)
	if err != nil {
		log.Printf("Error getting user %d: %v", userID, err)
		return
	}

	limit := b.config.ItemsPerPractice
	if user != nil && user.ItemsPerDay > 0 {
		limit = user.ItemsPerDay
	}

	now := time.Now()
	items, err := b.reviewRepo.GetDueForUser(userID, now)
	if err != nil {
		log.Printf("Error loading due items for user %d: %v", userID, err)
		b.sendPlain(chatID, "❌ Could not load your review queue. Please try again.")
		return
	}

	due := b.sm2.DueItems(items, now, limit)
	if len(due) == 0 {
		msg := tgbotapi.NewMessage(chatID, "🎉 Nothing due for review! Start a practice session to learn new items.")
		msg.ReplyMarkup = createKeyboard(b.MainMenuButtons())
		b.api.Send(msg)
		return
	}

	characters := make([]models.Character, 0, len(due))
	for _, item := range due {
		script, romaji, err := content.ParseItemID(item.ItemID)
		if err != nil {
			log.Printf("Skipping review item with bad key %q: %v", item.ItemID, err)
			continue
		}
		character, err := b.charRepo.GetByScriptAndRomaji(script, romaji)
		if err != nil {
			log.Printf("Error resolving review item %q: %v", item.ItemID, err)
			continue
		}
		if character == nil {
			continue
		}
		characters = append(characters, *character)
	}

	if len(characters) == 0 {
		b.sendPlain(chatID, "Your due items no longer exist in the catalog. Nothing to review.")
		return
	}

	b.practiceSessions[userID] = &practiceSession{
		Mode:       "review",
		Characters: characters,
		StartedAt:  time.Now(),
	}
	b.userStates[userID] = UserState{State: stateAwaitingAnswer, Timestamp: time.Now()}

	b.sendPlain(chatID, fmt.Sprintf("🔁 Review session started: %d items due. Type the romaji reading of each item. /cancel to stop.", len(characters)))
	b.sendPracticePrompt(chatID, userID)
}

// sendPracticePrompt shows the current item of the session
func (b *Bot) sendPracticePrompt(chatID, userID int64) {
	session, exists := b.practiceSessions[userID]
	if !exists || session.Index >= len(session.Characters) {
		return
	}

	character := session.Characters[session.Index]

	var text strings.Builder
	text.WriteString(fmt.Sprintf("*%d/%d*  %s\n", session.Index+1, len(session.Characters), character.Glyph))
	if character.Meaning != "" {
		text.WriteString(fmt.Sprintf("Meaning: %s\n", character.Meaning))
	}
	if difficulty := b.analyzer.AssessDifficulty(character.Romaji); difficulty != pronunciation.DifficultyEasy {
		text.WriteString(fmt.Sprintf("Difficulty: %s\n", difficulty))
	}
	text.WriteString("\nType the romaji reading:")

	msg := tgbotapi.NewMessage(chatID, text.String())
	msg.ParseMode = "Markdown"
	b.api.Send(msg)

	// Attach reference audio when text-to-speech is configured
	if b.speech != nil {
		audio, err := b.speech.Synthesize(character.Glyph)
		if err != nil {
			log.Printf("Error synthesizing audio for %q: %v", character.Glyph, err)
			return
		}
		voice := tgbotapi.NewVoice(chatID, tgbotapi.FileBytes{Name: "pronunciation.mp3", Bytes: audio})
		if _, err := b.api.Send(voice); err != nil {
			log.Printf("Error sending voice message: %v", err)
		}
	}
}

// handlePracticeAnswer scores one typed answer and advances the session
func (b *Bot) handlePracticeAnswer(message *tgbotapi.Message) {
	userID := message.From.ID
	chatID := message.Chat.ID

	session, exists := b.practiceSessions[userID]
	if !exists || session.Index >= len(session.Characters) {
		delete(b.userStates, userID)
		b.showMainMenu(chatID)
		return
	}

	character := session.Characters[session.Index]
	answer := message.Text

	analysis := b.assessor.AssessWithFallback(character.Glyph, answer, character.Romaji, character.Category)
	isCorrect := analysis.OverallScore >= b.config.PassingScore
	if isCorrect {
		session.Correct++
	}

	b.recordReview(userID, &character, isCorrect)

	msg := tgbotapi.NewMessage(chatID, b.formatAnalysis(&character, analysis, isCorrect))
	msg.ParseMode = "Markdown"
	b.api.Send(msg)

	session.Index++
	if session.Index < len(session.Characters) {
		b.sendPracticePrompt(chatID, userID)
		return
	}

	b.finishPracticeSession(chatID, userID)
}

// recordReview applies one answer to the user's spaced repetition schedule
func (b *Bot) recordReview(userID int64, character *models.Character, isCorrect bool) {
	now := time.Now()
	itemID := content.ItemID(character)

	item, err := b.reviewRepo.GetByUserAndItem(userID, itemID)
	if err != nil {
		log.Printf("Error loading review item %q: %v", itemID, err)
		return
	}
	if item == nil {
		item = b.sm2.NewItem(userID, itemID, character.Difficulty, now)
	}

	b.sm2.Review(item, isCorrect, now)

	if err := b.reviewRepo.Save(item); err != nil {
		log.Printf("Error saving review item %q: %v", itemID, err)
	}
}

// formatAnalysis renders a pronunciation analysis as a Telegram message
func (b *Bot) formatAnalysis(character *models.Character, analysis *models.PronunciationAnalysis, isCorrect bool) string {
	var text strings.Builder

	if isCorrect {
		text.WriteString(fmt.Sprintf("✅ *%s* → correct reading: *%s*\n\n", character.Glyph, character.Romaji))
	} else {
		text.WriteString(fmt.Sprintf("❌ *%s* → correct reading: *%s*\n\n", character.Glyph, character.Romaji))
	}

	text.WriteString(fmt.Sprintf("Overall: *%d*  (accuracy %d, fluency %d, completeness %d)\n",
		analysis.OverallScore, analysis.Accuracy, analysis.Fluency, analysis.Completeness))

	for _, line := range analysis.Feedback {
		text.WriteString(line + "\n")
	}

	if len(analysis.Strengths) > 0 {
		text.WriteString("\n*Strengths:*\n")
		for _, s := range analysis.Strengths {
			text.WriteString("• " + s + "\n")
		}
	}

	if !isCorrect && len(analysis.Improvements) > 0 {
		text.WriteString("\n*Try this:*\n")
		for _, s := range analysis.Improvements {
			text.WriteString("• " + s + "\n")
		}
	}

	if !isCorrect {
		if tips := b.analyzer.Tips(character.Romaji); len(tips) > 0 {
			text.WriteString("\n*Tips:*\n")
			for _, tip := range tips {
				text.WriteString("• " + tip + "\n")
			}
		}
	}

	return text.String()
}

// finishPracticeSession records the run and shows the summary
func (b *Bot) finishPracticeSession(chatID, userID int64) {
	session, exists := b.practiceSessions[userID]
	if !exists {
		return
	}

	delete(b.practiceSessions, userID)
	delete(b.userStates, userID)

	total := len(session.Characters)
	accuracy := 0.0
	if total > 0 {
		accuracy = float64(session.Correct) / float64(total) * 100
	}
	xp := session.Correct * b.config.XPPerCorrect

	record := &models.StudySession{
		UserID:   userID,
		Mode:     session.Mode,
		Items:    total,
		Correct:  session.Correct,
		Accuracy: accuracy,
		XPEarned: xp,
		Duration: int(time.Since(session.StartedAt).Seconds()),
	}
	if err := b.sessionRepo.Create(record); err != nil {
		log.Printf("Error saving study session for user %d: %v", userID, err)
	}

	summary := fmt.Sprintf("🏁 Session complete!\n\nCorrect: %d/%d (%.0f%%)\nXP earned: %d",
		session.Correct, total, accuracy, xp)

	msg := tgbotapi.NewMessage(chatID, summary)
	msg.ReplyMarkup = createKeyboard(b.MainMenuButtons())
	b.api.Send(msg)
}

// startQuiz begins a multiple choice quiz for one script
func (b *Bot) startQuiz(chatID, userID int64, script models.Script) {
	mode := quiz.GlyphToRomaji
	if script == models.ScriptKanji {
		mode = quiz.GlyphToMeaning
	}

	questions, err := b.quizzes.Create(script, b.config.QuizQuestions, mode)
	if err != nil {
		log.Printf("Error creating quiz: %v", err)
		b.sendPlain(chatID, "❌ Could not create a quiz for this script. Please try again.")
		return
	}

	b.quizSessions[userID] = &quizSession{
		Questions: questions,
		StartedAt: time.Now(),
	}

	b.sendPlain(chatID, fmt.Sprintf("❓ Quiz started: %d questions. /cancel to stop.", len(questions)))
	b.sendQuizQuestion(chatID, userID)
}

// sendQuizQuestion shows the current quiz question with its options
func (b *Bot) sendQuizQuestion(chatID, userID int64) {
	session, exists := b.quizSessions[userID]
	if !exists || session.Index >= len(session.Questions) {
		return
	}

	question := session.Questions[session.Index]

	var prompt string
	switch question.Mode {
	case quiz.RomajiToGlyph:
		prompt = fmt.Sprintf("Which character is read *%s*?", question.Prompt)
	case quiz.GlyphToMeaning:
		prompt = fmt.Sprintf("What does *%s* mean?", question.Prompt)
	default:
		prompt = fmt.Sprintf("How is *%s* read?", question.Prompt)
	}

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("*%d/%d*  %s", session.Index+1, len(session.Questions), prompt))
	msg.ParseMode = "Markdown"

	var rows [][]tgbotapi.InlineKeyboardButton
	for i, option := range question.Options {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(option, fmt.Sprintf("quiz_answer_%d", i)),
		))
	}
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)

	b.api.Send(msg)
}

// handleQuizAnswer grades one answer and advances the quiz
func (b *Bot) handleQuizAnswer(chatID, userID int64, answerIndex int) {
	session, exists := b.quizSessions[userID]
	if !exists || session.Index >= len(session.Questions) {
		return
	}

	question := session.Questions[session.Index]
	isCorrect := quiz.Grade(question, answerIndex)
	if isCorrect {
		session.Correct++
		b.sendPlain(chatID, fmt.Sprintf("✅ Correct! %s = %s", question.Character.Glyph, question.Options[question.CorrectIndex]))
	} else {
		b.sendPlain(chatID, fmt.Sprintf("❌ Not quite. %s = %s", question.Character.Glyph, question.Options[question.CorrectIndex]))
	}

	// Quiz answers also feed the review schedule
	b.recordReview(userID, &question.Character, isCorrect)

	session.Index++
	if session.Index < len(session.Questions) {
		b.sendQuizQuestion(chatID, userID)
		return
	}

	b.finishQuizSession(chatID, userID)
}

// finishQuizSession records the quiz run and shows the summary
func (b *Bot) finishQuizSession(chatID, userID int64) {
	session, exists := b.quizSessions[userID]
	if !exists {
		return
	}
	delete(b.quizSessions, userID)

	total := len(session.Questions)
	duration := int(time.Since(session.StartedAt).Seconds())
	if err := b.quizzes.SaveResult(userID, session.Questions, session.Correct, duration); err != nil {
		log.Printf("Error saving quiz result for user %d: %v", userID, err)
	}

	accuracy := 0.0
	if total > 0 {
		accuracy = float64(session.Correct) / float64(total) * 100
	}

	summary := fmt.Sprintf("🏁 Quiz complete!\n\nCorrect: %d/%d (%.0f%%)\nXP earned: %d",
		session.Correct, total, accuracy, session.Correct*b.config.XPPerCorrect)

	msg := tgbotapi.NewMessage(chatID, summary)
	msg.ReplyMarkup = createKeyboard(b.MainMenuButtons())
	b.api.Send(msg)
}

// handleStatsCommand shows the user's study statistics
func (b *Bot) handleStatsCommand(message *tgbotapi.Message) {
	b.sendStats(message.Chat.ID, message.From.ID)
}

func (b *Bot) sendStats(chatID, userID int64) {
	stats, err := b.sessionRepo.GetStats(userID)
	if err != nil {
		log.Printf("Error getting statistics for user %d: %v", userID, err)
		msg := tgbotapi.NewMessage(chatID, "No statistics yet. Start a practice session to see your progress!")
		msg.ReplyMarkup = createKeyboard(b.MainMenuButtons())
		b.api.Send(msg)
		return
	}

	statsText := "📊 *Your statistics*\n\n" +
		fmt.Sprintf("Level: %d (XP %d, %d to next level)\n", stats.CurrentLevel, stats.TotalXP, stats.XPToNextLevel) +
		fmt.Sprintf("Sessions: %d\n", stats.TotalSessions) +
		fmt.Sprintf("Average accuracy: %.1f%%\n", stats.AverageAccuracy) +
		fmt.Sprintf("Characters learned: %d\n", stats.CharactersLearned) +
		fmt.Sprintf("Mastered: %d\n", stats.ItemsMastered) +
		fmt.Sprintf("Due today: %d\n", stats.ItemsDueToday) +
		fmt.Sprintf("Study days: %d\n", stats.StudyDays)

	msg := tgbotapi.NewMessage(chatID, statsText)
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = createKeyboard([][]MenuButton{
		{
			{Text: "🔁 Review now", CallbackData: "start_review"},
		},
		{
			{Text: "« Back to Menu", CallbackData: "main_menu"},
		},
	})
	b.api.Send(msg)
}

// handleSettingsCommand shows the settings menu
func (b *Bot) handleSettingsCommand(chatID, userID int64) {
	user, err := b.userRepo.GetByID(userID)
	if err != nil || user == nil {
		log.Printf("Error getting user %d for settings: %v", userID, err)
		b.sendPlain(chatID, "Please run /start first.")
		return
	}

	notify := "off"
	if user.NotificationEnabled {
		notify = fmt.Sprintf("on, %d:00", user.NotificationHour)
	}

	text := fmt.Sprintf("⚙️ Settings\n\nItems per day: %d\nReminders: %s", user.ItemsPerDay, notify)

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = createKeyboard([][]MenuButton{
		{
			{Text: "🔢 Items per day", CallbackData: "settings_items"},
		},
		{
			{Text: "⏰ Reminder time", CallbackData: "settings_hour"},
			{Text: "🔔 Toggle reminders", CallbackData: "settings_toggle_notify"},
		},
		{
			{Text: "« Back to Menu", CallbackData: "main_menu"},
		},
	})
	b.api.Send(msg)
}

// showItemsPerDaySettings shows the daily item count options
func (b *Bot) showItemsPerDaySettings(chatID, userID int64) {
	user, err := b.userRepo.GetByID(userID)
	if err != nil || user == nil {
		b.sendPlain(chatID, "Please run /start first.")
		return
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, count := range []int{5, 10, 15, 20, 30} {
		label := fmt.Sprintf("%d items", count)
		if user.ItemsPerDay == count {
			label = "✅ " + label
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, fmt.Sprintf("set_items_%d", count)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("« Back to Settings", "settings"),
	))

	msg := tgbotapi.NewMessage(chatID, "How many items do you want to review per day?")
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	b.api.Send(msg)
}

// handleItemsPerDayChange updates the user's daily item preference
func (b *Bot) handleItemsPerDayChange(chatID, userID int64, count int) {
	user, err := b.userRepo.GetByID(userID)
	if err != nil || user == nil {
		b.sendPlain(chatID, "Please run /start first.")
		return
	}

	user.ItemsPerDay = count
	if err := b.userRepo.UpdateSettings(user); err != nil {
		log.Printf("Error updating settings for user %d: %v", userID, err)
		b.sendPlain(chatID, "❌ Error updating settings. Please try again.")
		return
	}

	b.sendPlain(chatID, fmt.Sprintf("✅ Items per day set to %d", count))
	b.handleSettingsCommand(chatID, userID)
}

// showNotificationHourSettings shows the reminder hour options
func (b *Bot) showNotificationHourSettings(chatID, userID int64) {
	user, err := b.userRepo.GetByID(userID)
	if err != nil || user == nil {
		b.sendPlain(chatID, "Please run /start first.")
		return
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, hour := range []int{8, 9, 12, 15, 18, 21} {
		label := fmt.Sprintf("%d:00", hour)
		if user.NotificationHour == hour {
			label = "✅ " + label
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, fmt.Sprintf("set_hour_%d", hour)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("« Back to Settings", "settings"),
	))

	msg := tgbotapi.NewMessage(chatID, "🕒 When should review reminders arrive?")
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	b.api.Send(msg)
}

// handleNotificationHourChange updates the user's reminder hour
func (b *Bot) handleNotificationHourChange(chatID, userID int64, hour int) {
	user, err := b.userRepo.GetByID(userID)
	if err != nil || user == nil {
		b.sendPlain(chatID, "Please run /start first.")
		return
	}

	user.NotificationHour = hour
	user.NotificationEnabled = true
	if err := b.userRepo.UpdateSettings(user); err != nil {
		log.Printf("Error updating settings for user %d: %v", userID, err)
		b.sendPlain(chatID, "❌ Error updating settings. Please try again.")
		return
	}

	b.sendPlain(chatID, fmt.Sprintf("✅ Reminder time set to %d:00", hour))
	b.handleSettingsCommand(chatID, userID)
}

// toggleNotifications flips the reminder preference
func (b *Bot) toggleNotifications(chatID, userID int64) {
	user, err := b.userRepo.GetByID(userID)
	if err != nil || user == nil {
		b.sendPlain(chatID, "Please run /start first.")
		return
	}

	user.NotificationEnabled = !user.NotificationEnabled
	if err := b.userRepo.UpdateSettings(user); err != nil {
		log.Printf("Error updating settings for user %d: %v", userID, err)
		b.sendPlain(chatID, "❌ Error updating settings. Please try again.")
		return
	}

	if user.NotificationEnabled {
		b.sendPlain(chatID, "🔔 Reminders enabled")
	} else {
		b.sendPlain(chatID, "🔕 Reminders disabled")
	}
	b.handleSettingsCommand(chatID, userID)
}

// handleImportCommand starts a catalog import. With an argument it imports a
// server-side xlsx/csv file, otherwise it waits for a pasted item list.
func (b *Bot) handleImportCommand(message *tgbotapi.Message) {
	path := strings.TrimSpace(message.CommandArguments())
	if path != "" {
		config := excel.DefaultImportConfig()
		config.FilePath = path

		result, err := excel.ImportCharacters(config)
		if err != nil {
			b.sendPlain(message.Chat.ID, fmt.Sprintf("❌ Import failed: %v", err))
			return
		}

		b.sendPlain(message.Chat.ID, formatImportResult(result))
		return
	}

	b.userStates[message.From.ID] = UserState{State: stateAwaitingImport, Timestamp: time.Now()}
	b.sendPlain(message.Chat.ID, "📝 Send items to import, one per line:\n\nglyph - romaji - meaning\n\nExample:\nねこ - neko - cat\nいぬ - inu - dog\n\n/cancel to abort. For bulk imports use /import <path-to-xlsx-or-csv>.")
}

// handleImportText ingests a pasted list of items
func (b *Bot) handleImportText(message *tgbotapi.Message) {
	delete(b.userStates, message.From.ID)

	var added, skipped int
	var errorMsgs []string

	for _, line := range strings.Split(message.Text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		parts := strings.SplitN(line, "-", 3)
		if len(parts) < 2 {
			errorMsgs = append(errorMsgs, fmt.Sprintf("Invalid format: %s", line))
			continue
		}

		character := &models.Character{
			Script:     models.ScriptWord,
			Glyph:      strings.TrimSpace(parts[0]),
			Romaji:     strings.ToLower(strings.TrimSpace(parts[1])),
			Category:   "vocabulary",
			Difficulty: 3,
		}
		if len(parts) == 3 {
			character.Meaning = strings.TrimSpace(parts[2])
		}

		if character.Glyph == "" || character.Romaji == "" {
			errorMsgs = append(errorMsgs, fmt.Sprintf("Empty glyph or romaji: %s", line))
			continue
		}

		created, err := b.charRepo.Create(character)
		if err != nil {
			errorMsgs = append(errorMsgs, fmt.Sprintf("Error adding '%s': %v", character.Glyph, err))
			continue
		}
		if created {
			added++
		} else {
			skipped++
		}
	}

	var result strings.Builder
	result.WriteString(fmt.Sprintf("✅ Items processed:\n- Added: %d\n- Already present: %d\n", added, skipped))
	if len(errorMsgs) > 0 {
		result.WriteString(fmt.Sprintf("\n❌ Errors (%d):\n", len(errorMsgs)))
		for _, errMsg := range errorMsgs {
			result.WriteString("- " + errMsg + "\n")
		}
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, result.String())
	msg.ReplyMarkup = createKeyboard(b.MainMenuButtons())
	b.api.Send(msg)
}

func formatImportResult(result *excel.ImportResult) string {
	var text strings.Builder
	text.WriteString(fmt.Sprintf("✅ Import finished:\n- Processed: %d\n- Added: %d\n- Skipped: %d\n",
		result.TotalProcessed, result.Created, result.Skipped))
	if len(result.Errors) > 0 {
		text.WriteString(fmt.Sprintf("\n❌ Errors (%d):\n", len(result.Errors)))
		for _, errMsg := range result.Errors {
			text.WriteString("- " + errMsg + "\n")
		}
	}
	return text.String()
}

// sendPlain sends a plain text message without a keyboard
func (b *Bot) sendPlain(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}
