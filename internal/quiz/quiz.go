package quiz

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/example/kanabot/internal/database"
	"github.com/example/kanabot/pkg/models"
)

// Quiz handles knowledge testing functionality
type Quiz struct {
	charRepo    *database.CharacterRepository
	sessionRepo *database.SessionRepository
}

// New creates a new quiz module
func New() *Quiz {
	return &Quiz{
		charRepo:    database.NewCharacterRepository(),
		sessionRepo: database.NewSessionRepository(),
	}
}

// Mode represents different types of quiz questions
type Mode string

const (
	// GlyphToRomaji asks for the reading of a displayed character
	GlyphToRomaji Mode = "glyph_to_romaji"
	// RomajiToGlyph asks which character matches a reading
	RomajiToGlyph Mode = "romaji_to_glyph"
	// GlyphToMeaning asks for the meaning of a displayed character
	GlyphToMeaning Mode = "glyph_to_meaning"
)

// Question represents a single quiz question
type Question struct {
	Character    models.Character // The character being tested
	Prompt       string           // What is shown to the user
	Options      []string         // Possible answers
	CorrectIndex int              // Index of correct answer in options
	Mode         Mode             // Type of question
}

// Create generates a quiz for the given script with the specified number of questions
func (q *Quiz) Create(script models.Script, count int, mode Mode) ([]Question, error) {
	pool, err := q.charRepo.GetByScript(script)
	if err != nil {
		return nil, fmt.Errorf("failed to load characters: %v", err)
	}

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	return buildQuestions(rnd, pool, count, mode)
}

// buildQuestions assembles multiple choice questions from the given pool
func buildQuestions(rnd *rand.Rand, pool []models.Character, count int, mode Mode) ([]Question, error) {
	if mode == GlyphToMeaning {
		// Meaning questions need characters that carry a meaning
		withMeaning := make([]models.Character, 0, len(pool))
		for _, c := range pool {
			if c.Meaning != "" {
				withMeaning = append(withMeaning, c)
			}
		}
		pool = withMeaning
	}

	if len(pool) < 2 {
		return nil, fmt.Errorf("not enough characters for a quiz")
	}

	shuffled := make([]models.Character, len(pool))
	copy(shuffled, pool)
	rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if count > len(shuffled) {
		count = len(shuffled)
	}

	questions := make([]Question, 0, count)
	for _, character := range shuffled[:count] {
		question := Question{
			Character: character,
			Mode:      mode,
		}

		switch mode {
		case RomajiToGlyph:
			question.Prompt = character.Romaji
		default:
			question.Prompt = character.Glyph
		}

		correct := answerFor(character, mode)
		options := append(distractors(rnd, character, pool, mode, 3), correct)
		correctIndex := len(options) - 1

		rnd.Shuffle(len(options), func(i, j int) {
			if i == correctIndex {
				correctIndex = j
			} else if j == correctIndex {
				correctIndex = i
			}
			options[i], options[j] = options[j], options[i]
		})

		question.Options = options
		question.CorrectIndex = correctIndex
		questions = append(questions, question)
	}

	return questions, nil
}

// Grade checks an answer and reports whether it was correct
func Grade(question Question, answerIndex int) bool {
	return answerIndex == question.CorrectIndex
}

// SaveResult records a finished quiz as a study session
func (q *Quiz) SaveResult(userID int64, questions []Question, correct int, duration int) error {
	total := len(questions)
	accuracy := 0.0
	if total > 0 {
		accuracy = float64(correct) / float64(total) * 100
	}

	session := &models.StudySession{
		UserID:   userID,
		Mode:     "quiz",
		Items:    total,
		Correct:  correct,
		Accuracy: accuracy,
		XPEarned: correct * 10,
		Duration: duration,
	}

	return q.sessionRepo.Create(session)
}

// answerFor returns the correct answer for a character under the given mode
func answerFor(character models.Character, mode Mode) string {
	switch mode {
	case RomajiToGlyph:
		return character.Glyph
	case GlyphToMeaning:
		return character.Meaning
	default:
		return character.Romaji
	}
}

// distractors picks n wrong answers, preferring characters from the same category
func distractors(rnd *rand.Rand, character models.Character, pool []models.Character, mode Mode, count int) []string {
	options := make([]string, 0, count)
	seen := map[string]bool{answerFor(character, mode): true}

	appendFrom := func(candidates []models.Character) {
		shuffled := make([]models.Character, len(candidates))
		copy(shuffled, candidates)
		rnd.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		for _, c := range shuffled {
			if len(options) >= count {
				return
			}
			answer := answerFor(c, mode)
			if c.ID == character.ID || answer == "" || seen[answer] {
				continue
			}
			options = append(options, answer)
			seen[answer] = true
		}
	}

	sameCategory := make([]models.Character, 0, len(pool))
	for _, c := range pool {
		if c.Category == character.Category {
			sameCategory = append(sameCategory, c)
		}
	}

	appendFrom(sameCategory)
	if len(options) < count {
		appendFrom(pool)
	}

	return options
}
