package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/kanabot/pkg/models"
)

// CharacterRepository handles database operations for the study-item catalog
type CharacterRepository struct{}

// NewCharacterRepository creates a new repository instance
func NewCharacterRepository() *CharacterRepository {
	return &CharacterRepository{}
}

// GetByID returns a single catalog entry
func (r *CharacterRepository) GetByID(id int64) (*models.Character, error) {
	var c models.Character
	err := DB.Get(&c, "SELECT * FROM characters WHERE id = $1", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get character: %v", err)
	}
	return &c, nil
}

// GetByScript returns all catalog entries for one writing system
func (r *CharacterRepository) GetByScript(script models.Script) ([]models.Character, error) {
	var chars []models.Character
	err := DB.Select(&chars, "SELECT * FROM characters WHERE script = $1 ORDER BY id", script)
	if err != nil {
		return nil, fmt.Errorf("failed to get characters: %v", err)
	}
	return chars, nil
}

// GetByScriptAndRomaji resolves a scheduling key back to its catalog entry
func (r *CharacterRepository) GetByScriptAndRomaji(script models.Script, romaji string) (*models.Character, error) {
	var c models.Character
	err := DB.Get(&c, "SELECT * FROM characters WHERE script = $1 AND romaji = $2", script, romaji)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get character: %v", err)
	}
	return &c, nil
}

// GetByCategory returns catalog entries in one category (vowels, greetings, ...)
func (r *CharacterRepository) GetByCategory(category string) ([]models.Character, error) {
	var chars []models.Character
	err := DB.Select(&chars, "SELECT * FROM characters WHERE category = $1 ORDER BY id", category)
	if err != nil {
		return nil, fmt.Errorf("failed to get characters by category: %v", err)
	}
	return chars, nil
}

// GetRandom returns up to limit random entries for a script, for quiz use
func (r *CharacterRepository) GetRandom(script models.Script, limit int) ([]models.Character, error) {
	var chars []models.Character
	err := DB.Select(&chars,
		"SELECT * FROM characters WHERE script = $1 ORDER BY RANDOM() LIMIT $2",
		script, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get random characters: %v", err)
	}
	return chars, nil
}

// Count returns the catalog size
func (r *CharacterRepository) Count() (int, error) {
	var count int
	if err := DB.Get(&count, "SELECT COUNT(*) FROM characters"); err != nil {
		return 0, fmt.Errorf("failed to count characters: %v", err)
	}
	return count, nil
}

// Create inserts a catalog entry, skipping duplicates of (script, glyph, romaji).
// It reports whether a row was actually inserted.
func (r *CharacterRepository) Create(c *models.Character) (bool, error) {
	var existingID int64
	err := DB.QueryRow(
		"SELECT id FROM characters WHERE script = $1 AND glyph = $2 AND romaji = $3",
		c.Script, c.Glyph, c.Romaji).Scan(&existingID)
	if err == nil {
		c.ID = existingID
		return false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("failed to look up character: %v", err)
	}

	result, err := DB.Exec(`
		INSERT INTO characters (script, glyph, romaji, meaning, category, difficulty, examples, tips, mnemonic)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, c.Script, c.Glyph, c.Romaji, c.Meaning, c.Category, c.Difficulty, c.Examples, c.Tips, c.Mnemonic)
	if err != nil {
		return false, fmt.Errorf("failed to insert character: %v", err)
	}

	if id, err := result.LastInsertId(); err == nil {
		c.ID = id
	}
	return true, nil
}
