package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/example/kanabot/internal/database"
	"github.com/example/kanabot/pkg/models"
)

// ImportConfig defines the import configuration
type ImportConfig struct {
	FilePath         string // Path to the Excel or CSV file
	GlyphColumn      string // Column with the character or word
	RomajiColumn     string // Column with the romanized reading
	MeaningColumn    string // Column with the English meaning
	ScriptColumn     string // Column with the script (hiragana/katakana/kanji/word)
	CategoryColumn   string // Column with the category
	DifficultyColumn string // Column with the difficulty (0-5)
	ExamplesColumn   string // Column with usage examples
	SheetName        string // Name of the sheet to import
	StartRow         int    // The row to start importing from (1-based index)
}

// DefaultImportConfig returns the default import configuration
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		GlyphColumn:      "A",
		RomajiColumn:     "B",
		MeaningColumn:    "C",
		ScriptColumn:     "D",
		CategoryColumn:   "E",
		DifficultyColumn: "F",
		ExamplesColumn:   "G",
		SheetName:        "Sheet1",
		StartRow:         2, // By default, start from the second row (skip header)
	}
}

// ImportResult holds the result of an import operation
type ImportResult struct {
	TotalProcessed int
	Created        int
	Skipped        int
	Errors         []string
}

// ImportCharacters imports study items from an Excel or CSV file
func ImportCharacters(config ImportConfig) (*ImportResult, error) {
	ext := strings.ToLower(filepath.Ext(config.FilePath))
	if ext == ".csv" {
		return importFromCSV(config)
	}
	return importFromExcel(config)
}

func importFromExcel(config ImportConfig) (*ImportResult, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %v", err)
	}

	result := &ImportResult{Errors: make([]string, 0)}
	repo := database.NewCharacterRepository()

	columnIndex := func(col string) int {
		idx, err := excelize.ColumnNameToNumber(col)
		if err != nil {
			return -1
		}
		return idx - 1
	}

	cell := func(row []string, col string) string {
		idx := columnIndex(col)
		if idx < 0 || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	for i, row := range rows {
		if i < config.StartRow-1 {
			continue
		}
		result.TotalProcessed++

		character := characterFromFields(
			cell(row, config.GlyphColumn),
			cell(row, config.RomajiColumn),
			cell(row, config.MeaningColumn),
			cell(row, config.ScriptColumn),
			cell(row, config.CategoryColumn),
			cell(row, config.DifficultyColumn),
			cell(row, config.ExamplesColumn),
		)
		if character == nil {
			result.Skipped++
			continue
		}

		created, err := repo.Create(character)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
			continue
		}
		if created {
			result.Created++
		} else {
			result.Skipped++
		}
	}

	return result, nil
}

func importFromCSV(config ImportConfig) (*ImportResult, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	result := &ImportResult{Errors: make([]string, 0)}
	repo := database.NewCharacterRepository()

	field := func(row []string, idx int) string {
		if idx < 0 || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	rowNum := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %v", err)
		}

		rowNum++
		if rowNum < config.StartRow {
			continue
		}
		result.TotalProcessed++

		// CSV columns are positional: glyph, romaji, meaning, script, category, difficulty, examples
		character := characterFromFields(
			field(row, 0), field(row, 1), field(row, 2), field(row, 3),
			field(row, 4), field(row, 5), field(row, 6),
		)
		if character == nil {
			result.Skipped++
			continue
		}

		created, err := repo.Create(character)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
			continue
		}
		if created {
			result.Created++
		} else {
			result.Skipped++
		}
	}

	return result, nil
}

// characterFromFields validates one imported row; nil means the row is
// unusable and should be skipped rather than fail the whole import.
func characterFromFields(glyph, romaji, meaning, script, category, difficulty, examples string) *models.Character {
	if glyph == "" || romaji == "" {
		return nil
	}

	s := models.Script(strings.ToLower(script))
	switch s {
	case models.ScriptHiragana, models.ScriptKatakana, models.ScriptKanji, models.ScriptWord:
	default:
		s = models.ScriptWord
	}

	diff := 3
	if d, err := strconv.Atoi(difficulty); err == nil {
		if d < 0 {
			d = 0
		}
		if d > 5 {
			d = 5
		}
		diff = d
	}

	if category == "" {
		category = "vocabulary"
	}

	return &models.Character{
		Script:     s,
		Glyph:      glyph,
		Romaji:     strings.ToLower(romaji),
		Meaning:    meaning,
		Category:   category,
		Difficulty: diff,
		Examples:   examples,
	}
}
