// Package content holds the built-in study catalogs: the two kana gojuon
// sets, a starter kanji set and the pronunciation-practice word list. The
// tables are immutable; Seed copies them into the database on startup.
package content

import (
	"fmt"
	"log"
	"strings"

	"github.com/example/kanabot/internal/database"
	"github.com/example/kanabot/pkg/models"
)

// Catalog returns every built-in study item
func Catalog() []models.Character {
	all := make([]models.Character, 0, len(hiraganaCatalog)+len(katakanaCatalog)+len(kanjiCatalog)+len(wordCatalog))
	all = append(all, hiraganaCatalog...)
	all = append(all, katakanaCatalog...)
	all = append(all, kanjiCatalog...)
	all = append(all, wordCatalog...)
	return all
}

// ItemID derives the stable scheduling key for a catalog entry. Review records
// reference this key rather than the database row id so re-seeding or
// re-importing cannot orphan a user's progress.
func ItemID(c *models.Character) string {
	return fmt.Sprintf("%s_%s", c.Script, c.Romaji)
}

// ParseItemID splits a scheduling key back into its script and romaji parts
func ParseItemID(id string) (models.Script, string, error) {
	parts := strings.SplitN(id, "_", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid item id: %q", id)
	}
	return models.Script(parts[0]), parts[1], nil
}

// Seed inserts the built-in catalogs, skipping entries that already exist.
func Seed() error {
	repo := database.NewCharacterRepository()

	created := 0
	for _, c := range Catalog() {
		entry := c
		inserted, err := repo.Create(&entry)
		if err != nil {
			return fmt.Errorf("failed to seed catalog: %v", err)
		}
		if inserted {
			created++
		}
	}

	if created > 0 {
		log.Printf("Seeded %d catalog entries", created)
	}
	return nil
}
