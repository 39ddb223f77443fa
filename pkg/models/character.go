package models

import "time"

// Script identifies which writing system or item group a character belongs to.
type Script string

const (
	ScriptHiragana Script = "hiragana"
	ScriptKatakana Script = "katakana"
	ScriptKanji    Script = "kanji"
	ScriptWord     Script = "word" // multi-character vocabulary items
)

// Character represents a single study item: a kana, a kanji, or a whole word
type Character struct {
	ID         int64     `json:"id" db:"id"`
	Script     Script    `json:"script" db:"script"`
	Glyph      string    `json:"glyph" db:"glyph"`
	Romaji     string    `json:"romaji" db:"romaji"`
	Meaning    string    `json:"meaning" db:"meaning"`
	Category   string    `json:"category" db:"category"` // vowels, k-sounds, greetings, pitch, ...
	Difficulty int       `json:"difficulty" db:"difficulty"` // 0-5 scale
	Examples   string    `json:"examples" db:"examples"` // newline-separated usage examples
	Tips       string    `json:"tips" db:"tips"`         // newline-separated pronunciation tips
	Mnemonic   string    `json:"mnemonic" db:"mnemonic"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}
