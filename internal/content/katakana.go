package content

import "github.com/example/kanabot/pkg/models"

// katakanaCatalog mirrors the hiragana gojuon in the katakana script.
var katakanaCatalog = []models.Character{
	{Script: models.ScriptKatakana, Glyph: "ア", Romaji: "a", Category: "vowels", Difficulty: 1},
	{Script: models.ScriptKatakana, Glyph: "イ", Romaji: "i", Category: "vowels", Difficulty: 1},
	{Script: models.ScriptKatakana, Glyph: "ウ", Romaji: "u", Category: "vowels", Difficulty: 1},
	{Script: models.ScriptKatakana, Glyph: "エ", Romaji: "e", Category: "vowels", Difficulty: 1},
	{Script: models.ScriptKatakana, Glyph: "オ", Romaji: "o", Category: "vowels", Difficulty: 1},
	{Script: models.ScriptKatakana, Glyph: "カ", Romaji: "ka", Category: "k-sounds", Difficulty: 1},
	{Script: models.ScriptKatakana, Glyph: "キ", Romaji: "ki", Category: "k-sounds", Difficulty: 1},
	{Script: models.ScriptKatakana, Glyph: "ク", Romaji: "ku", Category: "k-sounds", Difficulty: 1},
	{Script: models.ScriptKatakana, Glyph: "ケ", Romaji: "ke", Category: "k-sounds", Difficulty: 1},
	{Script: models.ScriptKatakana, Glyph: "コ", Romaji: "ko", Category: "k-sounds", Difficulty: 1},
	{Script: models.ScriptKatakana, Glyph: "サ", Romaji: "sa", Category: "s-sounds", Difficulty: 1},
	{Script: models.ScriptKatakana, Glyph: "シ", Romaji: "shi", Category: "s-sounds", Difficulty: 2},
	{Script: models.ScriptKatakana, Glyph: "ス", Romaji: "su", Category: "s-sounds", Difficulty: 1},
	{Script: models.ScriptKatakana, Glyph: "セ", Romaji: "se", Category: "s-sounds", Difficulty: 1},
	{Script: models.ScriptKatakana, Glyph: "ソ", Romaji: "so", Category: "s-sounds", Difficulty: 2},
	{Script: models.ScriptKatakana, Glyph: "タ", Romaji: "ta", Category: "t-sounds", Difficulty: 1},
	{Script: models.ScriptKatakana, Glyph: "チ", Romaji: "chi", Category: "t-sounds", Difficulty: 2},
	{Script: models.ScriptKatakana, Glyph: "ツ", Romaji: "tsu", Category: "t-sounds", Difficulty: 4},
	{Script: models.ScriptKatakana, Glyph: "テ", Romaji: "te", Category: "t-sounds", Difficulty: 1},
	{Script: models.ScriptKatakana, Glyph: "ト", Romaji: "to", Category: "t-sounds", Difficulty: 1},
	{Script: models.ScriptKatakana, Glyph: "ナ", Romaji: "na", Category: "n-sounds", Difficulty: 1},
	{Script: models.ScriptKatakana, Glyph: "ニ", Romaji: "ni", Category: "n-sounds", Difficulty: 1},
	{Script: models.ScriptKatakana, Glyph: "ヌ", Romaji: "nu", Category: "n-sounds", Difficulty: 2},
	{Script: models.ScriptKatakana, Glyph: "ネ", Romaji: "ne", Category: "n-sounds", Difficulty: 1},
	{Script: models.ScriptKatakana, Glyph: "ノ", Romaji: "no", Category: "n-sounds", Difficulty: 1},
	{Script: models.ScriptKatakana, Glyph: "ハ", Romaji: "ha", Category: "h-sounds", Difficulty: 1},
	{Script: models.ScriptKatakana, Glyph: "ヒ", Romaji: "hi", Category: "h-sounds", Difficulty: 1},
	{Script: models.ScriptKatakana, Glyph: "フ", Romaji: "fu", Category: "h-sounds", Difficulty: 2},
	{Script: models.ScriptKatakana, Glyph: "ヘ", Romaji: "he", Category: "h-sounds", Difficulty: 1},
	{Script: models.ScriptKatakana, Glyph: "ホ", Romaji: "ho", Category: "h-sounds", Difficulty: 1},
	{Script: models.ScriptKatakana, Glyph: "マ", Romaji: "ma", Category: "m-sounds", Difficulty: 1},
	{Script: models.ScriptKatakana, Glyph: "ミ", Romaji: "mi", Category: "m-sounds", Difficulty: 1},
	{Script: models.ScriptKatakana, Glyph: "ム", Romaji: "mu", Category: "m-sounds", Difficulty: 1},
	{Script: models.ScriptKatakana, Glyph: "メ", Romaji: "me", Category: "m-sounds", Difficulty: 1},
	{Script: models.ScriptKatakana, Glyph: "モ", Romaji: "mo", Category: "m-sounds", Difficulty: 1},
	{Script: models.ScriptKatakana, Glyph: "ヤ", Romaji: "ya", Category: "y-sounds", Difficulty: 1},
	{Script: models.ScriptKatakana, Glyph: "ユ", Romaji: "yu", Category: "y-sounds", Difficulty: 1},
	{Script: models.ScriptKatakana, Glyph: "ヨ", Romaji: "yo", Category: "y-sounds", Difficulty: 1},
	{Script: models.ScriptKatakana, Glyph: "ラ", Romaji: "ra", Category: "r-sounds", Difficulty: 3},
	{Script: models.ScriptKatakana, Glyph: "リ", Romaji: "ri", Category: "r-sounds", Difficulty: 3},
	{Script: models.ScriptKatakana, Glyph: "ル", Romaji: "ru", Category: "r-sounds", Difficulty: 3},
	{Script: models.ScriptKatakana, Glyph: "レ", Romaji: "re", Category: "r-sounds", Difficulty: 3},
	{Script: models.ScriptKatakana, Glyph: "ロ", Romaji: "ro", Category: "r-sounds", Difficulty: 3},
	{Script: models.ScriptKatakana, Glyph: "ワ", Romaji: "wa", Category: "w-sounds", Difficulty: 1},
	{Script: models.ScriptKatakana, Glyph: "ヲ", Romaji: "wo", Category: "w-sounds", Difficulty: 2},
	{Script: models.ScriptKatakana, Glyph: "ン", Romaji: "n", Category: "special", Difficulty: 2},
}
