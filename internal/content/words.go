package content

import "github.com/example/kanabot/pkg/models"

// wordCatalog is the pronunciation-practice set: items grouped by the
// categories the analyzer gives targeted feedback for.
var wordCatalog = []models.Character{
	{Script: models.ScriptWord, Glyph: "あ", Romaji: "a", Meaning: `vowel sound "ah"`, Category: "vowels", Difficulty: 1,
		Tips: "Open mouth wide\nSound like \"ah\" in \"father\"\nKeep tongue low and flat"},
	{Script: models.ScriptWord, Glyph: "い", Romaji: "i", Meaning: `vowel sound "ee"`, Category: "vowels", Difficulty: 1,
		Tips: "Stretch corners of mouth\nSound like \"ee\" in \"see\"\nTongue high and forward"},
	{Script: models.ScriptWord, Glyph: "う", Romaji: "u", Meaning: `vowel sound "oo"`, Category: "vowels", Difficulty: 1,
		Tips: "Round lips slightly\nSound like \"oo\" in \"moon\"\nTongue back and high"},
	{Script: models.ScriptWord, Glyph: "え", Romaji: "e", Meaning: `vowel sound "eh"`, Category: "vowels", Difficulty: 1,
		Tips: "Mid-open mouth\nSound like \"e\" in \"pet\"\nTongue in middle position"},
	{Script: models.ScriptWord, Glyph: "お", Romaji: "o", Meaning: `vowel sound "oh"`, Category: "vowels", Difficulty: 1,
		Tips: "Round lips moderately\nSound like \"o\" in \"port\"\nTongue back and mid-high"},

	{Script: models.ScriptWord, Glyph: "こんにちは", Romaji: "konnichiwa", Meaning: "hello/good afternoon", Category: "greetings", Difficulty: 2,
		Tips: "Equal stress on all syllables\nClear \"n\" sounds\nDon't rush the pronunciation"},
	{Script: models.ScriptWord, Glyph: "ありがとう", Romaji: "arigatou", Meaning: "thank you", Category: "greetings", Difficulty: 2,
		Tips: "Slight rise in pitch on \"ga\"\nClear \"r\" sound (like quick \"d\")\nLong \"ou\" at the end"},
	{Script: models.ScriptWord, Glyph: "さようなら", Romaji: "sayonara", Meaning: "goodbye", Category: "greetings", Difficulty: 2,
		Tips: "Even rhythm throughout\nClear vowel sounds\nDon't drop the final \"a\""},

	{Script: models.ScriptWord, Glyph: "つ", Romaji: "tsu", Meaning: "tsu sound", Category: "difficult", Difficulty: 4,
		Tips: "Tongue touches roof of mouth\nQuick release of air\nLike \"ts\" in \"cats\""},
	{Script: models.ScriptWord, Glyph: "りゃ", Romaji: "rya", Meaning: "rya sound", Category: "difficult", Difficulty: 5,
		Tips: "Quick \"r\" followed by \"ya\"\nTongue flick, not roll\nKeep it fluid"},
	{Script: models.ScriptWord, Glyph: "りょこう", Romaji: "ryokou", Meaning: "travel", Category: "vocabulary", Difficulty: 4,
		Tips: "Quick \"ryo\" combination\nLong \"ou\" ending\nPractice slowly first"},

	// Bridge and chopsticks share the glyphs; the pitch pattern is the lesson.
	{Script: models.ScriptWord, Glyph: "はし", Romaji: "hashi", Meaning: "bridge (low-high) vs chopsticks (high-low)", Category: "pitch", Difficulty: 3,
		Tips: "Low-high means bridge, high-low means chopsticks\nPitch accent changes meaning\nPractice with hand gestures"},
}
