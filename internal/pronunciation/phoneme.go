package pronunciation

import "strings"

// Difficulty is the tier assigned to a Japanese sound fragment.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// PhonemeDifficulty describes how hard a sound is for learners and how to fix
// the usual mistakes.
type PhonemeDifficulty struct {
	Difficulty     Difficulty
	CommonMistakes []string
	Tips           []string
}

// phonemeOrder fixes the lookup order so tip lists come out deterministic.
var phonemeOrder = []string{"tsu", "r", "rya", "ryu", "ryo", "n", "long_vowels", "pitch_accent"}

// phonemeDifficulty is keyed by romanized sound fragments. It is read-only
// after package init.
var phonemeDifficulty = map[string]PhonemeDifficulty{
	"tsu": {
		Difficulty:     DifficultyHard,
		CommonMistakes: []string{`pronounced as "su"`, `too much "t" sound`, "missing aspiration"},
		Tips:           []string{"Touch tongue to roof of mouth", "Quick release of air", `Like "ts" in "cats"`},
	},
	"r": {
		Difficulty:     DifficultyHard,
		CommonMistakes: []string{`English "r" sound`, "too rolled", "too harsh"},
		Tips:           []string{"Quick tongue flick", `Between "r" and "l"`, "Light touch to roof"},
	},
	"rya": {
		Difficulty:     DifficultyHard,
		CommonMistakes: []string{`separated "r-ya"`, "too slow", "wrong tongue position"},
		Tips:           []string{"Fluid combination", "Quick transition", "Practice slowly first"},
	},
	"ryu": {
		Difficulty:     DifficultyHard,
		CommonMistakes: []string{"separated sounds", `English "r"`, `too rounded "u"`},
		Tips:           []string{"Smooth combination", `Light "r" sound`, `Compressed "yu"`},
	},
	"ryo": {
		Difficulty:     DifficultyHard,
		CommonMistakes: []string{"separated sounds", "wrong pitch", "too long"},
		Tips:           []string{"Quick combination", "Even pitch", "Fluid motion"},
	},
	"n": {
		Difficulty:     DifficultyMedium,
		CommonMistakes: []string{"not nasal enough", "too short", "wrong placement"},
		Tips:           []string{"Nasal sound", "Longer duration", "Mouth closed"},
	},
	"long_vowels": {
		Difficulty:     DifficultyMedium,
		CommonMistakes: []string{"too short", "pitch change", "wrong quality"},
		Tips:           []string{"Hold twice as long", "Keep same pitch", "Don't diphthongize"},
	},
	"pitch_accent": {
		Difficulty:     DifficultyHard,
		CommonMistakes: []string{"wrong pitch pattern", "English stress", "flat intonation"},
		Tips:           []string{"Learn pitch patterns", "Practice with hand gestures", "Listen to natives"},
	},
}

// Tips returns pronunciation tips for every sound fragment that occurs in the
// given romaji, deduplicated. A generic three-tip fallback is returned when
// nothing matches.
func (a *Analyzer) Tips(romaji string) []string {
	var tips []string
	seen := make(map[string]bool)

	for _, sound := range phonemeOrder {
		if !strings.Contains(romaji, sound) {
			continue
		}
		for _, tip := range phonemeDifficulty[sound].Tips {
			if !seen[tip] {
				seen[tip] = true
				tips = append(tips, tip)
			}
		}
	}

	if len(tips) == 0 {
		return []string{
			"Listen to the audio carefully",
			"Practice slowly at first",
			"Record yourself and compare",
		}
	}
	return tips
}

// AssessDifficulty returns the highest difficulty tier among the sound
// fragments found in the romaji, defaulting to easy.
func (a *Analyzer) AssessDifficulty(romaji string) Difficulty {
	result := DifficultyEasy
	for sound, entry := range phonemeDifficulty {
		if !strings.Contains(romaji, sound) {
			continue
		}
		switch entry.Difficulty {
		case DifficultyHard:
			result = DifficultyHard
		case DifficultyMedium:
			if result != DifficultyHard {
				result = DifficultyMedium
			}
		}
	}
	return result
}
