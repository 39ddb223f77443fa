package pronunciation

import (
	"math"
	"strings"
	"unicode"

	"github.com/example/kanabot/pkg/models"
)

// Score weights. Accuracy dominates, fluency is secondary, completeness minor.
const (
	accuracyWeight     = 0.5
	fluencyWeight      = 0.3
	completenessWeight = 0.2

	// Penalty applied to fluency when a single word comes back with an
	// embedded space, a proxy for broken cadence.
	breakPenalty = 0.8
)

// Analyzer scores a recognized or typed attempt against a target string using
// normalized text similarity. It holds no state; one instance can be shared by
// any number of goroutines.
type Analyzer struct{}

// New creates an analyzer instance.
func New() *Analyzer {
	return &Analyzer{}
}

// Analyze compares the recognized text with both the native-script target and
// its romanization and returns scores plus human-readable feedback. It never
// fails: empty or malformed input degrades to zero scores, not errors.
func (a *Analyzer) Analyze(target, recognized, romaji, category string) *models.PronunciationAnalysis {
	normTarget := normalize(target)
	normRecognized := normalize(recognized)
	normRomaji := normalize(romaji)

	targetSim := similarity(normTarget, normRecognized)
	romajiSim := similarity(normRomaji, normRecognized)

	// The recognizer may legitimately return either the native script or the
	// romanization; the fluency and completeness heuristics are length ratios,
	// so they are measured against whichever reference matched best.
	reference := normTarget
	if romajiSim > targetSim {
		reference = normRomaji
	}

	// Normalization strips whitespace, so the broken-cadence check has to look
	// at the raw attempt.
	hasBreak := strings.Contains(strings.TrimSpace(recognized), " ")

	accuracy := round100(math.Max(targetSim, romajiSim))
	fluency := calculateFluency(reference, normRecognized, hasBreak)
	completeness := calculateCompleteness(reference, normRecognized)

	overall := int(math.Round(float64(accuracy)*accuracyWeight +
		float64(fluency)*fluencyWeight +
		float64(completeness)*completenessWeight))

	return &models.PronunciationAnalysis{
		OverallScore: overall,
		Accuracy:     accuracy,
		Fluency:      fluency,
		Completeness: completeness,
		Feedback:     buildFeedback(category, accuracy, fluency, completeness, overall),
		Strengths:    identifyStrengths(normTarget, reference, normRecognized, overall),
		Improvements: suggestImprovements(normTarget, normRecognized, normRomaji, category),
	}
}

// normalize lowercases, strips punctuation and removes all whitespace so the
// comparison sees only letters and digits.
func normalize(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// similarity is 1 - levenshtein/maxLen, clamped to [0,1].
func similarity(s1, s2 string) float64 {
	if s1 == s2 {
		return 1
	}
	r1 := []rune(s1)
	r2 := []rune(s2)
	if len(r1) == 0 || len(r2) == 0 {
		return 0
	}

	maxLen := len(r1)
	if len(r2) > maxLen {
		maxLen = len(r2)
	}
	sim := float64(maxLen-levenshtein(r1, r2)) / float64(maxLen)
	return math.Max(0, sim)
}

func levenshtein(r1, r2 []rune) int {
	prev := make([]int, len(r1)+1)
	cur := make([]int, len(r1)+1)
	for j := 0; j <= len(r1); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(r2); i++ {
		cur[0] = i
		for j := 1; j <= len(r1); j++ {
			cost := 1
			if r2[i-1] == r1[j-1] {
				cost = 0
			}
			cur[j] = min3(prev[j-1]+cost, cur[j-1]+1, prev[j]+1)
		}
		prev, cur = cur, prev
	}
	return prev[len(r1)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func calculateFluency(reference, recognized string, hasBreak bool) int {
	refLen := len([]rune(reference))
	recLen := len([]rune(recognized))
	if refLen == 0 || recLen == 0 {
		return 0
	}

	minLen, maxLen := recLen, refLen
	if minLen > maxLen {
		minLen, maxLen = maxLen, minLen
	}
	ratio := float64(minLen) / float64(maxLen)

	penalty := 1.0
	if hasBreak {
		penalty = breakPenalty
	}
	return round100(ratio * penalty)
}

func calculateCompleteness(reference, recognized string) int {
	refLen := len([]rune(reference))
	recLen := len([]rune(recognized))
	if refLen == 0 {
		return 100
	}
	if recLen == 0 {
		return 0
	}
	if recLen > refLen {
		recLen = refLen
	}
	return round100(float64(recLen) / float64(refLen))
}

func round100(v float64) int {
	return int(math.Round(v * 100))
}

func buildFeedback(category string, accuracy, fluency, completeness, overall int) []string {
	var feedback []string

	switch {
	case overall >= 90:
		feedback = append(feedback, "🎉 Excellent pronunciation! You sound very natural.")
	case overall >= 80:
		feedback = append(feedback, "👍 Great job! Your pronunciation is quite good.")
	case overall >= 70:
		feedback = append(feedback, "👌 Good effort! You're making progress.")
	case overall >= 60:
		feedback = append(feedback, "💪 Keep practicing! You're getting better.")
	default:
		feedback = append(feedback, "📚 Don't give up! Listen to the audio again and try slower.")
	}

	switch category {
	case "vowels":
		if accuracy < 80 {
			feedback = append(feedback, "Focus on mouth shape - Japanese vowels are very pure sounds.")
		}
	case "difficult":
		if accuracy < 70 {
			feedback = append(feedback, "These are challenging sounds! Break them down slowly.")
		}
	case "pitch":
		if fluency < 70 {
			feedback = append(feedback, "Remember pitch accent - try using hand gestures to help.")
		}
	}

	if completeness < 80 {
		feedback = append(feedback, "Try to pronounce the complete word - don't skip sounds.")
	}

	return feedback
}

func identifyStrengths(target, reference, recognized string, overall int) []string {
	var strengths []string

	if overall >= 80 {
		strengths = append(strengths, "Clear pronunciation")
	}
	if len([]rune(recognized)) >= int(float64(len([]rune(reference)))*0.8) && len(recognized) > 0 {
		strengths = append(strengths, "Good completeness")
	}
	if similarity(target, recognized) > 0.8 {
		strengths = append(strengths, "Accurate sound production")
	}

	if len(strengths) == 0 {
		strengths = append(strengths, "Good effort - keep practicing!")
	}
	return strengths
}

func suggestImprovements(target, recognized, romaji, category string) []string {
	var improvements []string

	if strings.Contains(romaji, "tsu") && strings.Contains(recognized, "su") {
		improvements = append(improvements, `Work on "tsu" sound - touch tongue to roof of mouth`)
	}
	if strings.Contains(romaji, "r") && !strings.Contains(recognized, "r") {
		improvements = append(improvements, `Practice Japanese "r" sound - light tongue flick`)
	}
	if float64(len([]rune(target))) > float64(len([]rune(recognized)))*1.5 {
		improvements = append(improvements, "Speak more slowly and clearly")
	}
	if category == "pitch" && similarity(target, recognized) < 0.7 {
		improvements = append(improvements, "Focus on pitch patterns - practice with rising and falling tones")
	}

	if len(improvements) == 0 {
		improvements = append(improvements,
			"Listen to native speakers more",
			"Practice daily for better muscle memory")
	}
	return improvements
}
