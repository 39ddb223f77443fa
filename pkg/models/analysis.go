package models

// PronunciationAnalysis is the result of scoring one attempt against a target.
// All four scores are 0-100. It is built per call and never persisted.
type PronunciationAnalysis struct {
	OverallScore int      `json:"overall_score"`
	Accuracy     int      `json:"accuracy"`
	Fluency      int      `json:"fluency"`
	Completeness int      `json:"completeness"`
	Feedback     []string `json:"feedback"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
}
