package assessment

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/example/kanabot/internal/pronunciation"
	"github.com/example/kanabot/pkg/models"
)

// Client scores pronunciation attempts against a remote assessment
// service, falling back to local text analysis when the service is
// unavailable or not configured.
type Client struct {
	apiURL   string
	apiKey   string
	http     *http.Client
	analyzer *pronunciation.Analyzer
}

// New creates a new assessment client. The remote service is optional:
// without ASSESSMENT_API_URL all scoring is done locally.
func New() *Client {
	return &Client{
		apiURL:   os.Getenv("ASSESSMENT_API_URL"),
		apiKey:   os.Getenv("ASSESSMENT_API_KEY"),
		http:     &http.Client{Timeout: 10 * time.Second},
		analyzer: pronunciation.New(),
	}
}

// AssessRequest represents a request to the assessment service
type AssessRequest struct {
	Target     string `json:"target"`
	Recognized string `json:"recognized"`
	Romaji     string `json:"romaji"`
	Category   string `json:"category"`
	Language   string `json:"language"`
}

// AssessResponse represents a response from the assessment service
type AssessResponse struct {
	OverallScore int      `json:"overall_score"`
	Accuracy     int      `json:"accuracy"`
	Fluency      int      `json:"fluency"`
	Completeness int      `json:"completeness"`
	Feedback     []string `json:"feedback"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
	Error        *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Assess scores a pronunciation attempt using the remote service
func (c *Client) Assess(target, recognized, romaji, category string) (*models.PronunciationAnalysis, error) {
	if c.apiURL == "" {
		return nil, fmt.Errorf("assessment service is not configured")
	}

	request := AssessRequest{
		Target:     target,
		Recognized: recognized,
		Romaji:     romaji,
		Category:   category,
		Language:   "ja",
	}

	requestData, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %v", err)
	}

	req, err := http.NewRequest("POST", c.apiURL, bytes.NewBuffer(requestData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// One retry on transport errors before giving up
		req.Body = io.NopCloser(bytes.NewBuffer(requestData))
		resp, err = c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to send request: %v", err)
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API error: status %d", resp.StatusCode)
	}

	var response AssessResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode response: %v", err)
	}

	if response.Error != nil {
		return nil, fmt.Errorf("API error: %s", response.Error.Message)
	}

	// A report with no scores at all is treated as low confidence
	if response.OverallScore == 0 && response.Accuracy == 0 && len(response.Feedback) == 0 {
		return nil, fmt.Errorf("low confidence assessment")
	}

	return &models.PronunciationAnalysis{
		OverallScore: response.OverallScore,
		Accuracy:     response.Accuracy,
		Fluency:      response.Fluency,
		Completeness: response.Completeness,
		Feedback:     response.Feedback,
		Strengths:    response.Strengths,
		Improvements: response.Improvements,
	}, nil
}

// AssessWithFallback scores an attempt remotely, falling back to the
// local analyzer when the remote service fails
func (c *Client) AssessWithFallback(target, recognized, romaji, category string) *models.PronunciationAnalysis {
	analysis, err := c.Assess(target, recognized, romaji, category)
	if err != nil {
		fmt.Printf("Error assessing pronunciation of '%s': %v\n", target, err)
		return c.analyzer.Analyze(target, recognized, romaji, category)
	}

	return analysis
}
