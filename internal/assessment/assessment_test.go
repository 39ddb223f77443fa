package assessment

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/kanabot/internal/pronunciation"
)

func newTestClient(url string) *Client {
	return &Client{
		apiURL:   url,
		http:     &http.Client{Timeout: time.Second},
		analyzer: pronunciation.New(),
	}
}

func TestAssessRemote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)

		var req AssessRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "さくら", req.Target)
		assert.Equal(t, "ja", req.Language)

		json.NewEncoder(w).Encode(AssessResponse{
			OverallScore: 92,
			Accuracy:     95,
			Fluency:      90,
			Completeness: 88,
			Feedback:     []string{"Great pronunciation!"},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	analysis, err := client.Assess("さくら", "sakura", "sakura", "vocabulary")
	require.NoError(t, err)
	assert.Equal(t, 92, analysis.OverallScore)
	assert.Equal(t, 95, analysis.Accuracy)
	assert.Equal(t, []string{"Great pronunciation!"}, analysis.Feedback)
}

func TestAssessServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Assess("さくら", "sakura", "sakura", "vocabulary")
	assert.Error(t, err)
}

func TestAssessNotConfigured(t *testing.T) {
	client := newTestClient("")
	_, err := client.Assess("さくら", "sakura", "sakura", "vocabulary")
	assert.Error(t, err)
}

func TestAssessWithFallback(t *testing.T) {
	// No remote service configured: the local analyzer should score the attempt
	client := newTestClient("")
	analysis := client.AssessWithFallback("さくら", "sakura", "sakura", "vocabulary")
	require.NotNil(t, analysis)
	assert.Equal(t, 100, analysis.OverallScore)
	assert.Equal(t, 100, analysis.Accuracy)
}

func TestAssessLowConfidence(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Empty report: no scores, no feedback
		json.NewEncoder(w).Encode(AssessResponse{})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Assess("さくら", "sakura", "sakura", "vocabulary")
	assert.Error(t, err)

	// The fallback path still produces a usable local analysis
	analysis := client.AssessWithFallback("さくら", "sakura", "sakura", "vocabulary")
	require.NotNil(t, analysis)
	assert.Equal(t, 100, analysis.OverallScore)
}

func TestAssessWithFallbackAfterFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	analysis := client.AssessWithFallback("つき", "suki", "tsuki", "vocabulary")
	require.NotNil(t, analysis)
	assert.Equal(t, 80, analysis.Accuracy)
}
