package tts

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// ElevenLabs represents a client for the ElevenLabs text-to-speech API
type ElevenLabs struct {
	apiKey  string
	apiURL  string
	modelID string
	voiceID string
}

// New creates a new ElevenLabs client
func New() (*ElevenLabs, error) {
	apiKey := os.Getenv("ELEVENLABS_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("ELEVENLABS_API_KEY environment variable is not set")
	}

	voiceID := os.Getenv("ELEVENLABS_VOICE_ID")
	if voiceID == "" {
		// Default multilingual voice
		voiceID = "21m00Tcm4TlvDq8ikWAM"
	}

	return &ElevenLabs{
		apiKey:  apiKey,
		apiURL:  "https://api.elevenlabs.io/v1",
		modelID: "eleven_multilingual_v2",
		voiceID: voiceID,
	}, nil
}

// VoiceSettings controls the synthesis parameters
type VoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

// SynthesisRequest represents a request to the text-to-speech endpoint
type SynthesisRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings VoiceSettings `json:"voice_settings"`
}

// Voice represents a voice returned by the voices endpoint
type Voice struct {
	VoiceID string            `json:"voice_id"`
	Name    string            `json:"name"`
	Labels  map[string]string `json:"labels"`
}

type voicesResponse struct {
	Voices []Voice `json:"voices"`
}

type apiError struct {
	Detail struct {
		Message string `json:"message"`
	} `json:"detail"`
}

// Synthesize converts the given Japanese text to speech and returns MP3 audio data
func (c *ElevenLabs) Synthesize(text string) ([]byte, error) {
	request := SynthesisRequest{
		Text:    text,
		ModelID: c.modelID,
		VoiceSettings: VoiceSettings{
			Stability:       0.5,
			SimilarityBoost: 0.75,
		},
	}

	requestData, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %v", err)
	}

	url := fmt.Sprintf("%s/text-to-speech/%s", c.apiURL, c.voiceID)
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(requestData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("xi-api-key", c.apiKey)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp apiError
		body, _ := io.ReadAll(resp.Body)
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Detail.Message != "" {
			return nil, fmt.Errorf("API error: %s", errResp.Detail.Message)
		}
		return nil, fmt.Errorf("API error: status %d", resp.StatusCode)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio data: %v", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("empty audio response")
	}

	return audio, nil
}

// JapaneseVoices returns the available voices labeled as Japanese
func (c *ElevenLabs) JapaneseVoices() ([]Voice, error) {
	req, err := http.NewRequest("GET", c.apiURL+"/voices", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}

	req.Header.Set("xi-api-key", c.apiKey)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API error: status %d", resp.StatusCode)
	}

	var response voicesResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode response: %v", err)
	}

	var japanese []Voice
	for _, v := range response.Voices {
		lang := strings.ToLower(v.Labels["language"])
		if lang == "ja" || lang == "japanese" {
			japanese = append(japanese, v)
		}
	}

	return japanese, nil
}
