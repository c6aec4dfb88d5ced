package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"call-server/internal/observability"
)

const defaultBaseURL = "https://api.elevenlabs.io"
const synthesisModel = "eleven_monolingual_v1"

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

type synthesisRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

// Client streams synthesized speech from ElevenLabs.
type Client struct {
	apiKey     string
	voiceID    string
	baseURL    string
	httpClient *http.Client
	logger     *observability.Logger
}

func NewClient(apiKey, voiceID string, logger *observability.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("ElevenLabs API key is required")
	}
	if voiceID == "" {
		return nil, fmt.Errorf("ElevenLabs voice ID is required")
	}
	return &Client{
		apiKey:  apiKey,
		voiceID: voiceID,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}, nil
}

// WithBaseURL points the client at a different endpoint. Used by tests.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// SynthesizeStream converts text to speech and returns the MP3 audio stream.
// The caller owns the returned reader and must close it.
func (c *Client) SynthesizeStream(ctx context.Context, text string) (io.ReadCloser, error) {
	payload, err := json.Marshal(synthesisRequest{
		Text:    text,
		ModelID: synthesisModel,
		VoiceSettings: voiceSettings{
			Stability:       0.5,
			SimilarityBoost: 0.7,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal synthesis request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/text-to-speech/%s/stream", c.baseURL, c.voiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create synthesis request: %w", err)
	}
	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error(ctx, "Failed to reach ElevenLabs", err)
		return nil, fmt.Errorf("failed to synthesize speech: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		resp.Body.Close()
		err := fmt.Errorf("elevenlabs returned status %d: %s", resp.StatusCode, body)
		c.logger.Error(ctx, "Speech synthesis failed", err)
		return nil, err
	}
	return resp.Body, nil
}
