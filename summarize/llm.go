package summarize

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	defaultEndpoint = "https://api.openai.com/v1/chat/completions"
	defaultModel    = "gpt-4o-mini"
	httpTimeout     = 60 * time.Second

	// Transcripts longer than this are truncated before being sent;
	// a marker tells the model the tail is missing.
	maxTranscriptChars = 15000
	truncationMarker   = "... [transcript truncated due to length]"

	systemPrompt = "You are a helpful assistant that summarizes video transcripts accurately and concisely."
	userPrompt   = "Please provide a reasonably detailed summary of the following transcript. " +
		"Please try to capture the logical flow of the transcript and use different " +
		"indentation and bullet points to express the hierarchy of the content.\n\nTranscript:\n"
)

// LLM sends transcripts to an OpenAI-compatible chat completions API.
type LLM struct {
	apiKey    string
	model     string
	maxTokens int
	endpoint  string
	client    *http.Client
}

// NewLLM creates a summarizer for the given API key and model. An empty
// model selects the default.
func NewLLM(apiKey, model string) *LLM {
	if model == "" {
		model = defaultModel
	}
	return &LLM{
		apiKey:    apiKey,
		model:     model,
		maxTokens: 1000,
		endpoint:  defaultEndpoint,
		client:    &http.Client{Timeout: httpTimeout},
	}
}

// Summarize returns a summary of transcript, truncating oversized inputs
// rather than failing on them.
func (l *LLM) Summarize(ctx context.Context, transcript string) (string, error) {
	if transcript == "" {
		return "", fmt.Errorf("summarize: empty transcript")
	}

	if len(transcript) > maxTranscriptChars {
		transcript = transcript[:maxTranscriptChars] + truncationMarker
	}

	reqBody := chatRequest{
		Model: l.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt + transcript},
		},
		Temperature: 0.3,
		MaxTokens:   l.maxTokens,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+l.apiKey)

	resp, err := l.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("summarize: api returned status %d", resp.StatusCode)
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("summarize: empty choices in response")
	}

	return chatResp.Choices[0].Message.Content, nil
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}
