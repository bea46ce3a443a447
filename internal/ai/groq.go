package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/finflowhq/finflow_bot/internal/core/domain"
)

const groqBaseURL = "https://api.groq.com/openai/v1"

// GroqClient talks to Groq's OpenAI-compatible API. It serves both chat
// completions and Whisper transcription, so it participates in every
// capability.
type GroqClient struct {
	name         string
	apiKey       string
	model        string
	whisperModel string
	http         *http.Client
	baseURL      string
}

// NewGroqClient builds a Groq backend. name distinguishes multiple
// configured keys in logs and usage records.
func NewGroqClient(name, apiKey, model, whisperModel string) *GroqClient {
	return &GroqClient{
		name:         name,
		apiKey:       apiKey,
		model:        model,
		whisperModel: whisperModel,
		http:         &http.Client{},
		baseURL:      groqBaseURL,
	}
}

func (c *GroqClient) Name() string { return c.name }

func (c *GroqClient) Supports(capability domain.Capability) bool {
	switch capability {
	case domain.CapabilityTranscription, domain.CapabilityExtraction, domain.CapabilityAnalysis:
		return true
	}
	return false
}

func (c *GroqClient) Complete(ctx context.Context, prompt string) (string, int64, error) {
	body := map[string]any{
		"model":       c.model,
		"temperature": 0.7,
		"max_tokens":  1000,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
	}
	b, err := json.Marshal(body)
	if err != nil {
		return "", 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", 0, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(resp.Body)
		return "", 0, fmt.Errorf("groq completion error: %s", string(msg))
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Usage struct {
			TotalTokens int64 `json:"total_tokens"`
		} `json:"usage"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", 0, err
	}
	if len(out.Choices) == 0 {
		return "", 0, fmt.Errorf("groq completion returned no choices")
	}

	cost := out.Usage.TotalTokens
	if cost == 0 {
		cost = costCompletionGuess
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), cost, nil
}

func (c *GroqClient) Transcribe(ctx context.Context, filename string, audio []byte) (string, int64, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", 0, err
	}
	if _, err := io.Copy(fw, bytes.NewReader(audio)); err != nil {
		return "", 0, err
	}
	_ = mw.WriteField("model", c.whisperModel)
	_ = mw.WriteField("language", "uz")
	_ = mw.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/audio/transcriptions", &buf)
	if err != nil {
		return "", 0, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(resp.Body)
		return "", 0, fmt.Errorf("groq whisper error: %s", string(msg))
	}

	var out struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", 0, err
	}
	return strings.TrimSpace(out.Text), costTranscription, nil
}
