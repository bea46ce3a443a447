package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/finflowhq/finflow_bot/internal/core/domain"
)

const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiClient talks to Google's Generative Language API. It only serves
// text generation, so it sits last in the fallback chain and never handles
// transcription.
type GeminiClient struct {
	apiKey  string
	model   string
	http    *http.Client
	baseURL string
}

func NewGeminiClient(apiKey, model string) *GeminiClient {
	return &GeminiClient{
		apiKey:  apiKey,
		model:   model,
		http:    &http.Client{},
		baseURL: geminiBaseURL,
	}
}

func (c *GeminiClient) Name() string { return "gemini" }

func (c *GeminiClient) Supports(capability domain.Capability) bool {
	return capability == domain.CapabilityExtraction || capability == domain.CapabilityAnalysis
}

func (c *GeminiClient) Complete(ctx context.Context, prompt string) (string, int64, error) {
	body := map[string]any{
		"contents": []map[string]any{
			{"parts": []map[string]string{{"text": prompt}}},
		},
	}
	b, err := json.Marshal(body)
	if err != nil {
		return "", 0, err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return "", 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(resp.Body)
		return "", 0, fmt.Errorf("gemini error: %s", string(msg))
	}

	var out struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", 0, err
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", 0, fmt.Errorf("gemini returned no candidates")
	}
	return strings.TrimSpace(out.Candidates[0].Content.Parts[0].Text), costCompletionGuess, nil
}

func (c *GeminiClient) Transcribe(ctx context.Context, filename string, audio []byte) (string, int64, error) {
	return "", 0, fmt.Errorf("gemini backend does not transcribe audio")
}
