package enhance

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"k8s.io/klog/v2"
)

// CompatProvider talks to OpenAI-compatible chat endpoints over plain HTTP.
// Gateways in front of hosted models answer in several shapes; all variant
// handling lives in normalizeResponse so nothing outside this file ever
// branches on upstream shape.
type CompatProvider struct {
	baseURL   string
	apiKey    string
	model     string
	maxTokens int
	client    *http.Client
}

func NewCompatProvider(apiKey, baseURL, model string, maxTokens int) *CompatProvider {
	return &CompatProvider{
		baseURL:   strings.TrimRight(baseURL, "/"),
		apiKey:    apiKey,
		model:     model,
		maxTokens: maxTokens,
		client:    &http.Client{},
	}
}

func (p *CompatProvider) Name() string {
	return "compat"
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature"`
}

func (p *CompatProvider) Generate(ctx context.Context, system, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: p.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   p.maxTokens,
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		klog.V(6).Infof("compat upstream returned status %d: %s", resp.StatusCode, truncate(raw, 200))
		return "", fmt.Errorf("upstream status %d", resp.StatusCode)
	}

	return normalizeResponse(raw), nil
}

// normalizeResponse collapses the known upstream response variants into one
// text result:
//
//	"plain string"
//	{"message": {"content": "..."}}
//	{"output_text": "..."}
//	{"choices": [{"message": {"content": "..."}}]}
//
// Non-JSON bodies are taken as the text itself. An unrecognized JSON shape
// yields empty text, which the enhancement service classifies as an empty
// response.
func normalizeResponse(raw []byte) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return ""
	}

	var asString string
	if err := json.Unmarshal(trimmed, &asString); err == nil {
		return asString
	}

	var shaped struct {
		OutputText string `json:"output_text"`
		Message    *struct {
			Content string `json:"content"`
		} `json:"message"`
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(trimmed, &shaped); err != nil {
		// Not JSON at all; treat the body as plain text.
		return string(trimmed)
	}

	switch {
	case len(shaped.Choices) > 0:
		return shaped.Choices[0].Message.Content
	case shaped.Message != nil:
		return shaped.Message.Content
	default:
		return shaped.OutputText
	}
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
