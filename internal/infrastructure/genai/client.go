package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/lamare/creator-studio/internal/core/domain"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-3-flash-preview"
	requestTimeout = 60 * time.Second
)

// Config holds the settings for the Gemini content generation API.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Client calls the Gemini generateContent endpoint to produce marketing
// copy for the studio workflows.
type Client struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// NewClient creates a Gemini API client. Base URL and model fall back to
// defaults when unset.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		model:   model,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

// Generate builds the prompt for the given workflow kind and returns the
// model's text output.
func (c *Client) Generate(ctx context.Context, kind domain.GenerationKind, subject, topic string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("generation API key not set")
	}

	prompt, err := buildPrompt(kind, subject, topic)
	if err != nil {
		return "", err
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("generation request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generation API error (%d): %s", resp.StatusCode, string(respBody))
	}

	var apiResp generateResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if len(apiResp.Candidates) == 0 || len(apiResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response content")
	}
	return apiResp.Candidates[0].Content.Parts[0].Text, nil
}

// buildPrompt maps a workflow kind to its prompt. Subject is the product
// name (or niche, for ideas); topic carries the secondary input such as a
// category or a stats summary.
func buildPrompt(kind domain.GenerationKind, subject, topic string) (string, error) {
	switch kind {
	case domain.GenerateCaption:
		return fmt.Sprintf(`Buatlah caption promosi yang elegan dan memikat untuk produk affiliate Shopee: %q dalam kategori %s. Gunakan gaya bahasa yang persuasif tapi tetap eksklusif. Berikan 3 pilihan caption dengan hashtag yang relevan.`, subject, topic), nil
	case domain.GenerateScript:
		return fmt.Sprintf(`Buatlah naskah video pendek (60 detik) untuk promosi Shopee Affiliate produk: %q. Sertakan:
1. Hook (detik 0-5)
2. Problem statement
3. Product solution
4. Call to action yang mendesak.
Gunakan gaya bahasa santai namun meyakinkan.`, subject), nil
	case domain.GenerateIdeas:
		return fmt.Sprintf(`Berikan 5 ide konten kreatif yang sedang tren untuk niche %q di Shopee Affiliate. Jelaskan mengapa ide ini berpotensi viral.`, subject), nil
	case domain.GenerateStrategy:
		return fmt.Sprintf(`Analisis performa affiliate berikut dan berikan 3 saran strategi cerdas untuk meningkatkan konversi: %s. Fokus pada niche Shopee Affiliate.`, topic), nil
	case domain.GenerateImage:
		return fmt.Sprintf(`Buatlah deskripsi visual yang detail untuk foto produk promosi affiliate: %q. Jelaskan komposisi, pencahayaan, dan suasana yang menonjolkan kesan premium.`, subject), nil
	}
	return "", domain.ErrUnknownGenerationKind
}
