package vision

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterOpts configures an OpenRouterProvider.
type OpenRouterOpts struct {
	// BaseURL overrides the OpenRouter API base URL. Useful for
	// self-hosted OpenAI-compatible gateways.
	BaseURL string
	APIKey  string
	// Model is the model identifier, e.g. "qwen/qwen2.5-vl-72b-instruct".
	Model string
}

// OpenRouterProvider talks to OpenRouter or any OpenAI-compatible chat
// completions endpoint over plain HTTP.
type OpenRouterProvider struct {
	httpClient *resty.Client
	model      string
}

// NewOpenRouterProvider creates a provider for an OpenAI-compatible HTTP API.
func NewOpenRouterProvider(opts OpenRouterOpts) *OpenRouterProvider {
	baseURL := openRouterBaseURL
	if opts.BaseURL != "" {
		baseURL = opts.BaseURL
	}

	httpClient := resty.New().
		SetDebug(false).
		SetBaseURL(baseURL).
		SetHeaders(map[string]string{
			"Accept":        "application/json",
			"Authorization": "Bearer " + opts.APIKey,
		})

	return &OpenRouterProvider{httpClient: httpClient, model: opts.Model}
}

func (o *OpenRouterProvider) Name() string { return "openrouter" }

type chatImageURL struct {
	URL string `json:"url"`
}

type chatMessagePart struct {
	Type     string        `json:"type"`
	Text     string        `json:"text,omitempty"`
	ImageURL *chatImageURL `json:"image_url,omitempty"`
}

type chatMessage struct {
	Role    string            `json:"role"`
	Content []chatMessagePart `json:"content"`
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int64 `json:"prompt_tokens"`
		CompletionTokens int64 `json:"completion_tokens"`
		TotalTokens      int64 `json:"total_tokens"`
	} `json:"usage"`
}

// Describe implements the Provider interface over the chat completions API.
func (o *OpenRouterProvider) Describe(ctx context.Context, prompt string, images []Image) (*Response, error) {
	if len(images) == 0 {
		return nil, fmt.Errorf("no images provided")
	}

	parts := []chatMessagePart{{Type: "text", Text: prompt}}
	for _, img := range images {
		b64Data := base64.StdEncoding.EncodeToString(img.Data)
		dataURL := fmt.Sprintf("data:%s;base64,%s", img.MimeType, b64Data)
		parts = append(parts, chatMessagePart{
			Type:     "image_url",
			ImageURL: &chatImageURL{URL: dataURL},
		})
	}

	result := &chatCompletionResponse{}
	res, err := o.httpClient.NewRequest().
		SetContext(ctx).
		SetBody(chatCompletionRequest{
			Model:    o.model,
			Messages: []chatMessage{{Role: "user", Content: parts}},
		}).
		SetResult(result).
		Post("/chat/completions")
	if _, err := handleError(res, err); err != nil {
		return nil, err
	}

	if len(result.Choices) == 0 {
		return nil, fmt.Errorf("no response from %s", o.model)
	}

	usage := Usage{
		InputTokens:  result.Usage.PromptTokens,
		OutputTokens: result.Usage.CompletionTokens,
		TotalTokens:  result.Usage.TotalTokens,
	}

	log.Info().
		Str("model", o.model).
		Int("imageCount", len(images)).
		Int64("inputTokens", usage.InputTokens).
		Int64("outputTokens", usage.OutputTokens).
		Msg("vision llm call")

	return &Response{Text: result.Choices[0].Message.Content, Usage: usage}, nil
}

// handleError is a generic error handler for failing responses (>399 status
// code). Without this, failing responses would have nil error.
func handleError(res *resty.Response, err error) (*resty.Response, error) {
	if err != nil {
		return res, err
	}
	if res.IsError() {
		return res, fmt.Errorf("request failed: %s %s (status: %d)", res.Request.Method, res.Request.URL, res.StatusCode())
	}

	return res, nil
}
