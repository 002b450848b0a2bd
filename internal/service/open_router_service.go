package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const openRouterSystemPrompt = "You are an HR assistant for a recruitment team. Answer only with valid JSON."

type OpenRouterService struct {
	APIKey string
	Model  string
	URL    string
	client *resty.Client
}

func NewOpenRouterService() *OpenRouterService {
	cfg := config.LoadOpenRouterConfig()
	return NewOpenRouterServiceWith(cfg.APIKey, cfg.Model, cfg.URL)
}

func NewOpenRouterServiceWith(apiKey, model, url string) *OpenRouterService {
	return &OpenRouterService{
		APIKey: apiKey,
		Model:  model,
		URL:    url,
		client: resty.New().SetTimeout(60 * time.Second),
	}
}

func (s *OpenRouterService) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"model": s.Model,
			"messages": []map[string]string{
				{"role": "system", "content": openRouterSystemPrompt},
				{"role": "user", "content": prompt},
			},
		}).
		Post(s.URL)
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("openrouter: status %d: %s", resp.StatusCode(), resp.String())
	}

	text := gjson.Get(resp.String(), "choices.0.message.content").String()
	if text == "" {
		return "", fmt.Errorf("no response from LLM")
	}
	return text, nil
}
