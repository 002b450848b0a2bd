package config

import (
	"strings"
	"sync"
)

const (
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
)

type RecommendationConfig struct {
	Provider string
}

var (
	recommendationConfig *RecommendationConfig
	recommendationOnce   sync.Once
)

func LoadRecommendationConfig() *RecommendationConfig {
	recommendationOnce.Do(func() {
		provider := strings.ToLower(strings.TrimSpace(Env().GetString("RECOMMENDATION_PROVIDER")))
		if provider != ProviderOpenRouter {
			provider = ProviderGemini
		}
		recommendationConfig = &RecommendationConfig{Provider: provider}
	})
	return recommendationConfig
}
