package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/config"
	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/logger"
	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

const maxEmbeddingInput = 10000

var ErrCircuitOpen = errors.New("gemini: circuit breaker open")

type GeminiService struct {
	Client            *genai.Client
	Model             string
	EmbeddingModel    string
	MaxRetries        int
	BaseDelay         time.Duration
	MaxDelay          time.Duration
	RequestTimeout    time.Duration
	log               *logrus.Logger
	mu                sync.Mutex
	consecutiveErrors int
	circuitBreakerMax int
	cooldown          time.Duration
	openedAt          time.Time
	trialInFlight     bool
	now               func() time.Time
}

func NewGeminiService(ctx context.Context) (*GeminiService, error) {
	geminiConfig := config.LoadGeminiConfig()
	apiKey := geminiConfig.APIKey
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiService{
		Client:            client,
		Model:             geminiConfig.Model,
		EmbeddingModel:    geminiConfig.EmbeddingModel,
		MaxRetries:        3,
		BaseDelay:         time.Second,
		MaxDelay:          30 * time.Second,
		RequestTimeout:    60 * time.Second,
		log:               logger.L(),
		circuitBreakerMax: 5,
		cooldown:          30 * time.Second,
		now:               time.Now,
	}, nil
}

func (s *GeminiService) Generate(ctx context.Context, prompt string) (text string, err error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}
	if err := s.checkCircuit(); err != nil {
		return "", err
	}
	defer func() { s.settle(ctx, err) }()

	timeoutCtx, cancel := context.WithTimeout(ctx, s.RequestTimeout)
	defer cancel()

	genConfig := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(float32(0.2)),
		ResponseMIMEType: "application/json",
	}

	var lastErr error
	for attempt := 0; attempt <= s.MaxRetries; attempt++ {
		if err := s.waitBeforeRetry(timeoutCtx, attempt, "Generate"); err != nil {
			return "", err
		}

		result, err := s.Client.Models.GenerateContent(timeoutCtx, s.Model, genai.Text(prompt), genConfig)
		if err == nil {
			if err := validateGenerateResponse(result); err != nil {
				return "", fmt.Errorf("invalid response: %w", err)
			}
			return result.Text(), nil
		}

		lastErr = err
		if !isRetryableError(err) {
			s.log.WithError(err).Warn("gemini: non-retryable error")
			return "", fmt.Errorf("generate content failed: %w", err)
		}
		s.log.WithError(err).WithField("attempt", attempt+1).Warn("gemini: retryable error")
	}

	return "", fmt.Errorf("max retries (%d) exceeded for Generate: %w", s.MaxRetries, lastErr)
}

func (s *GeminiService) GenerateEmbedding(ctx context.Context, text string) (embedding []float32, err error) {
	trimmedText := strings.TrimSpace(text)
	if trimmedText == "" {
		return nil, fmt.Errorf("text for embedding cannot be empty")
	}
	if len(trimmedText) > maxEmbeddingInput {
		s.log.WithField("length", len(trimmedText)).Warn("gemini: embedding input truncated")
		trimmedText = truncateUTF8(trimmedText, maxEmbeddingInput)
	}
	if err := s.checkCircuit(); err != nil {
		return nil, err
	}
	defer func() { s.settle(ctx, err) }()

	timeoutCtx, cancel := context.WithTimeout(ctx, s.RequestTimeout)
	defer cancel()

	content := []*genai.Content{genai.NewContentFromText(trimmedText, genai.RoleUser)}

	var lastErr error
	for attempt := 0; attempt <= s.MaxRetries; attempt++ {
		if err := s.waitBeforeRetry(timeoutCtx, attempt, "GenerateEmbedding"); err != nil {
			return nil, err
		}

		result, err := s.Client.Models.EmbedContent(timeoutCtx, s.EmbeddingModel, content, nil)
		if err == nil {
			embeddings, err := validateEmbeddingResponse(result)
			if err != nil {
				return nil, fmt.Errorf("invalid embedding response: %w", err)
			}
			return embeddings, nil
		}

		lastErr = err
		if !isRetryableError(err) {
			s.log.WithError(err).Warn("gemini: non-retryable embedding error")
			return nil, fmt.Errorf("generate embedding failed: %w", err)
		}
		s.log.WithError(err).WithField("attempt", attempt+1).Warn("gemini: retryable embedding error")
	}

	return nil, fmt.Errorf("max retries (%d) exceeded for GenerateEmbedding: %w", s.MaxRetries, lastErr)
}

func (s *GeminiService) waitBeforeRetry(ctx context.Context, attempt int, op string) error {
	if attempt == 0 {
		return nil
	}
	delay := calculateBackoff(s.BaseDelay, s.MaxDelay, attempt)
	s.log.WithFields(logrus.Fields{"op": op, "attempt": attempt, "delay": delay}).Info("gemini: retrying")

	select {
	case <-time.After(delay):
		return nil
	case <-ctx.Done():
		return fmt.Errorf("context timeout during retry: %w", ctx.Err())
	}
}

// checkCircuit menolak panggilan selama breaker terbuka. Setelah cooldown
// lewat, satu panggilan percobaan diizinkan (half-open).
func (s *GeminiService) checkCircuit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.consecutiveErrors < s.circuitBreakerMax {
		return nil
	}
	if s.trialInFlight || s.clock().Sub(s.openedAt) < s.cooldown {
		return fmt.Errorf("%w: too many consecutive errors (%d)", ErrCircuitOpen, s.consecutiveErrors)
	}
	s.trialInFlight = true
	return nil
}

// settle mencatat hasil satu panggilan. Pembatalan dari pemanggil tidak
// dihitung sebagai kegagalan upstream.
func (s *GeminiService) settle(ctx context.Context, err error) {
	switch {
	case err == nil:
		s.recordSuccess()
	case ctx.Err() != nil:
		s.mu.Lock()
		s.trialInFlight = false
		s.mu.Unlock()
	default:
		s.recordFailure()
	}
}

func (s *GeminiService) recordSuccess() {
	s.mu.Lock()
	s.consecutiveErrors = 0
	s.trialInFlight = false
	s.mu.Unlock()
}

func (s *GeminiService) recordFailure() {
	s.mu.Lock()
	s.consecutiveErrors++
	if s.consecutiveErrors >= s.circuitBreakerMax {
		s.openedAt = s.clock()
	}
	s.trialInFlight = false
	s.mu.Unlock()
}

func (s *GeminiService) clock() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}

func (s *GeminiService) GetCircuitBreakerStatus() (consecutiveErrors int, isOpen bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.consecutiveErrors, s.consecutiveErrors >= s.circuitBreakerMax
}

// truncateUTF8 memotong s menjadi paling banyak limit byte tanpa memecah rune.
func truncateUTF8(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}

func calculateBackoff(base, maxDelay time.Duration, attempt int) time.Duration {
	delay := base * time.Duration(math.Pow(2, float64(attempt-1)))
	if delay > maxDelay {
		delay = maxDelay
	}
	return delay
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	code := 0
	var apiErr genai.APIError
	var apiErrPtr *genai.APIError
	switch {
	case errors.As(err, &apiErr):
		code = apiErr.Code
	case errors.As(err, &apiErrPtr):
		code = apiErrPtr.Code
	}
	switch code {
	case 429, 500, 502, 503, 504:
		return true
	case 400, 401, 403, 404:
		return false
	}

	errMsg := err.Error()
	return strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "temporary failure") ||
		strings.Contains(errMsg, "EOF")
}

func validateGenerateResponse(resp *genai.GenerateContentResponse) error {
	if resp == nil {
		return fmt.Errorf("response is nil")
	}
	if len(resp.Candidates) == 0 {
		return fmt.Errorf("no candidates in response")
	}
	if resp.Candidates[0].Content == nil {
		return fmt.Errorf("candidate content is nil")
	}
	if len(resp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("no parts in content")
	}
	return nil
}

func validateEmbeddingResponse(resp *genai.EmbedContentResponse) ([]float32, error) {
	if resp == nil {
		return nil, fmt.Errorf("response is nil")
	}
	if len(resp.Embeddings) == 0 {
		return nil, fmt.Errorf("no embeddings returned")
	}

	embeddings := resp.Embeddings[0].Values
	if len(embeddings) == 0 {
		return nil, fmt.Errorf("embedding vector is empty")
	}
	for i, val := range embeddings {
		if math.IsNaN(float64(val)) || math.IsInf(float64(val), 0) {
			return nil, fmt.Errorf("invalid embedding value at index %d: %v", i, val)
		}
	}
	return embeddings, nil
}
