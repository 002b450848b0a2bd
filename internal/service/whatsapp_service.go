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

// WhatsAppService mengirim pesan ke grup WhatsApp lewat API watzap.
type WhatsAppService struct {
	cfg    config.WhatsAppConfig
	client *resty.Client
}

func NewWhatsAppService(cfg config.WhatsAppConfig) *WhatsAppService {
	return &WhatsAppService{
		cfg: cfg,
		client: resty.New().
			SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
			SetTimeout(15 * time.Second),
	}
}

func (s *WhatsAppService) SendGroupMessage(ctx context.Context, message string) error {
	if !s.cfg.Enabled() {
		return fmt.Errorf("whatsapp: credentials not configured")
	}
	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("whatsapp: message cannot be empty")
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{
			"api_key":    s.cfg.APIKey,
			"number_key": s.cfg.NumberKey,
			"group_id":   s.cfg.GroupID,
			"message":    message,
		}).
		Post("/send_message_group")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("whatsapp: status %d: %s", resp.StatusCode(), resp.String())
	}

	// watzap membalas HTTP 200 juga untuk kegagalan, status asli ada di body
	if status := gjson.Get(resp.String(), "status").String(); status != "" && status != "200" {
		return fmt.Errorf("whatsapp: %s", gjson.Get(resp.String(), "message").String())
	}
	return nil
}
