package config

import (
	"sync"
)

// WhatsAppConfig kredensial API grup WhatsApp (watzap).
type WhatsAppConfig struct {
	BaseURL   string
	APIKey    string
	NumberKey string
	GroupID   string
}

var (
	whatsAppConfig *WhatsAppConfig
	whatsAppOnce   sync.Once
)

func (c *WhatsAppConfig) Enabled() bool {
	return c.APIKey != "" && c.NumberKey != "" && c.GroupID != ""
}

func LoadWhatsAppConfig() *WhatsAppConfig {
	whatsAppOnce.Do(func() {
		v := Env()
		whatsAppConfig = &WhatsAppConfig{
			BaseURL:   v.GetString("WHATSAPP_API_URL"),
			APIKey:    v.GetString("WHATSAPP_API_KEY"),
			NumberKey: v.GetString("WHATSAPP_NUMBER_KEY"),
			GroupID:   v.GetString("WHATSAPP_GROUP_ID"),
		}
	})
	return whatsAppConfig
}
