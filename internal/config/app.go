package config

import (
	"sync"
)

type AppConfig struct {
	Name        string
	Env         string
	Port        string
	BaseURL     string
	LogLevel    string
	ProxyHeader string
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		v := Env()
		appConfig = &AppConfig{
			Name:        v.GetString("APP_NAME"),
			Env:         v.GetString("APP_ENV"),
			Port:        v.GetString("APP_PORT"),
			BaseURL:     v.GetString("APP_URL"),
			LogLevel:    v.GetString("LOG_LEVEL"),
			ProxyHeader: v.GetString("APP_PROXY_HEADER"),
		}
	})
	return appConfig
}
