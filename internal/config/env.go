package config

import (
	"strings"
	"sync"

	"github.com/spf13/viper"
)

var (
	env     *viper.Viper
	envOnce sync.Once
)

// Env mengembalikan instance viper yang membaca environment variable.
// Semua default didaftarkan di sini supaya satu tempat saja.
func Env() *viper.Viper {
	envOnce.Do(func() {
		v := viper.New()
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()

		v.SetDefault("APP_ENV", "development")
		v.SetDefault("APP_NAME", "OSS Recruitment")
		v.SetDefault("APP_PORT", ":8080")
		v.SetDefault("APP_PROXY_HEADER", "X-Forwarded-For")
		v.SetDefault("LOG_LEVEL", "info")

		v.SetDefault("DB_PORT", "5432")
		v.SetDefault("DB_SSLMODE", "disable")
		v.SetDefault("DB_TIMEZONE", "Asia/Makassar")

		v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
		v.SetDefault("GEMINI_EMBEDDING_MODEL", "gemini-embedding-001")
		v.SetDefault("OPENROUTER_MODEL", "openai/gpt-4o-mini")
		v.SetDefault("OPENROUTER_URL", "https://openrouter.ai/api/v1/chat/completions")
		v.SetDefault("RECOMMENDATION_PROVIDER", "gemini")

		v.SetDefault("WHATSAPP_API_URL", "https://api.watzap.id/v1")
		env = v
	})
	return env
}
