package config

import "os"

type Config struct {
	Server      ServerConfig
	Trio        TrioConfig
	WebhookSite WebhookSiteConfig
	CORS        CORSConfig
}

type ServerConfig struct {
	Addr string

	// PublicURL: 외부에서 접근 가능한 백엔드 주소
	// Trio가 웹훅을 전송할 기본 수신 URL(/api/webhook)을 만들 때 사용
	PublicURL string
}

type TrioConfig struct {
	BaseURL string
	APIKey  string
}

type WebhookSiteConfig struct {
	BaseURL string
}

type CORSConfig struct {
	AllowedOrigins []string
}

func Load() Config {
	return Config{
		Server: ServerConfig{
			Addr:      getenv("SERVER_ADDR", ":8080"),
			PublicURL: getenv("PUBLIC_URL", "http://localhost:8080"),
		},
		Trio: TrioConfig{
			BaseURL: getenv("TRIO_BASE_URL", "https://trio.machinefi.com/api"),
			APIKey:  os.Getenv("TRIO_API_KEY"),
		},
		WebhookSite: WebhookSiteConfig{
			BaseURL: getenv("WEBHOOK_SITE_BASE_URL", "https://webhook.site"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{getenv("CORS_ALLOWED_ORIGIN", "http://localhost:5173")},
		},
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
