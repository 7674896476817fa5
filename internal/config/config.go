package config

import (
	"os"
	"strings"
)

type Config struct {
	HTTPAddr string

	DBDriver string
	DBDSN    string

	BlobBasePath string

	// TTS
	MiniMaxAPIKey  string
	MiniMaxGroupID string
	EnglishVoice   string
	ChineseVoice   string

	// OCR
	OCRServiceURL string // remote OCR API; empty means local tesseract

	// Auth
	HMACSecret    string
	AdminUser     string
	AdminPassHash string // bcrypt

	CORSOrigins []string
}

func FromEnv() Config {
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Config{
		HTTPAddr:     addr,
		DBDriver:     envOr("DB_DRIVER", "sqlite"),
		DBDSN:        envOr("DB_DSN", ""),
		BlobBasePath: envOr("BLOB_BASE_PATH", "./data"),

		MiniMaxAPIKey:  os.Getenv("MINIMAX_API_KEY"),
		MiniMaxGroupID: os.Getenv("MINIMAX_GROUP_ID"),
		EnglishVoice:   envOr("TTS_VOICE_EN", ""),
		ChineseVoice:   envOr("TTS_VOICE_CN", ""),

		OCRServiceURL: os.Getenv("OCR_API_URL"),

		HMACSecret: envOr("AUTH_HMAC_SECRET", "supersecret-dev-key"),
		AdminUser:  envOr("ADMIN_USER", "admin"),
		// default hash is bcrypt("admin"), dev only
		AdminPassHash: envOr("ADMIN_PASS_HASH", "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"),

		CORSOrigins: csvOr("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173"),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
