package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/shouni/gemini-landscape-kit/pkg/generator"
)

const (
	defaultPort            = ":8080"
	defaultHistoryCapacity = 50
	defaultLogLevel        = "info"
)

var ErrMissingAPIKey = errors.New("config: GEMINI_API_KEY (or GOOGLE_API_KEY) is required")

type Config struct {
	Port            string
	APIKey          string
	LogLevel        string
	HistoryCapacity int
	Generator       generator.Options
}

// Load は .env を読み込んだうえで環境変数から設定を組み立てます。
// .env がなくてもエラーにはしません。
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv は環境変数だけから設定を組み立てます。
func FromEnv() (*Config, error) {
	apiKey := firstNonEmpty(env("GEMINI_API_KEY"), env("GOOGLE_API_KEY"))
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	return &Config{
		Port:            normalizePort(firstNonEmpty(env("PORT"), defaultPort)),
		APIKey:          apiKey,
		LogLevel:        firstNonEmpty(env("LOG_LEVEL"), defaultLogLevel),
		HistoryCapacity: intOr(env("HISTORY_CAPACITY"), defaultHistoryCapacity),
		Generator: generator.Options{
			ImageEditModel: firstNonEmpty(env("GEMINI_IMAGE_EDIT_MODEL"), generator.DefaultImageEditModel),
			TextModel:      firstNonEmpty(env("GEMINI_TEXT_MODEL"), generator.DefaultTextModel),
			ImageModel:     firstNonEmpty(env("GEMINI_IMAGE_MODEL"), generator.DefaultImageModel),
			CompressSource: boolOr(env("COMPRESS_SOURCE_IMAGE"), false),
		},
	}, nil
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func normalizePort(port string) string {
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

func intOr(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func boolOr(raw string, fallback bool) bool {
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
