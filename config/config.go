package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultProductSheetURL do'kon bilan birga keladigan nashr qilingan jadval
const DefaultProductSheetURL = "https://docs.google.com/spreadsheets/d/e/2PACX-1vS_0qcE-XppY5e2AABZZPVSpCfeQFNpoVVA9JS1fIcCyl00fTrrNxayLYUyfkb5I5VdockxadqXV-Kl/pub?gid=0&single=true&output=csv"

// Config ilovaning konfiguratsiyasi
type Config struct {
	HTTPAddr string

	ProductSheetURL string
	NewsSheetURL    string
	FetchTimeout    time.Duration
	FetchMaxBytes   int64
	CSVQuoteMode    string
	KeepEmptySpecs  bool

	GeminiAPIKey   string
	GeminiModel    string
	MaxContextSize int

	TelegramToken string
	AdminPassword string

	SettingsDBPath string
	RedisAddr      string

	KafkaBroker string
	KafkaTopic  string
}

// Load konfiguratsiyani yuklash
func Load() (*Config, error) {
	// .env faylini yuklash (mavjud bo'lsa)
	_ = godotenv.Load()

	config := &Config{
		HTTPAddr:        ":8080",
		ProductSheetURL: DefaultProductSheetURL,
		NewsSheetURL:    os.Getenv("NEWS_SHEET_URL"),
		FetchTimeout:    15 * time.Second,
		FetchMaxBytes:   20 << 20,
		CSVQuoteMode:    os.Getenv("CSV_QUOTE_MODE"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		GeminiModel:     "gemini-2.5-flash",
		MaxContextSize:  20, // Default qiymat
		TelegramToken:   os.Getenv("TELEGRAM_BOT_TOKEN"),
		AdminPassword:   os.Getenv("ADMIN_PASSWORD"),
		SettingsDBPath:  "data/settings.db",
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		KafkaBroker:     os.Getenv("KAFKA_BROKER"),
		KafkaTopic:      "catalog.imports",
	}

	if addr := os.Getenv("HTTP_ADDR"); addr != "" {
		config.HTTPAddr = addr
	}
	if url, ok := os.LookupEnv("PRODUCT_SHEET_URL"); ok {
		config.ProductSheetURL = url
	}
	if model := os.Getenv("GEMINI_MODEL"); model != "" {
		config.GeminiModel = model
	}
	if dbPath := os.Getenv("SETTINGS_DB_PATH"); dbPath != "" {
		config.SettingsDBPath = dbPath
	}
	if topic := os.Getenv("KAFKA_TOPIC"); topic != "" {
		config.KafkaTopic = topic
	}

	if raw := os.Getenv("MAX_CONTEXT_SIZE"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("MAX_CONTEXT_SIZE noto'g'ri formatda: %q", raw)
		}
		config.MaxContextSize = parsed
	}

	if raw := os.Getenv("FETCH_TIMEOUT"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("FETCH_TIMEOUT noto'g'ri formatda: %w", err)
		}
		config.FetchTimeout = parsed
	}

	if raw := os.Getenv("FETCH_MAX_BYTES"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("FETCH_MAX_BYTES noto'g'ri formatda: %w", err)
		}
		config.FetchMaxBytes = parsed
	}

	if raw := os.Getenv("KEEP_EMPTY_SPECS"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("KEEP_EMPTY_SPECS noto'g'ri formatda: %w", err)
		}
		config.KeepEmptySpecs = parsed
	}

	return config, nil
}

// ChatEnabled AI chat sozlanganmi
func (c *Config) ChatEnabled() bool {
	return c.GeminiAPIKey != ""
}

// BotEnabled Telegram bot sozlanganmi
func (c *Config) BotEnabled() bool {
	return c.TelegramToken != ""
}
