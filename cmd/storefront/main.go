package main

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yourusername/laptop-storefront/config"
	"github.com/yourusername/laptop-storefront/internal/delivery/httpapi"
	"github.com/yourusername/laptop-storefront/internal/delivery/telegram"
	"github.com/yourusername/laptop-storefront/internal/domain/repository"
	"github.com/yourusername/laptop-storefront/internal/infrastructure/events"
	"github.com/yourusername/laptop-storefront/internal/infrastructure/fetcher"
	"github.com/yourusername/laptop-storefront/internal/infrastructure/gemini"
	"github.com/yourusername/laptop-storefront/internal/infrastructure/parser"
	"github.com/yourusername/laptop-storefront/internal/infrastructure/seed"
	"github.com/yourusername/laptop-storefront/internal/infrastructure/storage"
	"github.com/yourusername/laptop-storefront/internal/usecase"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Konfiguratsiya xatosi: %v", err)
	}

	quoteMode, err := parser.ParseQuoteMode(cfg.CSVQuoteMode)
	if err != nil {
		log.Fatalf("❌ CSV_QUOTE_MODE: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Storage
	productRepo := storage.NewMemoryProductRepository()
	newsRepo := storage.NewMemoryNewsRepository()
	chatRepo := storage.NewMemoryChatRepository(cfg.MaxContextSize)
	adminRepo := storage.NewMemoryAdminRepository()

	settingsRepo, closeSettings := openSettings(ctx, cfg)
	defer closeSettings()

	publisher := newPublisher(cfg)
	defer publisher.Close()

	// Usecases
	catalog := usecase.NewCatalogUseCase(usecase.CatalogDeps{
		Products: productRepo,
		News:     newsRepo,
		Parser:   parser.NewSheetParser(quoteMode),
		Mapper:   parser.NewRecordMapper(parser.MapperOptions{KeepEmptySpecs: cfg.KeepEmptySpecs}),
		Fetcher: fetcher.NewSheetFetcher(fetcher.Options{
			Timeout:  cfg.FetchTimeout,
			MaxBytes: cfg.FetchMaxBytes,
		}),
		Publisher:    publisher,
		SeedProducts: seed.Products,
		SeedNews:     seed.News,
	})
	settings := usecase.NewSettingsUseCase(settingsRepo, catalog, cfg.ProductSheetURL)
	products := usecase.NewProductUseCase(productRepo)
	admin := usecase.NewAdminUseCase(adminRepo, catalog, settings, cfg.AdminPassword)

	var ai repository.AIRepository
	if cfg.ChatEnabled() {
		client, err := gemini.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("❌ Gemini client yaratishda xatolik: %v", err)
		}
		defer client.Close()
		ai = client
	} else {
		log.Println("⚠️ GEMINI_API_KEY berilmagan, AI chat o'chirilgan")
	}
	chat := usecase.NewChatUseCase(ai, chatRepo, productRepo)

	// Boshlang'ich katalog
	sheets, err := settings.Resolve(ctx)
	if err != nil {
		log.Printf("⚠️ Sozlamalarni o'qib bo'lmadi, default ishlatiladi: %v", err)
	}
	summary := catalog.Bootstrap(ctx, sheets)
	log.Printf("📦 Katalog tayyor: products=%s news=%s", summary.Products.Status, summary.News.Status)

	handler := httpapi.NewHandler(catalog, products, settings, chat, httpapi.Options{AdminKey: cfg.AdminPassword})
	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("🌐 HTTP server %s da tinglamoqda", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Println("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if cfg.BotEnabled() {
		bot, err := telegram.NewBotHandler(cfg.TelegramToken, chat, admin, products, catalog)
		if err != nil {
			log.Fatalf("❌ Bot yaratishda xatolik: %v", err)
		}
		g.Go(func() error {
			if err := bot.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Fatalf("❌ %v", err)
	}
	log.Println("✅ To'xtatildi")
}

// openSettings Redis, keyin SQLite; ikkalasi ham ishlamasa xotira
func openSettings(ctx context.Context, cfg *config.Config) (repository.SettingsRepository, func()) {
	if cfg.RedisAddr != "" {
		redisRepo := storage.NewRedisSettingsRepository(cfg.RedisAddr)
		err := redisRepo.Ping(ctx)
		if err == nil {
			log.Printf("🗄 Sozlamalar Redis da: %s", cfg.RedisAddr)
			return redisRepo, closer(redisRepo)
		}
		log.Printf("⚠️ Redis ga ulanib bo'lmadi: %v", err)
		redisRepo.Close()
	}

	sqliteRepo, err := storage.NewSQLiteSettingsRepository(cfg.SettingsDBPath)
	if err == nil {
		log.Printf("🗄 Sozlamalar SQLite da: %s", cfg.SettingsDBPath)
		return sqliteRepo, closer(sqliteRepo)
	}
	log.Printf("⚠️ SQLite ochilmadi, sozlamalar faqat xotirada: %v", err)
	return storage.NewMemorySettingsRepository(), func() {}
}

func closer(c io.Closer) func() {
	return func() {
		if err := c.Close(); err != nil {
			log.Printf("⚠️ Yopishda xatolik: %v", err)
		}
	}
}

func newPublisher(cfg *config.Config) repository.EventPublisher {
	if cfg.KafkaBroker == "" {
		return events.NewLogPublisher()
	}
	log.Printf("📨 Import hodisalari Kafka ga: %s/%s", cfg.KafkaBroker, cfg.KafkaTopic)
	return events.NewKafkaPublisher(cfg.KafkaBroker, cfg.KafkaTopic)
}
