package telegram

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/yourusername/laptop-storefront/internal/domain/entity"
	"github.com/yourusername/laptop-storefront/internal/usecase"
)

// MaxUploadBytes Telegram orqali yuklanadigan fayl chegarasi
const MaxUploadBytes = 5 << 20

// sender bot API ning handler ishlatadigan qismi
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type downloadFunc func(ctx context.Context, fileID string) ([]byte, error)

// BotHandler Telegram bot handler
type BotHandler struct {
	bot            *tgbotapi.BotAPI
	sender         sender
	download       downloadFunc
	chatUseCase    usecase.ChatUseCase
	adminUseCase   usecase.AdminUseCase
	productUseCase usecase.ProductUseCase
	catalog        usecase.CatalogUseCase

	// Admin login kutilayotgan userlar
	awaitingPassword map[int64]bool
	mu               sync.RWMutex
}

// NewBotHandler yangi bot handler yaratish
func NewBotHandler(
	token string,
	chatUseCase usecase.ChatUseCase,
	adminUseCase usecase.AdminUseCase,
	productUseCase usecase.ProductUseCase,
	catalog usecase.CatalogUseCase,
) (*BotHandler, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	h := newBotHandler(bot, fileDownloader(bot), chatUseCase, adminUseCase, productUseCase, catalog)
	h.bot = bot
	return h, nil
}

func newBotHandler(
	s sender,
	download downloadFunc,
	chatUseCase usecase.ChatUseCase,
	adminUseCase usecase.AdminUseCase,
	productUseCase usecase.ProductUseCase,
	catalog usecase.CatalogUseCase,
) *BotHandler {
	return &BotHandler{
		sender:           s,
		download:         download,
		chatUseCase:      chatUseCase,
		adminUseCase:     adminUseCase,
		productUseCase:   productUseCase,
		catalog:          catalog,
		awaitingPassword: make(map[int64]bool),
	}
}

// fileDownloader Telegram fayl serveridan yuklab olish
func fileDownloader(bot *tgbotapi.BotAPI) downloadFunc {
	client := resty.New()
	return func(ctx context.Context, fileID string) ([]byte, error) {
		fileURL, err := bot.GetFileDirectURL(fileID)
		if err != nil {
			return nil, err
		}
		resp, err := client.R().SetContext(ctx).Get(fileURL)
		if err != nil {
			return nil, err
		}
		if resp.IsError() {
			return nil, fmt.Errorf("file download failed: %s", resp.Status())
		}
		return resp.Body(), nil
	}
}

// Start botni ishga tushirish
func (h *BotHandler) Start(ctx context.Context) error {
	log.Printf("🤖 Bot @%s ishga tushdi!", h.bot.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)
	defer h.bot.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			log.Println("Bot to'xtatilmoqda...")
			return ctx.Err()
		case update := <-updates:
			if update.Message == nil {
				continue
			}
			go h.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage xabarni qayta ishlash
func (h *BotHandler) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if message.From == nil || message.Chat == nil {
		return
	}

	// Fayl yuborilgan bo'lsa
	if message.Document != nil {
		h.handleDocumentMessage(ctx, message)
		return
	}

	// Parol kutilayotgan bo'lsa
	if h.isAwaitingPassword(message.From.ID) && !message.IsCommand() {
		h.handlePasswordInput(ctx, message, message.Text)
		return
	}

	if message.IsCommand() {
		h.handleCommand(ctx, message)
		return
	}

	if strings.TrimSpace(message.Text) != "" {
		h.handleTextMessage(ctx, message)
	}
}

// handleCommand komandalarni qayta ishlash
func (h *BotHandler) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		h.sendMessage(message.Chat.ID, welcomeMessage)
	case "help":
		h.sendMessage(message.Chat.ID, helpMessage)
	case "clear":
		h.handleClearCommand(ctx, message)
	case "products":
		h.handleProductsCommand(ctx, message)
	case "category":
		h.handleCategoryCommand(ctx, message)
	case "news":
		h.handleNewsCommand(ctx, message)
	case "admin":
		h.handleAdminCommand(ctx, message)
	case "logout":
		h.handleLogoutCommand(ctx, message)
	case "catalog":
		h.handleCatalogCommand(ctx, message)
	case "reload":
		h.handleReloadCommand(ctx, message)
	case "setsheet":
		h.handleSetSheetCommand(ctx, message, entity.KindProducts)
	case "setnews":
		h.handleSetSheetCommand(ctx, message, entity.KindNews)
	case "actions":
		h.handleActionsCommand(ctx, message)
	default:
		h.sendMessage(message.Chat.ID, "Noma'lum komanda. /help yordam uchun.")
	}
}

// handleAdminCommand admin login boshlash; "/admin <parol>" ham qabul qilinadi
func (h *BotHandler) handleAdminCommand(ctx context.Context, message *tgbotapi.Message) {
	userID := message.From.ID

	isAdmin, _ := h.adminUseCase.IsAdmin(ctx, userID)
	if isAdmin {
		h.sendMessage(message.Chat.ID, "Siz allaqachon admin sifatida tizimga kirgansiz!")
		return
	}

	if password := strings.TrimSpace(message.CommandArguments()); password != "" {
		h.handlePasswordInput(ctx, message, password)
		return
	}

	h.setAwaitingPassword(userID, true)
	h.sendMessage(message.Chat.ID, "🔐 Admin parolini kiriting:")
}

// handlePasswordInput parol kiritilganini qayta ishlash
func (h *BotHandler) handlePasswordInput(ctx context.Context, message *tgbotapi.Message, password string) {
	userID := message.From.ID
	h.setAwaitingPassword(userID, false)

	// Xabarni o'chirish (parol chatda qolmasin)
	if _, err := h.sender.Request(tgbotapi.NewDeleteMessage(message.Chat.ID, message.MessageID)); err != nil {
		log.Printf("⚠️ Parol xabarini o'chirib bo'lmadi: %v", err)
	}

	success, err := h.adminUseCase.Login(ctx, userID, strings.TrimSpace(password))
	if err != nil {
		log.Printf("Login error: %v", err)
		h.sendMessage(message.Chat.ID, "❌ Login xatosi yuz berdi.")
		return
	}
	if !success {
		h.sendMessage(message.Chat.ID, "❌ Noto'g'ri parol!")
		return
	}

	h.sendMessage(message.Chat.ID, adminWelcomeMessage)
}

// handleLogoutCommand admin paneldan chiqish
func (h *BotHandler) handleLogoutCommand(ctx context.Context, message *tgbotapi.Message) {
	userID := message.From.ID

	isAdmin, _ := h.adminUseCase.IsAdmin(ctx, userID)
	if !isAdmin {
		h.sendMessage(message.Chat.ID, "Siz admin emassiz.")
		return
	}

	if err := h.adminUseCase.Logout(ctx, userID); err != nil {
		h.sendMessage(message.Chat.ID, "Logout xatosi.")
		return
	}

	h.sendMessage(message.Chat.ID, "✅ Admin paneldan chiqdingiz.")
}

// handleCatalogCommand katalog haqida ma'lumot
func (h *BotHandler) handleCatalogCommand(ctx context.Context, message *tgbotapi.Message) {
	if !h.requireAdmin(ctx, message) {
		return
	}

	info, err := h.adminUseCase.GetCatalogInfo(ctx)
	if err != nil {
		h.sendMessage(message.Chat.ID, "❌ Katalog ma'lumotini olishda xatolik.")
		return
	}
	h.sendMessage(message.Chat.ID, info)
}

// handleReloadCommand sozlangan jadvallardan qayta yuklash
func (h *BotHandler) handleReloadCommand(ctx context.Context, message *tgbotapi.Message) {
	if !h.requireAdmin(ctx, message) {
		return
	}

	h.sendMessage(message.Chat.ID, "⏳ Jadvallar yuklanmoqda...")
	summary, err := h.adminUseCase.Reload(ctx, message.From.ID)
	if err != nil {
		h.sendError(message.Chat.ID, "Qayta yuklashda xatolik", err)
		return
	}
	h.sendMessage(message.Chat.ID, formatSummary(summary))
}

// handleSetSheetCommand "/setsheet <url>"; bo'sh argument feedni o'chiradi
func (h *BotHandler) handleSetSheetCommand(ctx context.Context, message *tgbotapi.Message, kind entity.CatalogKind) {
	if !h.requireAdmin(ctx, message) {
		return
	}

	url := strings.TrimSpace(message.CommandArguments())
	summary, err := h.adminUseCase.SetSheet(ctx, message.From.ID, kind, url)
	if errors.Is(err, usecase.ErrInvalidSheetURL) {
		h.sendMessage(message.Chat.ID, "❌ URL http:// yoki https:// bilan boshlanishi kerak.")
		return
	}
	if err != nil {
		h.sendError(message.Chat.ID, "Sozlamani saqlashda xatolik", err)
		return
	}

	h.sendMessage(message.Chat.ID, "✅ Sozlama saqlandi.\n\n"+formatSummary(summary))
}

// handleActionsCommand oxirgi admin harakatlari
func (h *BotHandler) handleActionsCommand(ctx context.Context, message *tgbotapi.Message) {
	if !h.requireAdmin(ctx, message) {
		return
	}

	actions, err := h.adminUseCase.RecentActions(ctx, message.From.ID, 10)
	if err != nil {
		h.sendError(message.Chat.ID, "Harakatlarni olishda xatolik", err)
		return
	}
	h.sendMessage(message.Chat.ID, formatActions(actions))
}

// handleProductsCommand "/products [qidiruv]"
func (h *BotHandler) handleProductsCommand(ctx context.Context, message *tgbotapi.Message) {
	products, err := h.productUseCase.Query(ctx, entity.ProductFilter{
		Query: strings.TrimSpace(message.CommandArguments()),
		Sort:  entity.SortNone,
	})
	if err != nil || len(products) == 0 {
		h.sendMessage(message.Chat.ID, "❌ Mahsulotlar topilmadi.")
		return
	}
	h.sendMessage(message.Chat.ID, formatProducts(products, productListLimit))
}

// handleCategoryCommand "/category <nom>"; nomsiz bo'lsa mavjud kategoriyalar
func (h *BotHandler) handleCategoryCommand(ctx context.Context, message *tgbotapi.Message) {
	category := strings.TrimSpace(message.CommandArguments())
	if category == "" {
		facets, err := h.productUseCase.Facets(ctx)
		if err != nil || len(facets.Categories) == 0 {
			h.sendMessage(message.Chat.ID, "❌ Kategoriyalar topilmadi.")
			return
		}
		h.sendMessage(message.Chat.ID, "📂 Kategoriyalar:\n"+strings.Join(facets.Categories, "\n")+"\n\n/category <nom>")
		return
	}

	products, err := h.productUseCase.GetByCategory(ctx, category)
	if err != nil || len(products) == 0 {
		h.sendMessage(message.Chat.ID, fmt.Sprintf("❌ %q kategoriyasida mahsulot yo'q.", category))
		return
	}
	h.sendMessage(message.Chat.ID, formatProducts(products, productListLimit))
}

// handleNewsCommand yangiliklar ro'yxati
func (h *BotHandler) handleNewsCommand(ctx context.Context, message *tgbotapi.Message) {
	news, err := h.catalog.News(ctx)
	if err != nil || len(news) == 0 {
		h.sendMessage(message.Chat.ID, "📰 Hozircha yangiliklar yo'q.")
		return
	}
	h.sendMessage(message.Chat.ID, formatNews(news, newsListLimit))
}

// handleClearCommand chat tarixini tozalash
func (h *BotHandler) handleClearCommand(ctx context.Context, message *tgbotapi.Message) {
	if err := h.chatUseCase.ClearHistory(ctx, sessionID(message.Chat.ID)); err != nil {
		h.sendMessage(message.Chat.ID, "❌ Tarixni tozalashda xatolik.")
		return
	}
	h.sendMessage(message.Chat.ID, "🧹 Chat tarixi tozalandi.")
}

// handleDocumentMessage CSV/XLSX fayl yuborilganda; caption "news" bo'lsa yangiliklar
func (h *BotHandler) handleDocumentMessage(ctx context.Context, message *tgbotapi.Message) {
	if !h.requireAdmin(ctx, message) {
		return
	}

	doc := message.Document
	if doc.FileSize > MaxUploadBytes {
		h.sendMessage(message.Chat.ID, "❌ Fayl hajmi 5MB dan oshmasligi kerak!")
		return
	}

	switch strings.ToLower(filepath.Ext(doc.FileName)) {
	case ".csv", ".xlsx", ".xlsm":
	default:
		h.sendMessage(message.Chat.ID, "❌ Faqat CSV yoki Excel (.xlsx) fayllari qabul qilinadi!")
		return
	}

	kind := uploadKind(message.Caption)
	h.sendMessage(message.Chat.ID, "⏳ Fayl yuklanmoqda va qayta ishlanmoqda...")

	data, err := h.download(ctx, doc.FileID)
	if err != nil {
		log.Printf("File download error: %v", err)
		h.sendMessage(message.Chat.ID, "❌ Faylni yuklashda xatolik yuz berdi.")
		return
	}

	report, err := h.adminUseCase.UploadCatalog(ctx, message.From.ID, kind, data, doc.FileName)
	if errors.Is(err, usecase.ErrNoRecords) {
		h.sendMessage(message.Chat.ID, "⚠️ Faylda birorta ham qator topilmadi. Katalog o'zgarmadi.")
		return
	}
	if err != nil {
		log.Printf("Upload catalog error: %v", err)
		h.sendError(message.Chat.ID, "Katalogni yangilashda xatolik", err)
		return
	}

	h.sendMessage(message.Chat.ID, formatReport(report))
}

// handleTextMessage oddiy xabarni AI maslahatchiga yuborish
func (h *BotHandler) handleTextMessage(ctx context.Context, message *tgbotapi.Message) {
	username := message.From.UserName
	if username == "" {
		username = message.From.FirstName
	}

	reply, err := h.chatUseCase.Reply(ctx, sessionID(message.Chat.ID), username, message.Text)
	if errors.Is(err, usecase.ErrChatUnavailable) {
		h.sendMessage(message.Chat.ID, "🤖 AI maslahatchi hozircha o'chirilgan. /products orqali katalogni ko'ring.")
		return
	}
	if err != nil {
		log.Printf("Chat error: %v", err)
		h.sendMessage(message.Chat.ID, usecase.FailureReplyText)
		return
	}
	h.sendMessage(message.Chat.ID, reply)
}

// requireAdmin admin bo'lmasa xabar yuborib false qaytaradi
func (h *BotHandler) requireAdmin(ctx context.Context, message *tgbotapi.Message) bool {
	isAdmin, _ := h.adminUseCase.IsAdmin(ctx, message.From.ID)
	if !isAdmin {
		h.sendMessage(message.Chat.ID, "❌ Bu amal faqat adminlar uchun. /admin komandasi bilan kiring.")
	}
	return isAdmin
}

func (h *BotHandler) isAwaitingPassword(userID int64) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.awaitingPassword[userID]
}

func (h *BotHandler) setAwaitingPassword(userID int64, awaiting bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if awaiting {
		h.awaitingPassword[userID] = true
	} else {
		delete(h.awaitingPassword, userID)
	}
}

// sendMessage oddiy xabar yuborish
func (h *BotHandler) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.sender.Send(msg); err != nil {
		log.Printf("Xabar yuborishda xatolik: %v", err)
	}
}

func (h *BotHandler) sendError(chatID int64, prefix string, err error) {
	h.sendMessage(chatID, fmt.Sprintf("❌ %s: %v", prefix, err))
}

func sessionID(chatID int64) string {
	return fmt.Sprintf("tg-%d", chatID)
}

func uploadKind(caption string) entity.CatalogKind {
	caption = strings.ToLower(caption)
	if strings.Contains(caption, "news") || strings.Contains(caption, "yangilik") {
		return entity.KindNews
	}
	return entity.KindProducts
}
