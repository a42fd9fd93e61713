package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yourusername/laptop-storefront/internal/domain/entity"
	"github.com/yourusername/laptop-storefront/internal/domain/repository"
)

// ErrChatUnavailable GEMINI_API_KEY sozlanmagan
var ErrChatUnavailable = errors.New("chat is not configured")

// Foydalanuvchiga ko'rsatiladigan zaxira javoblar
const (
	EmptyReplyText   = "Xin lỗi, tôi không thể trả lời lúc này."
	FailureReplyText = "Hiện tại tôi đang gặp chút sự cố kỹ thuật. Vui lòng thử lại sau."
)

// ChatUseCase chat bilan bog'liq business logic
type ChatUseCase interface {
	Reply(ctx context.Context, sessionID, username, text string) (string, error)
	ClearHistory(ctx context.Context, sessionID string) error
	GetHistory(ctx context.Context, sessionID string) ([]entity.Message, error)
}

type chatUseCase struct {
	aiRepo      repository.AIRepository
	chatRepo    repository.ChatRepository
	productRepo repository.ProductRepository
	timeout     time.Duration
}

// NewChatUseCase aiRepo nil bo'lsa Reply ErrChatUnavailable qaytaradi
func NewChatUseCase(
	aiRepo repository.AIRepository,
	chatRepo repository.ChatRepository,
	productRepo repository.ProductRepository,
) ChatUseCase {
	return &chatUseCase{
		aiRepo:      aiRepo,
		chatRepo:    chatRepo,
		productRepo: productRepo,
		timeout:     20 * time.Second,
	}
}

// Reply foydalanuvchi xabariga joriy katalog asosida javob
func (u *chatUseCase) Reply(ctx context.Context, sessionID, username, text string) (string, error) {
	if u.aiRepo == nil {
		return "", ErrChatUnavailable
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("empty message")
	}

	// AI so'rovlarini osilib qolmasligi uchun timeout
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	history, err := u.chatRepo.GetHistory(ctx, sessionID, 0)
	if err != nil {
		return "", fmt.Errorf("failed to get history: %w", err)
	}

	products, err := u.productRepo.GetAll(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load catalog: %w", err)
	}

	response, err := u.aiRepo.GenerateReply(ctx, text, history, products)
	if err != nil {
		log.Printf("❌ AI javob bermadi (session %s): %v", sessionID, err)
		return FailureReplyText, nil
	}
	if strings.TrimSpace(response) == "" {
		response = EmptyReplyText
	}

	message := entity.Message{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Username:  username,
		Text:      text,
		Response:  response,
		Timestamp: time.Now(),
	}
	if err := u.chatRepo.SaveMessage(ctx, message); err != nil {
		return "", fmt.Errorf("failed to save message: %w", err)
	}

	return response, nil
}

// ClearHistory sessiya tarixini tozalash
func (u *chatUseCase) ClearHistory(ctx context.Context, sessionID string) error {
	return u.chatRepo.ClearHistory(ctx, sessionID)
}

// GetHistory sessiya tarixini olish
func (u *chatUseCase) GetHistory(ctx context.Context, sessionID string) ([]entity.Message, error) {
	return u.chatRepo.GetHistory(ctx, sessionID, 0)
}
