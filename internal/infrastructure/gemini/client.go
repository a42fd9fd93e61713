package gemini

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/yourusername/laptop-storefront/internal/domain/entity"
	"google.golang.org/api/option"
)

// DefaultModel GEMINI_MODEL berilmaganda
const DefaultModel = "gemini-2.5-flash"

// Client Gemini AI client; API kalit bir marta, konstruktorda beriladi
type Client struct {
	client    *genai.Client
	modelName string
	sem       chan struct{}
	mu        sync.Mutex
	last      time.Time
	delay     time.Duration
}

// NewGeminiClient yangi Gemini AI client yaratish
func NewGeminiClient(ctx context.Context, apiKey, modelName string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is empty")
	}
	if modelName == "" {
		modelName = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Client{
		client:    client,
		modelName: modelName,
		sem:       make(chan struct{}, 3), // bir vaqtda 3 ta so'rovdan oshirma
		delay:     350 * time.Millisecond, // minimal interval
	}, nil
}

// GenerateReply katalog konteksti va sessiya tarixi bilan javob yaratish
func (g *Client) GenerateReply(ctx context.Context, message string, history []entity.Message, products []entity.Product) (string, error) {
	release, err := g.acquire(ctx)
	if err != nil {
		return "", err
	}
	defer release()

	// Katalog har so'rovda o'zgarishi mumkin, shuning uchun model ham har safar sozlanadi
	model := g.client.GenerativeModel(g.modelName)
	model.SetTemperature(0.7)
	model.SetMaxOutputTokens(2048)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(SystemInstruction(products))},
	}

	chat := model.StartChat()
	chat.History = historyContents(history)

	resp, err := chat.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no response candidates")
	}

	return extractText(resp), nil
}

// historyContents saqlangan xabarlarni user/model navbatiga aylantirish
func historyContents(history []entity.Message) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history)*2)
	for _, msg := range history {
		if msg.Text != "" {
			contents = append(contents, &genai.Content{Role: "user", Parts: []genai.Part{genai.Text(msg.Text)}})
		}
		if msg.Response != "" {
			contents = append(contents, &genai.Content{Role: "model", Parts: []genai.Part{genai.Text(msg.Response)}})
		}
	}
	return contents
}

// extractText javobdan textni ajratib olish
func extractText(resp *genai.GenerateContentResponse) string {
	var result strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if text, ok := part.(genai.Text); ok {
					result.WriteString(string(text))
				}
			}
		}
	}
	return result.String()
}

func (g *Client) acquire(ctx context.Context) (func(), error) {
	select {
	case g.sem <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	now := time.Now()
	if !g.last.IsZero() {
		if sleep := g.delay - now.Sub(g.last); sleep > 0 {
			time.Sleep(sleep)
			now = time.Now()
		}
	}
	g.last = now

	return func() {
		<-g.sem
	}, nil
}

// Close client ni yopish
func (g *Client) Close() error {
	return g.client.Close()
}
