package events

import (
	"context"
	"log"

	"github.com/yourusername/laptop-storefront/internal/domain/entity"
	"github.com/yourusername/laptop-storefront/internal/domain/repository"
)

type logPublisher struct{}

// NewLogPublisher KAFKA_BROKER berilmaganda hodisalarni faqat loglaydi
func NewLogPublisher() repository.EventPublisher {
	return logPublisher{}
}

func (logPublisher) PublishImport(ctx context.Context, event entity.ImportEvent) error {
	r := event.Report
	log.Printf("📦 %s import (%s): rows=%d added=%d replaced=%d total=%d", r.Kind, event.Trigger, r.Rows, r.Added, r.Replaced, r.Total)
	return nil
}

func (logPublisher) Close() error { return nil }
