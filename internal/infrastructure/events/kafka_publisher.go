package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/yourusername/laptop-storefront/internal/domain/entity"
	"github.com/yourusername/laptop-storefront/internal/domain/repository"
)

// publishTimeout bitta hodisa uchun umumiy muddat (retry lar bilan birga)
const publishTimeout = 5 * time.Second

type kafkaPublisher struct {
	writer  *kafka.Writer
	timeout time.Duration
}

// NewKafkaPublisher import hodisalarini topic ga yozuvchi publisher
func NewKafkaPublisher(broker, topic string) repository.EventPublisher {
	return newKafkaPublisher(broker, topic, publishTimeout)
}

func newKafkaPublisher(broker, topic string, timeout time.Duration) *kafkaPublisher {
	return &kafkaPublisher{
		writer: &kafka.Writer{
			Addr:            kafka.TCP(broker),
			Topic:           topic,
			Balancer:        &kafka.Hash{}, // bir xil katalog turi -> bir xil partition
			RequiredAcks:    kafka.RequireOne,
			BatchTimeout:    10 * time.Millisecond,
			MaxAttempts:     3,
			WriteBackoffMin: 50 * time.Millisecond,
			WriteBackoffMax: 500 * time.Millisecond,
			WriteTimeout:    timeout,
			ReadTimeout:     timeout,
		},
		timeout: timeout,
	}
}

// PublishImport hodisani JSON ko'rinishida yuborish
func (p *kafkaPublisher) PublishImport(ctx context.Context, event entity.ImportEvent) error {
	msg, err := importMessage(event)
	if err != nil {
		return err
	}
	// broker javob bermasa import so'rovi osilib qolmasin
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish import event: %w", err)
	}
	return nil
}

// importMessage kalit katalog turi, shuning uchun bir turdagi hodisalar tartibi saqlanadi
func importMessage(event entity.ImportEvent) (kafka.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to encode import event: %w", err)
	}
	return kafka.Message{
		Key:   []byte(event.Report.Kind),
		Value: data,
		Time:  event.OccurredAt,
	}, nil
}

// Close writer ni yopish
func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}
