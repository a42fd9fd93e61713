package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/yourusername/laptop-storefront/internal/domain/entity"
)

func TestImportMessage(t *testing.T) {
	at := time.Date(2026, 2, 21, 10, 0, 0, 0, time.UTC)
	event := entity.ImportEvent{
		Report:     entity.ImportReport{Kind: entity.KindProducts, Source: "upload:a.csv", Rows: 2, Added: 1, Replaced: 1, Total: 6},
		Trigger:    "upload",
		OccurredAt: at,
	}

	msg, err := importMessage(event)
	require.NoError(t, err)
	require.Equal(t, "products", string(msg.Key))
	require.Equal(t, at, msg.Time)

	var decoded entity.ImportEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	require.Equal(t, event.Report, decoded.Report)
	require.Equal(t, "upload", decoded.Trigger)
}

func TestLogPublisher(t *testing.T) {
	p := NewLogPublisher()
	require.NoError(t, p.PublishImport(context.Background(), entity.ImportEvent{Trigger: "refresh"}))
	require.NoError(t, p.Close())
}

func TestKafkaPublisherUnreachableBroker(t *testing.T) {
	p := newKafkaPublisher("127.0.0.1:1", "catalog-imports", 300*time.Millisecond)
	defer p.Close()

	started := time.Now()
	err := p.PublishImport(context.Background(), entity.ImportEvent{
		Report:     entity.ImportReport{Kind: entity.KindNews},
		Trigger:    "refresh",
		OccurredAt: started,
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to publish import event")
	require.Less(t, time.Since(started), 3*time.Second)
}

func TestKafkaPublisherDefaults(t *testing.T) {
	p, ok := NewKafkaPublisher("localhost:9092", "catalog-imports").(*kafkaPublisher)
	require.True(t, ok)
	require.Equal(t, publishTimeout, p.timeout)
	require.Equal(t, 3, p.writer.MaxAttempts)
	require.Equal(t, publishTimeout, p.writer.WriteTimeout)
}
