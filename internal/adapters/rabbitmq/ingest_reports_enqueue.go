package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/operatorpuar/gaming-venues/internal/contextkeys"
	"github.com/operatorpuar/gaming-venues/internal/core/domain"
	"github.com/operatorpuar/gaming-venues/internal/core/port"
	"github.com/operatorpuar/gaming-venues/pkg/rabbitmq/rabbitmq_producer"
)

// IngestReportDTO - сообщение с итогами сохранения пачки
type IngestReportDTO struct {
	BatchID uuid.UUID      `json:"batch_id"`
	Results map[string]int `json:"results"`
}

// IngestReporterAdapter публикует отчеты о результатах инжеста,
// чтобы источники данных видели судьбу своих пачек.
type IngestReporterAdapter struct {
	producer   *rabbitmq_producer.Publisher
	routingKey string
}

func NewIngestReporterAdapter(producer *rabbitmq_producer.Publisher, routingKey string) (*IngestReporterAdapter, error) {
	if producer == nil {
		return nil, fmt.Errorf("rabbitmq adapter: producer cannot be nil")
	}
	if routingKey == "" {
		return nil, fmt.Errorf("rabbitmq adapter: routingKey cannot be empty")
	}
	return &IngestReporterAdapter{
		producer:   producer,
		routingKey: routingKey,
	}, nil
}

func (a *IngestReporterAdapter) ReportResults(ctx context.Context, batchID uuid.UUID, stats *domain.BatchSaveStats) error {
	logger := contextkeys.LoggerFromContext(ctx)
	adapterLogger := logger.WithFields(port.Fields{
		"component":   "IngestReporterAdapter",
		"routing_key": a.routingKey,
		"batch_id":    batchID.String(),
	})

	dto := IngestReportDTO{
		BatchID: batchID,
		Results: map[string]int{
			"created":         stats.Created,
			"updated":         stats.Updated,
			"skipped":         stats.Skipped,
			"total_processed": stats.Created + stats.Updated + stats.Skipped,
		},
	}

	body, _ := json.Marshal(dto)

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Headers:      make(amqp.Table),
	}

	traceID := contextkeys.TraceIDFromContext(ctx)
	if traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	// Свой таймаут на публикацию, если контекст его не несет
	publishCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	adapterLogger.Info("Publishing ingest report for batch", port.Fields{"stats": dto.Results})
	if err := a.producer.Publish(publishCtx, a.routingKey, msg); err != nil {
		adapterLogger.Error("Failed to publish report", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to publish report for batch %s: %w", batchID, err)
	}

	adapterLogger.Info("Successfully published report", nil)
	return nil
}
