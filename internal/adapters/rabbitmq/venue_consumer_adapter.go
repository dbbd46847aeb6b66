package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/operatorpuar/gaming-venues/internal/contextkeys"
	"github.com/operatorpuar/gaming-venues/internal/contracts"
	"github.com/operatorpuar/gaming-venues/internal/core/domain"
	"github.com/operatorpuar/gaming-venues/internal/core/port"
	usecases_port "github.com/operatorpuar/gaming-venues/internal/core/port/usecases_port"
	"github.com/operatorpuar/gaming-venues/pkg/rabbitmq/rabbitmq_common"
	"github.com/operatorpuar/gaming-venues/pkg/rabbitmq/rabbitmq_consumer"
)

// VenueBatchConsumerAdapter - входящий адаптер: слушает очередь с записями
// площадок от внешних источников и вызывает use case сохранения.
type VenueBatchConsumerAdapter struct {
	consumer *rabbitmq_consumer.BatchConsumer
	useCase  usecases_port.SaveVenuesUseCase
	logger   port.LoggerPort
}

func NewVenueBatchConsumerAdapter(
	consumerCfg rabbitmq_consumer.ConsumerConfig,
	useCase usecases_port.SaveVenuesUseCase,
	logger port.LoggerPort,
	connManager *rabbitmq_common.ConnectionManager,
) (*VenueBatchConsumerAdapter, error) {

	adapter := &VenueBatchConsumerAdapter{
		useCase: useCase,
		logger:  logger,
	}

	// Логгер pkg-уровня с контекстом компонента
	pkgLogger := logger.WithFields(port.Fields{"component": "rabbitmq_batch_consumer", "consumer_tag": consumerCfg.ConsumerTag})
	consumerCfg.Logger = NewPkgLoggerBridge(pkgLogger)

	consumer, err := rabbitmq_consumer.NewBatchConsumer(consumerCfg, adapter.batchMessageHandler, 100, 10*time.Second, connManager)
	if err != nil {
		return nil, fmt.Errorf("failed to create RabbitMQ consumer for venue batches: %w", err)
	}
	adapter.consumer = consumer

	return adapter, nil
}

// Start блокируется до отмены контекста или закрытия соединения
func (a *VenueBatchConsumerAdapter) Start(ctx context.Context) error {
	return a.consumer.StartConsuming(ctx)
}

func (a *VenueBatchConsumerAdapter) Close() error {
	return a.consumer.Close()
}

// batchMessageHandler обрабатывает накопленную пачку сообщений.
// Ошибка любого сообщения отклоняет пачку целиком: частично
// сохраненный батч хуже повторной доставки.
func (a *VenueBatchConsumerAdapter) batchMessageHandler(deliveries []amqp.Delivery) error {
	if len(deliveries) == 0 {
		return nil
	}

	traceID, _ := deliveries[0].Headers["x-trace-id"].(string)
	if traceID == "" {
		traceID = uuid.New().String()
	}

	batchID := uuid.New()

	batchLogger := a.logger.WithFields(port.Fields{
		"trace_id":     traceID,
		"batch_id":     batchID.String(),
		"batch_size":   len(deliveries),
		"adapter_name": "VenueBatchConsumerAdapter",
	})

	ctx := context.Background()
	ctx = contextkeys.ContextWithLogger(ctx, batchLogger)
	ctx = contextkeys.ContextWithTraceID(ctx, traceID)

	batchLogger.Info("Received batch of messages to process.", nil)

	records := make([]domain.VenueRecord, 0, len(deliveries))
	for _, d := range deliveries {
		record, err := a.unmarshalRecord(d, batchLogger)
		if err != nil {
			return err
		}
		records = append(records, record)
	}

	if _, err := a.useCase.Execute(ctx, batchID, records); err != nil {
		batchLogger.Error("Batch save failed, the entire batch will be rejected.", err, nil)
		return err
	}

	batchLogger.Info("Batch processed successfully.", nil)
	return nil
}

// unmarshalRecord валидирует сообщение по контракту и транслирует его в домен
func (a *VenueBatchConsumerAdapter) unmarshalRecord(d amqp.Delivery, parentLogger port.LoggerPort) (domain.VenueRecord, error) {
	msgLogger := parentLogger.WithFields(port.Fields{
		"message_id":        d.MessageId,
		"original_trace_id": d.Headers["x-trace-id"],
	})

	eventType, _ := d.Headers["event-type"].(string)
	eventVersion, _ := d.Headers["event-version"].(string)
	if err := contracts.ValidateEvent(eventType, eventVersion, d.Body); err != nil {
		msgLogger.Error("Message failed schema validation. Rejecting.", err, nil)
		return domain.VenueRecord{}, err
	}

	var dto VenueBatchEventDTO
	if err := json.Unmarshal(d.Body, &dto); err != nil {
		return domain.VenueRecord{}, fmt.Errorf("failed to unmarshal venue batch event: %w", err)
	}

	return toDomainVenueRecord(dto), nil
}
