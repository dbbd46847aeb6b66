package rabbitmq_consumer

import (
	"context"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/operatorpuar/gaming-venues/pkg/rabbitmq/rabbitmq_common"
)

// BatchMessageHandler - обработчик для пачки сообщений.
// Ошибка означает, что пачка не сохранена и будет отклонена целиком.
type BatchMessageHandler func(deliveries []amqp.Delivery) error

// ConsumerConfig конфигурация для потребителя
type ConsumerConfig struct {
	rabbitmq_common.Config

	// Настройки очереди
	QueueName       string
	DeclareQueue    bool
	DurableQueue    bool
	ExclusiveQueue  bool
	AutoDeleteQueue bool
	QueueArgs       amqp.Table

	// Привязка к обменнику (пустое имя - привязка не выполняется)
	ExchangeNameForBind    string
	DeclareExchangeForBind bool
	ExchangeTypeForBind    string
	DurableExchangeForBind bool
	RoutingKeyForBind      string

	// QoS
	PrefetchCount int

	ConsumerTag       string
	ExclusiveConsumer bool

	Logger rabbitmq_common.Logger
}

// BatchConsumer накапливает сообщения в пачки и передает их обработчику,
// когда пачка заполнилась или истек таймаут.
type BatchConsumer struct {
	config          ConsumerConfig
	connection      *amqp.Connection
	channel         *amqp.Channel
	actualQueueName string
	handler         BatchMessageHandler
	batchSize       int
	batchTimeout    time.Duration
	wg              sync.WaitGroup

	Logger rabbitmq_common.Logger
}

// NewBatchConsumer создает потребителя на канале из общего соединения
func NewBatchConsumer(cfg ConsumerConfig, handler BatchMessageHandler, batchSize int, batchTimeout time.Duration, connManager *rabbitmq_common.ConnectionManager) (*BatchConsumer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = rabbitmq_common.NewNoopLogger()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("batch consumer: invalid base config: %w", err)
	}
	if handler == nil {
		return nil, fmt.Errorf("batch consumer: message handler is required")
	}
	if !cfg.DeclareQueue && cfg.QueueName == "" {
		return nil, fmt.Errorf("batch consumer: queue name is required if DeclareQueue is false")
	}
	if cfg.DeclareExchangeForBind && cfg.ExchangeTypeForBind == "" {
		return nil, fmt.Errorf("batch consumer: exchange type is required if declaring an exchange for binding")
	}
	if batchSize < 1 {
		return nil, fmt.Errorf("batch consumer: batch size must be positive")
	}

	if cfg.PrefetchCount < batchSize {
		logger.Warn("PrefetchCount is less than BatchSize, raising it to BatchSize",
			"prefetch_count", cfg.PrefetchCount, "batch_size", batchSize)
		cfg.PrefetchCount = batchSize
	}

	c := &BatchConsumer{
		config:       cfg,
		handler:      handler,
		batchSize:    batchSize,
		batchTimeout: batchTimeout,
		Logger:       logger,
	}

	conn, ch, err := connManager.GetChannel()
	if err != nil {
		return nil, fmt.Errorf("batch consumer: failed to get channel from manager: %w", err)
	}
	c.connection = conn
	c.channel = ch
	c.Logger.Debug("Channel obtained from ConnectionManager")

	if err := c.setup(); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("batch consumer: setup failed: %w", err)
	}

	return c, nil
}

// setup настраивает QoS, очередь и привязку
func (c *BatchConsumer) setup() error {
	if c.config.PrefetchCount > 0 {
		if err := c.channel.Qos(c.config.PrefetchCount, 0, false); err != nil {
			return fmt.Errorf("failed to set QoS: %w", err)
		}
	}

	c.actualQueueName = c.config.QueueName
	if c.config.DeclareQueue {
		q, err := c.channel.QueueDeclare(
			c.config.QueueName,
			c.config.DurableQueue,
			c.config.AutoDeleteQueue,
			c.config.ExclusiveQueue,
			false, // no-wait
			c.config.QueueArgs,
		)
		if err != nil {
			return fmt.Errorf("failed to declare queue '%s': %w", c.config.QueueName, err)
		}
		c.actualQueueName = q.Name
	}

	if c.config.ExchangeNameForBind != "" {
		if c.config.DeclareExchangeForBind {
			if err := c.channel.ExchangeDeclare(
				c.config.ExchangeNameForBind,
				c.config.ExchangeTypeForBind,
				c.config.DurableExchangeForBind,
				false, // auto-delete
				false, // internal
				false, // no-wait
				nil,
			); err != nil {
				return fmt.Errorf("failed to declare exchange '%s': %w", c.config.ExchangeNameForBind, err)
			}
		}

		if err := c.channel.QueueBind(
			c.actualQueueName,
			c.config.RoutingKeyForBind,
			c.config.ExchangeNameForBind,
			false, // no-wait
			nil,
		); err != nil {
			return fmt.Errorf("failed to bind queue '%s' to exchange '%s': %w",
				c.actualQueueName, c.config.ExchangeNameForBind, err)
		}
	}

	return nil
}

// StartConsuming начинает потребление и накопление сообщений.
// Блокируется до отмены контекста или закрытия соединения.
func (c *BatchConsumer) StartConsuming(ctx context.Context) error {
	if c.channel == nil || c.connection.IsClosed() {
		return fmt.Errorf("batch consumer: not connected")
	}

	msgs, err := c.channel.Consume(
		c.actualQueueName,
		c.config.ConsumerTag,
		false, // auto-ack = false
		c.config.ExclusiveConsumer,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("batch consumer: failed to register a consumer: %w", err)
	}

	c.Logger.Info("Waiting for messages",
		"queue", c.actualQueueName, "batch_size", c.batchSize, "batch_timeout", c.batchTimeout.String())

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		batch := make([]amqp.Delivery, 0, c.batchSize)

		timer := time.NewTimer(c.batchTimeout)
		// Таймер запускается при первом сообщении пачки
		if !timer.Stop() {
			<-timer.C
		}

		for {
			select {
			case <-ctx.Done():
				c.Logger.Info("Context cancelled. Processing final batch...")
				c.processBatch(batch)
				return

			case msg, ok := <-msgs:
				if !ok {
					c.Logger.Info("Deliveries channel closed. Processing final batch...")
					c.processBatch(batch)
					return
				}

				if len(batch) == 0 {
					timer.Reset(c.batchTimeout)
				}

				batch = append(batch, msg)

				if len(batch) >= c.batchSize {
					c.Logger.Debug("Batch size reached, processing", "size", len(batch))
					if !timer.Stop() {
						<-timer.C
					}
					c.processBatch(batch)
					batch = make([]amqp.Delivery, 0, c.batchSize)
				}

			case <-timer.C:
				if len(batch) > 0 {
					c.Logger.Debug("Batch timeout reached, processing", "size", len(batch))
					c.processBatch(batch)
					batch = make([]amqp.Delivery, 0, c.batchSize)
				}
			}
		}
	}()

	notifyClose := make(chan *amqp.Error)
	c.connection.NotifyClose(notifyClose)

	select {
	case <-ctx.Done():
		c.Logger.Info("Context cancelled, shutting down", "consumer_tag", c.config.ConsumerTag)
		return nil

	case err := <-notifyClose:
		c.Logger.Error(err, "Connection closed", "consumer_tag", c.config.ConsumerTag)
		return err
	}
}

// processBatch вызывает внешний обработчик и подтверждает или отклоняет пачку
func (c *BatchConsumer) processBatch(batch []amqp.Delivery) {
	if len(batch) == 0 {
		return
	}

	lastTag := batch[len(batch)-1].DeliveryTag

	if err := c.handler(batch); err != nil {
		c.Logger.Error(err, "Handler returned error for batch, nacking without requeue", "size", len(batch))
		_ = c.channel.Nack(lastTag, true, false) // multiple=true, requeue=false
		return
	}

	_ = c.channel.Ack(lastTag, true)
	c.Logger.Debug("Successfully ack'd batch", "size", len(batch))
}

// Close останавливает потребителя и дожидается обработки последней пачки
func (c *BatchConsumer) Close() error {
	c.Logger.Debug("Batch consumer: Closing...")

	var firstErr error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			c.Logger.Error(err, "Error closing channel")
			firstErr = err
		}
		c.channel = nil
	}

	c.wg.Wait()
	c.Logger.Info("Batch consumer closed.")
	return firstErr
}
