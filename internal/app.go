package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"

	logger_adapter "github.com/operatorpuar/gaming-venues/internal/adapters/logger"
	postgres_adapter "github.com/operatorpuar/gaming-venues/internal/adapters/postgres"
	rabbitmq_adapter "github.com/operatorpuar/gaming-venues/internal/adapters/rabbitmq"
	"github.com/operatorpuar/gaming-venues/internal/adapters/rest"
	"github.com/operatorpuar/gaming-venues/internal/configs"
	"github.com/operatorpuar/gaming-venues/internal/constants"
	"github.com/operatorpuar/gaming-venues/internal/core/port"
	"github.com/operatorpuar/gaming-venues/internal/core/usecase"
	"github.com/operatorpuar/gaming-venues/pkg/fluentlogger"
	"github.com/operatorpuar/gaming-venues/pkg/postgres"
	"github.com/operatorpuar/gaming-venues/pkg/rabbitmq/rabbitmq_common"
	"github.com/operatorpuar/gaming-venues/pkg/rabbitmq/rabbitmq_consumer"
	"github.com/operatorpuar/gaming-venues/pkg/rabbitmq/rabbitmq_producer"
)

// App - структура приложения
type App struct {
	config       *configs.AppConfig
	dbPool       *pgxpool.Pool
	apiServer    *rest.Server
	fluentClient *fluent.Fluent
	logger       port.LoggerPort

	// Компоненты инжеста; nil, если INGEST_ENABLED=false
	venueBatchListener   port.EventListenerPort
	ingestReportProducer *rabbitmq_producer.Publisher
	connManager          *rabbitmq_common.ConnectionManager
}

// NewApp создает новый экземпляр приложения.
// Это composition root, где все зависимости создаются и связываются.
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false,
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 2. ХРАНИЛИЩЕ ---
	dbPool, err := postgres.NewClient(context.Background(), postgres.Config{DatabaseURL: appConfig.Database.URL})
	if err != nil {
		appLogger.Error("Failed to connect to PostgreSQL", err, nil)
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

	venueAdapter := postgres_adapter.NewPostgresVenueAdapter(dbPool)
	facetCatalogAdapter := postgres_adapter.NewPostgresFacetCatalogAdapter(dbPool)
	appLogger.Info("Postgres adapters initialized.", nil)

	// --- 3. USE CASES (ядро бизнес-логики) ---
	listVenuesUseCase := usecase.NewListVenuesUseCase(venueAdapter)
	searchVenuesUseCase := usecase.NewSearchVenuesUseCase(venueAdapter)
	countVenuesUseCase := usecase.NewCountVenuesUseCase(venueAdapter)
	getVenueBySlugUseCase := usecase.NewGetVenueBySlugUseCase(venueAdapter)

	listFacetsUseCase := usecase.NewListFacetsUseCase(facetCatalogAdapter)
	getFacetBySlugUseCase := usecase.NewGetFacetBySlugUseCase(facetCatalogAdapter)
	statesWithCountsUseCase := usecase.NewGetStatesWithCountsUseCase(facetCatalogAdapter)
	regionsByStateUseCase := usecase.NewGetRegionsByStateUseCase(facetCatalogAdapter)

	appLogger.Info("All use cases initialized.", nil)

	// --- 4. REST API ---
	venuesHandler := rest.NewVenuesHandler(listVenuesUseCase, searchVenuesUseCase,
		countVenuesUseCase, getVenueBySlugUseCase, appConfig.Rest.BaseURL)
	facetsHandler := rest.NewFacetsHandler(listFacetsUseCase, getFacetBySlugUseCase,
		statesWithCountsUseCase, regionsByStateUseCase, appConfig.Rest.BaseURL)

	apiServer := rest.NewServer(appConfig.Rest.PORT, venuesHandler, facetsHandler,
		appConfig.Rest.AllowedOrigins, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	application := &App{
		config:       appConfig,
		dbPool:       dbPool,
		apiServer:    apiServer,
		fluentClient: fluentClient,
		logger:       appLogger,
	}

	// --- 5. ИНЖЕСТ (опционально) ---
	// Каталог полноценно работает и без брокера, в режиме read-only
	if appConfig.RabbitMQ.Enabled {
		if err := application.wireIngest(appConfig, baseLogger, venueAdapter); err != nil {
			dbPool.Close()
			return nil, err
		}
	} else {
		appLogger.Info("Ingest disabled, running in read-only mode.", nil)
	}

	return application, nil
}

// wireIngest связывает компоненты пути записи: соединение с брокером,
// producer отчетов, use case сохранения и слушателя очереди.
func (a *App) wireIngest(appConfig *configs.AppConfig, baseLogger port.LoggerPort, venueAdapter *postgres_adapter.PostgresVenueAdapter) error {
	appLogger := a.logger

	connManagerLogger := baseLogger.WithFields(port.Fields{"component": "rabbitmq_conn_manager"})
	connManager, err := rabbitmq_common.NewManager(appConfig.RabbitMQ.URL, rabbitmq_adapter.NewPkgLoggerBridge(connManagerLogger))
	if err != nil {
		appLogger.Error("Failed to create connection manager", err, nil)
		return fmt.Errorf("failed to create connection manager: %w", err)
	}
	a.connManager = connManager
	appLogger.Info("RabbitMQ Connection Manager initialized.", nil)

	producerLogger := baseLogger.WithFields(port.Fields{"component": "rabbitmq_producer"})
	producerCfg := rabbitmq_producer.PublisherConfig{
		Config:                   rabbitmq_common.Config{URL: appConfig.RabbitMQ.URL},
		ExchangeName:             constants.IngestReportsExchange,
		ExchangeType:             "direct",
		DurableExchange:          true,
		DeclareExchangeIfMissing: true,
		Logger:                   rabbitmq_adapter.NewPkgLoggerBridge(producerLogger),
	}
	reportProducer, err := rabbitmq_producer.NewPublisher(producerCfg, connManager)
	if err != nil {
		appLogger.Error("Failed to create ingest report producer", err, nil)
		return fmt.Errorf("failed to create ingest report producer: %w", err)
	}
	a.ingestReportProducer = reportProducer
	appLogger.Info("RabbitMQ Ingest Report Producer initialized.", nil)

	ingestReporter, err := rabbitmq_adapter.NewIngestReporterAdapter(reportProducer, constants.RoutingKeyIngestReport)
	if err != nil {
		return fmt.Errorf("failed to create ingest reporter adapter: %w", err)
	}

	saveVenuesUseCase := usecase.NewSaveVenuesUseCase(venueAdapter, ingestReporter)

	consumerCfg := rabbitmq_consumer.ConsumerConfig{
		Config:        rabbitmq_common.Config{URL: appConfig.RabbitMQ.URL},
		QueueName:     constants.QueueVenueBatches,
		DeclareQueue:  true,
		DurableQueue:  true,
		PrefetchCount: 100,
		ConsumerTag:   "venue-batch-saver",
	}
	listener, err := rabbitmq_adapter.NewVenueBatchConsumerAdapter(consumerCfg, saveVenuesUseCase, baseLogger, connManager)
	if err != nil {
		appLogger.Error("Failed to create venue batch listener", err, nil)
		return err
	}
	a.venueBatchListener = listener
	appLogger.Info("Venue Batch Events Listener initialized.", nil)

	return nil
}

// Run запускает все компоненты приложения и управляет их жизненным циклом.
func (a *App) Run() error {
	appCtx, cancelApp := context.WithCancel(context.Background())

	var wg sync.WaitGroup

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		a.logger.Info("Waiting for background processes to finish...", nil)
		wg.Wait()
		a.logger.Info("All background processes finished.", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		if a.venueBatchListener != nil {
			if err := a.venueBatchListener.Close(); err != nil {
				a.logger.Error("Error closing venue batch listener", err, nil)
			}
		}

		if a.ingestReportProducer != nil {
			if err := a.ingestReportProducer.Close(); err != nil {
				a.logger.Error("Error closing ingest report producer", err, nil)
			}
		}

		if a.connManager != nil {
			if err := a.connManager.Close(); err != nil {
				a.logger.Error("Error closing RabbitMQ connection", err, nil)
			}
		}

		if a.dbPool != nil {
			a.dbPool.Close()
			a.logger.Info("PostgreSQL pool closed.", nil)
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// В stdout: fluent к этому моменту может быть уже недоступен
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	errorsCh := make(chan error, 1)

	if a.venueBatchListener != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			listenerLogger := a.logger.WithFields(port.Fields{"listener_name": "Venue Batch Events Listener"})
			listenerLogger.Info("Starting listener...", nil)

			if err := a.venueBatchListener.Start(appCtx); err != nil {
				listenerLogger.Error("Listener stopped with an unexpected error", err, nil)
				errorsCh <- fmt.Errorf("venue batch listener error: %w", err)
			} else {
				listenerLogger.Info("Listener stopped gracefully due to context cancellation.", nil)
			}
		}()
	}

	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			errorsCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case err := <-errorsCh:
		a.logger.Error("A critical component failed, shutting down", err, nil)
	case <-appCtx.Done():
		a.logger.Warn("Context was cancelled unexpectedly, shutting down...", nil)
	}

	cancelApp()

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
