package constants

// Имена очередей
const (
	QueueVenueBatches = "venue_batches"
)

// Ключи маршрутизации
const (
	RoutingKeyIngestReport = "catalog.ingest.report"
)

// Обменник отчетов инжеста
const (
	IngestReportsExchange = "ingest_reports"
)
