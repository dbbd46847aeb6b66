package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/operatorpuar/gaming-venues/internal/contextkeys"
	"github.com/operatorpuar/gaming-venues/internal/core/domain"
	"github.com/operatorpuar/gaming-venues/internal/core/port"
)

// SaveVenuesUseCase - путь наполнения каталога. Вызывается только
// слушателем очереди инжеста, ядро выборки сюда не заходит.
type SaveVenuesUseCase struct {
	storage  port.VenueStoragePort
	reporter port.IngestReporterPort
}

func NewSaveVenuesUseCase(storage port.VenueStoragePort, reporter port.IngestReporterPort) *SaveVenuesUseCase {
	return &SaveVenuesUseCase{storage: storage, reporter: reporter}
}

func (uc *SaveVenuesUseCase) Execute(ctx context.Context, batchID uuid.UUID, records []domain.VenueRecord) (*domain.BatchSaveStats, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SaveVenues",
		"batch_id": batchID.String(),
		"records":  len(records),
	})

	ucLogger.Info("Use case started", nil)

	stats, err := uc.storage.BatchSave(ctx, records)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Batch saved", port.Fields{
		"created": stats.Created,
		"updated": stats.Updated,
		"skipped": stats.Skipped,
	})

	if uc.reporter != nil {
		if err := uc.reporter.ReportResults(ctx, batchID, stats); err != nil {
			// Отчет не критичен для самой записи, но об ошибке нужно знать
			ucLogger.Error("Failed to report batch results", err, nil)
		}
	}

	return stats, nil
}
