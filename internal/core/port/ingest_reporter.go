package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/operatorpuar/gaming-venues/internal/core/domain"
)

type IngestReporterPort interface {
	ReportResults(ctx context.Context, batchID uuid.UUID, stats *domain.BatchSaveStats) error
}
