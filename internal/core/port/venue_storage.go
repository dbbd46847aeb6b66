package port

import (
	"context"

	"github.com/operatorpuar/gaming-venues/internal/core/domain"
)

// VenueStoragePort - запись со стороны инжеста. Ядро выборки этим портом
// не пользуется: наполнение каталога идет отдельным путем.
type VenueStoragePort interface {
	BatchSave(ctx context.Context, records []domain.VenueRecord) (*domain.BatchSaveStats, error)
}
