package usecases_port

import (
	"context"

	"github.com/operatorpuar/gaming-venues/internal/core/domain"
)

type GetRegionsByStateUseCase interface {
	Execute(ctx context.Context, state string) ([]domain.Region, error)
}
