package usecases_port

import (
	"context"

	"github.com/operatorpuar/gaming-venues/internal/core/domain"
)

type GetStatesWithCountsUseCase interface {
	Execute(ctx context.Context) ([]domain.StateCount, error)
}
