package components

import (
	"parkgate/internal/pkg/clock"
	"parkgate/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewIntakeUseCase,
	),
)
